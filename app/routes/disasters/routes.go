package disasters

import (
	"database/sql"
	"log"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/henry-rob17/RELIEFASSIST/app/config"
	"github.com/henry-rob17/RELIEFASSIST/app/database"
	"github.com/henry-rob17/RELIEFASSIST/app/models"
	"github.com/henry-rob17/RELIEFASSIST/app/routes/auth"
	"github.com/henry-rob17/RELIEFASSIST/app/routes/forms"
)

// SetupDisastersRoutes sets up disasters routes. The list is public; the
// forms are for managers.
func SetupDisastersRoutes(app *fiber.App) {
	app.Get("/disasters", auth.LoadUser, renderDisastersPage)
	app.Get("/disaster/new", auth.AuthMiddleware, renderDisasterForm)
	app.Get("/disaster/:id/edit", auth.AuthMiddleware, renderDisasterForm)
	app.Post("/disaster/new", auth.AuthMiddleware, saveDisasterForm)
	app.Post("/disaster/:id/edit", auth.AuthMiddleware, saveDisasterForm)

	api := app.Group("/api/disasters")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetDisastersAPI)
	api.Post("/", CreateDisasterAPI)
	api.Put("/:id", UpdateDisasterAPI)
}

func renderDisastersPage(c *fiber.Ctx) error {
	db := config.GetDB()
	disasters, err := database.GetDisasters(db)

	errorMsg := ""
	if err != nil {
		log.Printf("Error fetching disasters: %v", err)
		errorMsg = "Failed to load disasters"
	}

	return c.Render("disasters/index", fiber.Map{
		"Title":        "Disasters - ReliefAssist",
		"CurrentPage":  "disasters",
		"User":         auth.CurrentUser(c),
		"Disasters":    disasters,
		"HasDisasters": len(disasters) > 0,
		"ErrorMessage": errorMsg,
		"Notice":       c.Query("msg"),
	})
}

func renderDisasterForm(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	var record *models.Disaster
	if idStr := c.Params("id"); idStr != "" {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.ErrBadRequest
		}
		record, err = database.GetDisasterByID(config.GetDB(), id)
		if err != nil {
			if err == sql.ErrNoRows {
				return c.Redirect("/disasters?msg=Disaster+not+found")
			}
			return fiber.ErrInternalServerError
		}
	}

	return c.Render("disasters/form", fiber.Map{
		"Title":       "Disaster - ReliefAssist",
		"CurrentPage": "disasters",
		"User":        user,
		"Record":      record,
		"Statuses":    []models.DisasterStatus{models.DisasterOpen, models.DisasterOngoing, models.DisasterClosed},
	})
}

func parseDisasterForm(c *fiber.Ctx) (*models.Disaster, error) {
	startDate, err := forms.ParseDate(c.FormValue("start_date"))
	if err != nil {
		return nil, err
	}
	endDate, err := forms.ParseOptionalDate(c.FormValue("end_date"))
	if err != nil {
		return nil, err
	}
	magnitude, err := forms.ParseFloat(c.FormValue("magnitude"))
	if err != nil {
		return nil, err
	}

	d := &models.Disaster{
		Name:      c.FormValue("name"),
		Location:  c.FormValue("location"),
		Magnitude: magnitude,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    models.DisasterStatus(c.FormValue("status")),
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

func saveDisasterForm(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	d, err := parseDisasterForm(c)
	if err != nil {
		return c.Redirect("/disasters?msg=" + url.QueryEscape(err.Error()))
	}

	db := config.GetDB()
	if idStr := c.Params("id"); idStr != "" {
		id, perr := c.ParamsInt("id")
		if perr != nil {
			return fiber.ErrBadRequest
		}
		d.ID = id
		if err := database.UpdateDisaster(db, d); err != nil {
			if err == sql.ErrNoRows {
				return c.Redirect("/disasters?msg=Disaster+not+found")
			}
			return c.Redirect("/disasters?msg=Failed+to+update+disaster")
		}
		return c.Redirect("/disasters?msg=Disaster+updated")
	}

	if err := database.CreateDisaster(db, d); err != nil {
		return c.Redirect("/disasters?msg=Failed+to+create+disaster")
	}
	return c.Redirect("/disasters?msg=Disaster+created")
}
