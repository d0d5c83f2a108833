package centers

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

// SetupCentersRoutes sets up relief center routes (manager area)
func SetupCentersRoutes(app *fiber.App) {
	app.Get("/centers", auth.AuthMiddleware, renderCentersPage)
	app.Get("/center/new", auth.AuthMiddleware, renderCenterForm)
	app.Get("/center/:id/edit", auth.AuthMiddleware, renderCenterForm)
	app.Post("/center/new", auth.AuthMiddleware, saveCenterForm)
	app.Post("/center/:id/edit", auth.AuthMiddleware, saveCenterForm)

	api := app.Group("/api/centers")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetCentersAPI)
	api.Post("/", CreateCenterAPI)
	api.Put("/:id", UpdateCenterAPI)
}

func renderCentersPage(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	db := config.GetDB()
	centers, err := database.GetReliefCenters(db)

	errorMsg := ""
	if err != nil {
		log.Printf("Error fetching relief centers: %v", err)
		errorMsg = "Failed to load relief centers"
	}

	return c.Render("centers/index", fiber.Map{
		"Title":        "Relief Centers - ReliefAssist",
		"CurrentPage":  "centers",
		"User":         user,
		"Centers":      centers,
		"HasCenters":   len(centers) > 0,
		"ErrorMessage": errorMsg,
		"Notice":       c.Query("msg"),
	})
}

func renderCenterForm(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	var record *models.ReliefCenter
	if idStr := c.Params("id"); idStr != "" {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.ErrBadRequest
		}
		record, err = database.GetReliefCenterByID(config.GetDB(), id)
		if err != nil {
			if err == sql.ErrNoRows {
				return c.Redirect("/centers?msg=Relief+center+not+found")
			}
			return fiber.ErrInternalServerError
		}
	}

	return c.Render("centers/form", fiber.Map{
		"Title":       "Relief Center - ReliefAssist",
		"CurrentPage": "centers",
		"User":        user,
		"Record":      record,
	})
}

func parseCenterForm(c *fiber.Ctx) (*models.ReliefCenter, error) {
	capacity, err := forms.ParseInt(c.FormValue("capacity"))
	if err != nil {
		return nil, err
	}
	load, err := forms.ParseInt(c.FormValue("current_load"))
	if err != nil {
		return nil, err
	}

	rc := &models.ReliefCenter{
		Name:        c.FormValue("name"),
		Location:    c.FormValue("location"),
		Capacity:    capacity,
		CurrentLoad: load,
	}
	if err := rc.Validate(); err != nil {
		return nil, err
	}
	return rc, nil
}

func saveCenterForm(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	rc, err := parseCenterForm(c)
	if err != nil {
		return c.Redirect("/centers?msg=" + url.QueryEscape(err.Error()))
	}

	db := config.GetDB()
	if idStr := c.Params("id"); idStr != "" {
		id, perr := c.ParamsInt("id")
		if perr != nil {
			return fiber.ErrBadRequest
		}
		rc.ID = id
		if err := database.UpdateReliefCenter(db, rc); err != nil {
			if err == sql.ErrNoRows {
				return c.Redirect("/centers?msg=Relief+center+not+found")
			}
			if database.IsCheckViolation(err) {
				return c.Redirect("/centers?msg=Load+cannot+exceed+capacity")
			}
			return c.Redirect("/centers?msg=Failed+to+update+relief+center")
		}
		return c.Redirect("/centers?msg=Relief+center+updated")
	}

	if err := database.CreateReliefCenter(db, rc); err != nil {
		if database.IsCheckViolation(err) {
			return c.Redirect("/centers?msg=Load+cannot+exceed+capacity")
		}
		return c.Redirect("/centers?msg=Failed+to+create+relief+center")
	}
	return c.Redirect("/centers?msg=Relief+center+created")
}
