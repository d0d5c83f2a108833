package volunteers

import (
	"database/sql"
	"log"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/henry-rob17/RELIEFASSIST/app/config"
	"github.com/henry-rob17/RELIEFASSIST/app/database"
	"github.com/henry-rob17/RELIEFASSIST/app/models"
	"github.com/henry-rob17/RELIEFASSIST/app/routes/auth"
)

// SetupVolunteersRoutes sets up volunteer routes (manager area)
func SetupVolunteersRoutes(app *fiber.App) {
	app.Get("/volunteers", auth.AuthMiddleware, renderVolunteersPage)
	app.Get("/volunteer/new", auth.AuthMiddleware, renderVolunteerForm)
	app.Get("/volunteer/:id/edit", auth.AuthMiddleware, renderVolunteerForm)
	app.Post("/volunteer/new", auth.AuthMiddleware, saveVolunteerForm)
	app.Post("/volunteer/:id/edit", auth.AuthMiddleware, saveVolunteerForm)
	app.Get("/volunteer/:id", auth.AuthMiddleware, renderVolunteerDetail)

	api := app.Group("/api/volunteers")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetVolunteersAPI)
	api.Post("/", CreateVolunteerAPI)
	api.Put("/:id", UpdateVolunteerAPI)
}

func renderVolunteersPage(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	db := config.GetDB()
	volunteers, err := database.GetVolunteers(db)

	errorMsg := ""
	if err != nil {
		log.Printf("Error fetching volunteers: %v", err)
		errorMsg = "Failed to load volunteers"
	}

	return c.Render("volunteers/index", fiber.Map{
		"Title":         "Volunteers - ReliefAssist",
		"CurrentPage":   "volunteers",
		"User":          user,
		"Volunteers":    volunteers,
		"HasVolunteers": len(volunteers) > 0,
		"ErrorMessage":  errorMsg,
		"Notice":        c.Query("msg"),
	})
}

// renderVolunteerDetail shows one volunteer and the tasks they are assigned to.
func renderVolunteerDetail(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	db := config.GetDB()
	volunteer, err := database.GetVolunteerByID(db, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Redirect("/volunteers?msg=Volunteer+not+found")
		}
		return fiber.ErrInternalServerError
	}

	assignedTasks, err := database.GetTasksForVolunteer(db, id)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("volunteers/detail", fiber.Map{
		"Title":       volunteer.FullName() + " - ReliefAssist",
		"CurrentPage": "volunteers",
		"User":        user,
		"Volunteer":   volunteer,
		"Tasks":       assignedTasks,
		"HasTasks":    len(assignedTasks) > 0,
	})
}

func renderVolunteerForm(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	var record *models.Volunteer
	if idStr := c.Params("id"); idStr != "" {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.ErrBadRequest
		}
		record, err = database.GetVolunteerByID(config.GetDB(), id)
		if err != nil {
			if err == sql.ErrNoRows {
				return c.Redirect("/volunteers?msg=Volunteer+not+found")
			}
			return fiber.ErrInternalServerError
		}
	}

	return c.Render("volunteers/form", fiber.Map{
		"Title":       "Volunteer - ReliefAssist",
		"CurrentPage": "volunteers",
		"User":        user,
		"Record":      record,
	})
}

func saveVolunteerForm(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	v := &models.Volunteer{
		FirstName: c.FormValue("first_name"),
		LastName:  c.FormValue("last_name"),
		Phone:     c.FormValue("phone"),
		Skills:    c.FormValue("skills"),
	}
	if err := v.Validate(); err != nil {
		return c.Redirect("/volunteers?msg=" + url.QueryEscape(err.Error()))
	}

	db := config.GetDB()
	if idStr := c.Params("id"); idStr != "" {
		id, perr := c.ParamsInt("id")
		if perr != nil {
			return fiber.ErrBadRequest
		}
		// Keep the account link across edits
		existing, err := database.GetVolunteerByID(db, id)
		if err != nil {
			if err == sql.ErrNoRows {
				return c.Redirect("/volunteers?msg=Volunteer+not+found")
			}
			return fiber.ErrInternalServerError
		}
		v.ID = id
		v.UserID = existing.UserID
		if err := database.UpdateVolunteer(db, v); err != nil {
			return c.Redirect("/volunteers?msg=Failed+to+update+volunteer")
		}
		return c.Redirect("/volunteers?msg=Volunteer+updated")
	}

	if err := database.CreateVolunteer(db, v); err != nil {
		return c.Redirect("/volunteers?msg=Failed+to+create+volunteer")
	}
	return c.Redirect("/volunteers?msg=Volunteer+created")
}
