package donors

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

// SetupDonorsRoutes sets up donor routes (manager area)
func SetupDonorsRoutes(app *fiber.App) {
	app.Get("/donors", auth.AuthMiddleware, renderDonorsPage)
	app.Get("/donor/new", auth.AuthMiddleware, renderDonorForm)
	app.Get("/donor/:id/edit", auth.AuthMiddleware, renderDonorForm)
	app.Post("/donor/new", auth.AuthMiddleware, saveDonorForm)
	app.Post("/donor/:id/edit", auth.AuthMiddleware, saveDonorForm)
	app.Get("/donor/:id", auth.AuthMiddleware, renderDonorDetail)

	api := app.Group("/api/donors")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetDonorsAPI)
	api.Post("/", CreateDonorAPI)
}

// renderDonorsPage lists donors with gift counts and cash totals.
func renderDonorsPage(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	db := config.GetDB()
	donors, err := database.GetDonorSummaries(db)

	errorMsg := ""
	if err != nil {
		log.Printf("Error fetching donors: %v", err)
		errorMsg = "Failed to load donors"
	}

	return c.Render("donors/index", fiber.Map{
		"Title":        "Donors - ReliefAssist",
		"CurrentPage":  "donors",
		"User":         user,
		"Donors":       donors,
		"HasDonors":    len(donors) > 0,
		"ErrorMessage": errorMsg,
		"Notice":       c.Query("msg"),
	})
}

// renderDonorDetail shows one donor and their donation summaries.
func renderDonorDetail(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	db := config.GetDB()
	donor, err := database.GetDonorByID(db, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Redirect("/donors?msg=Donor+not+found")
		}
		return fiber.ErrInternalServerError
	}

	donations, err := database.GetDonationSummariesForDonor(db, id)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("donors/detail", fiber.Map{
		"Title":        donor.FullName() + " - ReliefAssist",
		"CurrentPage":  "donors",
		"User":         user,
		"Donor":        donor,
		"Donations":    donations,
		"HasDonations": len(donations) > 0,
	})
}

func renderDonorForm(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	var record *models.Donor
	if idStr := c.Params("id"); idStr != "" {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.ErrBadRequest
		}
		record, err = database.GetDonorByID(config.GetDB(), id)
		if err != nil {
			if err == sql.ErrNoRows {
				return c.Redirect("/donors?msg=Donor+not+found")
			}
			return fiber.ErrInternalServerError
		}
	}

	return c.Render("donors/form", fiber.Map{
		"Title":       "Donor - ReliefAssist",
		"CurrentPage": "donors",
		"User":        user,
		"Record":      record,
	})
}

func saveDonorForm(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	d := &models.Donor{
		FirstName: c.FormValue("first_name"),
		LastName:  c.FormValue("last_name"),
		Phone:     c.FormValue("phone"),
	}
	if err := d.Validate(); err != nil {
		return c.Redirect("/donors?msg=" + url.QueryEscape(err.Error()))
	}

	db := config.GetDB()
	if idStr := c.Params("id"); idStr != "" {
		id, perr := c.ParamsInt("id")
		if perr != nil {
			return fiber.ErrBadRequest
		}
		existing, err := database.GetDonorByID(db, id)
		if err != nil {
			if err == sql.ErrNoRows {
				return c.Redirect("/donors?msg=Donor+not+found")
			}
			return fiber.ErrInternalServerError
		}
		d.ID = id
		d.UserID = existing.UserID
		if err := database.UpdateDonor(db, d); err != nil {
			return c.Redirect("/donors?msg=Failed+to+update+donor")
		}
		return c.Redirect("/donors?msg=Donor+updated")
	}

	if err := database.CreateDonor(db, d); err != nil {
		return c.Redirect("/donors?msg=Failed+to+create+donor")
	}
	return c.Redirect("/donors?msg=Donor+created")
}
