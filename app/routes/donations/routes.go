package donations

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

// SetupDonationsRoutes sets up donation routes: manager CRUD, allocations
// and the donor portal.
func SetupDonationsRoutes(app *fiber.App) {
	app.Get("/donations", auth.AuthMiddleware, renderDonationsPage)
	app.Get("/donation/new", auth.AuthMiddleware, renderDonationForm)
	app.Get("/donation/:id/edit", auth.AuthMiddleware, renderDonationForm)
	app.Post("/donation/new", auth.AuthMiddleware, saveDonationForm)
	app.Post("/donation/:id/edit", auth.AuthMiddleware, saveDonationForm)
	app.Get("/donation/:id", auth.AuthMiddleware, renderDonationDetail)
	app.Post("/donation/:id/allocations", auth.AuthMiddleware, saveAllocationForm)

	app.Get("/my-donations", auth.AuthMiddleware, renderMyDonationsPage)

	api := app.Group("/api/donations")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetDonationsAPI)
	api.Post("/", CreateDonationAPI)
	api.Get("/:id", GetDonationAPI)
	api.Post("/:id/allocations", CreateAllocationAPI)
	api.Delete("/:id/allocations/:allocId", DeleteAllocationAPI)
}

// renderDonationsPage lists the donation_summary projection.
func renderDonationsPage(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	db := config.GetDB()
	summaries, err := database.GetDonationSummaries(db)

	errorMsg := ""
	if err != nil {
		log.Printf("Error fetching donation summaries: %v", err)
		errorMsg = "Failed to load donations"
	}

	return c.Render("donations/index", fiber.Map{
		"Title":        "Donations - ReliefAssist",
		"CurrentPage":  "donations",
		"User":         user,
		"Donations":    summaries,
		"HasDonations": len(summaries) > 0,
		"ErrorMessage": errorMsg,
		"Notice":       c.Query("msg"),
	})
}

// renderDonationDetail shows one donation, its summary totals and its
// allocations, with a form to add another allocation.
func renderDonationDetail(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	db := config.GetDB()
	summary, err := database.GetDonationSummary(db, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Redirect("/donations?msg=Donation+not+found")
		}
		return fiber.ErrInternalServerError
	}

	allocations, err := database.GetDonationAllocations(db, id)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	resourceOpts, err := database.ResourceOptions(db)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	taskOpts, err := database.TaskOptions(db)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("donations/detail", fiber.Map{
		"Title":          "Donation - ReliefAssist",
		"CurrentPage":    "donations",
		"User":           user,
		"Summary":        summary,
		"Allocations":    allocations,
		"HasAllocations": len(allocations) > 0,
		"Resources":      resourceOpts,
		"Tasks":          taskOpts,
		"Notice":         c.Query("msg"),
	})
}

func renderDonationForm(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	db := config.GetDB()

	var record *models.Donation
	if idStr := c.Params("id"); idStr != "" {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.ErrBadRequest
		}
		record, err = database.GetDonationByID(db, id)
		if err != nil {
			if err == sql.ErrNoRows {
				return c.Redirect("/donations?msg=Donation+not+found")
			}
			return fiber.ErrInternalServerError
		}
	}

	donorOpts, err := database.DonorOptions(db)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("donations/form", fiber.Map{
		"Title":       "Donation - ReliefAssist",
		"CurrentPage": "donations",
		"User":        user,
		"Record":      record,
		"Donors":      donorOpts,
		"Types":       []models.DonationType{models.DonationCash, models.DonationInKind},
	})
}

func parseDonationForm(c *fiber.Ctx) (*models.Donation, error) {
	donorID, err := forms.ParseInt(c.FormValue("donor_id"))
	if err != nil {
		return nil, err
	}
	amount, err := forms.ParseFloat(c.FormValue("amount"))
	if err != nil {
		return nil, err
	}
	date, err := forms.ParseDate(c.FormValue("donation_date"))
	if err != nil {
		return nil, err
	}

	n := &models.Donation{
		DonorID:      donorID,
		DonationType: models.DonationType(c.FormValue("donation_type")),
		Amount:       amount,
		DonationDate: date,
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return n, nil
}

func saveDonationForm(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	n, err := parseDonationForm(c)
	if err != nil {
		return c.Redirect("/donations?msg=" + url.QueryEscape(err.Error()))
	}

	db := config.GetDB()
	if idStr := c.Params("id"); idStr != "" {
		id, perr := c.ParamsInt("id")
		if perr != nil {
			return fiber.ErrBadRequest
		}
		n.ID = id
		if err := database.UpdateDonation(db, n); err != nil {
			if err == sql.ErrNoRows {
				return c.Redirect("/donations?msg=Donation+not+found")
			}
			if database.IsForeignKeyViolation(err) {
				return c.Redirect("/donations?msg=Unknown+donor")
			}
			return c.Redirect("/donations?msg=Failed+to+update+donation")
		}
		return c.Redirect("/donations?msg=Donation+updated")
	}

	if err := database.CreateDonation(db, n); err != nil {
		if database.IsForeignKeyViolation(err) {
			return c.Redirect("/donations?msg=Unknown+donor")
		}
		return c.Redirect("/donations?msg=Failed+to+record+donation")
	}
	return c.Redirect("/donations?msg=Donation+recorded")
}

// saveAllocationForm records how part of a donation was applied toward a
// resource, optionally for a specific task.
func saveAllocationForm(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	donationID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}
	back := "/donation/" + c.Params("id")

	resourceID, err := forms.ParseInt(c.FormValue("resource_id"))
	if err != nil {
		return c.Redirect(back + "?msg=" + url.QueryEscape(err.Error()))
	}
	taskID, err := forms.ParseOptionalInt(c.FormValue("task_id"))
	if err != nil {
		return c.Redirect(back + "?msg=" + url.QueryEscape(err.Error()))
	}
	quantity, err := forms.ParseInt(c.FormValue("quantity"))
	if err != nil {
		return c.Redirect(back + "?msg=" + url.QueryEscape(err.Error()))
	}
	amountUsed, err := forms.ParseFloat(c.FormValue("amount_used"))
	if err != nil {
		return c.Redirect(back + "?msg=" + url.QueryEscape(err.Error()))
	}

	a := &models.DonationAllocation{
		DonationID: donationID,
		ResourceID: resourceID,
		TaskID:     taskID,
		Quantity:   quantity,
		AmountUsed: amountUsed,
	}
	if err := a.Validate(); err != nil {
		return c.Redirect(back + "?msg=" + url.QueryEscape(err.Error()))
	}

	if err := database.CreateDonationAllocation(config.GetDB(), a); err != nil {
		if database.IsForeignKeyViolation(err) {
			return c.Redirect(back + "?msg=Unknown+donation,+resource+or+task")
		}
		return c.Redirect(back + "?msg=Failed+to+record+allocation")
	}
	return c.Redirect(back + "?msg=Allocation+recorded")
}

// renderMyDonationsPage shows a donor their own donation summaries.
func renderMyDonationsPage(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleDonor) {
		return auth.Forbidden(c)
	}

	db := config.GetDB()
	donor, err := database.GetDonorByUserID(db, user.ID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Render("donations/my_donations", fiber.Map{
				"Title":        "My Donations - ReliefAssist",
				"CurrentPage":  "my-donations",
				"User":         user,
				"Donations":    []models.DonationSummary{},
				"HasDonations": false,
				"ErrorMessage": "No donor profile is linked to your account yet.",
			})
		}
		return fiber.ErrInternalServerError
	}

	summaries, err := database.GetDonationSummariesForDonor(db, donor.ID)
	errorMsg := ""
	if err != nil {
		log.Printf("Error fetching donor donations: %v", err)
		errorMsg = "Failed to load your donations"
	}

	return c.Render("donations/my_donations", fiber.Map{
		"Title":        "My Donations - ReliefAssist",
		"CurrentPage":  "my-donations",
		"User":         user,
		"Donor":        donor,
		"Donations":    summaries,
		"HasDonations": len(summaries) > 0,
		"ErrorMessage": errorMsg,
	})
}
