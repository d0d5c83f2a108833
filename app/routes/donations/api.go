package donations

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/henry-rob17/RELIEFASSIST/app/config"
	"github.com/henry-rob17/RELIEFASSIST/app/database"
	"github.com/henry-rob17/RELIEFASSIST/app/models"
	"github.com/henry-rob17/RELIEFASSIST/app/routes/auth"
)

// GetDonationsAPI returns the donation_summary projection
func GetDonationsAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	db := config.GetDB()
	summaries, err := database.GetDonationSummaries(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch donations",
		})
	}
	return c.JSON(fiber.Map{
		"success":   true,
		"donations": summaries,
	})
}

// GetDonationAPI returns one donation's summary and allocations
func GetDonationAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid donation ID",
		})
	}

	db := config.GetDB()
	summary, err := database.GetDonationSummary(db, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{
				"success": false,
				"error":   "Donation not found",
			})
		}
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch donation",
		})
	}

	allocations, err := database.GetDonationAllocations(db, id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch allocations",
		})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"donation":    summary,
		"allocations": allocations,
	})
}

// CreateDonationAPI records a donation; an unknown donor id is a 400.
func CreateDonationAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	n := new(models.Donation)
	if err := c.BodyParser(n); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if err := n.Validate(); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	db := config.GetDB()
	if err := database.CreateDonation(db, n); err != nil {
		if database.IsForeignKeyViolation(err) {
			return c.Status(400).JSON(fiber.Map{
				"success": false,
				"error":   "Unknown donor",
			})
		}
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to record donation",
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"success":  true,
		"donation": n,
	})
}

// CreateAllocationAPI records an allocation against a donation
func CreateAllocationAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	donationID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid donation ID",
		})
	}

	a := new(models.DonationAllocation)
	if err := c.BodyParser(a); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	a.DonationID = donationID
	if err := a.Validate(); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	if err := database.CreateDonationAllocation(config.GetDB(), a); err != nil {
		if database.IsForeignKeyViolation(err) {
			return c.Status(400).JSON(fiber.Map{
				"success": false,
				"error":   "Unknown donation, resource or task",
			})
		}
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to record allocation",
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"success":    true,
		"allocation": a,
	})
}

// DeleteAllocationAPI removes an allocation
func DeleteAllocationAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	allocID, err := c.ParamsInt("allocId")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid allocation ID",
		})
	}

	if err := database.DeleteDonationAllocation(config.GetDB(), allocID); err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to delete allocation",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Allocation deleted successfully",
	})
}
