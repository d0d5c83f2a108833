package donors

import (
	"github.com/gofiber/fiber/v2"
	"github.com/henry-rob17/RELIEFASSIST/app/config"
	"github.com/henry-rob17/RELIEFASSIST/app/database"
	"github.com/henry-rob17/RELIEFASSIST/app/models"
	"github.com/henry-rob17/RELIEFASSIST/app/routes/auth"
)

// GetDonorsAPI returns donor summaries
func GetDonorsAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	db := config.GetDB()
	donors, err := database.GetDonorSummaries(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch donors",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"donors":  donors,
	})
}

// CreateDonorAPI creates a donor
func CreateDonorAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	d := new(models.Donor)
	if err := c.BodyParser(d); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if err := d.Validate(); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	db := config.GetDB()
	if err := database.CreateDonor(db, d); err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to create donor",
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"donor":   d,
	})
}
