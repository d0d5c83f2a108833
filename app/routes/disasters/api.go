package disasters

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/henry-rob17/RELIEFASSIST/app/config"
	"github.com/henry-rob17/RELIEFASSIST/app/database"
	"github.com/henry-rob17/RELIEFASSIST/app/models"
	"github.com/henry-rob17/RELIEFASSIST/app/routes/auth"
)

// GetDisastersAPI returns all disasters
func GetDisastersAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	disasters, err := database.GetDisasters(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch disasters",
		})
	}
	return c.JSON(fiber.Map{
		"success":   true,
		"disasters": disasters,
	})
}

// CreateDisasterAPI creates a new disaster
func CreateDisasterAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	d := new(models.Disaster)
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
	if err := database.CreateDisaster(db, d); err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to create disaster",
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"success":  true,
		"disaster": d,
	})
}

// UpdateDisasterAPI updates an existing disaster
func UpdateDisasterAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid disaster ID",
		})
	}

	d := new(models.Disaster)
	if err := c.BodyParser(d); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	d.ID = id
	if err := d.Validate(); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	db := config.GetDB()
	if err := database.UpdateDisaster(db, d); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{
				"success": false,
				"error":   "Disaster not found",
			})
		}
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to update disaster",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Disaster updated successfully",
	})
}
