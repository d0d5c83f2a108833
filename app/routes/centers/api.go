package centers

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/henry-rob17/RELIEFASSIST/app/config"
	"github.com/henry-rob17/RELIEFASSIST/app/database"
	"github.com/henry-rob17/RELIEFASSIST/app/models"
	"github.com/henry-rob17/RELIEFASSIST/app/routes/auth"
)

// GetCentersAPI returns all relief centers
func GetCentersAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	centers, err := database.GetReliefCenters(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch relief centers",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"centers": centers,
	})
}

// CreateCenterAPI creates a new relief center
func CreateCenterAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	rc := new(models.ReliefCenter)
	if err := c.BodyParser(rc); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if err := rc.Validate(); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	db := config.GetDB()
	if err := database.CreateReliefCenter(db, rc); err != nil {
		if database.IsCheckViolation(err) {
			return c.Status(400).JSON(fiber.Map{
				"success": false,
				"error":   "Current load cannot exceed capacity",
			})
		}
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to create relief center",
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"center":  rc,
	})
}

// UpdateCenterAPI updates an existing relief center
func UpdateCenterAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid center ID",
		})
	}

	rc := new(models.ReliefCenter)
	if err := c.BodyParser(rc); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	rc.ID = id
	if err := rc.Validate(); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	db := config.GetDB()
	if err := database.UpdateReliefCenter(db, rc); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{
				"success": false,
				"error":   "Relief center not found",
			})
		}
		if database.IsCheckViolation(err) {
			return c.Status(400).JSON(fiber.Map{
				"success": false,
				"error":   "Current load cannot exceed capacity",
			})
		}
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to update relief center",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Relief center updated successfully",
	})
}
