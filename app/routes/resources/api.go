package resources

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/henry-rob17/RELIEFASSIST/app/config"
	"github.com/henry-rob17/RELIEFASSIST/app/database"
	"github.com/henry-rob17/RELIEFASSIST/app/models"
	"github.com/henry-rob17/RELIEFASSIST/app/routes/auth"
)

// GetResourcesAPI returns the resource catalogue
func GetResourcesAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	resources, err := database.GetResources(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch resources",
		})
	}
	return c.JSON(fiber.Map{
		"success":   true,
		"resources": resources,
	})
}

// CreateResourceAPI adds a resource kind to the catalogue
func CreateResourceAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	r := new(models.Resource)
	if err := c.BodyParser(r); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if err := r.Validate(); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	db := config.GetDB()
	if err := database.CreateResource(db, r); err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to create resource",
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"success":  true,
		"resource": r,
	})
}

// GetCenterStockAPI returns the center_stock projection
func GetCenterStockAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	if centerID := c.QueryInt("center_id"); centerID > 0 {
		stock, err := database.GetCenterStockForCenter(db, centerID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{
				"success": false,
				"error":   "Failed to fetch stock",
			})
		}
		return c.JSON(fiber.Map{"success": true, "stock": stock})
	}

	stock, err := database.GetCenterStock(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch stock",
		})
	}
	return c.JSON(fiber.Map{"success": true, "stock": stock})
}

// CreateCenterResourceAPI inserts a stock row; a duplicate (center, resource)
// pair is a 409 telling the caller to update instead.
func CreateCenterResourceAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	cr := new(models.CenterResource)
	if err := c.BodyParser(cr); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if err := cr.Validate(); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	db := config.GetDB()
	if err := database.CreateCenterResource(db, cr); err != nil {
		if database.IsUniqueViolation(err) {
			return c.Status(409).JSON(fiber.Map{
				"success": false,
				"error":   "Stock entry already exists for this center and resource; update it instead",
			})
		}
		if database.IsForeignKeyViolation(err) {
			return c.Status(400).JSON(fiber.Map{
				"success": false,
				"error":   "Unknown center or resource",
			})
		}
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to create stock entry",
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"stock":   cr,
	})
}

// UpdateCenterResourceAPI updates a stock row
func UpdateCenterResourceAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid stock entry ID",
		})
	}

	cr := new(models.CenterResource)
	if err := c.BodyParser(cr); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	cr.ID = id
	if err := cr.Validate(); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	db := config.GetDB()
	if err := database.UpdateCenterResource(db, cr); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{
				"success": false,
				"error":   "Stock entry not found",
			})
		}
		if database.IsUniqueViolation(err) {
			return c.Status(409).JSON(fiber.Map{
				"success": false,
				"error":   "Stock entry already exists for this center and resource",
			})
		}
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to update stock entry",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Stock entry updated successfully",
	})
}
