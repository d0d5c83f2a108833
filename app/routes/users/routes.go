package users

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/henry-rob17/RELIEFASSIST/app/config"
	"github.com/henry-rob17/RELIEFASSIST/app/database"
	"github.com/henry-rob17/RELIEFASSIST/app/models"
	"github.com/henry-rob17/RELIEFASSIST/app/routes/auth"
)

// SetupUsersRoutes sets up account management routes (admin area)
func SetupUsersRoutes(app *fiber.App) {
	app.Get("/users", auth.AuthMiddleware, renderUsersPage)
	app.Post("/user/:id/role", auth.AuthMiddleware, changeUserRole)
	app.Post("/user/:id/remove", auth.AuthMiddleware, removeUser)

	api := app.Group("/api/users")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetUsersAPI)
	api.Put("/:id/role", UpdateUserRoleAPI)
	api.Delete("/:id", DeleteUserAPI)
}

func renderUsersPage(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role) {
		return auth.Forbidden(c)
	}

	db := config.GetDB()
	accounts, err := database.GetUsers(db)

	errorMsg := ""
	if err != nil {
		log.Printf("Error fetching users: %v", err)
		errorMsg = "Failed to load users"
	}

	return c.Render("users/index", fiber.Map{
		"Title":        "Users - ReliefAssist",
		"CurrentPage":  "users",
		"User":         user,
		"Accounts":     accounts,
		"HasAccounts":  len(accounts) > 0,
		"ErrorMessage": errorMsg,
		"Notice":       c.Query("msg"),
		"Roles": []models.Role{
			models.RoleAdmin, models.RoleManager, models.RoleVolunteer,
			models.RoleDonor, models.RolePublic,
		},
	})
}

// changeUserRole updates one account's role. Promoting to manager records
// the office in the managers extension table.
func changeUserRole(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role) {
		return auth.Forbidden(c)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	newRole := models.Role(c.FormValue("new_role"))
	if !newRole.Valid() {
		return c.Redirect("/users?msg=Unknown+role")
	}

	db := config.GetDB()
	if err := database.UpdateUserRole(db, id, newRole); err != nil {
		if err == sql.ErrNoRows {
			return c.Redirect("/users?msg=User+not+found")
		}
		return c.Redirect("/users?msg=Failed+to+update+role")
	}

	if newRole == models.RoleManager {
		if err := database.UpsertManager(db, id, c.FormValue("office")); err != nil {
			log.Printf("Error recording manager office for user %d: %v", id, err)
		}
	}

	return c.Redirect("/users?msg=User+role+updated")
}

func removeUser(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role) {
		return auth.Forbidden(c)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}
	if id == user.ID {
		return c.Redirect("/users?msg=You+cannot+remove+your+own+account")
	}

	if err := database.DeleteUser(config.GetDB(), id); err != nil {
		return c.Redirect("/users?msg=Failed+to+remove+user")
	}
	return c.Redirect("/users?msg=User+removed")
}

// GetUsersAPI returns all accounts
func GetUsersAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role) {
		return auth.Forbidden(c)
	}

	accounts, err := database.GetUsers(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch users",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"users":   accounts,
	})
}

// UpdateUserRoleAPI updates one account's role
func UpdateUserRoleAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role) {
		return auth.Forbidden(c)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid user ID",
		})
	}

	var req struct {
		Role   models.Role `json:"role"`
		Office string      `json:"office"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if !req.Role.Valid() {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Unknown role",
		})
	}

	db := config.GetDB()
	if err := database.UpdateUserRole(db, id, req.Role); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{
				"success": false,
				"error":   "User not found",
			})
		}
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to update role",
		})
	}

	if req.Role == models.RoleManager {
		if err := database.UpsertManager(db, id, req.Office); err != nil {
			log.Printf("Error recording manager office for user %d: %v", id, err)
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Role updated successfully",
	})
}

// DeleteUserAPI removes an account
func DeleteUserAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role) {
		return auth.Forbidden(c)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid user ID",
		})
	}
	if id == user.ID {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "You cannot remove your own account",
		})
	}

	if err := database.DeleteUser(config.GetDB(), id); err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to remove user",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "User removed successfully",
	})
}
