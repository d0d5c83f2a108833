package tasks

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/henry-rob17/RELIEFASSIST/app/config"
	"github.com/henry-rob17/RELIEFASSIST/app/database"
	"github.com/henry-rob17/RELIEFASSIST/app/models"
	"github.com/henry-rob17/RELIEFASSIST/app/routes/auth"
)

// GetTasksAPI returns all tasks with roster counts
func GetTasksAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	db := config.GetDB()
	taskList, err := database.GetTasks(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch tasks",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"tasks":   taskList,
	})
}

// CreateTaskAPI creates a task; an unknown disaster id is a 400.
func CreateTaskAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	t := new(models.Task)
	if err := c.BodyParser(t); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if err := t.Validate(); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	db := config.GetDB()
	if err := database.CreateTask(db, t); err != nil {
		if database.IsForeignKeyViolation(err) {
			return c.Status(400).JSON(fiber.Map{
				"success": false,
				"error":   "Unknown disaster or center",
			})
		}
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to create task",
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"task":    t,
	})
}

// UpdateTaskAPI updates a task
func UpdateTaskAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid task ID",
		})
	}

	t := new(models.Task)
	if err := c.BodyParser(t); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	t.ID = id
	if err := t.Validate(); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	db := config.GetDB()
	if err := database.UpdateTask(db, t); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{
				"success": false,
				"error":   "Task not found",
			})
		}
		if database.IsForeignKeyViolation(err) {
			return c.Status(400).JSON(fiber.Map{
				"success": false,
				"error":   "Unknown disaster or center",
			})
		}
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to update task",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Task updated successfully",
	})
}

// GetRosterAPI returns a task's volunteer roster
func GetRosterAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid task ID",
		})
	}

	roster, err := database.GetTaskAssignments(config.GetDB(), id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch roster",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"roster":  roster,
	})
}

// ReplaceRosterAPI swaps the whole roster for the posted volunteer ids.
// An empty list clears the roster.
func ReplaceRosterAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid task ID",
		})
	}

	var req struct {
		VolunteerIDs []int `json:"volunteer_ids"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if err := database.ReplaceTaskAssignments(config.GetDB(), id, req.VolunteerIDs); err != nil {
		if database.IsForeignKeyViolation(err) {
			return c.Status(400).JSON(fiber.Map{
				"success": false,
				"error":   "Unknown task or volunteer",
			})
		}
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to replace roster",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Roster replaced successfully",
	})
}

// UpdateHoursAPI records hours worked on one assignment
func UpdateHoursAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	taskID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid task ID",
		})
	}
	volunteerID, err := c.ParamsInt("volunteerId")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid volunteer ID",
		})
	}

	var req struct {
		HoursWorked float64 `json:"hours_worked"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if req.HoursWorked < 0 {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Hours worked cannot be negative",
		})
	}

	if err := database.UpdateAssignmentHours(config.GetDB(), taskID, volunteerID, req.HoursWorked); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{
				"success": false,
				"error":   "Assignment not found",
			})
		}
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to update hours",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Hours updated successfully",
	})
}
