package tasks

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

// SetupTasksRoutes sets up task routes: manager CRUD plus the volunteer
// portal.
func SetupTasksRoutes(app *fiber.App) {
	app.Get("/tasks", auth.AuthMiddleware, renderTasksPage)
	app.Get("/task/new", auth.AuthMiddleware, renderTaskForm)
	app.Get("/task/:id/edit", auth.AuthMiddleware, renderTaskForm)
	app.Post("/task/new", auth.AuthMiddleware, saveTaskForm)
	app.Post("/task/:id/edit", auth.AuthMiddleware, saveTaskForm)

	app.Get("/my-tasks", auth.AuthMiddleware, renderMyTasksPage)

	api := app.Group("/api/tasks")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetTasksAPI)
	api.Post("/", CreateTaskAPI)
	api.Put("/:id", UpdateTaskAPI)
	api.Get("/:id/roster", GetRosterAPI)
	api.Put("/:id/roster", ReplaceRosterAPI)
	api.Put("/:id/roster/:volunteerId/hours", UpdateHoursAPI)
}

func renderTasksPage(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	db := config.GetDB()
	taskList, err := database.GetTasks(db)

	errorMsg := ""
	if err != nil {
		log.Printf("Error fetching tasks: %v", err)
		errorMsg = "Failed to load tasks"
	}

	return c.Render("tasks/index", fiber.Map{
		"Title":        "Tasks - ReliefAssist",
		"CurrentPage":  "tasks",
		"User":         user,
		"Tasks":        taskList,
		"HasTasks":     len(taskList) > 0,
		"ErrorMessage": errorMsg,
		"Notice":       c.Query("msg"),
	})
}

func renderTaskForm(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	db := config.GetDB()

	var record *models.Task
	assigned := map[int]bool{}
	if idStr := c.Params("id"); idStr != "" {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.ErrBadRequest
		}
		record, err = database.GetTaskByID(db, id)
		if err != nil {
			if err == sql.ErrNoRows {
				return c.Redirect("/tasks?msg=Task+not+found")
			}
			return fiber.ErrInternalServerError
		}
		roster, err := database.GetTaskAssignments(db, id)
		if err != nil {
			return fiber.ErrInternalServerError
		}
		for _, ta := range roster {
			assigned[ta.VolunteerID] = true
		}
	}

	disasters, err := database.DisasterOptions(db)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	centers, err := database.CenterOptions(db)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	volunteers, err := database.VolunteerOptions(db)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("tasks/form", fiber.Map{
		"Title":       "Task - ReliefAssist",
		"CurrentPage": "tasks",
		"User":        user,
		"Record":      record,
		"Assigned":    assigned,
		"Disasters":   disasters,
		"Centers":     centers,
		"Volunteers":  volunteers,
		"Statuses": []models.TaskStatus{
			models.TaskPending, models.TaskInProgress, models.TaskComplete, models.TaskCancelled,
		},
	})
}

func parseTaskForm(c *fiber.Ctx) (*models.Task, []int, error) {
	disasterID, err := forms.ParseInt(c.FormValue("disaster_id"))
	if err != nil {
		return nil, nil, err
	}
	centerID, err := forms.ParseOptionalInt(c.FormValue("center_id"))
	if err != nil {
		return nil, nil, err
	}
	dueDate, err := forms.ParseOptionalDate(c.FormValue("due_date"))
	if err != nil {
		return nil, nil, err
	}

	t := &models.Task{
		DisasterID:  disasterID,
		CenterID:    centerID,
		Description: c.FormValue("description"),
		DueDate:     dueDate,
		Status:      models.TaskStatus(c.FormValue("status")),
	}
	if err := t.Validate(); err != nil {
		return nil, nil, err
	}

	form, err := c.MultipartForm()
	var roster []int
	if err == nil && form != nil {
		roster, err = forms.ParseIDList(form.Value["volunteers"])
		if err != nil {
			return nil, nil, err
		}
	} else {
		// urlencoded form: Fiber exposes repeated values via the underlying
		// request args
		var raw []string
		c.Request().PostArgs().VisitAll(func(key, value []byte) {
			if string(key) == "volunteers" {
				raw = append(raw, string(value))
			}
		})
		roster, err = forms.ParseIDList(raw)
		if err != nil {
			return nil, nil, err
		}
	}

	return t, roster, nil
}

// saveTaskForm creates or updates the task, then swaps its volunteer roster
// for the multi-select contents in one transaction.
func saveTaskForm(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	t, roster, err := parseTaskForm(c)
	if err != nil {
		return c.Redirect("/tasks?msg=" + url.QueryEscape(err.Error()))
	}

	db := config.GetDB()
	if idStr := c.Params("id"); idStr != "" {
		id, perr := c.ParamsInt("id")
		if perr != nil {
			return fiber.ErrBadRequest
		}
		t.ID = id
		if err := database.UpdateTask(db, t); err != nil {
			if err == sql.ErrNoRows {
				return c.Redirect("/tasks?msg=Task+not+found")
			}
			if database.IsForeignKeyViolation(err) {
				return c.Redirect("/tasks?msg=Unknown+disaster+or+center")
			}
			return c.Redirect("/tasks?msg=Failed+to+update+task")
		}
	} else {
		if err := database.CreateTask(db, t); err != nil {
			if database.IsForeignKeyViolation(err) {
				return c.Redirect("/tasks?msg=Unknown+disaster+or+center")
			}
			return c.Redirect("/tasks?msg=Failed+to+create+task")
		}
	}

	if err := database.ReplaceTaskAssignments(db, t.ID, roster); err != nil {
		if database.IsForeignKeyViolation(err) {
			return c.Redirect("/tasks?msg=Unknown+volunteer+in+roster")
		}
		return c.Redirect("/tasks?msg=Failed+to+update+volunteer+roster")
	}

	return c.Redirect("/tasks?msg=Task+saved")
}

// renderMyTasksPage shows a volunteer the tasks assigned to them.
func renderMyTasksPage(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleVolunteer) {
		return auth.Forbidden(c)
	}

	db := config.GetDB()
	volunteer, err := database.GetVolunteerByUserID(db, user.ID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Render("tasks/my_tasks", fiber.Map{
				"Title":        "My Tasks - ReliefAssist",
				"CurrentPage":  "my-tasks",
				"User":         user,
				"Tasks":        []models.VolunteerTask{},
				"HasTasks":     false,
				"ErrorMessage": "No volunteer profile is linked to your account yet.",
			})
		}
		return fiber.ErrInternalServerError
	}

	myTasks, err := database.GetTasksForVolunteer(db, volunteer.ID)
	errorMsg := ""
	if err != nil {
		log.Printf("Error fetching volunteer tasks: %v", err)
		errorMsg = "Failed to load your tasks"
	}

	return c.Render("tasks/my_tasks", fiber.Map{
		"Title":        "My Tasks - ReliefAssist",
		"CurrentPage":  "my-tasks",
		"User":         user,
		"Volunteer":    volunteer,
		"Tasks":        myTasks,
		"HasTasks":     len(myTasks) > 0,
		"ErrorMessage": errorMsg,
	})
}
