package database

import (
	"database/sql"

	"github.com/henry-rob17/RELIEFASSIST/app/models"
)

// CreateTask adds a new task. The disaster foreign key rejects unknown
// disaster ids.
func CreateTask(db *sql.DB, t *models.Task) error {
	query := `
		INSERT INTO tasks (disaster_id, center_id, description, due_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return db.QueryRow(query, t.DisasterID, t.CenterID, t.Description, t.DueDate, t.Status).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

// GetTasks lists tasks with disaster/center names and the size of each
// roster, due-soonest first with undated tasks last.
func GetTasks(db *sql.DB) ([]models.Task, error) {
	query := `
		SELECT t.id, t.disaster_id, t.center_id, t.description, t.due_date, t.status,
		       t.created_at, t.updated_at,
		       d.name, COALESCE(rc.name, ''), COUNT(ta.id)
		FROM tasks t
		JOIN disasters d ON d.id = t.disaster_id
		LEFT JOIN relief_centers rc ON rc.id = t.center_id
		LEFT JOIN task_assignments ta ON ta.task_id = t.id
		GROUP BY t.id, d.name, rc.name
		ORDER BY t.due_date ASC NULLS LAST, t.id
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(
			&t.ID, &t.DisasterID, &t.CenterID, &t.Description, &t.DueDate, &t.Status,
			&t.CreatedAt, &t.UpdatedAt,
			&t.DisasterName, &t.CenterName, &t.VolunteerCount,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func GetTaskByID(db *sql.DB, id int) (*models.Task, error) {
	t := &models.Task{}
	query := `
		SELECT id, disaster_id, center_id, description, due_date, status, created_at, updated_at
		FROM tasks WHERE id = $1
	`
	err := db.QueryRow(query, id).Scan(
		&t.ID, &t.DisasterID, &t.CenterID, &t.Description, &t.DueDate, &t.Status,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func UpdateTask(db *sql.DB, t *models.Task) error {
	query := `
		UPDATE tasks
		SET disaster_id = $1, center_id = $2, description = $3, due_date = $4,
			status = $5, updated_at = NOW()
		WHERE id = $6
	`
	res, err := db.Exec(query, t.DisasterID, t.CenterID, t.Description, t.DueDate, t.Status, t.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetTaskAssignments returns the roster for a task with volunteer names.
func GetTaskAssignments(db *sql.DB, taskID int) ([]models.TaskAssignment, error) {
	query := `
		SELECT ta.id, ta.task_id, ta.volunteer_id, ta.assigned_date, ta.hours_worked,
		       v.first_name || ' ' || v.last_name
		FROM task_assignments ta
		JOIN volunteers v ON v.id = ta.volunteer_id
		WHERE ta.task_id = $1
		ORDER BY v.last_name, v.first_name
	`
	rows, err := db.Query(query, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roster []models.TaskAssignment
	for rows.Next() {
		var ta models.TaskAssignment
		if err := rows.Scan(
			&ta.ID, &ta.TaskID, &ta.VolunteerID, &ta.AssignedDate, &ta.HoursWorked, &ta.VolunteerName,
		); err != nil {
			return nil, err
		}
		roster = append(roster, ta)
	}
	return roster, rows.Err()
}

// ReplaceTaskAssignments swaps the whole roster for a task: every existing
// assignment is deleted and one row is inserted per volunteer id, all inside
// one transaction so a bad volunteer id leaves the previous roster intact.
// An empty id list clears the roster.
func ReplaceTaskAssignments(db *sql.DB, taskID int, volunteerIDs []int) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM task_assignments WHERE task_id = $1`, taskID); err != nil {
		return err
	}

	for _, vid := range volunteerIDs {
		_, err := tx.Exec(
			`INSERT INTO task_assignments (task_id, volunteer_id) VALUES ($1, $2)`,
			taskID, vid,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// UpdateAssignmentHours records hours worked on one assignment.
func UpdateAssignmentHours(db *sql.DB, taskID, volunteerID int, hours float64) error {
	query := `
		UPDATE task_assignments SET hours_worked = $1
		WHERE task_id = $2 AND volunteer_id = $3
	`
	res, err := db.Exec(query, hours, taskID, volunteerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetTasksForVolunteer lists the tasks a volunteer is assigned to, joined
// with disaster and center names, for the volunteer portal.
func GetTasksForVolunteer(db *sql.DB, volunteerID int) ([]models.VolunteerTask, error) {
	query := `
		SELECT t.id, t.description, t.due_date, t.status,
		       COALESCE(d.name, ''), COALESCE(rc.name, ''), ta.hours_worked
		FROM task_assignments ta
		JOIN tasks t ON t.id = ta.task_id
		LEFT JOIN disasters d ON d.id = t.disaster_id
		LEFT JOIN relief_centers rc ON rc.id = t.center_id
		WHERE ta.volunteer_id = $1
		ORDER BY t.due_date ASC NULLS LAST
	`
	rows, err := db.Query(query, volunteerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.VolunteerTask
	for rows.Next() {
		var vt models.VolunteerTask
		if err := rows.Scan(
			&vt.TaskID, &vt.Description, &vt.DueDate, &vt.Status,
			&vt.DisasterName, &vt.CenterName, &vt.HoursWorked,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, vt)
	}
	return tasks, rows.Err()
}

// TaskOptions lists tasks for select inputs.
func TaskOptions(db *sql.DB) ([]models.Task, error) {
	rows, err := db.Query(`SELECT id, description FROM tasks ORDER BY description`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var opts []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Description); err != nil {
			return nil, err
		}
		opts = append(opts, t)
	}
	return opts, rows.Err()
}
