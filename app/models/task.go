package models

import (
	"errors"
	"time"
)

// Task is a unit of relief work tied to a disaster and optionally a center.
type Task struct {
	ID          int        `json:"id"`
	DisasterID  int        `json:"disaster_id"`
	CenterID    *int       `json:"center_id,omitempty"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Joined for list pages
	DisasterName   string `json:"disaster_name,omitempty"`
	CenterName     string `json:"center_name,omitempty"`
	VolunteerCount int    `json:"volunteer_count,omitempty"`
}

func (t *Task) Validate() error {
	if t.DisasterID == 0 {
		return errors.New("disaster is required")
	}
	if t.Description == "" {
		return errors.New("description is required")
	}
	if !t.Status.Valid() {
		return errors.New("status must be Pending, In-Progress, Complete or Cancelled")
	}
	return nil
}

// TaskAssignment links a volunteer to a task. The (task_id, volunteer_id)
// pair is unique; the roster is replaced wholesale on task edit.
type TaskAssignment struct {
	ID            int       `json:"id"`
	TaskID        int       `json:"task_id"`
	VolunteerID   int       `json:"volunteer_id"`
	AssignedDate  time.Time `json:"assigned_date"`
	HoursWorked   float64   `json:"hours_worked"`
	VolunteerName string    `json:"volunteer_name,omitempty"` // joined
}
