package models

import (
	"errors"
	"time"
)

// Volunteer is a person who can be assigned relief work. UserID, when set,
// links the volunteer to the account they log in with.
type Volunteer struct {
	ID        int       `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone"`
	Skills    string    `json:"skills"`
	UserID    *int      `json:"user_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (v *Volunteer) Validate() error {
	if v.FirstName == "" || v.LastName == "" {
		return errors.New("first and last name are required")
	}
	return nil
}

func (v *Volunteer) FullName() string {
	return v.FirstName + " " + v.LastName
}

// VolunteerTask is one row of a volunteer's task list, joined with the
// disaster and center the task belongs to.
type VolunteerTask struct {
	TaskID       int        `json:"task_id"`
	Description  string     `json:"description"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	Status       TaskStatus `json:"status"`
	DisasterName string     `json:"disaster_name"`
	CenterName   string     `json:"center_name"`
	HoursWorked  float64    `json:"hours_worked"`
}
