package models

import (
	"errors"
	"time"
)

// Disaster represents an event requiring relief.
type Disaster struct {
	ID        int            `json:"id"`
	Name      string         `json:"name"`
	Location  string         `json:"location"`
	Magnitude float64        `json:"magnitude"`
	StartDate time.Time      `json:"start_date"`
	EndDate   *time.Time     `json:"end_date,omitempty"`
	Status    DisasterStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Validate checks the required fields before the row reaches the database.
// The end date, when present, may not precede the start date; the schema
// does not enforce that one.
func (d *Disaster) Validate() error {
	if d.Name == "" {
		return errors.New("name is required")
	}
	if d.Location == "" {
		return errors.New("location is required")
	}
	if d.StartDate.IsZero() {
		return errors.New("start date is required")
	}
	if !d.Status.Valid() {
		return errors.New("status must be Open, Ongoing or Closed")
	}
	if d.EndDate != nil && d.EndDate.Before(d.StartDate) {
		return errors.New("end date cannot be before start date")
	}
	return nil
}
