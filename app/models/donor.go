package models

import (
	"errors"
	"time"
)

// Donor is a person or entity giving aid. UserID, when set, links the donor
// to the account they log in with.
type Donor struct {
	ID        int       `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone"`
	UserID    *int      `json:"user_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *Donor) Validate() error {
	if d.FirstName == "" || d.LastName == "" {
		return errors.New("first and last name are required")
	}
	return nil
}

func (d *Donor) FullName() string {
	return d.FirstName + " " + d.LastName
}

// DonorSummary is one row of the donor list page: the donor plus the count
// and cash total of their donations.
type DonorSummary struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Gifts     int     `json:"gifts"`
	CashTotal float64 `json:"cash_total"`
}
