package models

import (
	"errors"
	"time"
)

// Donation is a gift from a donor, either cash or in kind.
type Donation struct {
	ID           int          `json:"id"`
	DonorID      int          `json:"donor_id"`
	DonationType DonationType `json:"donation_type"`
	Amount       float64      `json:"amount"`
	DonationDate time.Time    `json:"donation_date"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	DonorName    string       `json:"donor_name,omitempty"` // joined
}

func (d *Donation) Validate() error {
	if d.DonorID == 0 {
		return errors.New("donor is required")
	}
	if !d.DonationType.Valid() {
		return errors.New("donation type must be Cash or In-Kind")
	}
	if d.Amount < 0 {
		return errors.New("amount cannot be negative")
	}
	if d.DonationDate.IsZero() {
		return errors.New("donation date is required")
	}
	return nil
}

// DonationAllocation records how much of a donation's value or quantity was
// applied toward a resource, optionally in service of a task.
type DonationAllocation struct {
	ID         int       `json:"id"`
	DonationID int       `json:"donation_id"`
	ResourceID int       `json:"resource_id"`
	TaskID     *int      `json:"task_id,omitempty"`
	Quantity   int       `json:"quantity"`
	AmountUsed float64   `json:"amount_used"`
	CreatedAt  time.Time `json:"created_at"`

	// Joined for the donation detail page
	ResourceType    string `json:"resource_type,omitempty"`
	TaskDescription string `json:"task_description,omitempty"`
}

func (a *DonationAllocation) Validate() error {
	if a.DonationID == 0 {
		return errors.New("donation is required")
	}
	if a.ResourceID == 0 {
		return errors.New("resource is required")
	}
	if a.Quantity < 0 {
		return errors.New("quantity cannot be negative")
	}
	if a.AmountUsed < 0 {
		return errors.New("amount used cannot be negative")
	}
	return nil
}

// DonationSummary is one row of the donation_summary view: the donation plus
// zero-defaulted totals across its allocations.
type DonationSummary struct {
	DonationID     int          `json:"donation_id"`
	DonorName      string       `json:"donor_name"`
	DonationType   DonationType `json:"donation_type"`
	Amount         float64      `json:"amount"`
	DonationDate   time.Time    `json:"donation_date"`
	AmountSpent    float64      `json:"amount_spent"`
	ItemsAllocated int          `json:"items_allocated"`
}
