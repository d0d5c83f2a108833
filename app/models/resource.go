package models

import (
	"errors"
	"time"
)

// Resource is a kind of suppliable good (bottled water, first-aid kits, ...).
type Resource struct {
	ID           int       `json:"id"`
	ResourceType string    `json:"resource_type"`
	Unit         string    `json:"unit"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (r *Resource) Validate() error {
	if r.ResourceType == "" {
		return errors.New("resource type is required")
	}
	return nil
}

// CenterResource is the stock of one resource at one relief center.
// The (center_id, resource_id) pair is unique.
type CenterResource struct {
	ID             int       `json:"id"`
	CenterID       int       `json:"center_id"`
	ResourceID     int       `json:"resource_id"`
	QuantityOnHand int       `json:"quantity_on_hand"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Joined for list pages
	CenterName   string `json:"center_name,omitempty"`
	ResourceType string `json:"resource_type,omitempty"`
	Capacity     int    `json:"capacity,omitempty"`
	CurrentLoad  int    `json:"current_load,omitempty"`
}

func (cr *CenterResource) Validate() error {
	if cr.CenterID == 0 {
		return errors.New("center is required")
	}
	if cr.ResourceID == 0 {
		return errors.New("resource is required")
	}
	if cr.QuantityOnHand < 0 {
		return errors.New("quantity on hand cannot be negative")
	}
	return nil
}

// CenterStock is one row of the center_stock view.
type CenterStock struct {
	CenterID       int    `json:"center_id"`
	CenterName     string `json:"center_name"`
	ResourceType   string `json:"resource_type"`
	QuantityOnHand int    `json:"quantity_on_hand"`
}
