package models

import (
	"errors"
	"fmt"
	"time"
)

// ReliefCenter is a physical distribution site.
type ReliefCenter struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Capacity    int       `json:"capacity"`
	CurrentLoad int       `json:"current_load"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (rc *ReliefCenter) Validate() error {
	if rc.Name == "" {
		return errors.New("name is required")
	}
	if rc.Capacity < 0 {
		return errors.New("capacity cannot be negative")
	}
	if rc.CurrentLoad < 0 {
		return errors.New("current load cannot be negative")
	}
	if rc.CurrentLoad > rc.Capacity {
		return fmt.Errorf("current load %d exceeds capacity %d", rc.CurrentLoad, rc.Capacity)
	}
	return nil
}
