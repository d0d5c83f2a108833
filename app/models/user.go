package models

import "time"

type User struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Manager extends a user account with office metadata. Only users whose
// role is "manager" have a row here.
type Manager struct {
	ID     int    `json:"id"`
	UserID int    `json:"user_id"`
	Office string `json:"office"`
	Email  string `json:"email,omitempty"` // joined from users
}

// RoleCount is one row of the admin panel's per-role user breakdown.
type RoleCount struct {
	Role  Role `json:"role"`
	Count int  `json:"count"`
}
