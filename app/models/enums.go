package models

// DisasterStatus defines the possible status values for a disaster.
type DisasterStatus string

const (
	DisasterOpen    DisasterStatus = "Open"
	DisasterOngoing DisasterStatus = "Ongoing"
	DisasterClosed  DisasterStatus = "Closed"
)

// Valid reports whether the value is one of the known disaster statuses.
// Transitions between statuses are not constrained.
func (s DisasterStatus) Valid() bool {
	switch s {
	case DisasterOpen, DisasterOngoing, DisasterClosed:
		return true
	}
	return false
}

// TaskStatus defines the possible status values for a relief task.
type TaskStatus string

const (
	TaskPending    TaskStatus = "Pending"
	TaskInProgress TaskStatus = "In-Progress"
	TaskComplete   TaskStatus = "Complete"
	TaskCancelled  TaskStatus = "Cancelled"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskComplete, TaskCancelled:
		return true
	}
	return false
}

// DonationType defines how a donation was given.
type DonationType string

const (
	DonationCash   DonationType = "Cash"
	DonationInKind DonationType = "In-Kind"
)

func (t DonationType) Valid() bool {
	return t == DonationCash || t == DonationInKind
}

// Role defines the access level of an authenticated user.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleManager   Role = "manager"
	RoleVolunteer Role = "volunteer"
	RoleDonor     Role = "donor"
	RolePublic    Role = "public"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleVolunteer, RoleDonor, RolePublic:
		return true
	}
	return false
}

// RegistrationRoles are the roles a visitor may pick when self-registering.
// Manager and admin accounts are provisioned by an admin.
var RegistrationRoles = []Role{RoleVolunteer, RoleDonor}
