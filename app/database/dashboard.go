package database

import (
	"database/sql"

	"github.com/henry-rob17/RELIEFASSIST/app/models"
)

// AdminStats holds the entity counts shown on the admin panel.
type AdminStats struct {
	Disasters  int `json:"disasters"`
	Centers    int `json:"centers"`
	Resources  int `json:"resources"`
	Tasks      int `json:"tasks"`
	Volunteers int `json:"volunteers"`
	Donors     int `json:"donors"`
	Donations  int `json:"donations"`
	Users      int `json:"users"`
}

// GetAdminStats counts every entity for the admin overview.
func GetAdminStats(db *sql.DB) (*AdminStats, error) {
	stats := &AdminStats{}
	query := `
		SELECT
			(SELECT COUNT(*) FROM disasters),
			(SELECT COUNT(*) FROM relief_centers),
			(SELECT COUNT(*) FROM resources),
			(SELECT COUNT(*) FROM tasks),
			(SELECT COUNT(*) FROM volunteers),
			(SELECT COUNT(*) FROM donors),
			(SELECT COUNT(*) FROM donations),
			(SELECT COUNT(*) FROM users)
	`
	err := db.QueryRow(query).Scan(
		&stats.Disasters, &stats.Centers, &stats.Resources, &stats.Tasks,
		&stats.Volunteers, &stats.Donors, &stats.Donations, &stats.Users,
	)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// GetUserRoleCounts returns how many users hold each role.
func GetUserRoleCounts(db *sql.DB) ([]models.RoleCount, error) {
	rows, err := db.Query(`SELECT role, COUNT(*) FROM users GROUP BY role ORDER BY role`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []models.RoleCount
	for rows.Next() {
		var rc models.RoleCount
		if err := rows.Scan(&rc.Role, &rc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, rc)
	}
	return counts, rows.Err()
}
