package database

import (
	"database/sql"

	"github.com/henry-rob17/RELIEFASSIST/app/models"
)

// CreateReliefCenter adds a new relief center. The load-within-capacity
// check lives in the schema, so an over-capacity insert fails here.
func CreateReliefCenter(db *sql.DB, rc *models.ReliefCenter) error {
	query := `
		INSERT INTO relief_centers (name, location, capacity, current_load, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return db.QueryRow(query, rc.Name, rc.Location, rc.Capacity, rc.CurrentLoad).
		Scan(&rc.ID, &rc.CreatedAt, &rc.UpdatedAt)
}

func GetReliefCenters(db *sql.DB) ([]models.ReliefCenter, error) {
	query := `
		SELECT id, name, location, capacity, current_load, created_at, updated_at
		FROM relief_centers
		ORDER BY name
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var centers []models.ReliefCenter
	for rows.Next() {
		var rc models.ReliefCenter
		if err := rows.Scan(
			&rc.ID, &rc.Name, &rc.Location, &rc.Capacity, &rc.CurrentLoad,
			&rc.CreatedAt, &rc.UpdatedAt,
		); err != nil {
			return nil, err
		}
		centers = append(centers, rc)
	}
	return centers, rows.Err()
}

func GetReliefCenterByID(db *sql.DB, id int) (*models.ReliefCenter, error) {
	rc := &models.ReliefCenter{}
	query := `
		SELECT id, name, location, capacity, current_load, created_at, updated_at
		FROM relief_centers WHERE id = $1
	`
	err := db.QueryRow(query, id).Scan(
		&rc.ID, &rc.Name, &rc.Location, &rc.Capacity, &rc.CurrentLoad,
		&rc.CreatedAt, &rc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return rc, nil
}

func UpdateReliefCenter(db *sql.DB, rc *models.ReliefCenter) error {
	query := `
		UPDATE relief_centers
		SET name = $1, location = $2, capacity = $3, current_load = $4, updated_at = NOW()
		WHERE id = $5
	`
	res, err := db.Exec(query, rc.Name, rc.Location, rc.Capacity, rc.CurrentLoad, rc.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CenterOptions returns (id, name) pairs for form select inputs
func CenterOptions(db *sql.DB) ([]models.ReliefCenter, error) {
	rows, err := db.Query(`SELECT id, name FROM relief_centers ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var opts []models.ReliefCenter
	for rows.Next() {
		var rc models.ReliefCenter
		if err := rows.Scan(&rc.ID, &rc.Name); err != nil {
			return nil, err
		}
		opts = append(opts, rc)
	}
	return opts, rows.Err()
}
