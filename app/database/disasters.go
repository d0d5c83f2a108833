package database

import (
	"database/sql"

	"github.com/henry-rob17/RELIEFASSIST/app/models"
)

// CreateDisaster adds a new disaster to the database
func CreateDisaster(db *sql.DB, d *models.Disaster) error {
	query := `
		INSERT INTO disasters (name, location, magnitude, start_date, end_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return db.QueryRow(
		query,
		d.Name, d.Location, d.Magnitude, d.StartDate, d.EndDate, d.Status,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
}

// GetDisasters retrieves all disasters, newest first
func GetDisasters(db *sql.DB) ([]models.Disaster, error) {
	query := `
		SELECT id, name, location, magnitude, start_date, end_date, status, created_at, updated_at
		FROM disasters
		ORDER BY id DESC
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var disasters []models.Disaster
	for rows.Next() {
		var d models.Disaster
		if err := rows.Scan(
			&d.ID, &d.Name, &d.Location, &d.Magnitude, &d.StartDate, &d.EndDate,
			&d.Status, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, err
		}
		disasters = append(disasters, d)
	}
	return disasters, rows.Err()
}

// GetRecentDisasters returns the latest disasters by start date for the
// public dashboard.
func GetRecentDisasters(db *sql.DB, limit int) ([]models.Disaster, error) {
	query := `
		SELECT id, name, location, magnitude, start_date, end_date, status, created_at, updated_at
		FROM disasters
		ORDER BY start_date DESC
		LIMIT $1
	`
	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var disasters []models.Disaster
	for rows.Next() {
		var d models.Disaster
		if err := rows.Scan(
			&d.ID, &d.Name, &d.Location, &d.Magnitude, &d.StartDate, &d.EndDate,
			&d.Status, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, err
		}
		disasters = append(disasters, d)
	}
	return disasters, rows.Err()
}

func GetDisasterByID(db *sql.DB, id int) (*models.Disaster, error) {
	d := &models.Disaster{}
	query := `
		SELECT id, name, location, magnitude, start_date, end_date, status, created_at, updated_at
		FROM disasters WHERE id = $1
	`
	err := db.QueryRow(query, id).Scan(
		&d.ID, &d.Name, &d.Location, &d.Magnitude, &d.StartDate, &d.EndDate,
		&d.Status, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// UpdateDisaster replaces all mutable fields of an existing disaster
func UpdateDisaster(db *sql.DB, d *models.Disaster) error {
	query := `
		UPDATE disasters
		SET name = $1, location = $2, magnitude = $3, start_date = $4,
			end_date = $5, status = $6, updated_at = NOW()
		WHERE id = $7
	`
	res, err := db.Exec(query, d.Name, d.Location, d.Magnitude, d.StartDate, d.EndDate, d.Status, d.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DisasterOptions returns (id, name) pairs for form select inputs
func DisasterOptions(db *sql.DB) ([]models.Disaster, error) {
	rows, err := db.Query(`SELECT id, name FROM disasters ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var opts []models.Disaster
	for rows.Next() {
		var d models.Disaster
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, err
		}
		opts = append(opts, d)
	}
	return opts, rows.Err()
}
