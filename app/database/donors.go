package database

import (
	"database/sql"

	"github.com/henry-rob17/RELIEFASSIST/app/models"
)

func CreateDonor(db *sql.DB, d *models.Donor) error {
	query := `
		INSERT INTO donors (first_name, last_name, phone, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return db.QueryRow(query, d.FirstName, d.LastName, d.Phone, d.UserID).
		Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
}

// GetDonorSummaries lists donors with their gift count and cash total.
func GetDonorSummaries(db *sql.DB) ([]models.DonorSummary, error) {
	query := `
		SELECT d.id, d.first_name || ' ' || d.last_name AS donor, d.phone,
		       COUNT(n.id) AS gifts, COALESCE(SUM(n.amount), 0) AS cash_total
		FROM donors d
		LEFT JOIN donations n ON n.donor_id = d.id
		GROUP BY d.id
		ORDER BY donor
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var donors []models.DonorSummary
	for rows.Next() {
		var ds models.DonorSummary
		if err := rows.Scan(&ds.ID, &ds.Name, &ds.Phone, &ds.Gifts, &ds.CashTotal); err != nil {
			return nil, err
		}
		donors = append(donors, ds)
	}
	return donors, rows.Err()
}

func GetDonorByID(db *sql.DB, id int) (*models.Donor, error) {
	d := &models.Donor{}
	query := `
		SELECT id, first_name, last_name, phone, user_id, created_at, updated_at
		FROM donors WHERE id = $1
	`
	err := db.QueryRow(query, id).Scan(
		&d.ID, &d.FirstName, &d.LastName, &d.Phone, &d.UserID, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// GetDonorByUserID resolves the donor row linked to a login account, used by
// the donor portal.
func GetDonorByUserID(db *sql.DB, userID int) (*models.Donor, error) {
	d := &models.Donor{}
	query := `
		SELECT id, first_name, last_name, phone, user_id, created_at, updated_at
		FROM donors WHERE user_id = $1
	`
	err := db.QueryRow(query, userID).Scan(
		&d.ID, &d.FirstName, &d.LastName, &d.Phone, &d.UserID, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func UpdateDonor(db *sql.DB, d *models.Donor) error {
	query := `
		UPDATE donors
		SET first_name = $1, last_name = $2, phone = $3, user_id = $4, updated_at = NOW()
		WHERE id = $5
	`
	res, err := db.Exec(query, d.FirstName, d.LastName, d.Phone, d.UserID, d.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DonorOptions returns (id, name) pairs for form select inputs
func DonorOptions(db *sql.DB) ([]models.Donor, error) {
	rows, err := db.Query(`SELECT id, first_name, last_name FROM donors ORDER BY last_name, first_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var opts []models.Donor
	for rows.Next() {
		var d models.Donor
		if err := rows.Scan(&d.ID, &d.FirstName, &d.LastName); err != nil {
			return nil, err
		}
		opts = append(opts, d)
	}
	return opts, rows.Err()
}
