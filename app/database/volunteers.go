package database

import (
	"database/sql"

	"github.com/henry-rob17/RELIEFASSIST/app/models"
)

func CreateVolunteer(db *sql.DB, v *models.Volunteer) error {
	query := `
		INSERT INTO volunteers (first_name, last_name, phone, skills, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return db.QueryRow(query, v.FirstName, v.LastName, v.Phone, v.Skills, v.UserID).
		Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
}

func GetVolunteers(db *sql.DB) ([]models.Volunteer, error) {
	query := `
		SELECT id, first_name, last_name, phone, skills, user_id, created_at, updated_at
		FROM volunteers
		ORDER BY last_name, first_name
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var volunteers []models.Volunteer
	for rows.Next() {
		var v models.Volunteer
		if err := rows.Scan(
			&v.ID, &v.FirstName, &v.LastName, &v.Phone, &v.Skills, &v.UserID,
			&v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, err
		}
		volunteers = append(volunteers, v)
	}
	return volunteers, rows.Err()
}

func GetVolunteerByID(db *sql.DB, id int) (*models.Volunteer, error) {
	v := &models.Volunteer{}
	query := `
		SELECT id, first_name, last_name, phone, skills, user_id, created_at, updated_at
		FROM volunteers WHERE id = $1
	`
	err := db.QueryRow(query, id).Scan(
		&v.ID, &v.FirstName, &v.LastName, &v.Phone, &v.Skills, &v.UserID,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// GetVolunteerByUserID resolves the volunteer row linked to a login account,
// used by the volunteer portal.
func GetVolunteerByUserID(db *sql.DB, userID int) (*models.Volunteer, error) {
	v := &models.Volunteer{}
	query := `
		SELECT id, first_name, last_name, phone, skills, user_id, created_at, updated_at
		FROM volunteers WHERE user_id = $1
	`
	err := db.QueryRow(query, userID).Scan(
		&v.ID, &v.FirstName, &v.LastName, &v.Phone, &v.Skills, &v.UserID,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func UpdateVolunteer(db *sql.DB, v *models.Volunteer) error {
	query := `
		UPDATE volunteers
		SET first_name = $1, last_name = $2, phone = $3, skills = $4, user_id = $5, updated_at = NOW()
		WHERE id = $6
	`
	res, err := db.Exec(query, v.FirstName, v.LastName, v.Phone, v.Skills, v.UserID, v.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// VolunteerOptions returns (id, name) pairs for the roster multi-select
func VolunteerOptions(db *sql.DB) ([]models.Volunteer, error) {
	rows, err := db.Query(`SELECT id, first_name, last_name FROM volunteers ORDER BY last_name, first_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var opts []models.Volunteer
	for rows.Next() {
		var v models.Volunteer
		if err := rows.Scan(&v.ID, &v.FirstName, &v.LastName); err != nil {
			return nil, err
		}
		opts = append(opts, v)
	}
	return opts, rows.Err()
}
