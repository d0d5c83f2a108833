package database

import (
	"database/sql"

	"github.com/henry-rob17/RELIEFASSIST/app/models"
	"golang.org/x/crypto/bcrypt"
)

// hashPassword hashes a password using bcrypt
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, role, created_at, updated_at
			  FROM users WHERE email = $1`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.Role,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID int) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, role, created_at, updated_at
			  FROM users WHERE id = $1`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Email, &user.Password, &user.Role,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser hashes the password and inserts the account. The unique index
// on email rejects duplicate registrations.
func CreateUser(db *sql.DB, user *models.User) error {
	hashed, err := hashPassword(user.Password)
	if err != nil {
		return err
	}

	query := `INSERT INTO users (email, password, role, created_at, updated_at)
			  VALUES ($1, $2, $3, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query, user.Email, hashed, user.Role).Scan(
		&user.ID, &user.CreatedAt, &user.UpdatedAt,
	)
}

func GetUsers(db *sql.DB) ([]models.User, error) {
	query := `SELECT id, email, role, created_at, updated_at FROM users ORDER BY email`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func UpdateUserRole(db *sql.DB, userID int, role models.Role) error {
	query := `UPDATE users SET role = $1, updated_at = NOW() WHERE id = $2`
	res, err := db.Exec(query, role, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteUser(db *sql.DB, userID int) error {
	query := `DELETE FROM users WHERE id = $1`
	_, err := db.Exec(query, userID)
	return err
}

func UpdateUserPassword(db *sql.DB, userID int, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`
	_, err := db.Exec(query, hashedPassword, userID)
	return err
}

// UpsertManager records a manager's office, creating the extension row on
// first write.
func UpsertManager(db *sql.DB, userID int, office string) error {
	query := `INSERT INTO managers (user_id, office) VALUES ($1, $2)
			  ON CONFLICT (user_id) DO UPDATE SET office = EXCLUDED.office`
	_, err := db.Exec(query, userID, office)
	return err
}

func GetManagerByUserID(db *sql.DB, userID int) (*models.Manager, error) {
	m := &models.Manager{}
	query := `SELECT m.id, m.user_id, m.office, u.email
			  FROM managers m JOIN users u ON u.id = m.user_id
			  WHERE m.user_id = $1`
	err := db.QueryRow(query, userID).Scan(&m.ID, &m.UserID, &m.Office, &m.Email)
	if err != nil {
		return nil, err
	}
	return m, nil
}
