package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates any missing tables, constraints and views. Every
// statement is idempotent, so this is safe to run on every startup.
// schema.sql at the repository root holds the same DDL for psql use.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(20) NOT NULL DEFAULT 'public'
				CHECK (role IN ('admin', 'manager', 'volunteer', 'donor', 'public')),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS managers (
			id SERIAL PRIMARY KEY,
			user_id INTEGER UNIQUE NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			office VARCHAR(255) NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS disasters (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			location VARCHAR(255) NOT NULL,
			magnitude NUMERIC(6,2) NOT NULL DEFAULT 0,
			start_date DATE NOT NULL,
			end_date DATE,
			status VARCHAR(20) NOT NULL DEFAULT 'Open'
				CHECK (status IN ('Open', 'Ongoing', 'Closed')),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS relief_centers (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			location VARCHAR(255) NOT NULL DEFAULT '',
			capacity INTEGER NOT NULL DEFAULT 0 CHECK (capacity >= 0),
			current_load INTEGER NOT NULL DEFAULT 0 CHECK (current_load >= 0),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			CONSTRAINT relief_centers_load_within_capacity CHECK (current_load <= capacity)
		)`,
		`CREATE TABLE IF NOT EXISTS resources (
			id SERIAL PRIMARY KEY,
			resource_type VARCHAR(255) NOT NULL,
			unit VARCHAR(50) NOT NULL DEFAULT '',
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS center_resources (
			id SERIAL PRIMARY KEY,
			center_id INTEGER NOT NULL REFERENCES relief_centers(id) ON DELETE CASCADE,
			resource_id INTEGER NOT NULL REFERENCES resources(id) ON DELETE CASCADE,
			quantity_on_hand INTEGER NOT NULL DEFAULT 0 CHECK (quantity_on_hand >= 0),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			CONSTRAINT center_resources_center_resource_key UNIQUE (center_id, resource_id)
		)`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id SERIAL PRIMARY KEY,
			disaster_id INTEGER NOT NULL REFERENCES disasters(id),
			center_id INTEGER REFERENCES relief_centers(id),
			description TEXT NOT NULL,
			due_date DATE,
			status VARCHAR(20) NOT NULL DEFAULT 'Pending'
				CHECK (status IN ('Pending', 'In-Progress', 'Complete', 'Cancelled')),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS volunteers (
			id SERIAL PRIMARY KEY,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			phone VARCHAR(50) NOT NULL DEFAULT '',
			skills TEXT NOT NULL DEFAULT '',
			user_id INTEGER UNIQUE REFERENCES users(id) ON DELETE SET NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS task_assignments (
			id SERIAL PRIMARY KEY,
			task_id INTEGER NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
			volunteer_id INTEGER NOT NULL REFERENCES volunteers(id) ON DELETE CASCADE,
			assigned_date DATE NOT NULL DEFAULT CURRENT_DATE,
			hours_worked NUMERIC(6,2) NOT NULL DEFAULT 0 CHECK (hours_worked >= 0),
			CONSTRAINT task_assignments_task_volunteer_key UNIQUE (task_id, volunteer_id)
		)`,
		`CREATE TABLE IF NOT EXISTS donors (
			id SERIAL PRIMARY KEY,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			phone VARCHAR(50) NOT NULL DEFAULT '',
			user_id INTEGER UNIQUE REFERENCES users(id) ON DELETE SET NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS donations (
			id SERIAL PRIMARY KEY,
			donor_id INTEGER NOT NULL REFERENCES donors(id),
			donation_type VARCHAR(20) NOT NULL CHECK (donation_type IN ('Cash', 'In-Kind')),
			amount NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (amount >= 0),
			donation_date DATE NOT NULL DEFAULT CURRENT_DATE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS donation_allocations (
			id SERIAL PRIMARY KEY,
			donation_id INTEGER NOT NULL REFERENCES donations(id) ON DELETE CASCADE,
			resource_id INTEGER NOT NULL REFERENCES resources(id),
			task_id INTEGER REFERENCES tasks(id),
			quantity INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
			amount_used NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (amount_used >= 0),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_disaster_id ON tasks(disaster_id)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_center_id ON tasks(center_id)`,
		`CREATE INDEX IF NOT EXISTS idx_task_assignments_volunteer_id ON task_assignments(volunteer_id)`,
		`CREATE INDEX IF NOT EXISTS idx_donations_donor_id ON donations(donor_id)`,
		`CREATE INDEX IF NOT EXISTS idx_donation_allocations_donation_id ON donation_allocations(donation_id)`,
		`CREATE OR REPLACE VIEW center_stock AS
			SELECT rc.id AS center_id,
			       rc.name AS center_name,
			       r.resource_type,
			       cr.quantity_on_hand
			FROM center_resources cr
			JOIN relief_centers rc ON rc.id = cr.center_id
			JOIN resources r ON r.id = cr.resource_id
			ORDER BY rc.name, r.resource_type`,
		`CREATE OR REPLACE VIEW donation_summary AS
			SELECT n.id AS donation_id,
			       d.first_name || ' ' || d.last_name AS donor_name,
			       n.donation_type,
			       n.amount,
			       n.donation_date,
			       COALESCE(SUM(da.amount_used), 0) AS amount_spent,
			       COALESCE(SUM(da.quantity), 0) AS items_allocated
			FROM donations n
			JOIN donors d ON d.id = n.donor_id
			LEFT JOIN donation_allocations da ON da.donation_id = n.id
			GROUP BY n.id, d.first_name, d.last_name`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration statement failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
