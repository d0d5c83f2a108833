package database

import (
	"database/sql"

	"github.com/henry-rob17/RELIEFASSIST/app/models"
)

// CreateDonation adds a new donation. The donor foreign key rejects unknown
// donor ids.
func CreateDonation(db *sql.DB, n *models.Donation) error {
	query := `
		INSERT INTO donations (donor_id, donation_type, amount, donation_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return db.QueryRow(query, n.DonorID, n.DonationType, n.Amount, n.DonationDate).
		Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
}

func GetDonationByID(db *sql.DB, id int) (*models.Donation, error) {
	n := &models.Donation{}
	query := `
		SELECT n.id, n.donor_id, n.donation_type, n.amount, n.donation_date,
		       n.created_at, n.updated_at, d.first_name || ' ' || d.last_name
		FROM donations n
		JOIN donors d ON d.id = n.donor_id
		WHERE n.id = $1
	`
	err := db.QueryRow(query, id).Scan(
		&n.ID, &n.DonorID, &n.DonationType, &n.Amount, &n.DonationDate,
		&n.CreatedAt, &n.UpdatedAt, &n.DonorName,
	)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func UpdateDonation(db *sql.DB, n *models.Donation) error {
	query := `
		UPDATE donations
		SET donor_id = $1, donation_type = $2, amount = $3, donation_date = $4, updated_at = NOW()
		WHERE id = $5
	`
	res, err := db.Exec(query, n.DonorID, n.DonationType, n.Amount, n.DonationDate, n.ID)
	if err != nil {
		return err
	}
	if n2, _ := res.RowsAffected(); n2 == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetDonationSummaries reads the donation_summary view: one row per donation
// with zero-defaulted allocation totals.
func GetDonationSummaries(db *sql.DB) ([]models.DonationSummary, error) {
	query := `
		SELECT donation_id, donor_name, donation_type, amount, donation_date,
		       amount_spent, items_allocated
		FROM donation_summary
		ORDER BY donation_id DESC
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []models.DonationSummary
	for rows.Next() {
		var s models.DonationSummary
		if err := rows.Scan(
			&s.DonationID, &s.DonorName, &s.DonationType, &s.Amount, &s.DonationDate,
			&s.AmountSpent, &s.ItemsAllocated,
		); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// GetDonationSummary reads one donation's row from the view.
func GetDonationSummary(db *sql.DB, donationID int) (*models.DonationSummary, error) {
	s := &models.DonationSummary{}
	query := `
		SELECT donation_id, donor_name, donation_type, amount, donation_date,
		       amount_spent, items_allocated
		FROM donation_summary WHERE donation_id = $1
	`
	err := db.QueryRow(query, donationID).Scan(
		&s.DonationID, &s.DonorName, &s.DonationType, &s.Amount, &s.DonationDate,
		&s.AmountSpent, &s.ItemsAllocated,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetDonationSummariesForDonor filters the view down to one donor's gifts,
// for the donor portal.
func GetDonationSummariesForDonor(db *sql.DB, donorID int) ([]models.DonationSummary, error) {
	query := `
		SELECT ds.donation_id, ds.donor_name, ds.donation_type, ds.amount, ds.donation_date,
		       ds.amount_spent, ds.items_allocated
		FROM donation_summary ds
		JOIN donations n ON n.id = ds.donation_id
		WHERE n.donor_id = $1
		ORDER BY ds.donation_id DESC
	`
	rows, err := db.Query(query, donorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []models.DonationSummary
	for rows.Next() {
		var s models.DonationSummary
		if err := rows.Scan(
			&s.DonationID, &s.DonorName, &s.DonationType, &s.Amount, &s.DonationDate,
			&s.AmountSpent, &s.ItemsAllocated,
		); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// CreateDonationAllocation records how part of a donation was applied. The
// donation and resource foreign keys reject unknown ids; the task reference
// is optional.
func CreateDonationAllocation(db *sql.DB, a *models.DonationAllocation) error {
	query := `
		INSERT INTO donation_allocations (donation_id, resource_id, task_id, quantity, amount_used, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`
	return db.QueryRow(query, a.DonationID, a.ResourceID, a.TaskID, a.Quantity, a.AmountUsed).
		Scan(&a.ID, &a.CreatedAt)
}

// GetDonationAllocations lists a donation's allocations with resource and
// task details for the donation detail page.
func GetDonationAllocations(db *sql.DB, donationID int) ([]models.DonationAllocation, error) {
	query := `
		SELECT da.id, da.donation_id, da.resource_id, da.task_id, da.quantity, da.amount_used,
		       da.created_at, r.resource_type, COALESCE(t.description, '')
		FROM donation_allocations da
		JOIN resources r ON r.id = da.resource_id
		LEFT JOIN tasks t ON t.id = da.task_id
		WHERE da.donation_id = $1
		ORDER BY da.id
	`
	rows, err := db.Query(query, donationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var allocations []models.DonationAllocation
	for rows.Next() {
		var a models.DonationAllocation
		if err := rows.Scan(
			&a.ID, &a.DonationID, &a.ResourceID, &a.TaskID, &a.Quantity, &a.AmountUsed,
			&a.CreatedAt, &a.ResourceType, &a.TaskDescription,
		); err != nil {
			return nil, err
		}
		allocations = append(allocations, a)
	}
	return allocations, rows.Err()
}

func DeleteDonationAllocation(db *sql.DB, id int) error {
	_, err := db.Exec(`DELETE FROM donation_allocations WHERE id = $1`, id)
	return err
}
