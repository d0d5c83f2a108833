package database

import (
	"database/sql"

	"github.com/henry-rob17/RELIEFASSIST/app/models"
)

func CreateResource(db *sql.DB, r *models.Resource) error {
	query := `
		INSERT INTO resources (resource_type, unit, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return db.QueryRow(query, r.ResourceType, r.Unit).Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
}

func GetResources(db *sql.DB) ([]models.Resource, error) {
	query := `
		SELECT id, resource_type, unit, created_at, updated_at
		FROM resources
		ORDER BY resource_type
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resources []models.Resource
	for rows.Next() {
		var r models.Resource
		if err := rows.Scan(&r.ID, &r.ResourceType, &r.Unit, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		resources = append(resources, r)
	}
	return resources, rows.Err()
}

func GetResourceByID(db *sql.DB, id int) (*models.Resource, error) {
	r := &models.Resource{}
	query := `SELECT id, resource_type, unit, created_at, updated_at FROM resources WHERE id = $1`
	err := db.QueryRow(query, id).Scan(&r.ID, &r.ResourceType, &r.Unit, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func UpdateResource(db *sql.DB, r *models.Resource) error {
	query := `UPDATE resources SET resource_type = $1, unit = $2, updated_at = NOW() WHERE id = $3`
	res, err := db.Exec(query, r.ResourceType, r.Unit, r.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CreateCenterResource inserts a stock row. The unique (center_id,
// resource_id) constraint rejects a second row for the same pair; callers
// should update the existing row instead.
func CreateCenterResource(db *sql.DB, cr *models.CenterResource) error {
	query := `
		INSERT INTO center_resources (center_id, resource_id, quantity_on_hand, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return db.QueryRow(query, cr.CenterID, cr.ResourceID, cr.QuantityOnHand).
		Scan(&cr.ID, &cr.CreatedAt, &cr.UpdatedAt)
}

// GetCenterResources lists all stock rows joined with center and resource
// details for the public resources page.
func GetCenterResources(db *sql.DB) ([]models.CenterResource, error) {
	query := `
		SELECT cr.id, cr.center_id, cr.resource_id, cr.quantity_on_hand,
		       rc.name, r.resource_type, rc.capacity, rc.current_load
		FROM center_resources cr
		JOIN relief_centers rc ON rc.id = cr.center_id
		JOIN resources r ON r.id = cr.resource_id
		ORDER BY rc.name, r.resource_type
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stock []models.CenterResource
	for rows.Next() {
		var cr models.CenterResource
		if err := rows.Scan(
			&cr.ID, &cr.CenterID, &cr.ResourceID, &cr.QuantityOnHand,
			&cr.CenterName, &cr.ResourceType, &cr.Capacity, &cr.CurrentLoad,
		); err != nil {
			return nil, err
		}
		stock = append(stock, cr)
	}
	return stock, rows.Err()
}

func GetCenterResourceByID(db *sql.DB, id int) (*models.CenterResource, error) {
	cr := &models.CenterResource{}
	query := `
		SELECT id, center_id, resource_id, quantity_on_hand, created_at, updated_at
		FROM center_resources WHERE id = $1
	`
	err := db.QueryRow(query, id).Scan(
		&cr.ID, &cr.CenterID, &cr.ResourceID, &cr.QuantityOnHand, &cr.CreatedAt, &cr.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return cr, nil
}

func UpdateCenterResource(db *sql.DB, cr *models.CenterResource) error {
	query := `
		UPDATE center_resources
		SET center_id = $1, resource_id = $2, quantity_on_hand = $3, updated_at = NOW()
		WHERE id = $4
	`
	res, err := db.Exec(query, cr.CenterID, cr.ResourceID, cr.QuantityOnHand, cr.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetCenterStock reads the center_stock view: one row per (center, resource)
// pair, center then resource ordered.
func GetCenterStock(db *sql.DB) ([]models.CenterStock, error) {
	query := `SELECT center_id, center_name, resource_type, quantity_on_hand FROM center_stock`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stock []models.CenterStock
	for rows.Next() {
		var cs models.CenterStock
		if err := rows.Scan(&cs.CenterID, &cs.CenterName, &cs.ResourceType, &cs.QuantityOnHand); err != nil {
			return nil, err
		}
		stock = append(stock, cs)
	}
	return stock, rows.Err()
}

// GetCenterStockForCenter filters the view down to one center.
func GetCenterStockForCenter(db *sql.DB, centerID int) ([]models.CenterStock, error) {
	query := `
		SELECT center_id, center_name, resource_type, quantity_on_hand
		FROM center_stock WHERE center_id = $1
	`
	rows, err := db.Query(query, centerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stock []models.CenterStock
	for rows.Next() {
		var cs models.CenterStock
		if err := rows.Scan(&cs.CenterID, &cs.CenterName, &cs.ResourceType, &cs.QuantityOnHand); err != nil {
			return nil, err
		}
		stock = append(stock, cs)
	}
	return stock, rows.Err()
}

// ResourceOptions returns (id, resource_type) pairs for form select inputs
func ResourceOptions(db *sql.DB) ([]models.Resource, error) {
	rows, err := db.Query(`SELECT id, resource_type FROM resources ORDER BY resource_type`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var opts []models.Resource
	for rows.Next() {
		var r models.Resource
		if err := rows.Scan(&r.ID, &r.ResourceType); err != nil {
			return nil, err
		}
		opts = append(opts, r)
	}
	return opts, rows.Err()
}
