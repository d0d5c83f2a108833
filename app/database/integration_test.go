package database

// These tests exercise what the schema itself enforces: unique pairs, the
// load-within-capacity check, roster replacement atomicity and the
// zero-defaulted donation_summary view. They need a real PostgreSQL database
// and are skipped unless TEST_DATABASE_URL is set, e.g.
//
//	TEST_DATABASE_URL="host=localhost user=postgres dbname=reliefassist_test sslmode=disable" go test ./app/database

import (
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henry-rob17/RELIEFASSIST/app/models"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	require.NoError(t, db.Ping())
	require.NoError(t, RunMigrations(db))
	t.Cleanup(func() { db.Close() })
	return db
}

func seedDisaster(t *testing.T, db *sql.DB) *models.Disaster {
	t.Helper()
	d := &models.Disaster{
		Name:      "Test Flood",
		Location:  "Test Valley",
		StartDate: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		Status:    models.DisasterOpen,
	}
	require.NoError(t, CreateDisaster(db, d))
	t.Cleanup(func() { db.Exec(`DELETE FROM disasters WHERE id = $1`, d.ID) })
	return d
}

func seedCenter(t *testing.T, db *sql.DB, capacity, load int) *models.ReliefCenter {
	t.Helper()
	rc := &models.ReliefCenter{Name: "Test Shelter", Capacity: capacity, CurrentLoad: load}
	require.NoError(t, CreateReliefCenter(db, rc))
	t.Cleanup(func() { db.Exec(`DELETE FROM relief_centers WHERE id = $1`, rc.ID) })
	return rc
}

func seedResource(t *testing.T, db *sql.DB) *models.Resource {
	t.Helper()
	r := &models.Resource{ResourceType: "Test Water", Unit: "litres"}
	require.NoError(t, CreateResource(db, r))
	t.Cleanup(func() { db.Exec(`DELETE FROM resources WHERE id = $1`, r.ID) })
	return r
}

func seedTask(t *testing.T, db *sql.DB, disasterID int) *models.Task {
	t.Helper()
	task := &models.Task{DisasterID: disasterID, Description: "Test distribution run", Status: models.TaskPending}
	require.NoError(t, CreateTask(db, task))
	t.Cleanup(func() { db.Exec(`DELETE FROM tasks WHERE id = $1`, task.ID) })
	return task
}

func seedVolunteer(t *testing.T, db *sql.DB, first string) *models.Volunteer {
	t.Helper()
	v := &models.Volunteer{FirstName: first, LastName: "Tester"}
	require.NoError(t, CreateVolunteer(db, v))
	t.Cleanup(func() { db.Exec(`DELETE FROM volunteers WHERE id = $1`, v.ID) })
	return v
}

func seedDonor(t *testing.T, db *sql.DB) *models.Donor {
	t.Helper()
	d := &models.Donor{FirstName: "Test", LastName: "Giver"}
	require.NoError(t, CreateDonor(db, d))
	t.Cleanup(func() { db.Exec(`DELETE FROM donors WHERE id = $1`, d.ID) })
	return d
}

func seedDonation(t *testing.T, db *sql.DB, donorID int, amount float64) *models.Donation {
	t.Helper()
	n := &models.Donation{
		DonorID:      donorID,
		DonationType: models.DonationCash,
		Amount:       amount,
		DonationDate: time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, CreateDonation(db, n))
	t.Cleanup(func() { db.Exec(`DELETE FROM donations WHERE id = $1`, n.ID) })
	return n
}

func rosterIDs(t *testing.T, db *sql.DB, taskID int) []int {
	t.Helper()
	roster, err := GetTaskAssignments(db, taskID)
	require.NoError(t, err)
	ids := make([]int, 0, len(roster))
	for _, ta := range roster {
		ids = append(ids, ta.VolunteerID)
	}
	return ids
}

func TestStockPairUniqueEnforced(t *testing.T) {
	db := testDB(t)
	center := seedCenter(t, db, 100, 0)
	resource := seedResource(t, db)

	first := &models.CenterResource{CenterID: center.ID, ResourceID: resource.ID, QuantityOnHand: 10}
	require.NoError(t, CreateCenterResource(db, first))

	dup := &models.CenterResource{CenterID: center.ID, ResourceID: resource.ID, QuantityOnHand: 5}
	err := CreateCenterResource(db, dup)
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err), "second row for the same (center, resource) pair must be rejected")

	// The original row is untouched
	got, err := GetCenterResourceByID(db, first.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.QuantityOnHand)
}

func TestRosterPairUniqueEnforced(t *testing.T) {
	db := testDB(t)
	disaster := seedDisaster(t, db)
	task := seedTask(t, db, disaster.ID)
	v := seedVolunteer(t, db, "Solo")

	err := ReplaceTaskAssignments(db, task.ID, []int{v.ID, v.ID})
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err), "the same volunteer twice in one roster must be rejected")
	assert.Empty(t, rosterIDs(t, db, task.ID), "the failed replace must not leave partial rows")
}

func TestReplaceRosterRollsBackOnUnknownVolunteer(t *testing.T) {
	db := testDB(t)
	disaster := seedDisaster(t, db)
	task := seedTask(t, db, disaster.ID)
	v1 := seedVolunteer(t, db, "Keep")
	v2 := seedVolunteer(t, db, "Also")

	require.NoError(t, ReplaceTaskAssignments(db, task.ID, []int{v1.ID, v2.ID}))
	require.ElementsMatch(t, []int{v1.ID, v2.ID}, rosterIDs(t, db, task.ID))

	err := ReplaceTaskAssignments(db, task.ID, []int{v1.ID, -1})
	require.Error(t, err)
	assert.True(t, IsForeignKeyViolation(err))
	assert.ElementsMatch(t, []int{v1.ID, v2.ID}, rosterIDs(t, db, task.ID),
		"a replace with a bad id must leave the previous roster intact")
}

func TestReplaceRosterEmptyListClears(t *testing.T) {
	db := testDB(t)
	disaster := seedDisaster(t, db)
	task := seedTask(t, db, disaster.ID)
	v := seedVolunteer(t, db, "Gone")

	require.NoError(t, ReplaceTaskAssignments(db, task.ID, []int{v.ID}))
	require.Len(t, rosterIDs(t, db, task.ID), 1)

	require.NoError(t, ReplaceTaskAssignments(db, task.ID, nil))
	assert.Empty(t, rosterIDs(t, db, task.ID))
}

func TestDonationSummaryZeroDefaults(t *testing.T) {
	db := testDB(t)
	donor := seedDonor(t, db)
	donation := seedDonation(t, db, donor.ID, 500)
	resource := seedResource(t, db)

	summary, err := GetDonationSummary(db, donation.ID)
	require.NoError(t, err)
	assert.Zero(t, summary.AmountSpent, "no allocations means zero spent, not NULL")
	assert.Zero(t, summary.ItemsAllocated)
	assert.Equal(t, 500.0, summary.Amount)
	assert.Equal(t, "Test Giver", summary.DonorName)

	a := &models.DonationAllocation{DonationID: donation.ID, ResourceID: resource.ID, Quantity: 12, AmountUsed: 120}
	require.NoError(t, CreateDonationAllocation(db, a))
	t.Cleanup(func() { db.Exec(`DELETE FROM donation_allocations WHERE id = $1`, a.ID) })

	summary, err = GetDonationSummary(db, donation.ID)
	require.NoError(t, err)
	assert.Equal(t, 120.0, summary.AmountSpent)
	assert.Equal(t, 12, summary.ItemsAllocated)
}

func TestCenterLoadWithinCapacityEnforced(t *testing.T) {
	db := testDB(t)
	center := seedCenter(t, db, 50, 50)

	// The database rejects the write even when the application layer is
	// bypassed
	center.CurrentLoad = 51
	err := UpdateReliefCenter(db, center)
	require.Error(t, err)
	assert.True(t, IsCheckViolation(err))

	got, err := GetReliefCenterByID(db, center.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, got.CurrentLoad, "the rejected update must not change the row")
}

func TestTaskOptionsListsSeededTasks(t *testing.T) {
	db := testDB(t)
	disaster := seedDisaster(t, db)
	task := seedTask(t, db, disaster.ID)

	opts, err := TaskOptions(db)
	require.NoError(t, err)

	found := false
	for _, o := range opts {
		if o.ID == task.ID {
			found = true
			assert.Equal(t, "Test distribution run", o.Description)
		}
	}
	assert.True(t, found, "select options must include the seeded task")
}

func TestNegativeStockRejected(t *testing.T) {
	db := testDB(t)
	center := seedCenter(t, db, 100, 0)
	resource := seedResource(t, db)

	cr := &models.CenterResource{CenterID: center.ID, ResourceID: resource.ID, QuantityOnHand: 3}
	require.NoError(t, CreateCenterResource(db, cr))

	cr.QuantityOnHand = -1
	err := UpdateCenterResource(db, cr)
	require.Error(t, err)
	assert.True(t, IsCheckViolation(err))
}
