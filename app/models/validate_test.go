package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validDisaster() *Disaster {
	return &Disaster{
		Name:      "Flood",
		Location:  "Riverside",
		Magnitude: 4.5,
		StartDate: date(2025, time.March, 1),
		Status:    DisasterOpen,
	}
}

func TestDisasterValidate(t *testing.T) {
	require.NoError(t, validDisaster().Validate())

	d := validDisaster()
	d.Name = ""
	assert.EqualError(t, d.Validate(), "name is required")

	d = validDisaster()
	d.Location = ""
	assert.EqualError(t, d.Validate(), "location is required")

	d = validDisaster()
	d.StartDate = time.Time{}
	assert.Error(t, d.Validate())

	d = validDisaster()
	d.Status = "Finished"
	assert.Error(t, d.Validate())
}

func TestDisasterValidateEndDate(t *testing.T) {
	d := validDisaster()
	end := date(2025, time.February, 1)
	d.EndDate = &end
	assert.EqualError(t, d.Validate(), "end date cannot be before start date")

	// Same day is allowed
	end = d.StartDate
	d.EndDate = &end
	assert.NoError(t, d.Validate())

	d.EndDate = nil
	assert.NoError(t, d.Validate(), "open-ended disasters are fine")
}

func TestReliefCenterValidate(t *testing.T) {
	rc := &ReliefCenter{Name: "North Shelter", Capacity: 100, CurrentLoad: 40}
	require.NoError(t, rc.Validate())

	rc.CurrentLoad = 100
	assert.NoError(t, rc.Validate(), "load equal to capacity is allowed")

	rc.CurrentLoad = 101
	assert.Error(t, rc.Validate())

	rc = &ReliefCenter{Name: "", Capacity: 10}
	assert.EqualError(t, rc.Validate(), "name is required")

	rc = &ReliefCenter{Name: "x", Capacity: -1}
	assert.Error(t, rc.Validate())

	rc = &ReliefCenter{Name: "x", Capacity: 10, CurrentLoad: -1}
	assert.Error(t, rc.Validate())
}

func TestCenterResourceValidate(t *testing.T) {
	cr := &CenterResource{CenterID: 1, ResourceID: 2, QuantityOnHand: 0}
	require.NoError(t, cr.Validate())

	cr.QuantityOnHand = -1
	assert.Error(t, cr.Validate())

	assert.Error(t, (&CenterResource{ResourceID: 2}).Validate())
	assert.Error(t, (&CenterResource{CenterID: 1}).Validate())
}

func TestTaskValidate(t *testing.T) {
	task := &Task{DisasterID: 1, Description: "Distribute water", Status: TaskPending}
	require.NoError(t, task.Validate())

	task.DisasterID = 0
	assert.EqualError(t, task.Validate(), "disaster is required")

	task = &Task{DisasterID: 1, Status: TaskPending}
	assert.EqualError(t, task.Validate(), "description is required")

	task = &Task{DisasterID: 1, Description: "x", Status: "Started"}
	assert.Error(t, task.Validate())
}

func TestDonationValidate(t *testing.T) {
	n := &Donation{
		DonorID:      3,
		DonationType: DonationCash,
		Amount:       250,
		DonationDate: date(2025, time.June, 10),
	}
	require.NoError(t, n.Validate())

	n.Amount = 0
	assert.NoError(t, n.Validate(), "zero-amount in-kind gifts are allowed")

	n.Amount = -1
	assert.Error(t, n.Validate())

	n = &Donation{DonationType: DonationCash, Amount: 1, DonationDate: date(2025, time.June, 10)}
	assert.EqualError(t, n.Validate(), "donor is required")

	n = &Donation{DonorID: 3, DonationType: "Pledge", Amount: 1, DonationDate: date(2025, time.June, 10)}
	assert.Error(t, n.Validate())

	n = &Donation{DonorID: 3, DonationType: DonationCash, Amount: 1}
	assert.Error(t, n.Validate(), "date is required")
}

func TestDonationAllocationValidate(t *testing.T) {
	a := &DonationAllocation{DonationID: 1, ResourceID: 2, Quantity: 10, AmountUsed: 50}
	require.NoError(t, a.Validate())

	a.TaskID = nil
	assert.NoError(t, a.Validate(), "the task link is optional")

	assert.Error(t, (&DonationAllocation{ResourceID: 2}).Validate())
	assert.Error(t, (&DonationAllocation{DonationID: 1}).Validate())
	assert.Error(t, (&DonationAllocation{DonationID: 1, ResourceID: 2, Quantity: -1}).Validate())
	assert.Error(t, (&DonationAllocation{DonationID: 1, ResourceID: 2, AmountUsed: -0.01}).Validate())
}

func TestFullName(t *testing.T) {
	v := &Volunteer{FirstName: "Ada", LastName: "Okello"}
	assert.Equal(t, "Ada Okello", v.FullName())

	d := &Donor{FirstName: "Sam", LastName: "Kintu"}
	assert.Equal(t, "Sam Kintu", d.FullName())
}

func TestVolunteerDonorValidate(t *testing.T) {
	assert.Error(t, (&Volunteer{FirstName: "Ada"}).Validate())
	assert.Error(t, (&Volunteer{LastName: "Okello"}).Validate())
	assert.NoError(t, (&Volunteer{FirstName: "Ada", LastName: "Okello"}).Validate())

	assert.Error(t, (&Donor{}).Validate())
	assert.NoError(t, (&Donor{FirstName: "Sam", LastName: "Kintu"}).Validate())
}
