package metrics

import (
	"testing"

	"hotelops/models"

	"github.com/stretchr/testify/assert"
)

func TestAggregate_BoundsAndTotals(t *testing.T) {
	props := []models.Property{
		{ID: "a", Name: "A", RoomsTotal: 100, OccupancyRate: 0.9, ADR: 200, RevPAR: 180},
		{ID: "b", Name: "B", RoomsTotal: 50, OccupancyRate: 0.5, ADR: 150, RevPAR: 75},
	}

	m := Aggregate(props)

	assert.Equal(t, 150, m.TotalRooms)
	// floor(100*0.9)=90, floor(50*0.5)=25 -> 115/150
	assert.InDelta(t, 115.0/150.0, m.OccupancyRate, 1e-9)
	assert.GreaterOrEqual(t, m.OccupancyRate, 0.0)
	assert.LessOrEqual(t, m.OccupancyRate, 1.0)
	// occupancy-weighted ADR: (200*0.9*100 + 150*0.5*50) / 115
	assert.InDelta(t, (200*0.9*100+150*0.5*50)/115.0, m.ADR, 1e-9)
	// RevPAR is an unweighted mean.
	assert.InDelta(t, (180.0+75.0)/2.0, m.RevPAR, 1e-9)
}

func TestAggregate_EmptyInputIsZeroNotNaN(t *testing.T) {
	m := Aggregate(nil)
	assert.Zero(t, m.TotalRooms)
	assert.Zero(t, m.OccupancyRate)
	assert.Zero(t, m.ADR)
	assert.Zero(t, m.RevPAR)
}

func TestAggregate_ZeroOccupiedRooms(t *testing.T) {
	props := []models.Property{
		{ID: "a", Name: "A", RoomsTotal: 40, OccupancyRate: 0, ADR: 120, RevPAR: 0},
	}
	m := Aggregate(props)
	assert.Equal(t, 40, m.TotalRooms)
	assert.Zero(t, m.OccupancyRate)
	assert.Zero(t, m.ADR)
}

func TestHousekeeping_BucketsReconcile(t *testing.T) {
	rooms := []models.Room{
		{Room: "101", PropertyID: "a", Status: models.RoomCleaned},
		{Room: "102", PropertyID: "a", Status: models.RoomCleaned},
		{Room: "103", PropertyID: "a", Status: models.RoomPending},
		{Room: "104", PropertyID: "a", Status: models.RoomInProgress},
		{Room: "105", PropertyID: "a", Status: models.RoomMaintenanceRequired},
	}

	m := Housekeeping(rooms)

	assert.Equal(t, 2, m.Cleaned)
	assert.Equal(t, 1, m.Pending)
	assert.Equal(t, 1, m.MaintenanceRequired)
	assert.Equal(t, 1, m.InProgress)

	// The three reporting buckets cover everything except in-progress rooms.
	assert.LessOrEqual(t, m.Cleaned+m.Pending+m.MaintenanceRequired, len(rooms))
	assert.Equal(t, len(rooms), m.Cleaned+m.Pending+m.MaintenanceRequired+m.InProgress)
}

func TestHousekeeping_EqualityWithoutInProgress(t *testing.T) {
	rooms := []models.Room{
		{Room: "101", PropertyID: "a", Status: models.RoomCleaned},
		{Room: "102", PropertyID: "a", Status: models.RoomPending},
	}
	m := Housekeeping(rooms)
	assert.Equal(t, len(rooms), m.Cleaned+m.Pending+m.MaintenanceRequired)
}

func TestMaintenance_Counts(t *testing.T) {
	tickets := []models.MaintenanceTicket{
		{ID: "1", PropertyID: "a", Issue: "x", Status: models.TicketOpen},
		{ID: "2", PropertyID: "a", Issue: "y", Status: models.TicketOpen},
		{ID: "3", PropertyID: "a", Issue: "z", Status: models.TicketInProgress},
		{ID: "4", PropertyID: "a", Issue: "w", Status: models.TicketResolved},
	}

	m := Maintenance(tickets)

	assert.Equal(t, 2, m.Open)
	assert.Equal(t, 1, m.InProgress)
	assert.Equal(t, 1, m.Resolved)
}

func TestCompute_Bundles(t *testing.T) {
	props := []models.Property{{ID: "a", Name: "A", RoomsTotal: 10, OccupancyRate: 0.5, ADR: 100, RevPAR: 50}}
	rooms := []models.Room{{Room: "101", PropertyID: "a", Status: models.RoomPending}}
	tickets := []models.MaintenanceTicket{{ID: "1", PropertyID: "a", Issue: "x", Status: models.TicketOpen}}

	snap := Compute(props, rooms, tickets)

	assert.Equal(t, 10, snap.Aggregate.TotalRooms)
	assert.Equal(t, 1, snap.Housekeeping.Pending)
	assert.Equal(t, 1, snap.Maintenance.Open)
}
