// Package metrics derives the dashboard KPIs from entity collections.
// Every function is pure and deterministic; metrics are recomputed after
// each state mutation, never mutated directly.
package metrics

import (
	"math"

	"hotelops/models"
)

// AggregateMetrics are the portfolio-wide revenue KPIs.
type AggregateMetrics struct {
	OccupancyRate float64 `json:"occupancyRate"`
	ADR           float64 `json:"adr"`
	RevPAR        float64 `json:"revpar"`
	TotalRooms    int     `json:"totalRooms"`
}

// HousekeepingMetrics are room counts by housekeeping status. Rooms that
// are in progress sit outside the three reporting buckets and are exposed
// separately so the counts always reconcile against the room list.
type HousekeepingMetrics struct {
	Cleaned             int `json:"cleaned"`
	Pending             int `json:"pending"`
	MaintenanceRequired int `json:"maintenanceRequired"`
	InProgress          int `json:"inProgress"`
}

// MaintenanceMetrics are ticket counts by status.
type MaintenanceMetrics struct {
	Open       int `json:"open"`
	InProgress int `json:"inProgress"`
	Resolved   int `json:"resolved"`
}

// Snapshot bundles all derived metrics.
type Snapshot struct {
	Aggregate    AggregateMetrics    `json:"aggregate"`
	Housekeeping HousekeepingMetrics `json:"housekeeping"`
	Maintenance  MaintenanceMetrics  `json:"maintenance"`
}

// Aggregate computes the portfolio KPIs. Occupied-room counts are floored
// per property before summing. With no properties or no occupied rooms the
// affected figures are zero rather than NaN.
func Aggregate(properties []models.Property) AggregateMetrics {
	var totalRooms, totalOccupied int
	for _, p := range properties {
		totalRooms += p.RoomsTotal
		totalOccupied += int(math.Floor(float64(p.RoomsTotal) * p.OccupancyRate))
	}
	if totalRooms == 0 {
		return AggregateMetrics{}
	}

	m := AggregateMetrics{
		OccupancyRate: float64(totalOccupied) / float64(totalRooms),
		TotalRooms:    totalRooms,
	}

	if totalOccupied > 0 {
		var weighted float64
		for _, p := range properties {
			weighted += p.ADR * p.OccupancyRate * float64(p.RoomsTotal)
		}
		m.ADR = weighted / float64(totalOccupied)
	}

	var revparSum float64
	for _, p := range properties {
		revparSum += p.RevPAR
	}
	m.RevPAR = revparSum / float64(len(properties))

	return m
}

// Housekeeping counts rooms by status.
func Housekeeping(rooms []models.Room) HousekeepingMetrics {
	var m HousekeepingMetrics
	for _, r := range rooms {
		switch r.Status {
		case models.RoomCleaned:
			m.Cleaned++
		case models.RoomPending:
			m.Pending++
		case models.RoomMaintenanceRequired:
			m.MaintenanceRequired++
		case models.RoomInProgress:
			m.InProgress++
		}
	}
	return m
}

// Maintenance counts tickets by status.
func Maintenance(tickets []models.MaintenanceTicket) MaintenanceMetrics {
	var m MaintenanceMetrics
	for _, t := range tickets {
		switch t.Status {
		case models.TicketOpen:
			m.Open++
		case models.TicketInProgress:
			m.InProgress++
		case models.TicketResolved:
			m.Resolved++
		}
	}
	return m
}

// Compute derives the full metrics snapshot from the entity collections.
func Compute(properties []models.Property, rooms []models.Room, tickets []models.MaintenanceTicket) Snapshot {
	return Snapshot{
		Aggregate:    Aggregate(properties),
		Housekeeping: Housekeeping(rooms),
		Maintenance:  Maintenance(tickets),
	}
}
