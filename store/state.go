// Package store holds all domain entities behind a single reducer-driven
// state container. Mutation happens only through Dispatch; every reducer
// branch that touches rooms, maintenance or properties recomputes the
// derived metrics as its final step.
package store

import (
	"hotelops/data"
	"hotelops/metrics"
	"hotelops/models"
)

// SelectedAll is the property filter value meaning "no filter".
const SelectedAll = "all"

// State is the full application state. Collections are treated as
// immutable: reducer branches replace slices, they never edit them in
// place, so snapshots can share backing arrays safely.
type State struct {
	Properties        []models.Property          `json:"properties"`
	Staff             []models.StaffMember       `json:"staff"`
	GuestMetrics      models.GuestMetrics        `json:"guestMetrics"`
	Rooms             []models.Room              `json:"rooms"`
	Maintenance       []models.MaintenanceTicket `json:"maintenance"`
	RevenueTimeseries []models.RevenueDataPoint  `json:"revenueTimeseries"`
	SelectedProperty  string                     `json:"selectedProperty"`
	Settings          models.Settings            `json:"settings"`
	Toasts            []models.Toast             `json:"toasts"`
	Metrics           metrics.Snapshot           `json:"metrics"`
}

// InitialState builds the seed state from fixtures, with metrics derived.
func InitialState(f data.Fixtures) State {
	s := State{
		Properties:        f.Properties,
		Staff:             f.Staff,
		GuestMetrics:      f.GuestMetrics,
		Rooms:             f.Rooms,
		Maintenance:       f.Maintenance,
		RevenueTimeseries: f.Revenue,
		SelectedProperty:  SelectedAll,
		Settings:          models.DefaultSettings(),
	}
	s.Metrics = metrics.Compute(s.Properties, s.Rooms, s.Maintenance)
	return s
}

// RoomsFor returns the rooms scoped to a property, or all rooms when the
// filter is empty or "all".
func (s State) RoomsFor(propertyID string) []models.Room {
	if propertyID == "" || propertyID == SelectedAll {
		return s.Rooms
	}
	var out []models.Room
	for _, r := range s.Rooms {
		if r.PropertyID == propertyID {
			out = append(out, r)
		}
	}
	return out
}

// TicketsFor returns the maintenance tickets scoped to a property.
func (s State) TicketsFor(propertyID string) []models.MaintenanceTicket {
	if propertyID == "" || propertyID == SelectedAll {
		return s.Maintenance
	}
	var out []models.MaintenanceTicket
	for _, t := range s.Maintenance {
		if t.PropertyID == propertyID {
			out = append(out, t)
		}
	}
	return out
}

// RevenueFor returns the revenue timeseries scoped to a property.
func (s State) RevenueFor(propertyID string) []models.RevenueDataPoint {
	if propertyID == "" || propertyID == SelectedAll {
		return s.RevenueTimeseries
	}
	var out []models.RevenueDataPoint
	for _, p := range s.RevenueTimeseries {
		if p.PropertyID == propertyID {
			out = append(out, p)
		}
	}
	return out
}

// StaffFor returns staff scoped to a department, or all staff when the
// filter is empty.
func (s State) StaffFor(department models.Department) []models.StaffMember {
	if department == "" {
		return s.Staff
	}
	var out []models.StaffMember
	for _, m := range s.Staff {
		if m.Department == department {
			out = append(out, m)
		}
	}
	return out
}

// FindRoom locates a room by label and property.
func (s State) FindRoom(room, propertyID string) (models.Room, bool) {
	for _, r := range s.Rooms {
		if r.Room == room && r.PropertyID == propertyID {
			return r, true
		}
	}
	return models.Room{}, false
}

// FindTicket locates a maintenance ticket by id.
func (s State) FindTicket(id string) (models.MaintenanceTicket, bool) {
	for _, t := range s.Maintenance {
		if t.ID == id {
			return t, true
		}
	}
	return models.MaintenanceTicket{}, false
}
