// Package data holds the seed fixtures for every entity collection.
// Fixtures are embedded at build time and validated on load; a record
// missing a required field is rejected rather than propagated.
package data

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"hotelops/models"
)

//go:embed properties.json
var propertiesJSON []byte

//go:embed rooms.json
var roomsJSON []byte

//go:embed staff.json
var staffJSON []byte

//go:embed maintenance.json
var maintenanceJSON []byte

//go:embed revenue.json
var revenueJSON []byte

//go:embed guest_metrics.json
var guestMetricsJSON []byte

// Fixtures is the full seed dataset.
type Fixtures struct {
	Properties   []models.Property
	Rooms        []models.Room
	Staff        []models.StaffMember
	Maintenance  []models.MaintenanceTicket
	Revenue      []models.RevenueDataPoint
	GuestMetrics models.GuestMetrics
}

// Load parses and validates the embedded fixtures.
func Load() (Fixtures, error) {
	var f Fixtures

	if err := json.Unmarshal(propertiesJSON, &f.Properties); err != nil {
		return f, fmt.Errorf("parse properties fixture: %w", err)
	}
	if err := json.Unmarshal(roomsJSON, &f.Rooms); err != nil {
		return f, fmt.Errorf("parse rooms fixture: %w", err)
	}
	if err := json.Unmarshal(staffJSON, &f.Staff); err != nil {
		return f, fmt.Errorf("parse staff fixture: %w", err)
	}
	if err := json.Unmarshal(maintenanceJSON, &f.Maintenance); err != nil {
		return f, fmt.Errorf("parse maintenance fixture: %w", err)
	}
	if err := json.Unmarshal(revenueJSON, &f.Revenue); err != nil {
		return f, fmt.Errorf("parse revenue fixture: %w", err)
	}
	if err := json.Unmarshal(guestMetricsJSON, &f.GuestMetrics); err != nil {
		return f, fmt.Errorf("parse guest metrics fixture: %w", err)
	}

	if err := f.validate(); err != nil {
		return f, err
	}
	return f, nil
}

// MustLoad is Load for startup paths where a broken fixture is fatal.
func MustLoad() Fixtures {
	f, err := Load()
	if err != nil {
		panic(err)
	}
	return f
}

func (f Fixtures) validate() error {
	propIDs := make(map[string]bool, len(f.Properties))
	for _, p := range f.Properties {
		if p.ID == "" || p.Name == "" || p.RoomsTotal <= 0 {
			return fmt.Errorf("property %q: missing required fields", p.ID)
		}
		if p.OccupancyRate < 0 || p.OccupancyRate > 1 {
			return fmt.Errorf("property %q: occupancy rate %v out of [0,1]", p.ID, p.OccupancyRate)
		}
		propIDs[p.ID] = true
	}
	for _, r := range f.Rooms {
		if r.Room == "" || r.PropertyID == "" || r.Status == "" {
			return fmt.Errorf("room %q: missing required fields", r.Room)
		}
		if !propIDs[r.PropertyID] {
			return fmt.Errorf("room %q: unknown property %q", r.Room, r.PropertyID)
		}
	}
	for _, s := range f.Staff {
		if s.ID == "" || s.Name == "" || s.Department == "" {
			return fmt.Errorf("staff %q: missing required fields", s.ID)
		}
	}
	for _, t := range f.Maintenance {
		if t.ID == "" || t.Issue == "" || t.Status == "" {
			return fmt.Errorf("ticket %q: missing required fields", t.ID)
		}
		if !propIDs[t.PropertyID] {
			return fmt.Errorf("ticket %q: unknown property %q", t.ID, t.PropertyID)
		}
	}
	return nil
}
