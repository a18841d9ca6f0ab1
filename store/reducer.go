package store

import (
	"fmt"
	"time"

	"hotelops/metrics"
	"hotelops/models"

	"github.com/google/uuid"
)

// Reducer applies actions to state. It is pure given its injected clock
// and id source; tests swap those for deterministic values.
type Reducer struct {
	initial State
	now     func() time.Time
	newID   func() string
}

// NewReducer builds a reducer whose RESET_DATA branch restores the given
// initial state.
func NewReducer(initial State) *Reducer {
	return &Reducer{
		initial: initial,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// WithClock overrides the time and id sources (used by tests).
func (r *Reducer) WithClock(now func() time.Time, newID func() string) *Reducer {
	r.now = now
	r.newID = newID
	return r
}

// Reduce returns the next state for an action. Unrecognized action types
// and stale entity references are silent no-ops, never errors.
func (r *Reducer) Reduce(state State, action Action) State {
	switch action.Type {
	case SetSelectedProperty:
		p, ok := action.Payload.(SetSelectedPropertyPayload)
		if !ok {
			return state
		}
		state.SelectedProperty = p.PropertyID
		return state

	case UpdateRoomStatus:
		p, ok := action.Payload.(UpdateRoomStatusPayload)
		if !ok {
			return state
		}
		rooms := make([]models.Room, len(state.Rooms))
		for i, room := range state.Rooms {
			if room.Room == p.Room && room.PropertyID == p.PropertyID {
				room.Status = p.Status
				if p.AssignedTo != "" {
					room.AssignedTo = p.AssignedTo
				}
			}
			rooms[i] = room
		}
		state.Rooms = rooms
		return r.withMetrics(state)

	case AssignRoom:
		p, ok := action.Payload.(AssignRoomPayload)
		if !ok {
			return state
		}
		matched := false
		rooms := make([]models.Room, len(state.Rooms))
		for i, room := range state.Rooms {
			if room.Room == p.Room {
				room.AssignedTo = p.StaffID
				room.Status = models.RoomInProgress
				matched = true
			}
			rooms[i] = room
		}
		if !matched {
			return state
		}
		state.Rooms = rooms
		state = r.withToast(state, fmt.Sprintf("Assigned %s to Room %s", p.StaffName, p.Room), models.ToastSuccess)
		return r.withMetrics(state)

	case UpdateMaintenanceStatus:
		p, ok := action.Payload.(UpdateMaintenanceStatusPayload)
		if !ok {
			return state
		}
		matched := false
		tickets := make([]models.MaintenanceTicket, len(state.Maintenance))
		for i, t := range state.Maintenance {
			if t.ID == p.ID {
				t.Status = p.Status
				if p.AssignedTo != "" {
					t.AssignedTo = p.AssignedTo
				}
				matched = true
			}
			tickets[i] = t
		}
		if !matched {
			return state
		}
		state.Maintenance = tickets
		state = r.withToast(state, fmt.Sprintf("Updated maintenance request status to %s", p.Status), models.ToastSuccess)
		return r.withMetrics(state)

	case AddMaintenanceNote:
		p, ok := action.Payload.(AddMaintenanceNotePayload)
		if !ok {
			return state
		}
		matched := false
		tickets := make([]models.MaintenanceTicket, len(state.Maintenance))
		for i, t := range state.Maintenance {
			if t.ID == p.ID {
				notes := make([]models.MaintenanceNote, len(t.Notes), len(t.Notes)+1)
				copy(notes, t.Notes)
				t.Notes = append(notes, models.MaintenanceNote{
					Timestamp: r.now(),
					Note:      p.Note,
				})
				matched = true
			}
			tickets[i] = t
		}
		if !matched {
			return state
		}
		state.Maintenance = tickets
		state = r.withToast(state, "Added reminder note to maintenance request", models.ToastInfo)
		return r.withMetrics(state)

	case AssignMaintenance:
		p, ok := action.Payload.(AssignMaintenancePayload)
		if !ok {
			return state
		}
		matched := false
		tickets := make([]models.MaintenanceTicket, len(state.Maintenance))
		for i, t := range state.Maintenance {
			if t.ID == p.ID {
				t.AssignedTo = p.StaffID
				t.Status = models.TicketInProgress
				matched = true
			}
			tickets[i] = t
		}
		if !matched {
			return state
		}
		state.Maintenance = tickets
		state = r.withToast(state, fmt.Sprintf("Assigned %s to maintenance request", p.StaffName), models.ToastSuccess)
		return r.withMetrics(state)

	case UpdateSettings:
		p, ok := action.Payload.(SettingsPatch)
		if !ok {
			return state
		}
		if p.DarkMode != nil {
			state.Settings.DarkMode = *p.DarkMode
		}
		if p.Alerts != nil {
			state.Settings.Alerts = *p.Alerts
		}
		return state

	case AddToast:
		p, ok := action.Payload.(AddToastPayload)
		if !ok {
			return state
		}
		return r.withToast(state, p.Message, p.Type)

	case RemoveToast:
		p, ok := action.Payload.(RemoveToastPayload)
		if !ok {
			return state
		}
		toasts := make([]models.Toast, 0, len(state.Toasts))
		for _, t := range state.Toasts {
			if t.ID != p.ID {
				toasts = append(toasts, t)
			}
		}
		state.Toasts = toasts
		return state

	case ResetData:
		next := r.initial
		next.Settings = state.Settings // settings survive a reset
		return r.withMetrics(next)

	case LoadPersistedState:
		p, ok := action.Payload.(LoadPersistedStatePayload)
		if !ok {
			return state
		}
		if p.Rooms != nil {
			state.Rooms = p.Rooms
		}
		if p.Maintenance != nil {
			state.Maintenance = p.Maintenance
		}
		if p.Settings != nil {
			state.Settings = *p.Settings
		}
		if p.SelectedProperty != nil {
			state.SelectedProperty = *p.SelectedProperty
		}
		return r.withMetrics(state)

	default:
		return state
	}
}

func (r *Reducer) withMetrics(state State) State {
	state.Metrics = metrics.Compute(state.Properties, state.Rooms, state.Maintenance)
	return state
}

func (r *Reducer) withToast(state State, message string, kind models.ToastType) State {
	toasts := make([]models.Toast, len(state.Toasts), len(state.Toasts)+1)
	copy(toasts, state.Toasts)
	state.Toasts = append(toasts, models.Toast{
		ID:      r.newID(),
		Message: message,
		Type:    kind,
	})
	return state
}
