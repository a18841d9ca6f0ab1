package store

import "hotelops/models"

// ActionType enumerates every state transition the reducer understands.
// Any other type is a no-op returning the same state.
type ActionType string

const (
	SetSelectedProperty     ActionType = "SET_SELECTED_PROPERTY"
	UpdateRoomStatus        ActionType = "UPDATE_ROOM_STATUS"
	AssignRoom              ActionType = "ASSIGN_ROOM"
	UpdateMaintenanceStatus ActionType = "UPDATE_MAINTENANCE_STATUS"
	AddMaintenanceNote      ActionType = "ADD_MAINTENANCE_NOTE"
	AssignMaintenance       ActionType = "ASSIGN_MAINTENANCE"
	UpdateSettings          ActionType = "UPDATE_SETTINGS"
	AddToast                ActionType = "ADD_TOAST"
	RemoveToast             ActionType = "REMOVE_TOAST"
	ResetData               ActionType = "RESET_DATA"
	LoadPersistedState      ActionType = "LOAD_PERSISTED_STATE"
)

// Action is one command into the store.
type Action struct {
	Type    ActionType
	Payload any
}

// SetSelectedPropertyPayload scopes the dashboard to one property, or "all".
type SetSelectedPropertyPayload struct {
	PropertyID string
}

// UpdateRoomStatusPayload changes a room's housekeeping status. AssignedTo
// is only applied when non-empty.
type UpdateRoomStatusPayload struct {
	Room       string
	PropertyID string
	Status     models.RoomStatus
	AssignedTo string
}

// AssignRoomPayload assigns a staff member to a room, forcing it in progress.
// StaffName is carried for the toast message only.
type AssignRoomPayload struct {
	Room      string
	StaffID   string
	StaffName string
}

// UpdateMaintenanceStatusPayload changes a ticket's status. AssignedTo is
// only applied when non-empty.
type UpdateMaintenanceStatusPayload struct {
	ID         string
	Status     models.TicketStatus
	AssignedTo string
}

// AddMaintenanceNotePayload appends a note to a ticket.
type AddMaintenanceNotePayload struct {
	ID   string
	Note string
}

// AssignMaintenancePayload assigns a staff member to a ticket, forcing it
// in progress.
type AssignMaintenancePayload struct {
	ID        string
	StaffID   string
	StaffName string
}

// SettingsPatch shallow-merges into settings: nil fields are left alone,
// a non-nil Alerts replaces the alert block wholesale.
type SettingsPatch struct {
	DarkMode *bool
	Alerts   *models.AlertSettings
}

// AddToastPayload appends a toast; the reducer assigns the id.
type AddToastPayload struct {
	Message string
	Type    models.ToastType
}

// RemoveToastPayload dismisses a toast by id.
type RemoveToastPayload struct {
	ID string
}

// LoadPersistedStatePayload merges externally loaded state over the seed
// state. Nil fields were not persisted and keep their current value.
type LoadPersistedStatePayload struct {
	Rooms            []models.Room
	Maintenance      []models.MaintenanceTicket
	Settings         *models.Settings
	SelectedProperty *string
}
