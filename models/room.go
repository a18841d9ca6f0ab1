package models

// RoomStatus is the housekeeping state of a single room.
type RoomStatus string

const (
	RoomCleaned             RoomStatus = "cleaned"
	RoomPending             RoomStatus = "pending"
	RoomInProgress          RoomStatus = "in-progress"
	RoomMaintenanceRequired RoomStatus = "maintenance-required"
)

// Room is a single guest room tracked by housekeeping.
// The room label is unique within a property, not globally.
type Room struct {
	Room       string     `json:"room"`
	PropertyID string     `json:"propertyId"`
	Status     RoomStatus `json:"status"`
	AssignedTo string     `json:"assignedTo,omitempty"` // staff id
	Note       string     `json:"note,omitempty"`
}
