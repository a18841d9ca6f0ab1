package models

import "time"

// TicketStatus is the lifecycle state of a maintenance ticket.
type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in-progress"
	TicketResolved   TicketStatus = "resolved"
)

// TicketPriority ranks maintenance tickets.
type TicketPriority string

const (
	PriorityLow    TicketPriority = "low"
	PriorityMedium TicketPriority = "medium"
	PriorityHigh   TicketPriority = "high"
)

// MaintenanceNote is a timestamped annotation on a ticket.
type MaintenanceNote struct {
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note"`
}

// MaintenanceTicket is a reported maintenance issue. Tickets are seeded
// from fixtures and mutated in place; they are never deleted.
type MaintenanceTicket struct {
	ID         string            `json:"id"`
	PropertyID string            `json:"propertyId"`
	Issue      string            `json:"issue"`
	Priority   TicketPriority    `json:"priority"`
	Status     TicketStatus      `json:"status"`
	AssignedTo string            `json:"assignedTo,omitempty"` // staff id
	Notes      []MaintenanceNote `json:"notes"`
	CreatedAt  time.Time         `json:"createdAt"`
}
