package assistant

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hotelops/models"
	"hotelops/store"
)

// Internal precondition failures. They never leave Execute; each maps to
// a clarifying response for the user.
var (
	ErrNoRoomParam     = errors.New("no room number in message")
	ErrNoEligibleStaff = errors.New("no eligible staff available")
	ErrTicketNotFound  = errors.New("no matching maintenance ticket")
)

// Dispatch is the command capability into the state store. The executor
// never mutates state directly.
type Dispatch func(store.Action)

// Result is the outcome of one executed intent.
type Result struct {
	Response string                 `json:"response"`
	Action   *models.NavigateAction `json:"action,omitempty"`
}

// Executor turns classified intents into responses and store commands.
type Executor struct {
	NavigateDelay time.Duration
	Now           func() time.Time
}

// NewExecutor builds an executor with the given deferred-navigation delay.
func NewExecutor(navigateDelay time.Duration) *Executor {
	return &Executor{NavigateDelay: navigateDelay, Now: time.Now}
}

// Execute handles one intent against a state snapshot. It is total over
// the intent domain: every precondition failure degrades to an
// informational response, never an error or panic.
func (e *Executor) Execute(intent models.Intent, snap store.State, dispatch Dispatch) Result {
	switch intent.Type {
	case models.IntentHousekeepingStatus:
		hk := snap.Metrics.Housekeeping
		return Result{
			Response: fmt.Sprintf("Current housekeeping status: %d rooms cleaned, %d pending, %d requiring maintenance.",
				hk.Cleaned, hk.Pending, hk.MaintenanceRequired),
			Action: e.navigate("/housekeeping"),
		}

	case models.IntentMaintenancePending:
		return Result{
			Response: fmt.Sprintf("There are %d pending maintenance requests.", snap.Metrics.Maintenance.Open),
			Action:   e.navigate("/maintenance"),
		}

	case models.IntentGuestSatisfaction:
		gm := snap.GuestMetrics
		return Result{
			Response: fmt.Sprintf("Current guest satisfaction score is %.1f/5.0 with an average response time of %d minutes.",
				gm.Satisfaction, gm.AvgResponseMins),
		}

	case models.IntentAssignCleaning:
		return e.assignCleaning(intent.Params, snap, dispatch)

	case models.IntentRemindMaintenance:
		return e.remindMaintenance(intent.Params, snap, dispatch)

	case models.IntentUpdateStatus:
		return Result{
			Response: "Status updates can be made from the Tasks or Maintenance pages.",
			Action:   e.navigate("/tasks"),
		}

	case models.IntentOccupancyCurrent:
		return Result{
			Response: fmt.Sprintf("Current overall occupancy rate is %.1f%%.", snap.Metrics.Aggregate.OccupancyRate*100),
			Action:   e.navigate("/revenue"),
		}

	case models.IntentOccupancyWeek:
		return e.occupancyWeek(snap)

	case models.IntentADRComparison:
		return Result{
			Response: fmt.Sprintf("Current average daily rate (ADR) is $%.2f. You can view detailed comparisons on the revenue page.",
				snap.Metrics.Aggregate.ADR),
			Action: e.navigate("/revenue"),
		}

	case models.IntentRevPARTrends:
		return Result{
			Response: fmt.Sprintf("Current RevPAR is $%.2f. View 30-day trends on the revenue analytics page.",
				snap.Metrics.Aggregate.RevPAR),
			Action: e.navigate("/revenue"),
		}

	default:
		return Result{
			Response: "I'm not sure how to help with that. I can assist with housekeeping status, maintenance requests, guest satisfaction, task assignments, and revenue analytics.",
		}
	}
}

func (e *Executor) assignCleaning(params models.IntentParams, snap store.State, dispatch Dispatch) Result {
	staff, err := firstEligibleCleaner(params, snap)
	switch {
	case errors.Is(err, ErrNoRoomParam):
		return Result{Response: "Please specify which room you'd like to assign cleaning to."}
	case errors.Is(err, ErrNoEligibleStaff):
		return Result{Response: fmt.Sprintf("No housekeeping staff currently available for Room %s.", params.Room)}
	}

	dispatch(store.Action{Type: store.AssignRoom, Payload: store.AssignRoomPayload{
		Room:      params.Room,
		StaffID:   staff.ID,
		StaffName: staff.Name,
	}})

	return Result{
		Response: fmt.Sprintf("Assigned %s to clean Room %s.", staff.Name, params.Room),
		Action:   e.navigate("/tasks"),
	}
}

func (e *Executor) remindMaintenance(params models.IntentParams, snap store.State, dispatch Dispatch) Result {
	if params.Room == "" {
		return Result{Response: "Please specify which room needs a maintenance reminder."}
	}

	ticket, err := findTicketByRoom(snap.Maintenance, params.Room)
	if errors.Is(err, ErrTicketNotFound) {
		return Result{Response: fmt.Sprintf("No maintenance request found for Room %s.", params.Room)}
	}

	dispatch(store.Action{Type: store.AddMaintenanceNote, Payload: store.AddMaintenanceNotePayload{
		ID:   ticket.ID,
		Note: fmt.Sprintf("Reminder sent via chatbot at %s", e.Now().Format(time.RFC3339)),
	}})

	return Result{
		Response: fmt.Sprintf("Reminder sent for maintenance issue in Room %s.", params.Room),
		Action:   e.navigate("/maintenance"),
	}
}

func (e *Executor) occupancyWeek(snap store.State) Result {
	series := snap.RevenueTimeseries
	if len(series) == 0 {
		return Result{Response: "No revenue data is available for the past week."}
	}
	recent := series
	if len(recent) > 7 {
		recent = recent[len(recent)-7:]
	}
	var sum float64
	for _, day := range recent {
		sum += day.Occupancy
	}
	avg := sum / float64(len(recent))

	return Result{
		Response: fmt.Sprintf("Average occupancy for the past week is %.1f%%.", avg*100),
		Action:   e.navigate("/revenue"),
	}
}

func (e *Executor) navigate(path string) *models.NavigateAction {
	return models.NewNavigateAction(path, e.NavigateDelay)
}

// firstEligibleCleaner picks the first available housekeeping member with
// the cleaning skill, in the order the staff collection was loaded. First
// eligible wins; there is no ranking.
func firstEligibleCleaner(params models.IntentParams, snap store.State) (models.StaffMember, error) {
	if params.Room == "" {
		return models.StaffMember{}, ErrNoRoomParam
	}
	for _, member := range snap.Staff {
		if member.Department == models.DeptHousekeeping && member.Available && member.HasSkill("cleaning") {
			return member, nil
		}
	}
	return models.StaffMember{}, ErrNoEligibleStaff
}

// findTicketByRoom returns the first ticket whose issue text mentions the
// room number. Substring matching is deliberately loose: issue texts are
// free-form and quick actions rely on phrases like "Room 202" appearing
// inside them.
func findTicketByRoom(tickets []models.MaintenanceTicket, room string) (models.MaintenanceTicket, error) {
	for _, t := range tickets {
		if strings.Contains(t.Issue, room) {
			return t, nil
		}
	}
	return models.MaintenanceTicket{}, ErrTicketNotFound
}
