package store

import (
	"fmt"
	"testing"
	"time"

	"hotelops/data"
	"hotelops/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReducer(t *testing.T) (*Reducer, State) {
	t.Helper()
	f, err := data.Load()
	require.NoError(t, err)
	initial := InitialState(f)

	seq := 0
	r := NewReducer(initial).WithClock(
		func() time.Time { return time.Date(2024, 1, 21, 12, 0, 0, 0, time.UTC) },
		func() string { seq++; return fmt.Sprintf("toast-%d", seq) },
	)
	return r, initial
}

func TestReduce_UnknownActionIsNoOp(t *testing.T) {
	r, s0 := testReducer(t)
	s1 := r.Reduce(s0, Action{Type: "SOMETHING_ELSE"})
	assert.Equal(t, s0, s1)
}

func TestReduce_SetSelectedProperty(t *testing.T) {
	r, s0 := testReducer(t)
	s1 := r.Reduce(s0, Action{Type: SetSelectedProperty, Payload: SetSelectedPropertyPayload{PropertyID: "hyatt-san-antonio-nw"}})
	assert.Equal(t, "hyatt-san-antonio-nw", s1.SelectedProperty)
	// Filter changes never touch entity collections or metrics.
	assert.Equal(t, s0.Metrics, s1.Metrics)
}

func TestReduce_UpdateRoomStatus_Idempotent(t *testing.T) {
	r, s0 := testReducer(t)
	action := Action{Type: UpdateRoomStatus, Payload: UpdateRoomStatusPayload{
		Room:       "305",
		PropertyID: "hyatt-san-antonio-nw",
		Status:     models.RoomCleaned,
	}}

	once := r.Reduce(s0, action)
	twice := r.Reduce(once, action)

	room, ok := once.FindRoom("305", "hyatt-san-antonio-nw")
	require.True(t, ok)
	assert.Equal(t, models.RoomCleaned, room.Status)

	// Same payload twice yields the same state (no toasts on this branch).
	assert.Equal(t, once, twice)
	// Cleaned count went up, pending went down.
	assert.Equal(t, s0.Metrics.Housekeeping.Cleaned+1, once.Metrics.Housekeeping.Cleaned)
	assert.Equal(t, s0.Metrics.Housekeeping.Pending-1, once.Metrics.Housekeeping.Pending)
}

func TestReduce_UpdateRoomStatus_MissingRoomIsNoOp(t *testing.T) {
	r, s0 := testReducer(t)
	s1 := r.Reduce(s0, Action{Type: UpdateRoomStatus, Payload: UpdateRoomStatusPayload{
		Room:       "999",
		PropertyID: "hyatt-san-antonio-nw",
		Status:     models.RoomCleaned,
	}})
	assert.Equal(t, s0.Rooms, s1.Rooms)
	assert.Equal(t, s0.Metrics, s1.Metrics)
}

func TestReduce_AssignRoom_RoundTrip(t *testing.T) {
	r, s0 := testReducer(t)
	s1 := r.Reduce(s0, Action{Type: AssignRoom, Payload: AssignRoomPayload{
		Room:      "305",
		StaffID:   "hk-1",
		StaffName: "Alex Johnson",
	}})

	room, ok := s1.FindRoom("305", "hyatt-san-antonio-nw")
	require.True(t, ok)
	assert.Equal(t, models.RoomInProgress, room.Status)
	assert.Equal(t, "hk-1", room.AssignedTo)

	require.Len(t, s1.Toasts, 1)
	assert.Equal(t, "Assigned Alex Johnson to Room 305", s1.Toasts[0].Message)
	assert.Equal(t, models.ToastSuccess, s1.Toasts[0].Type)
}

func TestReduce_AssignRoom_MissingRoomLeavesStateUntouched(t *testing.T) {
	r, s0 := testReducer(t)
	s1 := r.Reduce(s0, Action{Type: AssignRoom, Payload: AssignRoomPayload{
		Room: "999", StaffID: "hk-1", StaffName: "Alex Johnson",
	}})
	assert.Equal(t, s0, s1)
	assert.Empty(t, s1.Toasts)
}

func TestReduce_UpdateMaintenanceStatus(t *testing.T) {
	r, s0 := testReducer(t)
	s1 := r.Reduce(s0, Action{Type: UpdateMaintenanceStatus, Payload: UpdateMaintenanceStatusPayload{
		ID: "mnt-001", Status: models.TicketInProgress, AssignedTo: "mt-1",
	}})

	ticket, ok := s1.FindTicket("mnt-001")
	require.True(t, ok)
	assert.Equal(t, models.TicketInProgress, ticket.Status)
	assert.Equal(t, "mt-1", ticket.AssignedTo)

	assert.Equal(t, s0.Metrics.Maintenance.Open-1, s1.Metrics.Maintenance.Open)
	assert.Equal(t, s0.Metrics.Maintenance.InProgress+1, s1.Metrics.Maintenance.InProgress)
	require.Len(t, s1.Toasts, 1)
}

func TestReduce_AddMaintenanceNote_AppendsTimestamped(t *testing.T) {
	r, s0 := testReducer(t)
	s1 := r.Reduce(s0, Action{Type: AddMaintenanceNote, Payload: AddMaintenanceNotePayload{
		ID: "mnt-002", Note: "Reminder sent via assistant",
	}})

	ticket, ok := s1.FindTicket("mnt-002")
	require.True(t, ok)
	require.Len(t, ticket.Notes, 1)
	assert.Equal(t, "Reminder sent via assistant", ticket.Notes[0].Note)
	assert.Equal(t, time.Date(2024, 1, 21, 12, 0, 0, 0, time.UTC), ticket.Notes[0].Timestamp)

	// Original ticket is untouched; the reducer copies, never edits in place.
	orig, _ := s0.FindTicket("mnt-002")
	assert.Empty(t, orig.Notes)
}

func TestReduce_AssignMaintenance_ForcesInProgress(t *testing.T) {
	r, s0 := testReducer(t)
	s1 := r.Reduce(s0, Action{Type: AssignMaintenance, Payload: AssignMaintenancePayload{
		ID: "mnt-006", StaffID: "mt-1", StaffName: "Riley Wilson",
	}})

	ticket, ok := s1.FindTicket("mnt-006")
	require.True(t, ok)
	assert.Equal(t, models.TicketInProgress, ticket.Status)
	assert.Equal(t, "mt-1", ticket.AssignedTo)
	// Metrics track the status change.
	assert.Equal(t, s0.Metrics.Maintenance.InProgress+1, s1.Metrics.Maintenance.InProgress)
}

func TestReduce_UpdateSettings_ShallowMerge(t *testing.T) {
	r, s0 := testReducer(t)
	dark := true
	s1 := r.Reduce(s0, Action{Type: UpdateSettings, Payload: SettingsPatch{DarkMode: &dark}})

	assert.True(t, s1.Settings.DarkMode)
	// Untouched fields keep their values.
	assert.Equal(t, s0.Settings.Alerts, s1.Settings.Alerts)

	alerts := models.AlertSettings{OccupancyThreshold: 0.8, SatisfactionThreshold: 4.5, MaintenanceReminders: false}
	s2 := r.Reduce(s1, Action{Type: UpdateSettings, Payload: SettingsPatch{Alerts: &alerts}})
	assert.Equal(t, alerts, s2.Settings.Alerts)
	assert.True(t, s2.Settings.DarkMode)
}

func TestReduce_Toasts_AddAndRemove(t *testing.T) {
	r, s0 := testReducer(t)
	s1 := r.Reduce(s0, Action{Type: AddToast, Payload: AddToastPayload{Message: "hello", Type: models.ToastWarning}})
	require.Len(t, s1.Toasts, 1)

	s2 := r.Reduce(s1, Action{Type: RemoveToast, Payload: RemoveToastPayload{ID: s1.Toasts[0].ID}})
	assert.Empty(t, s2.Toasts)

	// Removing an unknown id leaves the list alone.
	s3 := r.Reduce(s1, Action{Type: RemoveToast, Payload: RemoveToastPayload{ID: "nope"}})
	assert.Equal(t, s1.Toasts, s3.Toasts)
}

func TestReduce_ResetData_RestoresFixturesKeepsSettings(t *testing.T) {
	r, s0 := testReducer(t)

	dark := true
	s := r.Reduce(s0, Action{Type: UpdateSettings, Payload: SettingsPatch{DarkMode: &dark}})
	s = r.Reduce(s, Action{Type: AssignRoom, Payload: AssignRoomPayload{Room: "305", StaffID: "hk-1", StaffName: "Alex Johnson"}})
	s = r.Reduce(s, Action{Type: UpdateMaintenanceStatus, Payload: UpdateMaintenanceStatusPayload{ID: "mnt-001", Status: models.TicketResolved}})

	reset := r.Reduce(s, Action{Type: ResetData})

	assert.Equal(t, s0.Rooms, reset.Rooms)
	assert.Equal(t, s0.Maintenance, reset.Maintenance)
	assert.Equal(t, s0.Metrics, reset.Metrics)
	// Settings survive the reset.
	assert.True(t, reset.Settings.DarkMode)
}

func TestReduce_LoadPersistedState_MergesAndRecomputes(t *testing.T) {
	r, s0 := testReducer(t)

	rooms := make([]models.Room, len(s0.Rooms))
	copy(rooms, s0.Rooms)
	for i := range rooms {
		rooms[i].Status = models.RoomCleaned
	}
	selected := "holiday-inn-stone-oak"

	s1 := r.Reduce(s0, Action{Type: LoadPersistedState, Payload: LoadPersistedStatePayload{
		Rooms:            rooms,
		SelectedProperty: &selected,
	}})

	assert.Equal(t, len(s0.Rooms), s1.Metrics.Housekeeping.Cleaned)
	assert.Equal(t, selected, s1.SelectedProperty)
	// Collections without persisted values keep the fixture data.
	assert.Equal(t, s0.Maintenance, s1.Maintenance)
	assert.Equal(t, s0.Settings, s1.Settings)
}
