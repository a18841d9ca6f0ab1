package assistant

import (
	"fmt"
	"testing"
	"time"

	"hotelops/data"
	"hotelops/models"
	"hotelops/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureState(t *testing.T) store.State {
	t.Helper()
	f, err := data.Load()
	require.NoError(t, err)
	return store.InitialState(f)
}

type dispatchRecorder struct {
	actions []store.Action
}

func (d *dispatchRecorder) dispatch(a store.Action) {
	d.actions = append(d.actions, a)
}

func newTestExecutor() *Executor {
	e := NewExecutor(time.Second)
	e.Now = func() time.Time { return time.Date(2024, 1, 21, 15, 30, 0, 0, time.UTC) }
	return e
}

func TestExecute_HousekeepingStatus(t *testing.T) {
	snap := fixtureState(t)
	rec := &dispatchRecorder{}

	res := newTestExecutor().Execute(Classify("Show me today's housekeeping status"), snap, rec.dispatch)

	hk := snap.Metrics.Housekeeping
	assert.Equal(t, fmt.Sprintf("Current housekeeping status: %d rooms cleaned, %d pending, %d requiring maintenance.",
		hk.Cleaned, hk.Pending, hk.MaintenanceRequired), res.Response)
	require.NotNil(t, res.Action)
	assert.Equal(t, "navigate", res.Action.Type)
	assert.Equal(t, "/housekeeping", res.Action.Path)
	assert.Empty(t, rec.actions, "status queries must not mutate state")
}

func TestExecute_MaintenancePending(t *testing.T) {
	snap := fixtureState(t)
	rec := &dispatchRecorder{}

	res := newTestExecutor().Execute(Classify("How many maintenance requests are pending?"), snap, rec.dispatch)

	assert.Equal(t, "There are 3 pending maintenance requests.", res.Response)
	require.NotNil(t, res.Action)
	assert.Equal(t, "/maintenance", res.Action.Path)
	assert.Empty(t, rec.actions)
}

func TestExecute_GuestSatisfaction(t *testing.T) {
	snap := fixtureState(t)

	res := newTestExecutor().Execute(Classify("What is the guest satisfaction score?"), snap, nil)

	assert.Equal(t, "Current guest satisfaction score is 4.6/5.0 with an average response time of 12 minutes.", res.Response)
	assert.Nil(t, res.Action)
}

func TestExecute_AssignCleaning_FirstEligibleWins(t *testing.T) {
	snap := fixtureState(t)
	rec := &dispatchRecorder{}

	res := newTestExecutor().Execute(Classify("Assign cleaning tasks for Room 305"), snap, rec.dispatch)

	// hk-1 is the first available housekeeping member with the cleaning skill.
	assert.Equal(t, "Assigned Alex Johnson to clean Room 305.", res.Response)
	require.NotNil(t, res.Action)
	assert.Equal(t, "/tasks", res.Action.Path)

	require.Len(t, rec.actions, 1)
	assert.Equal(t, store.AssignRoom, rec.actions[0].Type)
	payload, ok := rec.actions[0].Payload.(store.AssignRoomPayload)
	require.True(t, ok)
	assert.Equal(t, "305", payload.Room)
	assert.Equal(t, "hk-1", payload.StaffID)
}

func TestExecute_AssignCleaning_NoRoomAsksForClarification(t *testing.T) {
	snap := fixtureState(t)
	rec := &dispatchRecorder{}

	res := newTestExecutor().Execute(models.Intent{Type: models.IntentAssignCleaning, Confidence: 0.8}, snap, rec.dispatch)

	assert.Equal(t, "Please specify which room you'd like to assign cleaning to.", res.Response)
	assert.Nil(t, res.Action)
	assert.Empty(t, rec.actions)
}

func TestExecute_AssignCleaning_NoEligibleStaff(t *testing.T) {
	snap := fixtureState(t)
	for i := range snap.Staff {
		snap.Staff[i].Available = false
	}
	rec := &dispatchRecorder{}

	res := newTestExecutor().Execute(Classify("Assign cleaning tasks for Room 305"), snap, rec.dispatch)

	assert.Equal(t, "No housekeeping staff currently available for Room 305.", res.Response)
	assert.Nil(t, res.Action)
	assert.Empty(t, rec.actions, "no dispatch may occur without eligible staff")
}

func TestExecute_RemindMaintenance_MatchesIssueText(t *testing.T) {
	snap := fixtureState(t)
	rec := &dispatchRecorder{}

	res := newTestExecutor().Execute(Classify("Remind maintenance to check HVAC in Room 202"), snap, rec.dispatch)

	assert.Equal(t, "Reminder sent for maintenance issue in Room 202.", res.Response)
	require.NotNil(t, res.Action)
	assert.Equal(t, "/maintenance", res.Action.Path)

	require.Len(t, rec.actions, 1)
	assert.Equal(t, store.AddMaintenanceNote, rec.actions[0].Type)
	payload, ok := rec.actions[0].Payload.(store.AddMaintenanceNotePayload)
	require.True(t, ok)
	assert.Equal(t, "mnt-002", payload.ID)
	assert.Contains(t, payload.Note, "Reminder sent via chatbot at 2024-01-21T15:30:00Z")
}

func TestExecute_RemindMaintenance_NoTicket(t *testing.T) {
	snap := fixtureState(t)
	rec := &dispatchRecorder{}

	res := newTestExecutor().Execute(Classify("Remind maintenance about Room 999"), snap, rec.dispatch)

	assert.Equal(t, "No maintenance request found for Room 999.", res.Response)
	assert.Empty(t, rec.actions)
}

func TestExecute_OccupancyWeek_AveragesLastSevenEntries(t *testing.T) {
	snap := fixtureState(t)

	res := newTestExecutor().Execute(Classify("What is the occupancy rate this week?"), snap, nil)

	series := snap.RevenueTimeseries
	recent := series[len(series)-7:]
	var sum float64
	for _, day := range recent {
		sum += day.Occupancy
	}
	want := fmt.Sprintf("Average occupancy for the past week is %.1f%%.", sum/float64(len(recent))*100)

	assert.Equal(t, want, res.Response)
	require.NotNil(t, res.Action)
	assert.Equal(t, "/revenue", res.Action.Path)
}

func TestExecute_OccupancyWeek_EmptySeries(t *testing.T) {
	snap := fixtureState(t)
	snap.RevenueTimeseries = nil

	res := newTestExecutor().Execute(Classify("occupancy this week"), snap, nil)

	assert.Equal(t, "No revenue data is available for the past week.", res.Response)
	assert.Nil(t, res.Action)
}

func TestExecute_CurrencyQueriesUseTwoDecimals(t *testing.T) {
	snap := fixtureState(t)

	adr := newTestExecutor().Execute(Classify("compare adr"), snap, nil)
	assert.Equal(t, fmt.Sprintf("Current average daily rate (ADR) is $%.2f. You can view detailed comparisons on the revenue page.",
		snap.Metrics.Aggregate.ADR), adr.Response)

	revpar := newTestExecutor().Execute(Classify("revpar trend"), snap, nil)
	assert.Equal(t, fmt.Sprintf("Current RevPAR is $%.2f. View 30-day trends on the revenue analytics page.",
		snap.Metrics.Aggregate.RevPAR), revpar.Response)
}

func TestExecute_UpdateStatusIsGuidanceOnly(t *testing.T) {
	snap := fixtureState(t)
	rec := &dispatchRecorder{}

	res := newTestExecutor().Execute(Classify("update status of room 301"), snap, rec.dispatch)

	assert.Equal(t, "Status updates can be made from the Tasks or Maintenance pages.", res.Response)
	require.NotNil(t, res.Action)
	assert.Equal(t, "/tasks", res.Action.Path)
	assert.Empty(t, rec.actions)
}

func TestExecute_UnknownListsCapabilities(t *testing.T) {
	snap := fixtureState(t)
	rec := &dispatchRecorder{}

	res := newTestExecutor().Execute(Classify("asdkjasdkj"), snap, rec.dispatch)

	assert.Contains(t, res.Response, "housekeeping status")
	assert.Contains(t, res.Response, "revenue analytics")
	assert.Nil(t, res.Action)
	assert.Empty(t, rec.actions)
}
