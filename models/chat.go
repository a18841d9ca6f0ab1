package models

import "time"

// IntentType tags a classified user request.
type IntentType string

const (
	IntentHousekeepingStatus     IntentType = "housekeeping_status"
	IntentMaintenancePending     IntentType = "maintenance_pending"
	IntentGuestSatisfaction      IntentType = "guest_satisfaction"
	IntentAssignCleaning         IntentType = "assign_cleaning"
	IntentRemindMaintenance      IntentType = "remind_maintenance"
	IntentUpdateStatus           IntentType = "update_status"
	IntentOccupancyCurrent       IntentType = "occupancy_current"
	IntentOccupancyWeek          IntentType = "occupancy_week"
	IntentADRComparison          IntentType = "adr_comparison"
	IntentRevPARTrends           IntentType = "revpar_trends"
	IntentSetupOccupancyAlert    IntentType = "setup_occupancy_alert"
	IntentSetupSatisfactionAlert IntentType = "setup_satisfaction_alert"
	IntentSetupMaintenanceAlert  IntentType = "setup_maintenance_alert"
	IntentUnknown                IntentType = "unknown"
)

// IntentParams carries fields extracted from the message text.
type IntentParams struct {
	Room string `json:"room,omitempty"`
}

// Intent is the classifier's verdict for one message. Confidence is
// informational only; execution never thresholds against it.
type Intent struct {
	Type       IntentType   `json:"type"`
	Confidence float64      `json:"confidence"`
	Params     IntentParams `json:"params"`
}

// NavigateAction asks the UI sink to change route after a delay.
type NavigateAction struct {
	Type    string `json:"type"` // always "navigate"
	Path    string `json:"path"`
	DelayMS int64  `json:"delayMs"`
}

// NewNavigateAction builds a navigation action for the given path.
func NewNavigateAction(path string, delay time.Duration) *NavigateAction {
	return &NavigateAction{
		Type:    "navigate",
		Path:    path,
		DelayMS: delay.Milliseconds(),
	}
}

// ChatRole distinguishes transcript entries.
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is one transcript entry of an assistant session.
type ChatMessage struct {
	ID        string          `json:"id"`
	Role      ChatRole        `json:"role"`
	Content   string          `json:"content"`
	Timestamp time.Time       `json:"timestamp"`
	Action    *NavigateAction `json:"action,omitempty"`
}

// ChatTranscript is the stored state of one assistant session.
type ChatTranscript struct {
	SessionID string        `json:"sessionId"`
	Messages  []ChatMessage `json:"messages"`
}
