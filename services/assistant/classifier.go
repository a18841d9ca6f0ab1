// Package assistant implements the rule-based chat assistant: a keyword
// intent classifier, an executor that turns intents into responses and
// store actions, and a session controller managing transcripts.
package assistant

import (
	"regexp"
	"strings"

	"hotelops/models"
)

var roomPattern = regexp.MustCompile(`(?i)room\s+(\d+)`)

// rule is one entry of the ordered classification table. The first rule
// whose predicate matches wins; confidence is static per rule, never
// computed from similarity.
type rule struct {
	intent      models.IntentType
	confidence  float64
	matches     func(msg string) bool
	extractRoom bool
}

func allOf(words ...string) func(string) bool {
	return func(msg string) bool {
		for _, w := range words {
			if !strings.Contains(msg, w) {
				return false
			}
		}
		return true
	}
}

func both(first func(string) bool, second func(string) bool) func(string) bool {
	return func(msg string) bool { return first(msg) && second(msg) }
}

func anyOf(words ...string) func(string) bool {
	return func(msg string) bool {
		for _, w := range words {
			if strings.Contains(msg, w) {
				return true
			}
		}
		return false
	}
}

// rules is the fixed priority order. Note that the occupancy rules sit
// before the alert rules, so "notify me about occupancy" classifies as an
// occupancy query, matching the long-standing behaviour the quick actions
// depend on.
var rules = []rule{
	{models.IntentHousekeepingStatus, 0.9, both(allOf("housekeeping"), anyOf("status", "today")), false},
	{models.IntentMaintenancePending, 0.9, both(allOf("maintenance"), anyOf("pending", "requests")), false},
	{models.IntentGuestSatisfaction, 0.9, allOf("guest", "satisfaction"), false},
	{models.IntentAssignCleaning, 0.8, both(allOf("assign"), anyOf("cleaning", "room")), true},
	{models.IntentRemindMaintenance, 0.8, allOf("remind", "maintenance"), true},
	{models.IntentUpdateStatus, 0.7, allOf("update", "status"), true},
	{models.IntentOccupancyWeek, 0.8, allOf("occupancy", "week"), false},
	{models.IntentOccupancyCurrent, 0.8, allOf("occupancy"), false},
	{models.IntentADRComparison, 0.8, allOf("adr", "compare"), false},
	{models.IntentRevPARTrends, 0.8, allOf("revpar", "trend"), false},
	{models.IntentSetupOccupancyAlert, 0.7, both(anyOf("alert", "notify"), allOf("occupancy")), false},
	{models.IntentSetupSatisfactionAlert, 0.7, both(anyOf("alert", "notify"), allOf("satisfaction")), false},
	{models.IntentSetupMaintenanceAlert, 0.7, both(anyOf("alert", "notify"), allOf("maintenance")), false},
}

// Classify maps free text to an intent. It is purely textual and
// deterministic: lowercase the message, walk the rule table in order, and
// return the first match. Messages matching no rule fall through to
// unknown with zero confidence.
func Classify(text string) models.Intent {
	msg := strings.ToLower(text)

	for _, r := range rules {
		if !r.matches(msg) {
			continue
		}
		intent := models.Intent{Type: r.intent, Confidence: r.confidence}
		if r.extractRoom {
			if m := roomPattern.FindStringSubmatch(msg); m != nil {
				intent.Params.Room = m[1]
			}
		}
		return intent
	}

	return models.Intent{Type: models.IntentUnknown, Confidence: 0.0}
}
