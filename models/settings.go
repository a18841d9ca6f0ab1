package models

// AlertSettings are the user-tunable alert thresholds.
type AlertSettings struct {
	OccupancyThreshold    float64 `json:"occupancyThreshold"`
	SatisfactionThreshold float64 `json:"satisfactionThreshold"`
	MaintenanceReminders  bool    `json:"maintenanceReminders"`
}

// Settings are user-editable dashboard preferences, persisted across sessions.
type Settings struct {
	DarkMode bool          `json:"darkMode"`
	Alerts   AlertSettings `json:"alerts"`
}

// DefaultSettings returns the out-of-the-box preferences.
func DefaultSettings() Settings {
	return Settings{
		DarkMode: false,
		Alerts: AlertSettings{
			OccupancyThreshold:    0.7,
			SatisfactionThreshold: 4.0,
			MaintenanceReminders:  true,
		},
	}
}
