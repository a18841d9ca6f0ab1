package models

// Property is a hotel property under management.
type Property struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	RoomsTotal    int     `json:"roomsTotal"`
	OccupancyRate float64 `json:"occupancyRate"` // fraction in [0,1]
	ADR           float64 `json:"adr"`           // average daily rate, USD
	RevPAR        float64 `json:"revpar"`        // revenue per available room, USD
}

// RevenueDataPoint is one day of the read-only revenue timeseries.
type RevenueDataPoint struct {
	Date       string  `json:"date"`
	PropertyID string  `json:"propertyId"`
	Occupancy  float64 `json:"occupancy"` // fraction in [0,1]
	ADR        float64 `json:"adr"`
	RevPAR     float64 `json:"revpar"`
}

// GuestMetrics holds the guest-experience figures shown on dashboards
// and quoted by the assistant.
type GuestMetrics struct {
	Satisfaction    float64 `json:"satisfaction"` // score out of 5.0
	AvgResponseMins int     `json:"avgResponseMins"`
	ReviewsThisWeek int     `json:"reviewsThisWeek"`
}
