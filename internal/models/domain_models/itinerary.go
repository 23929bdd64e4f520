package domain_models

// Activity is a single scheduled entry within a day. Time is "HH:MM".
type Activity struct {
	Time        string `json:"time"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// DayPlan invariant: exactly one breakfast activity first and one dinner
// activity last; attraction activities sit in between in encounter order.
type DayPlan struct {
	DayNumber  int        `json:"day_number"`
	Date       string     `json:"date"`
	Activities []Activity `json:"activities"`
	Notes      string     `json:"notes,omitempty"`
}

// Clone returns a deep copy of the day plan. Revision flows must never
// alias the original's activity slice.
func (d DayPlan) Clone() DayPlan {
	out := d
	out.Activities = make([]Activity, len(d.Activities))
	copy(out.Activities, d.Activities)
	return out
}

type Itinerary struct {
	Destination string    `json:"destination"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Days        []DayPlan `json:"days"`
	TotalBudget float64   `json:"total_budget,omitempty"`
	Summary     string    `json:"summary,omitempty"`
}

// TravelItinerary is the API-facing result of one concierge request.
// It is derived once and never mutated afterward.
type TravelItinerary struct {
	Destination        string         `json:"destination"`
	DurationDays       int            `json:"duration_days"`
	Flights            []FlightOption `json:"flights"`
	Accommodations     []HotelOption  `json:"accommodations"`
	Attractions        []Attraction   `json:"attractions"`
	DailySchedule      []DayPlan      `json:"daily_schedule"`
	TotalEstimatedCost float64        `json:"total_estimated_cost"`
}
