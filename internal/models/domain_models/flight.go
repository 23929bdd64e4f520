package domain_models

// FlightOption is a single flight candidate. A fresh value is produced per
// search; there is no identity beyond value equality.
type FlightOption struct {
	Airline       string  `json:"airline"`
	DepartureCity string  `json:"departure_city"`
	ArrivalCity   string  `json:"arrival_city"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
	Price         float64 `json:"price"`
	DurationHours float64 `json:"duration_hours"`
	Stops         int     `json:"stops"`
}
