package domain_models

type Attraction struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Location      string  `json:"location"`
	Description   string  `json:"description"`
	Rating        float64 `json:"rating"`
	Price         float64 `json:"price"`
	DurationHours float64 `json:"duration_hours"`
	OpenHours     string  `json:"open_hours"`
}
