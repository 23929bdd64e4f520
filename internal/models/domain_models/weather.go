package domain_models

type WeatherForecast struct {
	Date                string  `json:"date"`
	Location            string  `json:"location"`
	TemperatureHigh     float64 `json:"temperature_high"`
	TemperatureLow      float64 `json:"temperature_low"`
	Condition           string  `json:"condition"`
	PrecipitationChance float64 `json:"precipitation_chance"`
	Humidity            float64 `json:"humidity"`
	WindSpeed           float64 `json:"wind_speed"`
	Description         string  `json:"description"`
}

type WeatherSummary struct {
	AverageHigh            float64 `json:"average_high"`
	AverageLow             float64 `json:"average_low"`
	MaxPrecipitationChance float64 `json:"max_precipitation_chance"`
	RainyDays              int     `json:"rainy_days"`
	TotalDays              int     `json:"total_days"`
}

// ActivityAdjustment is the weather agent's advice for a single day.
type ActivityAdjustment struct {
	OutdoorSuitable   bool     `json:"outdoor_suitable"`
	IndoorRecommended bool     `json:"indoor_recommended"`
	Advice            []string `json:"advice"`
}
