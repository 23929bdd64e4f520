package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"smarttravel/internal/models/domain_models"
	"smarttravel/pkg/utils"
)

type WeatherAgentInterface interface {
	Forecast(ctx context.Context, destination, startDate, endDate string) ([]domain_models.WeatherForecast, error)
	Summary(forecasts []domain_models.WeatherForecast) domain_models.WeatherSummary
	Warnings(forecasts []domain_models.WeatherForecast) []string
	SuggestAdjustments(forecast domain_models.WeatherForecast) domain_models.ActivityAdjustment
	Status() domain_models.AgentStatus
}

type WeatherAgent struct {
	logger        *zap.Logger
	initializedAt time.Time
}

func NewWeatherAgent(logger *zap.Logger) WeatherAgentInterface {
	return &WeatherAgent{
		logger:        logger,
		initializedAt: time.Now(),
	}
}

// Forecast synthesizes one forecast per inclusive day in the range.
func (w *WeatherAgent) Forecast(ctx context.Context, destination, startDate, endDate string) ([]domain_models.WeatherForecast, error) {
	w.logger.Info("fetching weather forecast", zap.String("destination", destination))

	days, err := utils.DurationDays(startDate, endDate)
	if err != nil {
		return nil, err
	}

	forecasts := make([]domain_models.WeatherForecast, 0, days)
	for i := 0; i < days; i++ {
		date, err := utils.AddDays(startDate, i)
		if err != nil {
			return nil, err
		}

		condition := "sunny"
		if i%2 != 0 {
			condition = "partly cloudy"
		}

		forecasts = append(forecasts, domain_models.WeatherForecast{
			Date:                date,
			Location:            destination,
			TemperatureHigh:     25.0 + float64(i%5),
			TemperatureLow:      18.0 + float64(i%3),
			Condition:           condition,
			PrecipitationChance: 20.0 + float64(i*5),
			Humidity:            60.0 + float64(i%10),
			WindSpeed:           15.0 + float64(i%8),
			Description:         "Pleasant weather expected in " + destination,
		})
	}

	return forecasts, nil
}

func (w *WeatherAgent) Summary(forecasts []domain_models.WeatherForecast) domain_models.WeatherSummary {
	if len(forecasts) == 0 {
		return domain_models.WeatherSummary{}
	}

	var sumHigh, sumLow, maxPrecip float64
	rainyDays := 0
	for _, f := range forecasts {
		sumHigh += f.TemperatureHigh
		sumLow += f.TemperatureLow
		if f.PrecipitationChance > maxPrecip {
			maxPrecip = f.PrecipitationChance
		}
		if f.PrecipitationChance > 50 {
			rainyDays++
		}
	}

	n := float64(len(forecasts))
	return domain_models.WeatherSummary{
		AverageHigh:            round1(sumHigh / n),
		AverageLow:             round1(sumLow / n),
		MaxPrecipitationChance: round1(maxPrecip),
		RainyDays:              rainyDays,
		TotalDays:              len(forecasts),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func (w *WeatherAgent) Warnings(forecasts []domain_models.WeatherForecast) []string {
	var warnings []string
	for _, f := range forecasts {
		if f.PrecipitationChance > 70 {
			warnings = append(warnings, fmt.Sprintf("High chance of rain on %s (%.1f%%)", f.Date, f.PrecipitationChance))
		}
		if f.TemperatureHigh > 35 {
			warnings = append(warnings, fmt.Sprintf("Extreme heat expected on %s (%.1f°C)", f.Date, f.TemperatureHigh))
		}
		if f.TemperatureLow < 5 {
			warnings = append(warnings, fmt.Sprintf("Cold weather on %s (%.1f°C)", f.Date, f.TemperatureLow))
		}
		if f.WindSpeed > 40 {
			warnings = append(warnings, fmt.Sprintf("Strong winds on %s (%.1f km/h)", f.Date, f.WindSpeed))
		}
	}
	return warnings
}

func (w *WeatherAgent) SuggestAdjustments(forecast domain_models.WeatherForecast) domain_models.ActivityAdjustment {
	adjustment := domain_models.ActivityAdjustment{OutdoorSuitable: true}

	if forecast.PrecipitationChance > 60 {
		adjustment.OutdoorSuitable = false
		adjustment.IndoorRecommended = true
		adjustment.Advice = append(adjustment.Advice, "Consider indoor activities like museums")
	}
	if forecast.TemperatureHigh > 32 {
		adjustment.Advice = append(adjustment.Advice,
			"Stay hydrated and avoid midday sun",
			"Plan outdoor activities for morning/evening")
	}
	if forecast.TemperatureLow < 10 {
		adjustment.Advice = append(adjustment.Advice, "Bring warm clothing for cooler temperatures")
	}
	if len(adjustment.Advice) == 0 {
		adjustment.Advice = append(adjustment.Advice, "Great day for outdoor exploration!")
	}

	return adjustment
}

func (w *WeatherAgent) Status() domain_models.AgentStatus {
	return domain_models.AgentStatus{
		Agent:         "WeatherAgent",
		Status:        "active",
		InitializedAt: w.initializedAt.Format(time.RFC3339),
	}
}
