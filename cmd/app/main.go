package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"smarttravel/cmd/fx/attraction_fx"
	"smarttravel/cmd/fx/budget_fx"
	"smarttravel/cmd/fx/concierge_fx"
	"smarttravel/cmd/fx/controllers_fx"
	"smarttravel/cmd/fx/currency_fx"
	"smarttravel/cmd/fx/disruption_fx"
	"smarttravel/cmd/fx/flight_fx"
	"smarttravel/cmd/fx/hotel_fx"
	"smarttravel/cmd/fx/infra_fx"
	"smarttravel/cmd/fx/itinerary_fx"
	"smarttravel/cmd/fx/logger_fx"
	"smarttravel/cmd/fx/restaurant_fx"
	"smarttravel/cmd/fx/weather_fx"
	"smarttravel/internal/api/controllers"
	"smarttravel/pkg/middleware"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		logger_fx.Module,
		infra_fx.Module,
		flight_fx.Module,
		hotel_fx.Module,
		attraction_fx.Module,
		restaurant_fx.Module,
		weather_fx.Module,
		currency_fx.Module,
		budget_fx.Module,
		itinerary_fx.Module,
		disruption_fx.Module,
		concierge_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			go func() {
				logger.Info("starting HTTP server", zap.String("port", port))
				if err := engine.Run(":" + port); err != nil {
					logger.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	tripController *controllers.TripController,
	disruptionController *controllers.DisruptionController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, tripController, disruptionController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tripController *controllers.TripController,
	disruptionController *controllers.DisruptionController) {

	r.GET("/health", tripController.Health)
	r.GET("/status", tripController.GetStatus)

	tripsGroup := r.Group("/trips")
	tripsGroup.POST("/plan", tripController.PlanTrip)

	disruptionsGroup := r.Group("/disruptions")
	disruptionsGroup.POST("/detect", disruptionController.DetectDisruptions)
	disruptionsGroup.POST("/revise", disruptionController.ReviseItinerary)
}
