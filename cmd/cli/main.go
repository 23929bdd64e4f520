package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"smarttravel/internal/infra"
	"smarttravel/internal/models/domain_models"
	"smarttravel/internal/services"
)

var (
	cfgFile     string
	origin      string
	budget      float64
	travelers   int
	outputJSON  bool
	attractions []string
)

var rootCmd = &cobra.Command{
	Use:   "smarttravel",
	Short: "SmartTravel - travel itinerary planning from the command line",
	Long: `SmartTravel plans complete trip itineraries: flights, hotels,
attractions and a day-by-day schedule, assembled by a concierge that
coordinates independent provider agents.`,
}

var planCmd = &cobra.Command{
	Use:   "plan <destination> <start-date> <end-date>",
	Short: "Plan a trip and print the itinerary",
	Args:  cobra.ExactArgs(3),
	RunE:  runPlan,
}

func runPlan(cmd *cobra.Command, args []string) error {
	logger, err := buildLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	concierge := services.NewConciergeService(
		services.NewFlightAgent(logger),
		services.NewHotelAgent(logger),
		services.NewAttractionAgent(logger),
		services.NewItineraryAgent(logger),
		logger,
	)

	request := domain_models.TravelRequest{
		Destination: args[0],
		StartDate:   args[1],
		EndDate:     args[2],
		Origin:      origin,
		Travelers:   travelers,
		Preferences: domain_models.TravelPreferences{
			AttractionTypes: attractions,
		},
	}
	if budget > 0 {
		request.Budget = &budget
	}

	itinerary, err := concierge.ProcessRequest(context.Background(), request)
	if err != nil {
		return err
	}

	if outputJSON {
		encoded, err := json.MarshalIndent(itinerary, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(encoded))
		return nil
	}

	printItinerary(itinerary)
	return nil
}

func printItinerary(itinerary *domain_models.TravelItinerary) {
	fmt.Printf("%d-day trip to %s (estimated cost %.2f)\n\n",
		itinerary.DurationDays, itinerary.Destination, itinerary.TotalEstimatedCost)

	for _, flight := range itinerary.Flights {
		fmt.Printf("Flight: %s %s -> %s, %.2f (%d stops)\n",
			flight.Airline, flight.DepartureCity, flight.ArrivalCity, flight.Price, flight.Stops)
	}
	for _, hotel := range itinerary.Accommodations {
		fmt.Printf("Hotel: %s (%d stars), %.2f/night\n",
			hotel.Name, hotel.StarRating, hotel.PricePerNight)
	}
	fmt.Println()

	for _, day := range itinerary.DailySchedule {
		fmt.Printf("Day %d (%s)\n", day.DayNumber, day.Date)
		for _, activity := range day.Activities {
			fmt.Printf("  %s  %-12s %s\n", activity.Time, activity.Type, activity.Description)
		}
	}
}

var ratesCmd = &cobra.Command{
	Use:   "rates <amount> <from> <to>",
	Short: "Convert an amount between currencies using the built-in table",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := buildLogger()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		table, err := infra.LoadCurrencyTable()
		if err != nil {
			return err
		}

		var amount float64
		if _, err := fmt.Sscanf(args[0], "%f", &amount); err != nil {
			return fmt.Errorf("invalid amount %q", args[0])
		}

		agent := services.NewCurrencyAgent(table, logger)
		conversion := agent.Convert(amount, args[1], args[2])
		fmt.Printf("%.2f %s = %.2f %s (rate %.4f)\n",
			conversion.OriginalAmount, conversion.OriginalCurrency,
			conversion.ConvertedAmount, conversion.ConvertedCurrency,
			conversion.ExchangeRate)
		return nil
	},
}

func buildLogger() (*zap.Logger, error) {
	if viper.GetBool("verbose") {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

func main() {
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(ratesCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.smarttravel.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose logging")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	planCmd.Flags().StringVar(&origin, "origin", "", "origin city or airport; omit to skip flight search")
	planCmd.Flags().Float64Var(&budget, "budget", 0, "trip budget")
	planCmd.Flags().IntVar(&travelers, "travelers", 1, "number of travelers (1-20)")
	planCmd.Flags().StringSliceVar(&attractions, "attraction-types", nil, "attraction categories to include")
	planCmd.Flags().BoolVar(&outputJSON, "json", false, "print the raw itinerary as JSON")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigName(".smarttravel")
		}
	}

	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}
