package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"local-guide/internal/config"
	"local-guide/internal/providers/openstreetmap"
	"local-guide/internal/types"
)

var (
	verbose   bool
	latitude  float64
	longitude float64
	cfg       *config.Config
	logger    *slog.Logger
	nominatim *openstreetmap.Client
)

var rootCmd = &cobra.Command{
	Use:           "guide",
	Short:         "Ask a local guide, check the weather and look up places from the terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		// Keep provider logs out of the way unless asked for
		if verbose {
			cfg.Log.Level = "debug"
		} else {
			cfg.Log.Level = "warn"
		}
		logger = cfg.NewLogger()
		osm := cfg.Providers.Nominatim
		nominatim = openstreetmap.NewClient(osm.UserAgent, osm.RequestsPerSecond, logger)

		if !cmd.Flags().Changed("lat") {
			latitude = cfg.App.DefaultLatitude
		}
		if !cmd.Flags().Changed("lng") {
			longitude = cfg.App.DefaultLongitude
		}

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().Float64Var(&latitude, "lat", 0, "Latitude (defaults to the configured default location)")
	rootCmd.PersistentFlags().Float64Var(&longitude, "lng", 0, "Longitude (defaults to the configured default location)")
}

func Execute() error {
	return rootCmd.Execute()
}

// currentCoords returns the validated --lat/--lng coordinate
func currentCoords() (types.Coords, error) {
	coords := types.NewCoords(latitude, longitude)
	if err := coords.Validate(); err != nil {
		return types.Coords{}, err
	}
	return coords, nil
}
