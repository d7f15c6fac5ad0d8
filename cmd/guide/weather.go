package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"local-guide/internal/timezone"
	"local-guide/internal/weather"
)

var weatherCmd = &cobra.Command{
	Use:   "weather",
	Short: "Show current conditions and the daily outlook",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		coords, err := currentCoords()
		if err != nil {
			return err
		}

		tzSvc, err := timezone.NewService()
		if err != nil {
			return err
		}

		report, err := weather.NewWeatherService(cfg, tzSvc, logger).GetReport(cmd.Context(), coords)
		if err != nil {
			return fmt.Errorf("fetching weather: %w", err)
		}

		printReport(os.Stdout, report)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(weatherCmd)
}

func printReport(w io.Writer, r *weather.Report) {
	cur := r.Current
	fmt.Fprintf(w, "%s (%s, via %s)\n", r.Coords, r.Timezone, r.Provider)
	fmt.Fprintf(w, "Now: %.0f°C, feels like %.0f°C, %s\n", cur.Temperature.Celsius, cur.FeelsLike.Celsius, cur.Description)
	fmt.Fprintf(w, "Humidity %d%%, wind %.1f m/s %s\n", cur.Humidity, cur.Wind.SpeedMps, cur.Wind.DirectionCardinal)

	if len(r.Forecast) == 0 {
		return
	}
	fmt.Fprintln(w)
	for _, d := range r.Forecast {
		fmt.Fprintf(w, "%-12s %4.0f°C  %s\n", d.Label, d.Temperature.Celsius, d.Condition)
	}
}
