package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"local-guide/internal/places"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for places near the current coordinate",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		coords, err := currentCoords()
		if err != nil {
			return err
		}

		placesSvc, err := places.NewPlacesService(cfg, nominatim, logger)
		if err != nil {
			return err
		}

		found, err := placesSvc.Search(cmd.Context(), strings.Join(args, " "), &coords)
		if err != nil {
			return fmt.Errorf("searching places: %w", err)
		}

		printPlaces(os.Stdout, found)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func printPlaces(w io.Writer, found []places.Place) {
	for i, p := range found {
		fmt.Fprintf(w, "%d. %s\n   %s\n", i+1, p.Name, p.Coords)
	}
}
