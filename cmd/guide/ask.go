package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"local-guide/internal/assistant"
	"local-guide/internal/places"
	"local-guide/internal/timezone"
)

var askPlace string

var askCmd = &cobra.Command{
	Use:   "ask <message>",
	Short: "Ask the guide for local advice",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		coords, err := currentCoords()
		if err != nil {
			return err
		}

		req := assistant.Request{Message: strings.Join(args, " "), Coords: coords}

		if askPlace != "" {
			placesSvc, err := places.NewPlacesService(cfg, nominatim, logger)
			if err != nil {
				return err
			}
			found, err := placesSvc.Search(ctx, askPlace, &coords)
			if err != nil {
				return fmt.Errorf("looking up %q: %w", askPlace, err)
			}
			if len(found) == 0 {
				return fmt.Errorf("looking up %q: %w", askPlace, places.ErrNotFound)
			}
			place := found[0]
			req.Place = &place
			req.Coords = place.Coords
		}

		if tzSvc, err := timezone.NewService(); err == nil {
			if tz, err := tzSvc.GetTimezone(req.Coords.Latitude, req.Coords.Longitude); err == nil {
				req.Timezone = tz
			}
		}

		assistantSvc, err := assistant.NewAssistantService(ctx, cfg, logger)
		if err != nil {
			return err
		}

		answer, err := assistantSvc.Ask(ctx, req)
		if answer != nil {
			printAnswer(os.Stdout, answer)
		}
		if errors.Is(err, assistant.ErrNotConfigured) {
			return errors.New("set LOCAL_GUIDE_PROVIDERS_GEMINI_APIKEY to use the guide")
		}
		return err
	},
}

func init() {
	askCmd.Flags().StringVar(&askPlace, "place", "", "Place the question is about; overrides --lat/--lng")
	rootCmd.AddCommand(askCmd)
}

func printAnswer(w io.Writer, answer *assistant.Answer) {
	reply := answer.Reply
	if reply.Intro != "" {
		fmt.Fprintln(w, reply.Intro)
	}
	for _, s := range reply.Sections {
		fmt.Fprintf(w, "\n%s\n", s.Title)
		for _, item := range s.Items {
			fmt.Fprintf(w, "  • %s\n", item)
		}
	}
	if answer.SearchQuery != "" {
		fmt.Fprintf(w, "\nTry: guide search %q\n", answer.SearchQuery)
	}
}
