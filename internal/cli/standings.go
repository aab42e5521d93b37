package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/courtside/euroleague-go/pkg/euroleague"
)

func newStandingsCommand(e *env) *cobra.Command {
	var competition string
	var season string
	var round int
	var view string

	cmd := &cobra.Command{
		Use:   "standings",
		Short: "Print standings for a competition round",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := e.apiClient()
			if err != nil {
				return err
			}
			defer client.Close()

			svc := client.V3.Standings
			comp := euroleague.CompetitionCode(competition)

			var raw json.RawMessage
			switch view {
			case "basic":
				raw, err = svc.Basic(cmd.Context(), comp, season, round)
			case "calendar":
				raw, err = svc.Calendar(cmd.Context(), comp, season, round)
			case "streaks":
				raw, err = svc.Streaks(cmd.Context(), comp, season, round)
			case "margins":
				raw, err = svc.Margins(cmd.Context(), comp, season, round)
			case "aheadbehind":
				raw, err = svc.AheadBehind(cmd.Context(), comp, season, round)
			default:
				return fmt.Errorf("unknown view %q (basic, calendar, streaks, margins, aheadbehind)", view)
			}
			if err != nil {
				return err
			}

			return printJSON(cmd, raw)
		},
	}

	cmd.Flags().StringVarP(&competition, "competition", "c", "E", "competition code (E or U)")
	cmd.Flags().StringVarP(&season, "season", "s", "", "season code, e.g. 2024")
	cmd.Flags().IntVarP(&round, "round", "r", 1, "round number")
	cmd.Flags().StringVar(&view, "view", "basic", "standings view (basic, calendar, streaks, margins, aheadbehind)")
	cmd.MarkFlagRequired("season")
	return cmd
}

// printJSON pretty-prints a raw API response to the command's stdout.
func printJSON(cmd *cobra.Command, raw json.RawMessage) error {
	var pretty map[string]any
	if err := json.Unmarshal(raw, &pretty); err != nil {
		// Not an object: print as-is.
		fmt.Fprintln(cmd.OutOrStdout(), string(raw))
		return nil
	}
	data, err := json.MarshalIndent(pretty, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
