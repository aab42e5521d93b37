package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/courtside/euroleague-go/pkg/euroleague"
)

func newPlayByPlayCommand(e *env) *cobra.Command {
	var season string
	var game int
	var team string

	cmd := &cobra.Command{
		Use:   "pbp",
		Short: "Print the play-by-play stream of a game",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := e.apiClient()
			if err != nil {
				return err
			}
			defer client.Close()

			pbp, err := client.Live.PlayByPlay(cmd.Context(), season, game)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s vs %s - %d plays\n", pbp.TeamA, pbp.TeamB, pbp.TotalPlays())

			teamFilter := strings.TrimSpace(team)
			printQuarter := func(label string, plays []euroleague.PlayEvent) {
				for _, play := range plays {
					if teamFilter != "" && strings.TrimSpace(play.TeamCode) != teamFilter {
						continue
					}
					score := ""
					if play.PointsA != nil && play.PointsB != nil {
						score = fmt.Sprintf(" (%d-%d)", *play.PointsA, *play.PointsB)
					}
					fmt.Fprintf(out, "%s %s  %-5s %s%s\n", label, play.MarkerTime, play.PlayType, play.PlayInfo, score)
				}
			}

			printQuarter("Q1", pbp.FirstQuarter)
			printQuarter("Q2", pbp.SecondQuarter)
			printQuarter("Q3", pbp.ThirdQuarter)
			printQuarter("Q4", pbp.FourthQuarter)
			printQuarter("OT", pbp.ExtraTime)
			return nil
		},
	}

	cmd.Flags().StringVarP(&season, "season", "s", "", "season code, e.g. E2025")
	cmd.Flags().IntVarP(&game, "game", "g", 0, "game code")
	cmd.Flags().StringVarP(&team, "team", "t", "", "only plays for this team code")
	cmd.MarkFlagRequired("season")
	cmd.MarkFlagRequired("game")
	return cmd
}
