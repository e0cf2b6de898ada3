package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/roster/internal/log"
	"github.com/zjrosen/roster/internal/presentation"
	approster "github.com/zjrosen/roster/internal/roster/application"
)

var filterNumber int

var playersFilterCmd = &cobra.Command{
	Use:   "players:filter",
	Short: "List players whose gamer tag matches their family name and a number",
	Long: `List the players of the roster file whose gamer tag contains their family
name and ends with the given number (both checks ignore case).

Each match is printed as "FIRST NAME, family name", in file order.

Examples:
  roster players:filter --number 7
  roster players:filter -n 2024 -f league.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := approster.LoadRosterFile(cfg.Register.File)
		if err != nil {
			return fmt.Errorf("loading roster: %w", err)
		}

		players := file.BuildPlayers()
		out := approster.FormatValidPlayers(players, filterNumber)
		log.Debug(log.CatCLI, "Filtered players", "players", len(players), "number", filterNumber)

		return presentation.NewFormatter(cmd.OutOrStdout()).FormatLines(out)
	},
}

func init() {
	playersFilterCmd.Flags().IntVarP(&filterNumber, "number", "n", 0, "Number the gamer tag must end with")
	_ = playersFilterCmd.MarkFlagRequired("number")
	rootCmd.AddCommand(playersFilterCmd)
}
