package cmd

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/zjrosen/roster/internal/presentation"
)

var (
	searchInitial string
	searchCount   string
)

// searchResult is the JSON shape printed by register:search
type searchResult struct {
	Initial   string `json:"initial,omitempty"`
	Found     *bool  `json:"found,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	Count     *int   `json:"count,omitempty"`
}

var registerSearchCmd = &cobra.Command{
	Use:   "register:search",
	Short: "Search the register by first name",
	Long: `Search the register by first name initial or count first name occurrences.

--initial matches the first character of each first name exactly (case-sensitive).
--count compares whole first names ignoring case.

Examples:
  roster register:search --initial B
  roster register:search --count anna
  roster register:search --initial A --count Anna`,
	RunE: func(cmd *cobra.Command, args []string) error {
		hasInitial := cmd.Flags().Changed("initial")
		hasCount := cmd.Flags().Changed("count")
		if !hasInitial && !hasCount {
			return fmt.Errorf("one of --initial or --count is required")
		}

		var result searchResult
		var initial rune
		if hasInitial {
			if utf8.RuneCountInString(searchInitial) != 1 {
				return fmt.Errorf("--initial must be a single character, got %q", searchInitial)
			}
			initial, _ = utf8.DecodeRuneInString(searchInitial)
		}

		reg, err := loadRegister()
		if err != nil {
			return err
		}

		if hasInitial {
			found := reg.SearchByFirstNameInitial(initial)
			result.Initial = searchInitial
			result.Found = &found
		}
		if hasCount {
			count := reg.CountFirstNameOccurrences(searchCount)
			result.FirstName = searchCount
			result.Count = &count
		}

		return presentation.NewFormatter(cmd.OutOrStdout()).FormatResult(result)
	},
}

func init() {
	registerSearchCmd.Flags().StringVar(&searchInitial, "initial", "", "First name initial to look for (case-sensitive)")
	registerSearchCmd.Flags().StringVar(&searchCount, "count", "", "First name to count (case-insensitive)")
	rootCmd.AddCommand(registerSearchCmd)
}
