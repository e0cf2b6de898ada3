package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/roster/internal/log"
	"github.com/zjrosen/roster/internal/presentation"
)

var (
	showSort   bool
	showFormat string
)

var registerShowCmd = &cobra.Command{
	Use:   "register:show",
	Short: "Show the register loaded from the roster file",
	Long: `Show the register loaded from the roster file, as JSON or as styled text.

Names past the register capacity are dropped when the file is loaded.

Examples:
  # Show the register as JSON
  roster register:show

  # Sort by family name, then first name
  roster register:show --sort

  # Human-readable output
  roster register:show --format text -f team.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegister()
		if err != nil {
			return err
		}
		if showSort {
			reg.Sort()
			log.Debug(log.CatRoster, "Sorted register", "size", reg.Size())
		}

		formatter := presentation.NewFormatter(cmd.OutOrStdout())
		dto := presentation.FromDomainRegister(reg)

		switch showFormat {
		case "json":
			return formatter.FormatRegister(dto)
		case "text":
			return formatter.FormatText(dto)
		default:
			return fmt.Errorf("unknown format %q (must be \"json\" or \"text\")", showFormat)
		}
	},
}

func init() {
	registerShowCmd.Flags().BoolVar(&showSort, "sort", false, "Sort the register before printing")
	registerShowCmd.Flags().StringVar(&showFormat, "format", "json", "Output format: json or text")
	rootCmd.AddCommand(registerShowCmd)
}
