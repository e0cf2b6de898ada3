package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zjrosen/roster/internal/domain/roster"
	"github.com/zjrosen/roster/internal/log"
	"github.com/zjrosen/roster/internal/presentation"
	approster "github.com/zjrosen/roster/internal/roster/application"
)

var (
	emailFirstName  string
	emailFamilyName string
)

var registerEmailsCmd = &cobra.Command{
	Use:   "register:emails",
	Short: "Replace the second register entry and generate email addresses",
	Long: `Replace the second entry of the register with the given name, then print one
email address for every entry whose first name contains an "a" or an "e".

The register must hold at least two names. Every listed entry needs a family
name of at least three characters.

Examples:
  roster register:emails --first Ana --family Evans`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegister()
		if err != nil {
			return err
		}

		emails, err := approster.GenerateEmails(roster.NewName(emailFirstName, emailFamilyName), reg)
		if err != nil {
			log.ErrorErr(log.CatCLI, "Email generation failed", err, "file", cfg.Register.File)
			return err
		}

		return presentation.NewFormatter(cmd.OutOrStdout()).FormatLines(emails)
	},
}

func init() {
	registerEmailsCmd.Flags().StringVar(&emailFirstName, "first", "", "First name of the incoming entry")
	registerEmailsCmd.Flags().StringVar(&emailFamilyName, "family", "", "Family name of the incoming entry")
	_ = registerEmailsCmd.MarkFlagRequired("first")
	_ = registerEmailsCmd.MarkFlagRequired("family")
	rootCmd.AddCommand(registerEmailsCmd)
}
