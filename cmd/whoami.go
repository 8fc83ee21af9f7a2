package cmd

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(createWhoamiCmd())
}

func createWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show who is logged in",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := newApp()

			profile, err := app.Whoami()
			if err != nil {
				return err
			}

			cmd.Printf("Logged in as %v (%v)\n", profile.Name, profile.Email)
			return nil
		},
	}
}
