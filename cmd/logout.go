package cmd

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(createLogoutCmd())
}

func createLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the saved session",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := newApp()

			err := app.Logout()
			if err != nil {
				return err
			}

			cmd.Println("Logged out.")
			return nil
		},
	}
}
