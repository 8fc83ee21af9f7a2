package cmd

import (
	"github.com/spf13/cobra"
)

var (
	loginEmailArg    string
	loginPasswordArg string
)

func init() {
	rootCmd.AddCommand(createLoginCmd())
}

func createLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in & keep your SOS one tap away",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := newApp()

			err := app.Login(loginEmailArg, loginPasswordArg)
			if err != nil {
				return err
			}

			cmd.Printf("Login success. Welcome back %v.\n", app.State.Profile.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&loginEmailArg, "email", "e", "", "your email")
	cmd.Flags().StringVarP(&loginPasswordArg, "password", "p", "", "your password")

	return cmd
}
