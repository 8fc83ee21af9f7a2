package cmd

import (
	"github.com/spf13/cobra"
)

var (
	registerNameArg     string
	registerEmailArg    string
	registerPasswordArg string
)

func init() {
	rootCmd.AddCommand(createRegisterCmd())
}

func createRegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create your SafeTravelBuddy account",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := newApp()

			err := app.Register(registerNameArg, registerEmailArg, registerPasswordArg)
			if err != nil {
				return err
			}

			cmd.Printf("Register success. Please login as %v.\n", registerEmailArg)
			return nil
		},
	}

	cmd.Flags().StringVarP(&registerNameArg, "name", "n", "", "your name")
	cmd.Flags().StringVarP(&registerEmailArg, "email", "e", "", "your email")
	cmd.Flags().StringVarP(&registerPasswordArg, "password", "p", "", "your password")

	return cmd
}
