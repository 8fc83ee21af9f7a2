package cmd

import (
	"github.com/spf13/cobra"
)

func init() {
	journeyCmd := &cobra.Command{
		Use:   "journey",
		Short: "Manage your journeys",
	}
	journeyCmd.AddCommand(createJourneyStartCmd())

	rootCmd.AddCommand(journeyCmd)
}

func createJourneyStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Record the start of a trip",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := newApp()

			journey, err := app.StartJourney()
			if err != nil {
				return err
			}

			cmd.Printf("Journey #%v started (%v).\n", journey.JourneyID, journey.Status)
			return nil
		},
	}
}
