package cmd

import (
	"safetravelbuddy/client"

	"github.com/spf13/cobra"
)

var (
	sosContactArg   string
	sosSmsArg       bool
	sosContactIDArg uint

	// Stubbed out in tests
	sosLocator client.Locator
	sosOpener  client.LinkOpener
)

func init() {
	rootCmd.AddCommand(createSosCmd())
}

func createSosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sos",
		Short: "One tap: capture your location & open a chat with your SOS ready to send",
		Long: `Captures your current location, composes an emergency message naming you
with a maps link, and opens a wa.me chat pre-filled with it. With --contact
the chat targets that saved contact, otherwise you pick the recipient in
the messaging app.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := newApp()

			targetPhone := ""
			if sosContactArg != "" {
				contacts := client.ContactsFromConfig(config)
				contact, ok := client.FindContactByName(contacts, sosContactArg)
				if !ok {
					return formattedError("no saved contact named %q. Check 'contacts' in %s",
						sosContactArg, config.ConfigFileUsed())
				}
				targetPhone = contact.Phone
			}

			flow := client.NewSOSFlow(app, locatorForSos(), openerForSos())

			if sosSmsArg {
				if err := flow.TriggerSMS(sosContactIDArg); err != nil {
					return err
				}
				cmd.Println("SOS sms queued for delivery.")
				return nil
			}

			deepLink, err := flow.Trigger(targetPhone)
			if err != nil {
				return err
			}

			cmd.Printf("Opened chat with your SOS ready to send:\n%v\n", deepLink)
			return nil
		},
	}

	cmd.Flags().StringVarP(&sosContactArg, "contact", "c", "", "saved contact to send the SOS to")
	cmd.Flags().BoolVar(&sosSmsArg, "sms", false, "deliver via server-side sms instead of a chat link")
	cmd.Flags().UintVar(&sosContactIDArg, "contact-id", 0, "server contact id for --sms (0 = all saved contacts)")

	return cmd
}

func locatorForSos() client.Locator {
	if sosLocator != nil {
		return sosLocator
	}
	return newLocator()
}

func openerForSos() client.LinkOpener {
	if sosOpener != nil {
		return sosOpener
	}
	return client.BrowserOpener{}
}
