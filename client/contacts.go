package client

import (
	"strings"

	"github.com/spf13/viper"
)

type Contact struct {
	Name  string `mapstructure:"name"`
	Phone string `mapstructure:"phone"`
}

// DefaultContacts is the stock emergency contact list, used until the
// user fills in real numbers in their config file.
var DefaultContacts = []Contact{
	{Name: "Mom", Phone: "91XXXXXXXX01"},
	{Name: "Dad", Phone: "91XXXXXXXX02"},
	{Name: "Sister/Brother", Phone: "91XXXXXXXX03"},
	{Name: "Friend", Phone: "91XXXXXXXX04"},
}

// ContactsFromConfig loads the contact list from the app config,
// falling back to DefaultContacts when none are configured.
func ContactsFromConfig(config *viper.Viper) []Contact {
	contacts := []Contact{}

	err := config.UnmarshalKey("contacts", &contacts)
	if err != nil || len(contacts) == 0 {
		return DefaultContacts
	}

	return contacts
}

func FindContactByName(contacts []Contact, name string) (*Contact, bool) {
	for _, contact := range contacts {
		if strings.EqualFold(contact.Name, name) {
			return &contact, true
		}
	}

	return nil, false
}
