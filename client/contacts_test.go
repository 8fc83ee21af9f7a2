package client

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestContactsFromConfig(t *testing.T) {
	config := viper.New()
	config.Set("contacts", []map[string]interface{}{
		{"name": "Mom", "phone": "919876543210"},
		{"name": "Friend", "phone": "919876543211"},
	})

	contacts := ContactsFromConfig(config)

	assert.Len(t, contacts, 2)
	assert.Equal(t, "919876543210", contacts[0].Phone)
}

func TestContactsFromConfigFallsBackToDefaults(t *testing.T) {
	contacts := ContactsFromConfig(viper.New())
	assert.Equal(t, DefaultContacts, contacts)
}

func TestFindContactByName(t *testing.T) {
	contacts := []Contact{{Name: "Mom", Phone: "919876543210"}}

	contact, ok := FindContactByName(contacts, "mom")
	assert.True(t, ok)
	assert.Equal(t, "919876543210", contact.Phone)

	_, ok = FindContactByName(contacts, "Granny")
	assert.False(t, ok)
}
