package models

import (
	"testing"

	"safetravelbuddy/server/auth"

	"github.com/stretchr/testify/assert"
)

func TestCreateUserHashesPassword(t *testing.T) {
	InitializeTestDb()

	user := createTestUser(t, "asha@example.com")

	storedPassword, err := FindUserPassword("asha@example.com")
	assert.Nil(t, err)
	assert.NotEqual(t, "Str0ngPassword!", storedPassword)
	assert.True(t, auth.CheckPasswordHash("Str0ngPassword!", storedPassword))

	// Lookups never load the password column
	found, err := FindUserBy("email", "asha@example.com")
	assert.Nil(t, err)
	assert.Empty(t, found.Password)
	assert.Equal(t, user.ID, found.ID)
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	InitializeTestDb()

	createTestUser(t, "asha@example.com")

	err := CreateUser(&User{Name: "Imposter", Email: "asha@example.com", Password: "Str0ngPassword!"})
	assert.NotNil(t, err)
}

func TestEmergencyContacts(t *testing.T) {
	InitializeTestDb()

	user := createTestUser(t, "asha@example.com")

	dentist := Contact{Name: "Dentist", PhoneNumber: "+14155552602"}
	assert.Nil(t, user.AddContact(&Contact{Name: "Mom", PhoneNumber: "+14155552601"}))
	assert.Nil(t, user.AddContact(&dentist))

	// Contacts default to emergency contacts, opt the dentist out
	assert.Nil(t, db.Model(&dentist).Update("is_emergency_contact", false).Error)

	contacts, err := user.EmergencyContacts()
	assert.Nil(t, err)
	assert.Len(t, contacts, 1)
	assert.Equal(t, "Mom", contacts[0].Name)
}
