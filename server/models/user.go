package models

import (
	"fmt"

	"safetravelbuddy/server/auth"
)

var allFieldsExceptPassword = []string{"id",
	"name",
	"email",
	"created_at",
	"updated_at",
}

type User struct {
	BaseModel
	Name     string    `json:"name" validate:"required"`
	Email    string    `json:"email" validate:"required,email" gorm:"not null;unique"`
	Password string    `json:"password,omitempty" validate:"required,password" gorm:"not null"`
	Contacts []Contact `json:"contacts,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Journeys []Journey `json:"journeys,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (user *User) AddContact(contact *Contact) error {
	contact.UserID = user.ID
	return db.Create(contact).Error
}

func (user *User) LoadContacts() error {
	return db.Limit(500).Find(&user.Contacts, "user_id = ?", user.ID).Error
}

func (user *User) DeleteContact(id interface{}) error {
	return db.Where("user_id = ?", user.ID).Delete(&Contact{}, id).Error
}

// EmergencyContacts returns every contact SOS messages should go to
// when no specific contact is targeted.
func (user *User) EmergencyContacts() ([]Contact, error) {
	contacts := []Contact{}

	err := db.Where("user_id = ? AND is_emergency_contact = true", user.ID).Find(&contacts).Error
	if err != nil {
		return nil, err
	}

	return contacts, nil
}

func FindUserBy(field string, value interface{}) (*User, error) {
	user := User{}
	err := db.Select(allFieldsExceptPassword).First(&user, fmt.Sprintf("%v = ?", field), value).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func FindUserPassword(email string) (string, error) {
	user := &User{}
	err := db.Select("Password").First(user, "email = ?", email).Error

	if err != nil {
		return "", err
	}
	return user.Password, nil
}

func CreateUser(user *User) error {
	passwordHash, err := auth.HashPassword(user.Password)
	if err != nil {
		return err
	}
	user.Password = passwordHash

	return db.Create(user).Error
}

func DeleteUser(id interface{}) error {
	return db.Delete(&User{}, id).Error
}
