package models

type Contact struct {
	BaseModel
	Name               string `json:"name" validate:"required"`
	PhoneNumber        string `json:"phone_number" validate:"required,e164" gorm:"not null"`
	IsEmergencyContact bool   `json:"is_emergency_contact" gorm:"default:true"`
	UserID             uint   `json:"user_id" gorm:"not null"`
}

func FindContactForUser(userID, contactID interface{}) (*Contact, error) {
	contact := Contact{}

	err := db.Where("user_id = ?", userID).First(&contact, contactID).Error
	if err != nil {
		return nil, err
	}

	return &contact, nil
}
