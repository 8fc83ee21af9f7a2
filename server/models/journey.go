package models

import "time"

const (
	ACTIVE_JOURNEY = "ACTIVE"
	CLOSED_JOURNEY = "CLOSED"
)

type Journey struct {
	BaseModel
	UserID    uint      `json:"user_id" gorm:"not null"`
	StartedAt time.Time `json:"started_at"`
	Status    string    `json:"status" gorm:"not null;default:ACTIVE"`
}

func CreateJourney(userID uint) (*Journey, error) {
	journey := Journey{
		UserID:    userID,
		StartedAt: time.Now(),
		Status:    ACTIVE_JOURNEY,
	}

	err := db.Create(&journey).Error
	if err != nil {
		return nil, err
	}

	return &journey, nil
}

func JourneysForUser(userID interface{}) ([]Journey, error) {
	journeys := []Journey{}

	err := db.Order("started_at desc").Limit(100).Find(&journeys, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}

	return journeys, nil
}

// CloseStaleJourneys marks journeys that have been ACTIVE for longer
// than 'maxAge' as CLOSED & returns how many were updated.
func CloseStaleJourneys(maxAge time.Duration) (int64, error) {
	cutOff := time.Now().Add(-maxAge)

	res := db.Model(&Journey{}).
		Where("status = ? AND started_at < ?", ACTIVE_JOURNEY, cutOff).
		Update("status", CLOSED_JOURNEY)

	return res.RowsAffected, res.Error
}
