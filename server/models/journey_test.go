package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func createTestUser(t *testing.T, email string) *User {
	t.Helper()

	user := &User{Name: "Asha", Email: email, Password: "Str0ngPassword!"}
	if err := CreateUser(user); err != nil {
		t.Fatal(err)
	}

	return user
}

func TestCreateJourneyStartsActive(t *testing.T) {
	InitializeTestDb()
	user := createTestUser(t, "asha@example.com")

	journey, err := CreateJourney(user.ID)

	assert.Nil(t, err)
	assert.Equal(t, ACTIVE_JOURNEY, journey.Status)
	assert.WithinDuration(t, time.Now(), journey.StartedAt, 5*time.Second)
}

func TestJourneysForUserIsNewestFirst(t *testing.T) {
	InitializeTestDb()
	user := createTestUser(t, "asha@example.com")
	otherUser := createTestUser(t, "femi@example.com")

	first, _ := CreateJourney(user.ID)
	second, _ := CreateJourney(user.ID)
	CreateJourney(otherUser.ID)

	// Space the start times out so the ordering is deterministic
	db.Model(first).Update("started_at", time.Now().Add(-time.Hour))

	journeys, err := JourneysForUser(user.ID)

	assert.Nil(t, err)
	assert.Len(t, journeys, 2, "should only include the user's own journeys")
	assert.Equal(t, second.ID, journeys[0].ID)
	assert.Equal(t, first.ID, journeys[1].ID)
}

func TestCloseStaleJourneys(t *testing.T) {
	InitializeTestDb()
	user := createTestUser(t, "asha@example.com")

	stale, _ := CreateJourney(user.ID)
	fresh, _ := CreateJourney(user.ID)

	db.Model(stale).Update("started_at", time.Now().Add(-48*time.Hour))

	closed, err := CloseStaleJourneys(24 * time.Hour)

	assert.Nil(t, err)
	assert.Equal(t, int64(1), closed)

	journeys, _ := JourneysForUser(user.ID)
	statusByID := map[uint]string{}
	for _, journey := range journeys {
		statusByID[journey.ID] = journey.Status
	}

	assert.Equal(t, CLOSED_JOURNEY, statusByID[stale.ID])
	assert.Equal(t, ACTIVE_JOURNEY, statusByID[fresh.ID])
}
