package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"safetravelbuddy/server/auth"
	"safetravelbuddy/server/auth/key"
	"safetravelbuddy/server/models"
	"safetravelbuddy/server/work"
	"safetravelbuddy/sos"

	"github.com/golang-jwt/jwt"
	"gorm.io/gorm"
)

type ResponsePayload struct {
	Errors  []string    `json:"errors,omitempty"`
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

type RequestContextKey string

type DecodedJWT struct {
	Claims   *auth.TokenClaims
	ErrorMsg string
}

type sosDispatchPayload struct {
	ContactID uint     `json:"contact_id"`
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
}

func registerUser(rw http.ResponseWriter, r *http.Request) {
	data := models.User{}
	decoder := json.NewDecoder(r.Body)

	err := decoder.Decode(&data)
	if err != nil {
		writeResponse(rw, ResponsePayload{Errors: []string{err.Error()}}, http.StatusInternalServerError)
		return
	}

	errs := validate.Struct(data)
	if errs != nil {
		writeResponse(rw, ResponsePayload{Errors: strings.Split(errs.Error(), "\n")}, http.StatusBadRequest)
		return
	}

	if _, err = models.FindUserBy("email", data.Email); err == nil {
		writeResponse(rw, ResponsePayload{Errors: []string{"email already registered"}}, http.StatusBadRequest)
		return
	}

	err = models.CreateUser(&data)
	if err != nil {
		writeResponse(rw, ResponsePayload{Errors: []string{err.Error()}}, http.StatusInternalServerError)
		return
	}

	writeData(rw, map[string]interface{}{
		"message": "User registered successfully",
		"email":   data.Email,
	}, http.StatusOK)
}

func logIn(rw http.ResponseWriter, r *http.Request) {
	data := make(map[string]string)
	decoder := json.NewDecoder(r.Body)
	decoder.Decode(&data)

	passwordHash, err := models.FindUserPassword(data["email"])
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		writeResponse(rw, ResponsePayload{Errors: []string{err.Error()}}, http.StatusInternalServerError)
		return
	}

	if !auth.CheckPasswordHash(data["password"], passwordHash) {
		writeResponse(rw, ResponsePayload{Errors: []string{"email/password is invalid"}}, http.StatusUnauthorized)
		return
	}

	user, err := models.FindUserBy("email", data["email"])
	if err != nil {
		writeResponse(rw, ResponsePayload{Errors: []string{err.Error()}}, http.StatusInternalServerError)
		return
	}

	token, err := auth.EncodeJWT(auth.TokenClaims{
		Name:  user.Name,
		Email: user.Email,
		StandardClaims: jwt.StandardClaims{
			Subject:   fmt.Sprint(user.ID),
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(1 * time.Hour).Unix(),
		},
	}, authKeyPair)
	if err != nil {
		writeResponse(rw, ResponsePayload{Errors: []string{err.Error()}}, http.StatusInternalServerError)
		return
	}

	writeData(rw, map[string]interface{}{
		"token": token,
		"name":  user.Name,
		"email": user.Email,
	}, http.StatusOK)
}

// currentUser serves /api/user/me, used by the client both for session
// validation & profile display.
func currentUser(rw http.ResponseWriter, r *http.Request) {
	user, err := currentUserFromRequest(r)
	if err != nil {
		writeResponse(rw, ResponsePayload{Errors: []string{err.Error()}}, http.StatusInternalServerError)
		return
	}

	writeData(rw, map[string]interface{}{
		"name":  user.Name,
		"email": user.Email,
	}, http.StatusOK)
}

func startJourney(rw http.ResponseWriter, r *http.Request) {
	user, err := currentUserFromRequest(r)
	if err != nil {
		writeResponse(rw, ResponsePayload{Errors: []string{err.Error()}}, http.StatusInternalServerError)
		return
	}

	journey, err := models.CreateJourney(user.ID)
	if err != nil {
		writeResponse(rw, ResponsePayload{Errors: []string{err.Error()}}, http.StatusInternalServerError)
		return
	}

	writeData(rw, map[string]interface{}{
		"journey_id": journey.ID,
		"status":     journey.Status,
		"started_at": journey.StartedAt.Format(time.RFC3339),
	}, http.StatusCreated)
}

func listJourneys(rw http.ResponseWriter, r *http.Request) {
	user, err := currentUserFromRequest(r)
	if err != nil {
		writeResponse(rw, ResponsePayload{Errors: []string{err.Error()}}, http.StatusInternalServerError)
		return
	}

	journeys, err := models.JourneysForUser(user.ID)
	if err != nil {
		writeResponse(rw, ResponsePayload{Errors: []string{err.Error()}}, http.StatusInternalServerError)
		return
	}

	writeData(rw, journeys, http.StatusOK)
}

// dispatchSos queues an sms with the caller's SOS message to one of
// their saved contacts - or all of them when no contact is given.
func dispatchSos(rw http.ResponseWriter, r *http.Request) {
	data := sosDispatchPayload{}
	decoder := json.NewDecoder(r.Body)

	err := decoder.Decode(&data)
	if err != nil {
		writeResponse(rw, ResponsePayload{Errors: []string{err.Error()}}, http.StatusInternalServerError)
		return
	}

	errs := validate.Struct(data)
	if errs != nil {
		writeResponse(rw, ResponsePayload{Errors: strings.Split(errs.Error(), "\n")}, http.StatusBadRequest)
		return
	}

	user, err := currentUserFromRequest(r)
	if err != nil {
		writeResponse(rw, ResponsePayload{Errors: []string{err.Error()}}, http.StatusInternalServerError)
		return
	}

	contacts, err := sosRecipients(user, data.ContactID)
	if err != nil {
		writeResponse(rw, ResponsePayload{Errors: []string{err.Error()}}, http.StatusNotFound)
		return
	}

	message := sos.ComposeMessage(sos.NameResolved(user.Name), sos.MapsLink(*data.Latitude, *data.Longitude))

	for _, contact := range contacts {
		err = workerPool.Perform(work.JobParams{
			Name:    fmt.Sprintf("sosSms-u%v-c%v-%v", user.ID, contact.ID, time.Now().UnixNano()),
			Handler: "dispatchSosSms",
			Args: map[string]interface{}{
				"to":      contact.PhoneNumber,
				"message": message,
			},
		})
		if err != nil {
			writeResponse(rw, ResponsePayload{Errors: []string{err.Error()}}, http.StatusInternalServerError)
			return
		}
	}

	writeResponse(rw, ResponsePayload{Success: true}, http.StatusAccepted)
}

func jwks(rw http.ResponseWriter, r *http.Request) {
	keyPairJWK, err := authKeyPair.JWK()
	if err != nil {
		writeResponse(rw, ResponsePayload{Errors: []string{err.Error()}}, http.StatusInternalServerError)
		return
	}

	writeData(rw, key.ExportJWKAsJWKS(keyPairJWK), http.StatusOK)
}

func sosRecipients(user *models.User, contactID uint) ([]models.Contact, error) {
	if contactID != 0 {
		contact, err := models.FindContactForUser(user.ID, contactID)
		if err != nil {
			return nil, fmt.Errorf("no contact with id=%v for user", contactID)
		}
		return []models.Contact{*contact}, nil
	}

	contacts, err := user.EmergencyContacts()
	if err != nil {
		return nil, err
	}
	if len(contacts) == 0 {
		return nil, errors.New("no emergency contacts saved")
	}

	return contacts, nil
}
