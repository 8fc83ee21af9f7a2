package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// DefaultBaseURL matches the api server's default dev listener
const DefaultBaseURL = "http://localhost:8081"

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

type JourneyInfo struct {
	JourneyID uint   `json:"journey_id"`
	Status    string `json:"status"`
	StartedAt string `json:"started_at"`
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) Register(name, email, password string) error {
	body := map[string]string{"name": name, "email": email, "password": password}

	_, err := c.do("POST", "/api/auth/register", "", body)
	return errors.Wrap(err, "register")
}

// Login exchanges credentials for the opaque session token.
func (c *Client) Login(email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}

	respBody, err := c.do("POST", "/api/auth/login", "", body)
	if err != nil {
		return "", errors.Wrap(err, "login")
	}

	data := struct {
		Token string `json:"token"`
	}{}
	if err := json.Unmarshal(respBody, &data); err != nil {
		return "", errors.Wrap(err, "login")
	}

	if data.Token == "" {
		return "", errors.New("login: no token in response")
	}

	return data.Token, nil
}

// Me fetches the caller's profile, which doubles as session validation.
func (c *Client) Me(token string) (*Profile, error) {
	respBody, err := c.do("GET", "/api/user/me", token, nil)
	if err != nil {
		return nil, errors.Wrap(err, "me")
	}

	profile := Profile{}
	if err := json.Unmarshal(respBody, &profile); err != nil {
		return nil, errors.Wrap(err, "me")
	}

	return &profile, nil
}

func (c *Client) StartJourney(token string) (*JourneyInfo, error) {
	respBody, err := c.do("POST", "/api/journeys/start", token, map[string]string{})
	if err != nil {
		return nil, errors.Wrap(err, "start journey")
	}

	journey := JourneyInfo{}
	if err := json.Unmarshal(respBody, &journey); err != nil {
		return nil, errors.Wrap(err, "start journey")
	}

	return &journey, nil
}

// DispatchSOS asks the server to text the SOS message to a saved
// contact(or all of them, with contactID=0) instead of opening a chat link.
func (c *Client) DispatchSOS(token string, contactID uint, lat, lng float64) error {
	body := map[string]interface{}{
		"contact_id": contactID,
		"latitude":   lat,
		"longitude":  lng,
	}

	_, err := c.do("POST", "/api/sos/dispatch", token, body)
	return errors.Wrap(err, "dispatch sos")
}

func (c *Client) do(method, path, token string, body interface{}) ([]byte, error) {
	var reqBody *bytes.Buffer = bytes.NewBuffer(nil)

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, reqBody)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %v", token))
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("%v %v: %v %s", method, path, resp.Status, respBody)
	}

	return respBody, nil
}
