package client

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// LocationWaitBound caps how long a single position request may take.
const LocationWaitBound = 10 * time.Second

var (
	ErrNoLocator       = errors.New("geolocation is not supported on this device")
	ErrLocationDenied  = errors.New("unable to get location, check location permissions")
	ErrLocationTimeout = errors.New("timed out waiting for location")
)

type Position struct {
	Latitude  float64
	Longitude float64
}

// Locator is a single-shot position source. Implementations must honor
// the context deadline.
type Locator interface {
	CurrentPosition(ctx context.Context) (*Position, error)
}

// GeoIPLocator resolves an approximate position from the device's public
// ip address. Best the cli can do without gps hardware.
type GeoIPLocator struct {
	Endpoint     string
	HighAccuracy bool
	HTTPClient   *http.Client
}

func NewGeoIPLocator(endpoint string, highAccuracy bool) *GeoIPLocator {
	if endpoint == "" {
		endpoint = "http://ip-api.com/json"
	}

	return &GeoIPLocator{
		Endpoint:     endpoint,
		HighAccuracy: highAccuracy,
		HTTPClient:   &http.Client{Timeout: LocationWaitBound},
	}
}

func (l *GeoIPLocator) CurrentPosition(ctx context.Context) (*Position, error) {
	url := l.Endpoint + "?fields=status,lat,lon"
	if l.HighAccuracy {
		url += "&highAccuracy=true"
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.HTTPClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, ErrLocationTimeout
		}
		return nil, errors.Wrap(ErrLocationDenied, err.Error())
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(ErrLocationDenied, err.Error())
	}

	data := struct {
		Status string  `json:"status"`
		Lat    float64 `json:"lat"`
		Lon    float64 `json:"lon"`
	}{}
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, errors.Wrap(ErrLocationDenied, err.Error())
	}

	if data.Status != "success" {
		return nil, ErrLocationDenied
	}

	return &Position{Latitude: data.Lat, Longitude: data.Lon}, nil
}

// StaticLocator returns a fixed position from config. Useful for
// machines without any location capability worth trusting.
type StaticLocator struct {
	Position Position
}

func (l *StaticLocator) CurrentPosition(ctx context.Context) (*Position, error) {
	return &l.Position, nil
}
