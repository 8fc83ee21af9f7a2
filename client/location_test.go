package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGeoIPLocator(t *testing.T) {
	var requestedURL string

	geoipServer := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		requestedURL = r.URL.String()
		rw.Write([]byte(`{"status":"success","lat":12.9,"lon":77.6}`))
	}))
	defer geoipServer.Close()

	locator := NewGeoIPLocator(geoipServer.URL, true)

	position, err := locator.CurrentPosition(context.Background())

	assert.Nil(t, err)
	assert.Equal(t, 12.9, position.Latitude)
	assert.Equal(t, 77.6, position.Longitude)
	assert.Contains(t, requestedURL, "fields=status,lat,lon")
	assert.Contains(t, requestedURL, "highAccuracy=true")
}

func TestGeoIPLocatorDeniedLookup(t *testing.T) {
	geoipServer := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.Write([]byte(`{"status":"fail"}`))
	}))
	defer geoipServer.Close()

	locator := NewGeoIPLocator(geoipServer.URL, false)

	_, err := locator.CurrentPosition(context.Background())
	assert.ErrorIs(t, err, ErrLocationDenied)
}

func TestGeoIPLocatorTimesOut(t *testing.T) {
	geoipServer := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer geoipServer.Close()

	locator := NewGeoIPLocator(geoipServer.URL, false)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := locator.CurrentPosition(ctx)
	assert.ErrorIs(t, err, ErrLocationTimeout)
}

func TestStaticLocator(t *testing.T) {
	locator := &StaticLocator{Position: Position{Latitude: -33.8688, Longitude: 151.2093}}

	position, err := locator.CurrentPosition(context.Background())

	assert.Nil(t, err)
	assert.Equal(t, -33.8688, position.Latitude)
	assert.Equal(t, 151.2093, position.Longitude)
}
