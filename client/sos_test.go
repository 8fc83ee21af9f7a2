package client

import (
	"context"
	"net/url"
	"testing"

	"safetravelbuddy/sos"

	"github.com/stretchr/testify/assert"
)

type recordingLocator struct {
	position Position
	err      error
	calls    int
}

func (l *recordingLocator) CurrentPosition(ctx context.Context) (*Position, error) {
	l.calls++
	if l.err != nil {
		return nil, l.err
	}
	return &l.position, nil
}

type recordingOpener struct {
	opened []string
	err    error
}

func (o *recordingOpener) Open(link string) error {
	o.opened = append(o.opened, link)
	return o.err
}

func TestTriggerOpensDeepLinkWithLocationAndName(t *testing.T) {
	api := &fakeAPI{}
	app, sessions := newTestApp(t, api)
	sessions.Save("issued-token")

	locator := &recordingLocator{position: Position{Latitude: 12.9, Longitude: 77.6}}
	opener := &recordingOpener{}

	link, err := NewSOSFlow(app, locator, opener).Trigger("")
	assert.Nil(t, err)

	wantMessage := sos.ComposeMessage(sos.NameResolved("Asha"), "https://www.google.com/maps?q=12.9,77.6")
	wantLink := "https://wa.me/?text=" + url.QueryEscape(wantMessage)

	assert.Equal(t, wantLink, link)
	assert.Equal(t, []string{wantLink}, opener.opened)
	assert.False(t, app.State.Busy, "busy flag should be cleared after the flow")
}

func TestTriggerWithSavedContactTargetsTheirPhone(t *testing.T) {
	api := &fakeAPI{}
	app, sessions := newTestApp(t, api)
	sessions.Save("issued-token")

	locator := &recordingLocator{position: Position{Latitude: 12.9, Longitude: 77.6}}
	opener := &recordingOpener{}

	link, err := NewSOSFlow(app, locator, opener).Trigger("91XXXXXXXX01")
	assert.Nil(t, err)
	assert.Contains(t, link, "https://wa.me/91XXXXXXXX01?text=")
}

func TestTriggerWithoutSessionDoesNothing(t *testing.T) {
	api := &fakeAPI{}
	app, _ := newTestApp(t, api)

	locator := &recordingLocator{position: Position{Latitude: 12.9, Longitude: 77.6}}
	opener := &recordingOpener{}

	_, err := NewSOSFlow(app, locator, opener).Trigger("")

	assert.ErrorIs(t, err, ErrNoSession)
	assert.Zero(t, locator.calls, "location should not be requested without a session")
	assert.Empty(t, opener.opened)
	assert.Empty(t, api.requests)
}

func TestTriggerFallsBackToGenericNameWhenProfileFetchFails(t *testing.T) {
	api := &fakeAPI{failMe: true}
	app, sessions := newTestApp(t, api)
	sessions.Save("issued-token")

	locator := &recordingLocator{position: Position{Latitude: 12.9, Longitude: 77.6}}
	opener := &recordingOpener{}

	link, err := NewSOSFlow(app, locator, opener).Trigger("")
	assert.Nil(t, err)

	wantMessage := sos.ComposeMessage(sos.NameFallback(), "https://www.google.com/maps?q=12.9,77.6")
	assert.Equal(t, "https://wa.me/?text="+url.QueryEscape(wantMessage), link)
	assert.Len(t, opener.opened, 1, "a failed name lookup must not abort the SOS")
}

func TestTriggerWithoutLocatorFailsBeforeOpening(t *testing.T) {
	api := &fakeAPI{}
	app, sessions := newTestApp(t, api)
	sessions.Save("issued-token")

	opener := &recordingOpener{}

	_, err := NewSOSFlow(app, nil, opener).Trigger("")

	assert.ErrorIs(t, err, ErrNoLocator)
	assert.Empty(t, opener.opened)
	assert.False(t, app.State.Busy)
}

func TestTriggerClearsBusyWhenLocationFails(t *testing.T) {
	api := &fakeAPI{}
	app, sessions := newTestApp(t, api)
	sessions.Save("issued-token")

	locator := &recordingLocator{err: ErrLocationDenied}
	opener := &recordingOpener{}

	_, err := NewSOSFlow(app, locator, opener).Trigger("")

	assert.ErrorIs(t, err, ErrLocationDenied)
	assert.Empty(t, opener.opened, "no chat should open without a position")
	assert.False(t, app.State.Busy)
}

func TestTriggerReturnsLinkEvenWhenOpenFails(t *testing.T) {
	api := &fakeAPI{}
	app, sessions := newTestApp(t, api)
	sessions.Save("issued-token")

	locator := &recordingLocator{position: Position{Latitude: 1, Longitude: 2}}
	opener := &recordingOpener{err: assert.AnError}

	link, err := NewSOSFlow(app, locator, opener).Trigger("")

	assert.NotNil(t, err)
	assert.Contains(t, link, "https://wa.me/?text=", "the link comes back so it can be shown to the user")
}

func TestTriggerSMSDispatchesThroughAPI(t *testing.T) {
	api := &fakeAPI{}
	app, sessions := newTestApp(t, api)
	sessions.Save("issued-token")

	locator := &recordingLocator{position: Position{Latitude: 12.9, Longitude: 77.6}}

	err := NewSOSFlow(app, locator, &recordingOpener{}).TriggerSMS(0)

	assert.Nil(t, err)
	assert.Contains(t, api.requests, "/api/sos/dispatch")
	assert.False(t, app.State.Busy)
}

func TestTriggerSMSWithoutSession(t *testing.T) {
	api := &fakeAPI{}
	app, _ := newTestApp(t, api)

	err := NewSOSFlow(app, &recordingLocator{}, &recordingOpener{}).TriggerSMS(0)

	assert.ErrorIs(t, err, ErrNoSession)
	assert.Empty(t, api.requests)
}
