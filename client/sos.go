package client

import (
	"context"

	"safetravelbuddy/sos"
)

// SOSFlow orchestrates the one-tap SOS: session guard, best-effort
// sender name, location capture, message composition & deep-link open.
type SOSFlow struct {
	app     *App
	locator Locator
	opener  LinkOpener
}

func NewSOSFlow(app *App, locator Locator, opener LinkOpener) *SOSFlow {
	return &SOSFlow{app: app, locator: locator, opener: opener}
}

// Trigger runs the flow, targeting 'targetPhone' - or no fixed recipient
// when it's empty. It returns the deep link it opened.
//
// Every failure is terminal for this trigger: nothing is retried, and
// the busy flag is always cleared so the next tap can go through.
func (f *SOSFlow) Trigger(targetPhone string) (string, error) {
	token, err := f.app.sessions.Load()
	if err != nil || token == "" {
		return "", ErrNoSession
	}

	f.app.State = f.app.State.WithBusy(true)

	// Best-effort: a failed name lookup falls back to a generic sender,
	// it never aborts the flow.
	sender := sos.NameFallback()
	if profile, err := f.app.api.Me(token); err != nil {
		logg.Warnf("could not fetch user info for SOS, using generic name: %v", err)
	} else {
		sender = sos.NameResolved(profile.Name)
	}

	if f.locator == nil {
		f.app.State = f.app.State.WithBusy(false)
		return "", ErrNoLocator
	}

	ctx, cancel := context.WithTimeout(context.Background(), LocationWaitBound)
	defer cancel()

	position, err := f.locator.CurrentPosition(ctx)
	if err != nil {
		f.app.State = f.app.State.WithBusy(false)
		logg.Debugf("sos: location: %v", err)
		return "", err
	}

	f.app.State = f.app.State.WithBusy(false)

	message := sos.ComposeMessage(sender, sos.MapsLink(position.Latitude, position.Longitude))
	deepLink := sos.DeepLink(targetPhone, message)

	if err := f.opener.Open(deepLink); err != nil {
		return deepLink, err
	}

	return deepLink, nil
}

// TriggerSMS sends the SOS through the server's sms dispatch instead of
// a chat deep link, for machines without a usable browser.
func (f *SOSFlow) TriggerSMS(contactID uint) error {
	token, err := f.app.sessions.Load()
	if err != nil || token == "" {
		return ErrNoSession
	}

	f.app.State = f.app.State.WithBusy(true)
	defer func() { f.app.State = f.app.State.WithBusy(false) }()

	if f.locator == nil {
		return ErrNoLocator
	}

	ctx, cancel := context.WithTimeout(context.Background(), LocationWaitBound)
	defer cancel()

	position, err := f.locator.CurrentPosition(ctx)
	if err != nil {
		logg.Debugf("sos: location: %v", err)
		return err
	}

	return f.app.api.DispatchSOS(token, contactID, position.Latitude, position.Longitude)
}
