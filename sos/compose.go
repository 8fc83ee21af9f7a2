// Package sos builds the emergency message and the links it travels on.
// The same composition is used by the CLI deep-link flow and the server
// side sms dispatch, so the text a contact receives is identical on
// either path.
package sos

import (
	"fmt"
	"net/url"
	"strconv"
)

const (
	// FallbackSenderName is used when the sender's profile can't be fetched
	FallbackSenderName = "User"

	tripInfoPlaceholder = "Trip info: (source → destination, time)."
)

// NameOutcome is the result of the best-effort display-name lookup that
// runs before location capture. A failed lookup falls back to a generic
// name rather than aborting the flow.
type NameOutcome struct {
	name     string
	resolved bool
}

func NameResolved(name string) NameOutcome {
	if name == "" {
		return NameFallback()
	}
	return NameOutcome{name: name, resolved: true}
}

func NameFallback() NameOutcome {
	return NameOutcome{name: FallbackSenderName}
}

func (o NameOutcome) Name() string   { return o.name }
func (o NameOutcome) Resolved() bool { return o.resolved }

// MapsLink returns a google maps link for the given coordinates. The
// coordinates are embedded verbatim, with no rounding or padding.
func MapsLink(lat, lng float64) string {
	return fmt.Sprintf("https://www.google.com/maps?q=%v,%v",
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lng, 'f', -1, 64))
}

// ComposeMessage builds the SOS text: preamble naming the sender, the
// maps link, the trip-info placeholder & a call to action.
func ComposeMessage(sender NameOutcome, mapsLink string) string {
	return fmt.Sprintf(
		"EMERGENCY: This is %v. I need immediate help.\n"+
			"My approximate location: %v\n"+
			"%v\n"+
			"Please contact me ASAP.",
		sender.Name(), mapsLink, tripInfoPlaceholder)
}

// DeepLink builds the wa.me link that opens a chat pre-filled with 'message'.
// With an empty phone the link has no fixed recipient, so the user picks
// one in the messaging app.
func DeepLink(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%v?text=%v", phone, url.QueryEscape(message))
}
