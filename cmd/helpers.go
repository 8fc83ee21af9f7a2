package cmd

import (
	"path/filepath"

	"safetravelbuddy/client"

	"github.com/spf13/cobra"
)

func newApp() *client.App {
	api := client.NewClient(config.GetString("api.baseURL"))
	sessions := client.NewSessionStore(sessionDirectory())

	return client.NewApp(api, sessions)
}

// sessionDirectory is where the session token lives - next to the
// config file, unless overridden via 'sessionDir'.
func sessionDirectory() string {
	if dir := config.GetString("sessionDir"); dir != "" {
		return dir
	}

	_, configDir, err := defaultCfgNameAndDir()
	cobra.CheckErr(err)

	return filepath.Join(configDir, ".safetravelbuddy.d")
}

// newLocator builds the position source the config asks for. A 'none'
// provider returns nil i.e. no location capability at all.
func newLocator() client.Locator {
	switch config.GetString("location.provider") {
	case "none":
		return nil
	case "static":
		return &client.StaticLocator{Position: client.Position{
			Latitude:  config.GetFloat64("location.static.latitude"),
			Longitude: config.GetFloat64("location.static.longitude"),
		}}
	default:
		return client.NewGeoIPLocator(
			config.GetString("location.geoipEndpoint"),
			config.GetBool("location.highAccuracy"),
		)
	}
}
