package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"safetravelbuddy/client"

	"github.com/spf13/cobra"
)

type fixedLocator struct{}

func (fixedLocator) CurrentPosition(ctx context.Context) (*client.Position, error) {
	return &client.Position{Latitude: 12.9, Longitude: 77.6}, nil
}

type noopOpener struct{}

func (noopOpener) Open(link string) error { return nil }

// writeTestConfig writes a config file pointing the cli at the test api
// server & the given session dir, and returns its path.
func writeTestConfig(t *testing.T, apiBaseURL, sessionDir string) string {
	t.Helper()

	content := fmt.Sprintf(`api:
  baseURL: %q
sessionDir: %q
location:
  provider: "static"
contacts:
- name: Mom
  phone: "91XXXXXXXX01"
`, apiBaseURL, sessionDir)

	path := filepath.Join(t.TempDir(), "config.yml")
	if err := ioutil.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestSosCmd(t *testing.T) {
	var (
		sosCmd    *cobra.Command
		buff      = new(bytes.Buffer)
		actualOut string
	)

	apiServer := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/user/me":
			json.NewEncoder(rw).Encode(map[string]string{"name": "Asha", "email": "asha@example.com"})
		case "/api/sos/dispatch":
			rw.WriteHeader(http.StatusAccepted)
			json.NewEncoder(rw).Encode(map[string]bool{"success": true})
		default:
			rw.WriteHeader(http.StatusNotFound)
		}
	}))
	defer apiServer.Close()

	// A session dir with a saved token, and one without
	loggedInDir := t.TempDir()
	if err := client.NewSessionStore(loggedInDir).Save("test-token"); err != nil {
		t.Fatal(err)
	}
	loggedOutDir := t.TempDir()

	// Save cfgFile & stubs before replacing them
	// And revert after test is done
	savedCfgFile := cfgFile
	savedLocator := sosLocator
	savedOpener := sosOpener
	defer func() {
		cfgFile = savedCfgFile
		sosLocator = savedLocator
		sosOpener = savedOpener
	}()

	sosLocator = fixedLocator{}
	sosOpener = noopOpener{}

	cases := []struct {
		description string
		args        []string
		sessionDir  string
		expectedOut string
	}{
		{
			description: "Should ask the user to login when there is no session",
			args:        []string{},
			sessionDir:  loggedOutDir,
			expectedOut: "please login first",
		},
		{
			description: "Should fail for a contact that is not saved",
			args:        []string{"--contact", "Granny"},
			sessionDir:  loggedInDir,
			expectedOut: "no saved contact named \"Granny\"",
		},
		{
			description: "Should open a broadcast chat link by default",
			args:        []string{},
			sessionDir:  loggedInDir,
			expectedOut: "https://wa.me/?text=",
		},
		{
			description: "Should target the saved contact's phone with --contact",
			args:        []string{"--contact", "mom"},
			sessionDir:  loggedInDir,
			expectedOut: "https://wa.me/91XXXXXXXX01?text=",
		},
		{
			description: "Should queue an sms with --sms",
			args:        []string{"--sms"},
			sessionDir:  loggedInDir,
			expectedOut: "SOS sms queued for delivery.",
		},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			cfgFile = writeTestConfig(t, apiServer.URL, c.sessionDir)

			sosContactArg = ""
			sosSmsArg = false
			sosContactIDArg = 0

			sosCmd = createSosCmd()

			// Clear output buffer before the next test
			buff.Reset()

			sosCmd.SetOut(buff)
			sosCmd.SetErr(buff)
			sosCmd.SetArgs(c.args)

			sosCmd.Execute()

			actualOut = buff.String()
			if !strings.Contains(actualOut, c.expectedOut) {
				t.Errorf("Expected: \n\"%s\" \nTo contain: \n\"%s\"", actualOut, c.expectedOut)
			}
		})
	}
}
