package client

import (
	"os/exec"
	"runtime"
)

// LinkOpener hands a url to a new browsing context.
type LinkOpener interface {
	Open(url string) error
}

// BrowserOpener opens the url in the system browser.
type BrowserOpener struct{}

func (BrowserOpener) Open(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
