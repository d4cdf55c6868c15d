// Package browser opens a paper URL in the user's web browser.
package browser

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"runtime"
)

// Open launches the platform browser for an http(s) URL. The opener can be
// overridden with PAPERBLOG_BROWSER, mainly for unusual desktop setups.
func Open(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open URL with scheme %q (only http/https allowed)", u.Scheme)
	}

	name, args := openerCommand(rawURL)
	return exec.Command(name, args...).Start()
}

func openerCommand(rawURL string) (string, []string) {
	if custom := os.Getenv("PAPERBLOG_BROWSER"); custom != "" {
		return custom, []string{rawURL}
	}
	switch runtime.GOOS {
	case "darwin":
		return "open", []string{rawURL}
	case "windows":
		// rundll32 avoids cmd /c start's shell interpretation of the URL
		return "rundll32", []string{"url.dll,FileProtocolHandler", rawURL}
	default:
		return "xdg-open", []string{rawURL}
	}
}
