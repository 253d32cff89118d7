package theme

import (
	"context"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// SchemeDetector reports the operating system's color-scheme preference.
type SchemeDetector interface {
	PrefersDark() (bool, error)
}

// ErrNoScheme means the platform exposes no color-scheme preference.
var ErrNoScheme = errors.New("theme: system color scheme unavailable")

// OSScheme queries the desktop's color-scheme setting with the platform tool.
type OSScheme struct {
	Timeout time.Duration
}

func (o OSScheme) PrefersDark() (bool, error) {
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = 500 * time.Millisecond
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	switch runtime.GOOS {
	case "darwin":
		out, err := exec.CommandContext(ctx, "defaults", "read", "-g", "AppleInterfaceStyle").Output()
		if err != nil {
			// The key is absent in light mode.
			if _, ok := err.(*exec.ExitError); ok {
				return false, nil
			}
			return false, errors.Wrap(err, "reading AppleInterfaceStyle")
		}
		return strings.Contains(strings.ToLower(string(out)), "dark"), nil
	case "windows":
		out, err := exec.CommandContext(ctx, "reg", "query",
			`HKCU\Software\Microsoft\Windows\CurrentVersion\Themes\Personalize`,
			"/v", "AppsUseLightTheme").Output()
		if err != nil {
			return false, errors.Wrap(err, "querying AppsUseLightTheme")
		}
		return strings.Contains(string(out), "0x0"), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		out, err := exec.CommandContext(ctx, "gsettings", "get",
			"org.gnome.desktop.interface", "color-scheme").Output()
		if err != nil {
			return false, errors.Wrap(err, "querying gsettings color-scheme")
		}
		return parseGnomeScheme(string(out))
	}
	return false, ErrNoScheme
}

// parseGnomeScheme reads values like 'prefer-dark', 'prefer-light' or 'default'.
func parseGnomeScheme(out string) (bool, error) {
	v := strings.Trim(strings.TrimSpace(out), "'\"")
	switch v {
	case "prefer-dark":
		return true, nil
	case "prefer-light", "default":
		return false, nil
	}
	return false, errors.Wrapf(ErrNoScheme, "unrecognized color-scheme %q", v)
}
