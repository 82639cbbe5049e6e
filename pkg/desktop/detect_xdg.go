//go:build !darwin && !windows

package desktop

import "os"

// Detect reports the desktop environment of the current session, read from
// the XDG_CURRENT_DESKTOP environment variable. The second return value is
// false when the variable is unset or its contents can't be classified;
// that is never an error, just the absence of an answer.
func Detect() (DesktopEnvironment, bool) {
	raw, ok := os.LookupEnv("XDG_CURRENT_DESKTOP")
	if !ok {
		return 0, false
	}
	return FromXDGCurrentDesktop(raw)
}
