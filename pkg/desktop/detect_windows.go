//go:build windows

package desktop

// Detect reports the desktop environment of the current session, which on
// Windows is always the Windows shell. XDG_CURRENT_DESKTOP is ignored even
// if set.
func Detect() (DesktopEnvironment, bool) {
	return Windows, true
}
