//go:build darwin

package desktop

// Detect reports the desktop environment of the current session. On macOS
// there is only one: Aqua. XDG_CURRENT_DESKTOP is ignored even if set.
func Detect() (DesktopEnvironment, bool) {
	return MacOs, true
}
