package desktop

import "strings"

// Desktop environment names registered with freedesktop.org, as they appear
// in XDG_CURRENT_DESKTOP and desktop entry OnlyShowIn lists. Matching is
// case-sensitive: "KDE" is registered, "kde" is not.
var freedesktopNames = map[string]DesktopEnvironment{
	"COSMIC":          Cosmic,
	"Cinnamon":        Cinnamon,
	"DDE":             Dde,
	"EDE":             Ede,
	"ENDLESS":         Endless,
	"ENLIGHTENMENT":   Enlightenment,
	"GNOME":           Gnome,
	"GNOME-Classic":   Gnome,
	"GNOME-Flashback": Gnome,
	"KDE":             Kde,
	"LXDE":            Lxde,
	"LXQt":            Lxqt,
	"MATE":            Mate,
	"Old":             Old,
	"Pantheon":        Pantheon,
	"Razor":           Razor,
	"ROX":             Rox,
	"TDE":             Tde,
	"Unity":           Unity,
	"XFCE":            Xfce,
}

// Identifiers never registered with freedesktop.org but observed in
// XDG_CURRENT_DESKTOP in practice: historical spellings and compositors
// that run standalone sessions.
var xdgExtraNames = map[string]DesktopEnvironment{
	"X-Cinnamon": Cinnamon,
	"Deepin":     Dde,
	"deepin":     Dde,
	"Hyprland":   Hyprland,
	"niri":       Niri,
	"sway":       Sway,
	"Sway":       Sway,
	"SWAY":       Sway,
}

// FromFreedesktop resolves a single registered freedesktop.org desktop name.
// The comparison is exact and case-sensitive. The second return value is
// false when the name is not registered.
func FromFreedesktop(name string) (DesktopEnvironment, bool) {
	de, ok := freedesktopNames[name]
	return de, ok
}

// FromXDGName resolves a single XDG_CURRENT_DESKTOP token. It accepts every
// registered freedesktop.org name plus unregistered identifiers seen in the
// wild, making it a strict superset of FromFreedesktop.
func FromXDGName(name string) (DesktopEnvironment, bool) {
	if de, ok := freedesktopNames[name]; ok {
		return de, true
	}
	de, ok := xdgExtraNames[name]
	return de, ok
}

// FromXDGCurrentDesktop resolves a raw XDG_CURRENT_DESKTOP value: a
// colon-separated list of tokens, most-preferred first.
//
// Tokens that don't name a known desktop environment are skipped; sessions
// commonly prefix a distribution name, as in "ubuntu:GNOME". Duplicates of
// the same environment are fine, but two tokens naming different known
// environments are an unresolvable ambiguity and yield no classification
// rather than an arbitrary pick.
func FromXDGCurrentDesktop(raw string) (DesktopEnvironment, bool) {
	var resolved DesktopEnvironment
	found := false
	for _, token := range strings.Split(raw, ":") {
		de, ok := FromXDGName(token)
		if !ok {
			continue
		}
		if found && de != resolved {
			return 0, false
		}
		resolved = de
		found = true
	}
	return resolved, found
}
