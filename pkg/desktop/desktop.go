// Package desktop identifies the desktop environment the current process is
// running under. On macOS and Windows the answer is fixed by the platform;
// everywhere else it is derived from the XDG_CURRENT_DESKTOP environment
// variable per the freedesktop.org conventions.
package desktop

// DesktopEnvironment is a recognized desktop environment.
//
// The set is not exhaustive and new environments may be added in a minor
// release; callers switching over values should always keep a default case.
type DesktopEnvironment int

const (
	Cinnamon DesktopEnvironment = iota
	Cosmic
	Dde
	Ede
	Endless
	Enlightenment
	Gnome
	Hyprland
	Kde
	Lxde
	Lxqt
	MacOs
	Mate
	Niri
	Old
	Pantheon
	Razor
	Rox
	Sway
	Tde
	Unity
	Windows
	Xfce
)

var names = map[DesktopEnvironment]string{
	Cinnamon:      "Cinnamon",
	Cosmic:        "COSMIC",
	Dde:           "DDE",
	Ede:           "EDE",
	Endless:       "Endless",
	Enlightenment: "Enlightenment",
	Gnome:         "GNOME",
	Hyprland:      "Hyprland",
	Kde:           "KDE",
	Lxde:          "LXDE",
	Lxqt:          "LXQt",
	MacOs:         "macOS",
	Mate:          "MATE",
	Niri:          "niri",
	Old:           "Old",
	Pantheon:      "Pantheon",
	Razor:         "Razor-qt",
	Rox:           "ROX",
	Sway:          "Sway",
	Tde:           "Trinity",
	Unity:         "Unity",
	Windows:       "Windows",
	Xfce:          "Xfce",
}

func (de DesktopEnvironment) String() string {
	if name, ok := names[de]; ok {
		return name
	}
	return "unknown"
}

// GTK reports whether the desktop environment is built on the GTK toolkit.
func (de DesktopEnvironment) GTK() bool {
	switch de {
	case Cinnamon, Cosmic, Dde, Endless, Gnome, Lxde, Mate, Pantheon, Unity, Xfce:
		return true
	}
	return false
}

// Qt reports whether the desktop environment is built on the Qt toolkit.
func (de DesktopEnvironment) Qt() bool {
	switch de {
	case Kde, Lxqt, Razor, Tde:
		return true
	}
	return false
}
