// Package session classifies the current display session from environment
// variables. Like desktop detection, it is a one-shot read with no error
// surface: an unclassifiable session is simply Unknown.
package session

import "os"

// Type is the kind of display session the process runs under.
type Type string

const (
	Wayland Type = "wayland"
	X11     Type = "x11"
	TTY     Type = "tty"
	Unknown Type = ""
)

// Detect reports the current display session type. XDG_SESSION_TYPE is
// authoritative when set to a known value; otherwise the display sockets
// advertised in the environment decide.
func Detect() Type {
	switch os.Getenv("XDG_SESSION_TYPE") {
	case "wayland":
		return Wayland
	case "x11":
		return X11
	case "tty":
		return TTY
	}

	if os.Getenv("WAYLAND_DISPLAY") != "" {
		return Wayland
	}
	if os.Getenv("DISPLAY") != "" {
		return X11
	}
	return Unknown
}

// IsWSL reports whether the process runs inside Windows Subsystem for Linux.
func IsWSL() bool {
	_, ok := os.LookupEnv("WSL_DISTRO_NAME")
	return ok
}
