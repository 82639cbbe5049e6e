package session

import (
	"os"
	"testing"
)

func clearSessionEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"XDG_SESSION_TYPE", "WAYLAND_DISPLAY", "DISPLAY", "WSL_DISTRO_NAME"} {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatal(err)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Type
	}{
		{
			name: "session type wayland",
			env:  map[string]string{"XDG_SESSION_TYPE": "wayland"},
			want: Wayland,
		},
		{
			name: "session type x11",
			env:  map[string]string{"XDG_SESSION_TYPE": "x11"},
			want: X11,
		},
		{
			name: "session type tty",
			env:  map[string]string{"XDG_SESSION_TYPE": "tty"},
			want: TTY,
		},
		{
			name: "session type wins over display sockets",
			env:  map[string]string{"XDG_SESSION_TYPE": "x11", "WAYLAND_DISPLAY": "wayland-0"},
			want: X11,
		},
		{
			name: "wayland display fallback",
			env:  map[string]string{"WAYLAND_DISPLAY": "wayland-0"},
			want: Wayland,
		},
		{
			name: "x11 display fallback",
			env:  map[string]string{"DISPLAY": ":0"},
			want: X11,
		},
		{
			name: "unrecognized session type falls through",
			env:  map[string]string{"XDG_SESSION_TYPE": "mir", "DISPLAY": ":0"},
			want: X11,
		},
		{
			name: "nothing set",
			env:  map[string]string{},
			want: Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearSessionEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if got := Detect(); got != tt.want {
				t.Errorf("Detect() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsWSL(t *testing.T) {
	clearSessionEnv(t)
	if IsWSL() {
		t.Error("IsWSL() = true with WSL_DISTRO_NAME unset")
	}

	t.Setenv("WSL_DISTRO_NAME", "Ubuntu")
	if !IsWSL() {
		t.Error("IsWSL() = false with WSL_DISTRO_NAME set")
	}
}
