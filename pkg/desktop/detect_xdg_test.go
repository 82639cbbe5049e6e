//go:build !darwin && !windows

package desktop

import (
	"os"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		unset  bool
		want   DesktopEnvironment
		wantOk bool
	}{
		{name: "unset", unset: true, wantOk: false},
		{name: "empty", value: "", wantOk: false},
		{name: "simple", value: "KDE", want: Kde, wantOk: true},
		{name: "prefixed", value: "ubuntu:GNOME", want: Gnome, wantOk: true},
		{name: "conflict", value: "KDE:GNOME", wantOk: false},
		{name: "unrecognized", value: "foo", wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.unset {
				// t.Setenv registers the restore, os.Unsetenv makes it absent
				t.Setenv("XDG_CURRENT_DESKTOP", "")
				if err := os.Unsetenv("XDG_CURRENT_DESKTOP"); err != nil {
					t.Fatal(err)
				}
			} else {
				t.Setenv("XDG_CURRENT_DESKTOP", tt.value)
			}

			got, ok := Detect()
			if ok != tt.wantOk {
				t.Fatalf("Detect() ok = %v, want %v", ok, tt.wantOk)
			}
			if ok && got != tt.want {
				t.Errorf("Detect() = %v, want %v", got, tt.want)
			}
		})
	}
}
