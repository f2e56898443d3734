package icons

import "testing"

func TestInit(t *testing.T) {
	tests := []struct {
		name     string
		style    string
		expected Icons
	}{
		{"nerd style", "nerd", nerdIcons},
		{"unicode style", "unicode", unicodeIcons},
		{"none style", "none", noneIcons},
		{"empty string defaults to none", "", noneIcons},
		{"unknown style defaults to none", "invalid", noneIcons},
		{"case sensitive", "NERD", noneIcons},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.style)
			if current != tt.expected {
				t.Errorf("Init(%q) selected the wrong icon set", tt.style)
			}
		})
	}

	Init("none")
}

func TestValid(t *testing.T) {
	for _, s := range []string{"nerd", "unicode", "none"} {
		if !Valid(s) {
			t.Errorf("Valid(%q) = false", s)
		}
	}
	if Valid("emoji") {
		t.Error("Valid(emoji) = true")
	}
}

func TestState(t *testing.T) {
	Init("none")
	tests := []struct {
		state string
		want  string
	}{
		{"play", ">"},
		{"pause", "||"},
		{"stop", "[]"},
		{"", "[]"},
	}
	for _, tt := range tests {
		if got := State(tt.state); got != tt.want {
			t.Errorf("State(%q) = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestModes(t *testing.T) {
	Init("none")
	defer Init("none")

	tests := []struct {
		name                            string
		repeat, random, single, consume bool
		want                            string
	}{
		{"none enabled", false, false, false, false, ""},
		{"repeat only", true, false, false, false, "[r]"},
		{"all", true, true, true, true, "[r] [z] [s] [c]"},
		{"random and consume", false, true, false, true, "[z] [c]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Modes(tt.repeat, tt.random, tt.single, tt.consume)
			if got != tt.want {
				t.Errorf("Modes() = %q, want %q", got, tt.want)
			}
		})
	}

	Init("unicode")
	if got := Modes(true, false, false, false); got != "🔁" {
		t.Errorf("unicode repeat = %q", got)
	}
}

func TestFormatPlaylist(t *testing.T) {
	Init("none")
	if got := FormatPlaylist("jazz"); got != "jazz" {
		t.Errorf("FormatPlaylist = %q", got)
	}
	Init("unicode")
	defer Init("none")
	if got := FormatPlaylist("jazz"); got != "📋 jazz" {
		t.Errorf("FormatPlaylist = %q", got)
	}
}
