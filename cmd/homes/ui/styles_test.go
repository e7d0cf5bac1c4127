package ui

import "testing"

func TestDetectTheme(t *testing.T) {
	t.Setenv("COLORFGBG", "")
	t.Setenv("HOMES_DARK_MODE", "1")
	dark := DetectTheme()
	if !dark.IsDark {
		t.Fatalf("expected dark theme when HOMES_DARK_MODE=1")
	}

	t.Setenv("HOMES_DARK_MODE", "")
	light := DetectTheme()
	if light.IsDark {
		t.Fatalf("expected light theme when HOMES_DARK_MODE is unset")
	}

	t.Setenv("COLORFGBG", "15;0")
	if !DetectTheme().IsDark {
		t.Fatalf("expected dark theme for a black background in COLORFGBG")
	}
}

func TestThemeFor(t *testing.T) {
	t.Setenv("COLORFGBG", "")
	t.Setenv("HOMES_DARK_MODE", "")

	if !ThemeFor("dark").IsDark {
		t.Errorf("theme dark should be dark")
	}
	if ThemeFor("LIGHT").IsDark {
		t.Errorf("theme LIGHT should be light")
	}
	if ThemeFor("auto").IsDark {
		t.Errorf("auto with no hints should fall back to light")
	}
}
