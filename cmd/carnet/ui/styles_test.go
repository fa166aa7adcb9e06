package ui

import "testing"

func TestThemeByName(t *testing.T) {
	if th := ThemeByName("dark"); !th.IsDark {
		t.Error(`ThemeByName("dark") should be dark`)
	}
	if th := ThemeByName("light"); th.IsDark {
		t.Error(`ThemeByName("light") should be light`)
	}
}

func TestDetectTheme_EnvOverride(t *testing.T) {
	t.Setenv("CARNET_DARK_MODE", "1")
	if th := DetectTheme(); !th.IsDark {
		t.Error("CARNET_DARK_MODE=1 should force dark mode")
	}
}

func TestDetectTheme_ColorFgBg(t *testing.T) {
	t.Setenv("CARNET_DARK_MODE", "")

	t.Setenv("COLORFGBG", "15;0")
	if th := DetectTheme(); !th.IsDark {
		t.Error("background index 0 should detect dark")
	}

	t.Setenv("COLORFGBG", "0;15")
	if th := DetectTheme(); th.IsDark {
		t.Error("background index 15 should detect light")
	}
}

func TestNewStyles_CarriesTheme(t *testing.T) {
	th := DarkTheme()
	s := NewStyles(th)
	if s.Theme != th {
		t.Error("styles should keep the theme they were built from")
	}
}
