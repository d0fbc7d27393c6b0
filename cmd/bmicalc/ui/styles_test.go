package ui

import (
	"strings"
	"testing"

	"bmicalc/internal/bmi"
)

func TestDetectTheme(t *testing.T) {
	t.Setenv("COLORFGBG", "")
	t.Setenv("BMICALC_DARK_MODE", "1")
	dark := DetectTheme()
	if !dark.IsDark {
		t.Fatalf("expected dark theme when BMICALC_DARK_MODE=1")
	}

	t.Setenv("BMICALC_DARK_MODE", "")
	light := DetectTheme()
	if light.IsDark {
		t.Fatalf("expected light theme when BMICALC_DARK_MODE is unset")
	}
}

func TestDetectTheme_COLORFGBG(t *testing.T) {
	t.Setenv("BMICALC_DARK_MODE", "")

	t.Setenv("COLORFGBG", "15;0")
	if !DetectTheme().IsDark {
		t.Errorf("expected dark theme for background 0")
	}

	t.Setenv("COLORFGBG", "0;15")
	if DetectTheme().IsDark {
		t.Errorf("expected light theme for background 15")
	}

	t.Setenv("COLORFGBG", "garbage")
	if DetectTheme().IsDark {
		t.Errorf("expected light theme for malformed COLORFGBG")
	}
}

func TestThemeByName(t *testing.T) {
	t.Setenv("COLORFGBG", "")
	t.Setenv("BMICALC_DARK_MODE", "")

	if got := ThemeByName("dark"); !got.IsDark || got.Name != "dark" {
		t.Errorf("ThemeByName(dark) = %+v", got)
	}
	if got := ThemeByName("light"); got.IsDark || got.Name != "light" {
		t.Errorf("ThemeByName(light) = %+v", got)
	}
	if got := ThemeByName("auto"); got.IsDark {
		t.Errorf("ThemeByName(auto) should detect light here")
	}
}

func TestCategoryColor(t *testing.T) {
	want := map[bmi.Category]string{
		bmi.Underweight: string(Info),
		bmi.Normal:      string(Success),
		bmi.Overweight:  string(Warning),
		bmi.Obese:       string(Destructive),
	}
	for c, color := range want {
		if got := string(CategoryColor(c)); got != color {
			t.Errorf("CategoryColor(%s) = %s, want %s", c, got, color)
		}
	}
}

func TestRenderCategory(t *testing.T) {
	s := NewStyles(LightTheme())
	for _, c := range bmi.Categories() {
		if out := s.RenderCategory(c); !strings.Contains(out, string(c)) {
			t.Errorf("RenderCategory(%s) = %q", c, out)
		}
	}
}
