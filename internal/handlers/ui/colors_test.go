package ui

import (
	"testing"

	"github.com/fatih/color"
)

func TestDisableColor(t *testing.T) {
	original := color.NoColor
	t.Cleanup(func() { color.NoColor = original })

	color.NoColor = false
	if !ColorEnabled() {
		t.Fatal("ColorEnabled() = false with color.NoColor unset")
	}

	DisableColor()
	if ColorEnabled() {
		t.Error("ColorEnabled() = true after DisableColor()")
	}
	if got := BarColor("***"); got != "***" {
		t.Errorf("BarColor() with colour disabled = %q, want plain %q", got, "***")
	}
}
