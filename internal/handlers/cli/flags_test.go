package cli

import (
	"testing"
)

func TestEnumValue(t *testing.T) {
	v := newEnumValue("word", []string{"char", "word", "line"})

	if v.String() != "word" {
		t.Errorf("String() = %q, want default %q", v.String(), "word")
	}
	if v.Type() != "char|word|line" {
		t.Errorf("Type() = %q, want %q", v.Type(), "char|word|line")
	}
	if err := v.Set(" Line "); err != nil {
		t.Fatalf("Set(Line) unexpected error = %v", err)
	}
	if v.String() != "line" {
		t.Errorf("String() after Set = %q, want %q", v.String(), "line")
	}
	if err := v.Set("paragraph"); err == nil {
		t.Error("Set(paragraph) expected an error, got nil")
	}
	if v.String() != "line" {
		t.Errorf("failed Set changed the value to %q", v.String())
	}
}
