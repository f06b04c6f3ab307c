package cli

import (
	"fmt"
	"slices"
	"strings"
)

// enumValue is a pflag.Value that only accepts one of a fixed set of names.
type enumValue struct {
	allowed []string
	value   string
}

func newEnumValue(def string, allowed []string) *enumValue {
	return &enumValue{allowed: allowed, value: def}
}

func (e *enumValue) String() string { return e.value }

func (e *enumValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if !slices.Contains(e.allowed, s) {
		return fmt.Errorf("must be one of %s", strings.Join(e.allowed, ", "))
	}
	e.value = s
	return nil
}

func (e *enumValue) Type() string { return strings.Join(e.allowed, "|") }
