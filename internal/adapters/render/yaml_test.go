package render

import (
	"reflect"
	"testing"

	"github.com/AntonioJCosta/wordfreq/internal/core/domain/frequency"
	"github.com/AntonioJCosta/wordfreq/internal/core/domain/unit"
	"gopkg.in/yaml.v3"
)

func TestRawDump_Render(t *testing.T) {
	tests := []struct {
		name  string
		table *frequency.Table
		want  string
	}{
		{name: "empty table", table: frequency.New(), want: "{}"},
		{name: "keys are sorted", table: frequency.Count("xy ab xy", unit.Word), want: "ab: 1\nxy: 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewRawDump().Render(tt.table)
			if err != nil {
				t.Fatalf("Render() unexpected error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRawDump_RenderKeepsTable(t *testing.T) {
	table := frequency.Count("yes no yes : -", unit.Word)

	out, err := NewRawDump().Render(table)
	if err != nil {
		t.Fatalf("Render() unexpected error = %v", err)
	}
	if table.Len() != 4 {
		t.Errorf("Render() consumed the table: Len() = %d, want 4", table.Len())
	}

	// keys that look like YAML booleans or syntax must survive a decode
	var decoded map[string]uint32
	if err := yaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v\n%s", err, out)
	}
	want := map[string]uint32{"yes": 2, "no": 1, ":": 1, "-": 1}
	if !reflect.DeepEqual(decoded, want) {
		t.Errorf("decoded dump = %v, want %v", decoded, want)
	}
}
