package unit

import (
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Kind
		wantErr bool
	}{
		{name: "char", input: "char", want: Char},
		{name: "word", input: "word", want: Word},
		{name: "line", input: "line", want: Line},
		{name: "mixed case and spaces", input: "  LiNe ", want: Line},
		{name: "empty", input: "", wantErr: true},
		{name: "plural is rejected", input: "words", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !strings.Contains(err.Error(), "char, word, line") {
					t.Errorf("Parse(%q) error = %q, want it to list the accepted units", tt.input, err.Error())
				}
				return
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	for _, name := range Names {
		k, err := Parse(name)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", name, err)
		}
		if k.String() != name {
			t.Errorf("Kind(%d).String() = %q, want %q", k, k.String(), name)
		}
	}
	if got := Kind(42).String(); got != "unknown" {
		t.Errorf("Kind(42).String() = %q, want %q", got, "unknown")
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		text string
		kind Kind
		want []string
	}{
		{name: "empty text by char", text: "", kind: Char, want: nil},
		{name: "empty text by word", text: "", kind: Word, want: nil},
		{name: "empty text by line", text: "", kind: Line, want: nil},
		{name: "chars", text: "aabcb", kind: Char, want: []string{"a", "a", "b", "c", "b"}},
		{name: "multi-byte chars are scalar values", text: "héé日", kind: Char, want: []string{"h", "é", "é", "日"}},
		{name: "chars keep whitespace", text: "a b", kind: Char, want: []string{"a", " ", "b"}},
		{name: "words", text: "ab xy ab cd", kind: Word, want: []string{"ab", "xy", "ab", "cd"}},
		{name: "words with whitespace runs", text: "  ab\t\txy 　cd\n", kind: Word, want: []string{"ab", "xy", "cd"}},
		{name: "only whitespace", text: " \t ", kind: Word, want: []string{}},
		{name: "lines", text: "ab\ncd\nab\nxy", kind: Line, want: []string{"ab", "cd", "ab", "xy"}},
		{name: "lines with final terminator", text: "ab\ncd\n", kind: Line, want: []string{"ab", "cd"}},
		{name: "crlf lines", text: "a\r\nb\r\n", kind: Line, want: []string{"a", "b"}},
		{name: "interior empty line is kept", text: "a\n\nb", kind: Line, want: []string{"a", "", "b"}},
		{name: "unknown kind", text: "abc", kind: Kind(9), want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.text, tt.kind)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q, %v) = %q, want %q", tt.text, tt.kind, got, tt.want)
			}
		})
	}
}
