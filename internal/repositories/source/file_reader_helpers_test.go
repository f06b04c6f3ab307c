package source

import (
	"os/user"
	"path/filepath"
	"testing"
)

func TestToUserFriendlyPath(t *testing.T) {
	currentUser, err := user.Current()
	if err != nil || currentUser.HomeDir == "" || currentUser.HomeDir == "/" {
		t.Skip("home directory not available")
	}
	homeDir := currentUser.HomeDir

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "relative path is untouched", input: "notes.txt", want: "notes.txt"},
		{name: "home directory itself", input: homeDir, want: "~"},
		{name: "file under home", input: filepath.Join(homeDir, "docs", "a.txt"), want: filepath.Join("~", "docs", "a.txt")},
		{name: "sibling with home as string prefix", input: homeDir + "-other" + string(filepath.Separator) + "a.txt", want: homeDir + "-other" + string(filepath.Separator) + "a.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toUserFriendlyPath(tt.input); got != tt.want {
				t.Errorf("toUserFriendlyPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
