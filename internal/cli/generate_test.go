package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{"text"}},
		{"json", []string{"json"}},
		{"json, svg", []string{"json", "svg"}},
		{"text,,dot", []string{"text", "dot"}},
	}
	for _, tt := range tests {
		got := parseFormats(tt.in)
		if strings.Join(got, "|") != strings.Join(tt.want, "|") {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	c := New(&bytes.Buffer{}, log.InfoLevel)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	return root.Execute()
}

func TestGenerateWritesFiles(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "maps", "level1")

	if err := runCLI(t, "generate", "--seed", "42", "-f", "json,text,dot", "-o", base, "--check"); err != nil {
		t.Fatalf("generate: %v", err)
	}

	data, err := os.ReadFile(base + ".json")
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("json output: %v", err)
	}
	if doc["seed"] != float64(42) {
		t.Errorf("seed = %v, want 42", doc["seed"])
	}

	for _, ext := range []string{".txt", ".dot"} {
		if _, err := os.Stat(base + ext); err != nil {
			t.Errorf("missing %s output: %v", ext, err)
		}
	}
}

func TestGenerateSingleOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.txt")
	if err := runCLI(t, "generate", "-s", "7", "--style", "compact", "-o", path); err != nil {
		t.Fatalf("generate: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if lines := strings.Count(string(data), "\n"); lines != 30 {
		t.Errorf("compact map has %d lines, want 30", lines)
	}
}

func TestGenerateRejectsBadInput(t *testing.T) {
	tests := [][]string{
		{"generate", "--seed", "abc"},
		{"generate", "-f", "gif"},
		{"generate", "--corridors", "lava"},
		{"generate", "--rooms", "9-3"},
		{"generate", "--style", "fancy"},
	}
	for _, args := range tests {
		t.Run(strings.Join(args[1:], " "), func(t *testing.T) {
			if err := runCLI(t, args...); err == nil {
				t.Errorf("%v should fail", args)
			}
		})
	}
}
