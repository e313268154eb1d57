package buildinfo

import "testing"

func TestTemplate(t *testing.T) {
	Version, Commit = "v0.3.0", "abc123"
	t.Cleanup(func() { Version, Commit = "dev", "none" })

	if got := Template(); got != "{{.Name}} v0.3.0 (abc123)\n" {
		t.Errorf("Template() = %q", got)
	}
	f := Fields()
	if f["version"] != "v0.3.0" || f["commit"] != "abc123" {
		t.Errorf("Fields() = %v", f)
	}
}
