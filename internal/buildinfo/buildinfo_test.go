package buildinfo

import "testing"

func TestString(t *testing.T) {
	Version, Commit, Date = "v1.2.3", "abc123", "2026-10-18"
	t.Cleanup(func() { Version, Commit, Date = "dev", "none", "unknown" })

	if got, want := String(), "v1.2.3 (commit=abc123, date=2026-10-18)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
