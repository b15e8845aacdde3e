package srcview

import "testing"

func TestVersion_EmbeddedReleaseIsSemver(t *testing.T) {
	if !IsSemver(Version()) {
		t.Fatalf("VERSION: got %q, want MAJOR.MINOR.PATCH", Version())
	}
	if got, want := VersionTag(), "v"+Version(); got != want {
		t.Fatalf("tag: got %q, want %q", got, want)
	}
}

func TestIsSemver(t *testing.T) {
	cases := map[string]bool{
		"0.1.0":         true,
		"1.2.3-alpha.1": true,
		"2.0.0+build.7": true,
		" 3.4.5\n":      true,
		"v1.2.3":        false,
		"1.2":           false,
		"1":             false,
		"01.2.3":        false,
		"1.2.3-":        false,
		"":              false,
	}
	for v, want := range cases {
		if got := IsSemver(v); got != want {
			t.Fatalf("IsSemver(%q): got %v, want %v", v, got, want)
		}
	}
}
