// Package srcview is a zero-copy, position-aware string view for lexers and
// parsers. The view type lives in package source; scan and diag build on it.
package srcview

import (
	_ "embed"
	"strings"

	"golang.org/x/mod/semver"
)

//go:embed VERSION
var release string

// Version is the release this module was built from, e.g. "0.1.0".
func Version() string { return strings.TrimSpace(release) }

// VersionTag is Version as tagged in git, e.g. "v0.1.0".
func VersionTag() string { return "v" + Version() }

// IsSemver accepts full MAJOR.MINOR.PATCH versions with optional pre-release
// and build parts. A leading "v" is rejected: that is the tag form.
func IsSemver(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" || v[0] == 'v' {
		return false
	}
	core, _, _ := strings.Cut(v, "+")
	// semver.IsValid also admits "v1" and "v1.2"; Canonical pads those out.
	return semver.IsValid("v"+v) && semver.Canonical("v"+v) == "v"+core
}
