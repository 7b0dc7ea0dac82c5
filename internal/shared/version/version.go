// Package version holds the build version and semver comparison helpers.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Version is set at build time with
// -ldflags "-X github.com/onlyfix/admin/internal/shared/version.Version=1.2.3".
var Version = "dev"

// IsRelease reports whether the binary was built with a semver version.
func IsRelease() bool {
	return semver.IsValid(Normalize(Version))
}

// Normalize adds the "v" prefix semver expects: "1.2.3" -> "v1.2.3".
func Normalize(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || strings.HasPrefix(v, "v") {
		return v
	}
	return "v" + v
}

// HasNewerVersion reports whether latest is newer than current. An unknown
// latest never is; a dev or non-semver current always is behind.
func HasNewerVersion(current, latest string) bool {
	if latest == "" {
		return false
	}
	if current == "" || current == "dev" {
		return true
	}

	cur, lat := Normalize(current), Normalize(latest)
	if !semver.IsValid(cur) {
		return true
	}
	if !semver.IsValid(lat) {
		return false
	}
	return semver.Compare(cur, lat) < 0
}
