package common

import (
	"path"
	"regexp"
	"strings"
)

// UnknownStr is the String form of out-of-range enum values.
const UnknownStr = "unknown"

var (
	majorVersion = regexp.MustCompile(`^v[0-9]+$`)
	dotVersion   = regexp.MustCompile(`\.v[0-9]+$`)
)

// PkgAlias returns the package alias (last element of path) for a given package path.
// Major version suffixes are skipped, so "github.com/x/y/v2" and
// "gopkg.in/yaml.v3" give "y" and "yaml"; a "go-" prefix or "-go" suffix is
// dropped as well.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	base := path.Base(pkgPath)
	if majorVersion.MatchString(base) {
		base = path.Base(path.Dir(pkgPath))
	}

	base = dotVersion.ReplaceAllString(base, "")
	base = strings.TrimSuffix(strings.TrimPrefix(base, "go-"), "-go")

	return strings.ReplaceAll(base, "-", "_")
}
