package entities

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Bump labels the kind of change between the old and new versions of an
// updated package.
type Bump string

const (
	BumpMajor           Bump = "major"
	BumpMinor           Bump = "minor"
	BumpPatch           Bump = "patch"
	BumpPrerelease      Bump = "prerelease"
	BumpVersionsChanged Bump = "versions changed"
	BumpUnchanged       Bump = "unchanged"
)

// ClassifyBump labels a change between two version lists. A precise
// classification is only attempted when both sides hold exactly one version;
// any set-valued change is reported as BumpVersionsChanged.
func ClassifyBump(oldVersions, newVersions []string) Bump {
	if len(oldVersions) != 1 || len(newVersions) != 1 {
		return BumpVersionsChanged
	}
	return classifyVersionChange(oldVersions[0], newVersions[0])
}

// classifyVersionChange finds the most significant semver component that
// differs between current and next. Versions that are not valid semver
// cannot be ordered and are reported as BumpVersionsChanged.
func classifyVersionChange(current, next string) Bump {
	currentNorm := normalizeVersion(current)
	nextNorm := normalizeVersion(next)

	if !semver.IsValid(currentNorm) || !semver.IsValid(nextNorm) {
		return BumpVersionsChanged
	}

	// Compare ignores build metadata, like semver precedence does
	if semver.Compare(currentNorm, nextNorm) == 0 {
		return BumpUnchanged
	}
	if semver.Major(currentNorm) != semver.Major(nextNorm) {
		return BumpMajor
	}
	if semver.MajorMinor(currentNorm) != semver.MajorMinor(nextNorm) {
		return BumpMinor
	}
	if releaseCore(currentNorm) != releaseCore(nextNorm) {
		return BumpPatch
	}
	return BumpPrerelease
}

// releaseCore returns the "vMAJOR.MINOR.PATCH" part of a valid version.
func releaseCore(version string) string {
	canonical := semver.Canonical(version)
	return strings.TrimSuffix(canonical, semver.Prerelease(canonical))
}

// normalizeVersion ensures version has 'v' prefix for semver compatibility
func normalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
