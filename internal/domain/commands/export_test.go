package commands

// ResolveRefs exports resolveRefs for testing.
var ResolveRefs = resolveRefs //nolint:gochecknoglobals // test export

// DetectLockfile exports detectLockfile for testing.
var DetectLockfile = detectLockfile //nolint:gochecknoglobals // test export
