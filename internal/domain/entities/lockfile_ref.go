package entities

import (
	"path/filepath"
	"strings"
)

// LockfileKind identifies a supported lockfile format.
type LockfileKind string

const (
	LockfileUnknown LockfileKind = ""
	LockfileNpm     LockfileKind = "npm"
	LockfileYarn    LockfileKind = "yarn"

	NpmLockfileName  = "package-lock.json"
	YarnLockfileName = "yarn.lock"

	refSeparator = ":"
)

// LockfileRef points at a lockfile either in the working tree (Revision is
// empty) or inside a git revision ("HEAD~1:package-lock.json").
type LockfileRef struct {
	Revision string
	Path     string
}

// ParseLockfileRef splits a "revision:path" reference. Anything without a
// separator is a plain working tree path.
func ParseLockfileRef(raw string) LockfileRef {
	revision, path, found := strings.Cut(raw, refSeparator)
	if !found {
		return LockfileRef{Path: raw}
	}
	return LockfileRef{Revision: revision, Path: path}
}

// IsRevision reports whether the lockfile must be read from git history.
func (r LockfileRef) IsRevision() bool {
	return r.Revision != ""
}

// WithRevision returns the same path pinned to another revision.
func (r LockfileRef) WithRevision(revision string) LockfileRef {
	return LockfileRef{Revision: revision, Path: r.Path}
}

// FileName returns the base name of the referenced file.
func (r LockfileRef) FileName() string {
	return filepath.Base(filepath.FromSlash(r.Path))
}

// Kind infers the lockfile format from the file name.
func (r LockfileRef) Kind() LockfileKind {
	name := r.FileName()
	switch {
	case strings.HasSuffix(name, NpmLockfileName):
		return LockfileNpm
	case strings.HasSuffix(name, YarnLockfileName):
		return LockfileYarn
	default:
		return LockfileUnknown
	}
}

func (r LockfileRef) String() string {
	if !r.IsRevision() {
		return r.Path
	}
	return r.Revision + refSeparator + r.Path
}
