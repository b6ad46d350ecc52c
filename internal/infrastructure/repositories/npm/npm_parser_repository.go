package npm

import (
	"errors"

	"github.com/tidwall/gjson"

	"github.com/rios0rios0/lockdiff/internal/domain/entities"
)

const supportedLockfileVersion = 3

// ErrInvalidJSON is returned when package-lock.json content is not
// syntactically valid JSON.
var ErrInvalidJSON = errors.New("lockfile is not valid JSON")

// ParserRepository implements repositories.LockfileParserRepository for
// npm package-lock.json files (lockfile version 3 only).
type ParserRepository struct{}

// NewParserRepository creates a new npm lockfile parser.
func NewParserRepository() *ParserRepository {
	return &ParserRepository{}
}

func (it *ParserRepository) Kind() entities.LockfileKind { return entities.LockfileNpm }

// Parse validates the JSON syntax and hands the document to ParseNpmLock.
func (it *ParserRepository) Parse(content []byte) (entities.DependencyMap, error) {
	if !gjson.ValidBytes(content) {
		return nil, ErrInvalidJSON
	}
	return ParseNpmLock(gjson.ParseBytes(content)), nil
}

// ParseNpmLock extracts the dependency map from a parsed package-lock.json
// document. It returns nil when the document is not a version 3 lockfile or
// lists no named package.
//
// Only descriptors carrying both a "name" and a "version" string contribute;
// the root entry ("") and everything else in a descriptor is ignored.
func ParseNpmLock(doc gjson.Result) entities.DependencyMap {
	if !doc.IsObject() {
		return nil
	}

	lockfileVersion := doc.Get("lockfileVersion")
	if lockfileVersion.Type != gjson.Number || lockfileVersion.Num != supportedLockfileVersion {
		return nil
	}

	deps := entities.DependencyMap{}

	packages := doc.Get("packages")
	if packages.IsObject() {
		packages.ForEach(func(_, descriptor gjson.Result) bool {
			name := stringField(descriptor, "name")
			version := stringField(descriptor, "version")
			if name != "" && version != "" {
				deps.Add(name, version)
			}
			return true
		})
	}

	if len(deps) == 0 {
		return nil
	}

	deps.SortVersions()
	return deps
}

// stringField returns the field value when it is a JSON string, or "".
func stringField(descriptor gjson.Result, field string) string {
	if !descriptor.IsObject() {
		return ""
	}
	value := descriptor.Get(field)
	if value.Type != gjson.String {
		return ""
	}
	return value.Str
}
