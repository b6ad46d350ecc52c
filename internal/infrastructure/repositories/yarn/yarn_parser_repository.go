package yarn

import (
	"regexp"
	"strings"

	"github.com/rios0rios0/lockdiff/internal/domain/entities"
)

var (
	// headerPattern matches block headers such as `lodash@^4.17.20:` or
	// `"@babel/core@^7.0.0", "@babel/core@^7.1.0":`. The name is captured
	// from the first entry only.
	headerPattern = regexp.MustCompile(`^"?(@?[\w./-]+)@([^:]+):$`)

	// versionPattern matches the resolved version line, e.g. `version "4.17.20"`.
	versionPattern = regexp.MustCompile(`^version\s+"([^"]*)"$`)
)

// scanState is the position of the scanner relative to a block.
type scanState int

const (
	seekingHeader scanState = iota
	seekingVersion
)

// ParserRepository implements repositories.LockfileParserRepository for
// yarn v1 yarn.lock files.
type ParserRepository struct{}

// NewParserRepository creates a new yarn lockfile parser.
func NewParserRepository() *ParserRepository {
	return &ParserRepository{}
}

func (it *ParserRepository) Kind() entities.LockfileKind { return entities.LockfileYarn }

// Parse never fails: text that holds no block yields a nil map.
func (it *ParserRepository) Parse(content []byte) (entities.DependencyMap, error) {
	return ParseYarnLock(string(content)), nil
}

// ParseYarnLock extracts the dependency map from yarn.lock text. It returns
// nil for blank content or when no block resolves to a version.
//
// The scan alternates between two states. While seeking a header, every
// line that is not a header is skipped. While seeking a version, a
// `version "x"` line records x for the current package; a blank line or a
// new header ends the block without a version, and that same line is
// examined again as a possible header.
func ParseYarnLock(content string) entities.DependencyMap {
	if strings.TrimSpace(content) == "" {
		return nil
	}

	deps := entities.DependencyMap{}
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")

	state := seekingHeader
	current := ""
	for i := 0; i < len(lines); {
		line := strings.TrimSpace(lines[i])

		switch state {
		case seekingHeader:
			if name, ok := matchHeader(line); ok {
				current = name
				state = seekingVersion
			}
			i++

		case seekingVersion:
			if line == "" || isHeader(line) {
				// abort the block and re-examine this line
				state = seekingHeader
				current = ""
				continue
			}
			if matches := versionPattern.FindStringSubmatch(line); matches != nil {
				deps.Add(current, matches[1])
				state = seekingHeader
				current = ""
			}
			i++
		}
	}

	if len(deps) == 0 {
		return nil
	}

	deps.SortVersions()
	return deps
}

func matchHeader(line string) (string, bool) {
	matches := headerPattern.FindStringSubmatch(line)
	if matches == nil {
		return "", false
	}
	return matches[1], true
}

func isHeader(line string) bool {
	return headerPattern.MatchString(line)
}
