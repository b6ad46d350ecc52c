//go:build unit

package npm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/rios0rios0/lockdiff/internal/domain/entities"
	"github.com/rios0rios0/lockdiff/internal/infrastructure/repositories/npm"
)

func TestParseNpmLock(t *testing.T) {
	t.Parallel()

	t.Run("should parse a valid lockfile v3", func(t *testing.T) {
		t.Parallel()

		// given
		doc := gjson.Parse(`{
			"lockfileVersion": 3,
			"packages": {
				"": {},
				"lodash": {"name": "lodash", "version": "4.17.20"},
				"foo": {"name": "foo", "version": "1.0.0"}
			}
		}`)

		// when
		deps := npm.ParseNpmLock(doc)

		// then
		assert.Equal(t, entities.DependencyMap{
			"lodash": {"4.17.20"},
			"foo":    {"1.0.0"},
		}, deps)
	})

	t.Run("should collect multiple versions of one package", func(t *testing.T) {
		t.Parallel()

		// given
		doc := gjson.Parse(`{
			"lockfileVersion": 3,
			"packages": {
				"": {},
				"lodash": {"name": "lodash", "version": "4.17.20"},
				"lodash/sub": {"name": "lodash", "version": "4.17.21"}
			}
		}`)

		// when
		deps := npm.ParseNpmLock(doc)

		// then
		assert.Equal(t, entities.DependencyMap{"lodash": {"4.17.20", "4.17.21"}}, deps)
	})

	t.Run("should deduplicate and sort versions lexically", func(t *testing.T) {
		t.Parallel()

		// given
		doc := gjson.Parse(`{
			"lockfileVersion": 3,
			"packages": {
				"node_modules/a/node_modules/lodash": {"name": "lodash", "version": "4.17.9"},
				"node_modules/lodash": {"name": "lodash", "version": "4.17.20"},
				"node_modules/b/node_modules/lodash": {"name": "lodash", "version": "4.17.9"}
			}
		}`)

		// when
		deps := npm.ParseNpmLock(doc)

		// then
		assert.Equal(t, []string{"4.17.20", "4.17.9"}, deps["lodash"])
	})

	t.Run("should skip descriptors without a name or version string", func(t *testing.T) {
		t.Parallel()

		// given
		doc := gjson.Parse(`{
			"lockfileVersion": 3,
			"packages": {
				"": {"name": "my-app", "version": ""},
				"node_modules/nameless": {"version": "1.0.0"},
				"node_modules/versionless": {"name": "versionless"},
				"node_modules/numeric": {"name": "numeric", "version": 1},
				"node_modules/ok": {"name": "ok", "version": "2.0.0", "resolved": "https://x", "dev": true}
			}
		}`)

		// when
		deps := npm.ParseNpmLock(doc)

		// then
		assert.Equal(t, entities.DependencyMap{"ok": {"2.0.0"}}, deps)
	})

	t.Run("should reject unsupported or unrecognizable documents", func(t *testing.T) {
		t.Parallel()

		// given
		inputs := []string{
			`{"lockfileVersion": 2}`,
			`{"lockfileVersion": 2, "packages": {"a": {"name": "a", "version": "1.0.0"}}}`,
			`{"lockfileVersion": "3", "packages": {"a": {"name": "a", "version": "1.0.0"}}}`,
			`{}`,
			`null`,
			`[]`,
			`{"lockfileVersion": 3}`,
			`{"lockfileVersion": 3, "packages": {"": {}}}`,
		}

		for _, input := range inputs {
			// when
			deps := npm.ParseNpmLock(gjson.Parse(input))

			// then
			assert.Nil(t, deps, "input %s", input)
		}
	})
}

func TestParserRepository(t *testing.T) {
	t.Parallel()

	t.Run("should report the npm kind", func(t *testing.T) {
		t.Parallel()

		// given
		parser := npm.NewParserRepository()

		// when
		kind := parser.Kind()

		// then
		assert.Equal(t, entities.LockfileNpm, kind)
	})

	t.Run("should parse raw bytes", func(t *testing.T) {
		t.Parallel()

		// given
		parser := npm.NewParserRepository()
		content := []byte(`{"lockfileVersion": 3, "packages": {"foo": {"name": "foo", "version": "1.0.0"}}}`)

		// when
		deps, err := parser.Parse(content)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.DependencyMap{"foo": {"1.0.0"}}, deps)
	})

	t.Run("should return an error for invalid JSON", func(t *testing.T) {
		t.Parallel()

		// given
		parser := npm.NewParserRepository()

		// when
		deps, err := parser.Parse([]byte(`{"lockfileVersion": 3,`))

		// then
		require.ErrorIs(t, err, npm.ErrInvalidJSON)
		assert.Nil(t, deps)
	})

	t.Run("should return a nil map for an unsupported version", func(t *testing.T) {
		t.Parallel()

		// given
		parser := npm.NewParserRepository()

		// when
		deps, err := parser.Parse([]byte(`{"lockfileVersion": 1, "dependencies": {}}`))

		// then
		require.NoError(t, err)
		assert.Nil(t, deps)
	})
}
