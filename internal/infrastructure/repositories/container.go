package repositories

import (
	"go.uber.org/dig"

	fsRepo "github.com/rios0rios0/lockdiff/internal/infrastructure/repositories/filesystem"
	gitRepo "github.com/rios0rios0/lockdiff/internal/infrastructure/repositories/git"
	jsonRepo "github.com/rios0rios0/lockdiff/internal/infrastructure/repositories/jsonrenderer"
	npmRepo "github.com/rios0rios0/lockdiff/internal/infrastructure/repositories/npm"
	tableRepo "github.com/rios0rios0/lockdiff/internal/infrastructure/repositories/tablerenderer"
	yamlRepo "github.com/rios0rios0/lockdiff/internal/infrastructure/repositories/yamlrenderer"
	yarnRepo "github.com/rios0rios0/lockdiff/internal/infrastructure/repositories/yarn"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register lockfile sources (git history first, then the working tree)
	if err := container.Provide(func() *SourceRegistry {
		reg := NewSourceRegistry()
		reg.Register(gitRepo.NewSourceRepository())
		reg.Register(fsRepo.NewSourceRepository())
		return reg
	}); err != nil {
		return err
	}

	// Register parser registry with all lockfile formats
	if err := container.Provide(func() *ParserRegistry {
		reg := NewParserRegistry()
		reg.Register(npmRepo.NewParserRepository())
		reg.Register(yarnRepo.NewParserRepository())
		return reg
	}); err != nil {
		return err
	}

	// Register renderer registry with all output formats
	if err := container.Provide(func() *RendererRegistry {
		reg := NewRendererRegistry()
		reg.Register(tableRepo.NewRendererRepository())
		reg.Register(jsonRepo.NewRendererRepository())
		reg.Register(yamlRepo.NewRendererRepository())
		return reg
	}); err != nil {
		return err
	}

	return nil
}
