package tablerenderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rios0rios0/lockdiff/internal/domain/entities"
)

const versionSeparator = ", "

// RendererRepository writes human readable tables, one per kind of change.
type RendererRepository struct{}

// NewRendererRepository creates a new table renderer.
func NewRendererRepository() *RendererRepository {
	return &RendererRepository{}
}

func (it *RendererRepository) Format() string { return entities.FormatTable }

func (it *RendererRepository) RenderDiff(w io.Writer, diff entities.LockDiff) error {
	s := newStyles(lipgloss.NewRenderer(w))

	if diff.IsEmpty() {
		_, err := fmt.Fprintln(w, s.success.Render("✅ No lockfile changes detected"))
		return err
	}

	var sb strings.Builder

	if len(diff.Added) > 0 {
		rows := make([][]string, 0, len(diff.Added))
		for _, entry := range diff.Added {
			rows = append(rows, []string{
				s.addedName.Render(entry.Name),
				s.added.Render(strings.Join(entry.Versions, versionSeparator)),
			})
		}
		writeSection(&sb, s, s.added.Bold(true).Render("📦 Added packages:"),
			[]string{"Package", "Versions"}, rows)
	}

	if len(diff.Removed) > 0 {
		rows := make([][]string, 0, len(diff.Removed))
		for _, entry := range diff.Removed {
			rows = append(rows, []string{
				s.removedName.Render(entry.Name),
				s.removed.Render(strings.Join(entry.Versions, versionSeparator)),
			})
		}
		writeSection(&sb, s, s.removed.Bold(true).Render("🗑️  Removed packages:"),
			[]string{"Package", "Versions"}, rows)
	}

	if len(diff.Updated) > 0 {
		rows := make([][]string, 0, len(diff.Updated))
		for _, entry := range diff.Updated {
			rows = append(rows, []string{
				s.updated.Render(entry.Name),
				strings.Join(entry.OldVersions, versionSeparator),
				strings.Join(entry.NewVersions, versionSeparator),
				s.bump(entry.Bump),
			})
		}
		writeSection(&sb, s, s.updatedTitle.Render("🔄 Updated packages:"),
			[]string{"Package", "Old", "New", "Bump"}, rows)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func (it *RendererRepository) RenderDependencies(w io.Writer, deps entities.DependencyMap) error {
	s := newStyles(lipgloss.NewRenderer(w))

	if len(deps) == 0 {
		_, err := fmt.Fprintln(w, "No dependencies found")
		return err
	}

	rows := make([][]string, 0, len(deps))
	for _, name := range deps.Names() {
		rows = append(rows, []string{name, strings.Join(deps[name], versionSeparator)})
	}

	var sb strings.Builder
	writeSection(&sb, s, s.title.Render(fmt.Sprintf("📦 %d packages:", len(deps))),
		[]string{"Package", "Versions"}, rows)

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeSection(sb *strings.Builder, s styles, title string, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.header
			}
			return s.cell
		})

	sb.WriteString("\n")
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(t.String())
	sb.WriteString("\n")
}
