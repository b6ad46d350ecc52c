package tablerenderer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rios0rios0/lockdiff/internal/domain/entities"
)

// Theme colors
var (
	addedColor      = lipgloss.Color("#9ece6a") // green
	removedColor    = lipgloss.Color("#f7768e") // red
	updatedColor    = lipgloss.Color("#e0af68") // amber
	headerColor     = lipgloss.Color("#7dcfff") // cyan
	minorColor      = lipgloss.Color("#7aa2f7") // blue
	prereleaseColor = lipgloss.Color("#bb9af7") // magenta
	mutedColor      = lipgloss.Color("#565f89") // gray
)

// styles are bound to the renderer of the output writer so that colors are
// only emitted for terminals.
type styles struct {
	title        lipgloss.Style
	header       lipgloss.Style
	added        lipgloss.Style
	addedName    lipgloss.Style
	removed      lipgloss.Style
	removedName  lipgloss.Style
	updated      lipgloss.Style
	updatedTitle lipgloss.Style
	success      lipgloss.Style
	cell         lipgloss.Style
	bumps        map[entities.Bump]lipgloss.Style
}

func newStyles(renderer *lipgloss.Renderer) styles {
	return styles{
		title:        renderer.NewStyle().Bold(true),
		header:       renderer.NewStyle().Foreground(headerColor).Bold(true).Padding(0, 1),
		added:        renderer.NewStyle().Foreground(addedColor),
		addedName:    renderer.NewStyle().Foreground(addedColor).Bold(true),
		removed:      renderer.NewStyle().Foreground(removedColor),
		removedName:  renderer.NewStyle().Foreground(removedColor).Bold(true),
		updated:      renderer.NewStyle().Foreground(updatedColor),
		updatedTitle: renderer.NewStyle().Foreground(updatedColor).Bold(true),
		success:      renderer.NewStyle().Foreground(addedColor),
		cell:         renderer.NewStyle().Padding(0, 1),
		bumps: map[entities.Bump]lipgloss.Style{
			entities.BumpMajor:           renderer.NewStyle().Foreground(removedColor).Bold(true),
			entities.BumpMinor:           renderer.NewStyle().Foreground(minorColor).Bold(true),
			entities.BumpPatch:           renderer.NewStyle().Foreground(addedColor).Bold(true),
			entities.BumpPrerelease:      renderer.NewStyle().Foreground(prereleaseColor),
			entities.BumpVersionsChanged: renderer.NewStyle().Foreground(mutedColor),
			entities.BumpUnchanged:       renderer.NewStyle().Foreground(mutedColor),
		},
	}
}

// bumpLabels are the table captions of each bump kind.
var bumpLabels = map[entities.Bump]string{
	entities.BumpMajor:           "🔴 major",
	entities.BumpMinor:           "🔵 minor",
	entities.BumpPatch:           "🟢 patch",
	entities.BumpPrerelease:      "🟣 prerelease",
	entities.BumpVersionsChanged: "⚡ changed",
	entities.BumpUnchanged:       "unchanged",
}

func (s styles) bump(bump entities.Bump) string {
	label, ok := bumpLabels[bump]
	if !ok {
		label = string(bump)
	}
	style, ok := s.bumps[bump]
	if !ok {
		style = s.bumps[entities.BumpUnchanged]
	}
	return style.Render(label)
}
