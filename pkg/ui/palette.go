package ui

import (
	"io"
	"strconv"

	"github.com/arthur-debert/filegroup/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// groupColors holds one adaptive color per group, indexed by group
var groupColors = [types.MaxGroups]lipgloss.AdaptiveColor{
	{Light: "#B8860B", Dark: "#FFD75F"}, // 0
	{Light: "#8B008B", Dark: "#FF87FF"}, // 1
	{Light: "#006400", Dark: "#87FF87"}, // 2
	{Light: "#00008B", Dark: "#87AFFF"}, // 3
	{Light: "#008B8B", Dark: "#5FFFFF"}, // 4
	{Light: "#B22222", Dark: "#FF5F5F"}, // 5
	{Light: "#4B0082", Dark: "#AF87FF"}, // 6
	{Light: "#696969", Dark: "#8A8A8A"}, // 7
	{Light: "#D2691E", Dark: "#FFAF5F"}, // 8
	{Light: "#2E8B57", Dark: "#5FD7AF"}, // 9
}

// Palette styles text by file group
type Palette struct {
	renderer *lipgloss.Renderer
	styles   [types.MaxGroups]lipgloss.Style
}

// NewPalette creates a palette writing to w. With color false every
// style renders plain text.
func NewPalette(w io.Writer, color bool) *Palette {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	p := &Palette{renderer: r}
	for g := range p.styles {
		p.styles[g] = r.NewStyle().Foreground(groupColors[g])
	}
	return p
}

// Style returns the style of group; unclassified entries get an empty style
func (p *Palette) Style(group int) lipgloss.Style {
	if !types.ValidGroup(group) {
		return p.renderer.NewStyle()
	}
	return p.styles[group]
}

// Render styles s with the color of group
func (p *Palette) Render(group int, s string) string {
	return p.Style(group).Render(s)
}

// GroupLabel returns the group column text: the index, or "-" when
// unclassified
func GroupLabel(group int) string {
	if !types.ValidGroup(group) {
		return "-"
	}
	return strconv.Itoa(group)
}
