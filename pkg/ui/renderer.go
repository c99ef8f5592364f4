package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/filegroup/pkg/groups"
	"github.com/arthur-debert/filegroup/pkg/scan"
	"gopkg.in/yaml.v3"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderMatches renders classified entries
	RenderMatches(matches []scan.Match) error

	// RenderRules renders the active rule table
	RenderRules(rules []groups.Rule) error
}

// NewRenderer creates a new renderer based on the specified format.
// It automatically detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return &textRenderer{out: output, palette: NewPalette(output, true)}, nil
	case FormatText:
		return &textRenderer{out: output, palette: NewPalette(output, false)}, nil
	case FormatJSON:
		enc := json.NewEncoder(output)
		enc.SetIndent("", "  ")
		return &encodingRenderer{encode: enc.Encode}, nil
	case FormatYAML:
		return &encodingRenderer{encode: func(v interface{}) error {
			enc := yaml.NewEncoder(output)
			enc.SetIndent(2)
			if err := enc.Encode(v); err != nil {
				return err
			}
			return enc.Close()
		}}, nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}

type textRenderer struct {
	out     io.Writer
	palette *Palette
}

func (r *textRenderer) RenderMatches(matches []scan.Match) error {
	for _, m := range matches {
		name := m.Name
		switch {
		case m.IsDir:
			name += "/"
		case m.IsSymlink:
			name += "@"
		}
		if _, err := fmt.Fprintf(r.out, "%-2s %s\n", GroupLabel(m.Group), r.palette.Render(m.Group, name)); err != nil {
			return err
		}
	}
	return nil
}

func (r *textRenderer) RenderRules(rules []groups.Rule) error {
	for _, rule := range rules {
		if _, err := fmt.Fprintf(r.out, "%-2d %-9s %s\n",
			rule.Group, rule.Kind, r.palette.Render(rule.Group, rule.Mask())); err != nil {
			return err
		}
	}
	return nil
}

// ruleView is the serialized form of a rule
type ruleView struct {
	Group int    `json:"group" yaml:"group"`
	Kind  string `json:"kind" yaml:"kind"`
	Mask  string `json:"mask" yaml:"mask"`
}

type encodingRenderer struct {
	encode func(v interface{}) error
}

func (r *encodingRenderer) RenderMatches(matches []scan.Match) error {
	if matches == nil {
		matches = []scan.Match{}
	}
	return r.encode(matches)
}

func (r *encodingRenderer) RenderRules(rules []groups.Rule) error {
	views := make([]ruleView, 0, len(rules))
	for _, rule := range rules {
		views = append(views, ruleView{Group: rule.Group, Kind: rule.Kind.String(), Mask: rule.Mask()})
	}
	return r.encode(views)
}
