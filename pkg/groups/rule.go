package groups

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/filegroup/pkg/types"
)

// RuleKind tells how a rule is evaluated
type RuleKind int

const (
	// ExtensionRule is a bare `*.ext` mask resolved by map lookup
	ExtensionRule RuleKind = iota
	// PatternRule is any other mask resolved by wildcard matching
	PatternRule
)

func (k RuleKind) String() string {
	switch k {
	case ExtensionRule:
		return "extension"
	case PatternRule:
		return "pattern"
	default:
		return fmt.Sprintf("RuleKind(%d)", int(k))
	}
}

const extensionPrefix = "*."

// Rule associates a group with a mask.
// For extension rules Pattern holds the extension key (the mask without
// its `*.` prefix); for pattern rules it holds the whole mask.
type Rule struct {
	Kind    RuleKind `json:"kind" yaml:"kind"`
	Group   int      `json:"group" yaml:"group"`
	Pattern string   `json:"pattern" yaml:"pattern"`
}

// Mask returns the rule as it would be written in configuration
func (r Rule) Mask() string {
	if r.Kind == ExtensionRule {
		return extensionPrefix + r.Pattern
	}
	return r.Pattern
}

func (r Rule) String() string {
	return fmt.Sprintf("%d:%s(%s)", r.Group, r.Kind, r.Mask())
}

// MaskSource provides the raw mask list of each group.
// ok is false when the group is not configured.
type MaskSource interface {
	GroupMasks(group int) (masks string, ok bool)
}

// MapSource is a MaskSource backed by a map of group index to masks
type MapSource map[int]string

// GroupMasks implements MaskSource
func (m MapSource) GroupMasks(group int) (string, bool) {
	masks, ok := m[group]
	return masks, ok
}

// ParseMask classifies a single mask token. Empty tokens yield no rule.
func ParseMask(mask string, group int) (Rule, bool) {
	mask = strings.ToLower(strings.TrimSpace(mask))
	if mask == "" {
		return Rule{}, false
	}

	if strings.HasPrefix(mask, extensionPrefix) {
		ext := mask[len(extensionPrefix):]
		if !strings.ContainsAny(ext, "*?") {
			return Rule{Kind: ExtensionRule, Group: group, Pattern: ext}, true
		}
	}
	return Rule{Kind: PatternRule, Group: group, Pattern: mask}, true
}

// SplitMasks splits a comma separated mask list into rules for group
func SplitMasks(masks string, group int) []Rule {
	var rules []Rule
	for _, token := range strings.Split(masks, ",") {
		if rule, ok := ParseMask(token, group); ok {
			rules = append(rules, rule)
		}
	}
	return rules
}

// ParseRules reads every group of src in ascending order and returns its
// rules in configuration order. A nil src has no rules.
func ParseRules(src MaskSource) []Rule {
	if src == nil {
		return nil
	}

	var rules []Rule
	for group := 0; group < types.MaxGroups; group++ {
		masks, ok := src.GroupMasks(group)
		if !ok {
			continue
		}
		rules = append(rules, SplitMasks(masks, group)...)
	}
	return rules
}
