package groups

import (
	"sort"
	"strings"
	"sync/atomic"

	"github.com/arthur-debert/filegroup/pkg/errors"
	"github.com/arthur-debert/filegroup/pkg/logging"
	"github.com/arthur-debert/filegroup/pkg/matcher"
	"github.com/arthur-debert/filegroup/pkg/types"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
)

// snapshot is never modified after it is published
type snapshot struct {
	extensions map[string]int
	patterns   []Rule

	// pattern scan results keyed by lowercased file name, nil when caching is off
	cache *lru.Cache[string, int]
}

var emptySnapshot = &snapshot{extensions: map[string]int{}}

// Resolver maps files to groups. Init and Load replace the rule tables
// atomically; Resolve is safe for concurrent use.
type Resolver struct {
	current   atomic.Pointer[snapshot]
	matcher   types.Matcher
	cacheSize int
	logger    zerolog.Logger
}

// Option configures a Resolver
type Option func(*Resolver)

// WithMatcher replaces the wildcard matcher used for pattern rules
func WithMatcher(m types.Matcher) Option {
	return func(r *Resolver) {
		if m != nil {
			r.matcher = m
		}
	}
}

// WithCache memoizes up to size pattern scan results per rule snapshot.
// Results are keyed by lowercased name, so the matcher must ignore case.
func WithCache(size int) Option {
	return func(r *Resolver) {
		r.cacheSize = size
	}
}

// New creates a resolver and loads src into it. A nil src leaves the
// resolver uninitialized, so every entry resolves to NoGroup.
func New(src MaskSource, opts ...Option) *Resolver {
	r := &Resolver{
		matcher: matcher.NewWildcard(),
		logger:  logging.GetLogger("groups.resolver"),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.current.Store(emptySnapshot)

	if src != nil {
		r.Init(src)
	}
	return r
}

// Init rebuilds the rule tables from src. Groups without masks contribute
// nothing; Init never fails.
func (r *Resolver) Init(src MaskSource) {
	rules := ParseRules(src)
	r.publish(r.build(rules))
}

// Load replaces the rule tables with rules. Rules must carry a known kind
// and a group in [0, MaxGroups); otherwise the current tables are kept and
// an error is returned.
func (r *Resolver) Load(rules []Rule) error {
	normalized := make([]Rule, 0, len(rules))
	for _, rule := range rules {
		if !types.ValidGroup(rule.Group) {
			return errors.Newf(errors.ErrInvalidGroup,
				"group %d out of range [0, %d)", rule.Group, types.MaxGroups).
				WithDetail("rule", rule.String())
		}
		if rule.Kind != ExtensionRule && rule.Kind != PatternRule {
			return errors.Newf(errors.ErrInvalidRule, "unknown rule kind %d", int(rule.Kind)).
				WithDetail("rule", rule.String())
		}
		rule.Pattern = strings.ToLower(rule.Pattern)
		normalized = append(normalized, rule)
	}

	r.publish(r.build(normalized))
	return nil
}

func (r *Resolver) build(rules []Rule) *snapshot {
	s := &snapshot{extensions: make(map[string]int)}
	for _, rule := range rules {
		switch rule.Kind {
		case ExtensionRule:
			if prev, ok := s.extensions[rule.Pattern]; ok && prev != rule.Group {
				r.logger.Debug().
					Str("extension", rule.Pattern).
					Int("previousGroup", prev).
					Int("group", rule.Group).
					Msg("Extension reassigned to later group")
			}
			s.extensions[rule.Pattern] = rule.Group
		case PatternRule:
			s.patterns = append(s.patterns, rule)
		}
	}

	if r.cacheSize > 0 {
		cache, err := lru.New[string, int](r.cacheSize)
		if err != nil {
			r.logger.Warn().Err(err).Int("size", r.cacheSize).Msg("Resolve cache disabled")
		} else {
			s.cache = cache
		}
	}
	return s
}

func (r *Resolver) publish(s *snapshot) {
	r.current.Store(s)
	r.logger.Debug().
		Int("extensionRules", len(s.extensions)).
		Int("patternRules", len(s.patterns)).
		Bool("cached", s.cache != nil).
		Msg("File group rules loaded")
}

// Resolve returns the group of f, or NoGroup when f is a directory, a
// symlink, or matches no rule.
func (r *Resolver) Resolve(f types.File) int {
	if f == nil || f.IsDir() || f.IsSymlink() {
		return types.NoGroup
	}

	s := r.current.Load()

	ext, _ := f.Extension()
	if group, ok := s.extensions[strings.ToLower(ext)]; ok {
		return group
	}

	if len(s.patterns) == 0 {
		return types.NoGroup
	}

	name := f.Name()
	key := strings.ToLower(name)
	if s.cache != nil {
		if group, ok := s.cache.Get(key); ok {
			return group
		}
	}

	group := types.NoGroup
	for _, rule := range s.patterns {
		if r.matcher.Match(rule.Pattern, name) {
			group = rule.Group
			break
		}
	}

	if s.cache != nil {
		s.cache.Add(key, group)
	}
	return group
}

// ResolveName resolves a plain file name that is neither a directory nor
// a symlink.
func (r *Resolver) ResolveName(name string) int {
	return r.Resolve(types.NewNameEntry(name))
}

// Rules returns the effective rules: extension rules ordered by group and
// extension, then pattern rules in evaluation order. Overwritten extension
// rules are not included.
func (r *Resolver) Rules() []Rule {
	s := r.current.Load()

	rules := make([]Rule, 0, len(s.extensions)+len(s.patterns))
	for ext, group := range s.extensions {
		rules = append(rules, Rule{Kind: ExtensionRule, Group: group, Pattern: ext})
	}
	sort.Slice(rules, func(i, j int) bool {
		if rules[i].Group != rules[j].Group {
			return rules[i].Group < rules[j].Group
		}
		return rules[i].Pattern < rules[j].Pattern
	})

	return append(rules, s.patterns...)
}

// Initialized reports whether any rules have been loaded
func (r *Resolver) Initialized() bool {
	return r.current.Load() != emptySnapshot
}
