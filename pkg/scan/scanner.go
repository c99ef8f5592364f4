package scan

import (
	"github.com/arthur-debert/filegroup/pkg/filesystem"
	"github.com/arthur-debert/filegroup/pkg/logging"
	"github.com/arthur-debert/filegroup/pkg/types"
	"github.com/rs/zerolog"
)

// Resolver is the classification capability a Scanner needs
type Resolver interface {
	Resolve(f types.File) int
}

// Match is one classified directory entry
type Match struct {
	Name      string `json:"name" yaml:"name"`
	Path      string `json:"path" yaml:"path"`
	Group     int    `json:"group" yaml:"group"`
	IsDir     bool   `json:"is_dir,omitempty" yaml:"is_dir,omitempty"`
	IsSymlink bool   `json:"is_symlink,omitempty" yaml:"is_symlink,omitempty"`
}

// Classified reports whether the entry belongs to a group
func (m Match) Classified() bool {
	return m.Group != types.NoGroup
}

// Scanner lists directories and resolves each entry's group
type Scanner struct {
	resolver Resolver
	lister   *filesystem.Lister
	logger   zerolog.Logger
}

// NewScanner creates a scanner over lister
func NewScanner(resolver Resolver, lister *filesystem.Lister) *Scanner {
	return &Scanner{
		resolver: resolver,
		lister:   lister,
		logger:   logging.GetLogger("scan.scanner"),
	}
}

// ScanDir classifies the entries of dir (non-recursive), sorted by name
func (s *Scanner) ScanDir(dir string) ([]Match, error) {
	done := logging.LogOperationStart(s.logger, "scan "+dir)
	defer done()

	entries, err := s.lister.List(dir)
	if err != nil {
		return nil, err
	}

	matches := make([]Match, 0, len(entries))
	for _, entry := range entries {
		m := s.classify(entry)
		s.logger.Trace().
			Str("file", m.Name).
			Int("group", m.Group).
			Msg("Classified entry")
		matches = append(matches, m)
	}

	s.logger.Debug().
		Str("dir", dir).
		Int("entries", len(matches)).
		Msg("Directory scan complete")

	return matches, nil
}

// ScanPath classifies a single path
func (s *Scanner) ScanPath(path string) (Match, error) {
	entry, err := s.lister.Stat(path)
	if err != nil {
		return Match{}, err
	}
	return s.classify(entry), nil
}

func (s *Scanner) classify(entry filesystem.Entry) Match {
	return Match{
		Name:      entry.Name(),
		Path:      entry.Path,
		Group:     s.resolver.Resolve(entry),
		IsDir:     entry.IsDir(),
		IsSymlink: entry.IsSymlink(),
	}
}

// CountByGroup tallies matches per group; unclassified entries are
// counted under types.NoGroup
func CountByGroup(matches []Match) map[int]int {
	counts := make(map[int]int)
	for _, m := range matches {
		counts[m.Group]++
	}
	return counts
}
