package matcher

import (
	"strings"

	"github.com/bmatcuk/doublestar"
)

// glob metacharacters that must stay literal in file group masks
var escaper = strings.NewReplacer(
	`\`, `\\`,
	`[`, `\[`,
	`]`, `\]`,
	`{`, `\{`,
	`}`, `\}`,
)

// Wildcard is a case-insensitive `*`/`?` matcher
type Wildcard struct{}

// NewWildcard returns the default wildcard matcher
func NewWildcard() Wildcard {
	return Wildcard{}
}

// Match reports whether name matches pattern. Malformed patterns never match.
func (Wildcard) Match(pattern, name string) bool {
	matched, err := doublestar.Match(Compile(pattern), strings.ToLower(name))
	if err != nil {
		return false
	}
	return matched
}

// Compile lowercases pattern and escapes everything except `*` and `?`
func Compile(pattern string) string {
	return escaper.Replace(strings.ToLower(pattern))
}
