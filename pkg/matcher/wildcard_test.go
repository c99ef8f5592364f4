package matcher_test

import (
	"testing"

	"github.com/arthur-debert/filegroup/pkg/matcher"
	"github.com/stretchr/testify/assert"
)

func TestWildcardMatch(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		file    string
		want    bool
	}{
		{"star matches everything", "*", "anything.txt", true},
		{"contains", "*backup*", "archive_backup", true},
		{"contains with extension", "*backup*", "my_backup.txt", true},
		{"contains miss", "*backup*", "image.png", false},
		{"suffix", "*.tar.*", "src.tar.gz", true},
		{"suffix miss", "*.tar.*", "src.tgz", false},
		{"question mark is one char", "file?.log", "file1.log", true},
		{"question mark needs a char", "file?.log", "file.log", false},
		{"question mark only one char", "file?.log", "file12.log", false},
		{"case insensitive name", "*.txt", "README.TXT", true},
		{"case insensitive pattern", "READ*", "readme", true},
		{"exact name", "makefile", "Makefile", true},
		{"brackets are literal", "[draft]*", "[draft] plan.md", true},
		{"brackets do not form a class", "[ab].txt", "a.txt", false},
		{"braces are literal", "{a,b}", "{a,b}", true},
		{"braces do not alternate", "{a,b}", "a", false},
		{"backslash is literal", `a\b`, `a\b`, true},
	}

	m := matcher.NewWildcard()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Match(tt.pattern, tt.file))
		})
	}
}

func TestCompile(t *testing.T) {
	assert.Equal(t, `*\[old\]*`, matcher.Compile("*[OLD]*"))
	assert.Equal(t, `\{a,b\}?`, matcher.Compile("{A,B}?"))
}
