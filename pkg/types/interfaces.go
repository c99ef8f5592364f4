package types

// File is the filesystem entry the group resolver classifies
type File interface {
	// Name returns the base name used for pattern matching
	Name() string

	// IsDir reports whether the entry is a directory
	IsDir() bool

	// IsSymlink reports whether the entry is a symbolic link
	IsSymlink() bool

	// Extension returns the text after the last dot of the name.
	// ok is false when the name has no extension.
	Extension() (ext string, ok bool)
}

// Matcher matches a wildcard pattern against a file name
type Matcher interface {
	Match(pattern, name string) bool
}

// MatcherFunc adapts a plain function to the Matcher interface
type MatcherFunc func(pattern, name string) bool

// Match calls f(pattern, name)
func (f MatcherFunc) Match(pattern, name string) bool {
	return f(pattern, name)
}
