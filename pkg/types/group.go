package types

const (
	// MaxGroups is the number of configurable file groups
	MaxGroups = 10

	// NoGroup is returned for entries that match no rule
	NoGroup = -1
)

// ValidGroup reports whether g is a usable group index
func ValidGroup(g int) bool {
	return g >= 0 && g < MaxGroups
}
