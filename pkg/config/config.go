package config

import (
	"strconv"

	"github.com/arthur-debert/filegroup/pkg/types"
)

// Config holds the mask list of every configured file group.
// Groups is keyed by the decimal group index ("0".."9").
type Config struct {
	Groups map[string]string `koanf:"groups" toml:"groups"`
}

// GroupMasks returns the comma separated masks of group.
// It implements groups.MaskSource.
func (c *Config) GroupMasks(group int) (string, bool) {
	if c == nil || !types.ValidGroup(group) {
		return "", false
	}
	masks, ok := c.Groups[strconv.Itoa(group)]
	return masks, ok
}

// SetGroupMasks replaces the masks of group. Out of range groups are ignored.
func (c *Config) SetGroupMasks(group int, masks string) {
	if !types.ValidGroup(group) {
		return
	}
	if c.Groups == nil {
		c.Groups = make(map[string]string)
	}
	c.Groups[strconv.Itoa(group)] = masks
}
