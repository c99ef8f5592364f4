package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/filegroup/pkg/errors"
	"github.com/arthur-debert/filegroup/pkg/logging"
	"github.com/arthur-debert/filegroup/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix = "FILEGROUP_"

	// ConfigRelPath is the user config location below the XDG config dirs
	ConfigRelPath = "filegroup/config.toml"
)

// DefaultPath returns the user config file: the first existing one in the
// XDG config dirs, else the location under XDG_CONFIG_HOME.
func DefaultPath() string {
	if path, err := xdg.SearchConfigFile(ConfigRelPath); err == nil {
		return path
	}
	return filepath.Join(xdg.ConfigHome, ConfigRelPath)
}

// Default returns the configuration built from the embedded defaults only
func Default() *Config {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return &Config{Groups: map[string]string{}}
	}
	cfg, err := unmarshal(k)
	if err != nil {
		return &Config{Groups: map[string]string{}}
	}
	return cfg
}

// Load builds the configuration in layers: embedded defaults, the user
// file at path (DefaultPath when empty), then FILEGROUP_GROUPS_<n>
// environment variables. A missing user file is not an error.
func Load(path string) (*Config, error) {
	return LoadWithOverrides(path, nil)
}

// LoadWithOverrides is Load with a final layer of per-group masks, as
// given on the command line. Out of range groups are ignored.
func LoadWithOverrides(path string, overrides map[int]string) (*Config, error) {
	logger := logging.GetLogger("config.loader")
	k := koanf.New(".")

	// 1. Load system defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Load user config if it exists
	if path == "" {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded user config")
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat config %s", path)
	} else {
		logger.Debug().Str("path", path).Msg("No user config, using defaults")
	}

	// 3. Load env vars
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Load overrides
	if values := overrideValues(overrides); len(values) > 0 {
		if err := k.Load(confmap.Provider(values, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
		logger.Debug().Int("groups", len(values)).Msg("Applied group overrides")
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}

	logger.Debug().Int("groups", len(cfg.Groups)).Msg("Configuration loaded")
	return cfg, nil
}

func overrideValues(overrides map[int]string) map[string]interface{} {
	values := make(map[string]interface{}, len(overrides))
	for group, masks := range overrides {
		if !types.ValidGroup(group) {
			continue
		}
		values["groups."+strconv.Itoa(group)] = masks
	}
	return values
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				sliceToMaskListHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	if cfg.Groups == nil {
		cfg.Groups = map[string]string{}
	}
	return &cfg, nil
}

// sliceToMaskListHookFunc accepts `0 = ["*.zip", "*.rar"]` as well as
// the comma separated string form.
func sliceToMaskListHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t.Kind() != reflect.String || (f.Kind() != reflect.Slice && f.Kind() != reflect.Array) {
			return data, nil
		}

		v := reflect.ValueOf(data)
		masks := make([]string, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			masks = append(masks, fmt.Sprint(v.Index(i).Interface()))
		}
		return strings.Join(masks, ", "), nil
	}
}
