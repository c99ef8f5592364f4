package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/filegroup/internal/version"
	"github.com/arthur-debert/filegroup/pkg/config"
	"github.com/arthur-debert/filegroup/pkg/errors"
	"github.com/arthur-debert/filegroup/pkg/filesystem"
	"github.com/arthur-debert/filegroup/pkg/groups"
	"github.com/arthur-debert/filegroup/pkg/logging"
	"github.com/arthur-debert/filegroup/pkg/types"
	"github.com/arthur-debert/filegroup/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// resolveCacheSize bounds the per-snapshot pattern cache of CLI resolvers
const resolveCacheSize = 4096

// options holds the persistent flags shared by every command
type options struct {
	verbosity  int
	configPath string
	format     string
	noColor    bool
	groupMasks []string

	// lister is swapped for an in-memory filesystem in tests
	lister *filesystem.Lister
}

// NewRootCmd creates the filegroup command tree
func NewRootCmd() *cobra.Command {
	return newRootCmd(&options{lister: filesystem.NewOS()})
}

func newRootCmd(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "filegroup",
		Short: MsgRootShort,
		Long:  MsgRootLong,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLoggerTo(cmd.ErrOrStderr(), opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default is $XDG_CONFIG_HOME/filegroup/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "auto", "Output format: auto, term, text, json, yaml")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringArrayVarP(&opts.groupMasks, "group", "g", nil, "Override a group's masks, as N=masks (repeatable)")

	rootCmd.AddCommand(
		newResolveCmd(opts),
		newLsCmd(opts),
		newRulesCmd(opts),
		newGenConfigCmd(opts),
		newWatchCmd(opts),
		newVersionCmd(),
	)

	return rootCmd
}

// configFile returns the config path in effect
func (o *options) configFile() string {
	if o.configPath != "" {
		return o.configPath
	}
	return config.DefaultPath()
}

// overrides parses the --group flags
func (o *options) overrides() (map[int]string, error) {
	if len(o.groupMasks) == 0 {
		return nil, nil
	}
	overrides := make(map[int]string, len(o.groupMasks))
	for _, arg := range o.groupMasks {
		key, masks, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, errors.Newf(errors.ErrInvalidInput, "invalid --group %q, expected N=masks", arg)
		}
		group, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil || !types.ValidGroup(group) {
			return nil, errors.Newf(errors.ErrInvalidGroup, "invalid --group %q, group must be 0-%d", arg, types.MaxGroups-1)
		}
		overrides[group] = masks
	}
	return overrides, nil
}

// loadConfig loads the configuration with the --group overrides applied
func (o *options) loadConfig() (*config.Config, error) {
	overrides, err := o.overrides()
	if err != nil {
		return nil, err
	}
	return config.LoadWithOverrides(o.configFile(), overrides)
}

// loadResolver loads the configuration and builds a resolver from it
func (o *options) loadResolver() (*groups.Resolver, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	return groups.New(cfg, groups.WithCache(resolveCacheSize)), nil
}

func (o *options) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	format, err := ui.ParseFormat(o.format)
	if err != nil {
		return nil, err
	}
	if o.noColor && (format == ui.FormatAuto || format == ui.FormatTerminal) {
		format = ui.FormatText
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "filegroup version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}
