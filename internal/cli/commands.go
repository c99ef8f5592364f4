package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/arthur-debert/filegroup/pkg/config"
	"github.com/arthur-debert/filegroup/pkg/groups"
	"github.com/arthur-debert/filegroup/pkg/logging"
	"github.com/arthur-debert/filegroup/pkg/scan"
	"github.com/arthur-debert/filegroup/pkg/types"
	"github.com/spf13/cobra"
)

func newResolveCmd(opts *options) *cobra.Command {
	var asDir, asSymlink, stat bool

	cmd := &cobra.Command{
		Use:     "resolve <name>...",
		Short:   MsgResolveShort,
		Long:    MsgResolveLong,
		Example: MsgResolveExample,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := opts.loadResolver()
			if err != nil {
				return err
			}
			renderer, err := opts.renderer(cmd)
			if err != nil {
				return err
			}

			matches := make([]scan.Match, 0, len(args))
			if stat {
				scanner := scan.NewScanner(resolver, opts.lister)
				for _, path := range args {
					m, err := scanner.ScanPath(path)
					if err != nil {
						return err
					}
					matches = append(matches, m)
				}
				return renderer.RenderMatches(matches)
			}

			for _, name := range args {
				entry := types.NameEntry{FileName: name, Dir: asDir, Symlink: asSymlink}
				matches = append(matches, scan.Match{
					Name:      name,
					Path:      name,
					Group:     resolver.Resolve(entry),
					IsDir:     asDir,
					IsSymlink: asSymlink,
				})
			}
			return renderer.RenderMatches(matches)
		},
	}

	cmd.Flags().BoolVar(&asDir, "dir", false, "Treat the names as directories")
	cmd.Flags().BoolVar(&asSymlink, "symlink", false, "Treat the names as symbolic links")
	cmd.Flags().BoolVar(&stat, "stat", false, "Classify existing paths on disk")
	cmd.MarkFlagsMutuallyExclusive("stat", "dir")
	cmd.MarkFlagsMutuallyExclusive("stat", "symlink")

	return cmd
}

func newLsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ls [dir]",
		Short: MsgLsShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := opts.loadResolver()
			if err != nil {
				return err
			}
			return listDir(cmd, opts, resolver, dirArg(args))
		},
	}
}

func newRulesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: MsgRulesShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := opts.loadResolver()
			if err != nil {
				return err
			}
			renderer, err := opts.renderer(cmd)
			if err != nil {
				return err
			}
			return renderer.RenderRules(resolver.Rules())
		},
	}
}

func newGenConfigCmd(opts *options) *cobra.Command {
	var write, force, effective bool

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := []byte(config.GenerateConfigContent())
			if effective {
				cfg, err := opts.loadConfig()
				if err != nil {
					return err
				}
				if content, err = config.Marshal(cfg); err != nil {
					return err
				}
			}

			if !write {
				_, err := cmd.OutOrStdout().Write(content)
				return err
			}

			path := opts.configFile()
			if err := config.WriteFile(path, content, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write config to the config path instead of stdout")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	cmd.Flags().BoolVar(&effective, "effective", false, "Render the merged configuration in use")

	return cmd
}

func newWatchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [dir]",
		Short: MsgWatchShort,
		Long:  MsgWatchLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
			defer stop()

			return watchDir(ctx, cmd, opts, dirArg(args))
		},
	}
}

// watchDir lists dir, then reloads the resolver and lists again after
// every configuration change until ctx is done
func watchDir(ctx context.Context, cmd *cobra.Command, opts *options, dir string) error {
	logger := logging.GetLogger("cli.watch")
	path := opts.configFile()

	resolver, err := opts.loadResolver()
	if err != nil {
		return err
	}

	watcher, err := config.NewWatcher(path, config.DefaultDebounce)
	if err != nil {
		return err
	}

	if err := listDir(cmd, opts, resolver, dir); err != nil {
		return err
	}

	return watcher.Run(ctx, func() {
		cfg, err := opts.loadConfig()
		if err != nil {
			// keep classifying with the previous rules
			logger.Warn().Err(err).Str("path", path).Msg("Ignoring invalid configuration")
			return
		}
		resolver.Init(cfg)

		fmt.Fprintf(cmd.OutOrStdout(), MsgConfigReloaded, path)
		if err := listDir(cmd, opts, resolver, dir); err != nil {
			logger.Warn().Err(err).Str("dir", dir).Msg("Failed to list directory")
		}
	})
}

func listDir(cmd *cobra.Command, opts *options, resolver *groups.Resolver, dir string) error {
	matches, err := scan.NewScanner(resolver, opts.lister).ScanDir(dir)
	if err != nil {
		return err
	}
	renderer, err := opts.renderer(cmd)
	if err != nil {
		return err
	}
	return renderer.RenderMatches(matches)
}

func dirArg(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}
