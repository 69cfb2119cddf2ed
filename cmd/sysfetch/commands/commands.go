// Package commands contains the available sysfetch cli commands.
package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jeffrom/sysfetch/config"
	"github.com/jeffrom/sysfetch/facts"
	"github.com/jeffrom/sysfetch/render"
	"github.com/jeffrom/sysfetch/stdio"
)

func ExecArgs(ctx context.Context, args []string) error {
	return Exec(ctx, args, &stdio.StdIO{})
}

// Exec runs the cli with args, writing through o.
func Exec(ctx context.Context, args []string, o *stdio.StdIO) error {
	rootCmd := &cobra.Command{
		Use:           "sysfetch",
		Short:         "print system information beside a logo",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}

			f, err := gather(ctx, cfg)
			if err != nil {
				return err
			}

			out := stdio.FromContext(ctx).Stdout()
			r, err := render.New(out, render.Options{
				Color:        render.ColorEnabled(cfg.ColorMode(), out),
				LineTemplate: cfg.LineTemplate,
			})
			if err != nil {
				return err
			}
			return r.Render(f)
		},
	}

	config.AddFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(newFactsCmd())

	rootCmd.SetOut(o.Stdout())
	rootCmd.SetErr(o.Stderr())
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(stdio.SetContext(ctx, o))
}

// gather reads all facts. Nothing is written to stdout until every fact has
// been read, so a fatal error leaves no partial output.
func gather(ctx context.Context, cfg *config.Config) (*facts.Facts, error) {
	o := stdio.FromContext(ctx)
	o.Verbose = cfg.Verbose
	o.Quiet = cfg.Quiet
	if cfg.ConfigFile != "" {
		o.Debugf("using config file %s", cfg.ConfigFile)
	}

	c := facts.New(cfg.Root)
	o.Debugf("reading system files under %s", c.FS.Root())
	c.MemoryUnit = cfg.Unit()
	c.IO = *o
	return c.Gather(ctx, cfg.Policy())
}
