package commands

import (
	"github.com/ghodss/yaml"
	"github.com/spf13/cobra"

	"github.com/jeffrom/sysfetch/config"
	"github.com/jeffrom/sysfetch/stdio"
)

func newFactsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "facts",
		Short: "print gathered facts as YAML",
		Args:  cobra.NoArgs,
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

			b, err := yaml.Marshal(f)
			if err != nil {
				return err
			}
			_, err = stdio.FromContext(ctx).Stdout().Write(b)
			return err
		},
	}
	return cmd
}
