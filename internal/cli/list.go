package cli

import (
	"github.com/arthur-debert/factory/pkg/output"
	"github.com/arthur-debert/factory/pkg/registry"
	"github.com/spf13/cobra"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgListShort,
		Example: `  factory list
  factory list --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderReport(output.BuildReport(registry.Catalogs()))
		},
	}
}
