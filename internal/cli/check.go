package cli

import (
	"github.com/arthur-debert/factory/pkg/errors"
	"github.com/arthur-debert/factory/pkg/output"
	"github.com/arthur-debert/factory/pkg/registry"
	"github.com/spf13/cobra"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: MsgCheckShort,
		Long:  MsgCheckLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.renderer(cmd)
			if err != nil {
				return err
			}

			report := output.BuildDuplicateReport(registry.Catalogs())
			if err := r.RenderDuplicates(report); err != nil {
				return err
			}

			if n := len(report.Duplicates); n > 0 {
				return errors.Newf(errors.ErrDuplicateRegistration, MsgErrDuplicates, n).
					WithDetail("count", n)
			}
			return nil
		},
	}
}
