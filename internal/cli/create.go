package cli

import (
	"github.com/arthur-debert/factory/pkg/errors"
	"github.com/arthur-debert/factory/pkg/output"
	"github.com/arthur-debert/factory/pkg/registry"
	"github.com/arthur-debert/factory/pkg/shapes"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newCreateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "create <interface> <id>",
		Short: MsgCreateShort,
		Long:  MsgCreateLong,
		Example: `  factory create Shape circle
  factory create shapes.Solid cube --format yaml`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeCreateArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			product, err := create(args[0], args[1])
			if err != nil {
				return err
			}

			r, err := opts.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderProduct(product)
		},
	}
}

func create(iface, id string) (output.Product, error) {
	cat, ok := registry.CatalogFor(iface)
	if !ok {
		return output.Product{}, errors.Newf(errors.ErrNotFound, MsgErrUnknownInterface, iface).
			WithDetail("available", interfaceNames())
	}

	v, ok := cat.Produce(id)
	if !ok && cat.Has(id) {
		return output.Product{}, errors.Newf(errors.ErrInvalidInput, MsgErrNeedsArgs, id, cat.Interface()).
			WithDetail("interface", cat.Interface()).
			WithDetail("id", id)
	}
	if !ok {
		return output.Product{}, errors.Newf(errors.ErrNotFound, MsgErrUnknownID, id, cat.Interface()).
			WithDetail("interface", cat.Interface()).
			WithDetail("available", cat.List())
	}

	log.Debug().
		Str("interface", cat.Interface()).
		Str("id", id).
		Msg("Created instance")

	return output.Product{
		Interface:   cat.Interface(),
		ID:          id,
		Description: shapes.Describe(v),
	}, nil
}

func interfaceNames() []string {
	cats := registry.Catalogs()
	names := make([]string, 0, len(cats))
	for _, c := range cats {
		names = append(names, c.Interface())
	}
	return names
}

func completeCreateArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return interfaceNames(), cobra.ShellCompDirectiveNoFileComp
	case 1:
		if cat, ok := registry.CatalogFor(args[0]); ok {
			return cat.List(), cobra.ShellCompDirectiveNoFileComp
		}
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}
