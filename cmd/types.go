package cmd

import (
	"github.com/Sena-ops/cppcheck2teamcity/internal/logging"
	"github.com/Sena-ops/cppcheck2teamcity/internal/pipeline"
	"github.com/spf13/cobra"
)

func newTypesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "Imprime apenas as mensagens inspectionType de \"cppcheck --errorlist\"",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			return pipeline.New(cfg, cmd.OutOrStdout(), logging.Logger).PrintTypes(cmd.Context())
		},
	}
}
