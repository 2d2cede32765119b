package cmd

import (
	"github.com/spf13/cobra"

	"tasnim.dev/dxfacts/internal/module"
)

func NewModuleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "module",
		Short: "Run as an automation host module (JSON arguments file in, JSON result out)",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "vif-facts ARGS_FILE",
		Short: "Gather Direct Connect virtual interface facts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return module.NewRunner(cmd.OutOrStdout()).RunVIFFacts(cmd.Context(), args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "vgw-facts ARGS_FILE",
		Short: "Gather virtual private gateway facts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return module.NewRunner(cmd.OutOrStdout()).RunVGWFacts(cmd.Context(), args[0])
		},
	})

	return cmd
}
