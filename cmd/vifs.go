package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	awsclient "tasnim.dev/dxfacts/internal/aws"
	"tasnim.dev/dxfacts/internal/aws/directconnect"
	"tasnim.dev/dxfacts/internal/module"
	"tasnim.dev/dxfacts/internal/output"
)

func NewVIFsCmd() *cobra.Command {
	var flags commonFlags
	var filter directconnect.Filter

	cmd := &cobra.Command{
		Use:   "vifs",
		Short: "List Direct Connect virtual interfaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, format, err := flags.resolve()
			if err != nil {
				return err
			}

			client, err := awsclient.NewServiceClient(cmd.Context(), params)
			if err != nil {
				return fmt.Errorf("initializing AWS client: %w", err)
			}

			result, err := module.ListVIFs(cmd.Context(), client.DirectConnect, filter)
			if err != nil {
				return err
			}
			return output.Write(cmd.OutOrStdout(), format, result)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&filter.ConnectionID, "connection-id", "", "only interfaces on this connection (dxcon-...)")
	cmd.Flags().StringVar(&filter.VirtualInterfaceID, "virtual-interface-id", "", "only this virtual interface (dxvif-...)")

	return cmd
}
