package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	awsclient "tasnim.dev/dxfacts/internal/aws"
	"tasnim.dev/dxfacts/internal/aws/vgw"
	"tasnim.dev/dxfacts/internal/module"
	"tasnim.dev/dxfacts/internal/output"
)

func NewVGWsCmd() *cobra.Command {
	var flags commonFlags
	var ids, filters []string

	cmd := &cobra.Command{
		Use:   "vgws",
		Short: "List virtual private gateways",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFilters(filters)
			if err != nil {
				return err
			}

			params, format, err := flags.resolve()
			if err != nil {
				return err
			}

			client, err := awsclient.NewServiceClient(cmd.Context(), params)
			if err != nil {
				return fmt.Errorf("initializing AWS client: %w", err)
			}

			result, err := module.ListVGWs(cmd.Context(), client.VGW, vgw.Filter{Filters: f, VPNGatewayIDs: ids})
			if err != nil {
				return err
			}
			return output.Write(cmd.OutOrStdout(), format, result)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringSliceVar(&ids, "vpn-gateway-id", nil, "only these gateways (vgw-...); repeatable")
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "EC2 filter as name=value; repeat a name to accept several values")

	return cmd
}

// parseFilters groups name=value pairs by name, keeping value order.
func parseFilters(pairs []string) (map[string][]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string][]string)
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid filter %q: want name=value", pair)
		}
		out[name] = append(out[name], value)
	}
	return out, nil
}
