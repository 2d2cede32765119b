package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	awsclient "tasnim.dev/dxfacts/internal/aws"
	"tasnim.dev/dxfacts/internal/output"
)

type identityView struct {
	awsclient.Identity `yaml:",inline"`
}

func (v identityView) Headers() []string { return []string{"account", "arn", "user_id"} }

func (v identityView) Rows() [][]string {
	return [][]string{{v.Account, v.ARN, v.UserID}}
}

func NewWhoAmICmd() *cobra.Command {
	var flags commonFlags

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the AWS identity the resolved credentials belong to",
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

			id, err := awsclient.CallerIdentity(cmd.Context(), client.STS)
			if err != nil {
				return err
			}
			return output.Write(cmd.OutOrStdout(), format, identityView{id})
		},
	}

	flags.register(cmd)
	return cmd
}
