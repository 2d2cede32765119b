package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	awsclient "tasnim.dev/dxfacts/internal/aws"
	"tasnim.dev/dxfacts/internal/config"
	"tasnim.dev/dxfacts/internal/output"
)

// commonFlags are the connection and output flags every listing command takes.
type commonFlags struct {
	profile     string
	region      string
	endpointURL string
	output      string
}

func (f *commonFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.profile, "profile", "p", "", "AWS profile to use")
	cmd.Flags().StringVarP(&f.region, "region", "r", "", "AWS region to use")
	cmd.Flags().StringVar(&f.endpointURL, "endpoint-url", "", "override the service endpoint URL")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output format: json, yaml, table or detail")
}

// resolve merges the flags over the config file defaults.
func (f *commonFlags) resolve() (awsclient.ConnectionParams, output.Format, error) {
	cfg, err := config.Load()
	if err != nil {
		return awsclient.ConnectionParams{}, "", fmt.Errorf("loading config: %w", err)
	}

	format, err := output.ParseFormat(cfg.OutputFormat(f.output))
	if err != nil {
		return awsclient.ConnectionParams{}, "", err
	}

	profile, region := cfg.Merge(f.profile, f.region)
	return awsclient.ConnectionParams{
		Profile:     profile,
		Region:      region,
		EndpointURL: cfg.Endpoint(f.endpointURL),
	}, format, nil
}
