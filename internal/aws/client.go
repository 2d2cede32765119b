package aws

import (
	"context"

	awsdx "github.com/aws/aws-sdk-go-v2/service/directconnect"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"tasnim.dev/dxfacts/internal/aws/directconnect"
	"tasnim.dev/dxfacts/internal/aws/vgw"
)

type ServiceClient struct {
	DirectConnect *directconnect.Client
	VGW           *vgw.Client
	STS           STSAPI
}

// NewServiceClient builds fresh SDK clients for one invocation.
func NewServiceClient(ctx context.Context, p ConnectionParams) (*ServiceClient, error) {
	cfg, err := LoadConfig(ctx, p)
	if err != nil {
		return nil, err
	}

	return &ServiceClient{
		DirectConnect: directconnect.NewClient(awsdx.NewFromConfig(cfg)),
		VGW:           vgw.NewClient(ec2.NewFromConfig(cfg)),
		STS:           sts.NewFromConfig(cfg),
	}, nil
}
