package vgw

import (
	"context"
	"errors"
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasnim.dev/dxfacts/internal/aws/upstream"
)

type mockVGWAPI struct {
	describeVpnGatewaysFunc func(ctx context.Context, params *awsec2.DescribeVpnGatewaysInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeVpnGatewaysOutput, error)
}

func (m *mockVGWAPI) DescribeVpnGateways(ctx context.Context, params *awsec2.DescribeVpnGatewaysInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeVpnGatewaysOutput, error) {
	return m.describeVpnGatewaysFunc(ctx, params, optFns...)
}

func TestBuildInput_Empty(t *testing.T) {
	in := buildInput(Filter{})
	assert.Nil(t, in.Filters)
	assert.Nil(t, in.VpnGatewayIds)
}

func TestBuildInput_FiltersSortedByName(t *testing.T) {
	in := buildInput(Filter{
		Filters: map[string][]string{
			"tag:Name":          {"vgw-123"},
			"attachment.vpc-id": {"vpc-1", "vpc-2"},
			"state":             {"available"},
		},
		VPNGatewayIDs: []string{"vgw-c123f6a7"},
	})

	require.Len(t, in.Filters, 3)
	assert.Equal(t, "attachment.vpc-id", awssdk.ToString(in.Filters[0].Name))
	assert.Equal(t, []string{"vpc-1", "vpc-2"}, in.Filters[0].Values)
	assert.Equal(t, "state", awssdk.ToString(in.Filters[1].Name))
	assert.Equal(t, "tag:Name", awssdk.ToString(in.Filters[2].Name))
	assert.Equal(t, []string{"vgw-c123f6a7"}, in.VpnGatewayIds)
}

func TestListVirtualGateways(t *testing.T) {
	mock := &mockVGWAPI{
		describeVpnGatewaysFunc: func(ctx context.Context, params *awsec2.DescribeVpnGatewaysInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeVpnGatewaysOutput, error) {
			return &awsec2.DescribeVpnGatewaysOutput{
				VpnGateways: []types.VpnGateway{
					{
						VpnGatewayId:  awssdk.String("vgw-c123f6a7"),
						State:         types.VpnStateAvailable,
						Type:          types.GatewayTypeIpsec1,
						AmazonSideAsn: awssdk.Int64(64512),
						VpcAttachments: []types.VpcAttachment{
							{VpcId: awssdk.String("vpc-abc123"), State: types.AttachmentStatusAttached},
						},
						Tags: []types.Tag{
							{Key: awssdk.String("Name"), Value: awssdk.String("prod-vgw")},
						},
					},
					{
						VpnGatewayId: awssdk.String("vgw-00000002"),
						State:        types.VpnStatePending,
						Type:         types.GatewayTypeIpsec1,
					},
				},
			}, nil
		},
	}

	gws, err := NewClient(mock).ListVirtualGateways(context.Background(), Filter{})
	require.NoError(t, err)
	require.Len(t, gws, 2)

	gw := gws[0]
	assert.Equal(t, "vgw-c123f6a7", gw.VPNGatewayID)
	assert.Equal(t, "available", gw.State)
	assert.Equal(t, "ipsec.1", gw.Type)
	assert.Equal(t, int64(64512), awssdk.ToInt64(gw.AmazonSideASN))
	assert.Nil(t, gw.AvailabilityZone)
	assert.Equal(t, []VPCAttachment{{VPCID: "vpc-abc123", State: "attached"}}, gw.VPCAttachments)
	assert.Equal(t, map[string]string{"Name": "prod-vgw"}, gw.Tags)

	assert.Equal(t, "vgw-00000002", gws[1].VPNGatewayID)
	assert.NotNil(t, gws[1].VPCAttachments)
	assert.NotNil(t, gws[1].Tags)
}

func TestListVirtualGateways_Error(t *testing.T) {
	mock := &mockVGWAPI{
		describeVpnGatewaysFunc: func(ctx context.Context, params *awsec2.DescribeVpnGatewaysInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeVpnGatewaysOutput, error) {
			return nil, errors.New("UnauthorizedOperation: You are not authorized to perform this operation.")
		},
	}

	gws, err := NewClient(mock).ListVirtualGateways(context.Background(), Filter{})
	require.Error(t, err)
	assert.Nil(t, gws)
	assert.True(t, upstream.Is(err))
	assert.Contains(t, err.Error(), "You are not authorized to perform this operation.")
}

func TestBuildInput_DryRun(t *testing.T) {
	assert.Nil(t, buildInput(Filter{}).DryRun)
	assert.True(t, awssdk.ToBool(buildInput(Filter{DryRun: true}).DryRun))
}
