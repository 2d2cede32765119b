package vgw

import (
	"context"
	"slices"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"tasnim.dev/dxfacts/internal/aws/upstream"
)

type VGWAPI interface {
	DescribeVpnGateways(ctx context.Context, params *awsec2.DescribeVpnGatewaysInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeVpnGatewaysOutput, error)
}

type Client struct {
	api VGWAPI
}

func NewClient(api VGWAPI) *Client {
	return &Client{api: api}
}

func buildInput(f Filter) *awsec2.DescribeVpnGatewaysInput {
	in := &awsec2.DescribeVpnGatewaysInput{}

	names := make([]string, 0, len(f.Filters))
	for name := range f.Filters {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		in.Filters = append(in.Filters, types.Filter{
			Name:   aws.String(name),
			Values: f.Filters[name],
		})
	}

	if len(f.VPNGatewayIDs) > 0 {
		in.VpnGatewayIds = f.VPNGatewayIDs
	}
	if f.DryRun {
		in.DryRun = aws.Bool(true)
	}
	return in
}

// ListVirtualGateways returns the gateways matching f. DescribeVpnGateways is
// not paginated, so this is always one call.
func (c *Client) ListVirtualGateways(ctx context.Context, f Filter) ([]VirtualGatewayFact, error) {
	out, err := c.api.DescribeVpnGateways(ctx, buildInput(f))
	if err != nil {
		return nil, upstream.Wrap("DescribeVpnGateways", err)
	}

	facts := make([]VirtualGatewayFact, 0, len(out.VpnGateways))
	for _, g := range out.VpnGateways {
		attachments := make([]VPCAttachment, 0, len(g.VpcAttachments))
		for _, a := range g.VpcAttachments {
			attachments = append(attachments, VPCAttachment{
				VPCID: aws.ToString(a.VpcId),
				State: string(a.State),
			})
		}

		tags := make(map[string]string, len(g.Tags))
		for _, tag := range g.Tags {
			tags[aws.ToString(tag.Key)] = aws.ToString(tag.Value)
		}

		facts = append(facts, VirtualGatewayFact{
			VPNGatewayID:     aws.ToString(g.VpnGatewayId),
			State:            string(g.State),
			Type:             string(g.Type),
			AmazonSideASN:    g.AmazonSideAsn,
			AvailabilityZone: g.AvailabilityZone,
			VPCAttachments:   attachments,
			Tags:             tags,
		})
	}
	return facts, nil
}
