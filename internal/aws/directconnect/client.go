package directconnect

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsdx "github.com/aws/aws-sdk-go-v2/service/directconnect"
	"github.com/aws/aws-sdk-go-v2/service/directconnect/types"

	"tasnim.dev/dxfacts/internal/aws/upstream"
)

type DirectConnectAPI interface {
	DescribeVirtualInterfaces(ctx context.Context, params *awsdx.DescribeVirtualInterfacesInput, optFns ...func(*awsdx.Options)) (*awsdx.DescribeVirtualInterfacesOutput, error)
}

type Client struct {
	api DirectConnectAPI
}

func NewClient(api DirectConnectAPI) *Client {
	return &Client{api: api}
}

func buildInput(f Filter) *awsdx.DescribeVirtualInterfacesInput {
	in := &awsdx.DescribeVirtualInterfacesInput{}
	if f.ConnectionID != "" {
		in.ConnectionId = aws.String(f.ConnectionID)
	}
	if f.VirtualInterfaceID != "" {
		in.VirtualInterfaceId = aws.String(f.VirtualInterfaceID)
	}
	return in
}

// ListVirtualInterfaces makes a single DescribeVirtualInterfaces call and
// returns the interfaces in the order the service sent them. The result is
// never nil on success.
func (c *Client) ListVirtualInterfaces(ctx context.Context, f Filter) ([]VirtualInterfaceFact, error) {
	out, err := c.api.DescribeVirtualInterfaces(ctx, buildInput(f))
	if err != nil {
		return nil, upstream.Wrap("DescribeVirtualInterfaces", err)
	}

	facts := make([]VirtualInterfaceFact, 0, len(out.VirtualInterfaces))
	for _, v := range out.VirtualInterfaces {
		facts = append(facts, toFact(v))
	}
	return facts, nil
}

func toFact(v types.VirtualInterface) VirtualInterfaceFact {
	prefixes := make([]string, 0, len(v.RouteFilterPrefixes))
	for _, p := range v.RouteFilterPrefixes {
		prefixes = append(prefixes, aws.ToString(p.Cidr))
	}

	return VirtualInterfaceFact{
		OwnerAccount:          aws.ToString(v.OwnerAccount),
		VirtualInterfaceID:    aws.ToString(v.VirtualInterfaceId),
		Location:              aws.ToString(v.Location),
		ConnectionID:          aws.ToString(v.ConnectionId),
		VirtualInterfaceType:  aws.ToString(v.VirtualInterfaceType),
		VirtualInterfaceName:  aws.ToString(v.VirtualInterfaceName),
		VLAN:                  v.Vlan,
		ASN:                   v.Asn,
		AuthKey:               present(v.AuthKey),
		AmazonAddress:         aws.ToString(v.AmazonAddress),
		CustomerAddress:       aws.ToString(v.CustomerAddress),
		VirtualInterfaceState: string(v.VirtualInterfaceState),
		CustomerRouterConfig:  present(v.CustomerRouterConfig),
		VirtualGatewayID:      present(v.VirtualGatewayId),
		RouteFilterPrefixes:   prefixes,
	}
}

// present copies an optional SDK string. The SDK decodes a missing key to
// nil and an empty value to a pointer to "", so a nil check is a key check.
func present(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
