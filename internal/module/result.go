package module

import (
	"encoding/json"
	"io"
	"strconv"

	"tasnim.dev/dxfacts/internal/aws/directconnect"
	"tasnim.dev/dxfacts/internal/aws/vgw"
	"tasnim.dev/dxfacts/internal/utils"
)

// VIFResult is the success object of the vif-facts module. Changed is always
// false: listing never modifies anything.
type VIFResult struct {
	Changed           bool                                 `json:"changed" yaml:"changed"`
	DirectConnectVIFs []directconnect.VirtualInterfaceFact `json:"direct_connect_vifs" yaml:"direct_connect_vifs"`
}

func (r VIFResult) Headers() []string {
	return []string{
		"virtual_interface_id", "virtual_interface_name", "virtual_interface_state",
		"virtual_interface_type", "connection_id", "owner_account", "location",
		"vlan", "asn", "amazon_address", "customer_address", "auth_key",
		"virtual_gateway_id", "customer_router_config", "route_filter_prefixes",
	}
}

func (r VIFResult) Rows() [][]string {
	rows := make([][]string, 0, len(r.DirectConnectVIFs))
	for _, f := range r.DirectConnectVIFs {
		rows = append(rows, []string{
			f.VirtualInterfaceID,
			f.VirtualInterfaceName,
			f.VirtualInterfaceState,
			f.VirtualInterfaceType,
			f.ConnectionID,
			f.OwnerAccount,
			f.Location,
			strconv.Itoa(int(f.VLAN)),
			strconv.Itoa(int(f.ASN)),
			f.AmazonAddress,
			f.CustomerAddress,
			utils.StringOrDash(f.AuthKey),
			utils.StringOrDash(f.VirtualGatewayID),
			utils.StringOrDash(f.CustomerRouterConfig),
			utils.JoinOrDash(f.RouteFilterPrefixes, ","),
		})
	}
	return rows
}

// VGWResult is the success object of the vgw-facts module.
type VGWResult struct {
	Changed         bool                     `json:"changed" yaml:"changed"`
	VirtualGateways []vgw.VirtualGatewayFact `json:"virtual_gateways" yaml:"virtual_gateways"`
}

func (r VGWResult) Headers() []string {
	return []string{"vpn_gateway_id", "name", "state", "type", "amazon_side_asn", "availability_zone", "vpc_attachments"}
}

func (r VGWResult) Rows() [][]string {
	rows := make([][]string, 0, len(r.VirtualGateways))
	for _, g := range r.VirtualGateways {
		var vpcs []string
		for _, a := range g.VPCAttachments {
			vpcs = append(vpcs, a.VPCID+" ("+a.State+")")
		}
		name := utils.Dash
		if n, ok := g.Tags["Name"]; ok {
			name = n
		}
		rows = append(rows, []string{
			g.VPNGatewayID,
			name,
			g.State,
			g.Type,
			utils.Int64OrDash(g.AmazonSideASN),
			utils.StringOrDash(g.AvailabilityZone),
			utils.JoinOrDash(vpcs, ","),
		})
	}
	return rows
}

// Failure is the object a module prints when it cannot produce a result.
type Failure struct {
	Failed bool   `json:"failed"`
	Msg    string `json:"msg"`
}

// Exit writes a module result object to w.
func Exit(w io.Writer, result any) error {
	return json.NewEncoder(w).Encode(result)
}

// Fail writes a failure object for err to w.
func Fail(w io.Writer, err error) error {
	return json.NewEncoder(w).Encode(Failure{Failed: true, Msg: err.Error()})
}
