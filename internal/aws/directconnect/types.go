package directconnect

// VirtualInterfaceFact is the normalized view of one Direct Connect virtual
// interface. AuthKey, CustomerRouterConfig and VirtualGatewayID are nil when
// the upstream record omitted them; an empty string means present but empty.
type VirtualInterfaceFact struct {
	OwnerAccount          string   `json:"owner_account" yaml:"owner_account"`
	VirtualInterfaceID    string   `json:"virtual_interface_id" yaml:"virtual_interface_id"`
	Location              string   `json:"location" yaml:"location"`
	ConnectionID          string   `json:"connection_id" yaml:"connection_id"`
	VirtualInterfaceType  string   `json:"virtual_interface_type" yaml:"virtual_interface_type"`
	VirtualInterfaceName  string   `json:"virtual_interface_name" yaml:"virtual_interface_name"`
	VLAN                  int32    `json:"vlan" yaml:"vlan"`
	ASN                   int32    `json:"asn" yaml:"asn"`
	AuthKey               *string  `json:"auth_key" yaml:"auth_key"`
	AmazonAddress         string   `json:"amazon_address" yaml:"amazon_address"`
	CustomerAddress       string   `json:"customer_address" yaml:"customer_address"`
	VirtualInterfaceState string   `json:"virtual_interface_state" yaml:"virtual_interface_state"`
	CustomerRouterConfig  *string  `json:"customer_router_config" yaml:"customer_router_config"`
	VirtualGatewayID      *string  `json:"virtual_gateway_id" yaml:"virtual_gateway_id"`
	RouteFilterPrefixes   []string `json:"route_filter_prefixes" yaml:"route_filter_prefixes"`
}

// Filter narrows a listing. Empty fields are not sent.
type Filter struct {
	ConnectionID       string
	VirtualInterfaceID string
}
