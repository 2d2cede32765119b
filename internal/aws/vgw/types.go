package vgw

// VirtualGatewayFact describes one EC2 virtual private gateway.
type VirtualGatewayFact struct {
	VPNGatewayID     string            `json:"vpn_gateway_id" yaml:"vpn_gateway_id"`
	State            string            `json:"state" yaml:"state"`
	Type             string            `json:"type" yaml:"type"`
	AmazonSideASN    *int64            `json:"amazon_side_asn" yaml:"amazon_side_asn"`
	AvailabilityZone *string           `json:"availability_zone" yaml:"availability_zone"`
	VPCAttachments   []VPCAttachment   `json:"vpc_attachments" yaml:"vpc_attachments"`
	Tags             map[string]string `json:"tags" yaml:"tags"`
}

type VPCAttachment struct {
	VPCID string `json:"vpc_id" yaml:"vpc_id"`
	State string `json:"state" yaml:"state"` // attaching, attached, detaching, detached
}

// Filter narrows a listing. Filters maps an EC2 filter name (e.g. "tag:Name",
// "attachment.vpc-id") to its accepted values.
type Filter struct {
	Filters       map[string][]string
	VPNGatewayIDs []string
	// DryRun asks EC2 to check permissions only; the call then fails with DryRunOperation.
	DryRun bool
}
