package module

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	awsclient "tasnim.dev/dxfacts/internal/aws"
)

func TestParseVIFParams_Empty(t *testing.T) {
	p, err := ParseVIFParams(strings.NewReader(`{}`))
	require.NoError(t, err)
	assert.Equal(t, VIFParams{}, p)
}

func TestParseVIFParams_Filters(t *testing.T) {
	p, err := ParseVIFParams(strings.NewReader(`{
		"connectionId": "dxcon-fgwr13cd",
		"virtualInterfaceId": "dxvif-ffh2k3n3",
		"region": "ap-southeast-2",
		"profile": "production"
	}`))
	require.NoError(t, err)
	assert.Equal(t, "dxcon-fgwr13cd", p.ConnectionID)
	assert.Equal(t, "dxvif-ffh2k3n3", p.VirtualInterfaceID)
	assert.Equal(t, awsclient.ConnectionParams{Region: "ap-southeast-2", Profile: "production"}, p.Connection)
}

func TestParseVIFParams_NullIsAbsent(t *testing.T) {
	p, err := ParseVIFParams(strings.NewReader(`{"connectionId": null, "virtualInterfaceId": null}`))
	require.NoError(t, err)
	assert.Empty(t, p.ConnectionID)
	assert.Empty(t, p.VirtualInterfaceID)
}

func TestParseVIFParams_ConnectionAliases(t *testing.T) {
	p, err := ParseVIFParams(strings.NewReader(`{
		"ec2_region": "us-west-2",
		"ec2_access_key": "AKIAEXAMPLE",
		"secret_key": "secret",
		"aws_security_token": "token",
		"endpoint_url": "https://directconnect.us-west-2.amazonaws.com",
		"validate_certs": "no"
	}`))
	require.NoError(t, err)
	assert.Equal(t, awsclient.ConnectionParams{
		Region:          "us-west-2",
		AccessKeyID:     "AKIAEXAMPLE",
		SecretAccessKey: "secret",
		SessionToken:    "token",
		EndpointURL:     "https://directconnect.us-west-2.amazonaws.com",
		SkipTLSVerify:   true,
	}, p.Connection)
}

func TestParseVIFParams_PrimaryNameWins(t *testing.T) {
	p, err := ParseVIFParams(strings.NewReader(`{"region": "eu-west-1", "aws_region": "us-east-1"}`))
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", p.Connection.Region)
}

func TestParseVIFParams_InternalKeysIgnored(t *testing.T) {
	_, err := ParseVIFParams(strings.NewReader(`{"_ansible_check_mode": false, "_ansible_verbosity": 3}`))
	assert.NoError(t, err)
}

func TestParseVIFParams_Unsupported(t *testing.T) {
	_, err := ParseVIFParams(strings.NewReader(`{"connection_id": "dxcon-1", "bogus": 1}`))
	assert.EqualError(t, err, "Unsupported parameters for (ec2_direct_connect_vif_facts) module: bogus, connection_id")
}

func TestParseVIFParams_WrongType(t *testing.T) {
	_, err := ParseVIFParams(strings.NewReader(`{"connectionId": ["dxcon-1"]}`))
	assert.EqualError(t, err, "argument connectionId is of type list and we were unable to convert to str")

	_, err = ParseVIFParams(strings.NewReader(`{"validate_certs": "maybe"}`))
	assert.EqualError(t, err, "argument validate_certs is of type str and we were unable to convert to bool")
}

func TestParseVIFParams_InvalidJSON(t *testing.T) {
	_, err := ParseVIFParams(strings.NewReader(`connectionId=dxcon-1`))
	assert.ErrorContains(t, err, "parsing module arguments")
}

func TestParseVGWParams(t *testing.T) {
	p, err := ParseVGWParams(strings.NewReader(`{
		"region": "ap-southeast-2",
		"filters": {"tag:Name": "vgw-123", "attachment.vpc-id": ["vpc-1", "vpc-2"]},
		"VpnGatewayIds": "vgw-c123f6a7"
	}`))
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"tag:Name":          {"vgw-123"},
		"attachment.vpc-id": {"vpc-1", "vpc-2"},
	}, p.Filters)
	assert.Equal(t, []string{"vgw-c123f6a7"}, p.VPNGatewayIDs)
	assert.Equal(t, "ap-southeast-2", p.Connection.Region)
}

func TestParseVGWParams_BadFilterValue(t *testing.T) {
	_, err := ParseVGWParams(strings.NewReader(`{"filters": {"state": 3}}`))
	assert.EqualError(t, err, "value of filters[state] must be a string or a list of strings")

	_, err = ParseVGWParams(strings.NewReader(`{"filters": "state=available"}`))
	assert.EqualError(t, err, "argument filters is of type str and we were unable to convert to dict")
}

func TestParseVGWParams_RejectsVIFKeys(t *testing.T) {
	_, err := ParseVGWParams(strings.NewReader(`{"connectionId": "dxcon-1"}`))
	assert.EqualError(t, err, "Unsupported parameters for (ec2_vpc_vgw_facts) module: connectionId")
}

func TestParseVGWParams_DryRun(t *testing.T) {
	p, err := ParseVGWParams(strings.NewReader(`{"DryRun": false, "filters": {"state": "available"}}`))
	require.NoError(t, err)
	assert.False(t, p.DryRun)
	assert.Equal(t, map[string][]string{"state": {"available"}}, p.Filters)

	p, err = ParseVGWParams(strings.NewReader(`{"DryRun": "yes"}`))
	require.NoError(t, err)
	assert.True(t, p.DryRun)
}
