package module

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	awsclient "tasnim.dev/dxfacts/internal/aws"
)

// internalPrefix marks bookkeeping keys the host adds to every module's arguments.
const internalPrefix = "_ansible_"

// VIFParams are the arguments of the vif-facts module.
type VIFParams struct {
	Connection         awsclient.ConnectionParams
	ConnectionID       string
	VirtualInterfaceID string
}

// VGWParams are the arguments of the vgw-facts module.
type VGWParams struct {
	Connection    awsclient.ConnectionParams
	Filters       map[string][]string
	VPNGatewayIDs []string
	DryRun        bool
}

// args is a decoded arguments file. Every lookup marks the keys it consumed so
// leftovers can be reported as unsupported.
type args struct {
	module string
	raw    map[string]json.RawMessage
	used   map[string]bool
}

func readArgs(module string, r io.Reader) (*args, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("parsing module arguments: %w", err)
	}
	if raw == nil {
		raw = map[string]json.RawMessage{}
	}
	return &args{module: module, raw: raw, used: map[string]bool{}}, nil
}

// lookup returns the first non-null value among name and its aliases.
func (a *args) lookup(name string, aliases ...string) (string, json.RawMessage, bool) {
	for _, key := range append([]string{name}, aliases...) {
		a.used[key] = true
	}
	for _, key := range append([]string{name}, aliases...) {
		v, ok := a.raw[key]
		if ok && string(v) != "null" {
			return key, v, true
		}
	}
	return "", nil, false
}

func (a *args) str(name string, aliases ...string) (string, error) {
	key, v, ok := a.lookup(name, aliases...)
	if !ok {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", fmt.Errorf("argument %s is of type %s and we were unable to convert to str", key, jsonType(v))
	}
	return s, nil
}

func (a *args) boolean(def bool, name string, aliases ...string) (bool, error) {
	key, v, ok := a.lookup(name, aliases...)
	if !ok {
		return def, nil
	}
	var b bool
	if err := json.Unmarshal(v, &b); err == nil {
		return b, nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		switch strings.ToLower(s) {
		case "yes", "on", "y":
			return true, nil
		case "no", "off", "n":
			return false, nil
		}
		if b, err := strconv.ParseBool(s); err == nil {
			return b, nil
		}
	}
	return false, fmt.Errorf("argument %s is of type %s and we were unable to convert to bool", key, jsonType(v))
}

// list accepts a single string or a list of strings.
func (a *args) list(name string, aliases ...string) ([]string, error) {
	key, v, ok := a.lookup(name, aliases...)
	if !ok {
		return nil, nil
	}
	items, err := stringOrList(v)
	if err != nil {
		return nil, fmt.Errorf("argument %s is of type %s and we were unable to convert to list", key, jsonType(v))
	}
	return items, nil
}

// dict decodes an object whose values are strings or lists of strings.
func (a *args) dict(name string, aliases ...string) (map[string][]string, error) {
	key, v, ok := a.lookup(name, aliases...)
	if !ok {
		return nil, nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(v, &raw); err != nil {
		return nil, fmt.Errorf("argument %s is of type %s and we were unable to convert to dict", key, jsonType(v))
	}
	out := make(map[string][]string, len(raw))
	for k, rv := range raw {
		items, err := stringOrList(rv)
		if err != nil {
			return nil, fmt.Errorf("value of %s[%s] must be a string or a list of strings", key, k)
		}
		out[k] = items
	}
	return out, nil
}

func (a *args) connection() (awsclient.ConnectionParams, error) {
	var (
		p   awsclient.ConnectionParams
		err error
	)
	if p.Region, err = a.str("region", "aws_region", "ec2_region"); err != nil {
		return p, err
	}
	if p.Profile, err = a.str("profile", "aws_profile"); err != nil {
		return p, err
	}
	if p.AccessKeyID, err = a.str("aws_access_key", "ec2_access_key", "access_key"); err != nil {
		return p, err
	}
	if p.SecretAccessKey, err = a.str("aws_secret_key", "ec2_secret_key", "secret_key"); err != nil {
		return p, err
	}
	if p.SessionToken, err = a.str("security_token", "aws_security_token", "access_token"); err != nil {
		return p, err
	}
	if p.EndpointURL, err = a.str("ec2_url", "aws_endpoint_url", "endpoint_url"); err != nil {
		return p, err
	}
	validate, err := a.boolean(true, "validate_certs")
	if err != nil {
		return p, err
	}
	p.SkipTLSVerify = !validate
	return p, nil
}

// unsupported fails on any key no lookup asked for.
func (a *args) unsupported() error {
	var extra []string
	for k := range a.raw {
		if a.used[k] || strings.HasPrefix(k, internalPrefix) {
			continue
		}
		extra = append(extra, k)
	}
	if len(extra) == 0 {
		return nil
	}
	slices.Sort(extra)
	return fmt.Errorf("Unsupported parameters for (%s) module: %s", a.module, strings.Join(extra, ", "))
}

// ParseVIFParams decodes a vif-facts arguments file.
func ParseVIFParams(r io.Reader) (VIFParams, error) {
	a, err := readArgs(VIFModule, r)
	if err != nil {
		return VIFParams{}, err
	}

	var p VIFParams
	if p.Connection, err = a.connection(); err != nil {
		return VIFParams{}, err
	}
	if p.ConnectionID, err = a.str("connectionId"); err != nil {
		return VIFParams{}, err
	}
	if p.VirtualInterfaceID, err = a.str("virtualInterfaceId"); err != nil {
		return VIFParams{}, err
	}
	if err := a.unsupported(); err != nil {
		return VIFParams{}, err
	}
	return p, nil
}

// ParseVGWParams decodes a vgw-facts arguments file.
func ParseVGWParams(r io.Reader) (VGWParams, error) {
	a, err := readArgs(VGWModule, r)
	if err != nil {
		return VGWParams{}, err
	}

	var p VGWParams
	if p.Connection, err = a.connection(); err != nil {
		return VGWParams{}, err
	}
	if p.Filters, err = a.dict("filters"); err != nil {
		return VGWParams{}, err
	}
	if p.VPNGatewayIDs, err = a.list("VpnGatewayIds"); err != nil {
		return VGWParams{}, err
	}
	if p.DryRun, err = a.boolean(false, "DryRun"); err != nil {
		return VGWParams{}, err
	}
	if err := a.unsupported(); err != nil {
		return VGWParams{}, err
	}
	return p, nil
}

func stringOrList(v json.RawMessage) ([]string, error) {
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return []string{s}, nil
	}
	var items []string
	if err := json.Unmarshal(v, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func jsonType(v json.RawMessage) string {
	var x any
	if err := json.Unmarshal(v, &x); err != nil {
		return "invalid"
	}
	switch n := x.(type) {
	case string:
		return "str"
	case float64:
		if n == float64(int64(n)) {
			return "int"
		}
		return "float"
	case bool:
		return "bool"
	case []any:
		return "list"
	case map[string]any:
		return "dict"
	default:
		return "NoneType"
	}
}
