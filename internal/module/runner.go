package module

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"k8s.io/klog/v2"

	awsclient "tasnim.dev/dxfacts/internal/aws"
	"tasnim.dev/dxfacts/internal/aws/directconnect"
	"tasnim.dev/dxfacts/internal/aws/upstream"
	"tasnim.dev/dxfacts/internal/aws/vgw"
)

const (
	VIFModule = "ec2_direct_connect_vif_facts"
	VGWModule = "ec2_vpc_vgw_facts"
)

// ErrFailed is returned after a failure object has been written, so the
// caller only has to set the exit status.
var ErrFailed = errors.New("module failed")

type VIFLister interface {
	ListVirtualInterfaces(ctx context.Context, f directconnect.Filter) ([]directconnect.VirtualInterfaceFact, error)
}

type VGWLister interface {
	ListVirtualGateways(ctx context.Context, f vgw.Filter) ([]vgw.VirtualGatewayFact, error)
}

// ListVIFs runs one virtual interface listing and wraps it in a result object.
func ListVIFs(ctx context.Context, lister VIFLister, f directconnect.Filter) (VIFResult, error) {
	klog.V(1).InfoS("Describing virtual interfaces", "connectionID", f.ConnectionID, "virtualInterfaceID", f.VirtualInterfaceID)

	facts, err := lister.ListVirtualInterfaces(ctx, f)
	if err != nil {
		klog.ErrorS(err, "Listing virtual interfaces failed", "code", upstream.Code(err))
		return VIFResult{}, err
	}

	klog.V(2).InfoS("Described virtual interfaces", "count", len(facts))
	return VIFResult{DirectConnectVIFs: facts}, nil
}

// ListVGWs runs one virtual gateway listing and wraps it in a result object.
func ListVGWs(ctx context.Context, lister VGWLister, f vgw.Filter) (VGWResult, error) {
	klog.V(1).InfoS("Describing virtual gateways", "filters", f.Filters, "vpnGatewayIDs", f.VPNGatewayIDs)

	facts, err := lister.ListVirtualGateways(ctx, f)
	if err != nil {
		klog.ErrorS(err, "Listing virtual gateways failed", "code", upstream.Code(err))
		return VGWResult{}, err
	}

	klog.V(2).InfoS("Described virtual gateways", "count", len(facts))
	return VGWResult{VirtualGateways: facts}, nil
}

// ClientFactory builds AWS clients for one invocation.
type ClientFactory func(ctx context.Context, p awsclient.ConnectionParams) (*awsclient.ServiceClient, error)

// Runner executes modules under the host's contract: arguments come from a
// JSON file, and exactly one JSON object (result or failure) goes to Stdout.
type Runner struct {
	NewClient ClientFactory
	Stdout    io.Writer
}

func NewRunner(stdout io.Writer) *Runner {
	return &Runner{NewClient: awsclient.NewServiceClient, Stdout: stdout}
}

func (r *Runner) RunVIFFacts(ctx context.Context, argsPath string) error {
	result, err := r.vifFacts(ctx, argsPath)
	return r.finish(result, err)
}

func (r *Runner) RunVGWFacts(ctx context.Context, argsPath string) error {
	result, err := r.vgwFacts(ctx, argsPath)
	return r.finish(result, err)
}

func (r *Runner) vifFacts(ctx context.Context, argsPath string) (any, error) {
	f, err := os.Open(argsPath)
	if err != nil {
		return nil, fmt.Errorf("reading module arguments: %w", err)
	}
	defer f.Close()

	p, err := ParseVIFParams(f)
	if err != nil {
		return nil, err
	}

	client, err := r.connect(ctx, p.Connection)
	if err != nil {
		return nil, err
	}
	return ListVIFs(ctx, client.DirectConnect, directconnect.Filter{
		ConnectionID:       p.ConnectionID,
		VirtualInterfaceID: p.VirtualInterfaceID,
	})
}

func (r *Runner) vgwFacts(ctx context.Context, argsPath string) (any, error) {
	f, err := os.Open(argsPath)
	if err != nil {
		return nil, fmt.Errorf("reading module arguments: %w", err)
	}
	defer f.Close()

	p, err := ParseVGWParams(f)
	if err != nil {
		return nil, err
	}

	client, err := r.connect(ctx, p.Connection)
	if err != nil {
		return nil, err
	}
	return ListVGWs(ctx, client.VGW, vgw.Filter{
		Filters:       p.Filters,
		VPNGatewayIDs: p.VPNGatewayIDs,
		DryRun:        p.DryRun,
	})
}

func (r *Runner) connect(ctx context.Context, p awsclient.ConnectionParams) (*awsclient.ServiceClient, error) {
	client, err := r.NewClient(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("Can't authorize connection - %w", err)
	}
	return client, nil
}

func (r *Runner) finish(result any, err error) error {
	if err != nil {
		if werr := Fail(r.Stdout, err); werr != nil {
			return werr
		}
		return ErrFailed
	}
	return Exit(r.Stdout, result)
}
