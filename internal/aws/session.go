package aws

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"tasnim.dev/dxfacts/internal/aws/upstream"
)

var (
	ErrNoRegion    = errors.New("no region configured")
	ErrPartialKeys = errors.New("an access key and a secret key must be given together")
)

// ConnectionParams are the region and credential settings handed to the SDK.
// Empty fields fall through to the SDK's default resolution chain.
type ConnectionParams struct {
	Profile         string
	Region          string
	EndpointURL     string
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	SkipTLSVerify   bool
}

func (p ConnectionParams) loadOptions() ([]func(*config.LoadOptions) error, error) {
	opts := []func(*config.LoadOptions) error{}
	if p.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(p.Profile))
	}
	if p.Region != "" {
		opts = append(opts, config.WithRegion(p.Region))
	}
	if p.EndpointURL != "" {
		opts = append(opts, config.WithBaseEndpoint(p.EndpointURL))
	}

	switch {
	case p.AccessKeyID != "" && p.SecretAccessKey != "":
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(p.AccessKeyID, p.SecretAccessKey, p.SessionToken),
		))
	case p.AccessKeyID != "" || p.SecretAccessKey != "":
		return nil, ErrPartialKeys
	}

	if p.SkipTLSVerify {
		client := awshttp.NewBuildableClient().WithTransportOptions(func(tr *http.Transport) {
			if tr.TLSClientConfig == nil {
				tr.TLSClientConfig = &tls.Config{}
			}
			tr.TLSClientConfig.InsecureSkipVerify = true
		})
		opts = append(opts, config.WithHTTPClient(client))
	}
	return opts, nil
}

// LoadConfig loads an AWS config from the given overrides. It fails before
// any network call when no region can be resolved.
func LoadConfig(ctx context.Context, p ConnectionParams) (aws.Config, error) {
	opts, err := p.loadOptions()
	if err != nil {
		return aws.Config{}, err
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("loading AWS config: %w", err)
	}
	if cfg.Region == "" {
		return aws.Config{}, ErrNoRegion
	}
	return cfg, nil
}

type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// Identity is the principal the resolved credentials belong to.
type Identity struct {
	Account string `json:"account" yaml:"account"`
	ARN     string `json:"arn" yaml:"arn"`
	UserID  string `json:"user_id" yaml:"user_id"`
}

func CallerIdentity(ctx context.Context, api STSAPI) (Identity, error) {
	out, err := api.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return Identity{}, upstream.Wrap("GetCallerIdentity", err)
	}
	return Identity{
		Account: aws.ToString(out.Account),
		ARN:     aws.ToString(out.Arn),
		UserID:  aws.ToString(out.UserId),
	}, nil
}
