// pkg/builder/tagstore.go
package builder

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/joeydtaylor/wiremarker/pkg/internal/adapter/s3tagstore"
	"github.com/joeydtaylor/wiremarker/pkg/internal/types"
)

////////////////////////
// Store constructor  +
////////////////////////

// NewS3TagStore creates the S3-backed ObjectTagStore.
func NewS3TagStore(options ...types.S3TagStoreOption) types.S3TagStore {
	return s3tagstore.NewS3TagStore(options...)
}

func S3TagStoreWithDeps(deps types.S3TagStoreDeps) types.S3TagStoreOption {
	return s3tagstore.WithS3TagStoreDeps(deps)
}

// S3TagStoreWithClient injects an AWS client without exposing internal types.
func S3TagStoreWithClient(cli *s3.Client) types.S3TagStoreOption {
	return s3tagstore.WithClient(cli)
}

func S3TagStoreWithLogger(l ...types.Logger) types.S3TagStoreOption {
	return s3tagstore.WithLogger(l...)
}

/////////////////////////////////////////////
// Compliant S3 client constructors (no env)
/////////////////////////////////////////////

// sharedResolver returns an endpoint resolver that maps BOTH S3 and STS to the same override.
func sharedResolver(endpoint string) aws.EndpointResolverWithOptionsFunc {
	return aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
		switch service {
		case s3.ServiceID, sts.ServiceID:
			return aws.Endpoint{URL: endpoint, HostnameImmutable: true}, nil
		default:
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		}
	})
}

// NewS3ClientStatic creates an S3 client using static credentials.
// If endpoint != "", it's used (LocalStack/MinIO). forcePathStyle=true for emulators.
func NewS3ClientStatic(
	ctx context.Context,
	region string,
	accessKey string,
	secretKey string,
	sessionToken string, // "" if none
	endpoint string, // "" for AWS
	forcePathStyle bool,
) (*s3.Client, error) {
	var loaders []func(*config.LoadOptions) error
	if region != "" {
		loaders = append(loaders, config.WithRegion(region))
	}
	loaders = append(loaders, config.WithCredentialsProvider(
		credentials.NewStaticCredentialsProvider(accessKey, secretKey, sessionToken),
	))
	if endpoint != "" {
		loaders = append(loaders, config.WithEndpointResolverWithOptions(sharedResolver(endpoint)))
	}
	cfg, err := config.LoadDefaultConfig(ctx, loaders...)
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(cfg, func(o *s3.Options) { o.UsePathStyle = forcePathStyle }), nil
}

// NewS3ClientAssumeRole creates an S3 client by assuming an IAM role via STS.
// sourceCreds: underlying creds to call STS (static keys, SSO, etc.). If nil, default chain.
// externalID optional. duration capped by role MaxSessionDuration.
func NewS3ClientAssumeRole(
	ctx context.Context,
	region string,
	roleARN string,
	sessionName string,
	duration time.Duration,
	externalID string,
	sourceCreds aws.CredentialsProvider, // nil => default provider chain
	endpoint string, // optional S3/STS endpoint override
	forcePathStyle bool,
) (*s3.Client, error) {
	var loaders []func(*config.LoadOptions) error
	if region != "" {
		loaders = append(loaders, config.WithRegion(region))
	}
	if sourceCreds != nil {
		loaders = append(loaders, config.WithCredentialsProvider(sourceCreds))
	}
	if endpoint != "" {
		loaders = append(loaders, config.WithEndpointResolverWithOptions(sharedResolver(endpoint)))
	}
	baseCfg, err := config.LoadDefaultConfig(ctx, loaders...)
	if err != nil {
		return nil, err
	}

	// STS client also uses the same resolver (so it doesn't go to real AWS).
	stsClient := sts.NewFromConfig(baseCfg)

	provider := stscreds.NewAssumeRoleProvider(stsClient, roleARN, func(o *stscreds.AssumeRoleOptions) {
		if sessionName != "" {
			o.RoleSessionName = sessionName
		}
		if duration > 0 {
			o.Duration = duration
		}
		if externalID != "" {
			o.ExternalID = &externalID
		}
	})

	assumed := baseCfg
	assumed.Credentials = aws.NewCredentialsCache(provider)

	return s3.NewFromConfig(assumed, func(o *s3.Options) { o.UsePathStyle = forcePathStyle }), nil
}

// NewS3ClientWebIdentity assumes a role using an OIDC/WebIdentity token file (e.g., EKS IRSA).
func NewS3ClientWebIdentity(
	ctx context.Context,
	region string,
	roleARN string,
	sessionName string,
	tokenFile string,
	duration time.Duration,
	endpoint string, // optional S3/STS endpoint override
	forcePathStyle bool,
) (*s3.Client, error) {
	var loaders []func(*config.LoadOptions) error
	if region != "" {
		loaders = append(loaders, config.WithRegion(region))
	}
	if endpoint != "" {
		loaders = append(loaders, config.WithEndpointResolverWithOptions(sharedResolver(endpoint)))
	}
	cfg, err := config.LoadDefaultConfig(ctx, loaders...)
	if err != nil {
		return nil, err
	}
	stsClient := sts.NewFromConfig(cfg)
	provider := stscreds.NewWebIdentityRoleProvider(
		stsClient,
		roleARN,
		stscreds.IdentityTokenFile(tokenFile),
		func(o *stscreds.WebIdentityRoleOptions) {
			if sessionName != "" {
				o.RoleSessionName = sessionName
			}
			if duration > 0 {
				o.Duration = duration
			}
		},
	)

	assumed := cfg
	assumed.Credentials = aws.NewCredentialsCache(provider)

	return s3.NewFromConfig(assumed, func(o *s3.Options) { o.UsePathStyle = forcePathStyle }), nil
}

// LocalstackS3AssumeRoleConfig sets up defaults for LocalStack assume-role clients.
type LocalstackS3AssumeRoleConfig struct {
	RoleARN      string
	SessionName  string
	Region       string
	Duration     time.Duration
	ExternalID   string
	Endpoint     string
	AccessKey    string
	SecretKey    string
	SessionToken string
}

// NewS3ClientAssumeRoleLocalstack builds an assume-role S3 client with LocalStack defaults.
func NewS3ClientAssumeRoleLocalstack(ctx context.Context, cfg LocalstackS3AssumeRoleConfig) (*s3.Client, error) {
	if cfg.RoleARN == "" {
		return nil, fmt.Errorf("role ARN is required")
	}
	if cfg.SessionName == "" {
		cfg.SessionName = "wiremarker"
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}
	if cfg.Duration == 0 {
		cfg.Duration = 15 * time.Minute
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = "http://localhost:4566"
	}
	if cfg.AccessKey == "" {
		cfg.AccessKey = "test"
	}
	if cfg.SecretKey == "" {
		cfg.SecretKey = "test"
	}

	creds := aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, cfg.SessionToken))
	return NewS3ClientAssumeRole(
		ctx,
		cfg.Region,
		cfg.RoleARN,
		cfg.SessionName,
		cfg.Duration,
		cfg.ExternalID,
		creds,
		cfg.Endpoint,
		true,
	)
}
