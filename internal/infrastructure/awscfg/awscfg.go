package awscfg

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"

	appconfig "shootbook/internal/infrastructure/config"
)

// Load builds the aws.Config shared by the DynamoDB and S3 clients.
//
// Static credentials are used when both keys are configured (local DynamoDB
// and MinIO accept any pair). Otherwise the SDK's default credential chain
// applies: environment, shared config, then instance or task roles.
func Load(ctx context.Context, cfg appconfig.Config) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.AWSRegion),
	}
	if cfg.AWSAccessKeyID != "" && cfg.AWSSecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, ""),
		))
	}
	return config.LoadDefaultConfig(ctx, opts...)
}
