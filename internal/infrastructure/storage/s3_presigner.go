package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"shootbook/internal/usecase/interfaces"
)

// S3Presigner signs GET URLs for objects in the video bucket.
type S3Presigner struct {
	presign *s3.PresignClient
	bucket  string
}

var _ interfaces.IVideoPresigner = (*S3Presigner)(nil)

// NewS3Presigner builds the presign client. A non-empty endpoint (MinIO,
// LocalStack) switches to path-style addressing.
func NewS3Presigner(awsCfg aws.Config, endpoint, bucket string) *S3Presigner {
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3Presigner{presign: s3.NewPresignClient(client), bucket: bucket}
}

func (p *S3Presigner) PresignGet(ctx context.Context, key string, expires time.Duration) (string, error) {
	req, err := p.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", fmt.Errorf("presign %s/%s: %w", p.bucket, key, err)
	}
	return req.URL, nil
}
