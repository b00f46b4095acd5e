package facades

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sbilibin2017/gw-mood-journal/internal/config"
	"github.com/sbilibin2017/gw-mood-journal/internal/logger"
)

// S3AudioFacade hands out short lived links to meditation audio stored in a bucket.
type S3AudioFacade struct {
	presigner *s3.PresignClient
	bucket    string
	prefix    string
	expires   time.Duration
}

// NewS3Client builds an S3 client from configuration. A custom endpoint switches
// to path-style addressing for MinIO and similar stores; static keys are used
// when set, otherwise the default AWS credential chain.
func NewS3Client(ctx context.Context, cfg config.S3Config) (*s3.Client, error) {
	loadOpts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		loadOpts = append(loadOpts, awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awscfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

func NewS3AudioFacade(client *s3.Client, bucket, prefix string, expires time.Duration) *S3AudioFacade {
	if expires <= 0 {
		expires = 15 * time.Minute
	}
	return &S3AudioFacade{
		presigner: s3.NewPresignClient(client),
		bucket:    bucket,
		prefix:    prefix,
		expires:   expires,
	}
}

// AudioURL returns a presigned GET URL for the audio file.
func (f *S3AudioFacade) AudioURL(ctx context.Context, file string) (string, error) {
	key := path.Join(f.prefix, file)
	req, err := f.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(f.expires))
	if err != nil {
		logger.Log.Errorw("failed to presign audio url", "bucket", f.bucket, "key", key, "error", err)
		return "", err
	}
	return req.URL, nil
}
