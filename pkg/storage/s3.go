package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// S3Client is the subset of the AWS S3 API the store uses. Narrowed to keep
// tests mockable without an AWS account.
type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

// S3Config contains configuration for the S3 document store.
type S3Config struct {
	Bucket         string `env:"S3_BUCKET"`
	Region         string `env:"AWS_REGION" envDefault:"ap-south-1"`
	AccessKeyID    string `env:"AWS_ACCESS_KEY_ID"`
	SecretKey      string `env:"AWS_SECRET_ACCESS_KEY"`
	Endpoint       string `env:"S3_ENDPOINT"`         // Optional: S3-compatible services
	ForcePathStyle bool   `env:"S3_FORCE_PATH_STYLE"` // For services like MinIO
	KeyPrefix      string `env:"S3_KEY_PREFIX"`       // Optional prefix for all documents
}

// S3 implements DocumentStore on Amazon S3 and S3-compatible services.
// Safe for concurrent use.
type S3 struct {
	client    S3Client
	bucket    string
	keyPrefix string
}

// S3Option configures the S3 store.
type S3Option func(*s3Options)

type s3Options struct {
	client S3Client
}

// WithS3Client sets a pre-configured client. Useful for testing with mocks
// and for sharing a client across stores.
func WithS3Client(client S3Client) S3Option {
	return func(o *s3Options) { o.client = client }
}

// NewS3 creates an S3-backed document store. Credentials fall back to the
// default AWS chain when not set explicitly.
func NewS3(ctx context.Context, cfg S3Config, opts ...S3Option) (*S3, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, ErrInvalidConfig
	}

	options := &s3Options{}
	for _, opt := range opts {
		opt(options)
	}

	client := options.client
	if client == nil {
		awsOptions := []func(*awsconfig.LoadOptions) error{
			awsconfig.WithRegion(cfg.Region),
		}
		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			awsOptions = append(awsOptions, awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
			))
		}

		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsOptions...)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToLoadAWSConfig, err)
		}

		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			if cfg.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			o.UsePathStyle = cfg.ForcePathStyle
		})
	}

	return &S3{
		client:    client,
		bucket:    cfg.Bucket,
		keyPrefix: cfg.KeyPrefix,
	}, nil
}

// Write uploads a document. S3 has no directories, so the path maps straight
// to an object key under the optional prefix.
func (s *S3) Write(ctx context.Context, path string, data []byte) error {
	key := s.key(path)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(http.DetectContentType(data)),
	})
	if err != nil {
		// Surface the service error code; the raw wrapped error buries it
		// under transport details.
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			return fmt.Errorf("%w: %s: %s", ErrFailedToWriteDocument, apiErr.ErrorCode(), apiErr.ErrorMessage())
		}
		return fmt.Errorf("%w: %v", ErrFailedToWriteDocument, err)
	}

	return nil
}

// Exists reports whether an object is present at the given path.
func (s *S3) Exists(ctx context.Context, path string) bool {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(path)),
	})
	return err == nil
}

func (s *S3) key(path string) string {
	if s.keyPrefix == "" {
		return path
	}
	return s.keyPrefix + "/" + path
}
