package loader

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/bububa/food-agents/components"
)

// S3 loads an image stored in a bucket
type S3 struct {
	bucket  string
	key     string
	client  *s3.Client
	maxSize int64
}

var _ Loader = (*S3)(nil)

type S3Option func(*S3)

func WithS3Bucket(bucket string) S3Option {
	return func(s *S3) {
		s.bucket = bucket
	}
}

func WithS3Key(key string) S3Option {
	return func(s *S3) {
		s.key = key
	}
}

// WithS3ObjectClient sets the client, one is built from the default AWS
// configuration when nil
func WithS3ObjectClient(clt *s3.Client) S3Option {
	return func(s *S3) {
		s.client = clt
	}
}

func WithS3MaxSize(size int64) S3Option {
	return func(s *S3) {
		s.maxSize = size
	}
}

// NewS3 creates a new S3 loader.
func NewS3(opts ...S3Option) *S3 {
	ret := &S3{maxSize: DefaultMaxSize}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// NewS3Client builds a client from the environment or shared AWS config
func NewS3Client(ctx context.Context, region string) (*s3.Client, error) {
	opts := make([]func(*config.LoadOptions) error, 0, 1)
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	return s3.NewFromConfig(awsCfg), nil
}

func (s *S3) Load(ctx context.Context) (*components.Image, error) {
	if s.bucket == "" || s.key == "" {
		return nil, errors.New("s3 bucket and key are required")
	}
	if s.client == nil {
		clt, err := NewS3Client(ctx, "")
		if err != nil {
			return nil, err
		}
		s.client = clt
	}
	headObjOutput, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object metadata: %w", err)
	}
	if size := aws.ToInt64(headObjOutput.ContentLength); s.maxSize > 0 && size > s.maxSize {
		return nil, fmt.Errorf("%w: s3://%s/%s is %d bytes", ErrTooLarge, s.bucket, s.key, size)
	}
	resp, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object from S3: %w", err)
	}
	defer resp.Body.Close()
	return readLimited(resp.Body, s.maxSize)
}
