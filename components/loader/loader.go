package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/bububa/food-agents/components"
)

// DefaultMaxSize is the largest image sent inline to a model
const DefaultMaxSize int64 = 20 << 20

// ErrTooLarge is returned for images above the configured size limit
var ErrTooLarge = errors.New("image too large")

// Loader fetches the photo to analyse
type Loader interface {
	Load(ctx context.Context) (*components.Image, error)
}

// Options shared by Open
type Options struct {
	httpClient HttpDoer
	s3Client   *s3.Client
	maxSize    int64
}

type Option func(*Options)

// WithHttpClient sets the client used for http and https sources
func WithHttpClient(clt HttpDoer) Option {
	return func(o *Options) {
		o.httpClient = clt
	}
}

// WithS3Client sets the client used for s3 sources
func WithS3Client(clt *s3.Client) Option {
	return func(o *Options) {
		o.s3Client = clt
	}
}

// WithMaxSize sets the size limit, DefaultMaxSize by default
func WithMaxSize(size int64) Option {
	return func(o *Options) {
		o.maxSize = size
	}
}

// New returns the Loader for source: an s3://bucket/key URI, an http(s)
// URL or a local path
func New(source string, opts ...Option) (Loader, error) {
	o := Options{maxSize: DefaultMaxSize}
	for _, opt := range opts {
		opt(&o)
	}
	switch {
	case strings.HasPrefix(source, "s3://"):
		u, err := url.Parse(source)
		if err != nil {
			return nil, fmt.Errorf("invalid s3 uri: %w", err)
		}
		key := strings.TrimPrefix(u.Path, "/")
		if u.Host == "" || key == "" {
			return nil, fmt.Errorf("invalid s3 uri: %s", source)
		}
		return NewS3(WithS3Bucket(u.Host), WithS3Key(key), WithS3ObjectClient(o.s3Client), WithS3MaxSize(o.maxSize)), nil
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return NewHttp(source, o.httpClient, o.maxSize), nil
	}
	return NewFile(source, o.maxSize), nil
}

// Open loads the image at source
func Open(ctx context.Context, source string, opts ...Option) (*components.Image, error) {
	l, err := New(source, opts...)
	if err != nil {
		return nil, err
	}
	return l.Load(ctx)
}

// readLimited reads r up to maxSize bytes and detects the image type
func readLimited(r io.Reader, maxSize int64) (*components.Image, error) {
	if maxSize <= 0 {
		return components.ReadImage(r)
	}
	data, err := io.ReadAll(io.LimitReader(r, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if int64(len(data)) > maxSize {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, maxSize)
	}
	return components.NewImage(data)
}
