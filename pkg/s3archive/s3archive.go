package s3archive

import (
	"context"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/realpay-receipts/common/errs"
	"github.com/samber/lo"
)

type Config struct {
	Region string `mapstructure:"region"`
	Bucket string `mapstructure:"bucket"`
	Prefix string `mapstructure:"prefix"`

	// Endpoint overrides the AWS endpoint for S3-compatible storage (e.g. MinIO). Enables path-style addressing.
	Endpoint string `mapstructure:"endpoint"`
}

// API is the subset of the S3 client used by Archive.
type API interface {
	manager.UploadAPIClient
	manager.DownloadAPIClient
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// Archive stores snapshot files under a key prefix of one bucket.
type Archive struct {
	client API
	bucket string
	prefix string
}

// New creates an Archive using the default AWS credential chain.
func New(ctx context.Context, cfg Config) (*Archive, error) {
	if cfg.Bucket == "" {
		return nil, errors.Wrap(errs.InvalidArgument, "export.s3.bucket is required")
	}
	sdkConfig, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "can't load aws user config")
	}
	client := s3.NewFromConfig(sdkConfig, func(o *s3.Options) {
		if cfg.Region != "" {
			o.Region = cfg.Region
		}
		if cfg.Endpoint != "" {
			o.EndpointResolver = s3.EndpointResolverFromURL(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return NewWithClient(client, cfg), nil
}

func NewWithClient(client API, cfg Config) *Archive {
	return &Archive{
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
	}
}

// Key returns the object key for name.
func (a *Archive) Key(name string) string {
	return path.Join(a.prefix, name)
}

// Upload stores body under name and returns the object key.
func (a *Archive) Upload(ctx context.Context, name string, body io.Reader) (string, error) {
	key := a.Key(name)
	uploader := manager.NewUploader(a.client, func(u *manager.Uploader) {
		u.PartSize = 10 * 1024 * 1024
	})
	if _, err := uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
		Body:   body,
	}); err != nil {
		return "", errors.Wrapf(err, "failed to upload file for bucket %q and key %q", a.bucket, key)
	}
	return key, nil
}

// Download returns the content stored under key.
func (a *Archive) Download(ctx context.Context, key string) ([]byte, error) {
	downloader := manager.NewDownloader(a.client, func(d *manager.Downloader) {
		d.Concurrency = 4
		d.PartSize = 10 * 1024 * 1024
	})
	buffer := manager.NewWriteAtBuffer([]byte{})
	n, err := downloader.Download(ctx, buffer, &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to download file for bucket %q and key %q", a.bucket, key)
	}
	if n < 1 {
		return nil, errors.Wrap(errs.NotFound, "got empty file")
	}
	return buffer.Bytes(), nil
}

// List returns the keys of all archived objects.
func (a *Archive) List(ctx context.Context) ([]string, error) {
	result, err := a.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(a.bucket),
		Prefix: aws.String(a.prefix),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "can't list s3 bucket objects for bucket %q and prefix %q", a.bucket, a.prefix)
	}
	objs := lo.Filter(result.Contents, func(item s3types.Object, _ int) bool { return item.Key != nil })
	return lo.Map(objs, func(item s3types.Object, _ int) string { return *item.Key }), nil
}
