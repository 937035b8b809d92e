// Package storage keeps backup files in an S3 compatible object store.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"droscher.com/WhiskyShelf/configs"
	"droscher.com/WhiskyShelf/pkg/formats"
)

// Client is the part of the object store API the sink uses.
type Client interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

const (
	keepAlive           = 30 * time.Second
	idleConnTimeout     = 90 * time.Second
	maxIdleConns        = 10
	defaultTimeout      = 30 * time.Second
	expectContinueDelay = time.Second
)

func NewClient(conf configs.Storage) (Client, error) {
	endpoint := strings.TrimPrefix(conf.Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	timeout := conf.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: keepAlive,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          maxIdleConns,
		IdleConnTimeout:       idleConnTimeout,
		TLSHandshakeTimeout:   timeout,
		ExpectContinueTimeout: expectContinueDelay,
		ResponseHeaderTimeout: timeout,
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(conf.AccessKey, conf.SecretKey, ""),
		Secure:    conf.UseSSL,
		Region:    conf.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object store client: %w", err)
	}

	return client, nil
}

// BucketSink stores every backup as one object in a bucket.
type BucketSink struct {
	client Client
	bucket string
	region string
	logger *zap.Logger
}

func NewBucketSink(client Client, conf configs.Storage, logger *zap.Logger) *BucketSink {
	return &BucketSink{client: client, bucket: conf.Bucket, region: conf.Region, logger: logger}
}

// EnsureBucket creates the bucket when it does not exist yet.
func (s *BucketSink) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("checking bucket %s: %w", s.bucket, err)
	}

	if exists {
		return nil
	}

	s.logger.Info("creating backup bucket", zap.String("bucket", s.bucket))

	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
		return fmt.Errorf("creating bucket %s: %w", s.bucket, err)
	}

	return nil
}

func (s *BucketSink) Save(ctx context.Context, name string, data []byte) error {
	info, err := s.client.PutObject(ctx, s.bucket, name, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType(name)})
	if err != nil {
		return fmt.Errorf("uploading %s: %w", name, err)
	}

	s.logger.Debug("uploaded backup", zap.String("bucket", s.bucket), zap.String("object", name), zap.String("etag", info.ETag))

	return nil
}

func (s *BucketSink) List(ctx context.Context, prefix string) ([]string, error) {
	var names []string

	for object := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix}) {
		if object.Err != nil {
			return nil, fmt.Errorf("listing %s: %w", s.bucket, object.Err)
		}

		names = append(names, object.Key)
	}

	return names, nil
}

func (s *BucketSink) Remove(ctx context.Context, name string) error {
	return s.client.RemoveObject(ctx, s.bucket, name, minio.RemoveObjectOptions{})
}

func contentType(name string) string {
	format, err := formats.Detect(name)
	if err != nil {
		return "application/octet-stream"
	}

	codec, err := formats.For(format)
	if err != nil {
		return "application/octet-stream"
	}

	return codec.ContentType()
}
