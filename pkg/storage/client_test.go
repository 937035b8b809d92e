package storage_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"droscher.com/WhiskyShelf/configs"
	"droscher.com/WhiskyShelf/mocks"
	"droscher.com/WhiskyShelf/pkg/storage"
)

var errUnavailable = errors.New("service unavailable")

type BucketSinkSuite struct {
	suite.Suite
	client       *mocks.StorageClient
	sink         *storage.BucketSink
	observedLogs *observer.ObservedLogs
}

func TestBucketSinkSuite(t *testing.T) {
	suite.Run(t, new(BucketSinkSuite))
}

func (suite *BucketSinkSuite) SetupTest() {
	suite.client = mocks.NewStorageClient(suite.T())
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs
	conf := configs.Storage{Bucket: "whisky-backups", Region: "eu-west-1"}
	suite.sink = storage.NewBucketSink(suite.client, conf, zap.New(observedZapCore))
}

func (suite *BucketSinkSuite) TestEnsureBucket_Exists() {
	ctx := context.Background()
	suite.client.EXPECT().BucketExists(ctx, "whisky-backups").Return(true, nil)

	suite.Require().NoError(suite.sink.EnsureBucket(ctx))
	suite.Equal(0, suite.observedLogs.Len())
}

func (suite *BucketSinkSuite) TestEnsureBucket_Creates() {
	ctx := context.Background()
	suite.client.EXPECT().BucketExists(ctx, "whisky-backups").Return(false, nil)
	suite.client.EXPECT().MakeBucket(ctx, "whisky-backups", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)

	suite.Require().NoError(suite.sink.EnsureBucket(ctx))
	suite.Equal(1, suite.observedLogs.FilterMessage("creating backup bucket").Len())
}

func (suite *BucketSinkSuite) TestEnsureBucket_Error() {
	ctx := context.Background()
	suite.client.EXPECT().BucketExists(ctx, "whisky-backups").Return(false, errUnavailable)

	err := suite.sink.EnsureBucket(ctx)
	suite.Require().ErrorIs(err, errUnavailable)
	suite.ErrorContains(err, "checking bucket whisky-backups")
}

func (suite *BucketSinkSuite) TestSave_UploadsWithContentType() {
	ctx := context.Background()
	data := []byte(`{"bottles":[]}`)

	var uploaded []byte

	suite.client.EXPECT().
		PutObject(ctx, "whisky-backups", "whisky-backup-1-20240301T030000Z.json", mock.Anything, int64(len(data)),
			minio.PutObjectOptions{ContentType: "application/json"}).
		Run(func(_ context.Context, _ string, _ string, reader io.Reader, _ int64, _ minio.PutObjectOptions) {
			uploaded, _ = io.ReadAll(reader)
		}).
		Return(minio.UploadInfo{ETag: "abc"}, nil)

	suite.Require().NoError(suite.sink.Save(ctx, "whisky-backup-1-20240301T030000Z.json", data))
	suite.Equal(data, uploaded)
}

func (suite *BucketSinkSuite) TestSave_UnknownExtension() {
	ctx := context.Background()
	suite.client.EXPECT().
		PutObject(ctx, "whisky-backups", "notes.txt", mock.Anything, int64(2),
			minio.PutObjectOptions{ContentType: "application/octet-stream"}).
		Return(minio.UploadInfo{}, errUnavailable)

	err := suite.sink.Save(ctx, "notes.txt", []byte("hi"))
	suite.Require().ErrorIs(err, errUnavailable)
	suite.ErrorContains(err, "uploading notes.txt")
}

func (suite *BucketSinkSuite) TestList() {
	ctx := context.Background()
	objects := make(chan minio.ObjectInfo, 2)
	objects <- minio.ObjectInfo{Key: "whisky-backup-1-a.csv"}
	objects <- minio.ObjectInfo{Key: "whisky-backup-1-b.csv"}
	close(objects)

	suite.client.EXPECT().ListObjects(ctx, "whisky-backups", minio.ListObjectsOptions{Prefix: "whisky-backup-1-"}).Return(objects)

	names, err := suite.sink.List(ctx, "whisky-backup-1-")
	suite.Require().NoError(err)
	suite.Equal([]string{"whisky-backup-1-a.csv", "whisky-backup-1-b.csv"}, names)
}

func (suite *BucketSinkSuite) TestList_Error() {
	ctx := context.Background()
	objects := make(chan minio.ObjectInfo, 1)
	objects <- minio.ObjectInfo{Err: errUnavailable}
	close(objects)

	suite.client.EXPECT().ListObjects(ctx, "whisky-backups", minio.ListObjectsOptions{Prefix: "x"}).Return(objects)

	names, err := suite.sink.List(ctx, "x")
	suite.Require().ErrorIs(err, errUnavailable)
	suite.Nil(names)
}

func (suite *BucketSinkSuite) TestRemove() {
	ctx := context.Background()
	suite.client.EXPECT().RemoveObject(ctx, "whisky-backups", "old.json", minio.RemoveObjectOptions{}).Return(nil)

	suite.Require().NoError(suite.sink.Remove(ctx, "old.json"))
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		conf    configs.Storage
		wantErr bool
	}{
		{name: "plain endpoint", conf: configs.Storage{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b"}},
		{name: "scheme is stripped", conf: configs.Storage{Endpoint: "https://s3.example.com", UseSSL: true}},
		{name: "endpoint with a path", conf: configs.Storage{Endpoint: "localhost:9000/backups"}, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			client, err := storage.NewClient(test.conf)
			if test.wantErr {
				require.Error(t, err)
				assert.Nil(t, client)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}
