package storage_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"furnidata-manager/core/storage"
	"furnidata-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
			Bucket:    "test-bucket",
			Object:    "gamedata/furnidata.xml",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTP", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "http://localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestReadObject(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", ctx, "assets", "gamedata/furnidata.xml", mock.Anything).
			Return(io.NopCloser(strings.NewReader("<furnidata/>")), nil)

		raw, err := storage.ReadObject(ctx, client, "assets", "gamedata/furnidata.xml")
		require.NoError(t, err)
		assert.Equal(t, "<furnidata/>", raw)
		client.AssertExpectations(t)
	})

	t.Run("NoSuchKey", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", ctx, "assets", "missing", mock.Anything).
			Return(nil, minio.ErrorResponse{Code: "NoSuchKey", Message: "The specified key does not exist."})

		_, err := storage.ReadObject(ctx, client, "assets", "missing")
		assert.ErrorIs(t, err, storage.ErrObjectNotFound)
	})

	t.Run("OtherError", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", ctx, "assets", "key", mock.Anything).
			Return(nil, errors.New("connection refused"))

		_, err := storage.ReadObject(ctx, client, "assets", "key")
		assert.ErrorContains(t, err, "connection refused")
		assert.NotErrorIs(t, err, storage.ErrObjectNotFound)
	})
}

func TestListKeys(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		client := new(mocks.Client)
		ch := make(chan minio.ObjectInfo, 2)
		ch <- minio.ObjectInfo{Key: "gamedata/furnidata.xml"}
		ch <- minio.ObjectInfo{Key: "gamedata/furnidata.txt"}
		close(ch)
		client.On("ListObjects", ctx, "assets", minio.ListObjectsOptions{Prefix: "gamedata/", Recursive: true}).
			Return((<-chan minio.ObjectInfo)(ch))

		keys, err := storage.ListKeys(ctx, client, "assets", "gamedata/")
		require.NoError(t, err)
		assert.Equal(t, []string{"gamedata/furnidata.xml", "gamedata/furnidata.txt"}, keys)
	})

	t.Run("Error", func(t *testing.T) {
		client := new(mocks.Client)
		ch := make(chan minio.ObjectInfo, 1)
		ch <- minio.ObjectInfo{Err: errors.New("access denied")}
		close(ch)
		client.On("ListObjects", ctx, "assets", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

		_, err := storage.ListKeys(ctx, client, "assets", "")
		assert.ErrorContains(t, err, "access denied")
	})
}
