// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a narrow, read-only Client interface so
// furnidata payloads mirrored into a bucket can be decoded like remote ones, and
// so storage interactions can be mocked in tests (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - GetObject / ReadObject: Retrieves a payload as a stream or as text.
//   - ListObjects / ListKeys: Lists objects under a prefix.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	raw, err := storage.ReadObject(ctx, client, cfg.Storage.Bucket, "gamedata/furnidata.xml")
package storage
