// Package s3 provides a client for S3-compatible object storage.
//
// Besides plain object access it offers SecretSource, which serves single
// values (such as a TLS certificate and private key) stored as objects under
// a common prefix of a bucket.
package s3
