// pkg/internal/adapter/s3tagstore/options.go
package s3tagstore

import (
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/joeydtaylor/wiremarker/pkg/internal/types"
)

// WithS3TagStoreDeps injects the AWS S3 client dependencies.
func WithS3TagStoreDeps(deps types.S3TagStoreDeps) types.S3TagStoreOption {
	return func(a types.S3TagStore) {
		a.SetS3TagStoreDeps(deps)
	}
}

// WithClient is a convenience for injecting just the client.
func WithClient(cli *s3.Client) types.S3TagStoreOption {
	return func(a types.S3TagStore) {
		a.SetS3TagStoreDeps(types.S3TagStoreDeps{Client: cli})
	}
}

// WithLogger attaches loggers to the store.
func WithLogger(l ...types.Logger) types.S3TagStoreOption {
	return func(a types.S3TagStore) {
		a.ConnectLogger(l...)
	}
}
