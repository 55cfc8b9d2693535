// pkg/internal/types/tagstore.go
package types

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Tag is a single key/value label attached to a stored object. Order matters to
// callers; uniqueness of keys is enforced by the remote store on apply, not here.
type Tag struct {
	Key   string
	Value string
}

// ObjectTagStore is the port to the remote object store's tagging surface.
// Implementations must be safe for concurrent use. A blank versionID targets the
// current version of the object; a non-blank versionID targets that exact version.
type ObjectTagStore interface {
	GetObjectTags(ctx context.Context, bucket string, key string) ([]Tag, error)
	SetObjectTags(ctx context.Context, bucket string, key string, versionID string, tags []Tag) error
}

// S3TagStoreDeps carries the AWS client wiring for the S3-backed store.
type S3TagStoreDeps struct {
	Client *s3.Client // required; caller constructs (LocalStack, AWS, MinIO, etc.)
}

// S3TagStore is the S3-backed ObjectTagStore component, with the usual
// introspection and logging hooks.
type S3TagStore interface {
	ObjectTagStore

	SetS3TagStoreDeps(S3TagStoreDeps)

	ConnectLogger(...Logger)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
	Name() string
}

// S3TagStoreOption configures an S3TagStore.
type S3TagStoreOption func(S3TagStore)
