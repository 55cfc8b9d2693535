// pkg/internal/adapter/s3tagstore/s3tagstore.go
package s3tagstore

import (
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/joeydtaylor/wiremarker/pkg/internal/types"
	"github.com/joeydtaylor/wiremarker/pkg/internal/utils"
)

// S3TagStore is the S3-backed ObjectTagStore. It owns no object lifecycle and
// no retry policy; it issues the two tagging calls and surfaces service errors
// unchanged. The injected *s3.Client is shared with other adapters and is safe
// for concurrent use.
type S3TagStore struct {
	componentMetadata types.ComponentMetadata

	loggers     []types.Logger
	loggersLock sync.Mutex

	cli *s3.Client
}

// NewS3TagStore constructs the store and applies options.
func NewS3TagStore(options ...types.S3TagStoreOption) types.S3TagStore {
	a := &S3TagStore{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "S3_TAG_STORE",
		},
		loggers: make([]types.Logger, 0),
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(a)
	}

	return a
}

// SetS3TagStoreDeps injects the AWS S3 client dependency.
func (a *S3TagStore) SetS3TagStoreDeps(d types.S3TagStoreDeps) {
	a.cli = d.Client
}

func (a *S3TagStore) Name() string { return "S3_TAG_STORE" }

func (a *S3TagStore) GetComponentMetadata() types.ComponentMetadata { return a.componentMetadata }

func (a *S3TagStore) SetComponentMetadata(name string, id string) {
	a.componentMetadata.Name = name
	a.componentMetadata.ID = id
}

func (a *S3TagStore) ConnectLogger(l ...types.Logger) {
	a.loggersLock.Lock()
	defer a.loggersLock.Unlock()
	a.loggers = append(a.loggers, l...)
}

func (a *S3TagStore) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	a.loggersLock.Lock()
	defer a.loggersLock.Unlock()
	for _, logger := range a.loggers {
		if logger == nil || logger.GetLevel() > level {
			continue
		}
		switch level {
		case types.DebugLevel:
			logger.Debug(msg, keysAndValues...)
		case types.InfoLevel:
			logger.Info(msg, keysAndValues...)
		case types.WarnLevel:
			logger.Warn(msg, keysAndValues...)
		case types.ErrorLevel:
			logger.Error(msg, keysAndValues...)
		case types.DPanicLevel:
			logger.DPanic(msg, keysAndValues...)
		case types.PanicLevel:
			logger.Panic(msg, keysAndValues...)
		case types.FatalLevel:
			logger.Fatal(msg, keysAndValues...)
		}
	}
}
