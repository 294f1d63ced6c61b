package core

import "context"

//go:generate go tool mockery
type Locker interface {
	Lock(ctx context.Context, key string) (context.Context, context.CancelFunc, error)
}

// Uploader publishes a result file written to the local results folder.
type Uploader interface {
	Upload(ctx context.Context, objectName, filename string) error
}
