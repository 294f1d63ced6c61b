package locker

import (
	"context"

	"github.com/redis/rueidis"
	"github.com/redis/rueidis/rueidislock"
	"github.com/zhulik/wildkmp/internal/core"
)

// RedisLocker serializes writers across processes sharing a results folder.
type RedisLocker struct {
	Config *core.Config

	locker rueidislock.Locker
}

func (l *RedisLocker) Init(_ context.Context) error {
	locker, err := rueidislock.NewLocker(rueidislock.LockerOption{
		ClientOption:   rueidis.ClientOption{InitAddress: []string{l.Config.RedisAddress}},
		KeyPrefix:      "wildkmp",
		KeyMajority:    1,
		NoLoopTracking: true,
	})
	if err != nil {
		return err
	}

	l.locker = locker

	return nil
}

func (l *RedisLocker) Shutdown(_ context.Context) error {
	l.locker.Close()

	return nil
}

func (l *RedisLocker) Lock(ctx context.Context, key string) (context.Context, context.CancelFunc, error) {
	return l.locker.WithContext(ctx, key)
}
