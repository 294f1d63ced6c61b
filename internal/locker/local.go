package locker

import (
	"context"
	"sync"
)

// LocalLocker serializes writers within one process.
type LocalLocker struct {
	mu    sync.Mutex
	locks map[string]chan struct{}
}

func (l *LocalLocker) Init(_ context.Context) error {
	l.locks = make(map[string]chan struct{})

	return nil
}

// Lock blocks until key is free or ctx is done. The returned context is
// cancelled when the lock is released.
func (l *LocalLocker) Lock(ctx context.Context, key string) (context.Context, context.CancelFunc, error) {
	ch := l.channel(key)

	select {
	case ch <- struct{}{}:
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	}

	lockCtx, cancel := context.WithCancel(ctx)

	var once sync.Once

	return lockCtx, func() {
		once.Do(func() {
			cancel()
			<-ch
		})
	}, nil
}

func (l *LocalLocker) channel(key string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.locks == nil {
		l.locks = make(map[string]chan struct{})
	}

	ch, ok := l.locks[key]
	if !ok {
		ch = make(chan struct{}, 1)
		l.locks[key] = ch
	}

	return ch
}
