package closer

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type namedCloser struct {
	name string
	fn   func(ctx context.Context) error
}

var (
	mu      sync.Mutex
	closers []namedCloser
	log     Logger
)

func SetLogger(l Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
}

func AddNamed(name string, fn func(ctx context.Context) error) {
	mu.Lock()
	defer mu.Unlock()
	closers = append(closers, namedCloser{name: name, fn: fn})
}

// CloseAll runs registered closers in reverse registration order.
// All closers run even if some fail; the first error is returned.
func CloseAll(ctx context.Context) error {
	mu.Lock()
	toClose := make([]namedCloser, len(closers))
	copy(toClose, closers)
	closers = nil
	mu.Unlock()

	var firstErr error
	for i := len(toClose) - 1; i >= 0; i-- {
		c := toClose[i]
		if err := c.fn(ctx); err != nil {
			if log != nil {
				log.Error(ctx, "failed to close resource",
					zap.String("name", c.name),
					zap.Error(err),
				)
			}
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if log != nil {
			log.Info(ctx, "closed", zap.String("name", c.name))
		}
	}

	return firstErr
}
