package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/you-humble/knowledge-archive/platform/logger"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...logger.Field)
	Error(ctx context.Context, msg string, fields ...logger.Field)
}

type namedFn struct {
	name string
	fn   func(ctx context.Context) error
}

// Closer runs registered shutdown functions in reverse registration order.
type Closer struct {
	mu     sync.Mutex
	once   sync.Once
	funcs  []namedFn
	logger Logger
}

var globalCloser = New()

func New() *Closer {
	return &Closer{logger: logger.NoopLogger{}}
}

func SetLogger(l Logger) { globalCloser.SetLogger(l) }

func Add(fn func(ctx context.Context) error) { globalCloser.AddNamed("", fn) }

func AddNamed(name string, fn func(ctx context.Context) error) { globalCloser.AddNamed(name, fn) }

func CloseAll(ctx context.Context) error { return globalCloser.CloseAll(ctx) }

func (c *Closer) SetLogger(l Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger = l
}

func (c *Closer) AddNamed(name string, fn func(ctx context.Context) error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.funcs = append(c.funcs, namedFn{name: name, fn: fn})
}

// CloseAll is idempotent: only the first call runs the registered functions.
func (c *Closer) CloseAll(ctx context.Context) error {
	var result error

	c.once.Do(func() {
		c.mu.Lock()
		funcs := c.funcs
		c.funcs = nil
		log := c.logger
		c.mu.Unlock()

		var errs []error
		for i := len(funcs) - 1; i >= 0; i-- {
			f := funcs[i]
			if err := ctx.Err(); err != nil {
				errs = append(errs, fmt.Errorf("closer: %s: %w", f.name, err))
				continue
			}

			if err := f.fn(ctx); err != nil {
				log.Error(ctx, "❌ failed to close", logger.String("name", f.name), logger.ErrorF(err))
				errs = append(errs, fmt.Errorf("closer: %s: %w", f.name, err))
				continue
			}
			log.Info(ctx, "✅ closed", logger.String("name", f.name))
		}

		result = errors.Join(errs...)
	})

	return result
}
