package udf

import (
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/brimdata/frame/pkg/resource"
	"go.uber.org/zap"
)

type config struct {
	logger  *zap.Logger
	mem     memory.Allocator
	metrics *Metrics
	cpus    *int
	gpus    *int
	argmin  int
	argmax  int
}

func newConfig(opts []Option) config {
	c := config{argmin: -1, argmax: -1}
	for _, o := range opts {
		o(&c)
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	if c.mem == nil {
		c.mem = memory.DefaultAllocator
	}
	return c
}

func (c *config) resources() (resource.Request, error) {
	req := resource.Unset
	var err error
	if c.cpus != nil {
		if req, err = req.WithCPUs(*c.cpus); err != nil {
			return resource.Unset, err
		}
	}
	if c.gpus != nil {
		if req, err = req.WithGPUs(*c.gpus); err != nil {
			return resource.Unset, err
		}
	}
	return req, nil
}

type Option func(*config)

// WithCPUs requests n CPUs for each call.  The request is not enforced
// here; it is carried on every node built by the registration.
func WithCPUs(n int) Option {
	return func(c *config) {
		c.cpus = &n
	}
}

// WithGPUs requests n GPUs for each call.
func WithGPUs(n int) Option {
	return func(c *config) {
		c.gpus = &n
	}
}

// WithArity limits the number of positional arguments.  A bound of -1 is
// not checked.
func WithArity(argmin, argmax int) Option {
	return func(c *config) {
		c.argmin, c.argmax = argmin, argmax
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithAllocator sets the allocator used to build the Arrow arrays passed
// to user code.  The default is memory.DefaultAllocator.
func WithAllocator(mem memory.Allocator) Option {
	return func(c *config) {
		c.mem = mem
	}
}

func WithMetrics(m *Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}
