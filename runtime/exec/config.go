package exec

import (
	"fmt"
	"os"
	"runtime"

	"github.com/alecthomas/units"
	"github.com/brimdata/frame/pkg/logger"
	"github.com/brimdata/frame/pkg/resource"
	"github.com/goccy/go-yaml"
	sysmem "github.com/pbnjay/memory"
	"go.uber.org/zap"
)

// ErrorPolicy says what a Runner does when a partition fails.
type ErrorPolicy string

const (
	// Fail stops the run at the first failed partition.
	Fail ErrorPolicy = "fail"
	// Isolate records the failure on the partition's Result and keeps going.
	Isolate ErrorPolicy = "isolate"
)

type Config struct {
	Workers          int              `yaml:"workers"`
	CPUs             int              `yaml:"cpus"`
	OnError          ErrorPolicy      `yaml:"on_error"`
	DefaultResources resource.Request `yaml:"default_resources"`
	// MaxMemory bounds the Arrow memory held by all workers at once.
	// Zero means half of the system's memory.
	MaxMemory Bytes         `yaml:"max_memory"`
	Log       logger.Config `yaml:"log"`
}

// Bytes is a byte count written in YAML as an integer or with a unit,
// e.g., "512MiB" or "2GB".
type Bytes int64

func (b *Bytes) UnmarshalYAML(unmarshal func(any) error) error {
	var n int64
	if err := unmarshal(&n); err == nil {
		*b = Bytes(n)
		return nil
	}
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	v, err := units.ParseBase2Bytes(s)
	if err != nil {
		return fmt.Errorf("max_memory %q: %w", s, err)
	}
	*b = Bytes(v)
	return nil
}

func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return ParseConfig(b)
}

func ParseConfig(b []byte) (Config, error) {
	var c Config
	if err := yaml.UnmarshalWithOptions(b, &c, yaml.DisallowUnknownField()); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative: %d", c.Workers)
	}
	if c.CPUs < 0 {
		return fmt.Errorf("cpus must not be negative: %d", c.CPUs)
	}
	if c.MaxMemory < 0 {
		return fmt.Errorf("max_memory must not be negative: %d", c.MaxMemory)
	}
	switch c.OnError {
	case "", Fail, Isolate:
	default:
		return fmt.Errorf("unknown on_error policy %q", c.OnError)
	}
	return c.Log.Validate()
}

// OpenLogger returns the logger described by the log section.
func (c Config) OpenLogger() (*zap.Logger, error) {
	return logger.New(c.Log)
}

func (c Config) workers() int {
	if c.Workers == 0 {
		return runtime.GOMAXPROCS(0)
	}
	return c.Workers
}

func (c Config) cpus() int {
	if c.CPUs == 0 {
		return runtime.NumCPU()
	}
	return c.CPUs
}

// maxMemory returns the memory limit in bytes or zero if there is none.
func (c Config) maxMemory() int64 {
	if c.MaxMemory > 0 {
		return int64(c.MaxMemory)
	}
	return int64(sysmem.TotalMemory() / 2)
}

func (c Config) policy() ErrorPolicy {
	if c.OnError == "" {
		return Fail
	}
	return c.OnError
}
