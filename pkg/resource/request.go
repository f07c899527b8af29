// Package resource describes the compute resources an expression asks a
// scheduler to reserve for it.
package resource

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNegative = errors.New("resource request must not be negative")

// Request is an immutable hint for a scheduler.  A field that is not set
// means the engine default applies.
type Request struct {
	cpus    int
	gpus    int
	hasCPUs bool
	hasGPUs bool
}

// Unset is the Request with no fields set.
var Unset Request

func (r Request) WithCPUs(n int) (Request, error) {
	if n < 0 {
		return r, fmt.Errorf("num_cpus %d: %w", n, ErrNegative)
	}
	r.cpus, r.hasCPUs = n, true
	return r, nil
}

func (r Request) WithGPUs(n int) (Request, error) {
	if n < 0 {
		return r, fmt.Errorf("num_gpus %d: %w", n, ErrNegative)
	}
	r.gpus, r.hasGPUs = n, true
	return r, nil
}

func (r Request) NumCPUs() (int, bool) {
	return r.cpus, r.hasCPUs
}

func (r Request) NumGPUs() (int, bool) {
	return r.gpus, r.hasGPUs
}

func (r Request) IsUnset() bool {
	return !r.hasCPUs && !r.hasGPUs
}

// Merge returns r with its unset fields taken from def.
func (r Request) Merge(def Request) Request {
	if r.IsUnset() {
		return def
	}
	if !r.hasCPUs {
		r.cpus, r.hasCPUs = def.cpus, def.hasCPUs
	}
	if !r.hasGPUs {
		r.gpus, r.hasGPUs = def.gpus, def.hasGPUs
	}
	return r
}

// Max returns the field-wise maximum of a and b.  A field set in either
// request is set in the result.
func Max(a, b Request) Request {
	if b.hasCPUs && (!a.hasCPUs || b.cpus > a.cpus) {
		a.cpus, a.hasCPUs = b.cpus, true
	}
	if b.hasGPUs && (!a.hasGPUs || b.gpus > a.gpus) {
		a.gpus, a.hasGPUs = b.gpus, true
	}
	return a
}

func (r Request) String() string {
	var fields []string
	if r.hasCPUs {
		fields = append(fields, fmt.Sprintf("num_cpus:%d", r.cpus))
	}
	if r.hasGPUs {
		fields = append(fields, fmt.Sprintf("num_gpus:%d", r.gpus))
	}
	return "{" + strings.Join(fields, ",") + "}"
}

type yamlRequest struct {
	NumCPUs *int `yaml:"num_cpus"`
	NumGPUs *int `yaml:"num_gpus"`
}

func (r *Request) UnmarshalYAML(unmarshal func(any) error) error {
	var y yamlRequest
	if err := unmarshal(&y); err != nil {
		return err
	}
	req := Unset
	var err error
	if y.NumCPUs != nil {
		if req, err = req.WithCPUs(*y.NumCPUs); err != nil {
			return err
		}
	}
	if y.NumGPUs != nil {
		if req, err = req.WithGPUs(*y.NumGPUs); err != nil {
			return err
		}
	}
	*r = req
	return nil
}
