package resource

import (
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestUnset(t *testing.T) {
	_, ok := Unset.NumCPUs()
	assert.False(t, ok)
	_, ok = Unset.NumGPUs()
	assert.False(t, ok)
	assert.True(t, Unset.IsUnset())
	assert.Equal(t, "{}", Unset.String())
}

func TestRequestWith(t *testing.T) {
	r, err := Unset.WithCPUs(2)
	require.NoError(t, err)
	r, err = r.WithGPUs(0)
	require.NoError(t, err)
	n, ok := r.NumCPUs()
	assert.True(t, ok)
	assert.Equal(t, 2, n)
	n, ok = r.NumGPUs()
	assert.True(t, ok)
	assert.Equal(t, 0, n)
	assert.Equal(t, "{num_cpus:2,num_gpus:0}", r.String())
	// The receiver is a value so the original is unchanged.
	assert.True(t, Unset.IsUnset())

	_, err = r.WithCPUs(-1)
	assert.ErrorIs(t, err, ErrNegative)
	assert.EqualError(t, err, "num_cpus -1: resource request must not be negative")
}

func TestRequestMergeAndMax(t *testing.T) {
	def, _ := Unset.WithCPUs(1)
	def, _ = def.WithGPUs(0)
	gpu, _ := Unset.WithGPUs(2)
	assert.Equal(t, "{num_cpus:1,num_gpus:2}", gpu.Merge(def).String())
	assert.Equal(t, def, Unset.Merge(def))
	assert.Equal(t, gpu, gpu.Merge(Unset))

	cpus4, _ := Unset.WithCPUs(4)
	assert.Equal(t, "{num_cpus:4,num_gpus:2}", Max(gpu, cpus4).String())
	assert.Equal(t, "{num_cpus:4}", Max(Unset, cpus4).String())
	assert.Equal(t, "{num_cpus:4}", Max(cpus4, mustCPUs(t, 1)).String())
}

func mustCPUs(t *testing.T, n int) Request {
	r, err := Unset.WithCPUs(n)
	require.NoError(t, err)
	return r
}

func TestRequestYAML(t *testing.T) {
	var r Request
	require.NoError(t, yaml.Unmarshal([]byte("num_cpus: 3\n"), &r))
	assert.Equal(t, "{num_cpus:3}", r.String())

	err := yaml.Unmarshal([]byte("num_gpus: -2\n"), &r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrNegative.Error())
}
