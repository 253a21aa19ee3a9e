package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"Int8 L2", []string{"compute", "-t", "int8", "-m", "l2", "1,2,3,4", "4,3,2,1"}, "20\n"},
		{"Float Cosine", []string{"compute", "-t", "float", "-m", "cosine", "1,0", "0,1"}, "1\n"},
		{"UInt8 InnerProduct", []string{"compute", "-t", "uint8", "-m", "ip", "1,2,3", "4,5,6"}, "64993\n"},
		{"Int16 Pinned", []string{"compute", "-t", "int16", "-l", "scalar", "1, 2, 3", "4, 5, 6"}, "27\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestComputeTierReport(t *testing.T) {
	_, stderr, err := run(t, "compute", "-t", "float", "-l", "sse", "1,2", "3,4")
	require.NoError(t, err)
	assert.Contains(t, stderr, "tier=sse")
	assert.Contains(t, stderr, "dim=2")
}

func TestComputeErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"Unknown Type", []string{"compute", "-t", "float64", "1", "1"}, "unsupported element type"},
		{"Unknown Metric", []string{"compute", "-m", "hamming", "1", "1"}, "unsupported metric"},
		{"Unknown Level", []string{"compute", "-l", "neon", "1", "1"}, "unsupported capability level"},
		{"Overflow", []string{"compute", "-t", "int8", "128", "1"}, "vector a"},
		{"Mismatch", []string{"compute", "1,2", "1"}, "dimension mismatch"},
		{"Missing Arg", []string{"compute", "1,2"}, "accepts 2 arg(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestTiers(t *testing.T) {
	out, _, err := run(t, "tiers", "-l", "avx", "-o", "json")
	require.NoError(t, err)

	var r capsReport
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "avx", r.Level)
	// Integer types need AVX2 for the 256-bit path.
	assert.Equal(t, "avx", r.Tiers["Float"])
	assert.Equal(t, "sse", r.Tiers["Int8"])
	assert.True(t, r.Features.AVX)
	assert.False(t, r.Features.AVX2)

	out, _, err = run(t, "tiers", "-l", "scalar", "-o", "yaml")
	require.NoError(t, err)
	var scalar capsReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &scalar))
	assert.Equal(t, "scalar", scalar.Level)
	assert.Equal(t, "naive", scalar.Tiers["UInt8"])
	assert.Equal(t, "naive", scalar.Tiers["Float"])

	out, _, err = run(t, "tiers", "-l", "avx512")
	require.NoError(t, err)
	assert.Contains(t, out, "Int16  -> avx512")

	_, _, err = run(t, "tiers", "-o", "xml")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestCaps(t *testing.T) {
	out, stderr, err := run(t, "caps", "-o", "json", "-v")
	require.NoError(t, err)

	var r capsReport
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.NotEmpty(t, r.Level)
	assert.Len(t, r.Tiers, 4)
	assert.Contains(t, stderr, "cpu capabilities")
	assert.Contains(t, stderr, "kernels selected")
}
