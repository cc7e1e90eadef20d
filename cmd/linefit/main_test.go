package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestParsePredictList(t *testing.T) {
	tests := []struct {
		in      string
		want    []float64
		wantErr bool
	}{
		{in: "", want: nil},
		{in: "  ", want: nil},
		{in: "1", want: []float64{1}},
		{in: "1, 2.5,-3", want: []float64{1, 2.5, -3}},
		{in: "1,,2", wantErr: true},
		{in: "1,abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePredictList(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRun_Input(t *testing.T) {
	path := writeCSV(t, "x,y\n0,3\n2,2\n4,1\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-input", path, "-predict", "6,10"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	out := stdout.String()
	assert.Contains(t, out, "Equation:  y = -1/2x + 3\n")
	assert.Contains(t, out, "X range:   [0, 4]\n")
	assert.Contains(t, out, "Y range:   [1, 3]\n")
	assert.Contains(t, out, "Line:      (0, 3) -> (4, 1)\n")
	assert.Contains(t, out, "Predict:   (6, 0)\n")
	assert.Contains(t, out, "Predict:   (10, -2)\n")
}

func TestRun_LaTeX(t *testing.T) {
	path := writeCSV(t, "0,-0.25\n2,2.75\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-input", path, "-latex"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), `Equation:  y = \frac{3}{2}x - \frac{1}{4}`)
}

func TestRun_SnapshotRestore(t *testing.T) {
	path := writeCSV(t, "1,2\n2,4\n3,6\n")
	snap := filepath.Join(t.TempDir(), "data.lfs")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-input", path, "-snapshot", snap, "-compression", "lz4", "-verbose"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "Snapshot written to "+snap+" (LZ4)")

	stdout.Reset()
	code = run([]string{"-restore", snap, "-predict", "5"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "Equation:  y = 2x\n")
	assert.Contains(t, stdout.String(), "Predict:   (5, 10)\n")
}

func TestRun_Errors(t *testing.T) {
	valid := writeCSV(t, "1,2\n2,4\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no source", args: nil, want: "exactly one of -input or -restore"},
		{name: "both sources", args: []string{"-input", valid, "-restore", valid}, want: "exactly one of -input or -restore"},
		{name: "bad predict", args: []string{"-input", valid, "-predict", "x"}, want: "-predict"},
		{name: "bad compression", args: []string{"-input", valid, "-compression", "brotli"}, want: "-compression"},
		{name: "degenerate", args: []string{"-input", writeCSV(t, "1,2\n1,4\n")}, want: "degenerate"},
		{name: "no rows", args: []string{"-input", writeCSV(t, "a,b\n")}, want: "insufficient"},
		{name: "bad snapshot", args: []string{"-restore", valid}, want: "snapshot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, &stdout, &stderr)
			assert.Equal(t, 1, code)
			assert.Contains(t, stderr.String(), tt.want)
		})
	}
}
