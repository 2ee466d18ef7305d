// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vechain/detshuffle/entropy"
	"github.com/vechain/detshuffle/metrics"
)

const vrfOutput = "0x3f1e4d2c5b6a79880f1e2d3c4b5a69788796a5b4c3d2e1f00112233445566778"

// All runs share one process, so the provider is chosen up front the way a
// --metrics run does before its first shuffle.
func TestMain(m *testing.M) {
	metrics.InitializePrometheusMetrics()
	os.Exit(m.Run())
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	err := app.Run(append([]string{"detshuffle", "--verbosity", "0"}, args...))
	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunMetrics(t *testing.T) {
	out, err := run(t, "--size", "5", vrfOutput)
	require.NoError(t, err)
	assert.NotContains(t, out, "detshuffle_shuffle_count")

	out, err = run(t, "--metrics", "--size", "5", vrfOutput, "0x1")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, vrfOutput+" 5,2,4,1,3", lines[0])
	assert.Contains(t, out, "# TYPE detshuffle_shuffle_count counter")
	assert.Contains(t, out, "detshuffle_shuffle_size_count")
}

func TestRunFlags(t *testing.T) {
	out, err := run(t, "--entropy", vrfOutput, "--size", "5")
	require.NoError(t, err)
	assert.Equal(t, vrfOutput+" 5,2,4,1,3\n", out)
}

func TestRunArgs(t *testing.T) {
	out, err := run(t, "--size", "10", "--trace", vrfOutput, "0x1")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, vrfOutput+" 8,10,6,5,9,7,4,3,1,2", lines[0])
	assert.Equal(t, entropy.MustParse("0x1").String()+" 5,8,10,6,7,9,4,2,3,1", lines[1])
}

func TestRunItems(t *testing.T) {
	out, err := run(t, "--items", "a,b,c,d,e", vrfOutput)
	require.NoError(t, err)
	assert.Equal(t, vrfOutput+" e,b,d,a,c\n", out)

	_, err = run(t, "--items", "a,b,c", "--size", "5", vrfOutput)
	assert.ErrorContains(t, err, "does not match")
}

func TestRunConfig(t *testing.T) {
	path := writeConfig(t, "entropy:\n  - \""+vrfOutput+"\"\n  - \"12345\"\nsize: 8\n")

	out, err := run(t, "--config", path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, entropy.MustParse("12345").String()+" 8,4,7,6,3,5,2,1", lines[1])

	// flags override the file
	out, err = run(t, "--config", path, "--size", "5", "--entropy", vrfOutput)
	require.NoError(t, err)
	assert.Equal(t, vrfOutput+" 5,2,4,1,3\n", out)
}

func TestRunConfigItems(t *testing.T) {
	path := writeConfig(t, "entropy: [\""+vrfOutput+"\"]\nitems: [t1, t2, t3, t4, t5]\n")
	out, err := run(t, "--config", path)
	require.NoError(t, err)
	assert.Equal(t, vrfOutput+" t5,t2,t4,t1,t3\n", out)
}

func TestRunErrors(t *testing.T) {
	_, err := run(t, "--size", "5")
	assert.ErrorContains(t, err, "no entropy")

	_, err = run(t, vrfOutput)
	assert.ErrorContains(t, err, "size is required")

	_, err = run(t, "--size", "5", "0xzz")
	assert.True(t, errors.Is(err, entropy.ErrInvalidEntropyEncoding))

	_, err = run(t, "--size=-1", vrfOutput)
	assert.ErrorContains(t, err, "invalid size")

	_, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")

	path := writeConfig(t, "entropy: [\"0xnothex\"]\nsize: 3\n")
	_, err = run(t, "--config", path)
	assert.ErrorContains(t, err, "decode config")
}

func TestFormatPerm(t *testing.T) {
	assert.Equal(t, "", formatPerm(nil))
	assert.Equal(t, "1", formatPerm([]int{1}))
	assert.Equal(t, "3,1,2", formatPerm([]int{3, 1, 2}))
}
