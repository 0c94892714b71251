package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cmatfixture/driver"
	"github.com/katalvlaran/cmatfixture/fixture"
)

// run executes the command tree with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func render(t *testing.T, k fixture.Kind, opts ...driver.Option) string {
	t.Helper()

	data, err := driver.New(opts...).Render(context.Background(), k)
	require.NoError(t, err)

	return string(data)
}

func TestFamilies(t *testing.T) {
	out, err := run(t, "families")
	require.NoError(t, err)

	for _, k := range fixture.All() {
		assert.Contains(t, out, k.String())
	}
	assert.Contains(t, out, "2000")
	assert.Contains(t, out, "% 34.30f")
}

func TestGenerateStdout(t *testing.T) {
	out, err := run(t, "generate", "det", "--seed", "7", "--trials", "3", "--workers", "2")
	require.NoError(t, err)

	want := render(t, fixture.Determinant,
		driver.WithSeed(7), driver.WithTrials(fixture.Determinant, 3))
	assert.Equal(t, want, out)
}

func TestGenerateSeveralFamiliesInOrder(t *testing.T) {
	out, err := run(t, "generate", "transpose", "sub", "--seed", "3", "--trials", "2")
	require.NoError(t, err)

	want := render(t, fixture.Transpose, driver.WithSeed(3), driver.WithTrials(fixture.Transpose, 2)) +
		render(t, fixture.Sub, driver.WithSeed(3), driver.WithTrials(fixture.Sub, 2))
	assert.Equal(t, want, out)
}

func TestGenerateOutDir(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "generate", "mul", "dot", "-o", dir, "--trials", "2")
	require.NoError(t, err)
	assert.Empty(t, out)

	for _, k := range []fixture.Kind{fixture.Mul, fixture.Dot} {
		got, err := os.ReadFile(filepath.Join(dir, "test_"+k.String()+".h"))
		require.NoError(t, err)
		assert.Equal(t, render(t, k, driver.WithTrials(k, 2)), string(got))
	}
}

func TestGenerateEnvAndConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "cmatgen.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("seed: 11\ntrials: 4\n"), 0o600))

	out, err := run(t, "generate", "add", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, render(t, fixture.Add, driver.WithSeed(11), driver.WithTrials(fixture.Add, 4)), out)

	t.Setenv("CMATGEN_SEED", "12")
	out, err = run(t, "generate", "add", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, render(t, fixture.Add, driver.WithSeed(12), driver.WithTrials(fixture.Add, 4)), out)

	out, err = run(t, "generate", "add", "--config", cfg, "--seed", "13")
	require.NoError(t, err)
	assert.Equal(t, render(t, fixture.Add, driver.WithSeed(13), driver.WithTrials(fixture.Add, 4)), out)
}

func TestGenerateErrors(t *testing.T) {
	_, err := run(t, "generate", "cofactor")
	require.ErrorIs(t, err, fixture.ErrUnknownKind)

	_, err = run(t, "generate", "det", "--workers", "0")
	require.Error(t, err)

	_, err = run(t, "generate", "det", "--trials", "-1")
	require.Error(t, err)

	_, err = run(t, "generate", "det", "--log-level", "loud")
	require.Error(t, err)

	_, err = run(t, "generate", "det", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestParseKindsDefault(t *testing.T) {
	kinds, err := parseKinds(nil)
	require.NoError(t, err)
	assert.Equal(t, fixture.Standard(), kinds)

	kinds, err = parseKinds([]string{"Inverse-Precise", "product"})
	require.NoError(t, err)
	assert.Equal(t, []fixture.Kind{fixture.InversePrecise, fixture.Product}, kinds)
}

func TestProgressDisabledOffTerminal(t *testing.T) {
	assert.Nil(t, newProgress(&bytes.Buffer{}))

	out, err := run(t, "generate", "transpose", "--trials", "1", "--progress")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
