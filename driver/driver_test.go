package driver_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/cmatfixture/constraint"
	"github.com/katalvlaran/cmatfixture/driver"
	"github.com/katalvlaran/cmatfixture/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceLengths(t *testing.T) {
	d := driver.New(driver.WithSeed(4), driver.WithWorkers(4))
	ctx := context.Background()

	for _, k := range fixture.All() {
		want := 100
		if k == fixture.InversePrecise {
			want = 2000
		}
		require.Equal(t, want, d.Trials(k))

		if k == fixture.InversePrecise || k == fixture.Inverse || k == fixture.Determinant {
			continue // covered with reduced dimensions below
		}
		recs, err := d.Generate(ctx, k)
		require.NoError(t, err, k.String())
		require.Len(t, recs, want)
		for _, r := range recs {
			require.Equal(t, k, r.Kind())
		}
	}
}

// TestSquareFamiliesFullLength keeps the full trial counts but caps the
// dimension so the exact inverses stay fast.
func TestSquareFamiliesFullLength(t *testing.T) {
	d := driver.New(driver.WithSeed(4), driver.WithWorkers(4), driver.WithMaxDim(5))
	ctx := context.Background()

	for _, k := range []fixture.Kind{fixture.Determinant, fixture.Inverse, fixture.InversePrecise} {
		recs, err := d.Generate(ctx, k)
		require.NoError(t, err, k.String())
		require.Len(t, recs, k.Trials())
	}
}

// TestWorkerCountDoesNotChangeOutput renders the same family with one and
// several workers and compares bytes.
func TestWorkerCountDoesNotChangeOutput(t *testing.T) {
	ctx := context.Background()
	for _, k := range []fixture.Kind{fixture.Dot, fixture.Inverse, fixture.Mul} {
		serial, err := driver.New(driver.WithSeed(77), driver.WithTrials(k, 30)).Render(ctx, k)
		require.NoError(t, err)
		parallel, err := driver.New(driver.WithSeed(77), driver.WithTrials(k, 30), driver.WithWorkers(8)).Render(ctx, k)
		require.NoError(t, err)
		require.Equal(t, string(serial), string(parallel), k.String())

		other, err := driver.New(driver.WithSeed(78), driver.WithTrials(k, 30)).Render(ctx, k)
		require.NoError(t, err)
		require.NotEqual(t, string(serial), string(other))
	}
}

func TestEmitWritesWholeSequence(t *testing.T) {
	d := driver.New(driver.WithTrials(fixture.Transpose, 3))

	var buf bytes.Buffer
	require.NoError(t, d.Emit(context.Background(), &buf, fixture.Transpose))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "typedef struct {\n"))
	assert.True(t, strings.HasSuffix(out, "  },\n};\n"))
	assert.Equal(t, 3, strings.Count(out, "\n  {\n"))
}

// TestEmitIsAtomic makes a retry-cap failure practically certain (1×1 draws,
// one attempt each, 500 trials) and checks nothing is written.
func TestEmitIsAtomic(t *testing.T) {
	d := driver.New(driver.WithRetryCap(1), driver.WithMaxDim(1), driver.WithTrials(fixture.Inverse, 500))

	var buf bytes.Buffer
	err := d.Emit(context.Background(), &buf, fixture.Inverse)
	require.ErrorIs(t, err, driver.ErrGeneration)
	require.ErrorIs(t, err, constraint.ErrRetriesExhausted)
	require.Zero(t, buf.Len())
}

func TestEmitAll(t *testing.T) {
	d := driver.New(
		driver.WithTrials(fixture.Sub, 2),
		driver.WithTrials(fixture.Dot, 2),
	)

	got := map[fixture.Kind]string{}
	sink := func(k fixture.Kind, data []byte) error {
		got[k] = string(data)
		return nil
	}
	require.NoError(t, d.EmitAll(context.Background(), sink, fixture.Sub, fixture.Dot))
	require.Len(t, got, 2)
	assert.Contains(t, got[fixture.Dot], "matrix_info_t op2;\n  float ans;")

	require.ErrorIs(t, d.EmitAll(context.Background(), sink), driver.ErrNoFamilies)

	boom := errors.New("boom")
	err := d.EmitAll(context.Background(), func(fixture.Kind, []byte) error { return boom }, fixture.Sub)
	require.ErrorIs(t, err, boom)
}

func TestProgressAndCancel(t *testing.T) {
	var last, calls int
	d := driver.New(
		driver.WithTrials(fixture.Transpose, 10),
		driver.WithWorkers(3),
		driver.WithProgress(func(k fixture.Kind, done, total int) {
			calls++
			last = done
			assert.Equal(t, 10, total)
		}),
	)
	_, err := d.Generate(context.Background(), fixture.Transpose)
	require.NoError(t, err)
	require.Equal(t, 10, calls)
	require.Equal(t, 10, last)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = d.Generate(ctx, fixture.Transpose)
	require.ErrorIs(t, err, context.Canceled)

	_, err = d.Generate(context.Background(), fixture.Kind(50))
	require.ErrorIs(t, err, fixture.ErrUnknownKind)
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { driver.WithTrials(fixture.Sub, 0) })
	require.Panics(t, func() { driver.WithTrials(fixture.Kind(99), 1) })
	require.Panics(t, func() { driver.WithWorkers(0) })
	require.Panics(t, func() { driver.WithRetryCap(0) })
	require.Panics(t, func() { driver.WithMaxDim(0) })
	require.Panics(t, func() { driver.WithLogger(nil) })
	require.Panics(t, func() { driver.WithProgress(nil) })
}
