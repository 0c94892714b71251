package main

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cmatfixture/driver"
	"github.com/katalvlaran/cmatfixture/fixture"
	"github.com/katalvlaran/cmatfixture/internal/outfile"
	"github.com/katalvlaran/cmatfixture/sampler"
)

func newGenerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [families...]",
		Short: "Generate fixture headers (default: det dot inverse inverse_precise mul sub transpose)",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds, err := parseKinds(args)
			if err != nil {
				return err
			}

			return a.generate(cmd, kinds)
		},
	}

	f := cmd.Flags()
	f.Int64(keySeed, sampler.DefaultSeed, "root seed; the same seed reproduces the same files")
	f.Int(keyTrials, 0, "records per family (0: family default)")
	f.Int(keyWorkers, runtime.GOMAXPROCS(0), "concurrent trial generators")
	f.Int(keyRetryCap, 0, "rejection-sampling attempts per trial (0: default)")
	f.StringP(keyOutDir, "o", "", "write <dir>/test_<family>.h instead of stdout")
	f.Bool(keyProgress, false, "show live progress on a terminal")

	return cmd
}

// parseKinds maps family names to kinds; no names selects the standard set.
func parseKinds(args []string) ([]fixture.Kind, error) {
	if len(args) == 0 {
		return fixture.Standard(), nil
	}

	kinds := make([]fixture.Kind, 0, len(args))
	for _, name := range args {
		k, err := fixture.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}

	return kinds, nil
}

// driverOptions translates resolved configuration into driver options.
func (a *app) driverOptions(kinds []fixture.Kind) ([]driver.Option, error) {
	opts := []driver.Option{
		driver.WithSeed(a.v.GetInt64(keySeed)),
		driver.WithLogger(a.logger),
	}

	workers := a.v.GetInt(keyWorkers)
	if workers < 1 {
		return nil, fmt.Errorf("--%s=%d: must be at least 1", keyWorkers, workers)
	}
	opts = append(opts, driver.WithWorkers(workers))

	switch n := a.v.GetInt(keyTrials); {
	case n < 0:
		return nil, fmt.Errorf("--%s=%d: must not be negative", keyTrials, n)
	case n > 0:
		for _, k := range kinds {
			opts = append(opts, driver.WithTrials(k, n))
		}
	}

	switch n := a.v.GetInt(keyRetryCap); {
	case n < 0:
		return nil, fmt.Errorf("--%s=%d: must not be negative", keyRetryCap, n)
	case n > 0:
		opts = append(opts, driver.WithRetryCap(n))
	}

	return opts, nil
}

func (a *app) generate(cmd *cobra.Command, kinds []fixture.Kind) error {
	opts, err := a.driverOptions(kinds)
	if err != nil {
		return err
	}

	var bar *progress
	if a.v.GetBool(keyProgress) {
		if bar = newProgress(cmd.ErrOrStderr()); bar != nil {
			opts = append(opts, driver.WithProgress(bar.update))
			defer bar.stop()
		}
	}

	d := driver.New(opts...)
	out := cmd.OutOrStdout()
	dir := a.v.GetString(keyOutDir)

	sink := func(k fixture.Kind, data []byte) error {
		if dir == "" {
			_, err := out.Write(data)
			return err
		}
		path := filepath.Join(dir, "test_"+k.String()+".h")
		if err := outfile.Write(path, data); err != nil {
			return err
		}
		a.logger.Info("fixture written", "family", k.String(), "path", path)

		return nil
	}

	return d.EmitAll(cmd.Context(), sink, kinds...)
}
