package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gosuri/uilive"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/cmatfixture/fixture"
)

// progress redraws a single status line per family in place.
type progress struct {
	w *uilive.Writer
}

// newProgress returns nil unless out is a terminal.
func newProgress(out io.Writer) *progress {
	f, ok := out.(*os.File)
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return nil
	}

	w := uilive.New()
	w.Out = out
	w.Start()

	return &progress{w: w}
}

func (p *progress) update(k fixture.Kind, done, total int) {
	fmt.Fprintf(p.w, "%-16s %6d/%d\n", k, done, total)
}

func (p *progress) stop() {
	p.w.Stop()
}
