// Package progress draws a progress bar while liveries are written.
package progress

import (
	"io"
	"path/filepath"

	"github.com/pterm/pterm"
)

// Bar shows one pterm progress bar per livery. Its Update method matches
// livery.Progress.
type Bar struct {
	w   io.Writer
	bar *pterm.ProgressbarPrinter
}

// New creates a bar writing to w
func New(w io.Writer) *Bar {
	return &Bar{w: w}
}

// Update records that done of total files are written, the last being path
func (b *Bar) Update(done, total int, path string) {
	if b.bar == nil || done == 1 {
		b.Stop()
		bar, err := pterm.DefaultProgressbar.
			WithTotal(total).
			WithWriter(b.w).
			WithRemoveWhenDone(true).
			Start(filepath.Base(filepath.Dir(path)))
		if err != nil {
			return
		}
		b.bar = bar
	}
	b.bar.UpdateTitle(filepath.Base(path))
	b.bar.Increment()
	if done >= total {
		b.Stop()
	}
}

// Stop removes the current bar, if any
func (b *Bar) Stop() {
	if b.bar == nil {
		return
	}
	_, _ = b.bar.Stop()
	b.bar = nil
}
