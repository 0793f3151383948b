package batch

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// Progress reports per-file progress of a run.
type Progress interface {
	Describe(description string)
	Add(n int) error
	Finish() error
}

// NewProgressBar returns a Progress factory that draws a bar on w.
func NewProgressBar(w io.Writer) func(total int) Progress {
	return func(total int) Progress {
		return progressbar.NewOptions(total,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription("processing"),
			progressbar.OptionShowCount(),
			progressbar.OptionOnCompletion(func() {
				_, _ = io.WriteString(w, "\n")
			}),
		)
	}
}

type nopProgress struct{}

func (nopProgress) Describe(string) {}

func (nopProgress) Add(int) error { return nil }

func (nopProgress) Finish() error { return nil }
