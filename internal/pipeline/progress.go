package pipeline

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// progress is the subset of *progressbar.ProgressBar used while scanning.
// Write advances the bar by the number of bytes written.
type progress interface {
	io.Writer
	Add(n int) error
	Finish() error
}

// newProgress returns a progress bar writing to w, or a no-op when w is nil.
func newProgress(w io.Writer, total int64, description string, showBytes bool) progress {
	if w == nil {
		return noProgress{}
	}
	return progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(showBytes),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetDescription("[cyan][1/1][reset] "+description),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

type noProgress struct{}

func (noProgress) Write(p []byte) (int, error) { return len(p), nil }
func (noProgress) Add(int) error               { return nil }
func (noProgress) Finish() error               { return nil }
