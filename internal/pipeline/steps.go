package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/nao1215/resparse/internal/document"
	"github.com/nao1215/resparse/internal/model"
	"github.com/nao1215/resparse/internal/scanner"
)

// ErrNotLoaded is returned by ScanStep when the run has no document.
var ErrNotLoaded = errors.New("document not loaded")

// LoadStep reads the input document into run.Lines.
type LoadStep struct {
	logger *slog.Logger
}

// NewLoadStep creates a LoadStep.
func NewLoadStep(logger *slog.Logger) *LoadStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoadStep{logger: logger}
}

// Name returns "load".
func (s *LoadStep) Name() string {
	return "load"
}

// Do loads the document. A document that cannot be opened yields
// document.ErrNoData.
func (s *LoadStep) Do(_ context.Context, run *model.Run) error {
	lines, err := document.Load(run.InputPath)
	if err != nil {
		return err
	}
	run.Lines = lines
	s.logger.Debug("document loaded", "input", run.InputPath, "lines", len(lines))
	return nil
}

// ScanStep finds tags of interest in the loaded document and records the
// references they carry in run.Report.
type ScanStep struct {
	logger   *slog.Logger
	tokenize bool
	progress io.Writer
}

// ScanOption configures a ScanStep.
type ScanOption func(*ScanStep)

// WithTokenize switches from per-line scanning to tokenizing the whole
// document.
func WithTokenize(tokenize bool) ScanOption {
	return func(s *ScanStep) {
		s.tokenize = tokenize
	}
}

// WithProgress renders a progress bar to w while scanning.
// A nil writer disables the bar.
func WithProgress(w io.Writer) ScanOption {
	return func(s *ScanStep) {
		s.progress = w
	}
}

// NewScanStep creates a ScanStep. By default it scans line by line without
// a progress bar.
func NewScanStep(logger *slog.Logger, opts ...ScanOption) *ScanStep {
	if logger == nil {
		logger = slog.Default()
	}
	s := &ScanStep{logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns "scan".
func (s *ScanStep) Name() string {
	return "scan"
}

// Do scans run.Lines and fills run.Report.
func (s *ScanStep) Do(_ context.Context, run *model.Run) error {
	if run.Lines == nil {
		return ErrNotLoaded
	}
	if run.Report == nil {
		run.Report = model.NewReport()
	}

	if s.tokenize {
		return s.scanDocument(run)
	}
	s.scanLines(run)
	return nil
}

// scanLines looks at the first tag of every line.
func (s *ScanStep) scanLines(run *model.Run) {
	bar := newProgress(s.progress, int64(len(run.Lines)), "Scanning lines...", false)
	defer bar.Finish() //nolint:errcheck // Progress output is best effort

	for i, line := range run.Lines {
		_ = bar.Add(1)
		if line == "" {
			continue
		}
		tag := scanner.FindTag(line)
		if tag == "" {
			continue
		}
		s.record(run, tag, slog.Int("line", i+1))
	}
}

// scanDocument tokenizes the whole document and looks at every tag.
func (s *ScanStep) scanDocument(run *model.Run) error {
	content := strings.Join(run.Lines, "")
	bar := newProgress(s.progress, int64(len(content)), "Tokenizing document...", true)
	defer bar.Finish() //nolint:errcheck // Progress output is best effort

	return scanner.Tokenize(io.TeeReader(strings.NewReader(content), bar), func(tag string) {
		s.record(run, tag)
	})
}

func (s *ScanStep) record(run *model.Run, tag string, attrs ...any) {
	run.TagsMatched++
	kept := scanner.Record(run.Report, tag)
	s.logger.Debug("tag matched", append(attrs, "tag", tag, "kept", kept)...)
}
