package document

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ErrNoData is returned when the document cannot be opened or read.
// The underlying error is logged, not returned, so callers only need to
// handle the single "no data" case.
var ErrNoData = errors.New("no data: document could not be opened")

// Load reads the file at path and returns its lines.
// "\r\n", "\r" and "\n" all end a line, and each line keeps its terminator
// as "\n"; the last line has none if the file does not end with one.
// An empty file yields an empty, non-nil slice.
func Load(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // Reading a user-selected document is the purpose of the tool
	if err != nil {
		slog.Debug("failed to open document", "path", path, "error", err)
		return nil, ErrNoData
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		slog.Debug("failed to read document", "path", path, "error", err)
		return nil, ErrNoData
	}
	return lines, nil
}

// ReadLines splits everything readable from r into lines. Line terminators
// are kept and normalized to "\n".
func ReadLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	lines := make([]string, 0)
	for {
		chunk, err := br.ReadString('\n')
		lines = appendSplitCR(lines, chunk)
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// appendSplitCR appends the lines of chunk, which holds at most one "\n" at
// its end, splitting it further at every "\r". A "\r" directly before that
// "\n" belongs to the same terminator.
func appendSplitCR(lines []string, chunk string) []string {
	for chunk != "" {
		i := strings.IndexByte(chunk, '\r')
		if i < 0 {
			return append(lines, chunk)
		}
		lines = append(lines, chunk[:i]+"\n")
		chunk = strings.TrimPrefix(chunk[i+1:], "\n")
	}
	return lines
}
