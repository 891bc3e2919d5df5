// Package log provides the slog setup used by resparse.
//
// Scanned HTML lines are logged at debug level and can be arbitrarily long
// (minified documents often fit on a single line). ClipHandler wraps any
// slog.Handler and shortens long string attribute values before they reach
// the underlying handler, so verbose output stays readable.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
//	logger.Debug("tag matched", "tag", tag)
package log
