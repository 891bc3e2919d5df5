package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/k0kubun/go-ansi"
	"github.com/nao1215/resparse/internal/config"
	"github.com/nao1215/resparse/internal/document"
	"github.com/nao1215/resparse/internal/log"
	"github.com/nao1215/resparse/internal/model"
	"github.com/nao1215/resparse/internal/pipeline"
	"github.com/nao1215/resparse/internal/report"
	"github.com/spf13/cobra"
)

// errInputUnavailable is returned after the missing input diagnostic has
// been printed.
var errInputUnavailable = errors.New("input document unavailable")

// runRootCmd executes the extraction.
func runRootCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var progress io.Writer
	if cfg.Progress {
		progress = ansi.NewAnsiStderr()
	}

	return runExtraction(ctx, cfg, logger, cmd.OutOrStdout(), progress)
}

// newLogger creates the logger selected by the configuration.
func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	if cfg.JSONLog {
		return log.NewJSONLogger(w, cfg.Verbose)
	}
	return log.NewLogger(w, cfg.Verbose)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from defaults, the configuration file and
// the flags that were set explicitly, in that order of precedence.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// An explicitly given config file must exist; a discovered one is optional.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if err := file.Apply(cfg); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		if cfg.InputPath, err = flags.GetString("input"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("output") {
		if cfg.OutputPath, err = flags.GetString("output"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("json") || flags.Changed("markdown") {
		if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
			return nil, err
		}
		if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("tokenize") {
		if cfg.Tokenize, err = flags.GetBool("tokenize"); err != nil {
			return nil, err
		}
	}
	if cfg.Progress, err = flags.GetBool("progress"); err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)
	if cfg.JSONLog, err = cmd.Flags().GetBool("log-json"); err != nil {
		return nil, err
	}

	return cfg, nil
}

// runExtraction loads and scans the input document, then writes the report.
// When the input cannot be opened it prints the diagnostic to stdout and
// returns errInputUnavailable without touching the output file.
func runExtraction(ctx context.Context, cfg *config.Config, logger *slog.Logger, stdout, progress io.Writer) error {
	logger.Info("starting extraction",
		"input", cfg.InputPath,
		"output", cfg.OutputPath,
		"format", cfg.Format(),
		"tokenize", cfg.Tokenize,
	)

	run := model.NewRun(cfg.InputPath)
	p := pipeline.Default(logger,
		pipeline.WithTokenize(cfg.Tokenize),
		pipeline.WithProgress(progress),
	)

	if err := p.Execute(ctx, run); err != nil {
		if errors.Is(err, document.ErrNoData) {
			fmt.Fprintf(stdout, "ERROR: Could not open %s!\n", cfg.InputPath)
			return errInputUnavailable
		}
		return err
	}

	logger.Info("extraction finished",
		"lines", len(run.Lines),
		"tags", run.TagsMatched,
		"references", run.Report.Total(),
	)

	return outputReport(cfg, run.Report, stdout)
}

// outputReport writes the report in the configured format. The output file
// is created or truncated, written once and closed once.
func outputReport(cfg *config.Config, r *model.Report, stdout io.Writer) (err error) {
	writer := func(w io.Writer) report.Writer {
		return report.New(cfg.Format(), w)
	}

	if cfg.WritesToStdout() {
		_, err := writer(stdout).Write(r)
		return err
	}

	dir := filepath.Dir(cfg.OutputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(cfg.OutputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644) //nolint:gosec // The report lists file names only
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	if _, err := writer(f).Write(r); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
