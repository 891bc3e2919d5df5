package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nao1215/resparse/internal/config"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for resparse.
// The root command performs the extraction itself.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resparse",
		Short: "List the internal resources used by an HTML document",
		Long: `resparse scans an HTML document for <link>, <script>, <img> and <a> tags
and writes the stylesheets, scripts, images and internal hyperlinks they refer
to into a report, one sorted section per kind.

External hyperlinks (http:, https: or containing .com) are left out.
Sections without entries are omitted.

By default index.html is read and index_resources.txt is written in the
current directory.

If the input cannot be opened, "ERROR: Could not open <input>!" is printed
to stdout, no report is written and resparse exits with status 1.

Examples:
  # Read index.html, write index_resources.txt
  resparse

  # Choose input and output
  resparse -i site/index.html -o site/resources.txt

  # Print a Markdown report to stdout
  resparse --markdown -o -

  # Find every tag, not only the first tag of each line
  resparse --tokenize`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRootCmd,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Write log records to stderr as JSON")

	cmd.Flags().StringP("input", "i", config.DefaultInputPath,
		"HTML document to scan")
	cmd.Flags().StringP("output", "o", config.DefaultOutputPath,
		"Report file to write (overwritten), or - for stdout")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .resparse in current or home directory)")
	cmd.Flags().BoolP("json", "j", false,
		"Write a JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Write a Markdown report (mutually exclusive with --json)")
	cmd.Flags().BoolP("tokenize", "t", false,
		"Tokenize the whole document instead of reading the first tag of each line")
	cmd.Flags().BoolP("progress", "p", false,
		"Show a progress bar on stderr while scanning")

	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		// The diagnostic for a missing input has already been printed.
		if !errors.Is(err, errInputUnavailable) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
