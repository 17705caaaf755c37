package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/broadmon/viewperiod/internal/config"
	"github.com/broadmon/viewperiod/internal/core"
	"github.com/broadmon/viewperiod/internal/logging"
	"github.com/broadmon/viewperiod/internal/sink"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Debug("configuration loaded",
		"log_level", cfg.Logging.Level,
		"max_line_bytes", cfg.Ingest.MaxLineBytes,
		"output_format", cfg.Output.Format,
	)

	core.MaxLineBytes = cfg.Ingest.MaxLineBytes

	if err := newRootCommand(cfg).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "viewperiod: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "viewperiod",
		Short: "Normalize viewing period exports",
		Long: `viewperiod ingests the CSV and TSV viewing period exports produced by
stream-matching providers, folds every row into one canonical record shape,
and renders the result as text, JSON Lines, or canonical CSV.`,
		SilenceUsage: true,
	}
	cmd.AddCommand(
		newNormalizeCmd(cfg),
		newStatsCmd(),
		newVersionCmd(),
	)
	return cmd
}

func newNormalizeCmd(cfg *config.Config) *cobra.Command {
	var format string
	var output string
	cmd := &cobra.Command{
		Use:   "normalize <file>",
		Short: "Normalize one export file and render the records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := core.Ingest(args[0])
			if err != nil {
				return err
			}

			w, closeOutput, err := openOutput(output, cfg.Output.Append)
			if err != nil {
				return err
			}

			if err := sink.Write(w, format, res.Periods); err != nil {
				closeOutput()
				return err
			}
			if err := closeOutput(); err != nil {
				return fmt.Errorf("failed to close output file: %w", err)
			}

			logging.WithRun(res.RunID).Info("normalization complete",
				"records", len(res.Periods),
				"skipped_lines", res.LinesSkipped,
				"unrecognized_columns", len(res.Unrecognized),
			)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", cfg.Output.Format, "Output format: text, jsonl, or csv")
	cmd.Flags().StringVarP(&output, "output", "o", cfg.Output.Path, "Output file (default: stdout)")
	return cmd
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file>",
		Short: "Summarize one export file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := core.Ingest(args[0])
			if err != nil {
				return err
			}

			printSummary(cmd.OutOrStdout(), core.Summarize(res.Periods))
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "viewperiod %s (commit %s)\n", version, commit)
		},
	}
}

// openOutput resolves the output destination. An empty path means stdout,
// which is handed back with a no-op closer.
func openOutput(path string, appendMode bool) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}

	flags := os.O_WRONLY | os.O_CREATE
	if appendMode {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open output file: %w", err)
	}
	return f, f.Close, nil
}

// printSummary renders the aggregate figures in a fixed, aligned layout.
func printSummary(w io.Writer, sum core.Summary) {
	fmt.Fprintf(w, "records:          %d\n", sum.Records)
	for _, status := range []core.Status{core.StatusMatch, core.StatusNoMatch, core.StatusNoData, core.StatusNoSound} {
		if n := sum.ByStatus[status]; n > 0 {
			fmt.Fprintf(w, "  %-15s %d\n", status.String()+":", n)
		}
	}
	fmt.Fprintf(w, "valid:            %d\n", sum.ValidCount)
	fmt.Fprintf(w, "distinct streams: %d\n", sum.DistinctStreams)
	fmt.Fprintf(w, "distinct users:   %d\n", sum.DistinctUsers)
	fmt.Fprintf(w, "total duration:   %s\n", sum.TotalDuration)
	fmt.Fprintf(w, "mean duration:    %s\n", sum.MeanDuration)
	fmt.Fprintf(w, "mean ber:         %.4f\n", sum.MeanBER)
}
