package core

// reader.go is the line source. It turns a file path or an io.Reader into
// normalized viewing periods: pick the separator from the extension, read
// the header, then fold every following line through the normalizer.
//
// Only two failures abort a read once the header is in hand: a cell that a
// fatal parser rejects, and nothing else. Lines that cannot be decoded are
// logged and skipped, and an I/O error mid-file surrenders the periods
// collected so far rather than discarding the run.

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/broadmon/viewperiod/internal/schema"
)

// MaxLineBytes caps the size of a single line the scanner will accept.
// Ingest wires it from configuration before the first read.
var MaxLineBytes = 1024 * 1024

const initialLineBytes = 64 * 1024

// Separator maps a file extension to its cell separator. The match is
// exact, so "report.CSV" is rejected the same way "report.txt" is.
func Separator(path string) (rune, error) {
	switch filepath.Ext(path) {
	case ".csv":
		return ',', nil
	case ".tsv":
		return '\t', nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedExtension, path)
	}
}

// readStats carries the per-run counters out of readPeriods.
type readStats struct {
	linesRead    int
	linesSkipped int
	unrecognized []string
}

// ReadFile opens path and normalizes every line in it. The separator is
// chosen from the file extension.
func ReadFile(path string) ([]ViewingPeriod, error) {
	sep, err := Separator(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return ReadPeriods(f, sep)
}

// ReadPeriods normalizes every line read from r, using sep as the cell
// separator. The first line is the header; a reader with no lines at all
// fails with ErrMissingHeader.
func ReadPeriods(r io.Reader, sep rune) ([]ViewingPeriod, error) {
	periods, _, err := readPeriods(r, sep)
	return periods, err
}

func readPeriods(r io.Reader, sep rune) ([]ViewingPeriod, readStats, error) {
	var stats readStats

	scanner := bufio.NewScanner(newBOMSkippingReader(r))
	// The scanner's limit is the larger of the max and the initial
	// capacity, so the initial allocation must not exceed MaxLineBytes.
	initial := initialLineBytes
	if initial > MaxLineBytes {
		initial = MaxLineBytes
	}
	scanner.Buffer(make([]byte, 0, initial), MaxLineBytes)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, stats, fmt.Errorf("failed to read header: %w", err)
		}
		return nil, stats, ErrMissingHeader
	}
	header := strings.Split(scanner.Text(), string(sep))
	stats.unrecognized = unrecognizedColumns(header)

	var periods []ViewingPeriod
	line := 1 // the header
	for scanner.Scan() {
		line++
		raw := scanner.Text()
		if !utf8.ValidString(raw) {
			slog.Warn("failed to read period line", "line", line, "reason", "invalid utf-8")
			stats.linesSkipped++
			continue
		}

		period, err := NormalizeLine(header, raw, sep)
		if err != nil {
			return nil, stats, fmt.Errorf("line %d: %w", line, err)
		}
		periods = append(periods, period)
		stats.linesRead++
	}
	if err := scanner.Err(); err != nil {
		// Keep what was collected. The tail of the file is gone either
		// way, and partial results still carry signal.
		slog.Error("failed to read period line", "error", err)
	}

	return periods, stats, nil
}

// unrecognizedColumns returns the distinct header names with no vocabulary
// entry, in first-seen order.
func unrecognizedColumns(header []string) []string {
	var names []string
	seen := make(map[string]bool, len(header))
	for _, name := range header {
		if _, ok := schema.Lookup(name); ok || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// RunResult describes one completed ingest run.
type RunResult struct {
	RunID        string
	Path         string
	Periods      []ViewingPeriod
	LinesRead    int
	LinesSkipped int
	Unrecognized []string
	BytesRead    int64
	Elapsed      time.Duration
}

// Ingest runs a full normalization pass over the file at path and reports
// the outcome under a fresh run ID.
func Ingest(path string) (*RunResult, error) {
	sep, err := Separator(path)
	if err != nil {
		return nil, err
	}

	runID := uuid.New().String()
	start := time.Now()
	slog.Info("normalization run started", "run_id", runID, "path", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	cr := newCountingReader(f)
	periods, stats, err := readPeriods(cr, sep)
	if err != nil {
		slog.Error("normalization run failed", "run_id", runID, "path", path, "error", err)
		return nil, err
	}

	res := &RunResult{
		RunID:        runID,
		Path:         path,
		Periods:      periods,
		LinesRead:    stats.linesRead,
		LinesSkipped: stats.linesSkipped,
		Unrecognized: stats.unrecognized,
		BytesRead:    cr.bytesRead,
		Elapsed:      time.Since(start),
	}
	slog.Info("normalization run finished",
		"run_id", runID,
		"path", path,
		"records", res.LinesRead,
		"skipped_lines", res.LinesSkipped,
		"bytes_read", res.BytesRead,
		"elapsed", res.Elapsed,
	)
	return res, nil
}
