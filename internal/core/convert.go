package core

// convert.go provides the typed cell parsers behind the column actions.
//
// These functions handle the messy reality of upstream viewing-period
// exports:
//   - Timestamps as epoch milliseconds or "YYYY-MM-DD HH:MM:SS[.fff]" strings
//   - Durations as integer milliseconds or fractional seconds
//   - Cells pre-quoted or comma-padded by the exporter
//   - Validity flags in several spellings
//
// Every cell is cleaned with CleanCell before parsing. The numeric and time
// parsers return errors that the normalizer treats as fatal; parseValid
// never fails and the status parser's failures are non-fatal (see types.go).

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// datetimeLayout is the fixed wall-clock format some producers use instead
// of epoch milliseconds. An optional fractional-seconds part after the
// seconds field is accepted when parsing.
const datetimeLayout = "2006-01-02 15:04:05"

// cellCutset is the set of enclosing characters stripped from both ends of
// a cell after whitespace trimming. Exporters that mistakenly pre-quote or
// comma-pad values still parse cleanly.
const cellCutset = `'" ,`

// CleanCell trims surrounding whitespace, then the enclosing characters in
// cellCutset, from both ends of a raw cell value. Interior characters are
// never touched.
func CleanCell(s string) string {
	return strings.Trim(strings.TrimSpace(s), cellCutset)
}

// parseEpochMillis parses a signed epoch-milliseconds cell into a UTC
// timestamp.
func parseEpochMillis(value string) (time.Time, error) {
	ms, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("could not parse timestamp as integer")
	}
	return time.UnixMilli(ms).UTC(), nil
}

// parseDatetime parses a "YYYY-MM-DD HH:MM:SS[.fff]" cell as UTC, truncated
// to millisecond precision.
func parseDatetime(value string) (time.Time, error) {
	t, err := time.Parse(datetimeLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse datetime")
	}
	return t.Truncate(time.Millisecond), nil
}

// parseDurationMillis parses a signed integer-milliseconds cell.
func parseDurationMillis(value string) (time.Duration, error) {
	ms, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse millis from duration")
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// parseDurationSeconds parses a fractional-seconds cell, converting to
// milliseconds floored toward negative infinity.
func parseDurationSeconds(value string) (time.Duration, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse seconds from duration")
	}
	ms := int64(math.Floor(f * 1000.0))
	return time.Duration(ms) * time.Millisecond, nil
}

// parseBER parses a bit-error-rate cell as a 32-bit float.
func parseBER(value string) (float32, error) {
	f, err := strconv.ParseFloat(value, 32)
	if err != nil {
		return 0, fmt.Errorf("failed to parse ber")
	}
	return float32(f), nil
}

// parseValid maps the validity spellings producers use to a bool. Anything
// unrecognized, including an empty cell, is false; this parser never fails.
func parseValid(value string) bool {
	switch value {
	case "VALID", "true", "1":
		return true
	}
	return false
}
