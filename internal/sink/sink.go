// Package sink renders normalized viewing periods to an output stream.
//
// Three formats exist: the historical single-line text form, JSON Lines
// for downstream pipelines, and a canonical CSV re-export. All writers
// stream the batch row by row.
package sink

import (
	"fmt"
	"io"
	"strings"

	"github.com/broadmon/viewperiod/internal/core"
)

// Output formats accepted by Write.
const (
	FormatText  = "text"
	FormatJSONL = "jsonl"
	FormatCSV   = "csv"
)

// Write renders periods to w in the named format. The format name is
// case-insensitive, matching configuration validation.
func Write(w io.Writer, format string, periods []core.ViewingPeriod) error {
	switch strings.ToLower(format) {
	case FormatText:
		return WriteText(w, periods)
	case FormatJSONL:
		return WriteJSONL(w, periods)
	case FormatCSV:
		return WriteCSV(w, periods)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
