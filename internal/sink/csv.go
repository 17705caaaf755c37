package sink

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/broadmon/viewperiod/internal/core"
)

// csvHeader is the canonical column order of the CSV re-export.
var csvHeader = []string{
	"provider", "status", "user_id", "query_time", "time_in_file",
	"duration_ms", "stream_id", "entry_id", "ber", "valid",
}

// WriteCSV renders a canonical comma-separated export: a fixed header, then
// one record per row. Unlike the exports this module ingests, the output is
// real CSV with quoting, so identifiers containing commas survive standard
// tooling.
func WriteCSV(w io.Writer, periods []core.ViewingPeriod) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, p := range periods {
		row := []string{
			p.Provider,
			p.Status.String(),
			p.UserID,
			p.QueryTime.Format(core.TimestampLayout),
			p.TimeInFile.Format(core.TimestampLayout),
			strconv.FormatInt(p.Duration.Milliseconds(), 10),
			p.StreamID,
			p.EntryID,
			strconv.FormatFloat(float64(p.BER), 'f', -1, 32),
			strconv.FormatBool(p.Valid),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
