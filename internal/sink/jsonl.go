package sink

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/broadmon/viewperiod/internal/core"
)

// jsonRecord is the wire shape of one period in JSON Lines output.
type jsonRecord struct {
	Provider   string  `json:"provider,omitempty"`
	Status     string  `json:"status"`
	UserID     string  `json:"user_id"`
	QueryTime  string  `json:"query_time"`
	TimeInFile string  `json:"time_in_file"`
	DurationMs int64   `json:"duration_ms"`
	StreamID   string  `json:"stream_id"`
	EntryID    string  `json:"entry_id"`
	BER        float32 `json:"ber"`
	Valid      bool    `json:"valid"`
}

// WriteJSONL renders one JSON object per line. Timestamps use the same
// layout as the text form.
func WriteJSONL(w io.Writer, periods []core.ViewingPeriod) error {
	enc := json.NewEncoder(w)
	for _, p := range periods {
		rec := jsonRecord{
			Provider:   p.Provider,
			Status:     p.Status.String(),
			UserID:     p.UserID,
			QueryTime:  p.QueryTime.Format(core.TimestampLayout),
			TimeInFile: p.TimeInFile.Format(core.TimestampLayout),
			DurationMs: p.Duration.Milliseconds(),
			StreamID:   p.StreamID,
			EntryID:    p.EntryID,
			BER:        p.BER,
			Valid:      p.Valid,
		}
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("failed to encode record: %w", err)
		}
	}
	return nil
}
