package core

import (
	"fmt"
	"strings"
	"time"
)

// TimestampLayout renders absolute timestamps as RFC3339 with millisecond
// precision and a Z suffix for UTC. Downstream tooling parses this exact
// shape.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Status classifies the outcome of a stream-match attempt.
type Status int

const (
	StatusNoMatch Status = iota
	StatusMatch
	StatusNoData
	StatusNoSound
)

// String returns the canonical upstream spelling of the status.
func (s Status) String() string {
	switch s {
	case StatusMatch:
		return "MATCH"
	case StatusNoMatch:
		return "NO_MATCH"
	case StatusNoData:
		return "NO_DATA"
	case StatusNoSound:
		return "NO_SOUND"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// ParseStatus parses the canonical status strings. Matching is exact and
// case-sensitive; anything else is an error.
func ParseStatus(value string) (Status, error) {
	switch value {
	case "MATCH":
		return StatusMatch, nil
	case "NO_MATCH":
		return StatusNoMatch, nil
	case "NO_DATA":
		return StatusNoData, nil
	case "NO_SOUND":
		return StatusNoSound, nil
	}
	return StatusNoMatch, fmt.Errorf("not a status: %q", value)
}

// ViewingPeriod is one normalized observation: an interval during which a
// monitoring device attempted to identify a media stream.
type ViewingPeriod struct {
	Provider   string        // upstream module/source identifier, if any
	Status     Status        // outcome of the matching attempt
	UserID     string        // device/user identifier
	QueryTime  time.Time     // instant the match query was issued (UTC, ms precision)
	TimeInFile time.Time     // instant within the source recording corresponding to QueryTime
	Duration   time.Duration // interval length, signed
	StreamID   string        // matched stream identifier, if any
	EntryID    string        // record identifier in the upstream system
	BER        float32       // bit error rate of the match
	Valid      bool          // upstream-asserted validity flag
}

// NewViewingPeriod returns a record with the defaults every row starts from:
// no match, epoch timestamps, zero duration, the "0" user sentinel, empty
// identifiers. Columns overwrite these as they are encountered.
func NewViewingPeriod() ViewingPeriod {
	return ViewingPeriod{
		Status:     StatusNoMatch,
		UserID:     "0",
		QueryTime:  time.UnixMilli(0).UTC(),
		TimeInFile: time.UnixMilli(0).UTC(),
	}
}

// EndTime is the interval's end, derived as QueryTime + Duration. It is a
// computed view, never stored independently.
func (p ViewingPeriod) EndTime() time.Time {
	return p.QueryTime.Add(p.Duration)
}

// Offset is the fixed displacement between the query timeline and the source
// recording, derived as QueryTime - TimeInFile.
func (p ViewingPeriod) Offset() time.Duration {
	return p.QueryTime.Sub(p.TimeInFile)
}

// String renders the record in its historical single-line form. The missing
// separators after the stream_id and entry_id values are part of that form;
// downstream parsers depend on the exact byte layout.
func (p ViewingPeriod) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "user_id: %s, ", p.UserID)
	fmt.Fprintf(&b, "status: %s, ", p.Status)
	fmt.Fprintf(&b, "stream_id: %s", p.StreamID)
	fmt.Fprintf(&b, "entry_id: %s", p.EntryID)
	fmt.Fprintf(&b, "offset_s: %s, ", formatSeconds(p.Offset()))
	fmt.Fprintf(&b, "startTime: %s, ", p.QueryTime.Format(TimestampLayout))
	fmt.Fprintf(&b, "endTime: %s, ", p.EndTime().Format(TimestampLayout))
	fmt.Fprintf(&b, "duration: %s, ", formatSeconds(p.Duration))
	fmt.Fprintf(&b, "ber: %.2f, ", p.BER)
	fmt.Fprintf(&b, "valid: %t", p.Valid)
	return b.String()
}

// formatSeconds renders a duration as seconds with exactly three decimals.
func formatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.3f", float64(d.Milliseconds())/1000.0)
}
