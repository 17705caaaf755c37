package core

// normalize.go is the column-to-field mapping and derivation engine.
//
// One row is normalized by folding over its header/value pairs in column
// order: each recognized column name resolves to an action, the cleaned cell
// is parsed with that action's parser, and the cross-field derivation rules
// re-run after every cell. Later columns overwrite earlier ones, and because
// the derivations are per-cell rather than a final pass, the relative order
// of status, stream_id, query_time, and offset/end-time columns affects the
// output. That order sensitivity is an accepted quirk of the historical
// column-by-column derivation; downstream consumers depend on existing
// outputs, so it is preserved exactly.

import (
	"log/slog"
	"strings"
	"time"

	"github.com/broadmon/viewperiod/internal/schema"
)

// noMatchTokens are stream identifiers that carry no successful match.
// A stream_id outside this set forces the status to MATCH.
var noMatchTokens = map[string]bool{
	"":         true,
	"0":        true,
	"NO_DATA":  true,
	"NO_MATCH": true,
	"NO_SOUND": true,
}

// rowState accumulates one record while a row's columns are folded in
// order. Each row gets a fresh, short-lived state; nothing is shared
// between rows.
type rowState struct {
	period ViewingPeriod

	// offset and endTime hold values that cannot be applied until
	// query_time is known; the derivations re-check them after every cell.
	offset  *time.Duration
	endTime *time.Time

	// queryTimeSet records whether any column assigned query_time in this
	// row. The offset and end-time derivations stay dormant until then.
	queryTimeSet bool
}

// NormalizeLine splits a raw data line on the separator and folds it into a
// canonical record against the header.
func NormalizeLine(header []string, line string, sep rune) (ViewingPeriod, error) {
	return NormalizeRow(header, strings.Split(line, string(sep)))
}

// NormalizeRow folds one already-split row into a canonical record. Header
// names and values pair up one-to-one in column order; the excess on the
// longer side is ignored. The error is a ParseError for the first malformed
// timestamp, duration, or ber cell; such an error poisons the whole input
// and the caller must not continue with later rows.
func NormalizeRow(header []string, values []string) (ViewingPeriod, error) {
	st := rowState{period: NewViewingPeriod()}

	n := len(header)
	if len(values) < n {
		n = len(values)
	}
	for i := 0; i < n; i++ {
		if err := st.applyCell(header[i], CleanCell(values[i])); err != nil {
			return ViewingPeriod{}, err
		}
		st.derive()
	}
	return st.period, nil
}

// applyCell resolves one column name and assigns the parsed cell value.
// Header names match the vocabulary verbatim; the cell value arrives
// already cleaned.
func (st *rowState) applyCell(key, value string) error {
	action, ok := schema.Lookup(key)
	if !ok {
		slog.Warn("unrecognised field key", "key", key)
		return nil
	}

	switch action {
	case schema.ActionStatus:
		status, err := ParseStatus(value)
		if err != nil {
			slog.Warn("failed to parse status", "value", value)
			return nil
		}
		st.period.Status = status

	case schema.ActionUserID:
		st.period.UserID = value

	case schema.ActionTimeInFile:
		t, err := parseEpochMillis(value)
		if err != nil {
			return cellError(key, value, err)
		}
		st.period.TimeInFile = t

	case schema.ActionQueryTimeMillis:
		t, err := parseEpochMillis(value)
		if err != nil {
			return cellError(key, value, err)
		}
		st.period.QueryTime = t
		st.queryTimeSet = true

	case schema.ActionQueryTimeString:
		t, err := parseDatetime(value)
		if err != nil {
			return cellError(key, value, err)
		}
		st.period.QueryTime = t
		st.queryTimeSet = true

	case schema.ActionDurationMillis:
		d, err := parseDurationMillis(value)
		if err != nil {
			return cellError(key, value, err)
		}
		st.period.Duration = d

	case schema.ActionDurationSeconds:
		d, err := parseDurationSeconds(value)
		if err != nil {
			return cellError(key, value, err)
		}
		st.period.Duration = d

	case schema.ActionStreamID:
		st.period.StreamID = value

	case schema.ActionProvider:
		st.period.Provider = value

	case schema.ActionEntryID:
		st.period.EntryID = value

	case schema.ActionBER:
		ber, err := parseBER(value)
		if err != nil {
			return cellError(key, value, err)
		}
		st.period.BER = ber

	case schema.ActionValid:
		st.period.Valid = parseValid(value)

	case schema.ActionOffsetMillis:
		d, err := parseDurationMillis(value)
		if err != nil {
			return cellError(key, value, err)
		}
		st.offset = &d

	case schema.ActionOffsetSeconds:
		d, err := parseDurationSeconds(value)
		if err != nil {
			return cellError(key, value, err)
		}
		st.offset = &d

	case schema.ActionEndTime:
		t, err := parseDatetime(value)
		if err != nil {
			return cellError(key, value, err)
		}
		st.endTime = &t
	}

	return nil
}

// derive re-applies the cross-field rules. It runs after every cell, not
// once at row end, so later assignments to query_time, offset, end time, or
// stream_id keep reshaping the record; the last evaluation wins.
func (st *rowState) derive() {
	if st.offset != nil && st.queryTimeSet {
		st.period.TimeInFile = st.period.QueryTime.Add(-*st.offset)
	}
	if st.endTime != nil && st.queryTimeSet {
		st.period.Duration = st.endTime.Sub(st.period.QueryTime)
	}
	if !noMatchTokens[st.period.StreamID] {
		st.period.Status = StatusMatch
	}
}
