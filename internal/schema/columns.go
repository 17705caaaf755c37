// Package schema defines the column vocabulary shared by upstream
// viewing-period exports.
//
// Producers disagree on column names, units, and time representations, so
// each known header name maps to one canonical field-assignment action.
// Matching is exact and case-sensitive: producers' casing is part of the
// contract (for example "duration" carries fractional seconds while
// "durationMsec" carries integer milliseconds, and "OFFSET" is a different
// producer than "offset").
package schema

// Action identifies how a recognized column's cell feeds the canonical
// record. Columns that express the same field in different units or formats
// get distinct actions so the normalizer can pick the right parser.
type Action int

const (
	// ActionStatus sets the match status from its canonical string form.
	ActionStatus Action = iota

	// ActionUserID sets the device/user identifier verbatim.
	ActionUserID

	// ActionTimeInFile sets time_in_file from epoch milliseconds.
	ActionTimeInFile

	// ActionQueryTimeMillis sets query_time from epoch milliseconds.
	ActionQueryTimeMillis

	// ActionQueryTimeString sets query_time from a
	// "YYYY-MM-DD HH:MM:SS[.fff]" datetime string.
	ActionQueryTimeString

	// ActionDurationMillis sets duration from integer milliseconds.
	ActionDurationMillis

	// ActionDurationSeconds sets duration from fractional seconds.
	ActionDurationSeconds

	// ActionStreamID sets the matched stream identifier verbatim.
	ActionStreamID

	// ActionProvider sets the upstream module/source identifier.
	ActionProvider

	// ActionEntryID sets the upstream record identifier verbatim.
	ActionEntryID

	// ActionBER sets the bit error rate.
	ActionBER

	// ActionValid sets the upstream-asserted validity flag.
	ActionValid

	// ActionOffsetMillis records a pending offset, in integer milliseconds,
	// used to derive time_in_file from query_time.
	ActionOffsetMillis

	// ActionOffsetSeconds records a pending offset, in fractional seconds.
	ActionOffsetSeconds

	// ActionEndTime records a pending end time, as a datetime string, used
	// to derive duration from query_time.
	ActionEndTime
)

// Columns is the alias table: every column name observed across upstream
// exports, mapped to its action. Many-to-one; unlisted names are
// unrecognized and their cells are ignored.
var Columns = map[string]Action{
	"status": ActionStatus,
	"Status": ActionStatus,

	"userID":    ActionUserID,
	"rss_id":    ActionUserID,
	"DEVICE_ID": ActionUserID,

	"timeInFile": ActionTimeInFile,

	"tStartMsec": ActionQueryTimeMillis,
	"tStart":     ActionQueryTimeMillis,

	"startTime": ActionQueryTimeString,
	"start_ts":  ActionQueryTimeString,
	"START":     ActionQueryTimeString,

	"durationMsec": ActionDurationMillis,

	"duration": ActionDurationSeconds,

	"stream_id":    ActionStreamID,
	"Stream_id":    ActionStreamID,
	"stream_name":  ActionStreamID,
	"name":         ActionStreamID,
	"STREAM_LABEL": ActionStreamID,

	"module_ref": ActionProvider,

	"period_id": ActionEntryID,
	"id":        ActionEntryID,

	"bitErrorRate": ActionBER,
	"ber":          ActionBER,

	"valid": ActionValid,

	"offset": ActionOffsetMillis,

	"offset_s": ActionOffsetSeconds,
	"OFFSET":   ActionOffsetSeconds,

	"endTime": ActionEndTime,
	"stop_ts": ActionEndTime,
	"END":     ActionEndTime,
}

// Lookup resolves a raw column name to its action. The second return value
// is false for unrecognized names.
func Lookup(name string) (Action, bool) {
	action, ok := Columns[name]
	return action, ok
}
