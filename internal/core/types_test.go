package core

import (
	"testing"
	"time"
)

// ----------------------------------------------------------------------------
// Status Tests
// ----------------------------------------------------------------------------

func TestStatusString(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		want   string
	}{
		{
			name:   "match",
			status: StatusMatch,
			want:   "MATCH",
		},
		{
			name:   "no match",
			status: StatusNoMatch,
			want:   "NO_MATCH",
		},
		{
			name:   "no data",
			status: StatusNoData,
			want:   "NO_DATA",
		},
		{
			name:   "no sound",
			status: StatusNoSound,
			want:   "NO_SOUND",
		},
		{
			name:   "out of range",
			status: Status(9),
			want:   "Status(9)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.String(); got != tt.want {
				t.Errorf("Status(%d).String() = %q, want %q", int(tt.status), got, tt.want)
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input string
		want  Status
	}{
		{"MATCH", StatusMatch},
		{"NO_MATCH", StatusNoMatch},
		{"NO_DATA", StatusNoData},
		{"NO_SOUND", StatusNoSound},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if err != nil {
				t.Fatalf("ParseStatus(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseStatus(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseStatus_Invalid(t *testing.T) {
	// Matching is exact: no case folding, no numerics, no partials.
	inputs := []string{"", "match", "Match", "MATCHED", "NO MATCH", "0", "1"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			got, err := ParseStatus(input)
			if err == nil {
				t.Fatalf("ParseStatus(%q) expected error, got nil", input)
			}
			if got != StatusNoMatch {
				t.Errorf("ParseStatus(%q) = %v on error, want StatusNoMatch", input, got)
			}
		})
	}
}

func TestParseStatus_RoundTrip(t *testing.T) {
	for _, status := range []Status{StatusMatch, StatusNoMatch, StatusNoData, StatusNoSound} {
		got, err := ParseStatus(status.String())
		if err != nil {
			t.Fatalf("ParseStatus(%q) error: %v", status.String(), err)
		}
		if got != status {
			t.Errorf("ParseStatus(%q) = %v, want %v", status.String(), got, status)
		}
	}
}

// ----------------------------------------------------------------------------
// ViewingPeriod Tests
// ----------------------------------------------------------------------------

func TestNewViewingPeriod(t *testing.T) {
	p := NewViewingPeriod()

	epoch := time.UnixMilli(0).UTC()
	if p.Status != StatusNoMatch {
		t.Errorf("Status = %v, want StatusNoMatch", p.Status)
	}
	if p.UserID != "0" {
		t.Errorf("UserID = %q, want %q", p.UserID, "0")
	}
	if !p.QueryTime.Equal(epoch) {
		t.Errorf("QueryTime = %v, want epoch", p.QueryTime)
	}
	if !p.TimeInFile.Equal(epoch) {
		t.Errorf("TimeInFile = %v, want epoch", p.TimeInFile)
	}
	if p.Duration != 0 {
		t.Errorf("Duration = %v, want 0", p.Duration)
	}
	if p.Provider != "" || p.StreamID != "" || p.EntryID != "" {
		t.Errorf("identifiers = %q/%q/%q, want all empty", p.Provider, p.StreamID, p.EntryID)
	}
	if p.BER != 0 {
		t.Errorf("BER = %v, want 0", p.BER)
	}
	if p.Valid {
		t.Error("Valid = true, want false")
	}
}

func TestViewingPeriodEndTime(t *testing.T) {
	base := time.Date(2023, time.January, 2, 0, 3, 44, 41_000_000, time.UTC)

	tests := []struct {
		name     string
		duration time.Duration
		want     time.Time
	}{
		{
			name:     "positive duration",
			duration: 12928 * time.Millisecond,
			want:     time.Date(2023, time.January, 2, 0, 3, 56, 969_000_000, time.UTC),
		},
		{
			name:     "zero duration",
			duration: 0,
			want:     base,
		},
		{
			name:     "negative duration",
			duration: -time.Second,
			want:     time.Date(2023, time.January, 2, 0, 3, 43, 41_000_000, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ViewingPeriod{QueryTime: base, Duration: tt.duration}
			if got := p.EndTime(); !got.Equal(tt.want) {
				t.Errorf("EndTime() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestViewingPeriodOffset(t *testing.T) {
	tests := []struct {
		name       string
		queryTime  time.Time
		timeInFile time.Time
		want       time.Duration
	}{
		{
			name:       "query after file position",
			queryTime:  time.UnixMilli(1672617824041).UTC(),
			timeInFile: time.UnixMilli(1672617736352).UTC(),
			want:       87689 * time.Millisecond,
		},
		{
			name:       "identical instants",
			queryTime:  time.UnixMilli(1000).UTC(),
			timeInFile: time.UnixMilli(1000).UTC(),
			want:       0,
		},
		{
			name:       "query before file position",
			queryTime:  time.UnixMilli(1000).UTC(),
			timeInFile: time.UnixMilli(2500).UTC(),
			want:       -1500 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ViewingPeriod{QueryTime: tt.queryTime, TimeInFile: tt.timeInFile}
			if got := p.Offset(); got != tt.want {
				t.Errorf("Offset() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestViewingPeriodString pins the exact single-line form, including the
// missing separators after the stream_id and entry_id values.
func TestViewingPeriodString(t *testing.T) {
	p := ViewingPeriod{
		Status:     StatusMatch,
		UserID:     "169808",
		QueryTime:  time.UnixMilli(1672617824041).UTC(),
		TimeInFile: time.UnixMilli(1672617736352).UTC(),
		Duration:   12928 * time.Millisecond,
		StreamID:   "329",
		EntryID:    "1672616922000|8d542b02585730ca24c2b96845ef9566|329",
		BER:        0.247597,
		Valid:      true,
	}

	want := "user_id: 169808, status: MATCH, stream_id: 329" +
		"entry_id: 1672616922000|8d542b02585730ca24c2b96845ef9566|329" +
		"offset_s: 87.689, " +
		"startTime: 2023-01-02T00:03:44.041Z, " +
		"endTime: 2023-01-02T00:03:56.969Z, " +
		"duration: 12.928, ber: 0.25, valid: true"

	if got := p.String(); got != want {
		t.Errorf("String() =\n%q\nwant\n%q", got, want)
	}
}

func TestViewingPeriodString_Defaults(t *testing.T) {
	want := "user_id: 0, status: NO_MATCH, stream_id: entry_id: " +
		"offset_s: 0.000, " +
		"startTime: 1970-01-01T00:00:00.000Z, " +
		"endTime: 1970-01-01T00:00:00.000Z, " +
		"duration: 0.000, ber: 0.00, valid: false"

	if got := NewViewingPeriod().String(); got != want {
		t.Errorf("String() =\n%q\nwant\n%q", got, want)
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		name  string
		input time.Duration
		want  string
	}{
		{
			name:  "zero",
			input: 0,
			want:  "0.000",
		},
		{
			name:  "sub-second",
			input: 500 * time.Millisecond,
			want:  "0.500",
		},
		{
			name:  "seconds with remainder",
			input: 12928 * time.Millisecond,
			want:  "12.928",
		},
		{
			name:  "just below a minute",
			input: 60999 * time.Millisecond,
			want:  "60.999",
		},
		{
			name:  "negative",
			input: -500 * time.Millisecond,
			want:  "-0.500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatSeconds(tt.input); got != tt.want {
				t.Errorf("formatSeconds(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
