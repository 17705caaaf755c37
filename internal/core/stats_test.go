package core

import (
	"math"
	"testing"
	"time"
)

func TestSummarize(t *testing.T) {
	periods := []ViewingPeriod{
		{Status: StatusMatch, UserID: "1", StreamID: "a", Duration: 10 * time.Second, BER: 0.2, Valid: true},
		{Status: StatusMatch, UserID: "2", StreamID: "a", Duration: 20 * time.Second, BER: 0.4, Valid: true},
		{Status: StatusNoData, UserID: "2", StreamID: "b", Duration: 30 * time.Second, BER: 0.6},
	}

	sum := Summarize(periods)

	if sum.Records != 3 {
		t.Errorf("Records = %d, want 3", sum.Records)
	}
	if sum.ByStatus[StatusMatch] != 2 {
		t.Errorf("ByStatus[MATCH] = %d, want 2", sum.ByStatus[StatusMatch])
	}
	if sum.ByStatus[StatusNoData] != 1 {
		t.Errorf("ByStatus[NO_DATA] = %d, want 1", sum.ByStatus[StatusNoData])
	}
	if want := 60 * time.Second; sum.TotalDuration != want {
		t.Errorf("TotalDuration = %v, want %v", sum.TotalDuration, want)
	}
	if want := 20 * time.Second; sum.MeanDuration != want {
		t.Errorf("MeanDuration = %v, want %v", sum.MeanDuration, want)
	}
	if math.Abs(sum.MeanBER-0.4) > 1e-6 {
		t.Errorf("MeanBER = %v, want 0.4", sum.MeanBER)
	}
	if sum.ValidCount != 2 {
		t.Errorf("ValidCount = %d, want 2", sum.ValidCount)
	}
	if sum.DistinctStreams != 2 {
		t.Errorf("DistinctStreams = %d, want 2", sum.DistinctStreams)
	}
	if sum.DistinctUsers != 2 {
		t.Errorf("DistinctUsers = %d, want 2", sum.DistinctUsers)
	}
}

func TestSummarize_Empty(t *testing.T) {
	sum := Summarize(nil)

	if sum.Records != 0 {
		t.Errorf("Records = %d, want 0", sum.Records)
	}
	if sum.ByStatus == nil || len(sum.ByStatus) != 0 {
		t.Errorf("ByStatus = %v, want empty non-nil map", sum.ByStatus)
	}
	if sum.MeanDuration != 0 || sum.MeanBER != 0 {
		t.Errorf("means = %v/%v, want zero", sum.MeanDuration, sum.MeanBER)
	}
	if sum.DistinctStreams != 0 || sum.DistinctUsers != 0 {
		t.Errorf("distinct counts = %d/%d, want zero", sum.DistinctStreams, sum.DistinctUsers)
	}
}
