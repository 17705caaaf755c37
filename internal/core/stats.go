package core

// stats.go aggregates a batch of normalized periods into the figures the
// stats command prints: counts per status, duration and bit error rate
// averages, and distinct stream and user tallies.

import "time"

// Summary describes one batch of viewing periods.
type Summary struct {
	Records         int
	ByStatus        map[Status]int
	TotalDuration   time.Duration
	MeanDuration    time.Duration
	MeanBER         float64
	ValidCount      int
	DistinctStreams int
	DistinctUsers   int
}

// Summarize aggregates periods. An empty batch yields zero counts and zero
// means rather than an error.
func Summarize(periods []ViewingPeriod) Summary {
	sum := Summary{ByStatus: make(map[Status]int)}

	streams := make(map[string]bool)
	users := make(map[string]bool)
	var berTotal float64
	for _, p := range periods {
		sum.Records++
		sum.ByStatus[p.Status]++
		sum.TotalDuration += p.Duration
		berTotal += float64(p.BER)
		if p.Valid {
			sum.ValidCount++
		}
		streams[p.StreamID] = true
		users[p.UserID] = true
	}
	sum.DistinctStreams = len(streams)
	sum.DistinctUsers = len(users)

	if sum.Records > 0 {
		sum.MeanDuration = sum.TotalDuration / time.Duration(sum.Records)
		sum.MeanBER = berTotal / float64(sum.Records)
	}
	return sum
}
