package record

import "math"

// Stats aggregates status counts over a record set.
type Stats struct {
	Total          int
	Active         int
	Invited        int
	Blocked        int
	ActivePercent  int
	InvitedPercent int
	BlockedPercent int
}

// ComputeStats counts records by status.
func ComputeStats(records []Record) Stats {
	stats := Stats{Total: len(records)}
	for _, rec := range records {
		switch rec.About.Status {
		case StatusActive:
			stats.Active++
		case StatusInvited:
			stats.Invited++
		case StatusBlocked:
			stats.Blocked++
		}
	}
	stats.ActivePercent = Percent(stats.Active, stats.Total)
	stats.InvitedPercent = Percent(stats.Invited, stats.Total)
	stats.BlockedPercent = Percent(stats.Blocked, stats.Total)
	return stats
}

// Percent returns round(count/total*100), or 0 when total is not positive.
func Percent(count, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}
