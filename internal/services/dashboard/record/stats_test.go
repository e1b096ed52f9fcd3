package record

import "testing"

func TestComputeStats(t *testing.T) {
	records := []Record{
		{ID: "1", About: About{Status: StatusActive}},
		{ID: "2", About: About{Status: StatusActive}},
		{ID: "3", About: About{Status: StatusInvited}},
	}

	got := ComputeStats(records)
	want := Stats{
		Total:          3,
		Active:         2,
		Invited:        1,
		Blocked:        0,
		ActivePercent:  67,
		InvitedPercent: 33,
		BlockedPercent: 0,
	}
	if got != want {
		t.Fatalf("ComputeStats = %+v, want %+v", got, want)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	got := ComputeStats(nil)
	if got != (Stats{}) {
		t.Fatalf("ComputeStats(nil) = %+v, want zero value", got)
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		count, total, want int
	}{
		{count: 0, total: 0, want: 0},
		{count: 1, total: 0, want: 0},
		{count: 1, total: 8, want: 13},
		{count: 1, total: 200, want: 1},
		{count: 1, total: 201, want: 0},
		{count: 5, total: 5, want: 100},
	}
	for _, tc := range tests {
		if got := Percent(tc.count, tc.total); got != tc.want {
			t.Fatalf("Percent(%d, %d) = %d, want %d", tc.count, tc.total, got, tc.want)
		}
	}
}
