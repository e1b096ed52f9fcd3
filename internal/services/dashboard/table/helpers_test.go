package table

import (
	"strconv"
	"testing"

	"github.com/louisbranch/userdash/internal/services/dashboard/record"
)

func makeRecord(id, name string, status record.Status, date string) Record {
	return Record{
		ID: id,
		About: record.About{
			Name:   name,
			Status: status,
			Email:  "user" + id + "@example.com",
		},
		Details: record.Details{Date: date, InvitedBy: "Admin"},
	}
}

func numberedRecords(n int) []Record {
	records := make([]Record, 0, n)
	for i := 1; i <= n; i++ {
		records = append(records, makeRecord(strconv.Itoa(i), "User "+strconv.Itoa(i), record.StatusActive, "01 Jan 2024"))
	}
	return records
}

func ids(records []Record) []string {
	out := make([]string, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.ID)
	}
	return out
}

func assertIDs(t *testing.T, got []Record, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("ids = %v, want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("ids = %v, want %v", gotIDs, want)
		}
	}
}
