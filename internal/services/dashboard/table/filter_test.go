package table

import (
	"testing"
	"time"

	"github.com/louisbranch/userdash/internal/services/dashboard/record"
)

func filterFixture() []Record {
	return []Record{
		makeRecord("1", "Alice Martin", record.StatusActive, "15 May 2023"),
		makeRecord("2", "Bruno Alves", record.StatusInvited, "01 Jun 2023"),
		makeRecord("3", "Carla Souza", record.StatusBlocked, "30 Jun 2023"),
		makeRecord("4", "Dmitri ALVAREZ", record.StatusActive, "01 Jul 2023"),
		makeRecord("5", "Eve Stone", record.StatusActive, "not a date"),
		makeRecord("6", "Ünal Öz", record.StatusInvited, "12 Jun 2023"),
	}
}

func TestFilterNoCriteriaReturnsAllInOrder(t *testing.T) {
	t.Parallel()

	records := filterFixture()
	got := Filter(records, Criteria{Status: StatusAll})
	assertIDs(t, got, "1", "2", "3", "4", "5", "6")

	got = Filter(records, Criteria{})
	assertIDs(t, got, "1", "2", "3", "4", "5", "6")
}

func TestFilterByStatus(t *testing.T) {
	t.Parallel()

	got := Filter(filterFixture(), Criteria{Status: StatusFilter(record.StatusActive)})
	assertIDs(t, got, "1", "4", "5")
}

func TestFilterSearchIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		search string
		want   []string
	}{
		{search: "alv", want: []string{"2", "4"}},
		{search: "ALV", want: []string{"2", "4"}},
		{search: "  stone ", want: []string{"5"}},
		{search: "ünal", want: []string{"6"}},
		{search: "ÖZ", want: []string{"6"}},
		{search: "nobody", want: []string{}},
	}
	for _, tc := range tests {
		got := Filter(filterFixture(), Criteria{Status: StatusAll, Search: tc.search})
		assertIDs(t, got, tc.want...)
	}
}

func TestFilterDateRangeInclusive(t *testing.T) {
	t.Parallel()

	criteria := Criteria{
		Status: StatusAll,
		From:   time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC),
		To:     time.Date(2023, time.June, 30, 0, 0, 0, 0, time.UTC),
	}
	got := Filter(filterFixture(), criteria)
	assertIDs(t, got, "2", "3", "6")
}

func TestFilterSingleDateBound(t *testing.T) {
	t.Parallel()

	fromOnly := Criteria{From: time.Date(2023, time.June, 30, 15, 0, 0, 0, time.UTC)}
	assertIDs(t, Filter(filterFixture(), fromOnly), "3", "4")

	toOnly := Criteria{To: time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)}
	assertIDs(t, Filter(filterFixture(), toOnly), "1", "2")
}

func TestFilterUnparsableDateOnlyExcludedWithBounds(t *testing.T) {
	t.Parallel()

	records := []Record{makeRecord("1", "Bad Date", record.StatusActive, "32 Foo 2023")}
	assertIDs(t, Filter(records, Criteria{}), "1")
	assertIDs(t, Filter(records, Criteria{From: time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)}))
}

func TestFilterCombinesPredicates(t *testing.T) {
	t.Parallel()

	criteria := Criteria{
		Status: StatusFilter(record.StatusInvited),
		Search: "a",
		From:   time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
	assertIDs(t, Filter(filterFixture(), criteria), "2", "6")
}

func TestFilterPreservesRelativeOrder(t *testing.T) {
	t.Parallel()

	records := filterFixture()
	position := make(map[string]int, len(records))
	for i, rec := range records {
		position[rec.ID] = i
	}

	criteria := []Criteria{
		{Status: StatusFilter(record.StatusActive)},
		{Search: "a"},
		{To: time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC)},
		{Status: StatusFilter(record.StatusBlocked), Search: "zz"},
	}
	for _, c := range criteria {
		got := Filter(records, c)
		for i := 1; i < len(got); i++ {
			if position[got[i-1].ID] >= position[got[i].ID] {
				t.Fatalf("criteria %+v broke order: %v", c, ids(got))
			}
		}
	}
}

func TestParseStatusFilter(t *testing.T) {
	t.Parallel()

	tests := map[string]StatusFilter{
		"":         StatusAll,
		"ALL":      StatusAll,
		"active":   StatusFilter(record.StatusActive),
		"BLOCKED":  StatusFilter(record.StatusBlocked),
		"INACTIVE": StatusAll,
	}
	for input, want := range tests {
		if got := ParseStatusFilter(input); got != want {
			t.Fatalf("ParseStatusFilter(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestEndOfDay(t *testing.T) {
	t.Parallel()

	got := EndOfDay(time.Date(2023, time.June, 30, 8, 0, 0, 0, time.UTC))
	want := time.Date(2023, time.June, 30, 23, 59, 59, 999_000_000, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("EndOfDay = %v, want %v", got, want)
	}
}
