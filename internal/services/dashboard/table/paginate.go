package table

// PageSize is the fixed number of rows per page.
const PageSize = 10

// Page is one slice of the sorted, filtered sequence.
type Page struct {
	// Number is the 1-based page number after clamping.
	Number     int
	TotalPages int
	TotalItems int
	Items      []Record
	// First and Last are 1-based item positions; both are 0 when empty.
	First int
	Last  int
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a following page exists.
func (p Page) HasNext() bool { return p.Number < p.TotalPages }

// TotalPages returns ceil(count/size), never less than 1.
func TotalPages(count, size int) int {
	if size <= 0 {
		size = PageSize
	}
	if count <= 0 {
		return 1
	}
	return (count + size - 1) / size
}

// ClampPage keeps page within [1, totalPages].
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Paginate returns the requested page of records, clamping out-of-range pages.
func Paginate(records []Record, page, size int) Page {
	if size <= 0 {
		size = PageSize
	}
	total := len(records)
	totalPages := TotalPages(total, size)
	page = ClampPage(page, totalPages)

	start := (page - 1) * size
	end := min(start+size, total)

	result := Page{
		Number:     page,
		TotalPages: totalPages,
		TotalItems: total,
		Items:      records[start:end:end],
	}
	if end > start {
		result.First = start + 1
		result.Last = end
	}
	return result
}
