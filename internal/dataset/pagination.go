package dataset

const (
	// DefaultLimit is the page size used when no valid limit was requested
	DefaultLimit = 100

	// MaxLimit is the largest page size a client may request; larger limits are capped
	MaxLimit = 1000
)

// Page represents a window of a record sequence together with its pagination metadata
type Page[T any] struct {
	Records      []T
	CurrentPage  int
	PerPage      int
	TotalRecords int
	TotalPages   int
}

// Paginate cuts the window [(page-1)*limit, page*limit) out of records.
// A limit <= 0 falls back to DefaultLimit. Offsets are clamped to the bounds of records, so a page before the
// first one starts at the beginning and a page after the last one is empty.
// CurrentPage reports the requested page unchanged.
func Paginate[T any](records []T, page, limit int) *Page[T] {
	if limit <= 0 {
		limit = DefaultLimit
	}
	total := len(records)

	offset := 0
	if page > 1 {
		if page-1 > total/limit {
			offset = total
		} else {
			offset = min((page-1)*limit, total)
		}
	}
	end := offset + limit
	if end > total || end < offset {
		end = total
	}

	window := make([]T, end-offset)
	copy(window, records[offset:end])

	return &Page[T]{
		Records:      window,
		CurrentPage:  page,
		PerPage:      limit,
		TotalRecords: total,
		TotalPages:   totalPages(total, limit),
	}
}

func totalPages(total, limit int) int {
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return pages
}
