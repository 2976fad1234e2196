package domain

// NumPages returns the page count for a total record count:
// ceil(total / pageSize). Zero records means zero pages.
func NumPages(total int64, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	pages := total / int64(pageSize)
	if total%int64(pageSize) > 0 {
		pages++
	}
	return int(pages)
}

// ResolvePage normalizes a requested page against the total record count
// and returns the SQL offset for it. Pages below 1 resolve to page 1;
// pages past the end resolve to the last valid page instead of erroring.
func ResolvePage(total int64, page, pageSize int) (offset uint64, numPages int) {
	numPages = NumPages(total, pageSize)

	if page < 1 || numPages == 0 {
		page = 1
	}
	if numPages > 0 && page > numPages {
		page = numPages
	}

	offset = uint64(page-1) * uint64(pageSize)
	return offset, numPages
}
