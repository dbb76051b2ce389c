package store

import "strconv"

// Page sizes the dashboard offers.
var AllowedPageSizes = []int{3, 6, 10, 20}

// DefaultPageSize is used when no size is requested.
const DefaultPageSize = 6

// Ellipsis marks a collapsed run of page numbers in a page-number strip.
const Ellipsis = "..."

// IsAllowedPageSize reports whether size is one of the offered page sizes.
func IsAllowedPageSize(size int) bool {
	for _, s := range AllowedPageSizes {
		if s == size {
			return true
		}
	}
	return false
}

// TotalPages returns ceil(count/size) with a floor of one page.
func TotalPages(count, size int) int {
	pages := (count + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}

// PageBounds returns the half-open [lo, hi) slice bounds for the given
// 1-indexed page, clamped so slicing past the end yields a shorter or empty
// result rather than an error.
func PageBounds(count, page, size int) (int, int) {
	lo := (page - 1) * size
	if lo > count {
		lo = count
	}
	if lo < 0 {
		lo = 0
	}
	hi := lo + size
	if hi > count {
		hi = count
	}
	return lo, hi
}

// PageNumbers builds the page-number strip for display: the first page
// always, up to two pages either side of the current one, and the last page
// when more than one exists. Gaps wider than a single page collapse to an
// ellipsis marker.
func PageNumbers(current, total int) []string {
	const delta = 2

	out := []string{}
	if current-delta > 2 {
		out = append(out, "1", Ellipsis)
	} else {
		out = append(out, "1")
	}

	lo := current - delta
	if lo < 2 {
		lo = 2
	}
	hi := current + delta
	if hi > total-1 {
		hi = total - 1
	}
	for i := lo; i <= hi; i++ {
		out = append(out, strconv.Itoa(i))
	}

	if current+delta < total-1 {
		out = append(out, Ellipsis, strconv.Itoa(total))
	} else if total > 1 {
		out = append(out, strconv.Itoa(total))
	}

	return out
}
