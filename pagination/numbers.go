package pagination

// PageNumber is one entry of the page number bar.
type PageNumber struct {
	Page int `json:"page" extensions:"x-order:0"`
	// EllipsisBefore marks a collapsed gap between this page and the previous entry.
	EllipsisBefore bool `json:"ellipsis_before" extensions:"x-order:1"`
	Current        bool `json:"current" extensions:"x-order:2"`
}

// PageNumbers returns the page numbers to display. Up to five pages are all shown;
// beyond that only the first, the last, the current page and its neighbors are, with one
// ellipsis per gap.
func PageNumbers(current, total int) []PageNumber {
	if total <= 0 {
		return nil
	}

	var numbers []PageNumber
	prev := 0
	for page := FirstPage; page <= total; page++ {
		if !showPage(page, current, total) {
			continue
		}
		numbers = append(numbers, PageNumber{
			Page:           page,
			EllipsisBefore: prev > 0 && page-prev > 1,
			Current:        page == current,
		})
		prev = page
	}
	return numbers
}

func showPage(page, current, total int) bool {
	if total <= collapseThreshold {
		return true
	}
	if page == FirstPage || page == total {
		return true
	}
	return page >= current-1 && page <= current+1
}
