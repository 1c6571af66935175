package pagination

import (
	"fmt"

	"github.com/alphalions/gallery/types"
)

const (
	// PageSize is the number of tokens shown per gallery page.
	PageSize = 12
	// FirstPage is the index of the first page; pages are 1-based.
	FirstPage = 1
	// collapseThreshold is the page count up to which every page number is shown.
	collapseThreshold = 5
)

// TotalPages returns ceil(n/size), or 0 when there are no items.
func TotalPages(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Slice returns the window of items shown on page. Out of range pages yield an empty window.
func Slice[T any](items []T, page, size int) []T {
	if page < FirstPage || size <= 0 {
		return items[:0:0]
	}
	start := (page - 1) * size
	if start >= len(items) {
		return items[:0:0]
	}
	end := min(start+size, len(items))
	return items[start:end:end]
}

// Paginator tracks the current page over a collection of a known length.
// The zero value is not usable; use New.
type Paginator struct {
	size  int
	total int
	page  int
}

func New(size int) *Paginator {
	if size <= 0 {
		size = PageSize
	}
	return &Paginator{size: size, page: FirstPage}
}

func (p *Paginator) Size() int { return p.size }

// Page returns the current page. It is always FirstPage when the collection is empty.
func (p *Paginator) Page() int { return p.page }

func (p *Paginator) TotalItems() int { return p.total }

func (p *Paginator) TotalPages() int { return TotalPages(p.total, p.size) }

// SetTotal updates the item count and clamps the current page into range.
func (p *Paginator) SetTotal(n int) {
	if n < 0 {
		n = 0
	}
	p.total = n
	p.page = p.clamp(p.page)
}

// Reset returns to the first page.
func (p *Paginator) Reset() {
	p.page = FirstPage
}

// Prev moves one page back, never below the first page.
func (p *Paginator) Prev() int {
	p.page = p.clamp(p.page - 1)
	return p.page
}

// Next moves one page forward, never beyond the last page.
func (p *Paginator) Next() int {
	p.page = p.clamp(p.page + 1)
	return p.page
}

// Select jumps to page, which must lie in [1, TotalPages()].
func (p *Paginator) Select(page int) error {
	total := p.TotalPages()
	if page < FirstPage || page > total {
		return types.NewInvalidValueError("page", fmt.Sprintf("%d", page), fmt.Sprintf("must be between %d and %d", FirstPage, total))
	}
	p.page = page
	return nil
}

func (p *Paginator) HasPrev() bool { return p.page > FirstPage }

func (p *Paginator) HasNext() bool { return p.page < p.TotalPages() }

func (p *Paginator) clamp(page int) int {
	total := p.TotalPages()
	if page > total {
		page = total
	}
	if page < FirstPage {
		page = FirstPage
	}
	return page
}

// Page is the derived view of one page of a collection.
type Page[T any] struct {
	Items      []T
	Number     int
	TotalPages int
	TotalItems int
}

// Apply derives the current page of items. The paginator's total is synced to len(items).
func Apply[T any](p *Paginator, items []T) Page[T] {
	p.SetTotal(len(items))
	return Page[T]{
		Items:      Slice(items, p.page, p.size),
		Number:     p.page,
		TotalPages: p.TotalPages(),
		TotalItems: len(items),
	}
}
