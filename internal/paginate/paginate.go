// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package paginate windows an ordered collection into pages and ranks
// interaction scores into display tiers. Page state lives in a Pager value,
// never in the collection, so the same helpers serve any ordered list.
package paginate

import "fmt"

// PageSizes lists the page sizes a user may choose.
var PageSizes = []int{10, 25, 50}

// DefaultPageSize is the page size used before the user picks one.
const DefaultPageSize = 10

// ValidPageSize reports whether size is one of PageSizes.
func ValidPageSize(size int) bool {
	for _, s := range PageSizes {
		if s == size {
			return true
		}
	}
	return false
}

// Slice returns items[page*size : page*size+size], clipped to the list. The
// original order is kept. A page past the end yields an empty slice, as does
// a non-positive size or a negative page.
func Slice[T any](items []T, page, size int) []T {
	if size <= 0 || page < 0 {
		return []T{}
	}
	start := page * size
	if start >= len(items) {
		return []T{}
	}
	end := min(start+size, len(items))
	return items[start:end]
}

// Pager is the current page position over a list. The zero value is not
// usable; call NewPager.
type Pager struct {
	Page int
	Size int
}

// NewPager returns a pager on page 0. An invalid size falls back to
// DefaultPageSize.
func NewPager(size int) Pager {
	if !ValidPageSize(size) {
		size = DefaultPageSize
	}
	return Pager{Size: size}
}

// SetPageSize switches the page size and always returns to page 0.
func (p *Pager) SetPageSize(size int) error {
	if !ValidPageSize(size) {
		return fmt.Errorf("invalid page size %d: use one of %v", size, PageSizes)
	}
	p.Size = size
	p.Page = 0
	return nil
}

// SetPage moves to page; negative values clamp to 0. Pages past the end are
// allowed and render empty.
func (p *Pager) SetPage(page int) {
	p.Page = max(page, 0)
}

// Next advances one page if a later page holds items.
func (p *Pager) Next(total int) bool {
	if p.Page+1 >= p.PageCount(total) {
		return false
	}
	p.Page++
	return true
}

// Prev goes back one page unless already on page 0.
func (p *Pager) Prev() bool {
	if p.Page == 0 {
		return false
	}
	p.Page--
	return true
}

// PageCount returns ceil(total/size).
func (p Pager) PageCount(total int) int {
	if p.Size <= 0 || total <= 0 {
		return 0
	}
	return (total + p.Size - 1) / p.Size
}

// Bounds returns the 1-based first and last positions shown on the current
// page. Both are 0 when the page is empty.
func (p Pager) Bounds(total int) (from, to int) {
	start := p.Page * p.Size
	if p.Size <= 0 || start >= total {
		return 0, 0
	}
	return start + 1, min(start+p.Size, total)
}

// Apply returns the current page of items.
func Apply[T any](p Pager, items []T) []T {
	return Slice(items, p.Page, p.Size)
}
