package search

import "reelfinder/movie"

// Delta is how many pages either side of the current one stay visible.
const Delta = 2

// Marker is one pager slot: a page number or a gap.
type Marker struct {
	Page     int
	Ellipsis bool
}

type Pager struct {
	Current int
	Total   int
}

// NewPager builds a pager for the given result count. Current is clamped
// into [1, total pages].
func NewPager(current, totalResults, size int) Pager {
	total := movie.TotalPages(totalResults, size)
	if total > 0 && current > total {
		current = total
	}
	if current < 1 {
		current = 1
	}
	return Pager{Current: current, Total: total}
}

func (p Pager) TotalPages() int { return p.Total }

// Hidden reports whether there is nothing to page through.
func (p Pager) Hidden() bool { return p.Total <= 1 }

func (p Pager) HasPrev() bool { return p.Current > 1 }

func (p Pager) HasNext() bool { return p.Current < p.Total }

func (p Pager) Prev() int { return max(p.Current-1, 1) }

func (p Pager) Next() int { return min(p.Current+1, max(p.Total, 1)) }

// Visible returns the condensed page sequence: the first page, a window
// of Delta pages around the current one, and the last page, with
// ellipsis markers over gaps.
func (p Pager) Visible() []Marker {
	if p.Hidden() {
		return nil
	}

	lo := max(2, p.Current-Delta)
	hi := min(p.Total-1, p.Current+Delta)

	markers := []Marker{{Page: 1}}
	if p.Current-Delta > 2 {
		markers = append(markers, Marker{Ellipsis: true})
	}
	for i := lo; i <= hi; i++ {
		markers = append(markers, Marker{Page: i})
	}
	if p.Current+Delta < p.Total-1 {
		markers = append(markers, Marker{Ellipsis: true})
	}
	markers = append(markers, Marker{Page: p.Total})
	return markers
}
