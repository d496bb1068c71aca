package search

import (
	"slices"

	"reelfinder/movie"
)

type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusResults
	StatusEmpty
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusResults:
		return "results"
	case StatusEmpty:
		return "empty"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is a snapshot of one search session.
type State struct {
	Query        string
	Kind         movie.Kind
	Page         int
	TotalResults int
	Items        []movie.Movie
	Status       Status

	// Err is the user facing failure message. It is empty unless Status is
	// StatusFailed.
	Err          string
	ErrRetryable bool

	// Searched is set once the session has issued its first search.
	Searched bool

	// Notice is a transient validation message, such as a blank query.
	Notice string

	// Version grows with every change the controller makes; of two
	// snapshots the one with the larger Version is newer.
	Version uint64
}

func (s State) Loading() bool {
	return s.Status == StatusLoading
}

func (s State) TotalPages() int {
	return movie.TotalPages(s.TotalResults, movie.PageSize)
}

func (s State) Pager() Pager {
	return NewPager(s.Page, s.TotalResults, movie.PageSize)
}

func (s State) clone() State {
	s.Items = slices.Clone(s.Items)
	return s
}
