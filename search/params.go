package search

import (
	"net/url"
	"strconv"
	"strings"

	"reelfinder/movie"
)

// Params is the shareable URL form of a search: q, page and type.
type Params struct {
	Query string
	Page  int
	Kind  movie.Kind
}

// ParseParams reads q, page and type. A missing or malformed page becomes
// 1 and an unknown type becomes all.
func ParseParams(v url.Values) Params {
	p := Params{
		Query: strings.TrimSpace(v.Get("q")),
		Page:  1,
		Kind:  movie.KindAll,
	}
	if n, err := strconv.Atoi(v.Get("page")); err == nil && n > 0 {
		p.Page = n
	}
	if k, err := movie.ParseKind(v.Get("type")); err == nil {
		p.Kind = k
	}
	return p
}

// Values encodes the params. The type key is left out for all.
func (p Params) Values() url.Values {
	v := url.Values{}
	if p.Query != "" {
		v.Set("q", p.Query)
	}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if !p.Kind.IsAll() {
		v.Set("type", string(p.Kind))
	}
	return v
}

func (p Params) Encode() string {
	return p.Values().Encode()
}

func (p Params) WithPage(n int) Params {
	p.Page = n
	return p
}

// WithKind switches the filter and goes back to the first page.
func (p Params) WithKind(k movie.Kind) Params {
	p.Kind = k
	p.Page = 1
	return p
}

func (p Params) query() movie.Query {
	return movie.Query{Text: p.Query, Page: p.Page, Kind: p.Kind}
}
