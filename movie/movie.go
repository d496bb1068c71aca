package movie

import (
	"strings"

	"reelfinder/errs"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PageSize is the fixed number of items the catalog returns per page.
const PageSize = 10

// NotAvailable is the catalog's marker for a missing field.
const NotAvailable = "N/A"

var (
	ErrEmptyQuery  = errs.Errorf(errs.EINVALID, "Please enter a movie title to search.")
	ErrInvalidPage = errs.Errorf(errs.EINVALID, "invalid page number")
	ErrInvalidKind = errs.Errorf(errs.EINVALID, "invalid type filter")
	ErrInvalidID   = errs.Errorf(errs.EINVALID, "invalid title id")
)

type Kind string

const (
	KindAll     Kind = "all"
	KindMovie   Kind = "movie"
	KindSeries  Kind = "series"
	KindEpisode Kind = "episode"
)

// Kinds lists the filter choices in display order.
var Kinds = []Kind{KindAll, KindMovie, KindSeries, KindEpisode}

// ParseKind accepts the filter values case-insensitively. Blank means all.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return KindAll, nil
	case KindAll, KindMovie, KindSeries, KindEpisode:
		return k, nil
	default:
		return KindAll, ErrInvalidKind
	}
}

// IsAll reports whether the kind applies no filter.
func (k Kind) IsAll() bool {
	return k == "" || k == KindAll
}

func (k Kind) Label() string {
	switch k {
	case KindMovie:
		return "Movies"
	case KindSeries:
		return "TV Series"
	case KindEpisode:
		return "Episodes"
	case "", KindAll:
		return "All Types"
	default:
		// catalog kinds outside the filter set, e.g. "game"
		return cases.Title(language.English).String(string(k))
	}
}

// Movie is a single catalog entry as returned by a search.
type Movie struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Year   string `json:"year"`
	Kind   Kind   `json:"kind"`
	Poster string `json:"poster"`
}

func (m Movie) HasPoster() bool {
	return m.Poster != "" && m.Poster != NotAvailable
}

// Detail is the full record of a single title. Optional fields are empty
// when the catalog has no value for them.
type Detail struct {
	Movie

	Plot       string   `json:"plot,omitempty"`
	Genres     []string `json:"genres,omitempty"`
	Director   string   `json:"director,omitempty"`
	Actors     string   `json:"actors,omitempty"`
	Runtime    string   `json:"runtime,omitempty"`
	Rating     string   `json:"rating,omitempty"`
	Released   string   `json:"released,omitempty"`
	Country    string   `json:"country,omitempty"`
	Language   string   `json:"language,omitempty"`
	Awards     string   `json:"awards,omitempty"`
	BoxOffice  string   `json:"boxOffice,omitempty"`
	Production string   `json:"production,omitempty"`
	Website    string   `json:"website,omitempty"`
}

type Fact struct {
	Label string
	Value string
}

// Facts returns the labelled optional fields that carry a value, in
// display order.
func (d Detail) Facts() []Fact {
	all := []Fact{
		{"Director", d.Director},
		{"Cast", d.Actors},
		{"Runtime", d.Runtime},
		{"IMDb Rating", d.Rating},
		{"Released", d.Released},
		{"Country", d.Country},
		{"Language", d.Language},
		{"Box Office", d.BoxOffice},
		{"Production", d.Production},
		{"Awards", d.Awards},
		{"Website", d.Website},
	}
	facts := make([]Fact, 0, len(all))
	for _, f := range all {
		if f.Value != "" {
			facts = append(facts, f)
		}
	}
	return facts
}

// Clean maps the catalog's N/A marker to an empty string.
func Clean(s string) string {
	s = strings.TrimSpace(s)
	if s == NotAvailable {
		return ""
	}
	return s
}

// SplitList splits a comma separated catalog field, dropping blanks.
func SplitList(s string) []string {
	s = Clean(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Page is one page of search results.
type Page struct {
	Items        []Movie `json:"items"`
	TotalResults int     `json:"totalResults"`
	Page         int     `json:"page"`
}

// Query identifies one page of a title search.
type Query struct {
	Text string
	Page int
	Kind Kind
}

func (q Query) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return ErrEmptyQuery
	}
	if q.Page < 1 {
		return ErrInvalidPage
	}
	if _, err := ParseKind(string(q.Kind)); err != nil {
		return err
	}
	return nil
}

// TotalPages returns ceil(total/size), or 0 when size is not positive.
func TotalPages(total, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}
