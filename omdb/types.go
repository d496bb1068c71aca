package omdb

import (
	"reelfinder/movie"
	"strconv"
	"strings"
)

const responseTrue = "True"

type searchResponse struct {
	Search       []searchItem `json:"Search"`
	TotalResults string       `json:"totalResults"`
	Response     string       `json:"Response"`
	Error        string       `json:"Error"`
}

type searchItem struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	ImdbID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

type detailResponse struct {
	searchItem

	Plot       string `json:"Plot"`
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Actors     string `json:"Actors"`
	Runtime    string `json:"Runtime"`
	ImdbRating string `json:"imdbRating"`
	Released   string `json:"Released"`
	Country    string `json:"Country"`
	Language   string `json:"Language"`
	Awards     string `json:"Awards"`
	BoxOffice  string `json:"BoxOffice"`
	Production string `json:"Production"`
	Website    string `json:"Website"`
	Response   string `json:"Response"`
	Error      string `json:"Error"`
}

func (it searchItem) toMovie() movie.Movie {
	kind, err := movie.ParseKind(it.Type)
	if err != nil {
		// the catalog also knows "game"; keep its raw value for display
		kind = movie.Kind(strings.ToLower(it.Type))
	}
	return movie.Movie{
		ID:     it.ImdbID,
		Title:  it.Title,
		Year:   it.Year,
		Kind:   kind,
		Poster: it.Poster,
	}
}

func (r searchResponse) toPage(page int) movie.Page {
	items := make([]movie.Movie, 0, len(r.Search))
	for _, it := range r.Search {
		items = append(items, it.toMovie())
	}
	total, err := strconv.Atoi(strings.TrimSpace(r.TotalResults))
	if err != nil || total < len(items) {
		total = len(items)
	}
	return movie.Page{
		Items:        items,
		TotalResults: total,
		Page:         page,
	}
}

func (r detailResponse) toDetail() movie.Detail {
	return movie.Detail{
		Movie:      r.searchItem.toMovie(),
		Plot:       movie.Clean(r.Plot),
		Genres:     movie.SplitList(r.Genre),
		Director:   movie.Clean(r.Director),
		Actors:     movie.Clean(r.Actors),
		Runtime:    movie.Clean(r.Runtime),
		Rating:     movie.Clean(r.ImdbRating),
		Released:   movie.Clean(r.Released),
		Country:    movie.Clean(r.Country),
		Language:   movie.Clean(r.Language),
		Awards:     movie.Clean(r.Awards),
		BoxOffice:  movie.Clean(r.BoxOffice),
		Production: movie.Clean(r.Production),
		Website:    movie.Clean(r.Website),
	}
}
