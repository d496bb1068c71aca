package httpserver

import (
	"reelfinder/movie"
)

type SearchRequest struct {
	Query string `query:"q" json:"q" validate:"required,notblank,max=200"`
	Page  int    `query:"page" json:"page" validate:"omitempty,min=1,max=100"`
	Type  string `query:"type" json:"type" validate:"omitempty,oneof=all movie series episode"`
}

func (r SearchRequest) ToQuery() movie.Query {
	return movie.Query{
		Text: r.Query,
		Page: r.Page,
		Kind: movie.Kind(r.Type),
	}
}

type TitleRequest struct {
	ID string `param:"id" json:"id" validate:"required,imdbid"`
}
