package movie

import (
	"context"
	"strings"
)

type Service interface {
	Search(ctx context.Context, q Query) (Page, error)
	Details(ctx context.Context, id string) (Detail, error)
}

// Repository is the catalog the use case reads from.
type Repository interface {
	Search(ctx context.Context, q Query) (Page, error)
	Details(ctx context.Context, id string) (Detail, error)
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) Search(ctx context.Context, q Query) (Page, error) {
	q.Text = strings.TrimSpace(q.Text)
	if q.Page == 0 {
		q.Page = 1
	}
	if q.Kind == "" {
		q.Kind = KindAll
	}
	if err := q.Validate(); err != nil {
		return Page{}, err
	}
	return uc.r.Search(ctx, q)
}

func (uc *Usecase) Details(ctx context.Context, id string) (Detail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Detail{}, ErrInvalidID
	}
	return uc.r.Details(ctx, id)
}
