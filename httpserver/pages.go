package httpserver

import (
	"net/http"
	"net/url"

	"reelfinder/errs"
	"reelfinder/movie"
	"reelfinder/search"

	"github.com/labstack/echo/v4"
)

const (
	noticeTitle       = "Search Required"
	detailFailedTitle = "Could not load this title"
)

func (s *Server) RegisterPageRoutes() {
	s.Router.GET("/", s.handleSearchPage)
	s.Router.GET("/title/:id", s.handleTitlePage)
}

type kindOption struct {
	Value    movie.Kind
	Label    string
	Selected bool
}

type resultCard struct {
	ID        string
	Title     string
	Year      string
	KindLabel string
	Poster    string
	Href      string
}

type pageLink struct {
	Page     int
	Href     string
	Current  bool
	Ellipsis bool
}

type pagerView struct {
	Hidden   bool
	PrevHref string
	NextHref string
	Links    []pageLink
}

type searchView struct {
	Query        string
	Kinds        []kindOption
	Status       string
	NoticeTitle  string
	Notice       string
	Err          string
	ErrTitle     string
	RetryHref    string
	TotalResults int
	Cards        []resultCard
	Pager        pagerView
}

type detailView struct {
	Title     string
	Year      string
	KindLabel string
	Poster    string
	Plot      string
	Genres    []string
	Facts     []movie.Fact
	Err       string
	ErrTitle  string
	RetryHref string
	BackHref  string
}

// handleSearchPage renders the search view. The session is seeded from
// the q, page and type parameters; a submitted form with a blank q shows
// a notice instead of searching.
func (s *Server) handleSearchPage(c echo.Context) error {
	if s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	ctx := c.Request().Context()
	values := c.QueryParams()
	params := search.ParseParams(values)
	ctrl := search.NewController(s.MovieService, search.WithLogger(s.Logger))

	// failures are carried in the controller state
	_ = ctrl.Activate(ctx, params)
	if values.Has("q") && params.Query == "" {
		_ = ctrl.SubmitSearch(ctx, "", params.Kind)
	}

	return c.Render(http.StatusOK, "search", newSearchView(ctrl.State()))
}

func (s *Server) handleTitlePage(c echo.Context) error {
	if s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	back := backHref(c.QueryParam("back"))
	d, err := s.MovieService.Details(c.Request().Context(), c.Param("id"))
	if err != nil {
		status, _ := statusFor(err)
		if status >= http.StatusInternalServerError && errs.ErrorCode(err) != errs.EUPSTREAM {
			status = http.StatusBadGateway
		}
		return c.Render(status, "detail", detailView{
			Err:       errs.ErrorMessage(err),
			ErrTitle:  detailFailedTitle,
			RetryHref: c.Request().URL.RequestURI(),
			BackHref:  back,
		})
	}

	return c.Render(http.StatusOK, "detail", detailView{
		Title:     d.Title,
		Year:      d.Year,
		KindLabel: d.Kind.Label(),
		Poster:    posterURL(d.Movie),
		Plot:      d.Plot,
		Genres:    d.Genres,
		Facts:     d.Facts(),
		BackHref:  back,
	})
}

func newSearchView(st search.State) searchView {
	current := search.Params{Query: st.Query, Page: st.Page, Kind: st.Kind}

	v := searchView{
		Query:        st.Query,
		Status:       st.Status.String(),
		Notice:       st.Notice,
		Err:          st.Err,
		TotalResults: st.TotalResults,
	}
	if st.Notice != "" {
		v.NoticeTitle = noticeTitle
	}
	if st.Status == search.StatusFailed {
		v.RetryHref = "/?" + current.Encode()
	}

	for _, k := range movie.Kinds {
		v.Kinds = append(v.Kinds, kindOption{Value: k, Label: k.Label(), Selected: k == st.Kind})
	}

	back := current.Encode()
	for _, m := range st.Items {
		v.Cards = append(v.Cards, resultCard{
			ID:        m.ID,
			Title:     m.Title,
			Year:      m.Year,
			KindLabel: m.Kind.Label(),
			Poster:    posterURL(m),
			Href:      "/title/" + url.PathEscape(m.ID) + "?" + url.Values{"back": {back}}.Encode(),
		})
	}

	if st.Status == search.StatusResults {
		v.Pager = newPagerView(st.Pager(), current)
	} else {
		v.Pager.Hidden = true
	}
	return v
}

func newPagerView(p search.Pager, current search.Params) pagerView {
	v := pagerView{Hidden: p.Hidden()}
	if v.Hidden {
		return v
	}
	if p.HasPrev() {
		v.PrevHref = "/?" + current.WithPage(p.Prev()).Encode()
	}
	if p.HasNext() {
		v.NextHref = "/?" + current.WithPage(p.Next()).Encode()
	}
	for _, m := range p.Visible() {
		if m.Ellipsis {
			v.Links = append(v.Links, pageLink{Ellipsis: true})
			continue
		}
		v.Links = append(v.Links, pageLink{
			Page:    m.Page,
			Href:    "/?" + current.WithPage(m.Page).Encode(),
			Current: m.Page == p.Current,
		})
	}
	return v
}

func posterURL(m movie.Movie) string {
	if m.HasPoster() {
		return m.Poster
	}
	return placeholderPoster
}

// backHref rebuilds the search URL carried in the back parameter, keeping
// only the known search keys.
func backHref(raw string) string {
	values, err := url.ParseQuery(raw)
	if err != nil {
		return "/"
	}
	p := search.ParseParams(values)
	if p.Query == "" {
		return "/"
	}
	return "/?" + p.Encode()
}
