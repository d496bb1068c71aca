package httpserver

import (
	"net/http"

	"reelfinder/errs"
	"reelfinder/movie"

	"github.com/labstack/echo/v4"
)

// handleSearchTitles godoc
// @Summary Search Titles
// @Description One page of OMDb results for a title query
// @Tags titles
// @Produce json
// @Param q query string true "Title to search for"
// @Param page query int false "Result page (1-100), default 1"
// @Param type query string false "all, movie, series or episode"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse
// @Failure 502 {object} APIResponse
// @Failure 503 {object} APIResponse
// @Router /api/search [get]
func (s *Server) handleSearchTitles(c echo.Context) error {
	if s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return errs.Errorf(errs.EINVALID, "invalid search parameters")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	page, err := s.MovieService.Search(c.Request().Context(), req.ToQuery())
	if err != nil {
		return err
	}

	meta := map[string]int{"pages": movie.TotalPages(page.TotalResults, movie.PageSize)}
	return writePagedList(c, http.StatusOK, page.Items, meta, page.Page, movie.PageSize, page.TotalResults)
}

// handleGetTitle godoc
// @Summary Get Title
// @Description Full record of one title by IMDb id
// @Tags titles
// @Produce json
// @Param id path string true "IMDb id, e.g. tt0372784"
// @Success 200 {object} APIResponse{result=movie.Detail}
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Failure 503 {object} APIResponse
// @Router /api/titles/{id} [get]
func (s *Server) handleGetTitle(c echo.Context) error {
	if s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	var req TitleRequest
	if err := c.Bind(&req); err != nil {
		return errs.Errorf(errs.EINVALID, "invalid title id")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	d, err := s.MovieService.Details(c.Request().Context(), req.ID)
	if err != nil {
		return err
	}
	return writeSuccess(c, http.StatusOK, d)
}
