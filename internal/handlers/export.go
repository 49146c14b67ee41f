package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/reelkeep/reeldb/internal/services"
	"github.com/reelkeep/reeldb/internal/utils"
)

// ExportMoviesCSV handles GET /api/movies/export/csv (admin)
// @Summary Export the catalog as CSV
// @Description Runs the same filter/sort pipeline as the listing, without pagination
// @Tags Movies
// @Produce text/csv
// @Param genre query string false "Exact genre filter; 'all' disables"
// @Param yearMin query int false "Inclusive minimum year"
// @Param yearMax query int false "Inclusive maximum year"
// @Param search query string false "Case-insensitive substring over title, director, synopsis"
// @Param sortBy query string false "title | year | rating | reviewCount"
// @Param order query string false "asc | desc"
// @Success 200 {string} string "CSV document"
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /movies/export/csv [get]
func (h *MovieHandler) ExportMoviesCSV(c *fiber.Ctx) error {
	params, err := parseListQuery(c)
	if err != nil {
		return utils.RespondError(c, err)
	}

	movies, err := h.Catalog.ExportMovies(params)
	if err != nil {
		return utils.RespondError(c, err)
	}

	filename := fmt.Sprintf("movies-%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))

	return c.SendString(services.RenderCSV(movies))
}
