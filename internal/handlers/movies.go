package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/reelkeep/reeldb/internal/models"
	"github.com/reelkeep/reeldb/internal/services"
	"github.com/reelkeep/reeldb/internal/types"
	"github.com/reelkeep/reeldb/internal/utils"
)

// MovieHandler handles catalog routes
type MovieHandler struct {
	Catalog *services.Catalog
}

// ListMovies handles GET /api/movies
// @Summary List movies
// @Description Filter, search, sort, and paginate the movie catalog
// @Tags Movies
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Param genre query string false "Exact genre filter; 'all' disables"
// @Param yearMin query int false "Inclusive minimum year"
// @Param yearMax query int false "Inclusive maximum year"
// @Param search query string false "Case-insensitive substring over title, director, synopsis"
// @Param sortBy query string false "title | year | rating | reviewCount"
// @Param order query string false "asc | desc"
// @Success 200 {object} models.MoviesResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /movies [get]
func (h *MovieHandler) ListMovies(c *fiber.Ctx) error {
	params, err := parseListQuery(c)
	if err != nil {
		return utils.RespondError(c, err)
	}

	page, limit, err := parsePagination(c)
	if err != nil {
		return utils.RespondError(c, err)
	}

	resp, err := h.Catalog.ListMovies(params, page, limit)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// GetMovie handles GET /api/movies/:id
// @Summary Get one movie
// @Tags Movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} models.Movie
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovie(c *fiber.Ctx) error {
	id, err := parseID(c, "movie")
	if err != nil {
		return utils.RespondError(c, err)
	}

	movie, err := h.Catalog.GetMovie(id)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(movie)
}

// CreateMovie handles POST /api/movies (admin)
// @Summary Create a movie
// @Tags Movies
// @Accept json
// @Produce json
// @Param body body models.CreateMovieRequest true "Movie to create"
// @Success 201 {object} models.Movie
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /movies [post]
func (h *MovieHandler) CreateMovie(c *fiber.Ctx) error {
	body := c.Body()

	if err := requireFields(body, models.RequiredMovieFields); err != nil {
		return utils.RespondError(c, err)
	}

	var req models.CreateMovieRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return utils.RespondError(c,
			types.NewValidationError("Invalid input", "catalog.validation.input"))
	}

	if err := validateStruct(&req); err != nil {
		return utils.RespondError(c, err)
	}

	movie, err := h.Catalog.CreateMovie(&req)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(movie)
}

// UpdateMovie handles PUT /api/movies/:id (admin)
// @Summary Update a movie
// @Description Partial update over the allow-listed mutable fields; unknown keys are rejected
// @Tags Movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param body body models.UpdateMovieRequest true "Fields to update"
// @Success 200 {object} models.Movie
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /movies/{id} [put]
func (h *MovieHandler) UpdateMovie(c *fiber.Ctx) error {
	id, err := parseID(c, "movie")
	if err != nil {
		return utils.RespondError(c, err)
	}

	var req models.UpdateMovieRequest
	if err := decodeStrict(c.Body(), &req); err != nil {
		return utils.RespondError(c, err)
	}

	if err := validateStruct(&req); err != nil {
		return utils.RespondError(c, err)
	}

	movie, err := h.Catalog.UpdateMovie(id, &req)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(movie)
}

// DeleteMovie handles DELETE /api/movies/:id (admin)
// @Summary Delete a movie
// @Description Deletes the movie and cascade-deletes its reviews
// @Tags Movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /movies/{id} [delete]
func (h *MovieHandler) DeleteMovie(c *fiber.Ctx) error {
	id, err := parseID(c, "movie")
	if err != nil {
		return utils.RespondError(c, err)
	}

	if err := h.Catalog.DeleteMovie(id); err != nil {
		return utils.RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}
