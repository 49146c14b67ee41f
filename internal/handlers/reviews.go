package handlers

import (
	"encoding/json"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/reelkeep/reeldb/internal/models"
	"github.com/reelkeep/reeldb/internal/services"
	"github.com/reelkeep/reeldb/internal/types"
	"github.com/reelkeep/reeldb/internal/utils"
)

// ReviewHandler handles review routes
type ReviewHandler struct {
	Catalog *services.Catalog
}

// ListReviews handles GET /api/reviews?movieId=N
// @Summary List reviews for a movie
// @Description Returns the movie's reviews, newest first
// @Tags Reviews
// @Produce json
// @Param movieId query int true "Movie ID"
// @Success 200 {array} models.Review
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /reviews [get]
func (h *ReviewHandler) ListReviews(c *fiber.Ctx) error {
	raw := c.Query("movieId")
	if raw == "" {
		return utils.RespondError(c, types.NewValidationError(
			"movieId parameter is required", "catalog.validation.query"))
	}

	movieID, err := strconv.Atoi(raw)
	if err != nil || movieID <= 0 {
		return utils.RespondError(c, types.NewValidationError(
			"Invalid movieId", "catalog.validation.query"))
	}

	reviews, err := h.Catalog.ReviewsForMovie(movieID)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(reviews)
}

// GetReview handles GET /api/reviews/:id
// @Summary Get one review
// @Tags Reviews
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} models.Review
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /reviews/{id} [get]
func (h *ReviewHandler) GetReview(c *fiber.Ctx) error {
	id, err := parseID(c, "review")
	if err != nil {
		return utils.RespondError(c, err)
	}

	review, err := h.Catalog.GetReview(id)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(review)
}

// CreateReview handles POST /api/reviews
// @Summary Submit a review
// @Description Persists the review and synchronously updates the movie's derived stats
// @Tags Reviews
// @Accept json
// @Produce json
// @Param body body models.CreateReviewRequest true "Review to create"
// @Success 201 {object} models.Review
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /reviews [post]
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	body := c.Body()

	if err := requireFields(body, models.RequiredReviewFields); err != nil {
		return utils.RespondError(c, err)
	}

	var req models.CreateReviewRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return utils.RespondError(c,
			types.NewValidationError("Invalid input", "catalog.validation.input"))
	}

	if err := validateStruct(&req); err != nil {
		return utils.RespondError(c, err)
	}

	review, err := h.Catalog.CreateReview(&req)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}
