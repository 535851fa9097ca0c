package review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cinelog/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if public != nil {
		public.GET("/reviews/movie/:movieId", h.ListByMovie)
		public.GET("/reviews/user/:userId", h.ListByUser)
	}

	if protected != nil {
		protected.POST("/reviews/:movieId", h.Upsert)
		protected.DELETE("/reviews/:reviewId", h.Delete)
	}
}

// Upsert creates or replaces the caller's review for a movie.
// @Summary		Write a review
// @Description	One review per user per movie; re-posting replaces rating, text and timestamp. The movie must already be known to the catalog cache.
// @Tags		Reviews
// @Security	BearerAuth
// @Param		movieId	path	int					true	"external catalog id"
// @Param		request	body	UpsertReviewRequest	true	"rating [0,5] and text"
// @Success		201	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{}	"rating out of range or empty text"
// @Failure		404	{object}	map[string]interface{}	"movie never cached"
// @Router		/reviews/:movieId [POST]
func (h *Handler) Upsert(c *gin.Context) {
	userID := c.GetInt64("user_id")

	tmdbID, err := strconv.ParseInt(c.Param("movieId"), 10, 64)
	if err != nil || tmdbID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid movie ID")
		return
	}

	var req UpsertReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid rating or text")
		return
	}

	rv, err := h.svc.Upsert(c.Request.Context(), userID, tmdbID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid rating or text")
		case errors.Is(err, ErrMovieNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Movie not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to save review")
		}
		return
	}

	response.Success(c, http.StatusCreated, rv)
}

// ListByMovie returns all reviews for a movie, authors expanded. Public.
// @Summary		List a movie's reviews
// @Tags		Reviews
// @Param		movieId	path	int	true	"external catalog id"
// @Success		200	{object}	map[string]interface{}
// @Failure		404	{object}	map[string]interface{}	"movie never cached"
// @Router		/reviews/movie/:movieId [GET]
func (h *Handler) ListByMovie(c *gin.Context) {
	tmdbID, err := strconv.ParseInt(c.Param("movieId"), 10, 64)
	if err != nil || tmdbID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid movie ID")
		return
	}

	reviews, err := h.svc.ListByMovie(c.Request.Context(), tmdbID)
	if err != nil {
		if errors.Is(err, ErrMovieNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Movie not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to get reviews")
		return
	}

	response.Success(c, http.StatusOK, reviews)
}

// ListByUser returns all reviews by a user, movies expanded. Public.
// @Summary		List a user's reviews
// @Tags		Reviews
// @Param		userId	path	int	true	"account id"
// @Success		200	{object}	map[string]interface{}
// @Router		/reviews/user/:userId [GET]
func (h *Handler) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil || userID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	reviews, err := h.svc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to get reviews")
		return
	}

	response.Success(c, http.StatusOK, reviews)
}

// Delete removes the caller's own review.
// @Summary		Delete a review
// @Tags		Reviews
// @Security	BearerAuth
// @Param		reviewId	path	int	true	"review id"
// @Success		200	{object}	map[string]interface{}
// @Failure		403	{object}	map[string]interface{}	"someone else's review"
// @Failure		404	{object}	map[string]interface{}	"no such review"
// @Router		/reviews/:reviewId [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetInt64("user_id")

	reviewID, err := strconv.ParseInt(c.Param("reviewId"), 10, 64)
	if err != nil || reviewID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid review ID")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userID, reviewID); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Review not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not your review")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to delete review")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Review deleted"})
}
