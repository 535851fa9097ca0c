package favorite

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cinelog/internal/modules/catalog"
	"cinelog/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	favorites := protected.Group("/favorites")
	{
		favorites.GET("", h.List)
		favorites.POST("", h.Add)
		favorites.DELETE("/:movieId", h.Remove)
		favorites.GET("/check/:movieId", h.Check)
	}
}

// List returns the caller's favorited movies in the order they were added.
// @Summary		List favorites
// @Tags		Favorites
// @Security	BearerAuth
// @Success		200	{object}	map[string]interface{}	"movies"
// @Router		/favorites [GET]
func (h *Handler) List(c *gin.Context) {
	userID := c.GetInt64("user_id")

	movies, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to get favorites")
		return
	}

	response.Success(c, http.StatusOK, movies)
}

// Add favorites a movie, caching its metadata on first reference.
// @Summary		Add a favorite
// @Tags		Favorites
// @Security	BearerAuth
// @Param		request	body	catalog.MovieRef	true	"movie fields"
// @Success		200	{object}	map[string]interface{}	"updated favorites list"
// @Failure		409	{object}	map[string]interface{}	"movie already in favorites"
// @Router		/favorites [POST]
func (h *Handler) Add(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var ref catalog.MovieRef
	if err := c.ShouldBindJSON(&ref); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	movies, err := h.svc.Add(c.Request.Context(), userID, ref)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid movie data")
		case errors.Is(err, ErrAlreadyFavorite):
			response.Error(c, http.StatusConflict, "ALREADY_FAVORITE", "Movie already in favorites")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to add favorite")
		}
		return
	}

	response.Success(c, http.StatusOK, movies)
}

// Remove unfavorites a movie; removing an absent one is a no-op.
// @Summary		Remove a favorite
// @Tags		Favorites
// @Security	BearerAuth
// @Param		movieId	path	int	true	"external catalog id"
// @Success		200	{object}	map[string]interface{}	"updated favorites list"
// @Router		/favorites/:movieId [DELETE]
func (h *Handler) Remove(c *gin.Context) {
	userID := c.GetInt64("user_id")

	tmdbID, err := strconv.ParseInt(c.Param("movieId"), 10, 64)
	if err != nil || tmdbID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid movie ID")
		return
	}

	movies, err := h.svc.Remove(c.Request.Context(), userID, tmdbID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to remove favorite")
		return
	}

	response.Success(c, http.StatusOK, movies)
}

// Check reports whether the movie is in the caller's favorites.
// @Summary		Check favorite membership
// @Tags		Favorites
// @Security	BearerAuth
// @Param		movieId	path	int	true	"external catalog id"
// @Success		200	{object}	map[string]interface{}	"{isFavorite}"
// @Router		/favorites/check/:movieId [GET]
func (h *Handler) Check(c *gin.Context) {
	userID := c.GetInt64("user_id")

	tmdbID, err := strconv.ParseInt(c.Param("movieId"), 10, 64)
	if err != nil || tmdbID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid movie ID")
		return
	}

	isFavorite, err := h.svc.Check(c.Request.Context(), userID, tmdbID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to check favorite")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"isFavorite": isFavorite})
}
