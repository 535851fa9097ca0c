package collection

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

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	collections := protected.Group("/collections")
	{
		collections.GET("", h.List)
		collections.POST("", h.Create)
		collections.DELETE("/:id", h.Delete)
		collections.GET("/:id/movies", h.ListMovies)
		collections.POST("/:id/movies", h.AddMovie)
		collections.DELETE("/:id/movies/:movieId", h.RemoveMovie)
	}
}

// Create makes a new empty collection for the caller.
// @Summary		Create a collection
// @Tags		Collections
// @Security	BearerAuth
// @Param		request	body	CreateCollectionRequest	true	"name"
// @Success		201	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{}	"blank name"
// @Router		/collections [POST]
func (h *Handler) Create(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name is required")
		return
	}

	created, err := h.svc.Create(c.Request.Context(), userID, req.Name)
	if err != nil {
		if errors.Is(err, ErrInvalidRequest) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name is required")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to create collection")
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// List returns the caller's collections, movies expanded.
// @Summary		List own collections
// @Tags		Collections
// @Security	BearerAuth
// @Success		200	{object}	map[string]interface{}
// @Router		/collections [GET]
func (h *Handler) List(c *gin.Context) {
	userID := c.GetInt64("user_id")

	collections, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to get collections")
		return
	}

	response.Success(c, http.StatusOK, collections)
}

// AddMovie appends a movie to an owned collection.
// @Summary		Add a movie to a collection
// @Tags		Collections
// @Security	BearerAuth
// @Param		id		path	int				true	"collection id"
// @Param		request	body	AddMovieRequest	true	"movie fields"
// @Success		200	{object}	map[string]interface{}	"updated collection"
// @Failure		404	{object}	map[string]interface{}	"missing or not owned"
// @Router		/collections/:id/movies [POST]
func (h *Handler) AddMovie(c *gin.Context) {
	userID := c.GetInt64("user_id")

	collectionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || collectionID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid collection ID")
		return
	}

	var req AddMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Movie data is required")
		return
	}

	updated, err := h.svc.AddMovie(c.Request.Context(), userID, collectionID, req.Movie)
	if err != nil {
		h.writeError(c, err, "Failed to add movie")
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// RemoveMovie drops a movie from an owned collection.
// @Summary		Remove a movie from a collection
// @Tags		Collections
// @Security	BearerAuth
// @Param		id		path	int	true	"collection id"
// @Param		movieId	path	int	true	"external catalog id"
// @Success		200	{object}	map[string]interface{}	"updated collection"
// @Failure		404	{object}	map[string]interface{}	"missing or not owned"
// @Router		/collections/:id/movies/:movieId [DELETE]
func (h *Handler) RemoveMovie(c *gin.Context) {
	userID := c.GetInt64("user_id")

	collectionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || collectionID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid collection ID")
		return
	}
	tmdbID, err := strconv.ParseInt(c.Param("movieId"), 10, 64)
	if err != nil || tmdbID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid movie ID")
		return
	}

	updated, err := h.svc.RemoveMovie(c.Request.Context(), userID, collectionID, tmdbID)
	if err != nil {
		h.writeError(c, err, "Failed to remove movie")
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// ListMovies returns an owned collection's movies in append order.
// @Summary		List a collection's movies
// @Tags		Collections
// @Security	BearerAuth
// @Param		id	path	int	true	"collection id"
// @Success		200	{object}	map[string]interface{}
// @Failure		404	{object}	map[string]interface{}	"missing or not owned"
// @Router		/collections/:id/movies [GET]
func (h *Handler) ListMovies(c *gin.Context) {
	userID := c.GetInt64("user_id")

	collectionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || collectionID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid collection ID")
		return
	}

	movies, err := h.svc.ListMovies(c.Request.Context(), userID, collectionID)
	if err != nil {
		h.writeError(c, err, "Failed to get collection movies")
		return
	}

	response.Success(c, http.StatusOK, movies)
}

// Delete removes an owned collection and its memberships.
// @Summary		Delete a collection
// @Tags		Collections
// @Security	BearerAuth
// @Param		id	path	int	true	"collection id"
// @Success		200	{object}	map[string]interface{}
// @Failure		404	{object}	map[string]interface{}	"missing or not owned"
// @Router		/collections/:id [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetInt64("user_id")

	collectionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || collectionID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid collection ID")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userID, collectionID); err != nil {
		h.writeError(c, err, "Failed to delete collection")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Collection deleted"})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Collection not found")
	case errors.Is(err, ErrInvalidRequest):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid movie data")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", fallback)
	}
}
