package catalog

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

func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/movies/:tmdbId", h.GetByTmdbID)
}

// GetByTmdbID reads a cached catalog entry. The cache is populated only
// through the favorites and collections add paths; this is read-only.
// @Summary		Get a cached movie
// @Tags		Movies
// @Param		tmdbId	path	int	true	"external catalog id"
// @Success		200	{object}	map[string]interface{}
// @Failure		404	{object}	map[string]interface{}	"movie never cached"
// @Router		/movies/:tmdbId [GET]
func (h *Handler) GetByTmdbID(c *gin.Context) {
	tmdbID, err := strconv.ParseInt(c.Param("tmdbId"), 10, 64)
	if err != nil || tmdbID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid movie ID")
		return
	}

	movie, err := h.svc.GetByTmdbID(c.Request.Context(), tmdbID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Movie not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}

	response.Success(c, http.StatusOK, movie)
}
