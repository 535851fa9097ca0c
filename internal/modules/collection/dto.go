package collection

import "cinelog/internal/modules/catalog"

type CreateCollectionRequest struct {
	Name string `json:"name" binding:"required"`
}

type AddMovieRequest struct {
	Movie catalog.MovieRef `json:"movie" binding:"required"`
}
