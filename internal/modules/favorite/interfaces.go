package favorite

import (
	"context"

	"cinelog/internal/domain"
	"cinelog/internal/modules/catalog"
)

// FavoriteRepositoryInterface lists only the methods the favorite service uses.
type FavoriteRepositoryInterface interface {
	Add(ctx context.Context, userID, movieID int64) error
	Remove(ctx context.Context, userID, movieID int64) error
	ListMovies(ctx context.Context, userID int64) ([]domain.Movie, error)
	Exists(ctx context.Context, userID, movieID int64) (bool, error)
}

// MovieCache is the lazy catalog cache that the add path populates.
type MovieCache interface {
	Ensure(ctx context.Context, ref catalog.MovieRef) (*domain.Movie, error)
	GetByTmdbID(ctx context.Context, tmdbID int64) (*domain.Movie, error)
}
