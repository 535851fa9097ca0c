package collection

import (
	"context"

	"cinelog/internal/domain"
	"cinelog/internal/modules/catalog"
)

// CollectionRepositoryInterface lists only the methods the collection service uses.
type CollectionRepositoryInterface interface {
	Create(ctx context.Context, c *domain.Collection) error
	GetOwned(ctx context.Context, id, userID int64) (*domain.Collection, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Collection, error)
	AddMovie(ctx context.Context, collectionID, movieID int64) error
	RemoveMovie(ctx context.Context, collectionID, movieID int64) error
	ListMovies(ctx context.Context, collectionID int64) ([]domain.Movie, error)
	Delete(ctx context.Context, collectionID int64) error
}

// MovieCache is the lazy catalog cache that the add path populates.
type MovieCache interface {
	Ensure(ctx context.Context, ref catalog.MovieRef) (*domain.Movie, error)
	GetByTmdbID(ctx context.Context, tmdbID int64) (*domain.Movie, error)
}
