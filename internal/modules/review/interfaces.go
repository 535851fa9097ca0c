package review

import (
	"context"

	"cinelog/internal/domain"
)

// ReviewRepositoryInterface lists only the methods the review service uses.
type ReviewRepositoryInterface interface {
	Upsert(ctx context.Context, rv *domain.Review) (*domain.Review, error)
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	ListByMovie(ctx context.Context, movieID int64) ([]domain.Review, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Review, error)
	Delete(ctx context.Context, id int64) error
}

// MovieReader resolves external ids against the catalog cache. Reviews
// never populate the cache; the movie must already be known.
type MovieReader interface {
	GetByTmdbID(ctx context.Context, tmdbID int64) (*domain.Movie, error)
}
