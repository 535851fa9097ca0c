package catalog

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"cinelog/internal/domain"
)

type MovieRepositoryInterface interface {
	GetByTmdbID(ctx context.Context, tmdbID int64) (*domain.Movie, error)
	GetOrCreate(ctx context.Context, m *domain.Movie) (*domain.Movie, error)
}

// Service is the movie cache. Entries are created lazily through Ensure
// and are immutable afterwards; there is no refresh or invalidation.
type Service struct {
	movies MovieRepositoryInterface
}

func NewService(movies MovieRepositoryInterface) *Service {
	return &Service{movies: movies}
}

// Ensure returns the cached entry for ref.TmdbID, creating it from the
// caller-supplied fields on first reference. Idempotent.
func (s *Service) Ensure(ctx context.Context, ref MovieRef) (*domain.Movie, error) {
	if ref.TmdbID <= 0 || strings.TrimSpace(ref.Title) == "" {
		return nil, ErrInvalidRequest
	}

	return s.movies.GetOrCreate(ctx, &domain.Movie{
		TmdbID:      ref.TmdbID,
		Title:       ref.Title,
		Poster:      ref.Poster,
		VoteAverage: ref.VoteAverage,
		ReleaseDate: ref.ReleaseDate,
	})
}

func (s *Service) GetByTmdbID(ctx context.Context, tmdbID int64) (*domain.Movie, error) {
	m, err := s.movies.GetByTmdbID(ctx, tmdbID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}
