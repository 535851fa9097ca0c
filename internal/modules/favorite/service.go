package favorite

import (
	"context"
	"errors"

	"cinelog/internal/domain"
	"cinelog/internal/modules/catalog"
	"cinelog/internal/repository"
)

type Service struct {
	favorites FavoriteRepositoryInterface
	movies    MovieCache
}

func NewService(favorites FavoriteRepositoryInterface, movies MovieCache) *Service {
	return &Service{favorites: favorites, movies: movies}
}

func (s *Service) List(ctx context.Context, userID int64) ([]domain.Movie, error) {
	return s.favorites.ListMovies(ctx, userID)
}

// Add caches the movie if needed, then inserts the membership. A
// duplicate is reported by the unique index, not a pre-scan, so two
// concurrent adds leave exactly one row and one Conflict.
func (s *Service) Add(ctx context.Context, userID int64, ref catalog.MovieRef) ([]domain.Movie, error) {
	movie, err := s.movies.Ensure(ctx, ref)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidRequest) {
			return nil, ErrInvalidRequest
		}
		return nil, err
	}

	if err := s.favorites.Add(ctx, userID, movie.ID); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrAlreadyFavorite
		}
		return nil, err
	}

	return s.favorites.ListMovies(ctx, userID)
}

// Remove is a no-op when the movie is absent from the favorites or was
// never cached at all; either way the refreshed list comes back.
func (s *Service) Remove(ctx context.Context, userID, tmdbID int64) ([]domain.Movie, error) {
	movie, err := s.movies.GetByTmdbID(ctx, tmdbID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return s.favorites.ListMovies(ctx, userID)
		}
		return nil, err
	}

	if err := s.favorites.Remove(ctx, userID, movie.ID); err != nil {
		return nil, err
	}

	return s.favorites.ListMovies(ctx, userID)
}

// Check reports membership. A movie never cached was never favorited by
// anyone, so that reads as false rather than an error.
func (s *Service) Check(ctx context.Context, userID, tmdbID int64) (bool, error) {
	movie, err := s.movies.GetByTmdbID(ctx, tmdbID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return s.favorites.Exists(ctx, userID, movie.ID)
}
