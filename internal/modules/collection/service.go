package collection

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"cinelog/internal/domain"
	"cinelog/internal/modules/catalog"
)

type Service struct {
	collections CollectionRepositoryInterface
	movies      MovieCache
}

func NewService(collections CollectionRepositoryInterface, movies MovieCache) *Service {
	return &Service{collections: collections, movies: movies}
}

func (s *Service) Create(ctx context.Context, userID int64, name string) (*domain.Collection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidRequest
	}

	c := &domain.Collection{
		UserID: userID,
		Name:   name,
		Movies: []domain.Movie{},
	}
	if err := s.collections.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// List returns the caller's collections with their movies expanded.
func (s *Service) List(ctx context.Context, userID int64) ([]domain.Collection, error) {
	collections, err := s.collections.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range collections {
		movies, err := s.collections.ListMovies(ctx, collections[i].ID)
		if err != nil {
			return nil, err
		}
		collections[i].Movies = movies
	}
	return collections, nil
}

// AddMovie appends to an owned collection, caching the movie on first
// reference. A movie already in the collection is a silent no-op.
func (s *Service) AddMovie(ctx context.Context, userID, collectionID int64, ref catalog.MovieRef) (*domain.Collection, error) {
	c, err := s.getOwned(ctx, collectionID, userID)
	if err != nil {
		return nil, err
	}

	movie, err := s.movies.Ensure(ctx, ref)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidRequest) {
			return nil, ErrInvalidRequest
		}
		return nil, err
	}

	if err := s.collections.AddMovie(ctx, c.ID, movie.ID); err != nil {
		return nil, err
	}

	return s.withMovies(ctx, c)
}

// RemoveMovie drops a movie from an owned collection; a non-member movie
// or a never-cached id is a no-op.
func (s *Service) RemoveMovie(ctx context.Context, userID, collectionID, tmdbID int64) (*domain.Collection, error) {
	c, err := s.getOwned(ctx, collectionID, userID)
	if err != nil {
		return nil, err
	}

	movie, err := s.movies.GetByTmdbID(ctx, tmdbID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return s.withMovies(ctx, c)
		}
		return nil, err
	}

	if err := s.collections.RemoveMovie(ctx, c.ID, movie.ID); err != nil {
		return nil, err
	}

	return s.withMovies(ctx, c)
}

func (s *Service) ListMovies(ctx context.Context, userID, collectionID int64) ([]domain.Movie, error) {
	c, err := s.getOwned(ctx, collectionID, userID)
	if err != nil {
		return nil, err
	}
	return s.collections.ListMovies(ctx, c.ID)
}

func (s *Service) Delete(ctx context.Context, userID, collectionID int64) error {
	c, err := s.getOwned(ctx, collectionID, userID)
	if err != nil {
		return err
	}
	return s.collections.Delete(ctx, c.ID)
}

// getOwned conflates "missing" and "not yours" into one NotFound so a
// caller cannot learn whether someone else's collection id exists.
func (s *Service) getOwned(ctx context.Context, collectionID, userID int64) (*domain.Collection, error) {
	c, err := s.collections.GetOwned(ctx, collectionID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) withMovies(ctx context.Context, c *domain.Collection) (*domain.Collection, error) {
	movies, err := s.collections.ListMovies(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	c.Movies = movies
	return c, nil
}
