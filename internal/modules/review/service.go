package review

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"cinelog/internal/domain"
	"cinelog/internal/modules/catalog"
)

const (
	minRating = 0
	maxRating = 5
)

type Service struct {
	reviews ReviewRepositoryInterface
	movies  MovieReader
}

func NewService(reviews ReviewRepositoryInterface, movies MovieReader) *Service {
	return &Service{reviews: reviews, movies: movies}
}

// Upsert creates or replaces the caller's review for a movie. Unlike the
// favorites and collections add paths, the movie must already be cached.
func (s *Service) Upsert(ctx context.Context, userID, tmdbID int64, req UpsertReviewRequest) (*domain.Review, error) {
	if req.Rating == nil || *req.Rating < minRating || *req.Rating > maxRating || strings.TrimSpace(req.Text) == "" {
		return nil, ErrInvalidRequest
	}

	movie, err := s.movies.GetByTmdbID(ctx, tmdbID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	return s.reviews.Upsert(ctx, &domain.Review{
		UserID:  userID,
		MovieID: movie.ID,
		Rating:  *req.Rating,
		Text:    req.Text,
	})
}

func (s *Service) ListByMovie(ctx context.Context, tmdbID int64) ([]MovieReviewResponse, error) {
	movie, err := s.movies.GetByTmdbID(ctx, tmdbID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	reviews, err := s.reviews.ListByMovie(ctx, movie.ID)
	if err != nil {
		return nil, err
	}

	out := make([]MovieReviewResponse, 0, len(reviews))
	for _, rv := range reviews {
		out = append(out, toMovieReviewResponse(rv))
	}
	return out, nil
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]UserReviewResponse, error) {
	reviews, err := s.reviews.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]UserReviewResponse, 0, len(reviews))
	for _, rv := range reviews {
		out = append(out, toUserReviewResponse(rv))
	}
	return out, nil
}

// Delete removes the caller's own review. A review owned by someone else
// is Forbidden, not NotFound: the review list is public anyway, so there
// is nothing to hide.
func (s *Service) Delete(ctx context.Context, userID, reviewID int64) error {
	rv, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		if isNotFound(err) {
			return ErrNotFound
		}
		return err
	}

	if rv.UserID != userID {
		return ErrForbidden
	}

	return s.reviews.Delete(ctx, rv.ID)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
