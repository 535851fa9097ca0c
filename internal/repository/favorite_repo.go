package repository

import (
	"context"

	"gorm.io/gorm"

	"cinelog/internal/domain"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Add inserts one membership row. A duplicate surfaces as a unique
// violation from the (user_id, movie_id) index; callers map that to
// Conflict. No pre-check, so concurrent duplicates cannot both land.
func (r *FavoriteRepository) Add(ctx context.Context, userID, movieID int64) error {
	return r.db.WithContext(ctx).Create(&domain.Favorite{
		UserID:  userID,
		MovieID: movieID,
	}).Error
}

// Remove deletes the membership if present. Removing an absent movie is a
// no-op.
func (r *FavoriteRepository) Remove(ctx context.Context, userID, movieID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Delete(&domain.Favorite{}).Error
}

// ListMovies returns the user's favorited movies in insertion order.
func (r *FavoriteRepository) ListMovies(ctx context.Context, userID int64) ([]domain.Movie, error) {
	var movies []domain.Movie
	err := r.db.WithContext(ctx).
		Model(&domain.Movie{}).
		Joins("JOIN favorites ON favorites.movie_id = movies.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.id").
		Find(&movies).Error
	if err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *FavoriteRepository) Exists(ctx context.Context, userID, movieID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Favorite{}).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Count(&count).Error
	return count > 0, err
}
