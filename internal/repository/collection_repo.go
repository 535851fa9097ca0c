package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cinelog/internal/domain"
)

type CollectionRepository struct {
	db *gorm.DB
}

func NewCollectionRepository(db *gorm.DB) *CollectionRepository {
	return &CollectionRepository{db: db}
}

func (r *CollectionRepository) Create(ctx context.Context, c *domain.Collection) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// GetOwned scopes the lookup to the owner. A collection owned by someone
// else reads as ErrRecordNotFound, indistinguishable from a missing one.
func (r *CollectionRepository) GetOwned(ctx context.Context, id, userID int64) (*domain.Collection, error) {
	var c domain.Collection
	tx := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&c)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &c, nil
}

func (r *CollectionRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Collection, error) {
	var collections []domain.Collection
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&collections).Error
	if err != nil {
		return nil, err
	}
	return collections, nil
}

// AddMovie appends a membership row. A movie already in the collection is
// absorbed by DO NOTHING on the (collection_id, movie_id) index.
func (r *CollectionRepository) AddMovie(ctx context.Context, collectionID, movieID int64) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "collection_id"}, {Name: "movie_id"}},
			DoNothing: true,
		}).
		Create(&domain.CollectionMovie{
			CollectionID: collectionID,
			MovieID:      movieID,
		}).Error
	if err != nil && !IsUniqueViolation(err) {
		return err
	}
	return nil
}

// RemoveMovie deletes the membership if present; absent is a no-op.
func (r *CollectionRepository) RemoveMovie(ctx context.Context, collectionID, movieID int64) error {
	return r.db.WithContext(ctx).
		Where("collection_id = ? AND movie_id = ?", collectionID, movieID).
		Delete(&domain.CollectionMovie{}).Error
}

// ListMovies returns the collection's movies in append order.
func (r *CollectionRepository) ListMovies(ctx context.Context, collectionID int64) ([]domain.Movie, error) {
	var movies []domain.Movie
	err := r.db.WithContext(ctx).
		Model(&domain.Movie{}).
		Joins("JOIN collection_movies ON collection_movies.movie_id = movies.id").
		Where("collection_movies.collection_id = ?", collectionID).
		Order("collection_movies.id").
		Find(&movies).Error
	if err != nil {
		return nil, err
	}
	return movies, nil
}

// Delete removes the collection and its membership rows.
func (r *CollectionRepository) Delete(ctx context.Context, collectionID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection_id = ?", collectionID).
			Delete(&domain.CollectionMovie{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Collection{}, collectionID).Error
	})
}
