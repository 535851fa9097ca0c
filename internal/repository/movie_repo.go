package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cinelog/internal/domain"
)

type MovieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

func (r *MovieRepository) GetByTmdbID(ctx context.Context, tmdbID int64) (*domain.Movie, error) {
	var m domain.Movie
	tx := r.db.WithContext(ctx).Where("tmdb_id = ?", tmdbID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &m, nil
}

// GetOrCreate caches the movie on first reference. The insert rides the
// tmdb_id unique index with DO NOTHING so two concurrent first references
// converge on a single row; whatever row exists afterwards wins, the
// caller's metadata is never used to update an existing entry.
func (r *MovieRepository) GetOrCreate(ctx context.Context, m *domain.Movie) (*domain.Movie, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tmdb_id"}},
			DoNothing: true,
		}).
		Create(m).Error
	if err != nil && !IsUniqueViolation(err) {
		return nil, err
	}
	return r.GetByTmdbID(ctx, m.TmdbID)
}
