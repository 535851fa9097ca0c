package domain

import "time"

// Movie is a locally cached copy of an external catalog entry. Rows are
// created lazily the first time any user references a tmdb id and are
// immutable afterwards; stale metadata is accepted.
type Movie struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	TmdbID      int64     `json:"tmdbId" gorm:"column:tmdb_id;not null;uniqueIndex"`
	Title       string    `json:"title" gorm:"not null"`
	Poster      string    `json:"poster,omitempty"`
	VoteAverage float64   `json:"voteAverage"`
	ReleaseDate string    `json:"releaseDate,omitempty"`
	CreatedAt   time.Time `json:"addedAt" gorm:"autoCreateTime"`
}

func (Movie) TableName() string { return "movies" }
