package domain

import "time"

// Collection is a named, user-owned list of movies. Names are not unique;
// ownership is checked on every mutating operation.
type Collection struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`

	Movies []Movie `json:"movies" gorm:"-"`
}

func (Collection) TableName() string { return "collections" }

// CollectionMovie is one membership row. Ordering within a collection is
// the insertion order of these rows.
type CollectionMovie struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	CollectionID int64     `json:"collection_id" gorm:"not null;index;uniqueIndex:idx_collection_movie"`
	MovieID      int64     `json:"movie_id" gorm:"not null;uniqueIndex:idx_collection_movie"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (CollectionMovie) TableName() string { return "collection_movies" }
