package domain

import "time"

// Favorite links a user to a cached movie. The composite unique index is
// what makes concurrent duplicate adds collapse into one Conflict instead
// of two rows.
type Favorite struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_user_movie_fav"`
	MovieID   int64     `json:"movie_id" gorm:"not null;index;uniqueIndex:idx_user_movie_fav"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Movie *Movie `json:"movie,omitempty" gorm:"foreignKey:MovieID"`
}

func (Favorite) TableName() string {
	return "favorites"
}
