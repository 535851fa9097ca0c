package domain

import "time"

// Review holds one rating+text per (user, movie) pair. The composite
// unique index backs the upsert write path.
type Review struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_user_movie_review"`
	MovieID   int64     `json:"movie_id" gorm:"not null;index;uniqueIndex:idx_user_movie_review"`
	Rating    int       `json:"rating" gorm:"not null"`
	Text      string    `json:"text" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`

	User  *User  `json:"-" gorm:"foreignKey:UserID"`
	Movie *Movie `json:"-" gorm:"foreignKey:MovieID"`
}

func (Review) TableName() string { return "reviews" }
