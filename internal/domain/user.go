package domain

import "time"

type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"not null;uniqueIndex"`
	Email        string    `json:"email" gorm:"not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Bio          string    `json:"bio,omitempty"`
	Avatar       string    `json:"avatar,omitempty"`
	CreatedAt    time.Time `json:"joinDate" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"-"`
}

// PublicProfile is the view of a user exposed to anyone but the user
// themselves: no email.
type PublicProfile struct {
	ID       int64     `json:"id"`
	Username string    `json:"username"`
	Bio      string    `json:"bio,omitempty"`
	Avatar   string    `json:"avatar,omitempty"`
	JoinDate time.Time `json:"joinDate"`
}

func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:       u.ID,
		Username: u.Username,
		Bio:      u.Bio,
		Avatar:   u.Avatar,
		JoinDate: u.CreatedAt,
	}
}
