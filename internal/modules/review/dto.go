package review

import (
	"time"

	"cinelog/internal/domain"
)

// UpsertReviewRequest carries rating as a pointer so a legitimate 0 is
// distinguishable from a missing field.
type UpsertReviewRequest struct {
	Rating *int   `json:"rating" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

// ReviewAuthor is the minimal public view of a reviewer.
type ReviewAuthor struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
}

// MovieReviewResponse is one entry of a movie's review list.
type MovieReviewResponse struct {
	ID        int64        `json:"id"`
	Rating    int          `json:"rating"`
	Text      string       `json:"text"`
	CreatedAt time.Time    `json:"createdAt"`
	User      ReviewAuthor `json:"user"`
}

// UserReviewResponse is one entry of a user's review list.
type UserReviewResponse struct {
	ID        int64         `json:"id"`
	Rating    int           `json:"rating"`
	Text      string        `json:"text"`
	CreatedAt time.Time     `json:"createdAt"`
	Movie     *domain.Movie `json:"movie"`
}

func toMovieReviewResponse(rv domain.Review) MovieReviewResponse {
	out := MovieReviewResponse{
		ID:        rv.ID,
		Rating:    rv.Rating,
		Text:      rv.Text,
		CreatedAt: rv.CreatedAt,
	}
	if rv.User != nil {
		out.User = ReviewAuthor{
			ID:       rv.User.ID,
			Username: rv.User.Username,
			Avatar:   rv.User.Avatar,
		}
	}
	return out
}

func toUserReviewResponse(rv domain.Review) UserReviewResponse {
	return UserReviewResponse{
		ID:        rv.ID,
		Rating:    rv.Rating,
		Text:      rv.Text,
		CreatedAt: rv.CreatedAt,
		Movie:     rv.Movie,
	}
}
