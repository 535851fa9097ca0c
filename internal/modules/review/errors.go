package review

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid_request")
	ErrMovieNotFound  = errors.New("movie_not_found")
	ErrNotFound       = errors.New("not_found")
	ErrForbidden      = errors.New("forbidden")
)
