package favorite

import "errors"

var (
	ErrInvalidRequest  = errors.New("invalid_request")
	ErrAlreadyFavorite = errors.New("already_favorite")
)
