package catalog

// MovieRef is the caller-supplied description of an external movie. The
// backend trusts these fields; it never re-verifies them against the
// external provider.
type MovieRef struct {
	TmdbID      int64   `json:"tmdbId" binding:"required,gt=0"`
	Title       string  `json:"title" binding:"required"`
	Poster      string  `json:"poster,omitempty"`
	VoteAverage float64 `json:"voteAverage,omitempty"`
	ReleaseDate string  `json:"releaseDate,omitempty"`
}
