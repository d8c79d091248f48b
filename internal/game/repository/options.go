package repository

// ListGamesOptions filters and pages the catalog query.
type ListGamesOptions struct {
	Search string
	Limit  int64
	Offset int64
}

// CountGamesOptions filters the catalog count.
type CountGamesOptions struct {
	Search string
}
