package model

import "time"

// Game is one entry of the game catalog.
type Game struct {
	ID           string
	Slug         string
	Title        string
	Provider     string
	ThumbnailURL string
	StartURL     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
