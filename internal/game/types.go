package game

import (
	"github.com/seolargo/skivori-case/internal/model"
	"github.com/seolargo/skivori-case/pkg/paginator"
)

const (
	// MaxSearchLength bounds the free-text search input.
	MaxSearchLength = 200
)

// ListInput carries the catalog query.
type ListInput struct {
	Search string
	Page   int
	Limit  int64
}

// ListOutput carries one catalog page plus everything a client needs to
// render pagination controls.
type ListOutput struct {
	Games       []model.Game
	Paginator   paginator.Paginator
	Descriptors []paginator.PageDescriptor
	CacheHit    bool
}
