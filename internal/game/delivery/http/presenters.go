package http

import (
	"github.com/seolargo/skivori-case/internal/game"
	"github.com/seolargo/skivori-case/internal/model"
	"github.com/seolargo/skivori-case/pkg/paginator"
	"github.com/seolargo/skivori-case/pkg/util"
)

// =====================================================
// Request DTOs
// =====================================================

type listGamesReq struct {
	Search string `form:"search" binding:"max=200"`
	Page   int    `form:"page"`
	Limit  int64  `form:"limit"`
}

func (r listGamesReq) toInput() game.ListInput {
	return game.ListInput{
		Search: r.Search,
		Page:   r.Page,
		Limit:  r.Limit,
	}
}

// =====================================================
// Response DTOs
// =====================================================

type gameResp struct {
	ID           string `json:"id"`
	Slug         string `json:"slug"`
	Title        string `json:"title"`
	Provider     string `json:"provider"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	StartURL     string `json:"start_url,omitempty"`
}

type listGamesResp struct {
	Games       []gameResp                  `json:"games"`
	Paginator   paginator.PaginatorResponse `json:"paginator"`
	Descriptors []paginator.PageDescriptor  `json:"descriptors"`
	CacheHit    bool                        `json:"cache_hit"`
}

func (h *handler) newListGamesResp(output game.ListOutput) listGamesResp {
	return listGamesResp{
		Games: util.MapSlice(output.Games, func(g model.Game) gameResp {
			return gameResp{
				ID:           g.ID,
				Slug:         g.Slug,
				Title:        g.Title,
				Provider:     g.Provider,
				ThumbnailURL: g.ThumbnailURL,
				StartURL:     g.StartURL,
			}
		}),
		Paginator:   output.Paginator.ToResponse(),
		Descriptors: output.Descriptors,
		CacheHit:    output.CacheHit,
	}
}
