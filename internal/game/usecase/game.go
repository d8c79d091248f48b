package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/seolargo/skivori-case/internal/game"
	"github.com/seolargo/skivori-case/internal/game/repository"
	"github.com/seolargo/skivori-case/internal/model"
	"github.com/seolargo/skivori-case/pkg/paginator"
)

// List - Main catalog listing method
// Flow: validate → check cache → count → fetch page (only when navigable) → build descriptors → cache → return
func (uc *implUseCase) List(ctx context.Context, input game.ListInput) (game.ListOutput, error) {
	// Step 0: Validate input
	if len(input.Search) > game.MaxSearchLength {
		return game.ListOutput{}, game.ErrSearchTooLong
	}

	pq := paginator.PaginateQuery{Page: input.Page, Limit: input.Limit}
	pq.Adjust()

	// Step 1: Check cache
	cacheKey := uc.generateCacheKey(input.Search, pq)
	cachedData, err := uc.cacheRepo.GetGameList(ctx, cacheKey)
	if err == nil && cachedData != nil {
		var cached game.ListOutput
		if err := json.Unmarshal(cachedData, &cached); err == nil {
			cached.CacheHit = true
			uc.l.Debugf(ctx, "game.usecase.List: cache hit for key %s", cacheKey)
			return cached, nil
		}
	}

	// Step 2: Count matching rows
	total, err := uc.repo.CountGames(ctx, repository.CountGamesOptions{Search: input.Search})
	if err != nil {
		uc.l.Errorf(ctx, "game.usecase.List: count failed: %v", err)
		return game.ListOutput{}, game.ErrListFailed
	}

	// Step 3: Fetch the page. An out-of-range page is an expected UI event,
	// not a fault: the response carries empty rows and the control bar, no error.
	games := []model.Game{}
	var fetchErr error
	paginator.Dispatch(pq.Page, total, pq.Limit, func(page int) {
		rows, err := uc.repo.ListGames(ctx, repository.ListGamesOptions{
			Search: input.Search,
			Limit:  pq.Limit,
			Offset: pq.Offset(),
		})
		if err != nil {
			uc.l.Errorf(ctx, "game.usecase.List: list failed: %v", err)
			fetchErr = game.ErrListFailed
			return
		}
		for _, g := range rows {
			games = append(games, *g)
		}
	})
	if fetchErr != nil {
		return game.ListOutput{}, fetchErr
	}

	// Step 4: Assemble page metadata and controls
	output := game.ListOutput{
		Games: games,
		Paginator: paginator.Paginator{
			Total:       total,
			Count:       int64(len(games)),
			PerPage:     pq.Limit,
			CurrentPage: pq.Page,
		},
		Descriptors: paginator.BuildPageDescriptors(pq.Page, total, pq.Limit),
	}

	// Step 5: Cache the assembled page (best effort)
	if data, err := json.Marshal(output); err == nil {
		if err := uc.cacheRepo.SaveGameList(ctx, cacheKey, data); err != nil {
			uc.l.Warnf(ctx, "game.usecase.List: failed to cache page: %v", err)
		}
	}

	return output, nil
}

// Refresh drops all cached catalog pages so subsequent reads see catalog
// edits immediately instead of waiting out the TTL.
func (uc *implUseCase) Refresh(ctx context.Context) error {
	if err := uc.cacheRepo.InvalidateGameList(ctx); err != nil {
		uc.l.Errorf(ctx, "game.usecase.Refresh: invalidate failed: %v", err)
		return game.ErrRefreshFailed
	}
	return nil
}

// The search term is hex-encoded so user input can never inject the key
// delimiter.
func (uc *implUseCase) generateCacheKey(search string, pq paginator.PaginateQuery) string {
	return fmt.Sprintf("game_list:%x:%d:%d", search, pq.Page, pq.Limit)
}
