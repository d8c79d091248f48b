package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/seolargo/skivori-case/internal/game"
	"github.com/seolargo/skivori-case/internal/game/repository"
	"github.com/seolargo/skivori-case/internal/model"
	"github.com/seolargo/skivori-case/pkg/log"
	"github.com/seolargo/skivori-case/pkg/paginator"
)

// fakeRepo is an in-memory PostgresRepository.
type fakeRepo struct {
	games     []*model.Game
	listCalls int
}

func (r *fakeRepo) ListGames(_ context.Context, opts repository.ListGamesOptions) ([]*model.Game, error) {
	r.listCalls++
	matched := r.match(opts.Search)
	start := opts.Offset
	if start > int64(len(matched)) {
		start = int64(len(matched))
	}
	end := start + opts.Limit
	if end > int64(len(matched)) {
		end = int64(len(matched))
	}
	return matched[start:end], nil
}

func (r *fakeRepo) CountGames(_ context.Context, opts repository.CountGamesOptions) (int64, error) {
	return int64(len(r.match(opts.Search))), nil
}

func (r *fakeRepo) match(search string) []*model.Game {
	if search == "" {
		return r.games
	}
	var matched []*model.Game
	for _, g := range r.games {
		if strings.Contains(strings.ToLower(g.Title), strings.ToLower(search)) {
			matched = append(matched, g)
		}
	}
	return matched
}

// fakeCacheRepo is a no-hit CacheRepository that records saves.
type fakeCacheRepo struct {
	saved          map[string][]byte
	failInvalidate bool
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{saved: map[string][]byte{}}
}

func (r *fakeCacheRepo) GetGameList(_ context.Context, cacheKey string) ([]byte, error) {
	data, ok := r.saved[cacheKey]
	if !ok {
		return nil, errors.New("cache miss")
	}
	return data, nil
}

func (r *fakeCacheRepo) SaveGameList(_ context.Context, cacheKey string, data []byte) error {
	r.saved[cacheKey] = data
	return nil
}

func (r *fakeCacheRepo) InvalidateGameList(_ context.Context) error {
	if r.failInvalidate {
		return errors.New("invalidate failed")
	}
	r.saved = map[string][]byte{}
	return nil
}

func seedGames(n int) []*model.Game {
	games := make([]*model.Game, 0, n)
	for i := 0; i < n; i++ {
		games = append(games, &model.Game{
			ID:    string(rune('a' + i%26)),
			Title: "Game " + string(rune('A'+i%26)),
		})
	}
	return games
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("first page with defaults", func(t *testing.T) {
		repo := &fakeRepo{games: seedGames(25)}
		uc := New(repo, newFakeCacheRepo(), log.NewNop())

		output, err := uc.List(ctx, game.ListInput{})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(output.Games) != int(paginator.DefaultLimit) {
			t.Errorf("Games length mismatch: got %d, want %d", len(output.Games), paginator.DefaultLimit)
		}
		if output.Paginator.Total != 25 {
			t.Errorf("Total mismatch: got %d, want 25", output.Paginator.Total)
		}
		if output.Paginator.CurrentPage != 1 {
			t.Errorf("CurrentPage mismatch: got %d, want 1", output.Paginator.CurrentPage)
		}
		// Previous + 3 numbered pages + Next.
		if len(output.Descriptors) != 5 {
			t.Errorf("Descriptors length mismatch: got %d, want 5", len(output.Descriptors))
		}
		if !output.Descriptors[0].Disabled {
			t.Error("Previous should be disabled on page 1")
		}
	})

	t.Run("out of range page returns empty rows without error", func(t *testing.T) {
		repo := &fakeRepo{games: seedGames(25)}
		uc := New(repo, newFakeCacheRepo(), log.NewNop())

		output, err := uc.List(ctx, game.ListInput{Page: 10})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(output.Games) != 0 {
			t.Errorf("Expected empty rows, got %d", len(output.Games))
		}
		if repo.listCalls != 0 {
			t.Errorf("Repository should not be queried for an invalid page, got %d calls", repo.listCalls)
		}
		// Controls are still emitted so the client can navigate back.
		if len(output.Descriptors) != 5 {
			t.Errorf("Descriptors length mismatch: got %d, want 5", len(output.Descriptors))
		}
	})

	t.Run("search narrows the result", func(t *testing.T) {
		repo := &fakeRepo{games: []*model.Game{
			{ID: "1", Title: "Starburst"},
			{ID: "2", Title: "Dead or Alive"},
			{ID: "3", Title: "Starlight Princess"},
		}}
		uc := New(repo, newFakeCacheRepo(), log.NewNop())

		output, err := uc.List(ctx, game.ListInput{Search: "star"})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(output.Games) != 2 {
			t.Errorf("Games length mismatch: got %d, want 2", len(output.Games))
		}
		if output.Paginator.Total != 2 {
			t.Errorf("Total mismatch: got %d, want 2", output.Paginator.Total)
		}
	})

	t.Run("search over the length cap is rejected", func(t *testing.T) {
		uc := New(&fakeRepo{}, newFakeCacheRepo(), log.NewNop())

		_, err := uc.List(ctx, game.ListInput{Search: strings.Repeat("a", game.MaxSearchLength+1)})
		if !errors.Is(err, game.ErrSearchTooLong) {
			t.Fatalf("Expected ErrSearchTooLong, got %v", err)
		}
	})

	t.Run("refresh drops cached pages so the catalog is re-read", func(t *testing.T) {
		repo := &fakeRepo{games: seedGames(5)}
		cache := newFakeCacheRepo()
		uc := New(repo, cache, log.NewNop())

		if _, err := uc.List(ctx, game.ListInput{}); err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(cache.saved) == 0 {
			t.Fatal("Expected the first page to be cached")
		}

		if err := uc.Refresh(ctx); err != nil {
			t.Fatalf("Refresh failed: %v", err)
		}
		if len(cache.saved) != 0 {
			t.Fatal("Refresh should drop all cached pages")
		}

		output, err := uc.List(ctx, game.ListInput{})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if output.CacheHit {
			t.Error("List after Refresh must not be served from the cache")
		}
		if repo.listCalls != 2 {
			t.Errorf("Repository queried %d times, want 2", repo.listCalls)
		}
	})

	t.Run("refresh surfaces cache failures", func(t *testing.T) {
		cache := newFakeCacheRepo()
		cache.failInvalidate = true
		uc := New(&fakeRepo{}, cache, log.NewNop())

		if err := uc.Refresh(ctx); !errors.Is(err, game.ErrRefreshFailed) {
			t.Fatalf("Expected ErrRefreshFailed, got %v", err)
		}
	})

	t.Run("second call hits the cache", func(t *testing.T) {
		repo := &fakeRepo{games: seedGames(5)}
		uc := New(repo, newFakeCacheRepo(), log.NewNop())

		if _, err := uc.List(ctx, game.ListInput{}); err != nil {
			t.Fatalf("List failed: %v", err)
		}
		output, err := uc.List(ctx, game.ListInput{})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if !output.CacheHit {
			t.Error("Expected a cache hit on the second call")
		}
		if repo.listCalls != 1 {
			t.Errorf("Repository queried %d times, want 1", repo.listCalls)
		}
	})

	t.Run("searches containing the key delimiter stay isolated in the cache", func(t *testing.T) {
		repo := &fakeRepo{games: []*model.Game{
			{ID: "1", Title: "star:1 deluxe"},
			{ID: "2", Title: "star classic"},
		}}
		uc := New(repo, newFakeCacheRepo(), log.NewNop())

		first, err := uc.List(ctx, game.ListInput{Search: "star:1"})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		second, err := uc.List(ctx, game.ListInput{Search: "star"})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if second.CacheHit {
			t.Error("Distinct searches must not share a cache entry")
		}
		if len(first.Games) != 1 || len(second.Games) != 2 {
			t.Errorf("Result mismatch: got %d and %d games, want 1 and 2", len(first.Games), len(second.Games))
		}
	})

	t.Run("empty catalog disables all navigation", func(t *testing.T) {
		uc := New(&fakeRepo{}, newFakeCacheRepo(), log.NewNop())

		output, err := uc.List(ctx, game.ListInput{})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(output.Descriptors) != 2 {
			t.Fatalf("Descriptors length mismatch: got %d, want 2", len(output.Descriptors))
		}
		for _, d := range output.Descriptors {
			if !d.Disabled {
				t.Errorf("Descriptor %s should be disabled over an empty catalog", d.Kind)
			}
		}
	})
}
