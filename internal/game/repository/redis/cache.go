package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const gameListTTL = 5 * time.Minute

func (r *implCacheRepository) GetGameList(ctx context.Context, cacheKey string) ([]byte, error) {
	data, err := r.redis.GetClient().Get(ctx, cacheKey).Result()
	if err != nil {
		return nil, err
	}
	return []byte(data), nil
}

func (r *implCacheRepository) SaveGameList(ctx context.Context, cacheKey string, data []byte) error {
	if err := r.redis.GetClient().Set(ctx, cacheKey, data, gameListTTL).Err(); err != nil {
		r.l.Errorf(ctx, "game.repository.redis.SaveGameList: Failed to save to cache: %v", err)
		return err
	}
	return nil
}

func (r *implCacheRepository) InvalidateGameList(ctx context.Context) error {
	client := r.redis.GetClient()

	var cursor uint64
	for {
		keys, nextCursor, err := client.Scan(ctx, cursor, "game_list:*", 100).Result()
		if err != nil {
			r.l.Errorf(ctx, "game.repository.redis.InvalidateGameList: Failed to scan cache: %v", err)
			return err
		}
		if len(keys) > 0 {
			pipe := client.Pipeline()
			for _, key := range keys {
				pipe.Del(ctx, key)
			}
			if _, err := pipe.Exec(ctx); err != nil && err != goredis.Nil {
				r.l.Errorf(ctx, "game.repository.redis.InvalidateGameList: Failed to execute pipeline: %v", err)
				return err
			}
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	return nil
}
