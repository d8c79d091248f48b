package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/seolargo/skivori-case/internal/game/repository"
	"github.com/seolargo/skivori-case/internal/model"
)

// ListGames returns one page of the catalog, title-sorted, optionally
// filtered by a case-insensitive substring match on the title.
func (r *implRepository) ListGames(ctx context.Context, opts repository.ListGamesOptions) ([]*model.Game, error) {
	query, args := buildListGamesQuery(opts)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "game.repository.postgre.ListGames: query failed: %v", err)
		return nil, repository.ErrListFailed
	}
	defer rows.Close()

	var games []*model.Game
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			r.l.Errorf(ctx, "game.repository.postgre.ListGames: scan failed: %v", err)
			return nil, repository.ErrListFailed
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "game.repository.postgre.ListGames: rows error: %v", err)
		return nil, repository.ErrListFailed
	}

	return games, nil
}

// CountGames returns the number of catalog rows matching the filter.
func (r *implRepository) CountGames(ctx context.Context, opts repository.CountGamesOptions) (int64, error) {
	query := `SELECT COUNT(*) FROM games`
	args := []any{}
	if opts.Search != "" {
		query += ` WHERE title ILIKE $1`
		args = append(args, "%"+opts.Search+"%")
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "game.repository.postgre.CountGames: query failed: %v", err)
		return 0, repository.ErrCountFailed
	}
	return total, nil
}

func buildListGamesQuery(opts repository.ListGamesOptions) (string, []any) {
	query := `
		SELECT id, slug, title, provider, thumbnail_url, start_url, created_at, updated_at
		FROM games
	`
	args := []any{}
	if opts.Search != "" {
		args = append(args, "%"+opts.Search+"%")
		query += fmt.Sprintf(` WHERE title ILIKE $%d`, len(args))
	}

	query += ` ORDER BY title ASC`

	args = append(args, opts.Limit)
	query += fmt.Sprintf(` LIMIT $%d`, len(args))
	args = append(args, opts.Offset)
	query += fmt.Sprintf(` OFFSET $%d`, len(args))

	return query, args
}

func scanGame(rows *sql.Rows) (*model.Game, error) {
	var g model.Game
	var thumbnail, startURL sql.NullString

	if err := rows.Scan(
		&g.ID, &g.Slug, &g.Title, &g.Provider,
		&thumbnail, &startURL, &g.CreatedAt, &g.UpdatedAt,
	); err != nil {
		return nil, err
	}

	g.ThumbnailURL = thumbnail.String
	g.StartURL = startURL.String
	return &g, nil
}
