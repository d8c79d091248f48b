package postgre

import (
	"database/sql"

	"github.com/seolargo/skivori-case/internal/game/repository"
	"github.com/seolargo/skivori-case/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New - Factory
func New(db *sql.DB, l log.Logger) repository.PostgresRepository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
