package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	gameHTTP "github.com/seolargo/skivori-case/internal/game/delivery/http"
	gamePostgre "github.com/seolargo/skivori-case/internal/game/repository/postgre"
	gameRedis "github.com/seolargo/skivori-case/internal/game/repository/redis"
	gameUsecase "github.com/seolargo/skivori-case/internal/game/usecase"
)

func (srv *HTTPServer) setupGameDomain(ctx context.Context, r *gin.RouterGroup) error {
	repo := gamePostgre.New(srv.postgresDB, srv.l)
	cacheRepo := gameRedis.New(srv.redisClient, srv.l)

	uc := gameUsecase.New(repo, cacheRepo, srv.l)

	handler := gameHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r)

	srv.l.Infof(ctx, "Game domain registered")
	return nil
}
