package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/seolargo/skivori-case/internal/slot"
	slotHTTP "github.com/seolargo/skivori-case/internal/slot/delivery/http"
	slotRedis "github.com/seolargo/skivori-case/internal/slot/repository/redis"
	slotUsecase "github.com/seolargo/skivori-case/internal/slot/usecase"
)

func (srv *HTTPServer) setupSlotDomain(ctx context.Context, r *gin.RouterGroup) error {
	repo := slotRedis.New(srv.redisClient, srv.l)

	machine := slot.NewMachine(srv.config.Slot.Machine)

	uc := slotUsecase.New(repo, srv.producer, machine, nil, srv.l, slotUsecase.Config{
		StartingBalance: srv.config.Slot.StartingBalance,
		SpinCost:        srv.config.Slot.SpinCost,
	})

	handler := slotHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r)

	srv.l.Infof(ctx, "Slot domain registered")
	return nil
}
