package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	conversionHTTP "github.com/seolargo/skivori-case/internal/conversion/delivery/http"
	conversionRedis "github.com/seolargo/skivori-case/internal/conversion/repository/redis"
	conversionUsecase "github.com/seolargo/skivori-case/internal/conversion/usecase"
	"github.com/seolargo/skivori-case/pkg/ratesrv"
)

func (srv *HTTPServer) setupConversionDomain(ctx context.Context, r *gin.RouterGroup) error {
	cacheRepo := conversionRedis.New(srv.redisClient, srv.l)

	rateSrv := ratesrv.New(ratesrv.RateConfig{
		BaseURL: srv.config.Rates.BaseURL,
		Timeout: srv.config.Rates.Timeout,
	})

	uc := conversionUsecase.New(rateSrv, cacheRepo, srv.l)

	handler := conversionHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r)

	srv.l.Infof(ctx, "Conversion domain registered")
	return nil
}
