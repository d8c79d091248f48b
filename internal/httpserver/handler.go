package httpserver

import (
	"context"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/seolargo/skivori-case/internal/middleware"
)

func (srv *HTTPServer) mapHandlers() error {
	ctx := context.Background()

	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	root := srv.gin.Group("")

	// Domain wiring
	if err := srv.setupGameDomain(ctx, root); err != nil {
		return err
	}
	if err := srv.setupConversionDomain(ctx, root); err != nil {
		return err
	}
	if err := srv.setupSlotDomain(ctx, root); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))
	srv.gin.Use(middleware.Cors())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
