package http

import (
	"github.com/seolargo/skivori-case/internal/conversion"
	"github.com/seolargo/skivori-case/pkg/discord"
	"github.com/seolargo/skivori-case/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for the conversion HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup)
}

type handler struct {
	l       log.Logger
	uc      conversion.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc conversion.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
