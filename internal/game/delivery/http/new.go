package http

import (
	"github.com/seolargo/skivori-case/internal/game"
	"github.com/seolargo/skivori-case/pkg/discord"
	"github.com/seolargo/skivori-case/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for the game HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup)
}

type handler struct {
	l       log.Logger
	uc      game.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc game.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
