package http

import (
	"github.com/seolargo/skivori-case/pkg/response"

	"github.com/gin-gonic/gin"
)

// List - List games with optional search and pagination
// @Summary List games
// @Description Returns one page of the game catalog, optionally filtered by a title search, together with pagination controls
// @Tags Game
// @Produce json
// @Param search query string false "Title search (case-insensitive substring)"
// @Param page query int false "Page number (1-indexed)"
// @Param limit query int false "Items per page"
// @Success 200 {object} listGamesResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/games [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, err := h.processListRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "game.delivery.http.List: processListRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Call UseCase
	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "game.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 3. Return response
	response.OK(c, h.newListGamesResp(output))
}

// Refresh - Drop the cached catalog pages
// @Summary Refresh the game catalog cache
// @Description Invalidates all cached catalog pages so the next reads reflect catalog changes immediately
// @Tags Game
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/games/refresh [post]
func (h *handler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Refresh(ctx); err != nil {
		h.l.Errorf(ctx, "game.delivery.http.Refresh: usecase Refresh failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}
