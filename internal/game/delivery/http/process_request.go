package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processListRequest(c *gin.Context) (listGamesReq, error) {
	var req listGamesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidQuery
	}
	return req, nil
}
