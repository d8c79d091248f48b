package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processConvertRequest(c *gin.Context) (convertReq, error) {
	var req convertReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidQuery
	}
	return req, nil
}
