package http

import (
	"io"

	"github.com/gin-gonic/gin"
)

func (h *handler) processSpinRequest(c *gin.Context) (spinReq, error) {
	var req spinReq
	if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
		return req, errInvalidBody
	}
	return req, nil
}

func (h *handler) processResetRequest(c *gin.Context) (resetReq, error) {
	var req resetReq
	if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
		return req, errInvalidBody
	}
	return req, nil
}

func (h *handler) processBalanceRequest(c *gin.Context) (balanceReq, error) {
	var req balanceReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errSessionRequired
	}
	return req, nil
}
