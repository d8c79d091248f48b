package http

import (
	"github.com/seolargo/skivori-case/pkg/response"

	"github.com/gin-gonic/gin"
)

// Spin - Play one spin
// @Summary Spin the slot machine
// @Description Debits one spin, rolls the reels and credits any reward. An empty session_id starts a new session with the starting balance
// @Tags Slot
// @Accept json
// @Produce json
// @Param body body spinReq false "Spin request"
// @Success 200 {object} spinResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/slot/spin [post]
func (h *handler) Spin(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, err := h.processSpinRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "slot.delivery.http.Spin: processSpinRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Call UseCase
	output, err := h.uc.Spin(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "slot.delivery.http.Spin: usecase Spin failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 3. Return response
	response.OK(c, h.newSpinResp(output))
}

// Reset - Reset the session balance
// @Summary Reset the slot session
// @Description Restores the session balance to the configured starting amount
// @Tags Slot
// @Accept json
// @Produce json
// @Param body body resetReq false "Reset request"
// @Success 200 {object} resetResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/slot/reset [post]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processResetRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "slot.delivery.http.Reset: processResetRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.Reset(ctx, req.SessionID)
	if err != nil {
		h.l.Errorf(ctx, "slot.delivery.http.Reset: usecase Reset failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newResetResp(output))
}

// Balance - Read the session balance
// @Summary Get the slot session balance
// @Tags Slot
// @Produce json
// @Param session_id query string true "Session ID"
// @Success 200 {object} balanceResp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/slot/balance [get]
func (h *handler) Balance(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processBalanceRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "slot.delivery.http.Balance: processBalanceRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.Balance(ctx, req.SessionID)
	if err != nil {
		h.l.Errorf(ctx, "slot.delivery.http.Balance: usecase Balance failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newBalanceResp(output))
}
