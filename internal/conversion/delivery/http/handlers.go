package http

import (
	"github.com/seolargo/skivori-case/pkg/response"

	"github.com/gin-gonic/gin"
)

// Convert - Convert an amount between currencies
// @Summary Convert currency
// @Description Converts an amount from one currency to another using the latest exchange rates
// @Tags Conversion
// @Produce json
// @Param amount query number true "Amount to convert (non-negative)"
// @Param from query string true "Source currency code (three letters)"
// @Param to query string true "Target currency code (three letters)"
// @Success 200 {object} convertResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/convert [get]
func (h *handler) Convert(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, err := h.processConvertRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "conversion.delivery.http.Convert: processConvertRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Call UseCase
	output, err := h.uc.Convert(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "conversion.delivery.http.Convert: usecase Convert failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 3. Return response
	response.OK(c, h.newConvertResp(output))
}
