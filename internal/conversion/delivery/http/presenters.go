package http

import (
	"github.com/seolargo/skivori-case/internal/conversion"
)

// =====================================================
// Request DTOs
// =====================================================

type convertReq struct {
	// required would reject a legitimate zero amount, so the binding stays open
	// and the usecase rejects negatives.
	Amount float64 `form:"amount"`
	From   string  `form:"from" binding:"required,len=3"`
	To     string  `form:"to" binding:"required,len=3"`
}

func (r convertReq) toInput() conversion.ConvertInput {
	return conversion.ConvertInput{
		Amount: r.Amount,
		From:   r.From,
		To:     r.To,
	}
}

// =====================================================
// Response DTOs
// =====================================================

type convertResp struct {
	Amount    float64 `json:"amount"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Rate      float64 `json:"rate"`
	Converted float64 `json:"converted"`
	CacheHit  bool    `json:"cache_hit"`
}

func (h *handler) newConvertResp(output conversion.ConvertOutput) convertResp {
	return convertResp{
		Amount:    output.Amount,
		From:      output.From,
		To:        output.To,
		Rate:      output.Rate,
		Converted: output.Converted,
		CacheHit:  output.CacheHit,
	}
}
