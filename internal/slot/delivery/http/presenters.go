package http

import (
	"github.com/seolargo/skivori-case/internal/slot"
)

// =====================================================
// Request DTOs
// =====================================================

// An empty body is allowed on spin and reset: both start a new session.

type spinReq struct {
	SessionID string `json:"session_id"`
}

func (r spinReq) toInput() slot.SpinInput {
	return slot.SpinInput{SessionID: r.SessionID}
}

type resetReq struct {
	SessionID string `json:"session_id"`
}

type balanceReq struct {
	SessionID string `form:"session_id" binding:"required"`
}

// =====================================================
// Response DTOs
// =====================================================

type spinResp struct {
	SessionID string   `json:"session_id"`
	Symbols   []string `json:"symbols"`
	Cost      int64    `json:"cost"`
	Reward    int64    `json:"reward"`
	Balance   int64    `json:"balance"`
}

type resetResp struct {
	SessionID string `json:"session_id"`
	Balance   int64  `json:"balance"`
}

type balanceResp struct {
	SessionID string `json:"session_id"`
	Balance   int64  `json:"balance"`
}

func (h *handler) newSpinResp(output slot.SpinOutput) spinResp {
	return spinResp{
		SessionID: output.SessionID,
		Symbols:   output.Symbols,
		Cost:      output.Cost,
		Reward:    output.Reward,
		Balance:   output.Balance,
	}
}

func (h *handler) newResetResp(output slot.ResetOutput) resetResp {
	return resetResp{
		SessionID: output.SessionID,
		Balance:   output.Balance,
	}
}

func (h *handler) newBalanceResp(output slot.BalanceOutput) balanceResp {
	return balanceResp{
		SessionID: output.SessionID,
		Balance:   output.Balance,
	}
}
