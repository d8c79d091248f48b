package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/seolargo/skivori-case/internal/slot"
)

// spinEvent is the wire format published per spin.
type spinEvent struct {
	SessionID string   `json:"session_id"`
	Symbols   []string `json:"symbols"`
	Cost      int64    `json:"cost"`
	Reward    int64    `json:"reward"`
	Balance   int64    `json:"balance"`
	SpunAt    int64    `json:"spun_at"`
}

func (uc *implUseCase) publishSpinEvent(ctx context.Context, output slot.SpinOutput) {
	if uc.producer == nil {
		return
	}

	data, err := json.Marshal(spinEvent{
		SessionID: output.SessionID,
		Symbols:   output.Symbols,
		Cost:      output.Cost,
		Reward:    output.Reward,
		Balance:   output.Balance,
		SpunAt:    time.Now().Unix(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "slot.usecase.publishSpinEvent: marshal failed: %v", err)
		return
	}

	if err := uc.producer.Publish([]byte(output.SessionID), data); err != nil {
		uc.l.Warnf(ctx, "slot.usecase.publishSpinEvent: publish failed: %v", err)
	}
}
