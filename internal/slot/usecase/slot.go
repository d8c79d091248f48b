package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/seolargo/skivori-case/internal/slot"
	"github.com/seolargo/skivori-case/internal/slot/repository"
)

// Spin - Main spin method
// Flow: resolve session → debit cost → roll reels → evaluate reward → credit → publish event
func (uc *implUseCase) Spin(ctx context.Context, input slot.SpinInput) (slot.SpinOutput, error) {
	// Step 1: Resolve the session, funding new ones with the starting balance
	sessionID, err := uc.resolveSession(ctx, input.SessionID)
	if err != nil {
		return slot.SpinOutput{}, slot.ErrSpinFailed
	}

	// Step 2: Debit the spin cost. The debit is atomic; a negative result
	// means the session could not afford the spin and the debit is rolled back.
	balance, err := uc.repo.IncrBalance(ctx, sessionID, -uc.cfg.SpinCost)
	if err != nil {
		uc.l.Errorf(ctx, "slot.usecase.Spin: debit failed: %v", err)
		return slot.SpinOutput{}, slot.ErrSpinFailed
	}
	if balance < 0 {
		if _, err := uc.repo.IncrBalance(ctx, sessionID, uc.cfg.SpinCost); err != nil {
			uc.l.Errorf(ctx, "slot.usecase.Spin: rollback failed: %v", err)
		}
		return slot.SpinOutput{}, slot.ErrInsufficientBalance
	}

	// Step 3: Roll the reels
	symbols := make([]string, len(uc.machine.Reels))
	for i, reel := range uc.machine.Reels {
		symbols[i] = reel[uc.rng(len(reel))]
	}

	// Step 4: Evaluate and credit the reward
	reward := uc.machine.Evaluate(symbols)
	if reward > 0 {
		balance, err = uc.repo.IncrBalance(ctx, sessionID, reward)
		if err != nil {
			uc.l.Errorf(ctx, "slot.usecase.Spin: credit failed: %v", err)
			return slot.SpinOutput{}, slot.ErrSpinFailed
		}
	}

	output := slot.SpinOutput{
		SessionID: sessionID,
		Symbols:   symbols,
		Cost:      uc.cfg.SpinCost,
		Reward:    reward,
		Balance:   balance,
	}

	// Step 5: Publish the spin event. Best effort: a dead broker must never
	// fail a spin that already settled.
	uc.publishSpinEvent(ctx, output)

	return output, nil
}

// Reset - Restore the session to the starting balance
func (uc *implUseCase) Reset(ctx context.Context, sessionID string) (slot.ResetOutput, error) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	if err := uc.repo.SetBalance(ctx, sessionID, uc.cfg.StartingBalance); err != nil {
		uc.l.Errorf(ctx, "slot.usecase.Reset: set balance failed: %v", err)
		return slot.ResetOutput{}, slot.ErrSpinFailed
	}
	return slot.ResetOutput{
		SessionID: sessionID,
		Balance:   uc.cfg.StartingBalance,
	}, nil
}

// Balance - Read the current session balance
func (uc *implUseCase) Balance(ctx context.Context, sessionID string) (slot.BalanceOutput, error) {
	balance, err := uc.repo.GetBalance(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrBalanceNotFound) {
			return slot.BalanceOutput{}, slot.ErrSessionNotFound
		}
		uc.l.Errorf(ctx, "slot.usecase.Balance: read failed: %v", err)
		return slot.BalanceOutput{}, slot.ErrSpinFailed
	}
	return slot.BalanceOutput{
		SessionID: sessionID,
		Balance:   balance,
	}, nil
}

// resolveSession returns a funded session ID. Empty and never-seen session IDs
// both start a fresh session at the starting balance.
func (uc *implUseCase) resolveSession(ctx context.Context, sessionID string) (string, error) {
	if sessionID == "" {
		sessionID = uuid.NewString()
		return sessionID, uc.repo.SetBalance(ctx, sessionID, uc.cfg.StartingBalance)
	}

	if _, err := uc.repo.GetBalance(ctx, sessionID); err != nil {
		if errors.Is(err, repository.ErrBalanceNotFound) {
			return sessionID, uc.repo.SetBalance(ctx, sessionID, uc.cfg.StartingBalance)
		}
		return "", err
	}
	return sessionID, nil
}
