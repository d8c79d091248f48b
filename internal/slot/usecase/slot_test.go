package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/seolargo/skivori-case/internal/slot"
	"github.com/seolargo/skivori-case/internal/slot/repository"
	"github.com/seolargo/skivori-case/pkg/log"
)

// fakeBalanceRepo is an in-memory BalanceRepository.
type fakeBalanceRepo struct {
	balances map[string]int64
	failIncr bool
}

func newFakeBalanceRepo() *fakeBalanceRepo {
	return &fakeBalanceRepo{balances: map[string]int64{}}
}

func (r *fakeBalanceRepo) GetBalance(_ context.Context, sessionID string) (int64, error) {
	balance, ok := r.balances[sessionID]
	if !ok {
		return 0, repository.ErrBalanceNotFound
	}
	return balance, nil
}

func (r *fakeBalanceRepo) SetBalance(_ context.Context, sessionID string, balance int64) error {
	r.balances[sessionID] = balance
	return nil
}

func (r *fakeBalanceRepo) IncrBalance(_ context.Context, sessionID string, delta int64) (int64, error) {
	if r.failIncr {
		return 0, errors.New("incr failed")
	}
	r.balances[sessionID] += delta
	return r.balances[sessionID], nil
}

// fixedRNG always returns the same index, so every reel lands on the same
// strip position.
func fixedRNG(index int) func(n int) int {
	return func(n int) int { return index % n }
}

func newTestUseCase(repo repository.BalanceRepository, rng func(n int) int) slot.UseCase {
	return New(repo, nil, slot.NewMachine(nil), rng, log.NewNop(), DefaultConfig())
}

func TestSpin(t *testing.T) {
	ctx := context.Background()

	t.Run("new session starts with starting balance minus cost", func(t *testing.T) {
		repo := newFakeBalanceRepo()
		// Index 1 on the default strip is lemon on every reel: triple lemon pays 3.
		uc := newTestUseCase(repo, fixedRNG(1))

		output, err := uc.Spin(ctx, slot.SpinInput{})
		if err != nil {
			t.Fatalf("Spin failed: %v", err)
		}
		if output.SessionID == "" {
			t.Fatal("Expected a generated session ID")
		}
		// 20 - 1 + 3 (triple lemon)
		if output.Balance != 22 {
			t.Errorf("Balance mismatch: got %d, want 22", output.Balance)
		}
		if output.Reward != 3 {
			t.Errorf("Reward mismatch: got %d, want 3", output.Reward)
		}
	})

	t.Run("triple cherry pays 50", func(t *testing.T) {
		repo := newFakeBalanceRepo()
		uc := newTestUseCase(repo, fixedRNG(0))

		output, err := uc.Spin(ctx, slot.SpinInput{})
		if err != nil {
			t.Fatalf("Spin failed: %v", err)
		}
		if output.Reward != 50 {
			t.Errorf("Reward mismatch: got %d, want 50", output.Reward)
		}
		if output.Balance != 20-1+50 {
			t.Errorf("Balance mismatch: got %d, want %d", output.Balance, 20-1+50)
		}
	})

	t.Run("losing spin only debits the cost", func(t *testing.T) {
		repo := newFakeBalanceRepo()
		// cherry, lemon, apple: no pair, no triple.
		rolls := []int{0, 1, 2}
		i := 0
		uc := newTestUseCase(repo, func(n int) int {
			v := rolls[i] % n
			i++
			return v
		})

		output, err := uc.Spin(ctx, slot.SpinInput{})
		if err != nil {
			t.Fatalf("Spin failed: %v", err)
		}
		if output.Reward != 0 {
			t.Errorf("Reward mismatch: got %d, want 0", output.Reward)
		}
		if output.Balance != 19 {
			t.Errorf("Balance mismatch: got %d, want 19", output.Balance)
		}
	})

	t.Run("pair on first two reels pays the pair reward", func(t *testing.T) {
		repo := newFakeBalanceRepo()
		// cherry, cherry, lemon: pair of cherries pays 40.
		rolls := []int{0, 0, 1}
		i := 0
		uc := newTestUseCase(repo, func(n int) int {
			v := rolls[i] % n
			i++
			return v
		})

		output, err := uc.Spin(ctx, slot.SpinInput{})
		if err != nil {
			t.Fatalf("Spin failed: %v", err)
		}
		if output.Reward != 40 {
			t.Errorf("Reward mismatch: got %d, want 40", output.Reward)
		}
	})

	t.Run("pair on last two reels pays nothing", func(t *testing.T) {
		repo := newFakeBalanceRepo()
		// lemon, cherry, cherry: the pair must start on the first reel.
		rolls := []int{1, 0, 0}
		i := 0
		uc := newTestUseCase(repo, func(n int) int {
			v := rolls[i] % n
			i++
			return v
		})

		output, err := uc.Spin(ctx, slot.SpinInput{})
		if err != nil {
			t.Fatalf("Spin failed: %v", err)
		}
		if output.Reward != 0 {
			t.Errorf("Reward mismatch: got %d, want 0", output.Reward)
		}
	})

	t.Run("insufficient balance rolls the debit back", func(t *testing.T) {
		repo := newFakeBalanceRepo()
		repo.balances["broke"] = 0
		uc := newTestUseCase(repo, fixedRNG(0))

		_, err := uc.Spin(ctx, slot.SpinInput{SessionID: "broke"})
		if !errors.Is(err, slot.ErrInsufficientBalance) {
			t.Fatalf("Expected ErrInsufficientBalance, got %v", err)
		}
		if repo.balances["broke"] != 0 {
			t.Errorf("Balance not rolled back: got %d, want 0", repo.balances["broke"])
		}
	})

	t.Run("unknown session is funded before the spin", func(t *testing.T) {
		repo := newFakeBalanceRepo()
		uc := newTestUseCase(repo, fixedRNG(1))

		output, err := uc.Spin(ctx, slot.SpinInput{SessionID: "fresh"})
		if err != nil {
			t.Fatalf("Spin failed: %v", err)
		}
		if output.SessionID != "fresh" {
			t.Errorf("SessionID mismatch: got %s, want fresh", output.SessionID)
		}
		if output.Balance != 22 {
			t.Errorf("Balance mismatch: got %d, want 22", output.Balance)
		}
	})

	t.Run("store failure surfaces as spin failed", func(t *testing.T) {
		repo := newFakeBalanceRepo()
		repo.balances["s"] = 10
		repo.failIncr = true
		uc := newTestUseCase(repo, fixedRNG(0))

		_, err := uc.Spin(ctx, slot.SpinInput{SessionID: "s"})
		if !errors.Is(err, slot.ErrSpinFailed) {
			t.Fatalf("Expected ErrSpinFailed, got %v", err)
		}
	})
}

func TestReset(t *testing.T) {
	ctx := context.Background()

	t.Run("restores the starting balance", func(t *testing.T) {
		repo := newFakeBalanceRepo()
		repo.balances["s"] = 3
		uc := newTestUseCase(repo, fixedRNG(0))

		output, err := uc.Reset(ctx, "s")
		if err != nil {
			t.Fatalf("Reset failed: %v", err)
		}
		if output.Balance != 20 {
			t.Errorf("Balance mismatch: got %d, want 20", output.Balance)
		}
		if repo.balances["s"] != 20 {
			t.Errorf("Stored balance mismatch: got %d, want 20", repo.balances["s"])
		}
	})

	t.Run("empty session ID starts a new session", func(t *testing.T) {
		repo := newFakeBalanceRepo()
		uc := newTestUseCase(repo, fixedRNG(0))

		output, err := uc.Reset(ctx, "")
		if err != nil {
			t.Fatalf("Reset failed: %v", err)
		}
		if output.SessionID == "" {
			t.Fatal("Expected a generated session ID")
		}
		if output.Balance != 20 {
			t.Errorf("Balance mismatch: got %d, want 20", output.Balance)
		}
	})
}

func TestBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the stored balance", func(t *testing.T) {
		repo := newFakeBalanceRepo()
		repo.balances["s"] = 7
		uc := newTestUseCase(repo, fixedRNG(0))

		output, err := uc.Balance(ctx, "s")
		if err != nil {
			t.Fatalf("Balance failed: %v", err)
		}
		if output.Balance != 7 {
			t.Errorf("Balance mismatch: got %d, want 7", output.Balance)
		}
	})

	t.Run("unknown session is not found", func(t *testing.T) {
		repo := newFakeBalanceRepo()
		uc := newTestUseCase(repo, fixedRNG(0))

		_, err := uc.Balance(ctx, "nope")
		if !errors.Is(err, slot.ErrSessionNotFound) {
			t.Fatalf("Expected ErrSessionNotFound, got %v", err)
		}
	})
}
