package usecase

import (
	"math/rand"

	"github.com/seolargo/skivori-case/internal/slot"
	"github.com/seolargo/skivori-case/internal/slot/repository"
	"github.com/seolargo/skivori-case/pkg/kafka"
	"github.com/seolargo/skivori-case/pkg/log"
)

// Config - UseCase configuration
type Config struct {
	StartingBalance int64
	SpinCost        int64
}

// DefaultConfig - Default configuration
func DefaultConfig() Config {
	return Config{
		StartingBalance: 20,
		SpinCost:        1,
	}
}

type implUseCase struct {
	repo     repository.BalanceRepository
	producer kafka.IProducer // nil when event publishing is disabled
	machine  slot.Machine
	rng      func(n int) int
	l        log.Logger
	cfg      Config
}

// New - Factory. rng may be nil, in which case the global math/rand source is
// used; tests inject a deterministic one.
func New(
	repo repository.BalanceRepository,
	producer kafka.IProducer,
	machine slot.Machine,
	rng func(n int) int,
	l log.Logger,
	cfg Config,
) slot.UseCase {
	if rng == nil {
		rng = rand.Intn
	}
	return &implUseCase{
		repo:     repo,
		producer: producer,
		machine:  machine,
		rng:      rng,
		l:        l,
		cfg:      cfg,
	}
}
