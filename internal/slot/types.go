package slot

import (
	"encoding/json"

	"github.com/seolargo/skivori-case/pkg/sanitize"
)

// Reward pays Payout when Count reels in a row show Symbol, counted from the
// first reel.
type Reward struct {
	Symbol string `json:"symbol"`
	Count  int    `json:"count"`
	Payout int64  `json:"payout"`
}

// Machine is the slot machine definition: one symbol strip per reel and the
// payout table.
type Machine struct {
	Reels   [][]string `json:"reels"`
	Rewards []Reward   `json:"rewards"`
}

// defaultMachineTemplate is the authoritative machine shape. Operator
// overrides are reconciled against it, so a partial or malformed override can
// never produce a machine with missing reels or a missing payout table.
func defaultMachineTemplate() map[string]any {
	strip := []any{"cherry", "lemon", "apple", "banana"}
	return map[string]any{
		"reels": []any{strip, strip, strip},
		"rewards": []any{
			map[string]any{"symbol": "cherry", "count": 3, "payout": 50},
			map[string]any{"symbol": "cherry", "count": 2, "payout": 40},
			map[string]any{"symbol": "apple", "count": 3, "payout": 20},
			map[string]any{"symbol": "apple", "count": 2, "payout": 10},
			map[string]any{"symbol": "banana", "count": 3, "payout": 15},
			map[string]any{"symbol": "banana", "count": 2, "payout": 5},
			map[string]any{"symbol": "lemon", "count": 3, "payout": 3},
		},
	}
}

// NewMachine builds the machine from an optional operator override. The
// override is reconciled field by field against the default template; nil or
// empty sections fall back to the defaults.
func NewMachine(override map[string]any) Machine {
	merged := sanitize.Sanitize(override, defaultMachineTemplate())

	// The merged value is template-shaped by construction, so the round trip
	// cannot fail on well-formed overrides.
	var m Machine
	data, _ := json.Marshal(merged)
	_ = json.Unmarshal(data, &m)
	return m
}

// Evaluate returns the payout for one spin result. Triples beat pairs, and a
// pair only counts on the first two reels.
func (m Machine) Evaluate(symbols []string) int64 {
	if len(symbols) < 2 {
		return 0
	}
	triple := len(symbols) >= 3 && symbols[0] == symbols[1] && symbols[1] == symbols[2]
	pair := symbols[0] == symbols[1]

	if triple {
		for _, r := range m.Rewards {
			if r.Count == 3 && symbols[0] == r.Symbol {
				return r.Payout
			}
		}
	}
	if pair {
		for _, r := range m.Rewards {
			if r.Count == 2 && symbols[0] == r.Symbol {
				return r.Payout
			}
		}
	}
	return 0
}

// SpinInput identifies the player session. An empty SessionID starts a new
// session with the configured starting balance.
type SpinInput struct {
	SessionID string
}

// SpinOutput carries one spin result.
type SpinOutput struct {
	SessionID string
	Symbols   []string
	Cost      int64
	Reward    int64
	Balance   int64
}

// ResetOutput carries the state of a freshly reset session.
type ResetOutput struct {
	SessionID string
	Balance   int64
}

// BalanceOutput carries the current session balance.
type BalanceOutput struct {
	SessionID string
	Balance   int64
}
