package payoff

import (
	"fmt"
	"math"
	"strings"
)

// OptionType selects the direction of a vanilla payoff.
type OptionType int

const (
	Call OptionType = iota
	Put
)

func (t OptionType) String() string {
	switch t {
	case Call:
		return "call"
	case Put:
		return "put"
	}
	return fmt.Sprintf("OptionType(%d)", int(t))
}

// Valid reports whether t is Call or Put.
func (t OptionType) Valid() bool {
	return t == Call || t == Put
}

// ParseOptionType accepts "call"/"put" in any case, and the "c"/"p" shorthands.
func ParseOptionType(s string) (OptionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "call", "c":
		return Call, nil
	case "put", "p":
		return Put, nil
	}
	return 0, fmt.Errorf("unknown option type %q, want call or put", s)
}

// Vanilla is a European call or put struck at Strike.
type Vanilla struct {
	Strike float64
	Type   OptionType
}

func NewVanilla(k float64, t OptionType) (*Vanilla, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid option type %v", t)
	}
	return &Vanilla{Strike: k, Type: t}, nil
}

// Payout returns the undiscounted payoff at expiry for terminal price sT, floored at zero.
func (v *Vanilla) Payout(sT float64) float64 {
	if v.Type == Put {
		return math.Max(v.Strike-sT, 0)
	}
	return math.Max(sT-v.Strike, 0)
}
