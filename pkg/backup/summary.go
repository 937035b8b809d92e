package backup

import (
	"fmt"
	"strings"
	"time"

	"droscher.com/WhiskyShelf/pkg/portable"
)

type Strategy string

const (
	StrategyAdd     Strategy = "add"
	StrategyReplace Strategy = "replace"
	StrategyMerge   Strategy = "merge"
)

func ParseStrategy(value string) (Strategy, error) {
	switch strategy := Strategy(strings.ToLower(strings.TrimSpace(value))); strategy {
	case "":
		return StrategyAdd, nil
	case StrategyAdd, StrategyReplace, StrategyMerge:
		return strategy, nil
	default:
		return "", fmt.Errorf("%w: unknown strategy %q", ErrValidation, value)
	}
}

const DefaultCallTimeout = 30 * time.Second

// Options selects how each entity is reconciled with what the account already has.
type Options struct {
	Brands      Strategy
	Bottles     Strategy
	Tastings    Strategy
	Wishlist    Strategy
	CallTimeout time.Duration
}

func (o Options) Strategy(kind portable.Kind) Strategy {
	switch kind {
	case portable.KindBrands:
		return o.Brands
	case portable.KindBottles:
		return o.Bottles
	case portable.KindTastings:
		return o.Tastings
	case portable.KindWishlist:
		return o.Wishlist
	default:
		return StrategyAdd
	}
}

func (o Options) normalized() (Options, error) {
	fields := []*Strategy{&o.Brands, &o.Bottles, &o.Tastings, &o.Wishlist}

	for _, field := range fields {
		strategy, err := ParseStrategy(string(*field))
		if err != nil {
			return o, err
		}

		*field = strategy
	}

	if o.CallTimeout <= 0 {
		o.CallTimeout = DefaultCallTimeout
	}

	return o, nil
}

// Counts are per entity and taken after filtering, so Inserted is what actually landed.
type Counts struct {
	Read       int `json:"read"`
	Inserted   int `json:"inserted"`
	Updated    int `json:"updated"`
	Deleted    int `json:"deleted"`
	Skipped    int `json:"skipped"`
	Unresolved int `json:"unresolved"`
}

type Summary struct {
	Brands     Counts  `json:"brands"`
	Bottles    Counts  `json:"bottles"`
	Tastings   Counts  `json:"tastings"`
	Wishlist   Counts  `json:"wishlist"`
	Unresolved []Issue `json:"unresolved"`
	Conflicts  []Issue `json:"conflicts"`
}

func newSummary() *Summary {
	return &Summary{Unresolved: []Issue{}, Conflicts: []Issue{}}
}

func (s *Summary) Counts(kind portable.Kind) *Counts {
	switch kind {
	case portable.KindBrands:
		return &s.Brands
	case portable.KindBottles:
		return &s.Bottles
	case portable.KindTastings:
		return &s.Tastings
	case portable.KindWishlist:
		return &s.Wishlist
	default:
		return &Counts{}
	}
}

// Partial reports whether records were dropped because of conflicts or unresolved
// bottle references.
func (s *Summary) Partial() bool {
	return len(s.Unresolved) > 0 || len(s.Conflicts) > 0
}
