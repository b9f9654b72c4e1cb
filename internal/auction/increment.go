package auction

import (
	"errors"
	"fmt"
)

// Tier is one band of the increment table: bids at a current price strictly
// below UpToCents must rise by at least IncrementCents.
type Tier struct {
	UpToCents      int64
	IncrementCents int64
}

// IncrementPolicy maps a current price to the minimum legal increment for
// the next bid. It is a pure step function over price bands; the table is
// business configuration, not part of the resolution algorithm.
type IncrementPolicy struct {
	tiers        []Tier
	topIncrement int64
}

// NewIncrementPolicy builds a policy from ascending tiers plus the increment
// applied above the last tier bound. Increments must be positive and
// non-decreasing as price rises, so that a legal bid at one band is never
// made illegal by a lower band.
func NewIncrementPolicy(tiers []Tier, topIncrementCents int64) (*IncrementPolicy, error) {
	if topIncrementCents <= 0 {
		return nil, errors.New("increment policy: top increment must be positive")
	}
	var prevBound, prevInc int64
	for i, t := range tiers {
		if t.UpToCents <= prevBound {
			return nil, fmt.Errorf("increment policy: tier %d bound %d not ascending", i, t.UpToCents)
		}
		if t.IncrementCents <= 0 {
			return nil, fmt.Errorf("increment policy: tier %d increment must be positive", i)
		}
		if t.IncrementCents < prevInc {
			return nil, fmt.Errorf("increment policy: tier %d increment %d decreases", i, t.IncrementCents)
		}
		prevBound = t.UpToCents
		prevInc = t.IncrementCents
	}
	if len(tiers) > 0 && topIncrementCents < prevInc {
		return nil, errors.New("increment policy: top increment decreases")
	}
	return &IncrementPolicy{tiers: tiers, topIncrement: topIncrementCents}, nil
}

// DefaultIncrementPolicy returns the standard production tier table.
func DefaultIncrementPolicy() *IncrementPolicy {
	p, err := NewIncrementPolicy([]Tier{
		{UpToCents: 100, IncrementCents: 5},
		{UpToCents: 1_000, IncrementCents: 25},
		{UpToCents: 2_500, IncrementCents: 50},
		{UpToCents: 10_000, IncrementCents: 100},
		{UpToCents: 25_000, IncrementCents: 250},
		{UpToCents: 50_000, IncrementCents: 500},
		{UpToCents: 100_000, IncrementCents: 1_000},
		{UpToCents: 250_000, IncrementCents: 2_500},
	}, 5_000)
	if err != nil {
		panic(err) // table above is static and valid
	}
	return p
}

// MinIncrement returns the minimum increment for a bid above the given
// current price. Deterministic and total over all non-negative inputs;
// negative inputs are treated as zero.
func (p *IncrementPolicy) MinIncrement(currentPriceCents int64) int64 {
	if currentPriceCents < 0 {
		currentPriceCents = 0
	}
	for _, t := range p.tiers {
		if currentPriceCents < t.UpToCents {
			return t.IncrementCents
		}
	}
	return p.topIncrement
}
