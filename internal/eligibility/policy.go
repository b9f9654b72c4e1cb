package eligibility

import "sync"

// StaticPolicy is a category allowlist: unrestricted categories accept any
// bidder, restricted ones only bidders explicitly cleared for them. It
// backs the coordinator's EligibilityPolicy collaborator for deployments
// without an external compliance service.
type StaticPolicy struct {
	mu         sync.RWMutex
	restricted map[string]map[string]bool // category -> bidderID -> cleared
}

// NewStaticPolicy creates a policy with no restricted categories.
func NewStaticPolicy() *StaticPolicy {
	return &StaticPolicy{restricted: make(map[string]map[string]bool)}
}

// RestrictCategory marks a category as restricted. Only bidders cleared via
// ClearBidder may bid in it afterwards.
func (p *StaticPolicy) RestrictCategory(category string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.restricted[category] == nil {
		p.restricted[category] = make(map[string]bool)
	}
}

// ClearBidder grants a bidder access to a restricted category.
func (p *StaticPolicy) ClearBidder(bidderID, category string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.restricted[category] == nil {
		p.restricted[category] = make(map[string]bool)
	}
	p.restricted[category][bidderID] = true
}

// IsEligibleBidder implements the coordinator's eligibility check.
func (p *StaticPolicy) IsEligibleBidder(bidderID, auctionCategory string) (bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	cleared, isRestricted := p.restricted[auctionCategory]
	if !isRestricted {
		return true, nil
	}
	return cleared[bidderID], nil
}
