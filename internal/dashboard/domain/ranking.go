package domain

import (
	"bytes"
	"cmp"
	"slices"

	"github.com/google/uuid"
)

// RankedBids is a bid sequence ordered highest first
type RankedBids []Bid

// compareBids orders by amount descending, then earliest timestamp, then bid ID bytes.
// Two bids compare equal only when they carry the same ID.
func compareBids(a, b Bid) int {
	if c := cmp.Compare(b.Amount, a.Amount); c != 0 {
		return c
	}
	if c := a.Timestamp.Compare(b.Timestamp); c != 0 {
		return c
	}
	return bytes.Compare(a.ID[:], b.ID[:])
}

// Rank returns a new sequence of the bids of one auction, the leader first.
// The input slice is left untouched.
func Rank(bids []Bid) RankedBids {
	ranked := make(RankedBids, len(bids))
	copy(ranked, bids)
	slices.SortFunc(ranked, compareBids)
	return ranked
}

// RankByAuction splits bids per auction and ranks each group
func RankByAuction(bids []Bid) map[uuid.UUID]RankedBids {
	groups := make(map[uuid.UUID][]Bid)
	for _, b := range bids {
		groups[b.AuctionID] = append(groups[b.AuctionID], b)
	}
	ranked := make(map[uuid.UUID]RankedBids, len(groups))
	for auctionID, group := range groups {
		ranked[auctionID] = Rank(group)
	}
	return ranked
}

// Leader returns the highest bid that can still lead (active or won),
// false when there is none
func (r RankedBids) Leader() (Bid, bool) {
	for _, b := range r {
		if b.CanLead() {
			return b, true
		}
	}
	return Bid{}, false
}

// IsHighest reports whether bid is the current leader
func (r RankedBids) IsHighest(bid Bid) bool {
	leader, ok := r.Leader()
	return ok && leader.ID == bid.ID
}

// StandingOf returns the viewer's 1-based position among distinct bidders,
// each bidder placed by their best bid. False when the viewer has not bid.
func (r RankedBids) StandingOf(viewer Viewer) (int, bool) {
	seen := make(map[uuid.UUID]struct{}, len(r))
	for _, b := range r {
		if _, ok := seen[b.BidderID]; ok {
			continue
		}
		seen[b.BidderID] = struct{}{}
		if b.BidderID == viewer.UserID {
			return len(seen), true
		}
	}
	return 0, false
}
