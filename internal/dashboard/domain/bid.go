package domain

import (
	"time"

	"github.com/google/uuid"
)

// BidStatus is the lifecycle status of a recorded bid
type BidStatus string

const (
	BidStatusActive BidStatus = "active"
	BidStatusOutbid BidStatus = "outbid"
	BidStatusWon    BidStatus = "won"
	BidStatusLost   BidStatus = "lost"
)

// Bid is an immutable snapshot of a single bid placed on an auction.
// Status changes only when the auction closes or a higher bid arrives, both outside this package.
type Bid struct {
	ID         uuid.UUID
	AuctionID  uuid.UUID
	BidderID   uuid.UUID
	BidderName string // optional
	Amount     int64
	Timestamp  time.Time
	Status     BidStatus
}

// NewBid creates a new Bid instance
func NewBid(id, auctionID, bidderID uuid.UUID, amount int64, timestamp time.Time, status BidStatus) Bid {
	return Bid{
		ID:        id,
		AuctionID: auctionID,
		BidderID:  bidderID,
		Amount:    amount,
		Timestamp: timestamp,
		Status:    status,
	}
}

// RecordType is empty, bids carry no type selector
func (b Bid) RecordType() string { return "" }

// RecordStatus is the bid status filters match against
func (b Bid) RecordStatus() string { return string(b.Status) }

// RecordTime is when the bid was placed
func (b Bid) RecordTime() time.Time { return b.Timestamp }

// CanLead reports whether the bid still competes for the top of its auction.
// Outbid and lost bids keep their rank position but never lead.
func (b Bid) CanLead() bool {
	return b.Status == BidStatusActive || b.Status == BidStatusWon
}

// InTab groups bids the way the bid history tabs do: active covers bids on running auctions.
func (b Bid) InTab(tab Tab) bool {
	switch tab {
	case TabActive:
		return b.Status == BidStatusActive || b.Status == BidStatusOutbid
	case TabWon:
		return b.Status == BidStatusWon
	case TabLost:
		return b.Status == BidStatusLost
	}
	return false
}

// Viewer identifies the user a dashboard view is computed for.
// It is passed explicitly by the caller, there is no process wide current user.
type Viewer struct {
	UserID uuid.UUID
}

// Owns reports whether bid was placed by the viewer
func (v Viewer) Owns(bid Bid) bool {
	return bid.BidderID == v.UserID
}
