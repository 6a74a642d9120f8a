package domain

import (
	"fmt"
	"time"

	"github.com/cristianortiz/auctionDashboard/internal/shared/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var log = logger.GetLogger()

// PaymentStatus is the payment side of a won auction settlement
type PaymentStatus string

const (
	PaymentStatusPending     PaymentStatus = "pending"
	PaymentStatusDepositPaid PaymentStatus = "deposit_paid"
	PaymentStatusCompleted   PaymentStatus = "completed"
)

// DeliveryStatus is the delivery side of a won auction settlement
type DeliveryStatus string

const (
	DeliveryStatusPending    DeliveryStatus = "pending"
	DeliveryStatusProcessing DeliveryStatus = "processing"
	DeliveryStatusShipped    DeliveryStatus = "shipped"
	DeliveryStatusDelivered  DeliveryStatus = "delivered"
)

// both machines only move forward, one step at a time
var (
	paymentFlow  = []PaymentStatus{PaymentStatusPending, PaymentStatusDepositPaid, PaymentStatusCompleted}
	deliveryFlow = []DeliveryStatus{DeliveryStatusPending, DeliveryStatusProcessing, DeliveryStatusShipped, DeliveryStatusDelivered}
)

func stepOf[S comparable](flow []S, s S) int {
	for i, v := range flow {
		if v == s {
			return i
		}
	}
	return -1
}

// ParsePaymentStatus converts raw input into a known PaymentStatus
func ParsePaymentStatus(raw string) (PaymentStatus, error) {
	s := PaymentStatus(raw)
	if stepOf(paymentFlow, s) < 0 {
		return "", fmt.Errorf("%w: payment status %q", ErrUnknownStatus, raw)
	}
	return s, nil
}

// ParseDeliveryStatus converts raw input into a known DeliveryStatus
func ParseDeliveryStatus(raw string) (DeliveryStatus, error) {
	s := DeliveryStatus(raw)
	if stepOf(deliveryFlow, s) < 0 {
		return "", fmt.Errorf("%w: delivery status %q", ErrUnknownStatus, raw)
	}
	return s, nil
}

// CanAdvanceTo reports whether next is the state right after s
func (s PaymentStatus) CanAdvanceTo(next PaymentStatus) bool {
	from, to := stepOf(paymentFlow, s), stepOf(paymentFlow, next)
	return from >= 0 && to == from+1
}

// CanAdvanceTo reports whether next is the state right after s
func (s DeliveryStatus) CanAdvanceTo(next DeliveryStatus) bool {
	from, to := stepOf(deliveryFlow, s), stepOf(deliveryFlow, next)
	return from >= 0 && to == from+1
}

// Settlement is the recorded payment+delivery state of a closed auction.
// It is the authoritative source of the statuses shown for a won auction.
type Settlement struct {
	AuctionID      uuid.UUID
	AuctionName    string
	EndTime        time.Time
	PaymentStatus  PaymentStatus
	DeliveryStatus DeliveryStatus
	UpdatedAt      time.Time
}

// NewSettlement starts a settlement with both sides pending
func NewSettlement(auctionID uuid.UUID, auctionName string, endTime time.Time) Settlement {
	return Settlement{
		AuctionID:      auctionID,
		AuctionName:    auctionName,
		EndTime:        endTime,
		PaymentStatus:  PaymentStatusPending,
		DeliveryStatus: DeliveryStatusPending,
	}
}

// Consistent reports whether delivery has not run ahead of payment
func (s Settlement) Consistent() bool {
	return s.DeliveryStatus != DeliveryStatusDelivered || s.PaymentStatus == PaymentStatusCompleted
}

// AdvancePayment returns a copy of s moved to next, or ErrInvalidTransition
func (s Settlement) AdvancePayment(next PaymentStatus) (Settlement, error) {
	if !s.PaymentStatus.CanAdvanceTo(next) {
		log.Warn("Settlement payment transition rejected",
			zap.String("auctionID", s.AuctionID.String()),
			zap.String("from", string(s.PaymentStatus)),
			zap.String("to", string(next)),
		)
		return s, fmt.Errorf("%w: payment %s -> %s", ErrInvalidTransition, s.PaymentStatus, next)
	}
	s.PaymentStatus = next
	return s, nil
}

// AdvanceDelivery returns a copy of s moved to next, or ErrInvalidTransition.
// Delivered is only reachable once payment is completed.
func (s Settlement) AdvanceDelivery(next DeliveryStatus) (Settlement, error) {
	if !s.DeliveryStatus.CanAdvanceTo(next) {
		log.Warn("Settlement delivery transition rejected",
			zap.String("auctionID", s.AuctionID.String()),
			zap.String("from", string(s.DeliveryStatus)),
			zap.String("to", string(next)),
		)
		return s, fmt.Errorf("%w: delivery %s -> %s", ErrInvalidTransition, s.DeliveryStatus, next)
	}
	if next == DeliveryStatusDelivered && s.PaymentStatus != PaymentStatusCompleted {
		log.Warn("Settlement delivery rejected: payment not completed",
			zap.String("auctionID", s.AuctionID.String()),
			zap.String("paymentStatus", string(s.PaymentStatus)),
		)
		return s, fmt.Errorf("%w: cannot deliver before payment is completed (payment %s)", ErrInvalidTransition, s.PaymentStatus)
	}
	s.DeliveryStatus = next
	return s, nil
}

// WonAuction is a read only projection of a won bid and its settlement.
type WonAuction struct {
	AuctionID      uuid.UUID
	AuctionName    string
	BidID          uuid.UUID
	WinningAmount  int64
	EndTime        time.Time
	PaymentStatus  PaymentStatus
	DeliveryStatus DeliveryStatus
	// Inconsistent is set when the recorded settlement shows delivery ahead of payment
	Inconsistent bool
}

// RecordType is empty, won auctions carry no type selector
func (w WonAuction) RecordType() string { return "" }

// RecordStatus is the payment status, status filters read the payment side
func (w WonAuction) RecordStatus() string { return string(w.PaymentStatus) }

// RecordTime is the auction end time
func (w WonAuction) RecordTime() time.Time { return w.EndTime }

// InTab groups won auctions by what the buyer is waiting on
func (w WonAuction) InTab(tab Tab) bool {
	switch tab {
	case TabAwaitingPayment:
		return w.PaymentStatus != PaymentStatusCompleted
	case TabAwaitingDelivery:
		return w.PaymentStatus == PaymentStatusCompleted && w.DeliveryStatus != DeliveryStatusDelivered
	case TabDelivered:
		return w.DeliveryStatus == DeliveryStatusDelivered
	}
	return false
}

// ProjectWonAuctions selects the won bids and joins each one with the settlement of its auction.
// An auction without a settlement record is reported as pending/pending. Input order is kept.
func ProjectWonAuctions(bids []Bid, settlements []Settlement) []WonAuction {
	byAuction := make(map[uuid.UUID]Settlement, len(settlements))
	for _, s := range settlements {
		byAuction[s.AuctionID] = s
	}

	won := make([]WonAuction, 0)
	for _, b := range bids {
		if b.Status != BidStatusWon {
			continue
		}
		w := WonAuction{
			AuctionID:      b.AuctionID,
			BidID:          b.ID,
			WinningAmount:  b.Amount,
			PaymentStatus:  PaymentStatusPending,
			DeliveryStatus: DeliveryStatusPending,
		}
		if s, ok := byAuction[b.AuctionID]; ok {
			w.AuctionName = s.AuctionName
			w.EndTime = s.EndTime
			w.PaymentStatus = s.PaymentStatus
			w.DeliveryStatus = s.DeliveryStatus
			w.Inconsistent = !s.Consistent()
		}
		won = append(won, w)
	}
	return won
}
