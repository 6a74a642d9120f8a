package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvancePayment(t *testing.T) {
	s := NewSettlement(idOf(1), "Vintage watch", at(18, 0))

	s, err := s.AdvancePayment(PaymentStatusDepositPaid)
	require.NoError(t, err)
	assert.Equal(t, PaymentStatusDepositPaid, s.PaymentStatus)

	s, err = s.AdvancePayment(PaymentStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, PaymentStatusCompleted, s.PaymentStatus)
}

func TestAdvancePayment_Rejected(t *testing.T) {
	tests := []struct {
		name string
		from PaymentStatus
		to   PaymentStatus
	}{
		{"skip a step", PaymentStatusPending, PaymentStatusCompleted},
		{"regression", PaymentStatusCompleted, PaymentStatusDepositPaid},
		{"same state", PaymentStatusDepositPaid, PaymentStatusDepositPaid},
		{"unknown target", PaymentStatusPending, PaymentStatus("refunded")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Settlement{AuctionID: idOf(1), PaymentStatus: tt.from, DeliveryStatus: DeliveryStatusPending}
			got, err := s.AdvancePayment(tt.to)
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Equal(t, tt.from, got.PaymentStatus)
		})
	}
}

func TestAdvanceDelivery(t *testing.T) {
	s := Settlement{AuctionID: idOf(1), PaymentStatus: PaymentStatusCompleted, DeliveryStatus: DeliveryStatusPending}

	var err error
	for _, next := range []DeliveryStatus{DeliveryStatusProcessing, DeliveryStatusShipped, DeliveryStatusDelivered} {
		s, err = s.AdvanceDelivery(next)
		require.NoError(t, err)
		assert.Equal(t, next, s.DeliveryStatus)
	}
	assert.True(t, s.Consistent())
}

func TestAdvanceDelivery_DeliveredRequiresCompletedPayment(t *testing.T) {
	s := Settlement{AuctionID: idOf(1), PaymentStatus: PaymentStatusDepositPaid, DeliveryStatus: DeliveryStatusShipped}

	got, err := s.AdvanceDelivery(DeliveryStatusDelivered)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, DeliveryStatusShipped, got.DeliveryStatus)
}

func TestAdvanceDelivery_SkipRejected(t *testing.T) {
	s := Settlement{AuctionID: idOf(1), PaymentStatus: PaymentStatusCompleted, DeliveryStatus: DeliveryStatusPending}

	_, err := s.AdvanceDelivery(DeliveryStatusShipped)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestParseStatuses(t *testing.T) {
	p, err := ParsePaymentStatus("deposit_paid")
	require.NoError(t, err)
	assert.Equal(t, PaymentStatusDepositPaid, p)

	_, err = ParsePaymentStatus("refunded")
	assert.ErrorIs(t, err, ErrUnknownStatus)

	d, err := ParseDeliveryStatus("shipped")
	require.NoError(t, err)
	assert.Equal(t, DeliveryStatusShipped, d)

	_, err = ParseDeliveryStatus("lost_in_mail")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestProjectWonAuctions(t *testing.T) {
	a1, a2, a3 := idOf(1), idOf(2), idOf(3)
	bids := []Bid{
		NewBid(idOf(10), a1, idOf(101), 900, at(9, 0), BidStatusWon),
		NewBid(idOf(11), a2, idOf(101), 300, at(9, 0), BidStatusLost),
		NewBid(idOf(12), a3, idOf(101), 450, at(9, 0), BidStatusWon),
		NewBid(idOf(13), a2, idOf(101), 500, at(9, 5), BidStatusWon),
	}
	settlements := []Settlement{
		{AuctionID: a1, AuctionName: "Lamp", EndTime: at(12, 0), PaymentStatus: PaymentStatusCompleted, DeliveryStatus: DeliveryStatusShipped},
		{AuctionID: a2, AuctionName: "Chair", EndTime: at(13, 0), PaymentStatus: PaymentStatusDepositPaid, DeliveryStatus: DeliveryStatusDelivered},
	}

	won := ProjectWonAuctions(bids, settlements)

	require.Len(t, won, 3)
	assert.Equal(t, []uuid.UUID{a1, a3, a2}, []uuid.UUID{won[0].AuctionID, won[1].AuctionID, won[2].AuctionID})

	assert.Equal(t, "Lamp", won[0].AuctionName)
	assert.Equal(t, int64(900), won[0].WinningAmount)
	assert.Equal(t, PaymentStatusCompleted, won[0].PaymentStatus)
	assert.Equal(t, DeliveryStatusShipped, won[0].DeliveryStatus)
	assert.False(t, won[0].Inconsistent)

	// no settlement recorded
	assert.Equal(t, PaymentStatusPending, won[1].PaymentStatus)
	assert.Equal(t, DeliveryStatusPending, won[1].DeliveryStatus)
	assert.True(t, won[1].EndTime.IsZero())

	// recorded state is reported as is, but flagged
	assert.Equal(t, DeliveryStatusDelivered, won[2].DeliveryStatus)
	assert.True(t, won[2].Inconsistent)
}

func TestProjectWonAuctions_Empty(t *testing.T) {
	assert.Empty(t, ProjectWonAuctions(nil, nil))
}
