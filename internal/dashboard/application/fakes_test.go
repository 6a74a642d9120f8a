package application

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/cristianortiz/auctionDashboard/internal/dashboard/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func idOf(n int) uuid.UUID {
	return uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", n))
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 3, 14, hour, minute, 0, 0, time.UTC)
}

type fakeBidRepo struct {
	bids          []domain.Bid
	err           error
	auctionCalls  int
	auctionIDsArg []uuid.UUID
}

func (f *fakeBidRepo) GetBidsByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Bid, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Bid
	for _, b := range f.bids {
		if b.BidderID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBidRepo) GetBidsByAuctionIDs(ctx context.Context, auctionIDs []uuid.UUID) ([]domain.Bid, error) {
	f.auctionCalls++
	f.auctionIDsArg = auctionIDs
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Bid
	for _, b := range f.bids {
		if slices.Contains(auctionIDs, b.AuctionID) {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeSettlementRepo struct {
	settlements map[uuid.UUID]domain.Settlement
	saved       []domain.Settlement
	saveErr     error
}

func (f *fakeSettlementRepo) GetByAuctionIDs(ctx context.Context, auctionIDs []uuid.UUID) ([]domain.Settlement, error) {
	var out []domain.Settlement
	for _, id := range auctionIDs {
		if s, ok := f.settlements[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSettlementRepo) GetByAuctionIDForUpdate(ctx context.Context, tx pgx.Tx, auctionID uuid.UUID) (domain.Settlement, error) {
	s, ok := f.settlements[auctionID]
	if !ok {
		return domain.Settlement{}, domain.ErrSettlementNotFound
	}
	return s, nil
}

func (f *fakeSettlementRepo) Save(ctx context.Context, tx pgx.Tx, s domain.Settlement) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, s)
	return nil
}

type fakeTxRepo struct {
	txs []domain.Transaction
	err error
}

func (f *fakeTxRepo) GetByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Transaction
	for _, tx := range f.txs {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	return out, nil
}

type fakeDirectory struct {
	names map[uuid.UUID]string
	err   error
}

func (f *fakeDirectory) DisplayName(ctx context.Context, userID uuid.UUID) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.names[userID], nil
}

// fakeTx only implements the calls the use cases make; anything else panics on the nil embedded Tx
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
	commitErr  error
}

func (t *fakeTx) Commit(ctx context.Context) error {
	if t.commitErr != nil {
		return t.commitErr
	}
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.rolledBack = true
	return nil
}

type fakeDB struct {
	tx       *fakeTx
	beginErr error
}

func (d *fakeDB) BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
	if d.beginErr != nil {
		return nil, d.beginErr
	}
	return d.tx, nil
}
