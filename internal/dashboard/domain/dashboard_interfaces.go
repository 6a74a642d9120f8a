package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BidRepository interface {
	GetBidsByUserID(ctx context.Context, userID uuid.UUID) ([]Bid, error)
	GetBidsByAuctionIDs(ctx context.Context, auctionIDs []uuid.UUID) ([]Bid, error)
}

type SettlementRepository interface {
	GetByAuctionIDs(ctx context.Context, auctionIDs []uuid.UUID) ([]Settlement, error)
	GetByAuctionIDForUpdate(ctx context.Context, tx pgx.Tx, auctionID uuid.UUID) (Settlement, error)
	Save(ctx context.Context, tx pgx.Tx, s Settlement) error
}

type TransactionRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]Transaction, error)
}

// BidderDirectory resolves the display name of a bidder, "" when unknown
type BidderDirectory interface {
	DisplayName(ctx context.Context, userID uuid.UUID) (string, error)
}
