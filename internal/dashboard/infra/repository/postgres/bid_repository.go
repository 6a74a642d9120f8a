package postgres

import (
	"context"

	"github.com/cristianortiz/auctionDashboard/internal/dashboard/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BidRepository implements domain.BidRepository interface
type BidRepository struct {
	pool *pgxpool.Pool
}

// NewBidRepository creates new instance of BidRepository.
func NewBidRepository(pool *pgxpool.Pool) *BidRepository {
	return &BidRepository{pool: pool}
}

const bidColumns = `id, auction_id, user_id, amount, timestamp, status`

// GetBidsByUserID returns the user's bids, newest first
func (r *BidRepository) GetBidsByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Bid, error) {
	query := `
        SELECT ` + bidColumns + `
        FROM bids
        WHERE user_id = $1
        ORDER BY timestamp DESC, id
    `
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return collectBids(rows)
}

// GetBidsByAuctionIDs returns every bid of the given auctions, ranking is left to the domain
func (r *BidRepository) GetBidsByAuctionIDs(ctx context.Context, auctionIDs []uuid.UUID) ([]domain.Bid, error) {
	if len(auctionIDs) == 0 {
		return []domain.Bid{}, nil
	}
	query := `
        SELECT ` + bidColumns + `
        FROM bids
        WHERE auction_id = ANY($1)
        ORDER BY timestamp ASC
    `
	rows, err := r.pool.Query(ctx, query, auctionIDs)
	if err != nil {
		return nil, err
	}
	return collectBids(rows)
}

func collectBids(rows pgx.Rows) ([]domain.Bid, error) {
	defer rows.Close()

	bids := make([]domain.Bid, 0)
	for rows.Next() {
		var (
			bid    domain.Bid
			status string
		)
		err := rows.Scan(
			&bid.ID,
			&bid.AuctionID,
			&bid.BidderID,
			&bid.Amount,
			&bid.Timestamp,
			&status,
		)
		if err != nil {
			return nil, err
		}
		bid.Status = domain.BidStatus(status)
		bids = append(bids, bid)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bids, nil
}
