package postgres

import (
	"context"
	"errors"

	"github.com/cristianortiz/auctionDashboard/internal/dashboard/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SettlementRepository implements domain.SettlementRepository interface
type SettlementRepository struct {
	pool *pgxpool.Pool
}

// NewSettlementRepository creates a new instance of SettlementRepository
func NewSettlementRepository(pool *pgxpool.Pool) *SettlementRepository {
	return &SettlementRepository{pool: pool}
}

// GetByAuctionIDs loads the settlements of the given auctions joined with the auction name and end time.
// Auctions without a settlement row are simply absent from the result.
func (r *SettlementRepository) GetByAuctionIDs(ctx context.Context, auctionIDs []uuid.UUID) ([]domain.Settlement, error) {
	if len(auctionIDs) == 0 {
		return []domain.Settlement{}, nil
	}
	query := `
        SELECT s.auction_id, a.name, a.end_time, s.payment_status, s.delivery_status, s.updated_at
        FROM settlements s
        JOIN auctions a ON a.id = s.auction_id
        WHERE s.auction_id = ANY($1)
    `
	rows, err := r.pool.Query(ctx, query, auctionIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	settlements := make([]domain.Settlement, 0, len(auctionIDs))
	for rows.Next() {
		s, err := scanSettlement(rows)
		if err != nil {
			return nil, err
		}
		settlements = append(settlements, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return settlements, nil
}

// GetByAuctionIDForUpdate loads one settlement and locks its row until tx ends
func (r *SettlementRepository) GetByAuctionIDForUpdate(ctx context.Context, tx pgx.Tx, auctionID uuid.UUID) (domain.Settlement, error) {
	query := `
        SELECT s.auction_id, a.name, a.end_time, s.payment_status, s.delivery_status, s.updated_at
        FROM settlements s
        JOIN auctions a ON a.id = s.auction_id
        WHERE s.auction_id = $1
        FOR UPDATE OF s
    `
	s, err := scanSettlement(tx.QueryRow(ctx, query, auctionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Settlement{}, domain.ErrSettlementNotFound
		}
		return domain.Settlement{}, err
	}
	return s, nil
}

// Save writes both statuses back, updated_at is set by the database
func (r *SettlementRepository) Save(ctx context.Context, tx pgx.Tx, s domain.Settlement) error {
	query := `
        INSERT INTO settlements (auction_id, payment_status, delivery_status)
        VALUES ($1, $2, $3)
        ON CONFLICT (auction_id) DO UPDATE
        SET
            payment_status = EXCLUDED.payment_status,
            delivery_status = EXCLUDED.delivery_status,
            updated_at = NOW();
    `
	_, err := tx.Exec(ctx, query,
		s.AuctionID,
		string(s.PaymentStatus),
		string(s.DeliveryStatus),
	)
	return err
}

func scanSettlement(row pgx.Row) (domain.Settlement, error) {
	var (
		s                 domain.Settlement
		payment, delivery string
	)
	err := row.Scan(
		&s.AuctionID,
		&s.AuctionName,
		&s.EndTime,
		&payment,
		&delivery,
		&s.UpdatedAt,
	)
	if err != nil {
		return domain.Settlement{}, err
	}
	s.PaymentStatus = domain.PaymentStatus(payment)
	s.DeliveryStatus = domain.DeliveryStatus(delivery)
	return s, nil
}
