package postgres

import (
	"context"

	"github.com/cristianortiz/auctionDashboard/internal/dashboard/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TransactionRepository implements domain.TransactionRepository interface
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new instance of TransactionRepository
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// GetByUserID returns the user's bank transactions, newest first
func (r *TransactionRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error) {
	query := `
        SELECT id, user_id, type, amount, COALESCE(bank_code, ''), status, created_at, auction_id, payment_id
        FROM bank_transactions
        WHERE user_id = $1
        ORDER BY created_at DESC, id
    `
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	txs := make([]domain.Transaction, 0)
	for rows.Next() {
		var (
			tx        domain.Transaction
			txType    string
			status    string
			auctionID *uuid.UUID // pointer to handle NULL
			paymentID *uuid.UUID
		)
		err := rows.Scan(
			&tx.ID,
			&tx.UserID,
			&txType,
			&tx.Amount,
			&tx.BankCode,
			&status,
			&tx.CreatedAt,
			&auctionID,
			&paymentID,
		)
		if err != nil {
			return nil, err
		}
		tx.Type = domain.TransactionType(txType)
		tx.Status = domain.TransactionStatus(status)
		tx.AuctionID = auctionID
		tx.PaymentID = paymentID
		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return txs, nil
}
