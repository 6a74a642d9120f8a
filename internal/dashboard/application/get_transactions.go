package application

import (
	"context"
	"fmt"
	"time"

	"github.com/cristianortiz/auctionDashboard/internal/dashboard/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TransactionView is one row of the bank transactions page
type TransactionView struct {
	ID        uuid.UUID    `json:"id"`
	Type      string       `json:"type"`
	Amount    int64        `json:"amount"`
	BankCode  string       `json:"bank_code,omitempty"`
	Status    domain.Badge `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	AuctionID *uuid.UUID   `json:"auction_id,omitempty"`
	PaymentID *uuid.UUID   `json:"payment_id,omitempty"`
}

// TransactionsDTO is the output DTO of the bank transactions page
type TransactionsDTO struct {
	Items      []TransactionView       `json:"items"`
	Stats      domain.TransactionStats `json:"stats"`
	Pagination domain.Window           `json:"pagination"`
}

// GetTransactionsUseCase lists the viewer's deposits and payments with their aggregate stats
type GetTransactionsUseCase struct {
	txRepo domain.TransactionRepository
}

// NewGetTransactionsUseCase creates a new instance of GetTransactionsUseCase.
func NewGetTransactionsUseCase(txRepo domain.TransactionRepository) *GetTransactionsUseCase {
	return &GetTransactionsUseCase{txRepo: txRepo}
}

func (uc *GetTransactionsUseCase) Execute(ctx context.Context, viewer domain.Viewer, q PageQuery) (*TransactionsDTO, error) {
	log.Info("Executing GetTransactionsUseCase",
		zap.String("userID", viewer.UserID.String()),
		zap.String("type", q.Criteria.Type),
		zap.String("status", q.Criteria.Status),
		zap.Int("page", q.Page),
	)
	txs, err := uc.txRepo.GetByUserID(ctx, viewer.UserID)
	if err != nil {
		log.Error("GetTransactionsUseCase: Failed to get transactions",
			zap.String("userID", viewer.UserID.String()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("get transactions use case: failed to get transactions of user %s: %w", viewer.UserID, err)
	}

	filtered, err := domain.Apply(txs, q.Criteria)
	if err != nil {
		log.Warn("GetTransactionsUseCase: Invalid filter", zap.String("userID", viewer.UserID.String()), zap.Error(err))
		return nil, fmt.Errorf("get transactions use case: %w", err)
	}

	window, err := domain.Paginate(len(filtered), q.PageSize, q.Page)
	if err != nil {
		return nil, fmt.Errorf("get transactions use case: %w", err)
	}

	page := domain.PageOf(filtered, window)
	items := make([]TransactionView, 0, len(page))
	for _, tx := range page {
		items = append(items, TransactionView{
			ID:        tx.ID,
			Type:      string(tx.Type),
			Amount:    tx.Amount,
			BankCode:  tx.BankCode,
			Status:    domain.Classify(string(tx.Status), domain.StatusDomainTransaction),
			CreatedAt: tx.CreatedAt,
			AuctionID: tx.AuctionID,
			PaymentID: tx.PaymentID,
		})
	}

	return &TransactionsDTO{
		Items:      items,
		Stats:      domain.SummarizeTransactions(filtered),
		Pagination: window,
	}, nil
}
