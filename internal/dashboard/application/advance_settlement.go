package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/cristianortiz/auctionDashboard/internal/dashboard/domain"
	"github.com/cristianortiz/auctionDashboard/internal/shared/logger"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var log = logger.GetLogger()

var errNothingToAdvance = errors.New("payment_status or delivery_status is required")

// TxBeginner is satisfied by *pgxpool.Pool
type TxBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// AdvanceSettlementDTO is the input DTO of the AdvanceSettlement use case.
// Empty fields leave that side of the settlement untouched.
type AdvanceSettlementDTO struct {
	AuctionID      uuid.UUID
	PaymentStatus  string
	DeliveryStatus string
}

// AdvanceSettlementUseCase moves a settlement one step forward on its payment and/or delivery machine
type AdvanceSettlementUseCase struct {
	settlementRepo domain.SettlementRepository
	db             TxBeginner
}

// NewAdvanceSettlementUseCase creates a new instance of AdvanceSettlementUseCase.
func NewAdvanceSettlementUseCase(settlementRepo domain.SettlementRepository, db TxBeginner) *AdvanceSettlementUseCase {
	return &AdvanceSettlementUseCase{
		settlementRepo: settlementRepo,
		db:             db,
	}
}

func (uc *AdvanceSettlementUseCase) Execute(ctx context.Context, cmd AdvanceSettlementDTO) (result *domain.Settlement, err error) {
	log.Info("Executing AdvanceSettlementUseCase",
		zap.String("auctionID", cmd.AuctionID.String()),
		zap.String("paymentStatus", cmd.PaymentStatus),
		zap.String("deliveryStatus", cmd.DeliveryStatus),
	)

	// 1. validates input before opening a transaction
	if cmd.PaymentStatus == "" && cmd.DeliveryStatus == "" {
		return nil, domain.NewValidationError("settlement update", errNothingToAdvance)
	}
	var payment domain.PaymentStatus
	if cmd.PaymentStatus != "" {
		if payment, err = domain.ParsePaymentStatus(cmd.PaymentStatus); err != nil {
			return nil, domain.NewValidationError("payment_status", err)
		}
	}
	var delivery domain.DeliveryStatus
	if cmd.DeliveryStatus != "" {
		if delivery, err = domain.ParseDeliveryStatus(cmd.DeliveryStatus); err != nil {
			return nil, domain.NewValidationError("delivery_status", err)
		}
	}

	// 2. the settlement row is locked for the whole read-modify-write
	tx, err := uc.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		log.Error("AdvanceSettlementUseCase: Failed to begin transaction",
			zap.String("auctionID", cmd.AuctionID.String()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("advance settlement use case: failed to begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error("AdvanceSettlementUseCase: Recovered from panic during transaction",
				zap.String("auctionID", cmd.AuctionID.String()),
				zap.Any("panic", r),
			)
			_ = tx.Rollback(ctx)
			panic(r)
		}
		if err != nil {
			log.Warn("AdvanceSettlementUseCase: Rolling back transaction due to error",
				zap.String("auctionID", cmd.AuctionID.String()),
				zap.Error(err),
			)
			_ = tx.Rollback(ctx)
			return
		}
		if commitErr := tx.Commit(ctx); commitErr != nil {
			log.Error("AdvanceSettlementUseCase: Failed to commit transaction",
				zap.String("auctionID", cmd.AuctionID.String()),
				zap.Error(commitErr),
			)
			result = nil
			err = fmt.Errorf("advance settlement use case: failed to commit transaction: %w", commitErr)
			return
		}
		log.Info("AdvanceSettlementUseCase: Transaction committed successfully",
			zap.String("auctionID", cmd.AuctionID.String()))
	}()

	// 3. load the settlement inside the tx
	settlement, err := uc.settlementRepo.GetByAuctionIDForUpdate(ctx, tx, cmd.AuctionID)
	if err != nil {
		if !errors.Is(err, domain.ErrSettlementNotFound) {
			log.Error("AdvanceSettlementUseCase: Failed to get settlement",
				zap.String("auctionID", cmd.AuctionID.String()),
				zap.Error(err),
			)
		}
		return nil, fmt.Errorf("advance settlement use case: failed to get settlement %s: %w", cmd.AuctionID, err)
	}

	// 4. payment first so a single request can complete payment and deliver
	if payment != "" {
		if settlement, err = settlement.AdvancePayment(payment); err != nil {
			return nil, fmt.Errorf("advance settlement use case: %w", err)
		}
	}
	if delivery != "" {
		if settlement, err = settlement.AdvanceDelivery(delivery); err != nil {
			return nil, fmt.Errorf("advance settlement use case: %w", err)
		}
	}

	// 5. persist inside the tx, the deferred func commits
	if err = uc.settlementRepo.Save(ctx, tx, settlement); err != nil {
		log.Error("AdvanceSettlementUseCase: Failed to save settlement",
			zap.String("auctionID", cmd.AuctionID.String()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("advance settlement use case: failed to save settlement %s: %w", cmd.AuctionID, err)
	}

	return &settlement, nil
}
