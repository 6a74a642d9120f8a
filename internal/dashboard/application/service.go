package application

import (
	"context"

	"github.com/cristianortiz/auctionDashboard/internal/dashboard/domain"
	"github.com/google/uuid"
)

// DashboardService defines application interface layer of the dashboard module
// exposes uses cases to external layer, aka infra
type DashboardService interface {
	GetBidHistory(ctx context.Context, viewer domain.Viewer, q PageQuery) (*BidHistoryDTO, error)
	GetWonAuctions(ctx context.Context, viewer domain.Viewer, q PageQuery) (*WonAuctionsDTO, error)
	GetTransactions(ctx context.Context, viewer domain.Viewer, q PageQuery) (*TransactionsDTO, error)
	GetAuctionStanding(ctx context.Context, viewer domain.Viewer, auctionID uuid.UUID) (*AuctionStandingDTO, error)
	// AdvanceSettlement moves a won auction settlement forward, rejecting invalid transitions
	AdvanceSettlement(ctx context.Context, cmd AdvanceSettlementDTO) (*domain.Settlement, error)
}

// concret implementation of DashboardService (struct)
type dashboardService struct {
	bidHistoryUC        *GetBidHistoryUseCase
	wonAuctionsUC       *GetWonAuctionsUseCase
	transactionsUC      *GetTransactionsUseCase
	auctionStandingUC   *GetAuctionStandingUseCase
	advanceSettlementUC *AdvanceSettlementUseCase
}

func NewDashboardService(
	bidHistoryUC *GetBidHistoryUseCase,
	wonAuctionsUC *GetWonAuctionsUseCase,
	transactionsUC *GetTransactionsUseCase,
	auctionStandingUC *GetAuctionStandingUseCase,
	advanceSettlementUC *AdvanceSettlementUseCase,
) DashboardService {
	return &dashboardService{
		bidHistoryUC:        bidHistoryUC,
		wonAuctionsUC:       wonAuctionsUC,
		transactionsUC:      transactionsUC,
		auctionStandingUC:   auctionStandingUC,
		advanceSettlementUC: advanceSettlementUC,
	}
}

func (s *dashboardService) GetBidHistory(ctx context.Context, viewer domain.Viewer, q PageQuery) (*BidHistoryDTO, error) {
	return s.bidHistoryUC.Execute(ctx, viewer, q)
}

func (s *dashboardService) GetWonAuctions(ctx context.Context, viewer domain.Viewer, q PageQuery) (*WonAuctionsDTO, error) {
	return s.wonAuctionsUC.Execute(ctx, viewer, q)
}

func (s *dashboardService) GetTransactions(ctx context.Context, viewer domain.Viewer, q PageQuery) (*TransactionsDTO, error) {
	return s.transactionsUC.Execute(ctx, viewer, q)
}

func (s *dashboardService) GetAuctionStanding(ctx context.Context, viewer domain.Viewer, auctionID uuid.UUID) (*AuctionStandingDTO, error) {
	return s.auctionStandingUC.Execute(ctx, viewer, auctionID)
}

func (s *dashboardService) AdvanceSettlement(ctx context.Context, cmd AdvanceSettlementDTO) (*domain.Settlement, error) {
	return s.advanceSettlementUC.Execute(ctx, cmd)
}
