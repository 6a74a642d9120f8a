package application

import (
	"context"
	"fmt"
	"time"

	"github.com/cristianortiz/auctionDashboard/internal/dashboard/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// WonAuctionView is one row of the won auctions page
type WonAuctionView struct {
	AuctionID      uuid.UUID    `json:"auction_id"`
	AuctionName    string       `json:"auction_name"`
	BidID          uuid.UUID    `json:"bid_id"`
	WinningAmount  int64        `json:"winning_amount"`
	EndTime        time.Time    `json:"end_time"`
	PaymentStatus  domain.Badge `json:"payment_status"`
	DeliveryStatus domain.Badge `json:"delivery_status"`
	Inconsistent   bool         `json:"inconsistent,omitempty"`
}

// WonAuctionsDTO is the output DTO of the won auctions page
type WonAuctionsDTO struct {
	Items      []WonAuctionView       `json:"items"`
	Stats      domain.WonAuctionStats `json:"stats"`
	Pagination domain.Window          `json:"pagination"`
}

// GetWonAuctionsUseCase projects the viewer's won bids onto their settlements
type GetWonAuctionsUseCase struct {
	bidRepo        domain.BidRepository
	settlementRepo domain.SettlementRepository
}

// NewGetWonAuctionsUseCase creates a new instance of GetWonAuctionsUseCase.
func NewGetWonAuctionsUseCase(bidRepo domain.BidRepository, settlementRepo domain.SettlementRepository) *GetWonAuctionsUseCase {
	return &GetWonAuctionsUseCase{
		bidRepo:        bidRepo,
		settlementRepo: settlementRepo,
	}
}

func (uc *GetWonAuctionsUseCase) Execute(ctx context.Context, viewer domain.Viewer, q PageQuery) (*WonAuctionsDTO, error) {
	log.Info("Executing GetWonAuctionsUseCase",
		zap.String("userID", viewer.UserID.String()),
		zap.Int("page", q.Page),
	)
	// reject bad criteria before touching the database
	if err := q.Criteria.Validate(); err != nil {
		log.Warn("GetWonAuctionsUseCase: Invalid filter", zap.String("userID", viewer.UserID.String()), zap.Error(err))
		return nil, fmt.Errorf("get won auctions use case: %w", err)
	}

	bids, err := uc.bidRepo.GetBidsByUserID(ctx, viewer.UserID)
	if err != nil {
		log.Error("GetWonAuctionsUseCase: Failed to get user bids",
			zap.String("userID", viewer.UserID.String()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("get won auctions use case: failed to get bids of user %s: %w", viewer.UserID, err)
	}

	wonBids := make([]domain.Bid, 0)
	for _, b := range bids {
		if b.Status == domain.BidStatusWon {
			wonBids = append(wonBids, b)
		}
	}

	var settlements []domain.Settlement
	if len(wonBids) > 0 {
		auctionIDs := distinctAuctionIDs(wonBids, func(b domain.Bid) uuid.UUID { return b.AuctionID })
		settlements, err = uc.settlementRepo.GetByAuctionIDs(ctx, auctionIDs)
		if err != nil {
			log.Error("GetWonAuctionsUseCase: Failed to get settlements",
				zap.String("userID", viewer.UserID.String()),
				zap.Error(err),
			)
			return nil, fmt.Errorf("get won auctions use case: failed to get settlements: %w", err)
		}
	}

	won := domain.ProjectWonAuctions(wonBids, settlements)
	for _, w := range won {
		if w.Inconsistent {
			log.Warn("GetWonAuctionsUseCase: Settlement delivered before payment completed",
				zap.String("auctionID", w.AuctionID.String()),
				zap.String("paymentStatus", string(w.PaymentStatus)),
				zap.String("deliveryStatus", string(w.DeliveryStatus)),
			)
		}
	}

	filtered, err := domain.Apply(won, q.Criteria)
	if err != nil {
		return nil, fmt.Errorf("get won auctions use case: %w", err)
	}

	window, err := domain.Paginate(len(filtered), q.PageSize, q.Page)
	if err != nil {
		return nil, fmt.Errorf("get won auctions use case: %w", err)
	}

	page := domain.PageOf(filtered, window)
	items := make([]WonAuctionView, 0, len(page))
	for _, w := range page {
		items = append(items, WonAuctionView{
			AuctionID:      w.AuctionID,
			AuctionName:    w.AuctionName,
			BidID:          w.BidID,
			WinningAmount:  w.WinningAmount,
			EndTime:        w.EndTime,
			PaymentStatus:  domain.Classify(string(w.PaymentStatus), domain.StatusDomainPayment),
			DeliveryStatus: domain.Classify(string(w.DeliveryStatus), domain.StatusDomainDelivery),
			Inconsistent:   w.Inconsistent,
		})
	}

	return &WonAuctionsDTO{
		Items:      items,
		Stats:      domain.SummarizeWonAuctions(filtered),
		Pagination: window,
	}, nil
}
