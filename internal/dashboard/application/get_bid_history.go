package application

import (
	"context"
	"fmt"
	"time"

	"github.com/cristianortiz/auctionDashboard/internal/dashboard/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BidView is one row of the bid history
type BidView struct {
	BidID     uuid.UUID    `json:"bid_id"`
	AuctionID uuid.UUID    `json:"auction_id"`
	Amount    int64        `json:"amount"`
	Timestamp time.Time    `json:"timestamp"`
	Status    string       `json:"status"`
	Badge     domain.Badge `json:"badge"`
	IsHighest bool         `json:"is_highest"`
}

// BidHistoryDTO is the output DTO of the bid history page
type BidHistoryDTO struct {
	Items      []BidView       `json:"items"`
	Stats      domain.BidStats `json:"stats"`
	Pagination domain.Window   `json:"pagination"`
}

// GetBidHistoryUseCase lists the viewer's bids, flagging the ones currently leading their auction
type GetBidHistoryUseCase struct {
	bidRepo domain.BidRepository
}

// NewGetBidHistoryUseCase creates a new instance of GetBidHistoryUseCase.
func NewGetBidHistoryUseCase(bidRepo domain.BidRepository) *GetBidHistoryUseCase {
	return &GetBidHistoryUseCase{bidRepo: bidRepo}
}

func (uc *GetBidHistoryUseCase) Execute(ctx context.Context, viewer domain.Viewer, q PageQuery) (*BidHistoryDTO, error) {
	log.Info("Executing GetBidHistoryUseCase",
		zap.String("userID", viewer.UserID.String()),
		zap.Int("page", q.Page),
	)
	bids, err := uc.bidRepo.GetBidsByUserID(ctx, viewer.UserID)
	if err != nil {
		log.Error("GetBidHistoryUseCase: Failed to get user bids",
			zap.String("userID", viewer.UserID.String()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("get bid history use case: failed to get bids of user %s: %w", viewer.UserID, err)
	}

	filtered, err := domain.Apply(bids, q.Criteria)
	if err != nil {
		log.Warn("GetBidHistoryUseCase: Invalid filter", zap.String("userID", viewer.UserID.String()), zap.Error(err))
		return nil, fmt.Errorf("get bid history use case: %w", err)
	}

	window, err := domain.Paginate(len(filtered), q.PageSize, q.Page)
	if err != nil {
		return nil, fmt.Errorf("get bid history use case: %w", err)
	}
	page := domain.PageOf(filtered, window)

	// only the visible rows need the full auction ranking
	ranked := map[uuid.UUID]domain.RankedBids{}
	if len(page) > 0 {
		auctionIDs := distinctAuctionIDs(page, func(b domain.Bid) uuid.UUID { return b.AuctionID })
		auctionBids, err := uc.bidRepo.GetBidsByAuctionIDs(ctx, auctionIDs)
		if err != nil {
			log.Error("GetBidHistoryUseCase: Failed to get auction bids",
				zap.String("userID", viewer.UserID.String()),
				zap.Int("auctions", len(auctionIDs)),
				zap.Error(err),
			)
			return nil, fmt.Errorf("get bid history use case: failed to get auction bids: %w", err)
		}
		ranked = domain.RankByAuction(auctionBids)
	}

	items := make([]BidView, 0, len(page))
	for _, b := range page {
		items = append(items, BidView{
			BidID:     b.ID,
			AuctionID: b.AuctionID,
			Amount:    b.Amount,
			Timestamp: b.Timestamp,
			Status:    string(b.Status),
			Badge:     domain.Classify(string(b.Status), domain.StatusDomainBid),
			IsHighest: ranked[b.AuctionID].IsHighest(b),
		})
	}

	return &BidHistoryDTO{
		Items:      items,
		Stats:      domain.SummarizeBids(filtered),
		Pagination: window,
	}, nil
}
