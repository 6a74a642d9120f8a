package application

import (
	"context"
	"fmt"
	"time"

	"github.com/cristianortiz/auctionDashboard/internal/dashboard/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const anonymousBidder = "Anonymous"

// LeaderDTO describes the current highest bid of an auction
type LeaderDTO struct {
	BidID      uuid.UUID `json:"bid_id"`
	Amount     int64     `json:"amount"`
	BidderName string    `json:"bidder_name"`
	IsYourBid  bool      `json:"is_your_bid"`
	Timestamp  time.Time `json:"timestamp"`
}

// ViewerStandingDTO describes where the viewer stands in an auction
type ViewerStandingDTO struct {
	HasBids       bool       `json:"has_bids"`
	IsLeading     bool       `json:"is_leading"`
	Position      int        `json:"position,omitempty"`
	BidCount      int        `json:"bid_count"`
	HighestAmount int64      `json:"highest_amount,omitempty"`
	LatestBidAt   *time.Time `json:"latest_bid_at,omitempty"`
}

// AuctionStandingDTO is the output DTO for the leader/standing panel of an auction
type AuctionStandingDTO struct {
	AuctionID uuid.UUID         `json:"auction_id"`
	HasBids   bool              `json:"has_bids"`
	TotalBids int               `json:"total_bids"`
	Leader    *LeaderDTO        `json:"leader,omitempty"`
	Viewer    ViewerStandingDTO `json:"viewer"`
}

// GetAuctionStandingUseCase ranks the bids of one auction and reports the leader and the viewer's standing
type GetAuctionStandingUseCase struct {
	bidRepo   domain.BidRepository
	directory domain.BidderDirectory
}

// NewGetAuctionStandingUseCase creates a new instance of GetAuctionStandingUseCase.
func NewGetAuctionStandingUseCase(bidRepo domain.BidRepository, directory domain.BidderDirectory) *GetAuctionStandingUseCase {
	return &GetAuctionStandingUseCase{
		bidRepo:   bidRepo,
		directory: directory,
	}
}

func (uc *GetAuctionStandingUseCase) Execute(ctx context.Context, viewer domain.Viewer, auctionID uuid.UUID) (*AuctionStandingDTO, error) {
	bids, err := uc.bidRepo.GetBidsByAuctionIDs(ctx, []uuid.UUID{auctionID})
	if err != nil {
		log.Error("GetAuctionStandingUseCase: Failed to get auction bids",
			zap.String("auctionID", auctionID.String()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("get auction standing use case: failed to get bids of auction %s: %w", auctionID, err)
	}

	ranked := domain.Rank(bids)
	dto := &AuctionStandingDTO{
		AuctionID: auctionID,
		TotalBids: len(ranked),
	}

	if len(ranked) == 0 {
		return dto, nil
	}
	dto.HasBids = true

	leader, hasLeader := ranked.Leader()
	if hasLeader {
		dto.Leader = &LeaderDTO{
			BidID:      leader.ID,
			Amount:     leader.Amount,
			BidderName: uc.bidderName(ctx, leader),
			IsYourBid:  viewer.Owns(leader),
			Timestamp:  leader.Timestamp,
		}
	}

	position, ok := ranked.StandingOf(viewer)
	if !ok {
		return dto, nil
	}
	dto.Viewer = ViewerStandingDTO{
		HasBids:   true,
		IsLeading: hasLeader && viewer.Owns(leader),
		Position:  position,
	}
	for _, b := range ranked {
		if !viewer.Owns(b) {
			continue
		}
		dto.Viewer.BidCount++
		dto.Viewer.HighestAmount = max(dto.Viewer.HighestAmount, b.Amount)
		if dto.Viewer.LatestBidAt == nil || b.Timestamp.After(*dto.Viewer.LatestBidAt) {
			ts := b.Timestamp
			dto.Viewer.LatestBidAt = &ts
		}
	}

	return dto, nil
}

// bidderName never fails the standing: a lookup error degrades to the anonymous label
func (uc *GetAuctionStandingUseCase) bidderName(ctx context.Context, bid domain.Bid) string {
	if bid.BidderName != "" {
		return bid.BidderName
	}
	name, err := uc.directory.DisplayName(ctx, bid.BidderID)
	if err != nil {
		log.Warn("GetAuctionStandingUseCase: Failed to resolve bidder name",
			zap.String("bidderID", bid.BidderID.String()),
			zap.Error(err),
		)
		return anonymousBidder
	}
	if name == "" {
		return anonymousBidder
	}
	return name
}
