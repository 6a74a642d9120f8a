package rest

import (
	"time"

	"github.com/cristianortiz/auctionDashboard/internal/dashboard/domain"
	"github.com/google/uuid"
)

// ErrorResponse is the body of every non 2xx response
type ErrorResponse struct {
	Error string `json:"error"`
}

// AdvanceSettlementRequest is the body of PATCH /settlements/:auctionID
type AdvanceSettlementRequest struct {
	PaymentStatus  string `json:"payment_status"`
	DeliveryStatus string `json:"delivery_status"`
}

// SettlementResponse is the settlement after a successful transition
type SettlementResponse struct {
	AuctionID      uuid.UUID    `json:"auction_id"`
	AuctionName    string       `json:"auction_name"`
	EndTime        time.Time    `json:"end_time"`
	PaymentStatus  domain.Badge `json:"payment_status"`
	DeliveryStatus domain.Badge `json:"delivery_status"`
}

func newSettlementResponse(s *domain.Settlement) SettlementResponse {
	return SettlementResponse{
		AuctionID:      s.AuctionID,
		AuctionName:    s.AuctionName,
		EndTime:        s.EndTime,
		PaymentStatus:  domain.Classify(string(s.PaymentStatus), domain.StatusDomainPayment),
		DeliveryStatus: domain.Classify(string(s.DeliveryStatus), domain.StatusDomainDelivery),
	}
}
