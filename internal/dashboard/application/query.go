package application

import (
	"github.com/cristianortiz/auctionDashboard/internal/dashboard/domain"
	"github.com/google/uuid"
)

// PageQuery is the input shared by the list use cases
type PageQuery struct {
	Criteria domain.FilterCriteria
	Page     int
	PageSize int
}

// distinctAuctionIDs keeps first occurrence order
func distinctAuctionIDs[T any](items []T, auctionOf func(T) uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(items))
	ids := make([]uuid.UUID, 0, len(items))
	for _, it := range items {
		id := auctionOf(it)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
