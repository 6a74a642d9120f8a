package domain

// TransactionStats aggregates a transaction set along two independent groupings,
// by type and by status. Every record lands in exactly one bucket of each.
type TransactionStats struct {
	Total         int                         `json:"total"`
	TotalAmount   int64                       `json:"total_amount"`
	CountByStatus map[TransactionStatus]int   `json:"count_by_status"`
	SumByStatus   map[TransactionStatus]int64 `json:"sum_by_status"`
	SumByType     map[TransactionType]int64   `json:"sum_by_type"`
}

// SummarizeTransactions folds txs in a single pass. The result does not depend on order.
func SummarizeTransactions(txs []Transaction) TransactionStats {
	stats := TransactionStats{
		CountByStatus: map[TransactionStatus]int{
			TransactionStatusPending:   0,
			TransactionStatusCompleted: 0,
			TransactionStatusFailed:    0,
			TransactionStatusCancelled: 0,
		},
		SumByStatus: map[TransactionStatus]int64{
			TransactionStatusPending:   0,
			TransactionStatusCompleted: 0,
			TransactionStatusFailed:    0,
			TransactionStatusCancelled: 0,
		},
		SumByType: map[TransactionType]int64{
			TransactionTypeDeposit: 0,
			TransactionTypePayment: 0,
		},
	}
	for _, tx := range txs {
		stats.Total++
		stats.TotalAmount += tx.Amount
		stats.CountByStatus[tx.Status]++
		stats.SumByStatus[tx.Status] += tx.Amount
		stats.SumByType[tx.Type] += tx.Amount
	}
	return stats
}

// WonAuctionStats counts won auctions by payment and by delivery status
type WonAuctionStats struct {
	Total              int                    `json:"total"`
	TotalWinningAmount int64                  `json:"total_winning_amount"`
	ByPayment          map[PaymentStatus]int  `json:"by_payment"`
	ByDelivery         map[DeliveryStatus]int `json:"by_delivery"`
}

// SummarizeWonAuctions folds won in a single pass
func SummarizeWonAuctions(won []WonAuction) WonAuctionStats {
	stats := WonAuctionStats{
		ByPayment:  make(map[PaymentStatus]int, len(paymentFlow)),
		ByDelivery: make(map[DeliveryStatus]int, len(deliveryFlow)),
	}
	for _, s := range paymentFlow {
		stats.ByPayment[s] = 0
	}
	for _, s := range deliveryFlow {
		stats.ByDelivery[s] = 0
	}
	for _, w := range won {
		stats.Total++
		stats.TotalWinningAmount += w.WinningAmount
		stats.ByPayment[w.PaymentStatus]++
		stats.ByDelivery[w.DeliveryStatus]++
	}
	return stats
}

// BidStats counts bids by lifecycle status
type BidStats struct {
	Total         int               `json:"total"`
	CountByStatus map[BidStatus]int `json:"count_by_status"`
}

// SummarizeBids counts bids per status, every status present even at zero
func SummarizeBids(bids []Bid) BidStats {
	stats := BidStats{
		CountByStatus: map[BidStatus]int{
			BidStatusActive: 0,
			BidStatusOutbid: 0,
			BidStatusWon:    0,
			BidStatusLost:   0,
		},
	}
	for _, b := range bids {
		stats.Total++
		stats.CountByStatus[b.Status]++
	}
	return stats
}
