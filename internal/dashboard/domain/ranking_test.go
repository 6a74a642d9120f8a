package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idOf(n int) uuid.UUID {
	return uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", n))
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 3, 14, hour, minute, 0, 0, time.UTC)
}

func bidIDs(bids []Bid) []uuid.UUID {
	ids := make([]uuid.UUID, len(bids))
	for i, b := range bids {
		ids[i] = b.ID
	}
	return ids
}

func TestRank_TieBrokenByEarlierTimestamp(t *testing.T) {
	auction := idOf(7)
	bids := []Bid{
		NewBid(idOf(1), auction, idOf(101), 100, at(10, 0), BidStatusOutbid),
		NewBid(idOf(2), auction, idOf(102), 150, at(10, 5), BidStatusActive),
		NewBid(idOf(3), auction, idOf(103), 150, at(10, 2), BidStatusActive),
	}

	ranked := Rank(bids)

	assert.Equal(t, []uuid.UUID{idOf(3), idOf(2), idOf(1)}, bidIDs(ranked))
	leader, ok := ranked.Leader()
	require.True(t, ok)
	assert.Equal(t, idOf(3), leader.ID)
	assert.True(t, ranked.IsHighest(bids[2]))
	assert.False(t, ranked.IsHighest(bids[1]))

	// input untouched
	assert.Equal(t, []uuid.UUID{idOf(1), idOf(2), idOf(3)}, bidIDs(bids))
}

func TestRank_IDIsFinalTieBreak(t *testing.T) {
	auction := idOf(7)
	bids := []Bid{
		NewBid(idOf(9), auction, idOf(101), 200, at(9, 0), BidStatusActive),
		NewBid(idOf(4), auction, idOf(102), 200, at(9, 0), BidStatusActive),
		NewBid(idOf(6), auction, idOf(103), 200, at(9, 0), BidStatusActive),
	}

	assert.Equal(t, []uuid.UUID{idOf(4), idOf(6), idOf(9)}, bidIDs(Rank(bids)))
}

func TestRank_Idempotent(t *testing.T) {
	auction := idOf(1)
	bids := []Bid{
		NewBid(idOf(1), auction, idOf(101), 10, at(8, 0), BidStatusOutbid),
		NewBid(idOf(2), auction, idOf(102), 30, at(8, 1), BidStatusOutbid),
		NewBid(idOf(3), auction, idOf(101), 20, at(8, 2), BidStatusOutbid),
		NewBid(idOf(4), auction, idOf(103), 30, at(8, 0), BidStatusActive),
	}

	once := Rank(bids)
	twice := Rank(once)

	assert.Equal(t, once, twice)
	for i := 1; i < len(once); i++ {
		assert.Negative(t, compareBids(once[i-1], once[i]))
	}
}

func TestLeader_SkipsOutbidAndLostBids(t *testing.T) {
	auction := idOf(7)
	won := NewBid(idOf(1), auction, idOf(101), 150, at(10, 0), BidStatusWon)
	ranked := Rank([]Bid{
		won,
		NewBid(idOf(2), auction, idOf(102), 200, at(9, 0), BidStatusLost),
		NewBid(idOf(3), auction, idOf(103), 180, at(9, 30), BidStatusOutbid),
	})

	// full order still by amount
	assert.Equal(t, []uuid.UUID{idOf(2), idOf(3), idOf(1)}, bidIDs(ranked))

	leader, ok := ranked.Leader()
	require.True(t, ok)
	assert.Equal(t, idOf(1), leader.ID)
	assert.True(t, ranked.IsHighest(won))
	assert.False(t, ranked.IsHighest(ranked[0]))
}

func TestLeader_NoEligibleBid(t *testing.T) {
	ranked := Rank([]Bid{
		NewBid(idOf(1), idOf(7), idOf(101), 150, at(10, 0), BidStatusLost),
	})

	_, ok := ranked.Leader()
	assert.False(t, ok)
	assert.False(t, ranked.IsHighest(ranked[0]))
}

func TestRank_Empty(t *testing.T) {
	ranked := Rank(nil)

	assert.Empty(t, ranked)
	_, ok := ranked.Leader()
	assert.False(t, ok)
	assert.False(t, ranked.IsHighest(Bid{ID: idOf(1)}))
	_, ok = ranked.StandingOf(Viewer{UserID: idOf(1)})
	assert.False(t, ok)
}

func TestStandingOf_DistinctBidders(t *testing.T) {
	auction := idOf(1)
	alice, bob, carol := idOf(201), idOf(202), idOf(203)
	ranked := Rank([]Bid{
		NewBid(idOf(1), auction, alice, 500, at(10, 0), BidStatusActive),
		NewBid(idOf(2), auction, alice, 400, at(9, 0), BidStatusOutbid),
		NewBid(idOf(3), auction, bob, 450, at(9, 30), BidStatusOutbid),
		NewBid(idOf(4), auction, carol, 100, at(8, 0), BidStatusOutbid),
	})

	tests := []struct {
		name     string
		viewer   Viewer
		position int
		found    bool
	}{
		{"leader", Viewer{UserID: alice}, 1, true},
		{"second bidder", Viewer{UserID: bob}, 2, true},
		{"third bidder skips alice's second bid", Viewer{UserID: carol}, 3, true},
		{"did not bid", Viewer{UserID: idOf(999)}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, ok := ranked.StandingOf(tt.viewer)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.position, pos)
		})
	}
}

func TestRankByAuction(t *testing.T) {
	a1, a2 := idOf(1), idOf(2)
	byAuction := RankByAuction([]Bid{
		NewBid(idOf(10), a1, idOf(101), 5, at(8, 0), BidStatusOutbid),
		NewBid(idOf(11), a2, idOf(101), 7, at(8, 0), BidStatusActive),
		NewBid(idOf(12), a1, idOf(102), 9, at(8, 1), BidStatusActive),
	})

	require.Len(t, byAuction, 2)
	assert.Equal(t, []uuid.UUID{idOf(12), idOf(10)}, bidIDs(byAuction[a1]))
	assert.Equal(t, []uuid.UUID{idOf(11)}, bidIDs(byAuction[a2]))
}
