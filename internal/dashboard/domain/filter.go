package domain

import (
	"strings"
	"time"
)

// All is the selector value meaning "no constraint" for a dimension
const All = "all"

// Tab is a named grouping of records selected from a dashboard tab
type Tab string

const (
	TabAll Tab = All

	// bid history
	TabActive Tab = "active"
	TabWon    Tab = "won"
	TabLost   Tab = "lost"

	// won auctions
	TabAwaitingPayment  Tab = "awaiting_payment"
	TabAwaitingDelivery Tab = "awaiting_delivery"
	TabDelivered        Tab = "delivered"

	// bank transactions
	TabDeposits Tab = "deposit"
	TabPayments Tab = "payment"
)

// Record is anything FilterCriteria can be applied to.
// RecordType returns "" for record kinds without a type dimension.
type Record interface {
	RecordType() string
	RecordStatus() string
	RecordTime() time.Time
	InTab(tab Tab) bool
}

// FilterCriteria is a conjunction of optional predicates, one field per dimension.
// Empty or "all" leaves a dimension unconstrained, a nil bound leaves the range open.
type FilterCriteria struct {
	Type   string
	Status string
	Tab    Tab
	From   *time.Time
	To     *time.Time
}

func isAll(v string) bool {
	return v == "" || strings.EqualFold(v, All)
}

// Validate rejects a range whose start is after its end
func (c FilterCriteria) Validate() error {
	if c.From != nil && c.To != nil && c.From.After(*c.To) {
		return NewValidationError("date range", ErrInvalidDateRange)
	}
	return nil
}

// Matches reports whether r satisfies every active dimension. Both date bounds are inclusive.
func (c FilterCriteria) Matches(r Record) bool {
	if !isAll(c.Type) && !strings.EqualFold(r.RecordType(), c.Type) {
		return false
	}
	if !isAll(c.Status) && !strings.EqualFold(r.RecordStatus(), c.Status) {
		return false
	}
	if !isAll(string(c.Tab)) && !r.InTab(c.Tab) {
		return false
	}
	t := r.RecordTime()
	if c.From != nil && t.Before(*c.From) {
		return false
	}
	if c.To != nil && t.After(*c.To) {
		return false
	}
	return true
}

// Apply returns the records matching c in their original order.
// records is never modified, the result is a fresh slice.
func Apply[T Record](records []T, c FilterCriteria) ([]T, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	out := make([]T, 0, len(records))
	for _, r := range records {
		if c.Matches(r) {
			out = append(out, r)
		}
	}
	return out, nil
}
