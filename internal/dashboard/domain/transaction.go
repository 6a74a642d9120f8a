package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType is the kind of financial event a bank transaction records
type TransactionType string

const (
	TransactionTypeDeposit TransactionType = "deposit"
	TransactionTypePayment TransactionType = "payment"
)

// TransactionStatus is the bank side status of a transaction
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

// IsTerminal reports whether no further status change is expected
func (s TransactionStatus) IsTerminal() bool {
	switch s {
	case TransactionStatusCompleted, TransactionStatusFailed, TransactionStatusCancelled:
		return true
	}
	return false
}

// Transaction is an immutable record of a deposit or payment made through the bank.
type Transaction struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      TransactionType
	Amount    int64
	BankCode  string // optional
	Status    TransactionStatus
	CreatedAt time.Time
	AuctionID *uuid.UUID // optional link to the auction the money is for
	PaymentID *uuid.UUID // optional link to the settlement payment
}

// RecordType is the deposit/payment type
func (t Transaction) RecordType() string { return string(t.Type) }

// RecordStatus is the bank status of the transaction
func (t Transaction) RecordStatus() string { return string(t.Status) }

// RecordTime is when the transaction was created
func (t Transaction) RecordTime() time.Time { return t.CreatedAt }

// InTab maps the deposit/payment tabs of the bank view onto the transaction type
func (t Transaction) InTab(tab Tab) bool {
	switch tab {
	case TabDeposits:
		return t.Type == TransactionTypeDeposit
	case TabPayments:
		return t.Type == TransactionTypePayment
	}
	return false
}
