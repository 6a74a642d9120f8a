package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Tables(t *testing.T) {
	tests := []struct {
		kind    StatusDomain
		status  string
		variant Variant
	}{
		{StatusDomainPayment, "pending", VariantDestructive},
		{StatusDomainPayment, "deposit_paid", VariantSecondary},
		{StatusDomainPayment, "completed", VariantDefault},
		{StatusDomainDelivery, "pending", VariantOutline},
		{StatusDomainDelivery, "processing", VariantSecondary},
		{StatusDomainDelivery, "shipped", VariantDefault},
		{StatusDomainDelivery, "delivered", VariantDefault},
		{StatusDomainTransaction, "pending", VariantSecondary},
		{StatusDomainTransaction, "completed", VariantDefault},
		{StatusDomainTransaction, "failed", VariantDestructive},
		{StatusDomainTransaction, "cancelled", VariantOutline},
		{StatusDomainBid, "outbid", VariantSecondary},
		{StatusDomainBid, "lost", VariantOutline},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind)+"/"+tt.status, func(t *testing.T) {
			b := Classify(tt.status, tt.kind)
			assert.Equal(t, tt.status, b.Status)
			assert.Equal(t, tt.variant, b.Variant)
			assert.NotEmpty(t, b.Label)
			assert.NotEmpty(t, b.Icon)
		})
	}
}

func TestClassify_UnknownFallsBackToDefault(t *testing.T) {
	assert.Equal(t, Classify("pending", StatusDomainPayment), Classify("unknown_code", StatusDomainPayment))
	assert.Equal(t, Classify("pending", StatusDomainDelivery), Classify("", StatusDomainDelivery))
	assert.Equal(t, Classify("active", StatusDomainBid), Classify("cancelled", StatusDomainBid))
	assert.Equal(t, Classify("completed", StatusDomainPayment), Classify("completed", "refund"))
}

func TestClassify_NormalizesInput(t *testing.T) {
	assert.Equal(t, Classify("shipped", StatusDomainDelivery), Classify("  SHIPPED ", StatusDomainDelivery))
}
