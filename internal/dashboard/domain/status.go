package domain

import "strings"

// StatusDomain selects which status vocabulary Classify reads
type StatusDomain string

const (
	StatusDomainPayment     StatusDomain = "payment"
	StatusDomainDelivery    StatusDomain = "delivery"
	StatusDomainTransaction StatusDomain = "transaction"
	StatusDomainBid         StatusDomain = "bid"
)

// Variant is the severity style of a status badge
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantSecondary   Variant = "secondary"
	VariantDestructive Variant = "destructive"
	VariantOutline     Variant = "outline"
)

// IconKind names the icon rendered next to a badge
type IconKind string

const (
	IconClock       IconKind = "clock"
	IconCreditCard  IconKind = "credit-card"
	IconCheckCircle IconKind = "check-circle"
	IconPackage     IconKind = "package"
	IconTruck       IconKind = "truck"
	IconXCircle     IconKind = "x-circle"
	IconBan         IconKind = "ban"
	IconGavel       IconKind = "gavel"
	IconTrendDown   IconKind = "trending-down"
	IconTrophy      IconKind = "trophy"
	IconMinusCircle IconKind = "minus-circle"
)

// Badge is the display metadata attached to a status
type Badge struct {
	Status  string   `json:"status"`
	Label   string   `json:"label"`
	Variant Variant  `json:"variant"`
	Icon    IconKind `json:"icon"`
}

var badgeTables = map[StatusDomain]map[string]Badge{
	StatusDomainPayment: {
		"pending":      {Status: "pending", Label: "Awaiting payment", Variant: VariantDestructive, Icon: IconClock},
		"deposit_paid": {Status: "deposit_paid", Label: "Deposit paid", Variant: VariantSecondary, Icon: IconCreditCard},
		"completed":    {Status: "completed", Label: "Paid", Variant: VariantDefault, Icon: IconCheckCircle},
	},
	StatusDomainDelivery: {
		"pending":    {Status: "pending", Label: "Pending", Variant: VariantOutline, Icon: IconClock},
		"processing": {Status: "processing", Label: "Processing", Variant: VariantSecondary, Icon: IconPackage},
		"shipped":    {Status: "shipped", Label: "Shipped", Variant: VariantDefault, Icon: IconTruck},
		"delivered":  {Status: "delivered", Label: "Delivered", Variant: VariantDefault, Icon: IconCheckCircle},
	},
	StatusDomainTransaction: {
		"pending":   {Status: "pending", Label: "Pending", Variant: VariantSecondary, Icon: IconClock},
		"completed": {Status: "completed", Label: "Completed", Variant: VariantDefault, Icon: IconCheckCircle},
		"failed":    {Status: "failed", Label: "Failed", Variant: VariantDestructive, Icon: IconXCircle},
		"cancelled": {Status: "cancelled", Label: "Cancelled", Variant: VariantOutline, Icon: IconBan},
	},
	StatusDomainBid: {
		"active": {Status: "active", Label: "Active", Variant: VariantDefault, Icon: IconGavel},
		"outbid": {Status: "outbid", Label: "Outbid", Variant: VariantSecondary, Icon: IconTrendDown},
		"won":    {Status: "won", Label: "Won", Variant: VariantDefault, Icon: IconTrophy},
		"lost":   {Status: "lost", Label: "Lost", Variant: VariantOutline, Icon: IconMinusCircle},
	},
}

var fallbackStatus = map[StatusDomain]string{
	StatusDomainPayment:     "pending",
	StatusDomainDelivery:    "pending",
	StatusDomainTransaction: "pending",
	StatusDomainBid:         "active",
}

// Classify maps a raw status code to its badge. Unknown codes get the domain default,
// an unknown domain is read as payment.
func Classify(status string, kind StatusDomain) Badge {
	table, ok := badgeTables[kind]
	if !ok {
		kind = StatusDomainPayment
		table = badgeTables[kind]
	}
	if b, ok := table[strings.ToLower(strings.TrimSpace(status))]; ok {
		return b
	}
	return table[fallbackStatus[kind]]
}
