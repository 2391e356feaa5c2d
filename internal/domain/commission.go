package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CommissionStatus enumerates the approval workflow states of a commission.
type CommissionStatus string

const (
	CommissionPending  CommissionStatus = "pending"
	CommissionApproved CommissionStatus = "approved"
	CommissionPaid     CommissionStatus = "paid"
	CommissionRejected CommissionStatus = "rejected"
)

// CommissionStatuses lists the filterable commission states in display order.
var CommissionStatuses = []CommissionStatus{CommissionPending, CommissionApproved, CommissionPaid, CommissionRejected}

// Variant returns the badge tone for the status.
func (s CommissionStatus) Variant() Variant {
	switch s {
	case CommissionPending:
		return VariantWarning
	case CommissionApproved:
		return VariantInfo
	case CommissionPaid:
		return VariantSuccess
	case CommissionRejected:
		return VariantError
	default:
		return VariantDefault
	}
}

// ParseCommissionStatus accepts a filter value; "all" and empty mean no filter.
func ParseCommissionStatus(v string) (CommissionStatus, bool) {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, s := range CommissionStatuses {
		if string(s) == v {
			return s, true
		}
	}
	return "", false
}

// Commission is a monetary credit owed to an affiliate for a qualifying order.
type Commission struct {
	ID         string           `json:"id"`
	UserID     string           `json:"user_id"`
	UserName   string           `json:"user_name"`
	UserEmail  string           `json:"user_email"`
	OrderID    string           `json:"order_id"`
	Amount     decimal.Decimal  `json:"amount"`
	Rate       float64          `json:"rate"`
	Status     CommissionStatus `json:"status"`
	CreatedAt  Timestamp        `json:"created_at"`
	ApprovedAt Timestamp        `json:"approved_at,omitempty"`
	Notes      string           `json:"notes,omitempty"`
}

// Selectable reports whether the commission can be picked for bulk approval.
func (c Commission) Selectable() bool {
	return c.Status == CommissionPending
}

// CommissionSummary holds program-wide counts and totals per status.
type CommissionSummary struct {
	TotalCommissions    int64           `json:"total_commissions"`
	PendingCommissions  int64           `json:"pending_commissions"`
	ApprovedCommissions int64           `json:"approved_commissions"`
	PaidCommissions     int64           `json:"paid_commissions"`
	TotalAmount         decimal.Decimal `json:"total_amount"`
	PendingAmount       decimal.Decimal `json:"pending_amount"`
	ApprovedAmount      decimal.Decimal `json:"approved_amount"`
	PaidAmount          decimal.Decimal `json:"paid_amount"`
}

// NormalizeSelection trims, drops blanks and removes duplicate ids while keeping order.
func NormalizeSelection(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// PendingIDs returns the ids of the selectable commissions in the given rows.
func PendingIDs(rows []Commission) []string {
	ids := make([]string, 0, len(rows))
	for _, c := range rows {
		if c.Selectable() {
			ids = append(ids, c.ID)
		}
	}
	return ids
}
