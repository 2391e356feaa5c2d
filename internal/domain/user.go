package domain

import "github.com/shopspring/decimal"

// AffiliateUser is a platform user as seen by the affiliate program.
type AffiliateUser struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	CommunityID    string          `json:"community_id,omitempty"`
	CommunityName  string          `json:"community_name,omitempty"`
	HasAffiliate   bool            `json:"has_affiliate"`
	Level          string          `json:"level"`
	IsActive       bool            `json:"is_active"`
	TotalEarnings  decimal.Decimal `json:"total_earnings"`
	PendingBalance decimal.Decimal `json:"pending_balance"`
	CreatedAt      Timestamp       `json:"created_at"`
}
