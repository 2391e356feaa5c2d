package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCommunityRate is the commission rate proposed for a new community.
const DefaultCommunityRate = 10

// Community is a named affiliate group with its own commission rate.
type Community struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	CommissionRate float64   `json:"commission_rate"`
	IsActive       bool      `json:"is_active"`
	MemberCount    int64     `json:"member_count"`
	CreatedAt      Timestamp `json:"created_at"`
}

// CommunityInput is the payload for creating a community.
type CommunityInput struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	CommissionRate float64 `json:"commission_rate"`
}

// CommunityUpdate is the payload for updating a community.
type CommunityUpdate struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	CommissionRate float64 `json:"commission_rate"`
	IsActive       bool    `json:"is_active"`
}

// ActiveFilter parses the all/active/inactive selector into an optional flag.
func ActiveFilter(v string) *bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "active", "true":
		t := true
		return &t
	case "inactive", "false":
		f := false
		return &f
	default:
		return nil
	}
}

// Customer is an end customer that may belong to a community.
type Customer struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	CommunityID string          `json:"community_id,omitempty"`
	JoinedAt    Timestamp       `json:"joined_at"`
	TotalOrders int64           `json:"total_orders"`
	TotalSpent  decimal.Decimal `json:"total_spent"`
}
