package domain

import "github.com/shopspring/decimal"

// AffiliateLink is a trackable referral URL owned by an affiliate user.
type AffiliateLink struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name"`
	UserEmail   string    `json:"user_email"`
	Code        string    `json:"code"`
	URL         string    `json:"url"`
	Clicks      int64     `json:"clicks"`
	Conversions int64     `json:"conversions"`
	CreatedAt   Timestamp `json:"created_at"`
}

// LinkPerformance aggregates the traffic and revenue attributed to one link.
type LinkPerformance struct {
	ID               string          `json:"id"`
	TotalClicks      int64           `json:"total_clicks"`
	UniqueClicks     int64           `json:"unique_clicks"`
	Conversions      int64           `json:"conversions"`
	ConversionRate   float64         `json:"conversion_rate"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	CommissionEarned decimal.Decimal `json:"commission_earned"`
	DailyStats       []DailyStat     `json:"daily_stats"`
}

// DailyStat is a single day of link activity.
type DailyStat struct {
	Date        string          `json:"date"`
	Clicks      int64           `json:"clicks"`
	Conversions int64           `json:"conversions"`
	Revenue     decimal.Decimal `json:"revenue"`
}
