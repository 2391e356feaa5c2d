package affiliate

import (
	"context"
	"strconv"

	"admin/internal/domain"
)

// UserFilter narrows the affiliate user listing. Nil flags and empty strings are not sent.
type UserFilter struct {
	Search       string
	CommunityID  string
	HasAffiliate *bool
	Level        string
	IsActive     *bool
	domain.Pagination
}

// ListAffiliateUsers returns one page of users matching the filter. Only the filters that
// are set are sent; values are forwarded as given.
func (c *Client) ListAffiliateUsers(ctx context.Context, f UserFilter) (domain.Page[domain.AffiliateUser], error) {
	q := pageQuery(f.Pagination)
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.CommunityID != "" {
		q.Set("community_id", f.CommunityID)
	}
	if f.HasAffiliate != nil {
		q.Set("has_affiliate", strconv.FormatBool(*f.HasAffiliate))
	}
	if f.Level != "" {
		q.Set("level", f.Level)
	}
	if f.IsActive != nil {
		q.Set("is_active", strconv.FormatBool(*f.IsActive))
	}
	var out domain.Page[domain.AffiliateUser]
	err := c.get(ctx, "list affiliate users", "/admin/affiliate/users", q, &out)
	return out, err
}
