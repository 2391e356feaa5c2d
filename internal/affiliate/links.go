package affiliate

import (
	"context"

	"admin/internal/domain"
)

// ListAffiliateLinks returns one page of affiliate links.
func (c *Client) ListAffiliateLinks(ctx context.Context, p domain.Pagination) (domain.Page[domain.AffiliateLink], error) {
	var out domain.Page[domain.AffiliateLink]
	err := c.get(ctx, "list affiliate links", "/admin/affiliate-links", pageQuery(p), &out)
	return out, err
}

// GetLinkPerformance returns click, conversion and revenue statistics for one link.
func (c *Client) GetLinkPerformance(ctx context.Context, linkID string) (*domain.LinkPerformance, error) {
	id, err := escapeID(linkID)
	if err != nil {
		return nil, err
	}
	var out domain.LinkPerformance
	if err := c.get(ctx, "get link performance", "/admin/affiliate-links/"+id+"/performance", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
