package affiliate

import (
	"context"
	"net/http"
	"strconv"

	"admin/internal/domain"
)

var communityPrefixes = []string{"/admin/communities", "/admin/affiliate/communities", "/admin/affiliate/users"}

// CommunityFilter narrows the community listing.
type CommunityFilter struct {
	Search   string
	IsActive *bool
	domain.Pagination
}

// ListCommunities returns one page of communities.
func (c *Client) ListCommunities(ctx context.Context, f CommunityFilter) (domain.Page[domain.Community], error) {
	q := pageQuery(f.Pagination)
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.IsActive != nil {
		q.Set("is_active", strconv.FormatBool(*f.IsActive))
	}
	var out domain.Page[domain.Community]
	err := c.get(ctx, "list communities", "/admin/communities", q, &out)
	return out, err
}

// GetCommunity returns a single community.
func (c *Client) GetCommunity(ctx context.Context, communityID string) (*domain.Community, error) {
	id, err := escapeID(communityID)
	if err != nil {
		return nil, err
	}
	var out domain.Community
	if err := c.get(ctx, "get community", "/admin/affiliate/communities/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCommunity creates a community and returns it as stored by the API.
func (c *Client) CreateCommunity(ctx context.Context, in domain.CommunityInput) (*domain.Community, error) {
	var out domain.Community
	if err := c.send(ctx, "create community", http.MethodPost, "/admin/communities", in, &out, communityPrefixes...); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCommunity replaces the editable fields of a community.
func (c *Client) UpdateCommunity(ctx context.Context, communityID string, in domain.CommunityUpdate) (*domain.Community, error) {
	id, err := escapeID(communityID)
	if err != nil {
		return nil, err
	}
	var out domain.Community
	if err := c.send(ctx, "update community", http.MethodPut, "/admin/communities/"+id, in, &out, communityPrefixes...); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCommunity removes a community.
func (c *Client) DeleteCommunity(ctx context.Context, communityID string) error {
	id, err := escapeID(communityID)
	if err != nil {
		return err
	}
	return c.send(ctx, "delete community", http.MethodDelete, "/admin/communities/"+id, nil, nil, communityPrefixes...)
}

// ListCommunityCustomers returns one page of the customers belonging to a community.
func (c *Client) ListCommunityCustomers(ctx context.Context, communityID string, p domain.Pagination) (domain.Page[domain.Customer], error) {
	var out domain.Page[domain.Customer]
	id, err := escapeID(communityID)
	if err != nil {
		return out, err
	}
	err = c.get(ctx, "list community customers", "/admin/communities/"+id+"/customers", pageQuery(p), &out)
	return out, err
}
