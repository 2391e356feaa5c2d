package affiliate

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"admin/internal/domain"
)

type assignCommunityRequest struct {
	CustomerID  string `json:"customer_id"`
	CommunityID string `json:"community_id"`
}

type removeCommunityRequest struct {
	CustomerID string `json:"customer_id"`
}

// AssignCustomerToCommunity moves a customer into a community.
func (c *Client) AssignCustomerToCommunity(ctx context.Context, customerID, communityID string) error {
	customerID, communityID = strings.TrimSpace(customerID), strings.TrimSpace(communityID)
	if customerID == "" || communityID == "" {
		return fmt.Errorf("%w: customer and community are required", domain.ErrInvalidInput)
	}
	body := assignCommunityRequest{CustomerID: customerID, CommunityID: communityID}
	return c.send(ctx, "assign customer community", http.MethodPost, "/admin/customers/assign-community", body, nil,
		"/admin/communities", "/admin/affiliate/communities", "/admin/affiliate/users")
}

// RemoveCustomerFromCommunity clears a customer's community association.
func (c *Client) RemoveCustomerFromCommunity(ctx context.Context, customerID string) error {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return fmt.Errorf("%w: customer is required", domain.ErrInvalidInput)
	}
	return c.send(ctx, "remove customer community", http.MethodPost, "/admin/customers/remove-community",
		removeCommunityRequest{CustomerID: customerID}, nil,
		"/admin/communities", "/admin/affiliate/communities", "/admin/affiliate/users")
}
