package affiliate

import (
	"context"
	"fmt"
	"net/http"

	"admin/internal/domain"
)

type approveCommissionsRequest struct {
	CommissionIDs []string `json:"commission_ids"`
	Notes         string   `json:"notes,omitempty"`
}

// GetCommissionSummary returns program-wide commission counts and totals.
func (c *Client) GetCommissionSummary(ctx context.Context) (domain.CommissionSummary, error) {
	var out domain.CommissionSummary
	err := c.get(ctx, "get commission summary", "/admin/affiliate/commissions/summary", nil, &out)
	return out, err
}

// ListCommissions returns one page of commissions, optionally narrowed to a status.
func (c *Client) ListCommissions(ctx context.Context, status domain.CommissionStatus, p domain.Pagination) (domain.Page[domain.Commission], error) {
	q := pageQuery(p)
	if status != "" {
		q.Set("status", string(status))
	}
	var out domain.Page[domain.Commission]
	err := c.get(ctx, "list commissions", "/admin/commissions", q, &out)
	return out, err
}

// ApproveCommissions asks the API to approve exactly the given commissions.
func (c *Client) ApproveCommissions(ctx context.Context, commissionIDs []string, notes string) error {
	ids := domain.NormalizeSelection(commissionIDs)
	if len(ids) == 0 {
		return fmt.Errorf("%w: no commissions selected", domain.ErrInvalidInput)
	}
	body := approveCommissionsRequest{CommissionIDs: ids, Notes: notes}
	return c.send(ctx, "approve commissions", http.MethodPost, "/admin/commissions/approve", body, nil,
		"/admin/commissions", "/admin/affiliate/commissions", "/admin/affiliate/users")
}
