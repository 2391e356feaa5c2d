package affiliate

import (
	"context"
	"net/http"

	"admin/internal/domain"
)

// ListWithdrawals returns one page of withdrawal requests, optionally narrowed to a status.
func (c *Client) ListWithdrawals(ctx context.Context, status domain.WithdrawalStatus, p domain.Pagination) (domain.Page[domain.Withdrawal], error) {
	q := pageQuery(p)
	if status != "" {
		q.Set("status", string(status))
	}
	var out domain.Page[domain.Withdrawal]
	err := c.get(ctx, "list withdrawals", "/admin/withdrawals", q, &out)
	return out, err
}

// ProcessWithdrawal requests a status change for a withdrawal. The API decides whether the
// transition is allowed.
func (c *Client) ProcessWithdrawal(ctx context.Context, withdrawalID string, d domain.WithdrawalDecision) error {
	id, err := escapeID(withdrawalID)
	if err != nil {
		return err
	}
	return c.send(ctx, "process withdrawal", http.MethodPut, "/admin/withdrawals/"+id+"/process", d, nil,
		"/admin/withdrawals", "/admin/affiliate/users")
}
