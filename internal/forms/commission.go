package forms

import (
	"net/http"

	"github.com/gookit/validate"

	"admin/internal/domain"
)

// Approval is a bulk commission approval.
type Approval struct {
	CommissionIDs []string `validate:"required"`
	Notes         string
}

func (Approval) Messages() map[string]string {
	return validate.MS{
		"CommissionIDs.required": "Select at least one commission",
	}
}

// ApprovalFromRequest reads the checked commission_ids and the optional notes.
func ApprovalFromRequest(r *http.Request) (Approval, error) {
	if err := r.ParseForm(); err != nil {
		return Approval{}, &Errors{Messages: []string{"Malformed form"}}
	}
	a := Approval{
		CommissionIDs: domain.NormalizeSelection(r.PostForm["commission_ids"]),
		Notes:         field(r, "notes"),
	}
	return a, check(&a)
}
