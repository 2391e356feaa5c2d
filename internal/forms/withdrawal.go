package forms

import (
	"net/http"
	"net/url"

	"github.com/gookit/validate"

	"admin/internal/domain"
)

type completeWithdrawal struct {
	TransferProofURL string `validate:"required|ValidateProofURL"`
}

func (completeWithdrawal) Messages() map[string]string {
	return validate.MS{
		"TransferProofURL.required": "Transfer proof URL is required",
		"ValidateProofURL":          "Transfer proof URL must be a valid URL",
	}
}

func (completeWithdrawal) ValidateProofURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

type rejectWithdrawal struct {
	RejectionReason string `validate:"required"`
}

func (rejectWithdrawal) Messages() map[string]string {
	return validate.MS{
		"RejectionReason.required": "Rejection reason is required",
	}
}

// Decide validates an operator decision and builds the process request.
// Complete needs a proof URL, reject needs a reason, approve needs nothing.
func Decide(action, proofURL, reason string) (domain.WithdrawalAction, domain.WithdrawalDecision, error) {
	a, err := domain.ParseWithdrawalAction(action)
	if err != nil {
		return "", domain.WithdrawalDecision{}, err
	}
	d, err := domain.NewWithdrawalDecision(a, proofURL, reason)
	if err != nil {
		return "", domain.WithdrawalDecision{}, err
	}
	switch a {
	case domain.ActionComplete:
		err = check(&completeWithdrawal{TransferProofURL: d.TransferProofURL})
	case domain.ActionReject:
		err = check(&rejectWithdrawal{RejectionReason: d.RejectionReason})
	}
	if err != nil {
		return "", domain.WithdrawalDecision{}, err
	}
	return a, d, nil
}

// DecisionFromRequest reads the process dialog form.
func DecisionFromRequest(r *http.Request) (domain.WithdrawalAction, domain.WithdrawalDecision, error) {
	return Decide(field(r, "action"), field(r, "transfer_proof_url"), field(r, "rejection_reason"))
}
