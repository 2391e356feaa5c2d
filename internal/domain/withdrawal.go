package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// WithdrawalStatus enumerates the processing states of a withdrawal request.
type WithdrawalStatus string

const (
	WithdrawalPending   WithdrawalStatus = "pending"
	WithdrawalApproved  WithdrawalStatus = "approved"
	WithdrawalRejected  WithdrawalStatus = "rejected"
	WithdrawalCompleted WithdrawalStatus = "completed"
)

// WithdrawalStatuses lists the filterable withdrawal states in display order.
var WithdrawalStatuses = []WithdrawalStatus{WithdrawalPending, WithdrawalApproved, WithdrawalCompleted, WithdrawalRejected}

// Variant returns the badge tone for the status.
func (s WithdrawalStatus) Variant() Variant {
	switch s {
	case WithdrawalPending:
		return VariantWarning
	case WithdrawalApproved:
		return VariantInfo
	case WithdrawalCompleted:
		return VariantSuccess
	case WithdrawalRejected:
		return VariantError
	default:
		return VariantDefault
	}
}

// ParseWithdrawalStatus accepts a filter value; "all" and empty mean no filter.
func ParseWithdrawalStatus(v string) (WithdrawalStatus, bool) {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, s := range WithdrawalStatuses {
		if string(s) == v {
			return s, true
		}
	}
	return "", false
}

// Withdrawal is a request to cash out commission balance to a bank account.
type Withdrawal struct {
	ID               string           `json:"id"`
	UserID           string           `json:"user_id"`
	UserName         string           `json:"user_name"`
	UserEmail        string           `json:"user_email"`
	Amount           decimal.Decimal  `json:"amount"`
	BankName         string           `json:"bank_name"`
	AccountNumber    string           `json:"account_number"`
	AccountName      string           `json:"account_name"`
	Status           WithdrawalStatus `json:"status"`
	TransferProofURL string           `json:"transfer_proof_url,omitempty"`
	RejectionReason  string           `json:"rejection_reason,omitempty"`
	CreatedAt        Timestamp        `json:"created_at"`
	ProcessedAt      Timestamp        `json:"processed_at,omitempty"`
}

// WithdrawalAction is an operator intent on a withdrawal.
type WithdrawalAction string

const (
	ActionApprove  WithdrawalAction = "approve"
	ActionReject   WithdrawalAction = "reject"
	ActionComplete WithdrawalAction = "complete"
)

// ParseWithdrawalAction validates an action name.
func ParseWithdrawalAction(v string) (WithdrawalAction, error) {
	switch a := WithdrawalAction(strings.ToLower(strings.TrimSpace(v))); a {
	case ActionApprove, ActionReject, ActionComplete:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidAction, v)
	}
}

// TargetStatus is the status requested from the API for the action.
func (a WithdrawalAction) TargetStatus() WithdrawalStatus {
	switch a {
	case ActionApprove:
		return WithdrawalApproved
	case ActionReject:
		return WithdrawalRejected
	case ActionComplete:
		return WithdrawalCompleted
	default:
		return ""
	}
}

// PastTense is used in operator notifications ("Withdrawal approved successfully").
func (a WithdrawalAction) PastTense() string {
	return string(a.TargetStatus())
}

// Actions returns the actions offered for a withdrawal in its current status.
func (w Withdrawal) Actions() []WithdrawalAction {
	switch w.Status {
	case WithdrawalPending:
		return []WithdrawalAction{ActionApprove, ActionReject}
	case WithdrawalApproved:
		return []WithdrawalAction{ActionComplete}
	default:
		return nil
	}
}

// Offers reports whether the action is offered for the withdrawal.
func (w Withdrawal) Offers(a WithdrawalAction) bool {
	for _, candidate := range w.Actions() {
		if candidate == a {
			return true
		}
	}
	return false
}

// WithdrawalDecision is the body of a process request.
type WithdrawalDecision struct {
	Status           WithdrawalStatus `json:"status"`
	TransferProofURL string           `json:"transfer_proof_url,omitempty"`
	RejectionReason  string           `json:"rejection_reason,omitempty"`
}

// NewWithdrawalDecision builds the request for an action. Only the field relevant to the
// action is carried: the proof URL for complete, the reason for reject.
func NewWithdrawalDecision(action WithdrawalAction, proofURL, reason string) (WithdrawalDecision, error) {
	status := action.TargetStatus()
	if status == "" {
		return WithdrawalDecision{}, fmt.Errorf("%w: %q", ErrInvalidAction, action)
	}
	d := WithdrawalDecision{Status: status}
	switch action {
	case ActionComplete:
		d.TransferProofURL = strings.TrimSpace(proofURL)
	case ActionReject:
		d.RejectionReason = strings.TrimSpace(reason)
	}
	return d, nil
}
