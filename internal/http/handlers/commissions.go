package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"admin/internal/domain"
	"admin/internal/forms"
	"admin/internal/view"
)

var commissionsPage = pageMeta{name: view.PageCommissions, title: "Commissions", description: "Review and approve affiliate commissions"}

const commissionsPath = "/admin/commissions"

type commissionRow struct {
	domain.Commission
	Checked bool
}

type commissionsData struct {
	Query      view.Query
	Status     string
	Statuses   []domain.CommissionStatus
	Rows       []commissionRow
	Pager      view.Pager
	HasPending bool
	Confirm    *approveDialog
}

type approveDialog struct {
	IDs    []string
	Return string
	Self   string
}

// Commissions lists commissions with a status filter. ?select=all pre-checks the pending rows of
// the page, ?confirm=1 with selected ids opens the approval dialog.
func (a *App) Commissions(w http.ResponseWriter, r *http.Request) {
	q := listQuery(r)
	status, filtered := domain.ParseCommissionStatus(q.Get("status"))
	statusLabel := "all"
	if filtered {
		statusLabel = string(status)
	}
	p := a.pagination(q, "page")

	list, err := a.API.ListCommissions(r.Context(), status, p)
	code, errMsg := http.StatusOK, ""
	if err != nil {
		a.log(r).Error().Err(err).Msg("list commissions")
		code, errMsg = http.StatusBadGateway, loadFailed
	}

	pending := domain.PendingIDs(list.Items)
	selected := domain.NormalizeSelection(r.URL.Query()["selected"])
	if q.Get("select") == "all" {
		selected = pending
	}
	checked := make(map[string]bool, len(selected))
	for _, id := range selected {
		checked[id] = true
	}
	rows := make([]commissionRow, 0, len(list.Items))
	for _, c := range list.Items {
		rows = append(rows, commissionRow{Commission: c, Checked: c.Selectable() && checked[c.ID]})
	}

	base := q.Without("select", "selected", "confirm")
	data := commissionsData{
		Query:      base,
		Status:     statusLabel,
		Statuses:   domain.CommissionStatuses,
		Rows:       rows,
		Pager:      view.NewPager(base, "page", p.Page, list.PageCount()),
		HasPending: len(pending) > 0,
	}
	if q.Get("confirm") != "" {
		if len(selected) == 0 {
			errMsg = "Select at least one commission"
		} else {
			data.Confirm = &approveDialog{IDs: selected, Return: base.URL(), Self: selfURL(r)}
		}
	}
	a.render(w, r, code, commissionsPage, data, errMsg)
}

// ApproveCommissions bulk-approves the posted commission ids.
func (a *App) ApproveCommissions(w http.ResponseWriter, r *http.Request) {
	form, err := forms.ApprovalFromRequest(r)
	if err != nil {
		a.fail(w, r, commissionsPath, validationMessage(err, "Failed to approve commissions"))
		return
	}
	if err := a.API.ApproveCommissions(r.Context(), form.CommissionIDs, form.Notes); err != nil {
		a.log(r).Error().Err(err).Int("count", len(form.CommissionIDs)).Msg("approve commissions")
		a.fail(w, r, commissionsPath, "Failed to approve commissions")
		return
	}
	a.done(w, r, commissionsPath, fmt.Sprintf("%d commission(s) approved successfully", len(form.CommissionIDs)))
}

// validationMessage surfaces form rule messages and falls back to the generic failure text.
func validationMessage(err error, fallback string) string {
	var fe *forms.Errors
	if errors.As(err, &fe) && len(fe.Messages) > 0 {
		return strings.Join(fe.Messages, ". ")
	}
	return fallback
}
