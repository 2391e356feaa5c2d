package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"admin/internal/domain"
	"admin/internal/forms"
	"admin/internal/view"
)

var withdrawalsPage = pageMeta{name: view.PageWithdrawals, title: "Withdrawals", description: "Process affiliate withdrawal requests"}

const withdrawalsPath = "/admin/withdrawals"

type withdrawalsData struct {
	Query    view.Query
	Status   string
	Statuses []domain.WithdrawalStatus
	Rows     domain.Page[domain.Withdrawal]
	Pager    view.Pager
	Detail   *domain.Withdrawal
	Process  *processDialog
	Close    string
	Self     string
}

type processDialog struct {
	Title      string
	Action     domain.WithdrawalAction
	Withdrawal domain.Withdrawal
}

// Withdrawals lists withdrawal requests. ?view=<id> opens the detail dialog and
// ?process=<id>&action=<a> the process dialog, only for actions the row's status offers.
func (a *App) Withdrawals(w http.ResponseWriter, r *http.Request) {
	q := listQuery(r)
	status, filtered := domain.ParseWithdrawalStatus(q.Get("status"))
	statusLabel := "all"
	if filtered {
		statusLabel = string(status)
	}
	p := a.pagination(q, "page")
	base := q.Without("view", "process", "action")

	rows, err := a.API.ListWithdrawals(r.Context(), status, p)
	code, errMsg := http.StatusOK, ""
	if err != nil {
		a.log(r).Error().Err(err).Msg("list withdrawals")
		code, errMsg = http.StatusBadGateway, loadFailed
	}

	data := withdrawalsData{
		Query:    base,
		Status:   statusLabel,
		Statuses: domain.WithdrawalStatuses,
		Rows:     rows,
		Pager:    view.NewPager(base, "page", p.Page, rows.PageCount()),
		Close:    base.URL(),
		Self:     selfURL(r),
	}
	byID := func(id string) func(domain.Withdrawal) bool {
		return func(w domain.Withdrawal) bool { return w.ID == id }
	}
	if id := q.Get("view"); id != "" {
		if wd, ok := rows.Find(byID(id)); ok {
			data.Detail = &wd
		}
	}
	if id := q.Get("process"); id != "" {
		wd, found := rows.Find(byID(id))
		action, err := domain.ParseWithdrawalAction(q.Get("action"))
		if found && err == nil && wd.Offers(action) {
			data.Process = &processDialog{
				Title:      view.Title(string(action)) + " Withdrawal",
				Action:     action,
				Withdrawal: wd,
			}
		}
	}
	a.render(w, r, code, withdrawalsPage, data, errMsg)
}

// ProcessWithdrawal applies an approve, reject or complete decision.
func (a *App) ProcessWithdrawal(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	action, decision, err := forms.DecisionFromRequest(r)
	if err != nil {
		a.fail(w, r, withdrawalsPath, validationMessage(err, "Failed to process withdrawal"))
		return
	}
	if err := a.API.ProcessWithdrawal(r.Context(), id, decision); err != nil {
		a.log(r).Error().Err(err).Str("withdrawal_id", id).Str("action", string(action)).Msg("process withdrawal")
		a.fail(w, r, withdrawalsPath, "Failed to process withdrawal")
		return
	}
	a.done(w, r, withdrawalsPath, "Withdrawal "+action.PastTense()+" successfully")
}
