package handlers

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"admin/internal/domain"
	"admin/internal/view"
)

var dashboardPage = pageMeta{name: view.PageDashboard, title: "Dashboard", description: "Overview of your affiliate program performance"}

const recentLinks = 5

type dashboardData struct {
	Summary            domain.CommissionSummary
	TotalAffiliates    int
	PendingWithdrawals int
	RecentLinks        []domain.AffiliateLink
}

// Dashboard loads the three overview reads concurrently. A failed read shows zeros.
func (a *App) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := a.log(r)
	var data dashboardData
	var g errgroup.Group

	g.Go(func() error {
		summary, err := a.API.GetCommissionSummary(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("dashboard: commission summary")
			return nil
		}
		data.Summary = summary
		return nil
	})
	g.Go(func() error {
		links, err := a.API.ListAffiliateLinks(ctx, domain.Pagination{Page: 1, Limit: recentLinks})
		if err != nil {
			log.Warn().Err(err).Msg("dashboard: affiliate links")
			return nil
		}
		data.TotalAffiliates = links.Total
		data.RecentLinks = links.Items
		if len(data.RecentLinks) > recentLinks {
			data.RecentLinks = data.RecentLinks[:recentLinks]
		}
		return nil
	})
	g.Go(func() error {
		pending, err := a.API.ListWithdrawals(ctx, domain.WithdrawalPending, domain.Pagination{Page: 1, Limit: recentLinks})
		if err != nil {
			log.Warn().Err(err).Msg("dashboard: pending withdrawals")
			return nil
		}
		data.PendingWithdrawals = pending.Total
		return nil
	})
	_ = g.Wait()

	a.render(w, r, http.StatusOK, dashboardPage, data, "")
}
