package handlers

import (
	"net/http"

	"admin/internal/domain"
	"admin/internal/view"
)

var linksPage = pageMeta{name: view.PageLinks, title: "Affiliate Links", description: "Manage and monitor all affiliate links"}

type linksData struct {
	Query       view.Query
	Rows        domain.Page[domain.AffiliateLink]
	Pager       view.Pager
	Performance *performanceDialog
}

type performanceDialog struct {
	Link  *domain.AffiliateLink
	Stats *domain.LinkPerformance
	Close string
}

// AffiliateLinks lists links; ?performance=<id> opens the performance dialog.
func (a *App) AffiliateLinks(w http.ResponseWriter, r *http.Request) {
	q := listQuery(r)
	p := a.pagination(q, "page")
	rows, err := a.API.ListAffiliateLinks(r.Context(), p)
	status, errMsg := http.StatusOK, ""
	if err != nil {
		a.log(r).Error().Err(err).Msg("list affiliate links")
		status, errMsg = http.StatusBadGateway, loadFailed
	}

	base := q.Without("performance")
	data := linksData{Query: base, Rows: rows, Pager: view.NewPager(base, "page", p.Page, rows.PageCount())}
	if id := q.Get("performance"); id != "" {
		dlg := &performanceDialog{Close: base.URL()}
		if link, ok := rows.Find(func(l domain.AffiliateLink) bool { return l.ID == id }); ok {
			dlg.Link = &link
		}
		stats, err := a.API.GetLinkPerformance(r.Context(), id)
		if err != nil {
			a.log(r).Warn().Err(err).Str("link_id", id).Msg("link performance")
		} else {
			dlg.Stats = stats
		}
		data.Performance = dlg
	}
	a.render(w, r, status, linksPage, data, errMsg)
}
