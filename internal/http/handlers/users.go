package handlers

import (
	"net/http"

	"admin/internal/affiliate"
	"admin/internal/domain"
	"admin/internal/view"
)

var usersPage = pageMeta{name: view.PageUsers, title: "Users", description: "Manage affiliate users and their information"}

const communityOptionsLimit = 100

type usersData struct {
	Query        view.Query
	Search       string
	CommunityID  string
	HasAffiliate string
	IsActive     string
	Level        string
	Communities  []domain.Community
	Rows         domain.Page[domain.AffiliateUser]
	Pager        view.Pager
	Detail       *domain.AffiliateUser
	Close        string
}

// Users lists affiliate users with filters; ?view=<id> opens the detail dialog for a row of
// the current page.
func (a *App) Users(w http.ResponseWriter, r *http.Request) {
	q := listQuery(r)
	p := a.pagination(q, "page")
	data := usersData{
		Query:        q,
		Search:       q.Get("search"),
		CommunityID:  q.Get("community_id"),
		HasAffiliate: q.Get("has_affiliate"),
		IsActive:     q.Get("is_active"),
		Level:        q.Get("level"),
		Close:        q.Without("view").URL(),
	}
	if data.CommunityID == "all" {
		data.CommunityID = ""
	}

	active := true
	communities, err := a.API.ListCommunities(r.Context(), affiliate.CommunityFilter{
		IsActive:   &active,
		Pagination: domain.Pagination{Page: 1, Limit: communityOptionsLimit},
	})
	if err != nil {
		a.log(r).Warn().Err(err).Msg("community options")
	}
	data.Communities = communities.Items

	rows, err := a.API.ListAffiliateUsers(r.Context(), affiliate.UserFilter{
		Search:       data.Search,
		CommunityID:  data.CommunityID,
		HasAffiliate: optionalBool(data.HasAffiliate),
		Level:        data.Level,
		IsActive:     optionalBool(data.IsActive),
		Pagination:   p,
	})
	code, errMsg := http.StatusOK, ""
	if err != nil {
		a.log(r).Error().Err(err).Msg("list affiliate users")
		code, errMsg = http.StatusBadGateway, loadFailed
	}
	data.Rows = rows
	data.Pager = view.NewPager(q.Without("view"), "page", p.Page, rows.PageCount())

	if id := q.Get("view"); id != "" {
		if u, ok := rows.Find(func(u domain.AffiliateUser) bool { return u.ID == id }); ok {
			data.Detail = &u
		}
	}
	a.render(w, r, code, usersPage, data, errMsg)
}
