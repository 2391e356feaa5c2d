package handlers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"admin/internal/affiliate"
	"admin/internal/domain"
	"admin/internal/forms"
	"admin/internal/view"
)

var communitiesPage = pageMeta{name: view.PageCommunities, title: "Communities", description: "Manage affiliate communities and groups"}

const communitiesPath = "/admin/communities"

type communitiesData struct {
	Query     view.Query
	Search    string
	Status    string
	Rows      domain.Page[domain.Community]
	Pager     view.Pager
	Form      *communityDialog
	Delete    *domain.Community
	Customers *customersDialog
	Close     string
	Self      string
}

type communityDialog struct {
	Title   string
	Action  string
	Editing bool
	Values  forms.Community
}

type customersDialog struct {
	Community domain.Community
	Rows      domain.Page[domain.Customer]
	Pager     view.Pager
	Return    string
}

var communityDialogKeys = []string{"new", "edit", "delete", "customers", "cpage"}

// Communities lists communities. Dialogs: ?new=1 create form, ?edit=<id> edit form,
// ?delete=<id> confirmation, ?customers=<id>&cpage=<n> member list with assign/remove.
func (a *App) Communities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := listQuery(r)
	status := q.Get("status")
	if status == "" {
		status = "all"
	}
	p := a.pagination(q, "page")
	base := q.Without(communityDialogKeys...)

	rows, err := a.API.ListCommunities(ctx, affiliate.CommunityFilter{
		Search:     q.Get("search"),
		IsActive:   domain.ActiveFilter(status),
		Pagination: p,
	})
	code, errMsg := http.StatusOK, ""
	if err != nil {
		a.log(r).Error().Err(err).Msg("list communities")
		code, errMsg = http.StatusBadGateway, loadFailed
	}

	data := communitiesData{
		Query:  base,
		Search: q.Get("search"),
		Status: status,
		Rows:   rows,
		Pager:  view.NewPager(base, "page", p.Page, rows.PageCount()),
		Close:  base.URL(),
		Self:   selfURL(r),
	}

	switch {
	case q.Get("new") != "":
		data.Form = &communityDialog{Title: "Add Community", Action: communitiesPath, Values: forms.NewCommunity()}
	case q.Get("edit") != "":
		id := q.Get("edit")
		c, err := a.API.GetCommunity(ctx, id)
		if err != nil {
			a.log(r).Warn().Err(err).Str("community_id", id).Msg("load community")
			errMsg = "Failed to load community"
			break
		}
		data.Form = &communityDialog{
			Title:   "Edit Community",
			Action:  communitiesPath + "/" + url.PathEscape(id),
			Editing: true,
			Values:  forms.EditCommunity(*c),
		}
	case q.Get("delete") != "":
		if c, ok := a.findCommunity(r, rows, q.Get("delete")); ok {
			data.Delete = &c
		} else {
			errMsg = "Failed to load community"
		}
	case q.Get("customers") != "":
		id := q.Get("customers")
		c, ok := a.findCommunity(r, rows, id)
		if !ok {
			errMsg = "Failed to load community"
			break
		}
		cp := a.pagination(q, "cpage")
		members, err := a.API.ListCommunityCustomers(ctx, id, cp)
		if err != nil {
			a.log(r).Warn().Err(err).Str("community_id", id).Msg("list community customers")
			errMsg = loadFailed
		}
		data.Customers = &customersDialog{
			Community: c,
			Rows:      members,
			Pager:     view.NewPager(q, "cpage", cp.Page, members.PageCount()),
			Return:    q.URL(),
		}
	}
	a.render(w, r, code, communitiesPage, data, errMsg)
}

// findCommunity looks the community up on the current page before asking the API.
func (a *App) findCommunity(r *http.Request, rows domain.Page[domain.Community], id string) (domain.Community, bool) {
	if c, ok := rows.Find(func(c domain.Community) bool { return c.ID == id }); ok {
		return c, true
	}
	c, err := a.API.GetCommunity(r.Context(), id)
	if err != nil {
		a.log(r).Warn().Err(err).Str("community_id", id).Msg("load community")
		return domain.Community{}, false
	}
	return *c, true
}

func (a *App) CreateCommunity(w http.ResponseWriter, r *http.Request) {
	form, err := forms.CommunityFromRequest(r)
	if err == nil {
		err = form.Validate()
	}
	if err != nil {
		a.fail(w, r, communitiesPath, validationMessage(err, "Failed to save community"))
		return
	}
	if _, err := a.API.CreateCommunity(r.Context(), form.Input()); err != nil {
		a.log(r).Error().Err(err).Msg("create community")
		a.fail(w, r, communitiesPath, "Failed to save community")
		return
	}
	a.done(w, r, communitiesPath, "Community created successfully")
}

func (a *App) UpdateCommunity(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	form, err := forms.CommunityFromRequest(r)
	if err == nil {
		err = form.Validate()
	}
	if err != nil {
		a.fail(w, r, communitiesPath, validationMessage(err, "Failed to save community"))
		return
	}
	if _, err := a.API.UpdateCommunity(r.Context(), id, form.Update()); err != nil {
		a.log(r).Error().Err(err).Str("community_id", id).Msg("update community")
		a.fail(w, r, communitiesPath, "Failed to save community")
		return
	}
	a.done(w, r, communitiesPath, "Community updated successfully")
}

func (a *App) DeleteCommunity(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := a.API.DeleteCommunity(r.Context(), id); err != nil {
		a.log(r).Error().Err(err).Str("community_id", id).Msg("delete community")
		a.fail(w, r, communitiesPath, "Failed to delete community")
		return
	}
	a.done(w, r, communitiesPath, "Community deleted successfully")
}
