package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"admin/internal/affiliate"
	"admin/internal/domain"
	"admin/internal/infra"
	"admin/internal/middleware"
	"admin/internal/view"
)

const loadFailed = "Failed to load data"

type App struct {
	API      *affiliate.Client
	Views    *view.Renderer
	Logger   *infra.Logger
	PageSize int
}

func NewApp(api *affiliate.Client, views *view.Renderer, logger *infra.Logger, pageSize int) *App {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	if pageSize <= 0 {
		pageSize = 10
	}
	return &App{API: api, Views: views, Logger: logger, PageSize: pageSize}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// log prefers the request-scoped logger set by the access log middleware.
func (a *App) log(r *http.Request) *zerolog.Logger {
	if l := zerolog.Ctx(r.Context()); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return a.Logger
}

type pageMeta struct {
	name        string
	title       string
	description string
}

func (a *App) render(w http.ResponseWriter, r *http.Request, status int, meta pageMeta, data any, errMsg string) {
	locale := middleware.LocaleFromContext(r.Context())
	a.Views.Render(w, status, meta.name, view.Page{
		Title:       meta.title,
		Description: meta.description,
		Path:        r.URL.Path,
		Locale:      locale,
		Fmt:         view.NewFormatter(locale),
		Flash:       view.PopFlash(w, r),
		Error:       errMsg,
		Data:        data,
	})
}

// listQuery is the list state of the current page without the locale override.
func listQuery(r *http.Request) view.Query {
	return view.NewQuery(r.URL.Path, r.URL.Query()).Without("lang")
}

func (a *App) pagination(q view.Query, param string) domain.Pagination {
	return domain.Pagination{Page: q.Int(param, domain.DefaultPage), Limit: a.PageSize}
}

// done flashes a success message and returns to the list the form came from.
func (a *App) done(w http.ResponseWriter, r *http.Request, fallback, message string) {
	view.SetFlash(w, view.FlashSuccess, message)
	http.Redirect(w, r, localTarget(r.PostFormValue("return"), fallback), http.StatusSeeOther)
}

// fail flashes a failure message and goes back to the dialog the form was posted from.
func (a *App) fail(w http.ResponseWriter, r *http.Request, fallback, message string) {
	view.SetFlash(w, view.FlashError, message)
	target := localTarget(r.PostFormValue("retry"), "")
	if target == "" {
		target = localTarget(r.PostFormValue("return"), fallback)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// localTarget accepts only dashboard paths so a posted return value cannot redirect off-site.
func localTarget(raw, fallback string) string {
	if raw == "" || !strings.HasPrefix(raw, "/admin") || strings.HasPrefix(raw, "//") || strings.ContainsAny(raw, "\\\r\n") {
		return fallback
	}
	return raw
}

// optionalBool maps "true"/"false" to a flag; anything else (including "all") means unset.
func optionalBool(v string) *bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true":
		t := true
		return &t
	case "false":
		f := false
		return &f
	default:
		return nil
	}
}

// selfURL is the current request URL without the locale override, used to reopen a dialog
// after a failed submission.
func selfURL(r *http.Request) string {
	values := r.URL.Query()
	values.Del("lang")
	if len(values) == 0 {
		return r.URL.Path
	}
	return r.URL.Path + "?" + values.Encode()
}
