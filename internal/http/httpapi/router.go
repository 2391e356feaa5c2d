package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"admin/internal/http/handlers"
	"admin/internal/infra"
	appmw "admin/internal/middleware"
	"admin/internal/view"
)

// Options carries the router-level knobs.
type Options struct {
	DefaultLocale   string
	CountryLookup   appmw.CountryLookup
	RateLimitPerMin int
	// TrustProxy lets X-Forwarded-For and X-Real-IP replace RemoteAddr.
	TrustProxy      bool
}

func NewRouter(app *handlers.App, logger *infra.Logger, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(appmw.RequestID)
	if opts.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(
		middleware.Recoverer,
		appmw.Logger(*logger),
		appmw.I18N(opts.DefaultLocale, opts.CountryLookup),
	)

	r.Get("/v1/healthz", app.Health)
	r.Handle("/static/*", http.StripPrefix("/static/", view.Static()))
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/admin", http.StatusFound)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Get("/", app.Dashboard)
		r.Get("/affiliate-links", app.AffiliateLinks)
		r.Get("/commissions", app.Commissions)
		r.Get("/users", app.Users)
		r.Get("/communities", app.Communities)
		r.Get("/withdrawals", app.Withdrawals)

		r.Group(func(r chi.Router) {
			r.Use(appmw.RateLimit(opts.RateLimitPerMin, time.Minute))
			r.Post("/commissions/approve", app.ApproveCommissions)
			r.Post("/communities", app.CreateCommunity)
			r.Post("/communities/{id}", app.UpdateCommunity)
			r.Post("/communities/{id}/delete", app.DeleteCommunity)
			r.Post("/customers/assign-community", app.AssignCustomer)
			r.Post("/customers/remove-community", app.RemoveCustomer)
			r.Post("/withdrawals/{id}/process", app.ProcessWithdrawal)
		})
	})

	return r
}
