// Package view renders the dashboard's server-side HTML pages.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Pages that can be rendered by name.
const (
	PageDashboard   = "dashboard"
	PageLinks       = "links"
	PageCommissions = "commissions"
	PageUsers       = "users"
	PageCommunities = "communities"
	PageWithdrawals = "withdrawals"
)

var pageNames = []string{PageDashboard, PageLinks, PageCommissions, PageUsers, PageCommunities, PageWithdrawals}

// Page is the layout model every view is rendered with.
type Page struct {
	Title       string
	Description string
	Path        string
	Locale      string
	Fmt         Formatter
	Flash       *Flash
	Error       string
	Data        any
}

// Nav returns the sidebar entries with the current one marked.
func (p Page) Nav() []NavItem {
	return Navigation(p.Path)
}

// Renderer holds one parsed template set per page.
type Renderer struct {
	pages  map[string]*template.Template
	logger *zerolog.Logger
}

// New parses the embedded templates.
func New(logger *zerolog.Logger) (*Renderer, error) {
	base, err := template.New("layout").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/partials.html")
	if err != nil {
		return nil, fmt.Errorf("view: parse layout: %w", err)
	}
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("view: clone layout: %w", err)
		}
		if _, err := t.ParseFS(templateFS, "templates/"+name+".html"); err != nil {
			return nil, fmt.Errorf("view: parse %s: %w", name, err)
		}
		pages[name] = t
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Renderer{pages: pages, logger: logger}, nil
}

// Render writes the named page. The page is executed into a buffer first so a template
// failure never leaves a half-written response.
func (v *Renderer) Render(w http.ResponseWriter, status int, name string, p Page) {
	t, ok := v.pages[name]
	if !ok {
		v.logger.Error().Str("page", name).Msg("unknown page")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", p); err != nil {
		v.logger.Error().Err(err).Str("page", name).Msg("render page")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// Static serves the embedded stylesheet and assets.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
