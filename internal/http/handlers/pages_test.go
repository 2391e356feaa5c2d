package handlers

import (
	"net/http"
	"strings"
	"testing"
)

func TestHealth(t *testing.T) {
	app, _ := newTestApp(t)
	rr := serve(http.MethodGet, "/v1/healthz", app.Health, get("/v1/healthz"))
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `"status":"ok"`) ||
		!strings.Contains(rr.Body.String(), `"service":"affiliate-admin"`) {
		t.Fatalf("health = %d %s", rr.Code, rr.Body.String())
	}
}

func TestDashboardRendersSummaryAndCounts(t *testing.T) {
	app, up := newTestApp(t)
	up.on(http.MethodGet, "/admin/affiliate/commissions/summary", map[string]any{
		"total_commissions": 20, "pending_commissions": 4, "approved_commissions": 6, "paid_commissions": 10,
		"total_amount": 1500000, "pending_amount": 250000,
	})
	up.on(http.MethodGet, "/admin/affiliate-links", page([]map[string]any{
		{"id": "l-1", "user_name": "Siti", "code": "SITI10", "clicks": 40, "conversions": 3},
	}, 37, 8))
	up.on(http.MethodGet, "/admin/withdrawals", page([]map[string]any{}, 2, 1))

	rr := serve(http.MethodGet, "/admin", app.Dashboard, get("/admin"))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := rr.Body.String()
	for _, want := range []string{"Rp 1.500.000", "Rp 250.000", "4 pending", ">37<", ">2<", "SITI10"} {
		if !strings.Contains(body, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}

	call, ok := up.find(http.MethodGet, "/admin/withdrawals")
	if !ok || call.query.Get("status") != "pending" || call.query.Get("limit") != "5" {
		t.Fatalf("pending withdrawals call = %+v", call)
	}
	if call, _ := up.find(http.MethodGet, "/admin/affiliate-links"); call.query.Get("limit") != "5" {
		t.Fatalf("recent links limit = %q", call.query.Get("limit"))
	}
}

func TestDashboardToleratesFailedReads(t *testing.T) {
	app, up := newTestApp(t)
	up.fail(http.MethodGet, "/admin/affiliate/commissions/summary", http.StatusInternalServerError)
	up.fail(http.MethodGet, "/admin/affiliate-links", http.StatusBadGateway)
	up.on(http.MethodGet, "/admin/withdrawals", page([]map[string]any{}, 3, 1))

	rr := serve(http.MethodGet, "/admin", app.Dashboard, get("/admin"))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Rp 0") || !strings.Contains(body, "No affiliate links yet") {
		t.Fatalf("failed reads should render zeros and empty lists:\n%s", body)
	}
}

func TestAffiliateLinksPerformanceDialog(t *testing.T) {
	app, up := newTestApp(t)
	up.on(http.MethodGet, "/admin/affiliate-links", page([]map[string]any{
		{"id": "l-1", "user_name": "Siti", "user_email": "siti@example.com", "code": "SITI10", "clicks": 1200, "created_at": "2024-03-07T10:00:00Z"},
	}, 1, 1))
	up.on(http.MethodGet, "/admin/affiliate-links/l-1/performance", map[string]any{
		"id": "l-1", "total_clicks": 1200, "unique_clicks": 900, "conversions": 30, "conversion_rate": 2.5,
		"total_revenue": 3000000, "commission_earned": 300000,
		"daily_stats": []map[string]any{{"date": "2024-03-07", "clicks": 100, "conversions": 2, "revenue": 200000}},
	})

	rr := serve(http.MethodGet, "/admin/affiliate-links", app.AffiliateLinks, get("/admin/affiliate-links?performance=l-1"))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := rr.Body.String()
	for _, want := range []string{"Link Performance", "Rp 300.000", "7/3/2024", "1.200", "2024-03-07"} {
		if !strings.Contains(body, want) {
			t.Errorf("links page missing %q", want)
		}
	}
	if strings.Contains(body, ">Page 1 of 1<") {
		t.Error("pager must be hidden for a single page")
	}
}

func TestAffiliateLinksPerformanceUnavailable(t *testing.T) {
	app, up := newTestApp(t)
	up.on(http.MethodGet, "/admin/affiliate-links", page([]map[string]any{}, 0, 0))

	rr := serve(http.MethodGet, "/admin/affiliate-links", app.AffiliateLinks, get("/admin/affiliate-links?performance=gone"))
	body := rr.Body.String()
	if !strings.Contains(body, "No performance data available") || !strings.Contains(body, "No data available") {
		t.Fatalf("expected empty states:\n%s", body)
	}
}

func TestListFailureRendersBadGateway(t *testing.T) {
	app, up := newTestApp(t)
	up.fail(http.MethodGet, "/admin/withdrawals", http.StatusInternalServerError)

	rr := serve(http.MethodGet, "/admin/withdrawals", app.Withdrawals, get("/admin/withdrawals"))
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), loadFailed) {
		t.Fatal("expected load failure banner")
	}
}

func TestUsersFiltersAreForwarded(t *testing.T) {
	app, up := newTestApp(t)
	up.on(http.MethodGet, "/admin/communities", page([]map[string]any{{"id": "k-1", "name": "Jakarta Resellers", "is_active": true}}, 1, 1))
	up.on(http.MethodGet, "/admin/affiliate/users", page([]map[string]any{
		{"id": "u-1", "name": "Budi", "email": "budi@example.com", "level": "gold", "is_active": true, "total_earnings": 75000, "pending_balance": 5000},
	}, 1, 1))

	target := "/admin/users?search=budi&community_id=k-1&has_affiliate=true&is_active=all&level=gold&view=u-1"
	rr := serve(http.MethodGet, "/admin/users", app.Users, get(target))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}

	call, ok := up.find(http.MethodGet, "/admin/affiliate/users")
	if !ok {
		t.Fatal("users not requested")
	}
	if call.query.Get("search") != "budi" || call.query.Get("community_id") != "k-1" ||
		call.query.Get("has_affiliate") != "true" || call.query.Get("level") != "gold" {
		t.Fatalf("forwarded query = %v", call.query)
	}
	if call.query.Has("is_active") {
		t.Fatalf("is_active=all must not be forwarded: %v", call.query)
	}

	opts, _ := up.find(http.MethodGet, "/admin/communities")
	if opts.query.Get("is_active") != "true" || opts.query.Get("limit") != "100" {
		t.Fatalf("community options query = %v", opts.query)
	}

	body := rr.Body.String()
	for _, want := range []string{"User Details", "Rp 5.000", "Jakarta Resellers", "Gold"} {
		if !strings.Contains(body, want) {
			t.Errorf("users page missing %q", want)
		}
	}
}

func TestPagerLinksKeepFilters(t *testing.T) {
	app, up := newTestApp(t)
	up.on(http.MethodGet, "/admin/withdrawals", page([]map[string]any{}, 25, 3))

	rr := serve(http.MethodGet, "/admin/withdrawals", app.Withdrawals, get("/admin/withdrawals?status=pending&page=2"))
	body := rr.Body.String()
	if !strings.Contains(body, "Page 2 of 3") {
		t.Fatalf("pager text missing:\n%s", body)
	}
	if !strings.Contains(body, `href="/admin/withdrawals?page=3&amp;status=pending"`) {
		t.Fatalf("next link should keep the status filter:\n%s", body)
	}
	call, _ := up.find(http.MethodGet, "/admin/withdrawals")
	if call.query.Get("page") != "2" || call.query.Get("status") != "pending" {
		t.Fatalf("query = %v", call.query)
	}
}
