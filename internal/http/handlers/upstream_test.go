package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"admin/internal/affiliate"
	"admin/internal/view"
)

type upstreamCall struct {
	method string
	path   string
	query  url.Values
	body   map[string]any
}

type upstreamReply struct {
	status int
	data   any
}

// fakeUpstream is an httptest affiliate API answering canned envelopes keyed by "METHOD path".
type fakeUpstream struct {
	mu      sync.Mutex
	replies map[string]upstreamReply
	calls   []upstreamCall
}

func (u *fakeUpstream) on(method, path string, data any) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.replies[method+" "+path] = upstreamReply{status: http.StatusOK, data: data}
}

func (u *fakeUpstream) fail(method, path string, status int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.replies[method+" "+path] = upstreamReply{status: status}
}

func (u *fakeUpstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api")
	call := upstreamCall{method: r.Method, path: path, query: r.URL.Query()}
	if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
		_ = json.Unmarshal(raw, &call.body)
	}
	u.mu.Lock()
	u.calls = append(u.calls, call)
	reply, ok := u.replies[r.Method+" "+path]
	u.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{"code": 404, "message": "not found"})
		return
	}
	w.WriteHeader(reply.status)
	if reply.status >= 300 {
		_ = json.NewEncoder(w).Encode(map[string]any{"code": reply.status, "message": "upstream failure"})
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"code": 200, "data": reply.data, "message": "ok"})
}

func (u *fakeUpstream) find(method, path string) (upstreamCall, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for i := len(u.calls) - 1; i >= 0; i-- {
		if u.calls[i].method == method && u.calls[i].path == path {
			return u.calls[i], true
		}
	}
	return upstreamCall{}, false
}

func (u *fakeUpstream) count(method, path string) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	n := 0
	for _, c := range u.calls {
		if c.method == method && c.path == path {
			n++
		}
	}
	return n
}

func newTestApp(t *testing.T) (*App, *fakeUpstream) {
	t.Helper()
	up := &fakeUpstream{replies: map[string]upstreamReply{}}
	srv := httptest.NewServer(up)
	t.Cleanup(srv.Close)

	client, err := affiliate.NewClient(affiliate.Options{BaseURL: srv.URL + "/api", HTTPClient: srv.Client()})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	views, err := view.New(nil)
	if err != nil {
		t.Fatalf("view.New: %v", err)
	}
	return NewApp(client, views, nil, 10), up
}

func page(items any, total, totalPages int) map[string]any {
	return map[string]any{"items": items, "total": total, "page": 1, "limit": 10, "total_pages": totalPages}
}

// serve routes one request through a chi router so URL params resolve.
func serve(method, pattern string, h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Method(method, pattern, h)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func get(target string) *http.Request {
	return httptest.NewRequest(http.MethodGet, target, nil)
}

func post(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// flashOf decodes the flash cookie set on a redirect response.
func flashOf(t *testing.T, rr *httptest.ResponseRecorder) *view.Flash {
	t.Helper()
	req := get("/admin")
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
	return view.PopFlash(httptest.NewRecorder(), req)
}
