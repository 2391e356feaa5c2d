package affiliate

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"testing"
)

type capturedRequest struct {
	method string
	path   string
	query  string
	header http.Header
	body   []byte
}

type responseStub struct {
	status int
	body   []byte
}

// captureTransport records every request and replies with canned responses keyed by
// "METHOD path".
type captureTransport struct {
	mu        sync.Mutex
	requests  []capturedRequest
	responses map[string]responseStub
}

func newCaptureTransport() *captureTransport {
	return &captureTransport{responses: map[string]responseStub{}}
}

func (c *captureTransport) setJSON(method, path string, status int, payload any) {
	raw, _ := json.Marshal(payload)
	c.responses[method+" "+path] = responseStub{status: status, body: raw}
}

func (c *captureTransport) setData(method, path string, data any) {
	c.setJSON(method, path, http.StatusOK, map[string]any{"code": 200, "data": data, "message": "ok"})
}

func (c *captureTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
	}
	c.mu.Lock()
	c.requests = append(c.requests, capturedRequest{
		method: req.Method,
		path:   req.URL.Path,
		query:  req.URL.RawQuery,
		header: req.Header.Clone(),
		body:   body,
	})
	stub, ok := c.responses[req.Method+" "+req.URL.Path]
	c.mu.Unlock()
	if !ok {
		stub = responseStub{status: http.StatusNotFound, body: []byte(`{"code":404,"message":"route not stubbed"}`)}
	}
	return &http.Response{
		StatusCode: stub.status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewReader(stub.body)),
		Request:    req,
	}, nil
}

func (c *captureTransport) last(t *testing.T) capturedRequest {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.requests) == 0 {
		t.Fatalf("no request captured")
	}
	return c.requests[len(c.requests)-1]
}

func (c *captureTransport) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.requests)
}

func newTestClient(t *testing.T, transport *captureTransport, opts ...func(*Options)) *Client {
	t.Helper()
	o := Options{
		BaseURL:    "https://api.example.com/api/",
		HTTPClient: &http.Client{Transport: transport},
	}
	for _, fn := range opts {
		fn(&o)
	}
	client, err := NewClient(o)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func decodeBody(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("decode body %q: %v", raw, err)
	}
	return m
}
