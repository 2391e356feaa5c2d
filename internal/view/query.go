package view

import (
	"net/url"
	"strconv"
)

// Query is the list state of a page (filters, page number, open dialog) used to build
// links that change one parameter and keep the rest.
type Query struct {
	path   string
	values url.Values
}

// NewQuery copies the values so later edits do not leak into the request.
func NewQuery(path string, values url.Values) Query {
	cp := make(url.Values, len(values))
	for k, v := range values {
		if len(v) > 0 && v[0] != "" {
			cp[k] = []string{v[0]}
		}
	}
	return Query{path: path, values: cp}
}

// Get returns a parameter value.
func (q Query) Get(key string) string {
	return q.values.Get(key)
}

// Int returns a positive integer parameter or the fallback.
func (q Query) Int(key string, fallback int) int {
	n, err := strconv.Atoi(q.values.Get(key))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// Set returns a copy with the given key/value pairs applied; an empty value removes the key.
func (q Query) Set(pairs ...string) Query {
	cp := NewQuery(q.path, q.values)
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			cp.values.Del(pairs[i])
			continue
		}
		cp.values.Set(pairs[i], pairs[i+1])
	}
	return cp
}

// Without returns a copy without the given keys.
func (q Query) Without(keys ...string) Query {
	cp := NewQuery(q.path, q.values)
	for _, k := range keys {
		cp.values.Del(k)
	}
	return cp
}

// With is Set followed by URL, for use in templates.
func (q Query) With(pairs ...string) string {
	return q.Set(pairs...).URL()
}

// URL renders the path with its encoded query.
func (q Query) URL() string {
	if len(q.values) == 0 {
		return q.path
	}
	return q.path + "?" + q.values.Encode()
}
