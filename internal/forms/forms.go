// Package forms parses and validates the dashboard's mutation forms.
package forms

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gookit/validate"

	"admin/internal/domain"
)

// Errors collects the messages of every failed rule.
type Errors struct {
	Messages []string
}

func (e *Errors) Error() string {
	return strings.Join(e.Messages, "; ")
}

func (e *Errors) Unwrap() error {
	return domain.ErrInvalidInput
}

func check(payload any) error {
	v := validate.Struct(payload)
	if v.Validate() {
		return nil
	}
	out := &Errors{}
	for _, errs := range v.Errors.All() {
		for _, msg := range errs {
			out.Messages = append(out.Messages, msg)
		}
	}
	return out
}

func field(r *http.Request, name string) string {
	return strings.TrimSpace(r.PostFormValue(name))
}

func checkbox(r *http.Request, name string) bool {
	switch strings.ToLower(field(r, name)) {
	case "on", "true", "1", "yes":
		return true
	default:
		return false
	}
}

func parseFloat(raw string) (float64, bool) {
	if raw == "" {
		return 0, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	return f, err == nil
}
