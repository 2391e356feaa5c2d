package forms

import (
	"net/http"

	"github.com/gookit/validate"
)

// Assignment moves a customer into a community.
type Assignment struct {
	CustomerID  string `validate:"required"`
	CommunityID string `validate:"required"`
}

func (Assignment) Messages() map[string]string {
	return validate.MS{
		"CustomerID.required":  "Customer is required",
		"CommunityID.required": "Community is required",
	}
}

// AssignmentFromRequest reads the assign-customer form.
func AssignmentFromRequest(r *http.Request) (Assignment, error) {
	a := Assignment{CustomerID: field(r, "customer_id"), CommunityID: field(r, "community_id")}
	return a, check(&a)
}

// Removal detaches a customer from its community.
type Removal struct {
	CustomerID string `validate:"required"`
}

func (Removal) Messages() map[string]string {
	return validate.MS{
		"CustomerID.required": "Customer is required",
	}
}

// RemovalFromRequest reads the remove-customer form.
func RemovalFromRequest(r *http.Request) (Removal, error) {
	rm := Removal{CustomerID: field(r, "customer_id")}
	return rm, check(&rm)
}
