package forms

import (
	"net/http"

	"github.com/gookit/validate"

	"admin/internal/domain"
)

// Community is the create/edit community form.
type Community struct {
	Name           string `validate:"required"`
	Description    string
	CommissionRate float64 `validate:"ValidateRate"`
	IsActive       bool
}

// CommunityFromRequest reads a submitted community form. A rate that is not a number
// fails like any other rule.
func CommunityFromRequest(r *http.Request) (Community, error) {
	f := Community{
		Name:        field(r, "name"),
		Description: field(r, "description"),
		IsActive:    checkbox(r, "is_active"),
	}
	rate, ok := parseFloat(field(r, "commission_rate"))
	if !ok {
		return f, &Errors{Messages: []string{"Commission rate must be a number"}}
	}
	f.CommissionRate = rate
	return f, nil
}

// NewCommunity is the form prefilled for creation.
func NewCommunity() Community {
	return Community{CommissionRate: domain.DefaultCommunityRate, IsActive: true}
}

// EditCommunity is the form prefilled from an existing community.
func EditCommunity(c domain.Community) Community {
	return Community{
		Name:           c.Name,
		Description:    c.Description,
		CommissionRate: c.CommissionRate,
		IsActive:       c.IsActive,
	}
}

func (f Community) Messages() map[string]string {
	return validate.MS{
		"Name.required": "Community name is required",
		"ValidateRate":  "Commission rate must be between 0 and 100",
	}
}

func (f Community) ValidateRate(rate float64) bool {
	return rate >= 0 && rate <= 100
}

// Validate checks the name and the rate bounds.
func (f Community) Validate() error {
	return check(&f)
}

// Input is the create payload.
func (f Community) Input() domain.CommunityInput {
	return domain.CommunityInput{Name: f.Name, Description: f.Description, CommissionRate: f.CommissionRate}
}

// Update is the update payload.
func (f Community) Update() domain.CommunityUpdate {
	return domain.CommunityUpdate{
		Name:           f.Name,
		Description:    f.Description,
		CommissionRate: f.CommissionRate,
		IsActive:       f.IsActive,
	}
}
