package view

import (
	"fmt"
	"html/template"

	"admin/internal/domain"
)

// Badge is a coloured status pill.
type Badge struct {
	Label   string
	Variant domain.Variant
}

type variantOf interface {
	Variant() domain.Variant
}

// StatusBadge builds the badge for a commission or withdrawal status.
func StatusBadge(status any) Badge {
	label := Title(fmt.Sprint(status))
	if v, ok := status.(variantOf); ok {
		return Badge{Label: label, Variant: v.Variant()}
	}
	return Badge{Label: label, Variant: domain.VariantDefault}
}

// ActiveBadge builds the badge for an is_active flag.
func ActiveBadge(active bool) Badge {
	label, variant := domain.ActiveVariant(active)
	return Badge{Label: label, Variant: variant}
}

var funcs = template.FuncMap{
	"status": StatusBadge,
	"active": ActiveBadge,
	"title":  Title,
	"yesno": func(b bool) string {
		if b {
			return "Yes"
		}
		return "No"
	},
	"inc": func(n int) int { return n + 1 },
}
