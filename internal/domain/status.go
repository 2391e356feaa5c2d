package domain

// Variant is the visual tone a status badge is rendered with.
type Variant string

const (
	VariantDefault Variant = "default"
	VariantSuccess Variant = "success"
	VariantWarning Variant = "warning"
	VariantError   Variant = "error"
	VariantInfo    Variant = "info"
)

// ActiveVariant maps an is_active flag to its badge label and tone.
func ActiveVariant(active bool) (string, Variant) {
	if active {
		return "Active", VariantSuccess
	}
	return "Inactive", VariantError
}
