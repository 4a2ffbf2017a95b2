package billdoc

// Field merging between the explicitly entered BL form and values derived
// from the shipment's linked address-book records. The form always wins
// when its field is non-empty; the merge is deterministic and performs no
// lookups of its own.

// firstNonEmpty returns the first of its arguments that is not "".
func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// MergeParty overlays the form party on the derived party field by field.
func MergeParty(form, derived Party) Party {
	return Party{
		CompanyName: firstNonEmpty(form.CompanyName, derived.CompanyName),
		Address:     firstNonEmpty(form.Address, derived.Address),
		Phone:       firstNonEmpty(form.Phone, derived.Phone),
		Email:       firstNonEmpty(form.Email, derived.Email),
	}
}
