package handlers

import (
	"net/http"

	"admin/internal/forms"
)

func (a *App) AssignCustomer(w http.ResponseWriter, r *http.Request) {
	form, err := forms.AssignmentFromRequest(r)
	if err != nil {
		a.fail(w, r, communitiesPath, validationMessage(err, "Failed to assign customer"))
		return
	}
	if err := a.API.AssignCustomerToCommunity(r.Context(), form.CustomerID, form.CommunityID); err != nil {
		a.log(r).Error().Err(err).Str("customer_id", form.CustomerID).Str("community_id", form.CommunityID).Msg("assign customer")
		a.fail(w, r, communitiesPath, "Failed to assign customer")
		return
	}
	a.done(w, r, communitiesPath, "Customer assigned to community successfully")
}

func (a *App) RemoveCustomer(w http.ResponseWriter, r *http.Request) {
	form, err := forms.RemovalFromRequest(r)
	if err != nil {
		a.fail(w, r, communitiesPath, validationMessage(err, "Failed to remove customer"))
		return
	}
	if err := a.API.RemoveCustomerFromCommunity(r.Context(), form.CustomerID); err != nil {
		a.log(r).Error().Err(err).Str("customer_id", form.CustomerID).Msg("remove customer")
		a.fail(w, r, communitiesPath, "Failed to remove customer")
		return
	}
	a.done(w, r, communitiesPath, "Customer removed from community successfully")
}
