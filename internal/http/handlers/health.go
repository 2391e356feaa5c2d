package handlers

import (
	"net/http"
)

// Health reports liveness. It never calls the affiliate API, so an upstream
// outage does not take the dashboard out of rotation.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"status": "ok", "service": "affiliate-admin"})
}
