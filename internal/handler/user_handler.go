package handler

import (
	"net/http"

	"quillpad-server/internal/middleware"
	"quillpad-server/pkg/response"
)

// Me returns the authenticated account. Accounts are immutable after
// registration, so this is the whole user surface.
func Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	if user == nil {
		response.Unauthorized(w, "unauthorized")
		return
	}

	response.Success(w, user)
}
