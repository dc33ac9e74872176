package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/luciaferrante/roomvibe-backend/api/middleware"
	"github.com/luciaferrante/roomvibe-backend/api/responses"
	"github.com/luciaferrante/roomvibe-backend/internal/users"
	"github.com/luciaferrante/roomvibe-backend/pkg/enums"
)

// Home returns the landing view descriptor. The frontend renders the design
// picker from it; authenticated users additionally get their display name so
// the page can greet them. The name is re-read from the store so a rename
// shows up without logging in again; the session copy is the fallback when
// the lookup fails.
func Home(userLookup users.Finder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		data := map[string]any{
			"view":          "entry",
			"authenticated": false,
			"rooms":         enums.RoomNames(),
			"categories":    enums.CategoryNames(),
		}
		if userID := middleware.UserIDFromContext(ctx); userID != uuid.Nil {
			name := middleware.UserNameFromContext(ctx)
			if userLookup != nil {
				if user, err := userLookup.FindByID(ctx, userID); err == nil {
					name = user.Name
				}
			}
			data["view"] = "choices"
			data["authenticated"] = true
			data["user"] = map[string]string{
				"id":   userID.String(),
				"name": name,
			}
		}

		responses.WriteSuccess(w, data)
	}
}
