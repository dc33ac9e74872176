package controllers

import (
	"net/http"
	"strings"

	"github.com/luciaferrante/roomvibe-backend/api/middleware"
	"github.com/luciaferrante/roomvibe-backend/api/responses"
	"github.com/luciaferrante/roomvibe-backend/api/validators"
	"github.com/luciaferrante/roomvibe-backend/internal/designs"
	pkgerrors "github.com/luciaferrante/roomvibe-backend/pkg/errors"
	"github.com/luciaferrante/roomvibe-backend/pkg/logger"
	"github.com/luciaferrante/roomvibe-backend/pkg/pagination"
	"github.com/luciaferrante/roomvibe-backend/pkg/types"
)

type saveDesignPayload struct {
	Room      string           `json:"room" validate:"required"`
	Category  string           `json:"category" validate:"required"`
	Selection types.StringList `json:"selection" validate:"required,min=1"`
}

// SaveDesign upserts the caller's selections for one (room, category) slot.
// Re-saving the same slot replaces the stored selections rather than adding a
// second record.
func SaveDesign(svc designs.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "designs service unavailable"))
			return
		}

		var payload saveDesignPayload
		if validators.IsFormRequest(r) {
			if err := decodeSaveDesignForm(r, &payload); err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
		} else if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		dto, err := svc.Save(ctx, middleware.UserIDFromContext(ctx), designs.SaveRequest{
			Room:       payload.Room,
			Category:   payload.Category,
			Selections: payload.Selection,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}

// GetUserChoices lists every stored selection for the caller. Anonymous
// callers get an empty list, the same shape the frontend renders for a fresh
// account. Clients with large histories can opt into cursor pagination via
// limit/cursor query parameters.
func GetUserChoices(svc designs.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "designs service unavailable"))
			return
		}

		userID := middleware.UserIDFromContext(ctx)
		query := r.URL.Query()

		if query.Get("limit") != "" || query.Get("cursor") != "" {
			limit, err := validators.ParseQueryInt(r, "limit", 0, 1, pagination.MaxLimit)
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}

			dtos, next, err := svc.ListPageForUser(ctx, userID, pagination.Params{
				Limit:  limit,
				Cursor: strings.TrimSpace(query.Get("cursor")),
			})
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}

			responses.WriteSuccess(w, map[string]any{
				"items":       dtos,
				"next_cursor": next,
			})
			return
		}

		dtos, err := svc.ListForUser(ctx, userID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, dtos)
	}
}

func decodeSaveDesignForm(r *http.Request, dest *saveDesignPayload) error {
	if err := validators.ParseForm(r); err != nil {
		return err
	}
	dest.Room = validators.FormValue(r, "room")
	dest.Category = validators.FormValue(r, "category")
	dest.Selection = types.StringList(validators.FormValues(r, "selection"))
	return validators.ValidateStruct(dest)
}
