package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/osse101/Reforge_Go/internal/domain"
	"github.com/osse101/Reforge_Go/internal/i18n"
	"github.com/osse101/Reforge_Go/internal/logger"
	"github.com/osse101/Reforge_Go/internal/progression"
	"github.com/osse101/Reforge_Go/internal/reforge"
)

// AttemptRequest asks to reforge the item in a slot. Slot -1 is the held item.
type AttemptRequest struct {
	PlayerID      string `json:"player_id" validate:"required,uuid"`
	Slot          int    `json:"slot" validate:"min=-1"`
	UseProtection bool   `json:"use_protection"`
	Lang          string `json:"lang"`
}

type AttemptResponse struct {
	Message string                `json:"message"`
	Result  *domain.AttemptResult `json:"result"`
}

type SlotsResponse struct {
	PlayerID string                   `json:"player_id"`
	Slots    []domain.ReforgeableSlot `json:"slots"`
}

// HandleAttempt runs one reforge attempt
// @Summary Reforge item
// @Description Attempt to raise the reforge level of the item in a slot
// @Tags reforge
// @Accept json
// @Produce json
// @Param request body AttemptRequest true "Attempt details"
// @Success 200 {object} AttemptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Attempt already in progress"
// @Failure 422 {object} ErrorResponse "Max level or unconfigured level"
// @Router /reforge/attempt [post]
func HandleAttempt(svc reforge.Service, catalog *i18n.Catalog, config progression.Source) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req AttemptRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Reforge attempt"); err != nil {
			return
		}
		player := uuid.MustParse(req.PlayerID)
		table := config.Current()
		lang := resolveLanguage(r, catalog, req.Lang, table)

		result, err := svc.Attempt(r.Context(), player, req.Slot, req.UseProtection)
		if err != nil {
			respondRefusal(w, r, catalog, lang, ErrMsgAttemptFailed, err)
			return
		}

		log.Info(LogMsgAttemptResolved,
			"player", player,
			"item", result.ItemID,
			"outcome", result.Outcome,
			"target_level", result.TargetLevel)

		// Funds and materials refusals are results, not errors
		message := catalog.Result(lang, result, result.DisplayName, svc.FormatCurrency)
		respondJSON(w, http.StatusOK, AttemptResponse{
			Message: withPrefix(table.General.MessagePrefix, message),
			Result:  result,
		})
	}
}

// HandlePreview describes the next reforge of the item in a slot without
// touching any state
// @Summary Preview reforge
// @Tags reforge
// @Produce json
// @Param player_id query string true "Player UUID"
// @Param slot query int true "Slot, -1 for the held item"
// @Success 200 {object} domain.Preview
// @Failure 400 {object} ErrorResponse
// @Router /reforge/preview [get]
func HandlePreview(svc reforge.Service, catalog *i18n.Catalog, config progression.Source) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player, ok := queryPlayerID(r, w)
		if !ok {
			return
		}
		slot, ok := queryInt(r, w, ParamSlot, ErrMsgInvalidSlot)
		if !ok {
			return
		}

		preview, err := svc.Preview(r.Context(), player, slot)
		if err != nil {
			respondRefusal(w, r, catalog, resolveLanguage(r, catalog, "", config.Current()), ErrMsgPreviewFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, preview)
	}
}

// HandleSlots lists the reforgeable items of a player
// @Summary List reforgeable slots
// @Tags reforge
// @Produce json
// @Param player_id query string true "Player UUID"
// @Success 200 {object} SlotsResponse
// @Router /reforge/slots [get]
func HandleSlots(svc reforge.Service, catalog *i18n.Catalog, config progression.Source) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player, ok := queryPlayerID(r, w)
		if !ok {
			return
		}

		slots, err := svc.ReforgeableSlots(r.Context(), player)
		if err != nil {
			respondRefusal(w, r, catalog, resolveLanguage(r, catalog, "", config.Current()), ErrMsgListSlotsFailed, err)
			return
		}
		if slots == nil {
			slots = []domain.ReforgeableSlot{}
		}
		respondJSON(w, http.StatusOK, SlotsResponse{PlayerID: player.String(), Slots: slots})
	}
}

func withPrefix(prefix, message string) string {
	if prefix == "" {
		return message
	}
	return prefix + " " + message
}
