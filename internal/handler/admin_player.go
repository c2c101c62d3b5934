package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/osse101/Reforge_Go/internal/domain"
	"github.com/osse101/Reforge_Go/internal/inventory"
	"github.com/osse101/Reforge_Go/internal/logger"
)

// Depositor is the economy surface used to fund players
type Depositor interface {
	Deposit(ctx context.Context, player uuid.UUID, amount float64, reason string) error
	Balance(ctx context.Context, player uuid.UUID) (float64, error)
}

// SlotRequest places a stack in a slot; a zero quantity clears it
type SlotRequest struct {
	ItemID   string `json:"item_id" validate:"item_id"`
	Quantity int    `json:"quantity" validate:"min=0"`
	Level    int    `json:"level" validate:"min=0"`
}

type DepositRequest struct {
	Amount float64 `json:"amount" validate:"gt=0"`
}

type BalanceResponse struct {
	PlayerID string  `json:"player_id"`
	Balance  float64 `json:"balance"`
}

// HandleSetSlot writes a stack into a player's slot, -1 for the held item.
// The level only survives on gateways with item tag support.
// @Summary Set inventory slot
// @Tags admin
// @Accept json
// @Produce json
// @Param player_id path string true "Player UUID"
// @Param slot path int true "Slot, -1 for the held item"
// @Param request body SlotRequest true "Stack"
// @Success 200 {object} domain.ItemStack
// @Failure 400 {object} ErrorResponse
// @Router /admin/players/{player_id}/slots/{slot} [put]
// @Security ApiKeyAuth
func HandleSetSlot(gw inventory.Gateway) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player, ok := urlPlayerID(w, r)
		if !ok {
			return
		}
		slot, ok := urlInt(r, w, ParamSlot, ErrMsgInvalidSlot)
		if !ok {
			return
		}
		var req SlotRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set slot"); err != nil {
			return
		}

		stack := domain.ItemStack{ItemID: req.ItemID, Quantity: req.Quantity, Level: req.Level}
		var err error
		if stack.IsEmpty() {
			err = inventory.DestroyAt(r.Context(), gw, player, slot)
		} else {
			err = inventory.ReplaceAt(r.Context(), gw, player, slot, stack)
		}
		if err != nil {
			respondAdminError(w, r, ErrMsgSetSlotFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgSlotSet, "player", player, "slot", slot, "item", stack.ItemID, "quantity", stack.Quantity)
		respondJSON(w, http.StatusOK, stack)
	}
}

// HandleDeposit credits coins to a player through the active economy
// @Summary Deposit coins
// @Tags admin
// @Accept json
// @Produce json
// @Param player_id path string true "Player UUID"
// @Param request body DepositRequest true "Amount"
// @Success 200 {object} BalanceResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/players/{player_id}/deposit [post]
// @Security ApiKeyAuth
func HandleDeposit(econ Depositor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player, ok := urlPlayerID(w, r)
		if !ok {
			return
		}
		var req DepositRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Deposit"); err != nil {
			return
		}

		if err := econ.Deposit(r.Context(), player, req.Amount, DepositReason); err != nil {
			respondAdminError(w, r, ErrMsgDepositFailed, err)
			return
		}
		balance, err := econ.Balance(r.Context(), player)
		if err != nil {
			respondAdminError(w, r, ErrMsgDepositFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgDeposit, "player", player, "amount", req.Amount)
		respondJSON(w, http.StatusOK, BalanceResponse{PlayerID: player.String(), Balance: balance})
	}
}

func urlPlayerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	player, err := uuid.Parse(chi.URLParam(r, ParamPlayerID))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidPlayerID)
		return uuid.Nil, false
	}
	return player, true
}
