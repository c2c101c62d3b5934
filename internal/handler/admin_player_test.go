package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Reforge_Go/internal/domain"
	"github.com/osse101/Reforge_Go/internal/inventory"
)

func playerRouter(gw inventory.Gateway, econ Depositor) *chi.Mux {
	r := chi.NewRouter()
	r.Put("/admin/players/{player_id}/slots/{slot}", HandleSetSlot(gw))
	r.Post("/admin/players/{player_id}/deposit", HandleDeposit(econ))
	return r
}

func TestHandleSetSlot(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		slot   string
		body   string
		status int
		check  func(t *testing.T, gw *inventory.Memory)
	}{
		{
			name:   "container slot",
			slot:   "3",
			body:   `{"item_id":"Weapon_Sword_Iron","quantity":1}`,
			status: http.StatusOK,
			check: func(t *testing.T, gw *inventory.Memory) {
				stack, err := gw.SlotAt(ctx, testPlayer, 3)
				require.NoError(t, err)
				assert.Equal(t, "Weapon_Sword_Iron", stack.ItemID)
			},
		},
		{
			name:   "held item keeps tag",
			slot:   "-1",
			body:   `{"item_id":"Armor_Iron_Chest","quantity":1,"level":2}`,
			status: http.StatusOK,
			check: func(t *testing.T, gw *inventory.Memory) {
				stack, err := gw.HeldItem(ctx, testPlayer)
				require.NoError(t, err)
				assert.Equal(t, domain.ItemStack{ItemID: "Armor_Iron_Chest", Quantity: 1, Level: 2}, stack)
			},
		},
		{
			name:   "zero quantity clears",
			slot:   "0",
			body:   `{"item_id":"","quantity":0}`,
			status: http.StatusOK,
			check: func(t *testing.T, gw *inventory.Memory) {
				stack, err := gw.SlotAt(ctx, testPlayer, 0)
				require.NoError(t, err)
				assert.True(t, stack.IsEmpty())
			},
		},
		{name: "slot out of range", slot: "99", body: `{"item_id":"Weapon_Sword_Iron","quantity":1}`, status: http.StatusBadRequest},
		{name: "bad slot", slot: "x", body: `{}`, status: http.StatusBadRequest},
		{name: "item id with spaces", slot: "1", body: `{"item_id":"Iron Sword","quantity":1}`, status: http.StatusBadRequest},
		{name: "negative quantity", slot: "1", body: `{"item_id":"Weapon_Sword_Iron","quantity":-1}`, status: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			gw := inventory.NewMemory(9, true)
			require.NoError(t, gw.SetSlot(ctx, testPlayer, 0, domain.ItemStack{ItemID: "Ingredient_Bar_Iron", Quantity: 5}))
			req := httptest.NewRequest(http.MethodPut, "/admin/players/"+testPlayer.String()+"/slots/"+tt.slot, bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			// ACT
			playerRouter(gw, &MockDepositor{}).ServeHTTP(w, req)

			// ASSERT
			assert.Equal(t, tt.status, w.Code)
			if tt.check != nil {
				tt.check(t, gw)
			}
		})
	}
}

func TestHandleSetSlot_BadPlayer(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/admin/players/steve/slots/0", bytes.NewBufferString(`{"item_id":"A","quantity":1}`))

	playerRouter(inventory.NewMemory(9, false), &MockDepositor{}).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgInvalidPlayerID)
}

func TestHandleDeposit(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		econ := &MockDepositor{}
		econ.On("Deposit", mock.Anything, testPlayer, 250.0, DepositReason).Return(nil)
		econ.On("Balance", mock.Anything, testPlayer).Return(1250.0, nil)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/admin/players/"+testPlayer.String()+"/deposit", bytes.NewBufferString(`{"amount":250}`))

		playerRouter(inventory.NewMemory(9, false), econ).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"balance":1250`)
		econ.AssertExpectations(t)
	})

	t.Run("Non Positive Amount", func(t *testing.T) {
		econ := &MockDepositor{}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/admin/players/"+testPlayer.String()+"/deposit", bytes.NewBufferString(`{"amount":0}`))

		playerRouter(inventory.NewMemory(9, false), econ).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		econ.AssertNotCalled(t, "Deposit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Economy Unavailable", func(t *testing.T) {
		econ := &MockDepositor{}
		econ.On("Deposit", mock.Anything, testPlayer, 10.0, DepositReason).Return(domain.ErrEconomyUnavailable)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/admin/players/"+testPlayer.String()+"/deposit", bytes.NewBufferString(`{"amount":10}`))

		playerRouter(inventory.NewMemory(9, false), econ).ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
