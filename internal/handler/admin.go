package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/Reforge_Go/internal/domain"
	"github.com/osse101/Reforge_Go/internal/i18n"
	"github.com/osse101/Reforge_Go/internal/logger"
	"github.com/osse101/Reforge_Go/internal/progression"
)

// ConfigManager is the progression table owner the admin routes edit
type ConfigManager interface {
	progression.Source
	Reload(ctx context.Context) error
	Update(ctx context.Context, mutations ...progression.Mutation) (*progression.Table, error)
}

// GeneralRequest patches the general section. Absent fields stay unchanged;
// numeric values are clamped to their allowed ranges.
type GeneralRequest struct {
	MaxLevel                 *int     `json:"max_level"`
	FailureReturnRate        *float64 `json:"failure_return_rate"`
	ProtectionEnabled        *bool    `json:"protection_enabled"`
	ProtectionCostMultiplier *float64 `json:"protection_cost_multiplier"`
	Debug                    *bool    `json:"debug"`
	Language                 *string  `json:"language"`
	MessagePrefix            *string  `json:"message_prefix"`
}

// LevelRequest patches one level; materials, when present, replace the list
type LevelRequest struct {
	SuccessChance *float64                     `json:"success_chance"`
	CoinCost      *float64                     `json:"coin_cost"`
	WeaponBonus   *float64                     `json:"weapon_bonus"`
	ArmorBonus    *float64                     `json:"armor_bonus"`
	Materials     []domain.MaterialRequirement `json:"materials" validate:"omitempty,dive"`
}

type PatternRequest struct {
	Pattern string `json:"pattern" validate:"max=128"`
}

type RecipeRequest struct {
	ItemID    string                       `json:"item_id" validate:"item_id"`
	Materials []domain.MaterialRequirement `json:"materials" validate:"required,min=1,dive"`
}

type NameRequest struct {
	Name string `json:"name" validate:"max=64"`
}

type RecipeResponse struct {
	ItemID string `json:"item_id"`
}

// HandleGetConfig returns the live progression table
// @Summary Get reforge config
// @Tags admin
// @Produce json
// @Success 200 {object} progression.Table
// @Router /admin/config [get]
// @Security ApiKeyAuth
func HandleGetConfig(config progression.Source) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, config.Current())
	}
}

// HandleReloadConfig re-reads the config file. A failed reload keeps the
// previous table live.
// @Summary Reload reforge config
// @Tags admin
// @Produce json
// @Success 200 {object} DataResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/config/reload [post]
// @Security ApiKeyAuth
func HandleReloadConfig(mgr ConfigManager, catalog *i18n.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		if err := mgr.Reload(r.Context()); err != nil {
			log.Error(ErrMsgReloadConfigFailed, "error", err)
			lang := resolveLanguage(r, catalog, "", mgr.Current())
			respondError(w, http.StatusInternalServerError, catalog.Translate(lang, i18n.KeyReloadFailed))
			return
		}

		table := mgr.Current()
		log.Info(LogMsgConfigReloaded, "levels", len(table.Levels))
		respondJSON(w, http.StatusOK, DataResponse{
			Message: catalog.Translate(resolveLanguage(r, catalog, "", table), i18n.KeyReloadSuccess),
			Data:    table,
		})
	}
}

// HandleUpdateGeneral patches the general section
// @Summary Update general settings
// @Tags admin
// @Accept json
// @Produce json
// @Param request body GeneralRequest true "Fields to change"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/config/general [patch]
// @Security ApiKeyAuth
func HandleUpdateGeneral(mgr ConfigManager, catalog *i18n.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GeneralRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update general config"); err != nil {
			return
		}

		var mutations []progression.Mutation
		if req.MaxLevel != nil {
			mutations = append(mutations, progression.SetMaxLevel(*req.MaxLevel))
		}
		if req.FailureReturnRate != nil {
			mutations = append(mutations, progression.SetFailureReturnRate(*req.FailureReturnRate))
		}
		if req.ProtectionEnabled != nil {
			mutations = append(mutations, progression.SetProtectionEnabled(*req.ProtectionEnabled))
		}
		if req.ProtectionCostMultiplier != nil {
			mutations = append(mutations, progression.SetProtectionCostMultiplier(*req.ProtectionCostMultiplier))
		}
		if req.Debug != nil {
			mutations = append(mutations, progression.SetDebug(*req.Debug))
		}
		if req.Language != nil {
			if !catalog.IsSupported(*req.Language) {
				respondError(w, http.StatusBadRequest, ErrMsgUnsupportedLanguage)
				return
			}
			mutations = append(mutations, progression.SetLanguage(*req.Language))
		}
		if req.MessagePrefix != nil {
			mutations = append(mutations, progression.SetMessagePrefix(*req.MessagePrefix))
		}

		applyMutations(w, r, mgr, catalog, mutations...)
	}
}

// HandleUpdateLevel patches one level, creating it when missing
// @Summary Update level
// @Tags admin
// @Accept json
// @Produce json
// @Param level path int true "Target level"
// @Param request body LevelRequest true "Fields to change"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/config/levels/{level} [put]
// @Security ApiKeyAuth
func HandleUpdateLevel(mgr ConfigManager, catalog *i18n.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		level, ok := urlInt(r, w, ParamLevel, ErrMsgInvalidLevel)
		if !ok {
			return
		}
		var req LevelRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update level"); err != nil {
			return
		}

		var mutations []progression.Mutation
		if req.SuccessChance != nil {
			mutations = append(mutations, progression.SetLevelChance(level, *req.SuccessChance))
		}
		if req.CoinCost != nil {
			mutations = append(mutations, progression.SetLevelCost(level, *req.CoinCost))
		}
		if req.WeaponBonus != nil {
			mutations = append(mutations, progression.SetLevelWeaponBonus(level, *req.WeaponBonus))
		}
		if req.ArmorBonus != nil {
			mutations = append(mutations, progression.SetLevelArmorBonus(level, *req.ArmorBonus))
		}
		if req.Materials != nil {
			mutations = append(mutations, progression.SetLevelMaterials(level, req.Materials))
		}

		applyMutations(w, r, mgr, catalog, mutations...)
	}
}

// HandleDeleteLevel removes a level; lookups fall back to the level below
func HandleDeleteLevel(mgr ConfigManager, catalog *i18n.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		level, ok := urlInt(r, w, ParamLevel, ErrMsgInvalidLevel)
		if !ok {
			return
		}
		applyMutations(w, r, mgr, catalog, progression.RemoveLevel(level))
	}
}

// HandleAddPattern appends to a pattern list. A blank pattern becomes "New_*".
// @Summary Add pattern
// @Tags admin
// @Accept json
// @Produce json
// @Param list path string true "weapons, armor or exclusions"
// @Param request body PatternRequest true "Pattern"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/config/patterns/{list} [post]
// @Security ApiKeyAuth
func HandleAddPattern(mgr ConfigManager, catalog *i18n.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, ok := patternList(w, r)
		if !ok {
			return
		}
		var req PatternRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add pattern"); err != nil {
			return
		}
		applyMutations(w, r, mgr, catalog, progression.AddPattern(list, req.Pattern))
	}
}

// HandleReplacePattern overwrites the pattern at ?index=
func HandleReplacePattern(mgr ConfigManager, catalog *i18n.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, ok := patternList(w, r)
		if !ok {
			return
		}
		index, ok := queryInt(r, w, ParamIndex, ErrMsgInvalidIndex)
		if !ok {
			return
		}
		var req PatternRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Replace pattern"); err != nil {
			return
		}
		applyMutations(w, r, mgr, catalog, progression.ReplacePattern(list, index, req.Pattern))
	}
}

// HandleRemovePattern drops the pattern at ?index=
func HandleRemovePattern(mgr ConfigManager, catalog *i18n.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, ok := patternList(w, r)
		if !ok {
			return
		}
		index, ok := queryInt(r, w, ParamIndex, ErrMsgInvalidIndex)
		if !ok {
			return
		}
		applyMutations(w, r, mgr, catalog, progression.RemovePattern(list, index))
	}
}

// HandleAddRecipe stores a refund recipe under a generated Custom_Item_N
// key when item_id is blank
func HandleAddRecipe(mgr ConfigManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RecipeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add reverse recipe"); err != nil {
			return
		}

		var key string
		if _, err := mgr.Update(r.Context(), progression.AddReverseRecipe(req.ItemID, req.Materials, &key)); err != nil {
			respondAdminError(w, r, ErrMsgUpdateConfigFailed, err)
			return
		}
		logger.FromContext(r.Context()).Info(LogMsgConfigUpdated, "recipe", key)
		respondJSON(w, http.StatusCreated, RecipeResponse{ItemID: key})
	}
}

// HandlePutRecipe stores the refund recipe of one item
// @Summary Set reverse recipe
// @Tags admin
// @Accept json
// @Produce json
// @Param item path string true "Item id"
// @Param request body RecipeRequest true "Materials"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/config/recipes/{item} [put]
// @Security ApiKeyAuth
func HandlePutRecipe(mgr ConfigManager, catalog *i18n.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item := chi.URLParam(r, ParamItem)
		var req RecipeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set reverse recipe"); err != nil {
			return
		}
		applyMutations(w, r, mgr, catalog, progression.AddReverseRecipe(item, req.Materials, nil))
	}
}

func HandleDeleteRecipe(mgr ConfigManager, catalog *i18n.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		applyMutations(w, r, mgr, catalog, progression.RemoveReverseRecipe(chi.URLParam(r, ParamItem)))
	}
}

// HandlePutItemName overrides the display name of an item; a blank name
// removes the override
func HandlePutItemName(mgr ConfigManager, catalog *i18n.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req NameRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set item name"); err != nil {
			return
		}
		applyMutations(w, r, mgr, catalog, progression.SetCustomItemName(chi.URLParam(r, ParamItem), req.Name))
	}
}

// applyMutations commits mutations in one update and answers with the new table
func applyMutations(w http.ResponseWriter, r *http.Request, mgr ConfigManager, catalog *i18n.Catalog, mutations ...progression.Mutation) {
	table, err := mgr.Update(r.Context(), mutations...)
	if err != nil {
		respondAdminError(w, r, ErrMsgUpdateConfigFailed, err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgConfigUpdated, "mutations", len(mutations))
	respondJSON(w, http.StatusOK, DataResponse{
		Message: catalog.Translate(resolveLanguage(r, catalog, "", table), i18n.KeySaved),
		Data:    table,
	})
}

func patternList(w http.ResponseWriter, r *http.Request) (progression.PatternList, bool) {
	list := chi.URLParam(r, ParamList)
	if err := GetValidator().ValidateVar(list, ValidationTagPatternList); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidPatternList)
		return "", false
	}
	return progression.PatternList(list), true
}
