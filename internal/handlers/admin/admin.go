package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/GlebRadaev/rebox/internal/domain"
	"github.com/GlebRadaev/rebox/internal/dto"
	"github.com/GlebRadaev/rebox/pkg/utils"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxDescriptionLen = 255

type Service interface {
	Adjust(ctx context.Context, userID int, points int64, description string) (*domain.LedgerEntry, error)
	Reconcile(ctx context.Context, userID int) (*domain.RewardsAggregate, error)
}

// LevelResolver names the level held at a lifetime points total.
type LevelResolver interface {
	LevelFor(lifetime int64) domain.Level
}

type AdminHandler struct {
	ledger Service
	levels LevelResolver
}

func New(ledger Service, levels LevelResolver) *AdminHandler {
	return &AdminHandler{
		ledger: ledger,
		levels: levels,
	}
}

// Adjust godoc
//
//	@Summary		Adjust points
//	@Description	Append a signed ADJUSTMENT entry to a user's ledger. A debit may not take available points below zero.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.AdjustRequestDTO	true	"Adjustment"
//	@Success		200		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient points"
//	@Failure		403		{object}	utils.Response	"Admin role required"
//	@Failure		404		{object}	utils.Response	"Rewards account not found"
//	@Failure		422		{object}	utils.Response	"Invalid amount"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/rewards/adjust [post]
func (h *AdminHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	var req dto.AdjustRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Description = strings.TrimSpace(req.Description)
	if req.UserID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "userId is required")
		return
	}
	if req.Description == "" || len(req.Description) > maxDescriptionLen {
		utils.RespondWithError(w, http.StatusBadRequest, "description must be 1 to 255 characters long")
		return
	}

	entry, err := h.ledger.Adjust(r.Context(), req.UserID, req.Points, req.Description)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TransactionResponseDTO{
		ID:          entry.ID,
		Type:        string(entry.Type),
		Points:      entry.Points,
		Description: entry.Description,
		CreatedAt:   entry.CreatedAt,
	})
}

// Reconcile godoc
//
//	@Summary		Reconcile rewards aggregate
//	@Description	Recompute a user's available and lifetime points from the ledger and overwrite the cached aggregate
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			userID	path		int	true	"User ID"
//	@Success		200		{object}	dto.AggregateResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid user ID"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin role required"
//	@Failure		404		{object}	utils.Response	"Rewards account not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/rewards/{userID}/reconcile [post]
func (h *AdminHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil || userID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	agg, err := h.ledger.Reconcile(r.Context(), userID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AggregateResponseDTO{
		UserID:          agg.UserID,
		AvailablePoints: agg.AvailablePoints,
		LifetimePoints:  agg.LifetimePoints,
		Level:           h.levels.LevelFor(agg.LifetimePoints).Name,
	})
}

func respondWithDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrInsufficientPoints):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Rewards account not found")
	default:
		zap.L().Error("admin request failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
