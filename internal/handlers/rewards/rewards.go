package rewards

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/rebox/internal/domain"
	"github.com/GlebRadaev/rebox/internal/dto"
	"github.com/GlebRadaev/rebox/internal/service/ledgerservice"
	"github.com/GlebRadaev/rebox/pkg/auth"
	"github.com/GlebRadaev/rebox/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const IdempotencyKeyHeader = "Idempotency-Key"

type Service interface {
	GetRewards(ctx context.Context, userID int) (*domain.RewardsSummary, error)
	Redeem(ctx context.Context, req domain.RedeemRequest) (*domain.LedgerEntry, error)
	Leaderboard(ctx context.Context, n int) ([]domain.LeaderboardEntry, error)
	Levels() (int, []domain.Level)
}

// Ledger serves the transaction history.
type Ledger interface {
	Transactions(ctx context.Context, userID, limit, offset int) ([]domain.LedgerEntry, error)
}

type RewardHandler struct {
	rewardService Service
	ledger        Ledger
}

func New(rewardService Service, ledger Ledger) *RewardHandler {
	return &RewardHandler{
		rewardService: rewardService,
		ledger:        ledger,
	}
}

// GetRewards godoc
//
//	@Summary		Get rewards summary
//	@Description	Available and lifetime points, current level and progress to the next one
//	@Tags			Rewards
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.RewardsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Rewards account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/rewards [get]
func (h *RewardHandler) GetRewards(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	summary, err := h.rewardService.GetRewards(r.Context(), userID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	resp := dto.RewardsResponseDTO{
		AvailablePoints:    summary.AvailablePoints,
		LifetimePoints:     summary.LifetimePoints,
		Level:              summary.Level.Name,
		PointsToNextLevel:  summary.PointsToNextLevel,
		Progress:           summary.Progress,
		CurrentLevelConfig: levelDTO(summary.Level),
	}
	if summary.NextLevel != nil {
		next := levelDTO(*summary.NextLevel)
		resp.NextLevel = next.Level
		resp.NextLevelConfig = &next
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetTransactions godoc
//
//	@Summary		List ledger entries
//	@Description	Points history of the authorized user, newest first
//	@Tags			Rewards
//	@Produce		json
//	@Security		BearerAuth
//	@Param			limit	query		int	false	"Page size (1-100, default 20)"
//	@Param			offset	query		int	false	"Entries to skip"
//	@Success		200		{object}	dto.TransactionsResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid pagination parameters"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/rewards/transactions [get]
func (h *RewardHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid offset")
		return
	}

	entries, err := h.ledger.Transactions(r.Context(), userID, limit, offset)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	if limit == 0 {
		limit = ledgerservice.DefaultLimit
	}
	resp := dto.TransactionsResponseDTO{
		Transactions: make([]dto.TransactionResponseDTO, 0, len(entries)),
		Limit:        limit,
		Offset:       offset,
	}
	for _, e := range entries {
		resp.Transactions = append(resp.Transactions, transactionDTO(e))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Redeem godoc
//
//	@Summary		Redeem points
//	@Description	Spend available points on a reward. Points must be a positive multiple of the redemption unit. A repeated request with the same Idempotency-Key returns the original transaction.
//	@Tags			Rewards
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Idempotency-Key	header		string					false	"UUID identifying the request"
//	@Param			request			body		dto.RedeemRequestDTO	true	"Redemption request"
//	@Success		200				{object}	dto.TransactionResponseDTO
//	@Failure		400				{object}	utils.Response	"Invalid request body or idempotency key"
//	@Failure		401				{object}	utils.Response	"User not authorized"
//	@Failure		402				{object}	utils.Response	"Insufficient points"
//	@Failure		409				{object}	utils.Response	"Idempotency key already used"
//	@Failure		422				{object}	utils.Response	"Invalid amount or reward type"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/rewards/redeem [post]
func (h *RewardHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.RedeemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	key := r.Header.Get(IdempotencyKeyHeader)
	if key != "" {
		parsed, err := uuid.Parse(key)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Idempotency-Key must be a UUID")
			return
		}
		key = parsed.String()
	}

	entry, err := h.rewardService.Redeem(r.Context(), domain.RedeemRequest{
		UserID:         userID,
		Points:         req.Points,
		RewardType:     domain.RewardType(req.RewardType),
		IdempotencyKey: key,
	})
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, transactionDTO(*entry))
}

// GetLeaderboard godoc
//
//	@Summary		Leaderboard
//	@Description	Top users by lifetime points
//	@Tags			Rewards
//	@Produce		json
//	@Security		BearerAuth
//	@Param			limit	query	int	false	"Number of entries (1-100, default 10)"
//	@Success		200		{array}		dto.LeaderboardEntryDTO
//	@Failure		400		{object}	utils.Response	"Invalid limit"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/rewards/leaderboard [get]
func (h *RewardHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	n, err := queryInt(r, "limit", 0)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
		return
	}

	rows, err := h.rewardService.Leaderboard(r.Context(), n)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	resp := make([]dto.LeaderboardEntryDTO, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, dto.LeaderboardEntryDTO{
			Rank:           row.Rank,
			UserID:         row.UserID,
			Name:           row.Name,
			Level:          row.Level,
			LifetimePoints: row.LifetimePoints,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetLevels godoc
//
//	@Summary		Level table
//	@Description	Configured reward levels, lowest first
//	@Tags			Rewards
//	@Produce		json
//	@Success		200	{object}	dto.LevelsResponseDTO
//	@Router			/api/rewards/levels [get]
func (h *RewardHandler) GetLevels(w http.ResponseWriter, r *http.Request) {
	version, levels := h.rewardService.Levels()

	resp := dto.LevelsResponseDTO{
		Version: version,
		Levels:  make([]dto.LevelDTO, 0, len(levels)),
	}
	for _, l := range levels {
		resp.Levels = append(resp.Levels, levelDTO(l))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

func levelDTO(l domain.Level) dto.LevelDTO {
	benefits := l.Benefits
	if benefits == nil {
		benefits = []string{}
	}
	return dto.LevelDTO{
		Level:      l.Name,
		MinPoints:  l.MinPoints,
		Multiplier: l.Multiplier,
		Benefits:   benefits,
	}
}

func transactionDTO(e domain.LedgerEntry) dto.TransactionResponseDTO {
	return dto.TransactionResponseDTO{
		ID:          e.ID,
		Type:        string(e.Type),
		Points:      e.Points,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}

func respondWithDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidRewardType),
		errors.Is(err, domain.ErrInvalidEntryType):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrInvalidPagination):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInsufficientPoints):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, domain.ErrIdempotencyKeyReused):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Rewards account not found")
	default:
		zap.L().Error("request failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
