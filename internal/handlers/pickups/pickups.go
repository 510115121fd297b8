package pickups

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/GlebRadaev/rebox/internal/domain"
	"github.com/GlebRadaev/rebox/internal/dto"

	pickupservice "github.com/GlebRadaev/rebox/internal/service/pickupservice"
	"github.com/GlebRadaev/rebox/pkg/auth"
	"github.com/GlebRadaev/rebox/pkg/utils"
	"github.com/GlebRadaev/rebox/pkg/validate"
)

type Service interface {
	RegisterPickup(ctx context.Context, userID int, code string) (*domain.Pickup, error)
	GetPickups(ctx context.Context, userID int) ([]domain.Pickup, error)
}

type PickupHandler struct {
	pickupService Service
}

func New(pickupService Service) *PickupHandler {
	return &PickupHandler{
		pickupService: pickupService,
	}
}

// AddPickup godoc
//
//	@Summary		Register a recycling pickup
//	@Description	Register a pickup by its Luhn-valid pickup code. Points are credited once the logistics system reports it completed.
//	@Tags			Pickups
//	@Accept			text/plain
//	@Produce		json
//	@Param			pickupCode	body	string	true	"Pickup code"
//	@Security		BearerAuth
//	@Success		202	{object}	dto.GetPickupsResponseDTO	"New pickup accepted for processing"
//	@Success		200	{object}	utils.Response				"Pickup already registered by this user"
//	@Failure		400	{object}	utils.Response				"Empty request body"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		409	{object}	utils.Response				"Pickup already registered by another user"
//	@Failure		422	{object}	utils.Response				"Invalid pickup code"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/pickups [post]
func (h *PickupHandler) AddPickup(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}
	code := strings.TrimSpace(string(body))

	if code == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Pickup code is required")
		return
	}

	if !validate.IsPickupCode(code) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid pickup code")
		return
	}
	pickup, err := h.pickupService.RegisterPickup(r.Context(), userID, code)
	if err != nil {
		switch {
		case errors.Is(err, pickupservice.ErrPickupAlreadyExistsByUser):
			utils.RespondWithError(w, http.StatusOK, err.Error())
		case errors.Is(err, pickupservice.ErrPickupAlreadyExists):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, toDTO(*pickup))
}

// GetPickups godoc
//
//	@Summary		List pickups
//	@Description	Pickups registered by the authorized user, newest first
//	@Tags			Pickups
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.GetPickupsResponseDTO
//	@Success		204	{object}	utils.Response	"No data available"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/pickups [get]
func (h *PickupHandler) GetPickups(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	pickups, err := h.pickupService.GetPickups(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(pickups) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	response := make([]dto.GetPickupsResponseDTO, 0, len(pickups))
	for _, pickup := range pickups {
		response = append(response, toDTO(pickup))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toDTO(pickup domain.Pickup) dto.GetPickupsResponseDTO {
	return dto.GetPickupsResponseDTO{
		Code:       pickup.PickupCode,
		Status:     pickup.Status,
		Points:     pickup.Points,
		UploadedAt: pickup.UploadedAt.Format(time.RFC3339),
	}
}
