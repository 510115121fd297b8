package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/rebox/internal/domain"
	"github.com/GlebRadaev/rebox/internal/dto"
	"github.com/GlebRadaev/rebox/internal/service/authservice"
	"github.com/GlebRadaev/rebox/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, login, password string) (*domain.User, error)
	Authenticate(ctx context.Context, login, password string) (*domain.User, error)
	GenerateToken(user *domain.User) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a new user account with login and password and open its rewards account
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.RegisterResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or login/password rules"
//	@Failure		409		{object}	utils.Response	"User already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCredentials[dto.RegisterRequestDTO](w, r)
	if !ok {
		return
	}
	user, err := h.authService.Register(r.Context(), req.Login, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, authservice.ErrLoginTaken):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
		return
	case errors.Is(err, authservice.ErrInvalidLogin), errors.Is(err, authservice.ErrWeakPassword):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.issueToken(w, user, dto.RegisterResponseDTO{Message: "User successfully registered"})
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in with a user account and get a JWT token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCredentials[dto.LoginRequestDTO](w, r)
	if !ok {
		return
	}
	user, err := h.authService.Authenticate(r.Context(), req.Login, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, authservice.ErrInvalidCredentials):
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.issueToken(w, user, dto.LoginResponseDTO{Message: "User successfully authenticated"})
}

// issueToken puts a fresh bearer token into the Authorization header.
func (h *AuthHandler) issueToken(w http.ResponseWriter, user *domain.User, body any) {
	token, err := h.authService.GenerateToken(user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, body)
}

func decodeCredentials[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return req, false
	}
	return req, true
}
