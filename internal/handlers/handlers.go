package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/rebox/docs"
	adminhandlers "github.com/GlebRadaev/rebox/internal/handlers/admin"
	authhandlers "github.com/GlebRadaev/rebox/internal/handlers/auth"
	pickuphandlers "github.com/GlebRadaev/rebox/internal/handlers/pickups"
	rewardhandlers "github.com/GlebRadaev/rebox/internal/handlers/rewards"
	"github.com/GlebRadaev/rebox/internal/service"
	"github.com/GlebRadaev/rebox/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type PickupHandler interface {
	AddPickup(w http.ResponseWriter, r *http.Request)
	GetPickups(w http.ResponseWriter, r *http.Request)
}

type RewardHandler interface {
	GetRewards(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	Redeem(w http.ResponseWriter, r *http.Request)
	GetLeaderboard(w http.ResponseWriter, r *http.Request)
	GetLevels(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	Adjust(w http.ResponseWriter, r *http.Request)
	Reconcile(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler   AuthHandler
	PickupHandler PickupHandler
	RewardHandler RewardHandler
	AdminHandler  AdminHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:   authhandlers.New(s.AuthService),
		PickupHandler: pickuphandlers.New(s.PickupService),
		RewardHandler: rewardhandlers.New(s.RewardsService, s.LedgerService),
		AdminHandler:  adminhandlers.New(s.LedgerService, s.Levels),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/pickups", func(r chi.Router) {
				r.Post("/", h.PickupHandler.AddPickup)
				r.Get("/", h.PickupHandler.GetPickups)
			})
		})
	})
	r.Route("/api/rewards", func(r chi.Router) {
		r.Get("/levels", h.RewardHandler.GetLevels)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Get("/", h.RewardHandler.GetRewards)
			r.Get("/transactions", h.RewardHandler.GetTransactions)
			r.Post("/redeem", h.RewardHandler.Redeem)
			r.Get("/leaderboard", h.RewardHandler.GetLeaderboard)
		})
	})
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(auth.AuthMiddleware, auth.AdminMiddleware)
		r.Route("/rewards", func(r chi.Router) {
			r.Post("/adjust", h.AdminHandler.Adjust)
			r.Post("/{userID}/reconcile", h.AdminHandler.Reconcile)
		})
	})

	return r
}
