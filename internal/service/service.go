package service

import (
	"github.com/GlebRadaev/rebox/internal/handlers/admin"
	"github.com/GlebRadaev/rebox/internal/handlers/auth"
	"github.com/GlebRadaev/rebox/internal/handlers/pickups"
	"github.com/GlebRadaev/rebox/internal/handlers/rewards"
	"github.com/GlebRadaev/rebox/internal/levels"
	"github.com/GlebRadaev/rebox/internal/logistics"
	"github.com/GlebRadaev/rebox/internal/pg"

	pkgauth "github.com/GlebRadaev/rebox/pkg/auth"

	"github.com/GlebRadaev/rebox/internal/repo"
	authservice "github.com/GlebRadaev/rebox/internal/service/authservice"
	ledgerservice "github.com/GlebRadaev/rebox/internal/service/ledgerservice"
	pickupservice "github.com/GlebRadaev/rebox/internal/service/pickupservice"
	rewardservice "github.com/GlebRadaev/rebox/internal/service/rewardservice"
)

// Ledger is everything outside the service layer needs from the points ledger.
type Ledger interface {
	rewards.Ledger
	admin.Service
	logistics.Earner
}

type Services struct {
	AuthService    auth.Service
	PickupService  pickups.Service
	RewardsService rewards.Service
	LedgerService  Ledger
	Levels         *levels.Calculator
}

func New(repo *repo.Repositories, txManager pg.TXManager, calc *levels.Calculator, notifier ledgerservice.Notifier, redeemUnit int64) *Services {
	ledgerService := ledgerservice.New(repo.LedgerRepo, repo.RewardsRepo, txManager, calc, notifier)
	rewardService := rewardservice.New(repo.RewardsRepo, ledgerService, txManager, calc, redeemUnit)
	pickupService := pickupservice.New(repo.PickupRepo)
	authService := authservice.New(repo.UserRepo, txManager, rewardService, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:    authService,
		PickupService:  pickupService,
		RewardsService: rewardService,
		LedgerService:  ledgerService,
		Levels:         calc,
	}
}
