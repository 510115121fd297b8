package repo

import (
	"github.com/GlebRadaev/rebox/internal/pg"
	ledgerrepo "github.com/GlebRadaev/rebox/internal/repo/ledger-repo"
	pickuprepo "github.com/GlebRadaev/rebox/internal/repo/pickup-repo"
	rewardsrepo "github.com/GlebRadaev/rebox/internal/repo/rewards-repo"
	userrepo "github.com/GlebRadaev/rebox/internal/repo/user-repo"
	"github.com/GlebRadaev/rebox/internal/service/authservice"
	"github.com/GlebRadaev/rebox/internal/service/ledgerservice"
	"github.com/GlebRadaev/rebox/internal/service/pickupservice"
	"github.com/GlebRadaev/rebox/internal/service/rewardservice"
)

// RewardsRepo is the aggregate store as seen by both the ledger and the
// rewards services.
type RewardsRepo interface {
	ledgerservice.RewardsRepo
	rewardservice.RewardsRepo
}

type Repositories struct {
	UserRepo    authservice.Repo
	PickupRepo  pickupservice.Repo
	LedgerRepo  ledgerservice.LedgerRepo
	RewardsRepo RewardsRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:    userrepo.New(conn),
		PickupRepo:  pickuprepo.New(conn, txManager),
		LedgerRepo:  ledgerrepo.New(conn),
		RewardsRepo: rewardsrepo.New(conn),
	}
}
