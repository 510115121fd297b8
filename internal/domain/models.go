package domain

import "time"

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	IsAdmin      bool      `db:"is_admin"`
	CreatedAt    time.Time `db:"created_at"`
}

type Pickup struct {
	ID         int       `db:"id"`
	UserID     int       `db:"user_id"`
	PickupCode string    `db:"pickup_code"`
	Status     string    `db:"status"`
	Points     int64     `db:"points"`
	UploadedAt time.Time `db:"uploaded_at"`
}

type EntryType string

const (
	EntryEarn       EntryType = "EARN"
	EntrySpend      EntryType = "SPEND"
	EntryAdjustment EntryType = "ADJUSTMENT"
)

func (t EntryType) Valid() bool {
	switch t {
	case EntryEarn, EntrySpend, EntryAdjustment:
		return true
	}
	return false
}

// LedgerEntry is immutable once stored. Points are signed: credits are positive,
// spends and debit adjustments negative.
type LedgerEntry struct {
	ID             int64     `db:"id"`
	UserID         int       `db:"user_id"`
	Type           EntryType `db:"type"`
	Points         int64     `db:"points"`
	Description    string    `db:"description"`
	IdempotencyKey string    `db:"idempotency_key"`
	CreatedAt      time.Time `db:"created_at"`
}

// Matches reports whether e was produced by a request equal to req, used to
// tell an idempotent replay from a reused key.
func (e LedgerEntry) Matches(req AppendRequest) bool {
	return e.UserID == req.UserID &&
		e.Type == req.Type &&
		e.Points == req.Points &&
		e.Description == req.Description
}

// MaxEntryPoints bounds the magnitude of a single ledger entry and of an EARN
// base before its multiplier.
const MaxEntryPoints int64 = 1_000_000_000

// AppendRequest is the input of a ledger append. For SPEND the sign of Points is
// normalised to negative.
type AppendRequest struct {
	UserID         int
	Type           EntryType
	Points         int64
	Description    string
	IdempotencyKey string
}

// RewardsAggregate is the cached fold of a user's ledger:
// AvailablePoints = sum(points), LifetimePoints = sum(points > 0).
type RewardsAggregate struct {
	UserID          int       `db:"user_id"`
	AvailablePoints int64     `db:"available_points"`
	LifetimePoints  int64     `db:"lifetime_points"`
	UpdatedAt       time.Time `db:"updated_at"`
}

type Level struct {
	Name       string   `yaml:"name"`
	MinPoints  int64    `yaml:"minPoints"`
	Multiplier float64  `yaml:"multiplier"`
	Benefits   []string `yaml:"benefits"`
}

type RewardsSummary struct {
	RewardsAggregate
	Level             Level
	NextLevel         *Level
	PointsToNextLevel int64
	Progress          float64
}

type RewardType string

const (
	RewardCash     RewardType = "CASH"
	RewardGiftCard RewardType = "GIFTCARD"
	RewardDonation RewardType = "DONATION"
)

func (t RewardType) Valid() bool {
	switch t {
	case RewardCash, RewardGiftCard, RewardDonation:
		return true
	}
	return false
}

type RedeemRequest struct {
	UserID         int
	Points         int64
	RewardType     RewardType
	IdempotencyKey string
}

type LeaderboardEntry struct {
	Rank           int
	UserID         int
	Name           string
	Level          string
	LifetimePoints int64
}
