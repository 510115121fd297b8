package dto

import "time"

type LevelDTO struct {
	Level      string   `json:"level" example:"Silver"`
	MinPoints  int64    `json:"minPoints" example:"1000"`
	Multiplier float64  `json:"multiplier" example:"1.1"`
	Benefits   []string `json:"benefits"`
}

type RewardsResponseDTO struct {
	AvailablePoints    int64     `json:"availablePoints" example:"550"`
	LifetimePoints     int64     `json:"lifetimePoints" example:"1050"`
	Level              string    `json:"level" example:"Silver"`
	NextLevel          string    `json:"nextLevel,omitempty" example:"Gold"`
	PointsToNextLevel  int64     `json:"pointsToNextLevel" example:"1450"`
	Progress           float64   `json:"progress" example:"0.03"`
	CurrentLevelConfig LevelDTO  `json:"currentLevelConfig"`
	NextLevelConfig    *LevelDTO `json:"nextLevelConfig,omitempty"`
}

type TransactionResponseDTO struct {
	ID          int64     `json:"id" example:"42"`
	Type        string    `json:"type" example:"SPEND"`
	Points      int64     `json:"points" example:"-500"`
	Description string    `json:"description" example:"Redemption: CASH"`
	CreatedAt   time.Time `json:"createdAt" example:"2020-12-09T16:09:57+03:00"`
}

type TransactionsResponseDTO struct {
	Transactions []TransactionResponseDTO `json:"transactions"`
	Limit        int                      `json:"limit" example:"20"`
	Offset       int                      `json:"offset" example:"0"`
}

type RedeemRequestDTO struct {
	Points     int64  `json:"points" example:"500"`
	RewardType string `json:"rewardType" example:"CASH" enums:"CASH,GIFTCARD,DONATION"`
}

type LeaderboardEntryDTO struct {
	Rank           int    `json:"rank" example:"1"`
	UserID         int    `json:"userId" example:"7"`
	Name           string `json:"name" example:"greenbox"`
	Level          string `json:"level" example:"Gold"`
	LifetimePoints int64  `json:"lifetimePoints" example:"3200"`
}

type LevelsResponseDTO struct {
	Version int        `json:"version" example:"1"`
	Levels  []LevelDTO `json:"levels"`
}
