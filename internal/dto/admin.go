package dto

type AdjustRequestDTO struct {
	UserID      int    `json:"userId" example:"7"`
	Points      int64  `json:"points" example:"-200"`
	Description string `json:"description" example:"Duplicate pickup credit reversed"`
}

type AggregateResponseDTO struct {
	UserID          int    `json:"userId" example:"7"`
	AvailablePoints int64  `json:"availablePoints" example:"550"`
	LifetimePoints  int64  `json:"lifetimePoints" example:"1050"`
	Level           string `json:"level" example:"Silver"`
}
