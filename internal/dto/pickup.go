package dto

type GetPickupsResponseDTO struct {
	Code       string `json:"code" example:"4561261212345467"`
	Status     string `json:"status" example:"COMPLETED"`
	Points     int64  `json:"points,omitempty" example:"250"`
	UploadedAt string `json:"uploaded_at" example:"2020-12-09T16:09:57+03:00"`
}
