package dto

type RegisterRequestDTO struct {
	Login    string `json:"login" example:"greenbox" validate:"required,min=3,max=50"`
	Password string `json:"password" example:"s3cretpass" validate:"required,min=8"`
}

type RegisterResponseDTO struct {
	Message string `json:"message" example:"User successfully registered"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" example:"greenbox" validate:"required,min=3,max=50"`
	Password string `json:"password" example:"s3cretpass" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message" example:"User successfully authenticated"`
}
