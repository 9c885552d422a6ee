package dto

type LoginResponseDTO struct {
	Message string `json:"message"`
}

type ChangePasswordResponseDTO struct {
	Message string `json:"message"`
}
