package dto

type MinisterResponseDTO struct {
	ID           int     `json:"id" example:"1"`
	FullName     string  `json:"full_name" example:"Grace Nakato"`
	Department   string  `json:"department,omitempty" example:"Choir"`
	Phone        string  `json:"phone,omitempty" example:"+256700000000"`
	Email        string  `json:"email,omitempty" example:"grace@example.com"`
	DateJoined   string  `json:"date_joined" example:"2023-05-14"`
	TotalSavings float64 `json:"total_savings" example:"1250.5"`
}
