package dto

type PaymentResponseDTO struct {
	ID          int     `json:"id" example:"1"`
	MinisterID  int     `json:"minister_id" example:"1"`
	Amount      float64 `json:"amount" example:"50"`
	PaymentDate string  `json:"payment_date" example:"2024-01-07"`
	WeekNumber  int     `json:"week_number,omitempty" example:"1"`
	Note        string  `json:"note,omitempty" example:"weekly contribution"`
}
