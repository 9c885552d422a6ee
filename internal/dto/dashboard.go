package dto

type TopSaverDTO struct {
	ID           int     `json:"id" example:"1"`
	FullName     string  `json:"full_name" example:"Grace Nakato"`
	TotalSavings float64 `json:"total_savings" example:"1250.5"`
}

type RecentPaymentDTO struct {
	ID           int     `json:"id" example:"10"`
	MinisterName string  `json:"minister_name" example:"Grace Nakato"`
	Amount       float64 `json:"amount" example:"50"`
	PaymentDate  string  `json:"payment_date" example:"2024-01-07"`
}

type DashboardResponseDTO struct {
	TotalMinisters int                `json:"total_ministers" example:"12"`
	TotalSavings   float64            `json:"total_savings" example:"5400.75"`
	TopSavers      []TopSaverDTO      `json:"top_savers"`
	RecentPayments []RecentPaymentDTO `json:"recent_payments"`
}
