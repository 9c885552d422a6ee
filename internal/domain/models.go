package domain

import "time"

type User struct {
	ID           int       `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	FullName     string    `db:"full_name"`
	CreatedAt    time.Time `db:"created_at"`
}

type Minister struct {
	ID           int       `db:"id"`
	FullName     string    `db:"full_name"`
	Department   string    `db:"department"`
	Phone        string    `db:"phone"`
	Email        string    `db:"email"`
	DateJoined   time.Time `db:"date_joined"`
	TotalSavings float64   `db:"total_savings"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type Payment struct {
	ID          int       `db:"id"`
	MinisterID  int       `db:"minister_id"`
	Amount      float64   `db:"amount"`
	PaymentDate time.Time `db:"payment_date"`
	WeekNumber  int       `db:"week_number"`
	Note        string    `db:"note"`
	CreatedAt   time.Time `db:"created_at"`
}

// ReportEntry is a payment joined with its minister's name, the unit both
// report renderers consume.
type ReportEntry struct {
	PaymentID    int
	MinisterID   int
	MinisterName string
	Amount       float64
	PaymentDate  time.Time
	WeekNumber   int
	Note         string
}
