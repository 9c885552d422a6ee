package paymentrepo

import (
	"context"
	"errors"
	"time"

	"github.com/kepha-wiz/ministers/internal/domain"
	"github.com/kepha-wiz/ministers/internal/pg"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const paymentColumns = "id, minister_id, amount, payment_date, week_number, note, created_at"

func scanPayment(row pgx.Row, p *domain.Payment) error {
	return row.Scan(&p.ID, &p.MinisterID, &p.Amount, &p.PaymentDate, &p.WeekNumber, &p.Note, &p.CreatedAt)
}

// FindAll returns payments newest first, optionally bounded by an inclusive
// payment-date range. Either bound may be nil.
func (r *Repository) FindAll(ctx context.Context, start, end *time.Time) ([]domain.Payment, error) {
	query := `
        SELECT ` + paymentColumns + `
        FROM payments
        WHERE ($1::date IS NULL OR payment_date >= $1)
          AND ($2::date IS NULL OR payment_date <= $2)
        ORDER BY payment_date DESC, id DESC
    `
	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		zap.L().Error("can't get payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := scanPayment(rows, &p); err != nil {
			zap.L().Error("can't scan payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Payment, error) {
	query := `
        SELECT ` + paymentColumns + `
        FROM payments
        WHERE id = $1
    `
	var p domain.Payment
	err := scanPayment(r.db.QueryRow(ctx, query, id), &p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find payment", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	query := `
		INSERT INTO payments (minister_id, amount, payment_date, week_number, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, payment.MinisterID, payment.Amount, payment.PaymentDate, payment.WeekNumber, payment.Note).
		Scan(&payment.ID, &payment.CreatedAt)
	if err != nil {
		zap.L().Error("can't save payment", zap.Error(err))
		return nil, err
	}
	return payment, nil
}

func (r *Repository) Update(ctx context.Context, payment *domain.Payment) error {
	query := `
        UPDATE payments
        SET minister_id = $1, amount = $2, payment_date = $3, week_number = $4, note = $5
        WHERE id = $6
    `
	_, err := r.db.Exec(ctx, query,
		payment.MinisterID, payment.Amount, payment.PaymentDate, payment.WeekNumber, payment.Note, payment.ID)
	if err != nil {
		zap.L().Error("can't update payment", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, "DELETE FROM payments WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete payment", zap.Error(err))
		return err
	}
	return nil
}

// FindForReport returns payments inside the inclusive range joined with the
// minister's name, oldest first with id as the tie-break.
func (r *Repository) FindForReport(ctx context.Context, start, end time.Time) ([]domain.ReportEntry, error) {
	query := `
        SELECT p.id, p.minister_id, m.full_name, p.amount, p.payment_date, p.week_number, p.note
        FROM payments p
        JOIN ministers m ON m.id = p.minister_id
        WHERE p.payment_date >= $1 AND p.payment_date <= $2
        ORDER BY p.payment_date ASC, p.id ASC
    `
	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		zap.L().Error("can't get payments for report", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.ReportEntry
	for rows.Next() {
		var e domain.ReportEntry
		err := rows.Scan(&e.PaymentID, &e.MinisterID, &e.MinisterName, &e.Amount, &e.PaymentDate, &e.WeekNumber, &e.Note)
		if err != nil {
			zap.L().Error("can't scan report row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// FindRecent returns the most recently recorded payments with minister names,
// for the dashboard.
func (r *Repository) FindRecent(ctx context.Context, limit int) ([]domain.ReportEntry, error) {
	query := `
        SELECT p.id, p.minister_id, m.full_name, p.amount, p.payment_date, p.week_number, p.note
        FROM payments p
        JOIN ministers m ON m.id = p.minister_id
        ORDER BY p.created_at DESC, p.id DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't get recent payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.ReportEntry
	for rows.Next() {
		var e domain.ReportEntry
		err := rows.Scan(&e.PaymentID, &e.MinisterID, &e.MinisterName, &e.Amount, &e.PaymentDate, &e.WeekNumber, &e.Note)
		if err != nil {
			zap.L().Error("can't scan recent payment row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// TotalAmount sums every payment on record.
func (r *Repository) TotalAmount(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx, "SELECT COALESCE(SUM(amount), 0) FROM payments").Scan(&total)
	if err != nil {
		zap.L().Error("can't sum payments", zap.Error(err))
		return 0, err
	}
	return total, nil
}
