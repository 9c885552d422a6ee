package paymentrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/kepha-wiz/ministers/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func paymentRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "minister_id", "amount", "payment_date", "week_number", "note", "created_at"})
}

func TestRepository_FindAll(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		start, end *time.Time
		mockSetup  func()
		expectErr  bool
		count      int
	}{
		{
			name: "Unbounded range returns everything",
			mockSetup: func() {
				rows := paymentRows().
					AddRow(2, 1, 50.0, day.AddDate(0, 0, 7), 11, "", now).
					AddRow(1, 1, 25.0, day, 10, "tithe", now)
				mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY payment_date DESC, id DESC`)).
					WithArgs((*time.Time)(nil), (*time.Time)(nil)).
					WillReturnRows(rows)
			},
			count: 2,
		},
		{
			name:  "Bounded range passes both dates",
			start: &day,
			end:   &day,
			mockSetup: func() {
				rows := paymentRows().
					AddRow(1, 1, 25.0, day, 10, "tithe", now)
				mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY payment_date DESC, id DESC`)).
					WithArgs(&day, &day).
					WillReturnRows(rows)
			},
			count: 1,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY payment_date DESC, id DESC`)).
					WithArgs((*time.Time)(nil), (*time.Time)(nil)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindAll(context.Background(), tt.start, tt.end)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.count)
			}
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $1`)).
		WithArgs(1).
		WillReturnRows(paymentRows().AddRow(1, 1, 25.0, day, 10, "tithe", now))

	result, err := repo.FindByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, 25.0, result.Amount)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $1`)).
		WithArgs(99).
		WillReturnError(pgx.ErrNoRows)

	result, err = repo.FindByID(context.Background(), 99)
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	payment := &domain.Payment{MinisterID: 1, Amount: 25.0, PaymentDate: day, WeekNumber: 10, Note: "tithe"}
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO payments (minister_id, amount, payment_date, week_number, note)`)).
		WithArgs(1, 25.0, day, 10, "tithe").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(7, now))

	created, err := repo.Create(context.Background(), payment)
	assert.NoError(t, err)
	assert.Equal(t, 7, created.ID)
}

func TestRepository_FindForReport(t *testing.T) {
	repo, mock := NewMock(t)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Rows come back oldest first",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "minister_id", "full_name", "amount", "payment_date", "week_number", "note"}).
					AddRow(1, 1, "John Okello", 25.0, start.AddDate(0, 0, 6), 1, "").
					AddRow(2, 2, "Mary Achieng", 40.0, start.AddDate(0, 1, 0), 5, "pledge")
				mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY p.payment_date ASC, p.id ASC`)).
					WithArgs(start, end).
					WillReturnRows(rows)
			},
			count: 2,
		},
		{
			name: "Empty range",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY p.payment_date ASC, p.id ASC`)).
					WithArgs(start, end).
					WillReturnRows(pgxmock.NewRows([]string{"id", "minister_id", "full_name", "amount", "payment_date", "week_number", "note"}))
			},
			count: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindForReport(context.Background(), start, end)

			assert.NoError(t, err)
			assert.Len(t, result, tt.count)
		})
	}
}

func TestRepository_TotalAmount(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(amount), 0) FROM payments`)).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(375.5))

	total, err := repo.TotalAmount(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 375.5, total)
}
