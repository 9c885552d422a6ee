package ministerrepo

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
	repo := New(mockDB, nil)
	defer mockDB.Close()

	return repo, mockDB
}

func ministerRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "full_name", "department", "phone", "email", "date_joined", "total_savings", "created_at", "updated_at"})
}

func TestRepository_FindAll(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	joined := time.Date(2023, 4, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		search    string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name:   "Without search returns all ministers",
			search: "",
			mockSetup: func() {
				rows := ministerRows().
					AddRow(1, "John Okello", "Worship", "0700000001", "john@lavisco.com", joined, 150.0, now, now).
					AddRow(2, "Mary Achieng", "Youth", "0700000002", "mary@lavisco.com", joined, 90.0, now, now)
				mock.ExpectQuery(`SELECT .* FROM ministers`).WillReturnRows(rows)
			},
			count: 2,
		},
		{
			name:   "With search filters by name or department",
			search: "worship",
			mockSetup: func() {
				rows := ministerRows().
					AddRow(1, "John Okello", "Worship", "0700000001", "john@lavisco.com", joined, 150.0, now, now)
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE full_name ILIKE '%' || $1 || '%' OR department ILIKE '%' || $1 || '%'`)).
					WithArgs("worship").
					WillReturnRows(rows)
			},
			count: 1,
		},
		{
			name:   "Database error",
			search: "",
			mockSetup: func() {
				mock.ExpectQuery(`SELECT .* FROM ministers`).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindAll(context.Background(), tt.search)

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
	joined := time.Date(2023, 4, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Existing minister",
			id:   1,
			mockSetup: func() {
				rows := ministerRows().
					AddRow(1, "John Okello", "Worship", "0700000001", "john@lavisco.com", joined, 150.0, now, now)
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $1`)).WithArgs(1).WillReturnRows(rows)
			},
			found: true,
		},
		{
			name: "Missing minister returns nil",
			id:   42,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $1`)).WithArgs(42).WillReturnError(pgx.ErrNoRows)
			},
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)

			assert.NoError(t, err)
			if tt.found {
				assert.NotNil(t, result)
				assert.Equal(t, tt.id, result.ID)
			} else {
				assert.Nil(t, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	joined := time.Date(2023, 4, 10, 0, 0, 0, 0, time.UTC)

	minister := &domain.Minister{FullName: "John Okello", Department: "Worship", Phone: "0700000001", Email: "john@lavisco.com", DateJoined: joined}
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO ministers (full_name, department, phone, email, date_joined)`)).
		WithArgs("John Okello", "Worship", "0700000001", "john@lavisco.com", joined).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(1, now, now))

	created, err := repo.Create(context.Background(), minister)
	assert.NoError(t, err)
	assert.Equal(t, 1, created.ID)
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM ministers WHERE id = $1`)).
		WithArgs(1).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.Delete(context.Background(), 1)
	assert.NoError(t, err)
}

func TestRepository_RecalculateTotalSavings(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name       string
		ministerID int
		mockSetup  func()
		expectErr  bool
	}{
		{
			name:       "Rewrites the aggregate",
			ministerID: 1,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`SET total_savings = COALESCE((SELECT SUM(amount) FROM payments WHERE minister_id = $1), 0)`)).
					WithArgs(1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name:       "Database error",
			ministerID: 1,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`SET total_savings = COALESCE((SELECT SUM(amount) FROM payments WHERE minister_id = $1), 0)`)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.RecalculateTotalSavings(context.Background(), tt.ministerID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_FindTopSavers(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	joined := time.Date(2023, 4, 10, 0, 0, 0, 0, time.UTC)

	rows := ministerRows().
		AddRow(2, "Mary Achieng", "Youth", "", "", joined, 300.0, now, now).
		AddRow(1, "John Okello", "Worship", "", "", joined, 150.0, now, now)
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY total_savings DESC, id ASC`)).
		WithArgs(3).
		WillReturnRows(rows)

	result, err := repo.FindTopSavers(context.Background(), 3)
	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, 300.0, result[0].TotalSavings)
}
