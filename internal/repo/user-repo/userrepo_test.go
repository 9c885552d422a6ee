package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

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

func TestRepository_FindByUsername(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		username  string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:     "Existing username returns user",
			username: "admin",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "username", "email", "password_hash", "full_name"}).
					AddRow(1, "admin", "admin@lavisco.com", "hash", "System Administrator")
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, email, password_hash, full_name FROM users WHERE username = $1`)).
					WithArgs("admin").
					WillReturnRows(rows)
			},
			result: &domain.User{ID: 1, Username: "admin", Email: "admin@lavisco.com", PasswordHash: "hash", FullName: "System Administrator"},
		},
		{
			name:     "Unknown username returns nil",
			username: "ghost",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, email, password_hash, full_name FROM users WHERE username = $1`)).
					WithArgs("ghost").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:     "Database error",
			username: "admin",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, email, password_hash, full_name FROM users WHERE username = $1`)).
					WithArgs("admin").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByUsername(context.Background(), tt.username)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	user := &domain.User{Username: "admin", Email: "admin@lavisco.com", PasswordHash: "hash", FullName: "System Administrator"}
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (username, email, password_hash, full_name)`)).
		WithArgs("admin", "admin@lavisco.com", "hash", "System Administrator").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))

	created, err := repo.Create(context.Background(), user)
	assert.NoError(t, err)
	assert.Equal(t, 1, created.ID)
}

func TestRepository_Count(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM users`)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.Count(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestRepository_UpdatePassword(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET password_hash = $1 WHERE id = $2`)).
		WithArgs("newhash", 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdatePassword(context.Background(), 1, "newhash")
	assert.NoError(t, err)
}
