package ministerservice

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/kepha-wiz/ministers/internal/domain"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	service := New(repo)

	return service, repo
}

func validMinister() *domain.Minister {
	return &domain.Minister{
		FullName:   "John Okello",
		Department: "Worship",
		Phone:      "0700000001",
		Email:      "john@lavisco.com",
		DateJoined: time.Date(2023, 4, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestService_Create(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		modify    func(m *domain.Minister)
		mockSetup func()
		wantField string
	}{
		{
			name:   "Valid minister",
			modify: func(m *domain.Minister) {},
			mockSetup: func() {
				repo.EXPECT().Create(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, m *domain.Minister) (*domain.Minister, error) {
						m.ID = 1
						return m, nil
					})
			},
		},
		{
			name:      "Missing full name",
			modify:    func(m *domain.Minister) { m.FullName = "" },
			mockSetup: func() {},
			wantField: "full_name",
		},
		{
			name:      "Name longer than 100 characters",
			modify:    func(m *domain.Minister) { m.FullName = strings.Repeat("a", 101) },
			mockSetup: func() {},
			wantField: "full_name",
		},
		{
			name:      "Department longer than 100 characters",
			modify:    func(m *domain.Minister) { m.Department = strings.Repeat("d", 101) },
			mockSetup: func() {},
			wantField: "department",
		},
		{
			name:      "Phone longer than 20 characters",
			modify:    func(m *domain.Minister) { m.Phone = strings.Repeat("9", 21) },
			mockSetup: func() {},
			wantField: "phone",
		},
		{
			name:      "Malformed email",
			modify:    func(m *domain.Minister) { m.Email = "not-an-email" },
			mockSetup: func() {},
			wantField: "email",
		},
		{
			name:      "Missing join date",
			modify:    func(m *domain.Minister) { m.DateJoined = time.Time{} },
			mockSetup: func() {},
			wantField: "date_joined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			minister := validMinister()
			tt.modify(minister)

			created, err := service.Create(ctx, minister)

			if tt.wantField != "" {
				var vErr *domain.ValidationError
				assert.ErrorAs(t, err, &vErr)
				assert.Equal(t, tt.wantField, vErr.Field)
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, created.ID)
			}
		})
	}
}

func TestService_Create_EmptyEmailAllowed(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()

	minister := validMinister()
	minister.Email = ""
	repo.EXPECT().Create(ctx, minister).Return(minister, nil)

	_, err := service.Create(ctx, minister)
	assert.NoError(t, err)
}

func TestService_Get(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		wantErr   error
	}{
		{
			name: "Existing minister",
			id:   1,
			mockSetup: func() {
				repo.EXPECT().FindByID(ctx, 1).Return(&domain.Minister{ID: 1, FullName: "John Okello"}, nil)
			},
		},
		{
			name: "Missing minister",
			id:   42,
			mockSetup: func() {
				repo.EXPECT().FindByID(ctx, 42).Return(nil, nil)
			},
			wantErr: domain.ErrMinisterNotFound,
		},
		{
			name: "Repository error",
			id:   1,
			mockSetup: func() {
				repo.EXPECT().FindByID(ctx, 1).Return(nil, errors.New("database error"))
			},
			wantErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			minister, err := service.Get(ctx, tt.id)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
				assert.Nil(t, minister)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.id, minister.ID)
			}
		})
	}
}

func TestService_Update(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()

	minister := validMinister()
	minister.ID = 1

	repo.EXPECT().FindByID(ctx, 1).Return(&domain.Minister{ID: 1}, nil)
	repo.EXPECT().Update(ctx, minister).Return(nil)

	updated, err := service.Update(ctx, minister)
	assert.NoError(t, err)
	assert.Equal(t, minister, updated)

	missing := validMinister()
	missing.ID = 42
	repo.EXPECT().FindByID(ctx, 42).Return(nil, nil)

	_, err = service.Update(ctx, missing)
	assert.ErrorIs(t, err, domain.ErrMinisterNotFound)
}

func TestService_Delete(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()

	repo.EXPECT().FindByID(ctx, 1).Return(&domain.Minister{ID: 1}, nil)
	repo.EXPECT().Delete(ctx, 1).Return(nil)

	err := service.Delete(ctx, 1)
	assert.NoError(t, err)

	repo.EXPECT().FindByID(ctx, 42).Return(nil, nil)

	err = service.Delete(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrMinisterNotFound)
}
