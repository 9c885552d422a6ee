package payments

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/kepha-wiz/ministers/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*chi.Mux, *MockService) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockService(ctrl)
	handler := New(service)

	r := chi.NewRouter()
	r.Get("/payments", handler.List)
	r.Post("/payments/add", handler.Add)
	r.Post("/payments/edit/{id}", handler.Edit)
	r.Post("/payments/delete/{id}", handler.Delete)

	return r, service
}

func postForm(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestPaymentHandler_List(t *testing.T) {
	router, service := NewMock(t)
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		target     string
		mockSetup  func()
		statusCode int
		contains   string
	}{
		{
			name:   "Returns payments as JSON",
			target: "/payments",
			mockSetup: func() {
				service.EXPECT().List(gomock.Any(), gomock.Nil(), gomock.Nil()).Return([]domain.Payment{
					{ID: 1, MinisterID: 1, Amount: 25.0, PaymentDate: day, WeekNumber: 10},
				}, nil)
			},
			statusCode: http.StatusOK,
			contains:   `"payment_date":"2024-03-04"`,
		},
		{
			name:   "Passes both date bounds",
			target: "/payments?start_date=2024-01-01&end_date=2024-03-31",
			mockSetup: func() {
				service.EXPECT().List(gomock.Any(), gomock.Not(gomock.Nil()), gomock.Not(gomock.Nil())).Return(nil, nil)
			},
			statusCode: http.StatusOK,
		},
		{
			name:       "Malformed start date",
			target:     "/payments?start_date=01-01-2024",
			mockSetup:  func() {},
			statusCode: http.StatusBadRequest,
			contains:   "start_date",
		},
		{
			name:       "Malformed end date",
			target:     "/payments?end_date=never",
			mockSetup:  func() {},
			statusCode: http.StatusBadRequest,
			contains:   "end_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			assert.Equal(t, tt.statusCode, resp.Code)
			if tt.contains != "" {
				assert.Contains(t, resp.Body.String(), tt.contains)
			}
		})
	}
}

func TestPaymentHandler_Add(t *testing.T) {
	router, service := NewMock(t)

	tests := []struct {
		name       string
		form       url.Values
		mockSetup  func()
		statusCode int
		contains   string
	}{
		{
			name: "Records the payment",
			form: url.Values{
				"minister_id":  {"1"},
				"amount":       {"25.50"},
				"payment_date": {"2024-03-04"},
				"note":         {"tithe"},
			},
			mockSetup: func() {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ interface{}, p *domain.Payment) (*domain.Payment, error) {
						assert.Equal(t, 1, p.MinisterID)
						assert.Equal(t, 25.50, p.Amount)
						assert.Equal(t, "tithe", p.Note)
						p.ID = 7
						p.WeekNumber = 10
						return p, nil
					})
			},
			statusCode: http.StatusOK,
			contains:   `"week_number":10`,
		},
		{
			name: "Unknown minister maps to a validation response",
			form: url.Values{
				"minister_id":  {"42"},
				"amount":       {"25.50"},
				"payment_date": {"2024-03-04"},
			},
			mockSetup: func() {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrMinisterNotFound)
			},
			statusCode: http.StatusBadRequest,
			contains:   "Minister does not exist",
		},
		{
			name:       "Non-numeric amount",
			form:       url.Values{"minister_id": {"1"}, "amount": {"lots"}, "payment_date": {"2024-03-04"}},
			mockSetup:  func() {},
			statusCode: http.StatusBadRequest,
			contains:   "amount",
		},
		{
			name: "Amount below the minimum",
			form: url.Values{"minister_id": {"1"}, "amount": {"0.01"}, "payment_date": {"2024-03-04"}},
			mockSetup: func() {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, domain.NewValidationError("amount", "must be greater than 0.01"))
			},
			statusCode: http.StatusBadRequest,
			contains:   "greater than 0.01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			resp := postForm(router, "/payments/add", tt.form)

			assert.Equal(t, tt.statusCode, resp.Code)
			if tt.contains != "" {
				assert.Contains(t, resp.Body.String(), tt.contains)
			}
		})
	}
}

func TestPaymentHandler_Edit(t *testing.T) {
	router, service := NewMock(t)

	form := url.Values{
		"minister_id":  {"2"},
		"amount":       {"30.00"},
		"payment_date": {"2024-03-04"},
	}

	tests := []struct {
		name       string
		path       string
		mockSetup  func()
		statusCode int
	}{
		{
			name: "Updates the payment",
			path: "/payments/edit/7",
			mockSetup: func() {
				service.EXPECT().Update(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ interface{}, p *domain.Payment) (*domain.Payment, error) {
						assert.Equal(t, 7, p.ID)
						assert.Equal(t, 2, p.MinisterID)
						return p, nil
					})
			},
			statusCode: http.StatusOK,
		},
		{
			name: "Unknown payment",
			path: "/payments/edit/99",
			mockSetup: func() {
				service.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, domain.ErrPaymentNotFound)
			},
			statusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			resp := postForm(router, tt.path, form)

			assert.Equal(t, tt.statusCode, resp.Code)
		})
	}
}

func TestPaymentHandler_Delete(t *testing.T) {
	router, service := NewMock(t)

	service.EXPECT().Delete(gomock.Any(), 7).Return(nil)
	resp := postForm(router, "/payments/delete/7", nil)
	assert.Equal(t, http.StatusOK, resp.Code)

	service.EXPECT().Delete(gomock.Any(), 99).Return(domain.ErrPaymentNotFound)
	resp = postForm(router, "/payments/delete/99", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
