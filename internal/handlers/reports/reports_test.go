package reports

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/kepha-wiz/ministers/internal/domain"
	"github.com/kepha-wiz/ministers/internal/service/reportservice"

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
	r.Post("/reports/generate/{type}", handler.Generate)
	r.Post("/reports/pdf/{type}", handler.GeneratePDF)

	return r, service
}

func postForm(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

var (
	rangeStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rangeEnd   = time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	rangeForm  = url.Values{"start_date": {"2024-01-01"}, "end_date": {"2024-03-31"}}
)

func TestReportHandler_Generate(t *testing.T) {
	router, service := NewMock(t)

	data := &reportservice.ReportData{Scope: reportservice.ScopeSummary, Start: rangeStart, End: rangeEnd}

	tests := []struct {
		name        string
		path        string
		form        url.Values
		mockSetup   func()
		statusCode  int
		contentType string
		disposition string
		contains    string
	}{
		{
			name: "Streams the CSV attachment",
			path: "/reports/generate/summary",
			form: rangeForm,
			mockSetup: func() {
				service.EXPECT().Build(gomock.Any(), "summary", rangeStart, rangeEnd).Return(data, nil)
				service.EXPECT().RenderCSV(data).Return([]byte("Total Amount,UGX100.00\n"), nil)
			},
			statusCode:  http.StatusOK,
			contentType: "text/csv",
			disposition: "attachment; filename=summary_report_20240101_to_20240331.csv",
			contains:    "UGX100.00",
		},
		{
			name: "Unknown report type",
			path: "/reports/generate/weekly",
			form: rangeForm,
			mockSetup: func() {
				service.EXPECT().Build(gomock.Any(), "weekly", rangeStart, rangeEnd).
					Return(nil, domain.ErrUnsupportedReportType)
			},
			statusCode: http.StatusBadRequest,
			contains:   "Invalid report type",
		},
		{
			name:       "Missing start date",
			path:       "/reports/generate/summary",
			form:       url.Values{"end_date": {"2024-03-31"}},
			mockSetup:  func() {},
			statusCode: http.StatusBadRequest,
			contains:   "start_date",
		},
		{
			name:       "Malformed end date",
			path:       "/reports/generate/summary",
			form:       url.Values{"start_date": {"2024-01-01"}, "end_date": {"31/03/2024"}},
			mockSetup:  func() {},
			statusCode: http.StatusBadRequest,
			contains:   "end_date",
		},
		{
			name: "Store failure",
			path: "/reports/generate/summary",
			form: rangeForm,
			mockSetup: func() {
				service.EXPECT().Build(gomock.Any(), "summary", rangeStart, rangeEnd).
					Return(nil, assert.AnError)
			},
			statusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			resp := postForm(router, tt.path, tt.form)

			assert.Equal(t, tt.statusCode, resp.Code)
			if tt.contentType != "" {
				assert.Equal(t, tt.contentType, resp.Header().Get("Content-Type"))
			}
			if tt.disposition != "" {
				assert.Equal(t, tt.disposition, resp.Header().Get("Content-Disposition"))
			}
			if tt.contains != "" {
				assert.Contains(t, resp.Body.String(), tt.contains)
			}
		})
	}
}

func TestReportHandler_GeneratePDF(t *testing.T) {
	router, service := NewMock(t)

	data := &reportservice.ReportData{Scope: reportservice.ScopeDetailed, Start: rangeStart, End: rangeEnd}

	service.EXPECT().Build(gomock.Any(), "detailed", rangeStart, rangeEnd).Return(data, nil)
	service.EXPECT().RenderPDF(data).Return([]byte("%PDF-1.3"), nil)

	resp := postForm(router, "/reports/pdf/detailed", rangeForm)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "application/pdf", resp.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=detailed_report_20240101_to_20240331.pdf", resp.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.3", resp.Body.String())
}

func TestReportHandler_GeneratePDF_RenderFailure(t *testing.T) {
	router, service := NewMock(t)

	data := &reportservice.ReportData{Scope: reportservice.ScopeSummary, Start: rangeStart, End: rangeEnd}

	service.EXPECT().Build(gomock.Any(), "summary", rangeStart, rangeEnd).Return(data, nil)
	service.EXPECT().RenderPDF(data).Return(nil, assert.AnError)

	resp := postForm(router, "/reports/pdf/summary", rangeForm)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "Failed to render report")
}
