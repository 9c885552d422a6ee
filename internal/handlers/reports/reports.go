package reports

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/kepha-wiz/ministers/internal/domain"
	"github.com/kepha-wiz/ministers/internal/service/reportservice"
	"github.com/kepha-wiz/ministers/pkg/utils"

	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=reports.go -destination=reports_mock.go -package=reports

type Service interface {
	Build(ctx context.Context, scope string, start, end time.Time) (*reportservice.ReportData, error)
	RenderCSV(data *reportservice.ReportData) ([]byte, error)
	RenderPDF(data *reportservice.ReportData) ([]byte, error)
}

type ReportHandler struct {
	reportService Service
}

func New(reportService Service) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

const dateLayout = "2006-01-02"

// parseRange validates the form before anything touches the store. Both
// bounds are required for reports.
func parseRange(r *http.Request) (start, end time.Time, err error) {
	if err = r.ParseForm(); err != nil {
		return start, end, errors.New("invalid form data")
	}
	start, err = time.Parse(dateLayout, r.FormValue("start_date"))
	if err != nil {
		return start, end, errors.New("invalid start_date, expected YYYY-MM-DD")
	}
	end, err = time.Parse(dateLayout, r.FormValue("end_date"))
	if err != nil {
		return start, end, errors.New("invalid end_date, expected YYYY-MM-DD")
	}
	return start, end, nil
}

func (h *ReportHandler) build(w http.ResponseWriter, r *http.Request) *reportservice.ReportData {
	start, end, err := parseRange(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return nil
	}
	data, err := h.reportService.Build(r.Context(), chi.URLParam(r, "type"), start, end)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedReportType) {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid report type")
			return nil
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return nil
	}
	return data
}

func sendAttachment(w http.ResponseWriter, contentType, filename string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// Generate godoc
//
//	@Summary	Generate a CSV report
//	@Description	Download a summary or detailed report over an inclusive date range as CSV
//	@Tags		Reports
//	@Accept		x-www-form-urlencoded
//	@Produce	text/csv
//	@Param		type		path		string	true	"Report scope"	Enums(summary, detailed)
//	@Param		start_date	formData	string	true	"Start date (YYYY-MM-DD)"
//	@Param		end_date	formData	string	true	"End date (YYYY-MM-DD)"
//	@Success	200	{file}		file
//	@Failure	400	{object}	utils.Response	"Invalid report type or date range"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/reports/generate/{type} [post]
func (h *ReportHandler) Generate(w http.ResponseWriter, r *http.Request) {
	data := h.build(w, r)
	if data == nil {
		return
	}
	body, err := h.reportService.RenderCSV(data)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to render report")
		return
	}
	sendAttachment(w, "text/csv", data.Filename("csv"), body)
}

// GeneratePDF godoc
//
//	@Summary	Generate a PDF report
//	@Description	Download a summary or detailed report over an inclusive date range as PDF
//	@Tags		Reports
//	@Accept		x-www-form-urlencoded
//	@Produce	application/pdf
//	@Param		type		path		string	true	"Report scope"	Enums(summary, detailed)
//	@Param		start_date	formData	string	true	"Start date (YYYY-MM-DD)"
//	@Param		end_date	formData	string	true	"End date (YYYY-MM-DD)"
//	@Success	200	{file}		file
//	@Failure	400	{object}	utils.Response	"Invalid report type or date range"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/reports/pdf/{type} [post]
func (h *ReportHandler) GeneratePDF(w http.ResponseWriter, r *http.Request) {
	data := h.build(w, r)
	if data == nil {
		return
	}
	body, err := h.reportService.RenderPDF(data)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to render report")
		return
	}
	sendAttachment(w, "application/pdf", data.Filename("pdf"), body)
}
