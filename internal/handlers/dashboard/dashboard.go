package dashboard

import (
	"context"
	"net/http"

	"github.com/kepha-wiz/ministers/internal/dto"
	"github.com/kepha-wiz/ministers/internal/service/reportservice"
	"github.com/kepha-wiz/ministers/pkg/utils"
)

//go:generate mockgen -source=dashboard.go -destination=dashboard_mock.go -package=dashboard

type Service interface {
	Dashboard(ctx context.Context) (*reportservice.DashboardStats, error)
}

type DashboardHandler struct {
	reportService Service
}

func New(reportService Service) *DashboardHandler {
	return &DashboardHandler{
		reportService: reportService,
	}
}

const dateLayout = "2006-01-02"

// Show godoc
//
//	@Summary	Dashboard statistics
//	@Description	Minister count, overall savings, top savers and recent payments
//	@Tags		Dashboard
//	@Produce	json
//	@Success	200	{object}	dto.DashboardResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/dashboard [get]
func (h *DashboardHandler) Show(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reportService.Dashboard(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.DashboardResponseDTO{
		TotalMinisters: stats.TotalMinisters,
		TotalSavings:   stats.TotalSavings,
		TopSavers:      make([]dto.TopSaverDTO, len(stats.TopSavers)),
		RecentPayments: make([]dto.RecentPaymentDTO, len(stats.RecentPayments)),
	}
	for i, m := range stats.TopSavers {
		response.TopSavers[i] = dto.TopSaverDTO{
			ID:           m.ID,
			FullName:     m.FullName,
			TotalSavings: m.TotalSavings,
		}
	}
	for i, p := range stats.RecentPayments {
		response.RecentPayments[i] = dto.RecentPaymentDTO{
			ID:           p.PaymentID,
			MinisterName: p.MinisterName,
			Amount:       p.Amount,
			PaymentDate:  p.PaymentDate.Format(dateLayout),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
