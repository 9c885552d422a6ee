package reportservice

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/kepha-wiz/ministers/internal/domain"

	"go.uber.org/zap"
)

//go:generate mockgen -source=reportservice.go -destination=reportservice_mock.go -package=reportservice

type PaymentRepo interface {
	FindForReport(ctx context.Context, start, end time.Time) ([]domain.ReportEntry, error)
	FindRecent(ctx context.Context, limit int) ([]domain.ReportEntry, error)
	TotalAmount(ctx context.Context) (float64, error)
}

type MinisterRepo interface {
	Count(ctx context.Context) (int, error)
	FindTopSavers(ctx context.Context, limit int) ([]domain.Minister, error)
}

type Service struct {
	paymentRepo  PaymentRepo
	ministerRepo MinisterRepo
}

func New(paymentRepo PaymentRepo, ministerRepo MinisterRepo) *Service {
	return &Service{
		paymentRepo:  paymentRepo,
		ministerRepo: ministerRepo,
	}
}

const (
	ScopeSummary  = "summary"
	ScopeDetailed = "detailed"
)

const reportTitle = "Lavisco Ministers Saving Scheme"

// MinisterGroup is one minister's slice of a summary report.
type MinisterGroup struct {
	MinisterID   int
	MinisterName string
	Amount       float64
	Count        int
}

// ReportData is the single aggregation both renderers consume. Rendering never
// queries; everything a report needs is here.
type ReportData struct {
	Scope       string
	Start       time.Time
	End         time.Time
	Entries     []domain.ReportEntry
	Groups      []MinisterGroup
	TotalAmount float64
	TotalCount  int
}

func (d *ReportData) Title() string {
	if d.Scope == ScopeSummary {
		return reportTitle + " - Summary Report"
	}
	return reportTitle + " - Detailed Report"
}

// Filename names the download: {scope}_report_{YYYYMMDD}_to_{YYYYMMDD}.{ext}.
func (d *ReportData) Filename(ext string) string {
	return fmt.Sprintf("%s_report_%s_to_%s.%s", d.Scope, d.Start.Format("20060102"), d.End.Format("20060102"), ext)
}

// Build filters payments to the inclusive date range and aggregates them. A
// reversed range yields an empty report, not an error. An unknown scope is
// rejected before any query runs.
func (s *Service) Build(ctx context.Context, scope string, start, end time.Time) (*ReportData, error) {
	if scope != ScopeSummary && scope != ScopeDetailed {
		return nil, domain.ErrUnsupportedReportType
	}

	entries, err := s.paymentRepo.FindForReport(ctx, start, end)
	if err != nil {
		zap.L().Error("failed to fetch payments for report", zap.Error(err))
		return nil, err
	}

	data := &ReportData{
		Scope:      scope,
		Start:      start,
		End:        end,
		Entries:    entries,
		TotalCount: len(entries),
	}
	for _, e := range entries {
		data.TotalAmount += e.Amount
	}
	if scope == ScopeSummary {
		data.Groups = groupByMinister(entries)
	}
	return data, nil
}

// groupByMinister folds entries into per-minister totals ordered by amount
// descending. Ties order by minister id ascending so the output is stable
// across store backends.
func groupByMinister(entries []domain.ReportEntry) []MinisterGroup {
	index := make(map[int]int)
	var groups []MinisterGroup
	for _, e := range entries {
		i, ok := index[e.MinisterID]
		if !ok {
			i = len(groups)
			index[e.MinisterID] = i
			groups = append(groups, MinisterGroup{MinisterID: e.MinisterID, MinisterName: e.MinisterName})
		}
		groups[i].Amount += e.Amount
		groups[i].Count++
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Amount != groups[j].Amount {
			return groups[i].Amount > groups[j].Amount
		}
		return groups[i].MinisterID < groups[j].MinisterID
	})
	return groups
}

// DashboardStats backs the landing page.
type DashboardStats struct {
	TotalMinisters int
	TotalSavings   float64
	TopSavers      []domain.Minister
	RecentPayments []domain.ReportEntry
}

func (s *Service) Dashboard(ctx context.Context) (*DashboardStats, error) {
	count, err := s.ministerRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	total, err := s.paymentRepo.TotalAmount(ctx)
	if err != nil {
		return nil, err
	}
	topSavers, err := s.ministerRepo.FindTopSavers(ctx, 3)
	if err != nil {
		return nil, err
	}
	recent, err := s.paymentRepo.FindRecent(ctx, 5)
	if err != nil {
		return nil, err
	}
	return &DashboardStats{
		TotalMinisters: count,
		TotalSavings:   total,
		TopSavers:      topSavers,
		RecentPayments: recent,
	}, nil
}
