package service

import (
	"time"

	"github.com/kepha-wiz/ministers/internal/config"
	dashboardhandlers "github.com/kepha-wiz/ministers/internal/handlers/dashboard"
	ministershandlers "github.com/kepha-wiz/ministers/internal/handlers/ministers"
	paymentshandlers "github.com/kepha-wiz/ministers/internal/handlers/payments"
	profilehandlers "github.com/kepha-wiz/ministers/internal/handlers/profile"
	reportshandlers "github.com/kepha-wiz/ministers/internal/handlers/reports"
	"github.com/kepha-wiz/ministers/internal/pg"
	"github.com/kepha-wiz/ministers/internal/repo"
	"github.com/kepha-wiz/ministers/internal/service/authservice"
	"github.com/kepha-wiz/ministers/internal/service/ministerservice"
	"github.com/kepha-wiz/ministers/internal/service/paymentservice"
	"github.com/kepha-wiz/ministers/internal/service/reportservice"
	pkgauth "github.com/kepha-wiz/ministers/pkg/auth"
)

type Services struct {
	AuthService      *authservice.Service
	MinisterService  ministershandlers.Service
	PaymentService   paymentshandlers.Service
	ReportService    reportshandlers.Service
	DashboardService dashboardhandlers.Service
	ProfileService   profilehandlers.Service

	JWTService      pkgauth.JWTServiceInterface
	SessionLifetime time.Duration
}

func New(repo *repo.Repositories, txManager pg.TXManager, cfg *config.Config) *Services {
	jwtService := pkgauth.NewJWTService(cfg.SecretKey, cfg.SessionLifetime)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, jwtService)
	ministerService := ministerservice.New(repo.MinisterRepo)
	paymentService := paymentservice.New(repo.PaymentRepo, repo.MinisterRepo, txManager)
	reportService := reportservice.New(repo.PaymentRepo, repo.MinisterRepo)

	return &Services{
		AuthService:      authService,
		MinisterService:  ministerService,
		PaymentService:   paymentService,
		ReportService:    reportService,
		DashboardService: reportService,
		ProfileService:   authService,
		JWTService:       jwtService,
		SessionLifetime:  cfg.SessionLifetime,
	}
}
