package handlers

import (
	"net/http"

	_ "github.com/kepha-wiz/ministers/docs"
	authhandlers "github.com/kepha-wiz/ministers/internal/handlers/auth"
	dashboardhandlers "github.com/kepha-wiz/ministers/internal/handlers/dashboard"
	ministershandlers "github.com/kepha-wiz/ministers/internal/handlers/ministers"
	paymentshandlers "github.com/kepha-wiz/ministers/internal/handlers/payments"
	profilehandlers "github.com/kepha-wiz/ministers/internal/handlers/profile"
	reportshandlers "github.com/kepha-wiz/ministers/internal/handlers/reports"
	"github.com/kepha-wiz/ministers/internal/service"
	"github.com/kepha-wiz/ministers/pkg/auth"
	"github.com/kepha-wiz/ministers/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	LoginPage(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type MinisterHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Add(w http.ResponseWriter, r *http.Request)
	Edit(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Add(w http.ResponseWriter, r *http.Request)
	Edit(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ReportHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	GeneratePDF(w http.ResponseWriter, r *http.Request)
}

type DashboardHandler interface {
	Show(w http.ResponseWriter, r *http.Request)
}

type ProfileHandler interface {
	ChangePassword(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler      AuthHandler
	MinisterHandler  MinisterHandler
	PaymentHandler   PaymentHandler
	ReportHandler    ReportHandler
	DashboardHandler DashboardHandler
	ProfileHandler   ProfileHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:      authhandlers.New(s.AuthService, s.SessionLifetime),
		MinisterHandler:  ministershandlers.New(s.MinisterService),
		PaymentHandler:   paymentshandlers.New(s.PaymentService),
		ReportHandler:    reportshandlers.New(s.ReportService),
		DashboardHandler: dashboardhandlers.New(s.DashboardService),
		ProfileHandler:   profilehandlers.New(s.ProfileService),
		jwtService:       s.JWTService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Post("/login", h.AuthHandler.Login)
	r.Get("/login", h.AuthHandler.LoginPage)
	r.Get("/logout", h.AuthHandler.Logout)

	r.Group(func(r chi.Router) {
		r.Use(auth.SessionMiddleware(h.jwtService))

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/dashboard", http.StatusFound)
		})
		r.Get("/dashboard", h.DashboardHandler.Show)

		r.Route("/ministers", func(r chi.Router) {
			r.Get("/", h.MinisterHandler.List)
			r.Post("/add", h.MinisterHandler.Add)
			r.Post("/edit/{id}", h.MinisterHandler.Edit)
			r.Post("/delete/{id}", h.MinisterHandler.Delete)
		})
		r.Route("/payments", func(r chi.Router) {
			r.Get("/", h.PaymentHandler.List)
			r.Post("/add", h.PaymentHandler.Add)
			r.Post("/edit/{id}", h.PaymentHandler.Edit)
			r.Post("/delete/{id}", h.PaymentHandler.Delete)
		})
		r.Route("/reports", func(r chi.Router) {
			r.Post("/generate/{type}", h.ReportHandler.Generate)
			r.Post("/pdf/{type}", h.ReportHandler.GeneratePDF)
		})
		r.Post("/profile", h.ProfileHandler.ChangePassword)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.RespondWithError(w, http.StatusNotFound, "Page not found")
	})

	return r
}
