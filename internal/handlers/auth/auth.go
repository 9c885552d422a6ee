package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/kepha-wiz/ministers/internal/domain"
	"github.com/kepha-wiz/ministers/internal/dto"
	pkgauth "github.com/kepha-wiz/ministers/pkg/auth"
	"github.com/kepha-wiz/ministers/pkg/utils"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=auth

type Service interface {
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	GenerateToken(userID int) (string, error)
}

type AuthHandler struct {
	authService     Service
	sessionLifetime time.Duration
}

func New(authService Service, sessionLifetime time.Duration) *AuthHandler {
	return &AuthHandler{
		authService:     authService,
		sessionLifetime: sessionLifetime,
	}
}

// Login godoc
//
//	@Summary		Sign in
//	@Description	Authenticate with username and password; a session cookie is set on success
//	@Tags			Auth
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			username	formData	string	true	"Username"
//	@Param			password	formData	string	true	"Password"
//	@Success		200	{object}	dto.LoginResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"Invalid username or password"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	username := r.FormValue("username")
	password := r.FormValue("password")
	if username == "" || password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := h.authService.Authenticate(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	token, err := h.authService.GenerateToken(user.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	pkgauth.SetSessionCookie(w, token, h.sessionLifetime)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Message: "Signed in successfully",
	})
}

// LoginPage handles the redirect target for unauthenticated requests.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Please log in to access this page."})
}

// Logout godoc
//
//	@Summary	Sign out
//	@Tags		Auth
//	@Success	302	{string}	string	"Redirect to login"
//	@Router		/logout [get]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	pkgauth.ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusFound)
}
