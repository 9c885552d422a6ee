package profile

import (
	"context"
	"errors"
	"net/http"

	"github.com/kepha-wiz/ministers/internal/dto"
	"github.com/kepha-wiz/ministers/internal/service/authservice"
	"github.com/kepha-wiz/ministers/pkg/auth"
	"github.com/kepha-wiz/ministers/pkg/utils"
)

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=profile

type Service interface {
	ChangePassword(ctx context.Context, userID int, currentPassword, newPassword string) error
}

type ProfileHandler struct {
	authService Service
}

func New(authService Service) *ProfileHandler {
	return &ProfileHandler{
		authService: authService,
	}
}

// ChangePassword godoc
//
//	@Summary	Change the current user's password
//	@Tags		Profile
//	@Accept		x-www-form-urlencoded
//	@Produce	json
//	@Param		current_password	formData	string	true	"Current password"
//	@Param		new_password		formData	string	true	"New password"
//	@Success	200	{object}	dto.ChangePasswordResponseDTO
//	@Failure	400	{object}	utils.Response	"Wrong current password or invalid new password"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/profile [post]
func (h *ProfileHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	if err := r.ParseForm(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid form data")
		return
	}
	current := r.FormValue("current_password")
	newPassword := r.FormValue("new_password")
	if current == "" || newPassword == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Current and new password are required")
		return
	}

	err := h.authService.ChangePassword(r.Context(), userID, current, newPassword)
	if err != nil {
		if errors.Is(err, authservice.ErrWrongPassword) {
			utils.RespondWithError(w, http.StatusBadRequest, "Current password is incorrect")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ChangePasswordResponseDTO{
		Message: "Your password has been changed successfully",
	})
}
