package ministers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/kepha-wiz/ministers/internal/domain"
	"github.com/kepha-wiz/ministers/internal/dto"
	"github.com/kepha-wiz/ministers/pkg/utils"

	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=ministers.go -destination=ministers_mock.go -package=ministers

type Service interface {
	List(ctx context.Context, search string) ([]domain.Minister, error)
	Get(ctx context.Context, id int) (*domain.Minister, error)
	Create(ctx context.Context, minister *domain.Minister) (*domain.Minister, error)
	Update(ctx context.Context, minister *domain.Minister) (*domain.Minister, error)
	Delete(ctx context.Context, id int) error
}

type MinisterHandler struct {
	ministerService Service
}

func New(ministerService Service) *MinisterHandler {
	return &MinisterHandler{
		ministerService: ministerService,
	}
}

const dateLayout = "2006-01-02"

func toDTO(m *domain.Minister) dto.MinisterResponseDTO {
	return dto.MinisterResponseDTO{
		ID:           m.ID,
		FullName:     m.FullName,
		Department:   m.Department,
		Phone:        m.Phone,
		Email:        m.Email,
		DateJoined:   m.DateJoined.Format(dateLayout),
		TotalSavings: m.TotalSavings,
	}
}

func respondServiceError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		utils.RespondWithError(w, http.StatusBadRequest, ve.Error())
	case errors.Is(err, domain.ErrMinisterNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Minister not found")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func ministerFromForm(r *http.Request) (*domain.Minister, error) {
	if err := r.ParseForm(); err != nil {
		return nil, errors.New("invalid form data")
	}
	m := &domain.Minister{
		FullName:   r.FormValue("full_name"),
		Department: r.FormValue("department"),
		Phone:      r.FormValue("phone"),
		Email:      r.FormValue("email"),
	}
	if v := r.FormValue("date_joined"); v != "" {
		d, err := time.Parse(dateLayout, v)
		if err != nil {
			return nil, errors.New("invalid date_joined, expected YYYY-MM-DD")
		}
		m.DateJoined = d
	}
	return m, nil
}

// List godoc
//
//	@Summary	List ministers
//	@Description	List all ministers, optionally filtered by a case-insensitive search against full name or department
//	@Tags		Ministers
//	@Produce	json
//	@Param		search	query		string	false	"Search term"
//	@Success	200		{array}		dto.MinisterResponseDTO
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/ministers [get]
func (h *MinisterHandler) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	list, err := h.ministerService.List(r.Context(), search)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.MinisterResponseDTO, len(list))
	for i := range list {
		response[i] = toDTO(&list[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Add godoc
//
//	@Summary	Add a minister
//	@Tags		Ministers
//	@Accept		x-www-form-urlencoded
//	@Produce	json
//	@Param		full_name	formData	string	true	"Full name"
//	@Param		department	formData	string	false	"Department"
//	@Param		phone		formData	string	false	"Phone"
//	@Param		email		formData	string	false	"Email"
//	@Param		date_joined	formData	string	true	"Date joined (YYYY-MM-DD)"
//	@Success	200	{object}	dto.MinisterResponseDTO
//	@Failure	400	{object}	utils.Response	"Validation error"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/ministers/add [post]
func (h *MinisterHandler) Add(w http.ResponseWriter, r *http.Request) {
	minister, err := ministerFromForm(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.ministerService.Create(r.Context(), minister)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(created))
}

// Edit godoc
//
//	@Summary	Edit a minister
//	@Tags		Ministers
//	@Accept		x-www-form-urlencoded
//	@Produce	json
//	@Param		id	path	int	true	"Minister ID"
//	@Success	200	{object}	dto.MinisterResponseDTO
//	@Failure	400	{object}	utils.Response	"Validation error"
//	@Failure	404	{object}	utils.Response	"Minister not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/ministers/edit/{id} [post]
func (h *MinisterHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid minister id")
		return
	}
	minister, err := ministerFromForm(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	minister.ID = id
	updated, err := h.ministerService.Update(r.Context(), minister)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(updated))
}

// Delete godoc
//
//	@Summary	Delete a minister and all their payments
//	@Tags		Ministers
//	@Produce	json
//	@Param		id	path	int	true	"Minister ID"
//	@Success	200	{object}	utils.Response
//	@Failure	404	{object}	utils.Response	"Minister not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/ministers/delete/{id} [post]
func (h *MinisterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid minister id")
		return
	}
	if err := h.ministerService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Minister deleted"})
}
