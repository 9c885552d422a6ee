package payments

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

//go:generate mockgen -source=payments.go -destination=payments_mock.go -package=payments

type Service interface {
	List(ctx context.Context, start, end *time.Time) ([]domain.Payment, error)
	Get(ctx context.Context, id int) (*domain.Payment, error)
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	Update(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	Delete(ctx context.Context, id int) error
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

const dateLayout = "2006-01-02"

func toDTO(p *domain.Payment) dto.PaymentResponseDTO {
	return dto.PaymentResponseDTO{
		ID:          p.ID,
		MinisterID:  p.MinisterID,
		Amount:      p.Amount,
		PaymentDate: p.PaymentDate.Format(dateLayout),
		WeekNumber:  p.WeekNumber,
		Note:        p.Note,
	}
}

func respondServiceError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		utils.RespondWithError(w, http.StatusBadRequest, ve.Error())
	case errors.Is(err, domain.ErrPaymentNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Payment not found")
	case errors.Is(err, domain.ErrMinisterNotFound):
		utils.RespondWithError(w, http.StatusBadRequest, "Minister does not exist")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func optionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func paymentFromForm(r *http.Request) (*domain.Payment, error) {
	if err := r.ParseForm(); err != nil {
		return nil, errors.New("invalid form data")
	}
	p := &domain.Payment{
		Note: r.FormValue("note"),
	}
	if v := r.FormValue("minister_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.New("invalid minister_id")
		}
		p.MinisterID = id
	}
	if v := r.FormValue("amount"); v != "" {
		amount, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, errors.New("invalid amount")
		}
		p.Amount = amount
	}
	if v := r.FormValue("payment_date"); v != "" {
		d, err := time.Parse(dateLayout, v)
		if err != nil {
			return nil, errors.New("invalid payment_date, expected YYYY-MM-DD")
		}
		p.PaymentDate = d
	}
	if v := r.FormValue("week_number"); v != "" {
		week, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.New("invalid week_number")
		}
		p.WeekNumber = week
	}
	return p, nil
}

// List godoc
//
//	@Summary	List payments
//	@Description	List payments newest first, optionally bounded by an inclusive payment-date range
//	@Tags		Payments
//	@Produce	json
//	@Param		start_date	query		string	false	"Start date (YYYY-MM-DD)"
//	@Param		end_date	query		string	false	"End date (YYYY-MM-DD)"
//	@Success	200			{array}		dto.PaymentResponseDTO
//	@Failure	400			{object}	utils.Response	"Invalid date bound"
//	@Failure	500			{object}	utils.Response	"Internal server error"
//	@Router		/payments [get]
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	start, err := optionalDate(r.URL.Query().Get("start_date"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid start_date, expected YYYY-MM-DD")
		return
	}
	end, err := optionalDate(r.URL.Query().Get("end_date"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid end_date, expected YYYY-MM-DD")
		return
	}

	list, err := h.paymentService.List(r.Context(), start, end)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.PaymentResponseDTO, len(list))
	for i := range list {
		response[i] = toDTO(&list[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Add godoc
//
//	@Summary	Record a payment
//	@Description	Record a contribution; the minister's running total is updated in the same transaction
//	@Tags		Payments
//	@Accept		x-www-form-urlencoded
//	@Produce	json
//	@Param		minister_id		formData	int		true	"Minister ID"
//	@Param		amount			formData	number	true	"Amount"
//	@Param		payment_date	formData	string	true	"Payment date (YYYY-MM-DD)"
//	@Param		week_number		formData	int		false	"Week number (ISO week of payment date when omitted)"
//	@Param		note			formData	string	false	"Note"
//	@Success	200	{object}	dto.PaymentResponseDTO
//	@Failure	400	{object}	utils.Response	"Validation error"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/payments/add [post]
func (h *PaymentHandler) Add(w http.ResponseWriter, r *http.Request) {
	payment, err := paymentFromForm(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.paymentService.Create(r.Context(), payment)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(created))
}

// Edit godoc
//
//	@Summary	Edit a payment
//	@Description	Edit a payment; when the minister changes, both old and new running totals are updated
//	@Tags		Payments
//	@Accept		x-www-form-urlencoded
//	@Produce	json
//	@Param		id	path	int	true	"Payment ID"
//	@Success	200	{object}	dto.PaymentResponseDTO
//	@Failure	400	{object}	utils.Response	"Validation error"
//	@Failure	404	{object}	utils.Response	"Payment not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/payments/edit/{id} [post]
func (h *PaymentHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payment id")
		return
	}
	payment, err := paymentFromForm(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	payment.ID = id
	updated, err := h.paymentService.Update(r.Context(), payment)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(updated))
}

// Delete godoc
//
//	@Summary	Delete a payment
//	@Tags		Payments
//	@Produce	json
//	@Param		id	path	int	true	"Payment ID"
//	@Success	200	{object}	utils.Response
//	@Failure	404	{object}	utils.Response	"Payment not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/payments/delete/{id} [post]
func (h *PaymentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payment id")
		return
	}
	if err := h.paymentService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Payment deleted"})
}
