package payments

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/odyssey-erp/billdesk/internal/platform/httpx"
	"github.com/odyssey-erp/billdesk/internal/shared"
)

// InvoiceDirectory resolves invoice numbers for payment search.
type InvoiceDirectory interface {
	Numbers(ctx context.Context) (map[int64]string, error)
}

type Handler struct {
	logger    *slog.Logger
	service   *Service
	invoices  InvoiceDirectory
	validator *shared.Validator
}

func NewHandler(logger *slog.Logger, service *Service, invoices InvoiceDirectory, validator *shared.Validator) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		invoices:  invoices,
		validator: validator,
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	payments, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list payments failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	term := r.URL.Query().Get("search")
	var numbers map[int64]string
	if term != "" {
		if numbers, err = h.invoices.Numbers(r.Context()); err != nil {
			h.logger.Error("resolve invoice numbers failed", slog.Any("error", err))
			httpx.RespondError(w, err)
			return
		}
	}
	httpx.RespondList(w, r, Search(payments, numbers, term))
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	payment, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.logger.Warn("get payment failed", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, payment)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	payment, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("create payment failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("payment recorded",
		slog.Int64("id", payment.ID),
		slog.Int64("invoice_id", payment.InvoiceID),
		slog.Float64("amount", payment.Amount),
	)
	httpx.JSON(w, http.StatusCreated, payment)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	var req UpdatePaymentRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	payment, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		h.logger.Warn("update payment failed", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, payment)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Warn("delete payment failed", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, httpx.Deleted{Deleted: true})
}
