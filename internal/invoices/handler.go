package invoices

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/odyssey-erp/billdesk/internal/platform/httpx"
	"github.com/odyssey-erp/billdesk/internal/shared"
)

// CustomerDirectory resolves customer names for invoice search.
type CustomerDirectory interface {
	Names(ctx context.Context) (map[int64]string, error)
}

type Handler struct {
	logger    *slog.Logger
	service   *Service
	customers CustomerDirectory
	validator *shared.Validator
}

func NewHandler(logger *slog.Logger, service *Service, customers CustomerDirectory, validator *shared.Validator) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		customers: customers,
		validator: validator,
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list invoices failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	term := r.URL.Query().Get("search")
	var names map[int64]string
	if term != "" {
		if names, err = h.customers.Names(r.Context()); err != nil {
			h.logger.Error("resolve customer names failed", slog.Any("error", err))
			httpx.RespondError(w, err)
			return
		}
	}
	httpx.RespondList(w, r, Filter(invoices, names, term, Status(r.URL.Query().Get("status"))))
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	invoice, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.logger.Warn("get invoice failed", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, invoice)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateInvoiceRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	invoice, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("create invoice failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("invoice created",
		slog.Int64("id", invoice.ID),
		slog.String("number", invoice.InvoiceNumber),
		slog.Float64("total", invoice.Total),
	)
	httpx.JSON(w, http.StatusCreated, invoice)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	var req UpdateInvoiceRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	invoice, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		h.logger.Warn("update invoice failed", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, invoice)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Warn("delete invoice failed", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, httpx.Deleted{Deleted: true})
}

// PreviewTotals prices draft lines without storing anything.
func (h *Handler) PreviewTotals(w http.ResponseWriter, r *http.Request) {
	var req PreviewTotalsRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, CalculateTotals(toLines(req.Items)))
}
