package expenses

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"cloud.google.com/go/civil"

	"github.com/odyssey-erp/billdesk/internal/categorize"
	"github.com/odyssey-erp/billdesk/internal/platform/httpx"
	"github.com/odyssey-erp/billdesk/internal/shared"
)

type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *shared.Validator
}

func NewHandler(logger *slog.Logger, service *Service, validator *shared.Validator) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		validator: validator,
	}
}

// List defaults to newest first, matching the expense register view.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list expenses failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	query := r.URL.Query()
	sortKey := query.Get("sort")
	if sortKey == "" {
		sortKey = "date"
	}
	httpx.RespondList(w, r, Apply(expenses, Query{
		Search:   query.Get("search"),
		Category: query.Get("category"),
		Range:    Range(query.Get("range")),
		Sort:     sortKey,
		Desc:     !strings.EqualFold(query.Get("order"), "asc"),
	}, h.service.Now()))
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	expense, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.logger.Warn("get expense failed", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, expense)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateExpenseRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	expense, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("create expense failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("expense created",
		slog.Int64("id", expense.ID),
		slog.String("category", expense.Category),
		slog.Float64("amount", expense.Amount),
	)
	httpx.JSON(w, http.StatusCreated, expense)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	var req UpdateExpenseRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	expense, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		h.logger.Warn("update expense failed", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, expense)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Warn("delete expense failed", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, httpx.Deleted{Deleted: true})
}

func (h *Handler) CategorySummary(w http.ResponseWriter, r *http.Request) {
	totals, err := h.service.ByCategory(r.Context())
	if err != nil {
		h.logger.Error("expense category summary failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, SortedCategoryTotals(totals))
}

func (h *Handler) Reimbursable(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.Reimbursable(r.Context())
	if err != nil {
		h.logger.Error("list reimbursable expenses failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.RespondList(w, r, rows)
}

func (h *Handler) DateRange(w http.ResponseWriter, r *http.Request) {
	start, err := civil.ParseDate(r.URL.Query().Get("start"))
	if err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: start must be YYYY-MM-DD", httpx.ErrBadRequest))
		return
	}
	end, err := civil.ParseDate(r.URL.Query().Get("end"))
	if err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: end must be YYYY-MM-DD", httpx.ErrBadRequest))
		return
	}
	rows, err := h.service.ByDateRange(r.Context(), start, end)
	if err != nil {
		h.logger.Error("list expenses by date range failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.RespondList(w, r, rows)
}

func (h *Handler) SuggestCategory(w http.ResponseWriter, r *http.Request) {
	var req SuggestCategoryRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	category, ok := h.service.SuggestCategory(req.Description, req.Vendor)
	resp := SuggestCategoryResponse{Category: category, Matched: ok, Subcategories: []string{}}
	if ok {
		resp.Subcategories = categorize.Subcategories[category]
	}
	httpx.JSON(w, http.StatusOK, resp)
}

func (h *Handler) Catalog(w http.ResponseWriter, _ *http.Request) {
	httpx.JSON(w, http.StatusOK, Catalog{
		Categories:     categorize.Categories,
		Subcategories:  categorize.Subcategories,
		PaymentMethods: categorize.PaymentMethods,
	})
}
