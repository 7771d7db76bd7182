package analytichttp

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/odyssey-erp/billdesk/internal/analytics"
	"github.com/odyssey-erp/billdesk/internal/analytics/export"
	"github.com/odyssey-erp/billdesk/internal/platform/httpx"
)

const requestTimeout = 5 * time.Second

// AnalyticsService defines the aggregate contract used by the handler.
type AnalyticsService interface {
	Dashboard(ctx context.Context) (analytics.Dashboard, error)
	Report(ctx context.Context, p analytics.Period) (analytics.Report, error)
}

// Handler serves the dashboard and report endpoints.
type Handler struct {
	logger  *slog.Logger
	service AnalyticsService
	csvPool sync.Pool
	// csvPerMinute caps CSV exports per client; zero disables the limit.
	csvPerMinute int
}

// NewHandler constructs the analytics HTTP handler.
func NewHandler(logger *slog.Logger, service AnalyticsService, csvPerMinute int) *Handler {
	h := &Handler{
		logger:       logger,
		service:      service,
		csvPerMinute: csvPerMinute,
	}
	h.csvPool.New = func() any { return new(bytes.Buffer) }
	return h
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	dash, err := h.service.Dashboard(ctx)
	if err != nil {
		h.handleServerError(w, "load dashboard", err)
		return
	}
	httpx.JSON(w, http.StatusOK, dash)
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	report, ok := h.loadReport(w, r)
	if !ok {
		return
	}
	httpx.JSON(w, http.StatusOK, report)
}

func (h *Handler) handleCSV(w http.ResponseWriter, r *http.Request) {
	report, ok := h.loadReport(w, r)
	if !ok {
		return
	}

	buf := h.csvPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer func() {
		buf.Reset()
		h.csvPool.Put(buf)
	}()

	if err := export.WriteReportCSV(buf, report); err != nil {
		h.handleServerError(w, "write report csv", err)
		return
	}

	filename := fmt.Sprintf("gst-summary-%s.csv", report.Period)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logError("stream csv", err)
	}
}

func (h *Handler) loadReport(w http.ResponseWriter, r *http.Request) (analytics.Report, bool) {
	period, err := analytics.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		httpx.RespondError(w, err)
		return analytics.Report{}, false
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	report, err := h.service.Report(ctx, period)
	if err != nil {
		h.handleServerError(w, "load report", err)
		return analytics.Report{}, false
	}
	return report, true
}

func (h *Handler) handleServerError(w http.ResponseWriter, context string, err error) {
	h.logError(context, err)
	httpx.RespondError(w, err)
}

func (h *Handler) logError(context string, err error) {
	if h.logger == nil {
		return
	}
	h.logger.Error("analytics handler error", slog.String("context", context), slog.Any("error", err))
}
