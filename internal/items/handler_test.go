package items

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/billdesk/internal/platform/httpx"
	"github.com/odyssey-erp/billdesk/internal/shared"
)

func newTestRouter(svc *Service) http.Handler {
	h := NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), svc, shared.NewValidator())
	r := chi.NewRouter()
	r.Route("/items", h.MountRoutes)
	return r
}

func TestHandlerRejectsInvalidItem(t *testing.T) {
	router := newTestRouter(newTestService())

	rec := httptest.NewRecorder()
	body := `{"name":"Bolt","hsn_code":"7318","price":0,"gst_rate":120}`
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(body)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var problem httpx.ProblemDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, "must be greater than 0", problem.Errors["price"])
	assert.Equal(t, "must be at most 100", problem.Errors["gst_rate"])
}

func TestHandlerListAndDelete(t *testing.T) {
	router := newTestRouter(newTestService(
		Item{ID: 1, Name: "Consulting", HSNCode: "998311", Price: 1500, GSTRate: 18},
		Item{ID: 2, Name: "Steel Rod", HSNCode: "7214", Price: 250, GSTRate: 12},
	))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items?search=steel", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var page httpx.ListEnvelope[Item]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page.Data, 1)
	assert.Equal(t, int64(2), page.Data[0].ID)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/items/2", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted":true}`, rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/2", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
