package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procurement/internal/catalog"
	"procurement/internal/service"
	"procurement/internal/store"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	st := store.NewMemoryStore(catalog.NewSnapshot())
	audit := service.NewAuditService()

	router := gin.New()
	group := router.Group("/")
	NewRequestHandler(service.NewRequestService(st, audit, nil)).RegisterRoutes(group)
	NewOrderHandler(service.NewOrderService(st, audit, nil)).RegisterRoutes(group)
	NewPaymentHandler(service.NewPaymentService(st, audit, nil)).RegisterRoutes(group)
	NewCatalogHandler(service.NewCatalogService(st, audit, nil)).RegisterRoutes(group)
	NewStatisticsHandler(service.NewStatisticsService(st)).RegisterRoutes(group)
	NewAuditHandler(audit).RegisterRoutes(group)
	return router
}

type envelope struct {
	Status     string          `json:"status"`
	StatusCode int             `json:"status_code"`
	Data       json.RawMessage `json:"data"`
	Error      string          `json:"error"`
}

func do(t *testing.T, router *gin.Engine, method, path, body string) (int, envelope) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec.Code, env
}

const requestPayload = `{
	"requester_name": "Alice",
	"requester_email": "alice@example.com",
	"department": "Operations",
	"title": "Office Manager",
	"needed_by": "2026-10-01",
	"lines": [{"product_id": "PROD-1", "quantity": 2}]
}`

func createApprovedRequest(t *testing.T, router *gin.Engine) string {
	t.Helper()

	code, env := do(t, router, http.MethodPost, "/api/requests", requestPayload)
	require.Equal(t, http.StatusCreated, code)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	for _, status := range []string{"SUBMITTED", "APPROVED"} {
		code, _ = do(t, router, http.MethodPost,
			"/api/requests/"+created.ID+"/transition",
			fmt.Sprintf(`{"status": %q}`, status))
		require.Equal(t, http.StatusOK, code)
	}
	return created.ID
}

func TestCreateRequestEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	code, env := do(t, router, http.MethodPost, "/api/requests", requestPayload)

	assert.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "success", env.Status)

	var data struct {
		ID     string  `json:"id"`
		Status string  `json:"status"`
		Total  float64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "PR-0001", data.ID)
	assert.Equal(t, "DRAFT", data.Status)
	assert.Greater(t, data.Total, 0.0)
}

func TestCreateRequestRejectsBadPayloads(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{`},
		{name: "binding failure", body: `{"requester_name": "Alice"}`},
		{name: "unknown product", body: strings.Replace(requestPayload, "PROD-1", "PROD-NOPE", 1)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router := newTestRouter(t)
			code, env := do(t, router, http.MethodPost, "/api/requests", tt.body)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Equal(t, "error", env.Status)
			assert.NotEmpty(t, env.Error)
		})
	}
}

func TestErrorStatusMapping(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	code, env := do(t, router, http.MethodPost, "/api/requests", requestPayload)
	require.Equal(t, http.StatusCreated, code)

	// Missing documents map to 404.
	code, _ = do(t, router, http.MethodGet, "/api/requests/PR-0404", "")
	assert.Equal(t, http.StatusNotFound, code)

	// Illegal transitions map to 400.
	code, env = do(t, router, http.MethodPost, "/api/requests/PR-0001/transition", `{"status": "APPROVED"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env.Error, "APPROVED")

	// Orders from a draft request map to 400.
	code, _ = do(t, router, http.MethodPost, "/api/orders", `{
		"request_id": "PR-0001",
		"vendor": "ACME Corp",
		"buyer_name": "Bob",
		"buyer_email": "bob@example.com",
		"order_date": "2026-09-01"
	}`)
	assert.Equal(t, http.StatusBadRequest, code)

	// Payments against an unknown order map to 400.
	code, _ = do(t, router, http.MethodPost, "/api/payments", `{
		"po_id": "PO-0404",
		"amount": 10,
		"submitter_name": "Carol",
		"submitter_email": "carol@example.com",
		"invoice_number": "INV-1",
		"invoice_date": "2026-09-15"
	}`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestOrderAndPaymentEndpoints(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	requestID := createApprovedRequest(t, router)

	code, env := do(t, router, http.MethodPost, "/api/orders", fmt.Sprintf(`{
		"request_id": %q,
		"vendor": "ACME Corp",
		"buyer_name": "Bob",
		"buyer_email": "bob@example.com",
		"order_date": "2026-09-01"
	}`, requestID))
	require.Equal(t, http.StatusCreated, code)

	var order struct {
		ID           string  `json:"id"`
		Status       string  `json:"status"`
		PaymentTerms string  `json:"payment_terms"`
		Total        float64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &order))
	assert.Equal(t, "PO-0001", order.ID)
	assert.Equal(t, "OPEN", order.Status)
	assert.Equal(t, "NET_30", order.PaymentTerms)

	code, env = do(t, router, http.MethodPost, "/api/payments", fmt.Sprintf(`{
		"po_id": %q,
		"amount": %v,
		"submitter_name": "Carol",
		"submitter_email": "carol@example.com",
		"invoice_number": "INV-1",
		"invoice_date": "2026-09-15"
	}`, order.ID, order.Total))
	require.Equal(t, http.StatusCreated, code)

	var payment struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payment))
	assert.Equal(t, "PAY-0001", payment.ID)
	assert.Equal(t, "SUBMITTED", payment.Status)

	// Overpayment on the same order is rejected now.
	code, _ = do(t, router, http.MethodPost, "/api/payments", fmt.Sprintf(`{
		"po_id": %q,
		"amount": %v,
		"submitter_name": "Carol",
		"submitter_email": "carol@example.com",
		"invoice_number": "INV-2",
		"invoice_date": "2026-09-16"
	}`, order.ID, order.Total+1))
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestDeleteRequestDegradesOrderView(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	requestID := createApprovedRequest(t, router)

	code, _ := do(t, router, http.MethodPost, "/api/orders", fmt.Sprintf(`{
		"request_id": %q,
		"vendor": "ACME Corp",
		"buyer_name": "Bob",
		"buyer_email": "bob@example.com",
		"order_date": "2026-09-01"
	}`, requestID))
	require.Equal(t, http.StatusCreated, code)

	code, _ = do(t, router, http.MethodDelete, "/api/requests/"+requestID, "")
	require.Equal(t, http.StatusOK, code)

	code, env := do(t, router, http.MethodGet, "/api/orders/PO-0001", "")
	require.Equal(t, http.StatusOK, code)

	var order struct {
		RequestID string          `json:"request_id"`
		Request   json.RawMessage `json:"request"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &order))
	assert.Equal(t, requestID, order.RequestID)
	assert.Empty(t, order.Request, "deleted source request is omitted, not an error")
}

func TestCategoryAndStatisticsEndpoints(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	createApprovedRequest(t, router)

	code, env := do(t, router, http.MethodGet, "/api/categories", "")
	require.Equal(t, http.StatusOK, code)

	var categories []struct {
		ID              string  `json:"id"`
		BudgetAllocated float64 `json:"budget_allocated"`
		BudgetCommitted float64 `json:"budget_committed"`
		BudgetAvailable float64 `json:"budget_available"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &categories))
	require.NotEmpty(t, categories)

	var committed float64
	for _, c := range categories {
		committed += c.BudgetCommitted
		assert.InDelta(t, c.BudgetAllocated-c.BudgetCommitted, c.BudgetAvailable, 0.001)
	}
	assert.Greater(t, committed, 0.0, "approved request commits budget")

	code, env = do(t, router, http.MethodGet, "/api/statistics", "")
	require.Equal(t, http.StatusOK, code)

	var stats struct {
		RequestsByStatus map[string]int `json:"requests_by_status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, 1, stats.RequestsByStatus["APPROVED"])
}

func TestResetEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	createApprovedRequest(t, router)

	code, _ := do(t, router, http.MethodPost, "/api/admin/reset", "")
	require.Equal(t, http.StatusOK, code)

	code, env := do(t, router, http.MethodGet, "/api/requests", "")
	require.Equal(t, http.StatusOK, code)

	var requests []json.RawMessage
	if len(env.Data) > 0 && string(env.Data) != "null" {
		require.NoError(t, json.Unmarshal(env.Data, &requests))
	}
	assert.Empty(t, requests)
}

func TestAuditEndpointPagination(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	createApprovedRequest(t, router)

	code, env := do(t, router, http.MethodGet, "/api/audit?page=1&limit=2", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "success", env.Status)
	assert.NotEmpty(t, env.Data)
}
