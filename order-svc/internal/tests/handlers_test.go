package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "group-dining/order-svc/internal/api/http"
	"group-dining/order-svc/internal/domain"
	"group-dining/order-svc/internal/service"
	"group-dining/order-svc/internal/storage"
	"group-dining/order-svc/web"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiResponse struct {
	Success   bool                `json:"success"`
	Error     string              `json:"error"`
	Kind      string              `json:"kind"`
	Message   string              `json:"message"`
	SessionID string              `json:"sessionId"`
	OrderID   string              `json:"orderId"`
	Session   *domain.Session     `json:"session"`
	Summary   *domain.BillSummary `json:"summary"`
	Orders    []domain.Order      `json:"orders"`
	Data      json.RawMessage     `json:"data"`
}

func newTestRouter(t *testing.T) (http.Handler, *storage.SQLTableStore) {
	t.Helper()
	store := newSQLiteStore(t)
	ids := service.NewClockIDs()
	ledger := service.NewLedgerService(store, ids, nil)
	bills := service.NewBillService(ledger)
	sessions := service.NewSessionService(store, ids, bills, nil, service.DefaultQRGenerator{BaseURL: "http://dining.test"})

	handler := httpapi.NewHandler(service.NewMenuService(store), sessions, ledger, bills)
	index, err := web.IndexTemplate()
	require.NoError(t, err)
	handler.Index = index
	return httpapi.NewRouter(handler), store
}

func doRequest(t *testing.T, router http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	var resp apiResponse
	if rr.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	}
	return rr, resp
}

func TestHandler_HealthCheck(t *testing.T) {
	router, _ := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "order-svc", body["service"])
	assert.Equal(t, "healthy", body["status"])
}

func TestHandler_Index(t *testing.T) {
	router, _ := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Group Dining Order Manager")
}

func TestHandler_IndexRendersDinerInputAsText(t *testing.T) {
	router, _ := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	page := rr.Body.String()
	assert.NotContains(t, page, "innerHTML")
	assert.NotContains(t, page, "insertAdjacentHTML")
	assert.Contains(t, page, ".textContent = String(value)")
}

func TestHandler_Menu(t *testing.T) {
	router, store := newTestRouter(t)
	appendRows(t, store, domain.TableMenu,
		domain.Row{"1", "Pizza", "Margherita", "9.50", "", "TRUE", ""},
		domain.Row{"", "Pizza", "Draft", "1", "", "", ""},
	)

	rr, resp := doRequest(t, router, http.MethodGet, "/api/menu", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, resp.Success)
	var items []domain.MenuItem
	require.NoError(t, json.Unmarshal(resp.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Margherita", items[0].Name)
	assert.True(t, items[0].Available)
}

func TestHandler_MenuStoreUnavailable(t *testing.T) {
	router, store := newTestRouter(t)
	_, err := store.DB.ExecContext(context.Background(), "DROP TABLE menu")
	require.NoError(t, err)

	rr, resp := doRequest(t, router, http.MethodGet, "/api/menu", nil)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "StoreUnavailable", resp.Kind)
	assert.NotEmpty(t, resp.Error)
}

func TestHandler_OrderFlow(t *testing.T) {
	router, _ := newTestRouter(t)

	rr, resp := doRequest(t, router, http.MethodPost, "/api/sessions", map[string]string{"sessionName": "Team Dinner"})
	require.Equal(t, http.StatusCreated, rr.Code)
	require.True(t, resp.Success)
	sessionID := resp.SessionID
	require.NotEmpty(t, sessionID)

	rr, resp = doRequest(t, router, http.MethodGet, "/api/sessions/active", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, sessionID, resp.Session.SessionID)

	orderIDs := map[string]string{}
	for _, o := range []struct{ user, category, total string }{
		{"A", "Drinks", "15"},
		{"A", "Food", "10"},
		{"B", "Drinks", "5"},
		{"B", "Food", "20"},
	} {
		rr, resp = doRequest(t, router, http.MethodPost, "/api/orders", map[string]interface{}{
			"sessionId": sessionID, "userName": o.user, "itemId": 1, "itemName": "Item",
			"category": o.category, "quantity": 1, "pricePerItem": o.total, "totalPrice": o.total,
		})
		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "Order added successfully", resp.Message)
		orderIDs[o.user+o.category] = resp.OrderID
	}

	rr, resp = doRequest(t, router, http.MethodPut, "/api/orders/"+orderIDs["AFood"]+"/status", map[string]string{"status": "Served"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Order status updated to Served", resp.Message)

	rr, _ = doRequest(t, router, http.MethodPut, "/api/orders/"+orderIDs["BDrinks"]+"/status", map[string]string{"status": "Ordered"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr, _ = doRequest(t, router, http.MethodPut, "/api/orders/"+orderIDs["ADrinks"]+"/status", map[string]string{"status": "Not Available", "notes": "out"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr, _ = doRequest(t, router, http.MethodDelete, "/api/orders/"+orderIDs["BFood"], nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr, resp = doRequest(t, router, http.MethodGet, "/api/sessions/"+sessionID+"/orders", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var orders []domain.Order
	require.NoError(t, json.Unmarshal(resp.Data, &orders))
	assert.Len(t, orders, 3)

	rr, resp = doRequest(t, router, http.MethodGet, "/api/sessions/"+sessionID+"/bill", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, resp.Summary)
	assert.Equal(t, 3, resp.Summary.TotalItems)
	assertDecimal(t, "30", resp.Summary.TotalAmount)
	assertDecimal(t, "10", resp.Summary.ServedAmount)
	assertDecimal(t, "5", resp.Summary.PendingAmount)
	assertDecimal(t, "15", resp.Summary.CancelledAmount)
	assert.Len(t, resp.Orders, 3)

	rr, resp = doRequest(t, router, http.MethodPost, "/api/sessions/"+sessionID+"/close", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Session closed successfully", resp.Message)
	assert.Equal(t, domain.SessionClosed, resp.Session.Status)
	assertDecimal(t, "10", resp.Session.TotalAmount)

	// With the only session closed, asking for the active one opens a new one.
	rr, resp = doRequest(t, router, http.MethodGet, "/api/sessions/active", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotEqual(t, sessionID, resp.Session.SessionID)
	assert.Equal(t, service.ImplicitSessionName, resp.Session.SessionName)
}

func TestHandler_CreateSessionWithoutBody(t *testing.T) {
	router, _ := newTestRouter(t)

	rr, resp := doRequest(t, router, http.MethodPost, "/api/sessions", nil)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.SessionID)
}

func TestHandler_Failures(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       interface{}
		wantStatus int
		wantKind   string
	}{
		{name: "unknown session", method: http.MethodGet, path: "/api/sessions/SESSION_404", wantStatus: http.StatusNotFound, wantKind: "NotFound"},
		{name: "close unknown session", method: http.MethodPost, path: "/api/sessions/SESSION_404/close", wantStatus: http.StatusNotFound, wantKind: "NotFound"},
		{name: "qr for unknown session", method: http.MethodGet, path: "/api/sessions/SESSION_404/qrcode", wantStatus: http.StatusNotFound, wantKind: "NotFound"},
		{name: "delete unknown order", method: http.MethodDelete, path: "/api/orders/ORD_404", wantStatus: http.StatusNotFound, wantKind: "NotFound"},
		{name: "update unknown order", method: http.MethodPut, path: "/api/orders/ORD_404/status", body: map[string]string{"status": "Served"}, wantStatus: http.StatusNotFound, wantKind: "NotFound"},
		{name: "unknown status", method: http.MethodPut, path: "/api/orders/ORD_404/status", body: map[string]string{"status": "Cooking"}, wantStatus: http.StatusBadRequest, wantKind: "Unexpected"},
		{name: "order without session", method: http.MethodPost, path: "/api/orders", body: map[string]interface{}{"quantity": 1}, wantStatus: http.StatusBadRequest, wantKind: "Unexpected"},
		{name: "malformed order body", method: http.MethodPost, path: "/api/orders", body: "not an object", wantStatus: http.StatusBadRequest, wantKind: "Unexpected"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			rr, resp := doRequest(t, router, testCase.method, testCase.path, testCase.body)

			assert.Equal(t, testCase.wantStatus, rr.Code)
			assert.False(t, resp.Success)
			assert.Equal(t, testCase.wantKind, resp.Kind)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestHandler_QRCode(t *testing.T) {
	router, _ := newTestRouter(t)
	_, resp := doRequest(t, router, http.MethodPost, "/api/sessions", map[string]string{"sessionName": "QR"})

	req := httptest.NewRequest(http.MethodGet, "/api/sessions/"+resp.SessionID+"/qrcode", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rr.Body.Bytes(), []byte("\x89PNG")))
}

type panickingMenu struct{}

func (panickingMenu) Load(ctx context.Context) ([]domain.MenuItem, error) {
	panic("menu exploded")
}

func TestHandler_RecoverFromPanic(t *testing.T) {
	router := httpapi.NewRouter(httpapi.NewHandler(panickingMenu{}, nil, nil, nil))

	rr, resp := doRequest(t, router, http.MethodGet, "/api/menu", nil)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Unexpected", resp.Kind)
	assert.Contains(t, resp.Error, "menu exploded")
}
