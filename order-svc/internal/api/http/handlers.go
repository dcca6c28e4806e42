package httpapi

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"time"

	"group-dining/order-svc/internal/domain"
	"group-dining/order-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Menu     service.MenuServiceInterface
	Sessions service.SessionServiceInterface
	Ledger   service.LedgerServiceInterface
	Bills    service.BillServiceInterface
	Index    *template.Template
}

func NewHandler(menu service.MenuServiceInterface, sessions service.SessionServiceInterface, ledger service.LedgerServiceInterface, bills service.BillServiceInterface) *Handler {
	return &Handler{
		Menu:     menu,
		Sessions: sessions,
		Ledger:   ledger,
		Bills:    bills,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/", h.index).Methods("GET")

	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")

	r.HandleFunc("/api/sessions", h.createSession).Methods("POST")
	r.HandleFunc("/api/sessions/active", h.getActiveSession).Methods("GET")
	r.HandleFunc("/api/sessions/{id}", h.getSession).Methods("GET")
	r.HandleFunc("/api/sessions/{id}/close", h.closeSession).Methods("POST")
	r.HandleFunc("/api/sessions/{id}/qrcode", h.getSessionQRCode).Methods("GET")
	r.HandleFunc("/api/sessions/{id}/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/sessions/{id}/bill", h.getBill).Methods("GET")

	r.HandleFunc("/api/orders", h.addOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}/status", h.updateOrderStatus).Methods("PUT")
	r.HandleFunc("/api/orders/{id}", h.deleteOrder).Methods("DELETE")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	if h.Index == nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.Index.Execute(w, map[string]string{"Title": "Group Dining Order Manager"}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.Menu.Load(r.Context())
	if err != nil {
		writeFailure(w, "getMenu", err)
		return
	}
	writeSuccess(w, http.StatusOK, payload{"data": items})
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var body struct {
		SessionName string `json:"sessionName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && err != io.EOF {
		writeFailure(w, "createSession", fmt.Errorf("invalid JSON format: %v: %w", err, domain.ErrInvalidInput))
		return
	}

	sessionID, err := h.Sessions.Create(r.Context(), body.SessionName)
	if err != nil {
		writeFailure(w, "createSession", err)
		return
	}
	writeSuccess(w, http.StatusCreated, payload{"sessionId": sessionID})
}

func (h *Handler) getActiveSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.Sessions.GetActive(r.Context())
	if err != nil {
		writeFailure(w, "getActiveSession", err)
		return
	}
	writeSuccess(w, http.StatusOK, payload{"session": session})
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.Sessions.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeFailure(w, "getSession", err)
		return
	}
	writeSuccess(w, http.StatusOK, payload{"session": session})
}

func (h *Handler) closeSession(w http.ResponseWriter, r *http.Request) {
	session, _, err := h.Sessions.Close(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeFailure(w, "closeSession", err)
		return
	}
	writeSuccess(w, http.StatusOK, payload{
		"message": "Session closed successfully",
		"session": session,
	})
}

func (h *Handler) getSessionQRCode(w http.ResponseWriter, r *http.Request) {
	qrCode, err := h.Sessions.QRCode(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeFailure(w, "getSessionQRCode", err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Ledger.List(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeFailure(w, "getAllOrders", err)
		return
	}
	writeSuccess(w, http.StatusOK, payload{"data": orders})
}

func (h *Handler) getBill(w http.ResponseWriter, r *http.Request) {
	bill, err := h.Bills.Compute(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeFailure(w, "calculateBill", err)
		return
	}
	writeSuccess(w, http.StatusOK, payload{
		"summary": bill.Summary,
		"orders":  bill.Orders,
	})
}

func (h *Handler) addOrder(w http.ResponseWriter, r *http.Request) {
	var order domain.NewOrder
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		writeFailure(w, "addOrder", fmt.Errorf("invalid JSON format: %v: %w", err, domain.ErrInvalidInput))
		return
	}

	orderID, err := h.Ledger.Add(r.Context(), order)
	if err != nil {
		writeFailure(w, "addOrder", err)
		return
	}
	writeSuccess(w, http.StatusCreated, payload{
		"orderId": orderID,
		"message": "Order added successfully",
	})
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"status"`
		Notes  string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeFailure(w, "updateOrderStatus", fmt.Errorf("invalid JSON format: %v: %w", err, domain.ErrInvalidInput))
		return
	}

	if err := h.Ledger.UpdateStatus(r.Context(), mux.Vars(r)["id"], body.Status, body.Notes); err != nil {
		writeFailure(w, "updateOrderStatus", err)
		return
	}
	writeSuccess(w, http.StatusOK, payload{"message": "Order status updated to " + body.Status})
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.Ledger.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeFailure(w, "deleteOrder", err)
		return
	}
	writeSuccess(w, http.StatusOK, payload{"message": "Order deleted successfully"})
}
