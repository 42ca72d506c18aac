package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/lunchday/backend/internal/auth"
	"github.com/lunchday/backend/internal/models"
	"go.uber.org/zap"
)

// OrderService is the interface that wraps methods for the order workflow
type OrderService interface {
	// Method Place creates an order owned by callerID with the total price
	// frozen at the current meal price.
	Place(ctx context.Context, callerID int, req *models.PlaceOrderRequest) (*models.Order, error)
	// Method List returns orders scoped by role: all rows for admins, own rows
	// otherwise.
	List(ctx context.Context, callerID int, admin bool) ([]models.OrderView, error)
	// Method SetStatus transitions an order to a new status.
	SetStatus(ctx context.Context, id int, status string) error
}

// OrderHandler handles order HTTP requests
type OrderHandler struct {
	BaseHandler
	orderService OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		BaseHandler:  BaseHandler{Logger: logger},
		orderService: orderService,
	}
}

// RegisterRoutes registers all order handler routes. Everything requires
// authentication; status transitions are admin-only.
// Note: This assumes the router is already scoped to /api
func (h *OrderHandler) RegisterRoutes(r chi.Router, authenticate, requireAdmin func(http.Handler) http.Handler) {
	r.Route("/orders", func(r chi.Router) {
		r.Use(authenticate)
		r.Post("/", h.Place)
		r.Get("/", h.List)

		r.Group(func(r chi.Router) {
			r.Use(requireAdmin)
			r.Put("/{id}/status", h.SetStatus)
		})
	})
}

// Place handles POST /orders
// @Summary Place an order
// @Description Order a meal that exists and is currently available. The total price is computed server-side and frozen.
// @Tags orders
// @Accept json
// @Produce json
// @Param request body models.PlaceOrderRequest true "Order request"
// @Success 201 {object} map[string]any "Order created successfully"
// @Failure 400 {object} map[string]string "Missing meal_id or quantity"
// @Failure 404 {object} map[string]string "Meal not found or unavailable"
// @Security ApiKeyAuth
// @Router /orders [post]
func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.GetIdentity(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req models.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.orderService.Place(r.Context(), identity.ID, &req)
	if err != nil {
		h.RespondAppError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, map[string]any{
		"message":     "order created successfully",
		"orderId":     order.ID,
		"total_price": order.TotalPrice,
	})
}

// List handles GET /orders
// @Summary List orders
// @Description Admins see all orders, other users only their own. Newest first.
// @Tags orders
// @Produce json
// @Success 200 {array} models.OrderView "List of orders"
// @Failure 401 {object} map[string]string "Authentication required"
// @Security ApiKeyAuth
// @Router /orders [get]
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.GetIdentity(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	orders, err := h.orderService.List(r.Context(), identity.ID, identity.Role == models.RoleAdmin)
	if err != nil {
		h.RespondAppError(w, err)
		return
	}

	if orders == nil {
		orders = []models.OrderView{}
	}
	h.RespondJSON(w, http.StatusOK, orders)
}

// SetStatus handles PUT /orders/{id}/status
// @Summary Update order status
// @Description Set a new status on an order (admin only)
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} map[string]string "Status updated successfully"
// @Failure 400 {object} map[string]string "Missing status"
// @Failure 404 {object} map[string]string "Order not found"
// @Security ApiKeyAuth
// @Router /orders/{id}/status [put]
func (h *OrderHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid order ID")
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.orderService.SetStatus(r.Context(), id, req.Status); err != nil {
		h.RespondAppError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "order status updated successfully"})
}
