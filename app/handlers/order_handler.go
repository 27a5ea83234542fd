package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/hqvu/furnistore/app/middlewares"
	"github.com/hqvu/furnistore/app/repositories"
	"github.com/hqvu/furnistore/app/services"
	"github.com/unrolled/render"
)

type OrderHandler struct {
	render      *render.Render
	checkoutSvc *services.CheckoutService
	orderRepo   repositories.OrderRepository
	validator   *validator.Validate
}

func NewOrderHandler(rnd *render.Render, checkoutSvc *services.CheckoutService, orderRepo repositories.OrderRepository, v *validator.Validate) *OrderHandler {
	return &OrderHandler{
		render:      rnd,
		checkoutSvc: checkoutSvc,
		orderRepo:   orderRepo,
		validator:   v,
	}
}

type placeOrderRequest struct {
	services.ShippingInfo
	PromotionCode string `json:"promotion_code"`
}

// PlaceOrder accepts guest and user checkouts alike; the owner context
// decides which cart gets consumed.
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "invalid request body"})
		return
	}

	if err := h.validator.Struct(req.ShippingInfo); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "missing or invalid shipping information"})
		return
	}

	owner := middlewares.OwnerFromContext(r.Context())
	order, err := h.checkoutSvc.PlaceOrder(r.Context(), owner, req.ShippingInfo, req.PromotionCode)
	if err != nil {
		respondServiceError(h.render, w, "PlaceOrder", err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"orderId":   order.ID,
		"orderCode": order.Code,
	})
}

// ListMine returns the authenticated user's order history, newest first.
func (h *OrderHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.UserIDFromContext(r.Context())
	if userID == "" {
		_ = h.render.JSON(w, http.StatusUnauthorized, map[string]interface{}{"message": "Unauthorized"})
		return
	}

	orders, err := h.orderRepo.FindByUserID(r.Context(), userID)
	if err != nil {
		respondServiceError(h.render, w, "ListOrders", err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"orders": orders})
}
