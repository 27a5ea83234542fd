package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/hqvu/furnistore/app/middlewares"
	"github.com/hqvu/furnistore/app/models"
	"github.com/hqvu/furnistore/app/services"
	"github.com/hqvu/furnistore/app/utils/sessions"
	"github.com/unrolled/render"
)

type CartHandler struct {
	render  *render.Render
	cartSvc *services.CartService
}

func NewCartHandler(rnd *render.Render, cartSvc *services.CartService) *CartHandler {
	return &CartHandler{render: rnd, cartSvc: cartSvc}
}

type addToCartRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type updateCartRequest struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

type removeCartRequest struct {
	ItemID string `json:"itemId"`
}

// AddToCart mints a guest session cookie on the first add by an
// unauthenticated visitor, then upserts the line item.
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req addToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "productId is required"})
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	owner := middlewares.OwnerFromContext(r.Context())
	if owner.IsEmpty() {
		sessionID, err := sessions.EnsureSessionID(w, r)
		if err != nil {
			log.Printf("AddToCart: failed to create guest session: %v", err)
			_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Internal server error"})
			return
		}
		owner = models.OwnerGuest(sessionID)
	}

	count, err := h.cartSvc.AddItem(r.Context(), owner, req.ProductID, req.Quantity)
	if err != nil {
		respondServiceError(h.render, w, "AddToCart", err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"message":   "Item added to cart",
		"cartCount": count,
	})
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	owner := middlewares.OwnerFromContext(r.Context())
	detail := r.URL.Query().Get("detail") == "true"

	count, items, err := h.cartSvc.GetCart(r.Context(), owner, detail)
	if err != nil {
		respondServiceError(h.render, w, "GetCart", err)
		return
	}

	resp := map[string]interface{}{"cartCount": count}
	if detail {
		if items == nil {
			items = []models.CartItem{}
		}
		resp["items"] = items
	}
	_ = h.render.JSON(w, http.StatusOK, resp)
}

func (h *CartHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var req updateCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ItemID == "" {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "itemId is required"})
		return
	}

	owner := middlewares.OwnerFromContext(r.Context())
	count, err := h.cartSvc.UpdateItem(r.Context(), owner, req.ItemID, req.Quantity)
	if err != nil {
		respondServiceError(h.render, w, "UpdateCartItem", err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"success": true, "cartCount": count})
}

func (h *CartHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	var req removeCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ItemID == "" {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "itemId is required"})
		return
	}

	owner := middlewares.OwnerFromContext(r.Context())
	count, err := h.cartSvc.RemoveItem(r.Context(), owner, req.ItemID)
	if err != nil {
		respondServiceError(h.render, w, "RemoveCartItem", err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"success": true, "cartCount": count})
}
