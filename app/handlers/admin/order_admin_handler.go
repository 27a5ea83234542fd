package admin

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hqvu/furnistore/app/helpers"
	"github.com/hqvu/furnistore/app/models"
	"github.com/hqvu/furnistore/app/repositories"
	"github.com/unrolled/render"
)

type OrderAdminHandler struct {
	render        *render.Render
	orderRepo     repositories.OrderRepository
	promotionRepo repositories.PromotionRepository
}

func NewOrderAdminHandler(rnd *render.Render, orderRepo repositories.OrderRepository, promotionRepo repositories.PromotionRepository) *OrderAdminHandler {
	return &OrderAdminHandler{render: rnd, orderRepo: orderRepo, promotionRepo: promotionRepo}
}

func (h *OrderAdminHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := repositories.OrderFilter{
		Pagination: helpers.ParsePagination(r),
		Status:     r.URL.Query().Get("status"),
	}

	orders, total, err := h.orderRepo.List(r.Context(), filter)
	if err != nil {
		internalError(h.render, w, "AdminListOrders", err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"orders":     orders,
		"total":      total,
		"page":       filter.Page,
		"limit":      filter.Limit,
		"totalPages": helpers.TotalPages(total, filter.Limit),
	})
}

func (h *OrderAdminHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	order, err := h.orderRepo.GetByID(r.Context(), id)
	if err != nil {
		internalError(h.render, w, "AdminGetOrder", err)
		return
	}
	if order == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]interface{}{"message": "Order not found"})
		return
	}

	resp := map[string]interface{}{"order": order}
	if order.PromotionCode != nil {
		promotion, err := h.promotionRepo.FindByCode(r.Context(), *order.PromotionCode)
		if err != nil {
			internalError(h.render, w, "AdminGetOrder", err)
			return
		}
		resp["promotion"] = promotion
	}
	_ = h.render.JSON(w, http.StatusOK, resp)
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

func (h *OrderAdminHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req updateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "invalid request body"})
		return
	}
	if _, ok := models.OrderStatuses[req.Status]; !ok {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "Invalid order status"})
		return
	}

	order, err := h.orderRepo.GetByID(r.Context(), id)
	if err != nil {
		internalError(h.render, w, "AdminUpdateOrderStatus", err)
		return
	}
	if order == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]interface{}{"message": "Order not found"})
		return
	}

	if err := h.orderRepo.UpdateStatus(r.Context(), id, req.Status); err != nil {
		internalError(h.render, w, "AdminUpdateOrderStatus", err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"success": true, "status": req.Status})
}
