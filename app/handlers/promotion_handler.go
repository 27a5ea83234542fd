package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/hqvu/furnistore/app/services"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type PromotionHandler struct {
	render       *render.Render
	promotionSvc *services.PromotionService
}

func NewPromotionHandler(rnd *render.Render, promotionSvc *services.PromotionService) *PromotionHandler {
	return &PromotionHandler{render: rnd, promotionSvc: promotionSvc}
}

type validatePromotionRequest struct {
	Code        string          `json:"code"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// Validate checks a code against a candidate subtotal. Rejections are
// 400s carrying the reason; the discount in a valid response is already
// clamped.
func (h *PromotionHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req validatePromotionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"valid":   false,
			"message": "please enter a promotion code",
		})
		return
	}

	result, err := h.promotionSvc.Validate(r.Context(), req.Code, req.TotalAmount)
	if err != nil {
		respondServiceError(h.render, w, "ValidatePromotion", err)
		return
	}

	if !result.Valid {
		_ = h.render.JSON(w, http.StatusBadRequest, result)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"valid":    true,
		"discount": result.Discount,
		"promotion": map[string]interface{}{
			"code":  result.Code,
			"type":  result.Type,
			"value": result.Value,
		},
		"message": result.Message,
	})
}

// ListActive feeds the voucher modal: active, unexpired promotions.
func (h *PromotionHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	promotions, err := h.promotionSvc.ListActive(r.Context())
	if err != nil {
		respondServiceError(h.render, w, "ListPromotions", err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"promotions": promotions})
}
