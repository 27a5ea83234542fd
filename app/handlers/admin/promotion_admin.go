package admin

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/hqvu/furnistore/app/helpers"
	"github.com/hqvu/furnistore/app/models"
	"github.com/hqvu/furnistore/app/repositories"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type PromotionAdminHandler struct {
	render        *render.Render
	promotionRepo repositories.PromotionRepository
	validator     *validator.Validate
}

func NewPromotionAdminHandler(rnd *render.Render, promotionRepo repositories.PromotionRepository, v *validator.Validate) *PromotionAdminHandler {
	return &PromotionAdminHandler{render: rnd, promotionRepo: promotionRepo, validator: v}
}

type promotionForm struct {
	Code          string              `json:"code" validate:"required,min=3,max=50"`
	Discount      decimal.Decimal     `json:"discount" validate:"required"`
	Type          string              `json:"type" validate:"required,oneof=percent fixed"`
	MinAmount     decimal.Decimal     `json:"min_amount"`
	MaxAmount     decimal.NullDecimal `json:"max_amount"`
	ExpiredTime   *time.Time          `json:"expired_time"`
	Limit         int                 `json:"limit" validate:"min=0"`
	IsFreeShip    bool                `json:"is_free_ship"`
	NumberProduct int                 `json:"number_product" validate:"min=0"`
	Status        string              `json:"status" validate:"omitempty,oneof=active pending"`
}

func (h *PromotionAdminHandler) List(w http.ResponseWriter, r *http.Request) {
	p := helpers.ParsePagination(r)
	promotions, total, err := h.promotionRepo.List(r.Context(), p)
	if err != nil {
		internalError(h.render, w, "AdminListPromotions", err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"promotions": promotions,
		"total":      total,
		"page":       p.Page,
		"limit":      p.Limit,
		"totalPages": helpers.TotalPages(total, p.Limit),
	})
}

func (h *PromotionAdminHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	promotion, err := h.promotionRepo.GetByID(r.Context(), id)
	if err != nil {
		internalError(h.render, w, "AdminGetPromotion", err)
		return
	}
	if promotion == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]interface{}{"message": "Promotion not found"})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, promotion)
}

func (h *PromotionAdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	form, ok := h.decode(w, r)
	if !ok {
		return
	}

	existing, err := h.promotionRepo.FindByCode(r.Context(), form.Code)
	if err != nil {
		internalError(h.render, w, "AdminCreatePromotion", err)
		return
	}
	if existing != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "Promotion code already exists"})
		return
	}

	promotion := form.toModel()
	if err := h.promotionRepo.Create(r.Context(), promotion); err != nil {
		internalError(h.render, w, "AdminCreatePromotion", err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, promotion)
}

func (h *PromotionAdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	promotion, err := h.promotionRepo.GetByID(r.Context(), id)
	if err != nil {
		internalError(h.render, w, "AdminUpdatePromotion", err)
		return
	}
	if promotion == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]interface{}{"message": "Promotion not found"})
		return
	}

	form, ok := h.decode(w, r)
	if !ok {
		return
	}

	promotion.Code = strings.ToUpper(strings.TrimSpace(form.Code))
	promotion.Discount = form.Discount
	promotion.Type = form.Type
	promotion.MinAmount = form.MinAmount
	promotion.MaxAmount = form.MaxAmount
	promotion.ExpiredTime = form.ExpiredTime
	promotion.Limit = form.Limit
	promotion.IsFreeShip = form.IsFreeShip
	promotion.NumberProduct = form.NumberProduct
	if form.Status != "" {
		promotion.Status = form.Status
	}
	if err := h.promotionRepo.Update(r.Context(), promotion); err != nil {
		internalError(h.render, w, "AdminUpdatePromotion", err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, promotion)
}

func (h *PromotionAdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.promotionRepo.Delete(r.Context(), id); err != nil {
		internalError(h.render, w, "AdminDeletePromotion", err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (h *PromotionAdminHandler) decode(w http.ResponseWriter, r *http.Request) (*promotionForm, bool) {
	var form promotionForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "invalid request body"})
		return nil, false
	}
	if err := h.validator.Struct(form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "Missing required fields"})
		return nil, false
	}

	// Percent promotions must stay inside 1..99; fixed amounts only need
	// to be positive.
	if form.Type == models.PromotionTypePercent {
		if form.Discount.LessThan(decimal.NewFromInt(1)) || form.Discount.GreaterThan(decimal.NewFromInt(99)) {
			_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "Discount percent must be between 1 and 99"})
			return nil, false
		}
	} else if !form.Discount.IsPositive() {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "Discount must be positive"})
		return nil, false
	}
	return &form, true
}

func (f *promotionForm) toModel() *models.Promotion {
	status := f.Status
	if status == "" {
		status = models.PromotionStatusActive
	}
	return &models.Promotion{
		Code:          strings.ToUpper(strings.TrimSpace(f.Code)),
		Discount:      f.Discount,
		Type:          f.Type,
		MinAmount:     f.MinAmount,
		MaxAmount:     f.MaxAmount,
		ExpiredTime:   f.ExpiredTime,
		Limit:         f.Limit,
		IsFreeShip:    f.IsFreeShip,
		NumberProduct: f.NumberProduct,
		Status:        status,
	}
}
