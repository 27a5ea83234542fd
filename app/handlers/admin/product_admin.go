package admin

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/gosimple/slug"
	"github.com/hqvu/furnistore/app/helpers"
	"github.com/hqvu/furnistore/app/models"
	"github.com/hqvu/furnistore/app/repositories"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type ProductAdminHandler struct {
	render      *render.Render
	productRepo repositories.ProductRepository
	validator   *validator.Validate
}

func NewProductAdminHandler(rnd *render.Render, productRepo repositories.ProductRepository, v *validator.Validate) *ProductAdminHandler {
	return &ProductAdminHandler{render: rnd, productRepo: productRepo, validator: v}
}

type productForm struct {
	Name          string              `json:"name" validate:"required,min=2,max=255"`
	Slug          string              `json:"slug"`
	Price         decimal.Decimal     `json:"price" validate:"required"`
	SalePrice     decimal.NullDecimal `json:"sale_price"`
	Image         string              `json:"image"`
	Description   string              `json:"description"`
	Content       string              `json:"content"`
	Inventory     int                 `json:"inventory"`
	Status        bool                `json:"status"`
	IsFeatured    bool                `json:"is_featured"`
	CategoryIDs   []string            `json:"categoryIds"`
	GalleryImages []string            `json:"galleryImages"`
}

func (h *ProductAdminHandler) List(w http.ResponseWriter, r *http.Request) {
	p := helpers.ParsePagination(r)
	products, total, err := h.productRepo.List(r.Context(), p)
	if err != nil {
		internalError(h.render, w, "AdminListProducts", err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"products":   products,
		"total":      total,
		"page":       p.Page,
		"limit":      p.Limit,
		"totalPages": helpers.TotalPages(total, p.Limit),
	})
}

func (h *ProductAdminHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.productRepo.GetByID(r.Context(), id)
	if err != nil {
		internalError(h.render, w, "AdminGetProduct", err)
		return
	}
	if product == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]interface{}{"message": "Product not found"})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, product)
}

func (h *ProductAdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	form, ok := h.decode(w, r)
	if !ok {
		return
	}

	product := &models.Product{
		Name:        form.Name,
		Slug:        form.Slug,
		Price:       form.Price,
		SalePrice:   form.SalePrice,
		Image:       form.Image,
		Description: form.Description,
		Content:     form.Content,
		Inventory:   form.Inventory,
		Status:      form.Status,
		IsFeatured:  form.IsFeatured,
	}
	if err := h.productRepo.Create(r.Context(), product, form.CategoryIDs, form.GalleryImages); err != nil {
		internalError(h.render, w, "AdminCreateProduct", err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, product)
}

func (h *ProductAdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.productRepo.GetByID(r.Context(), id)
	if err != nil {
		internalError(h.render, w, "AdminUpdateProduct", err)
		return
	}
	if product == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]interface{}{"message": "Product not found"})
		return
	}

	form, ok := h.decode(w, r)
	if !ok {
		return
	}

	product.Name = form.Name
	product.Slug = form.Slug
	product.Price = form.Price
	product.SalePrice = form.SalePrice
	product.Image = form.Image
	product.Description = form.Description
	product.Content = form.Content
	product.Inventory = form.Inventory
	product.Status = form.Status
	product.IsFeatured = form.IsFeatured
	if err := h.productRepo.Update(r.Context(), product, form.CategoryIDs, form.GalleryImages); err != nil {
		internalError(h.render, w, "AdminUpdateProduct", err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, product)
}

func (h *ProductAdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.productRepo.Delete(r.Context(), id); err != nil {
		internalError(h.render, w, "AdminDeleteProduct", err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (h *ProductAdminHandler) decode(w http.ResponseWriter, r *http.Request) (*productForm, bool) {
	var form productForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "invalid request body"})
		return nil, false
	}
	if err := h.validator.Struct(form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "Name and price are required"})
		return nil, false
	}
	if form.Slug == "" {
		form.Slug = slug.Make(form.Name)
	}
	return &form, true
}
