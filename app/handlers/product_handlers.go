package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/hqvu/furnistore/app/models"
	"github.com/hqvu/furnistore/app/repositories"
	"github.com/unrolled/render"
)

type ProductHandler struct {
	render       *render.Render
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
}

func NewProductHandler(rnd *render.Render, productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository) *ProductHandler {
	return &ProductHandler{render: rnd, productRepo: productRepo, categoryRepo: categoryRepo}
}

func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		_ = h.render.JSON(w, http.StatusOK, []models.Product{})
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 50 {
		limit = 10
	}

	products, err := h.productRepo.Search(r.Context(), q, limit)
	if err != nil {
		respondServiceError(h.render, w, "SearchProducts", err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, products)
}

func (h *ProductHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	product, err := h.productRepo.GetBySlug(r.Context(), slug)
	if err != nil {
		respondServiceError(h.render, w, "GetProduct", err)
		return
	}
	if product == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]interface{}{"message": "Product not found"})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Featured(w http.ResponseWriter, r *http.Request) {
	products, err := h.productRepo.Featured(r.Context(), 8)
	if err != nil {
		respondServiceError(h.render, w, "FeaturedProducts", err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		respondServiceError(h.render, w, "ListCategories", err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, categories)
}
