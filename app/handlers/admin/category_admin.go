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
	"github.com/unrolled/render"
)

type CategoryAdminHandler struct {
	render       *render.Render
	categoryRepo repositories.CategoryRepository
	validator    *validator.Validate
}

func NewCategoryAdminHandler(rnd *render.Render, categoryRepo repositories.CategoryRepository, v *validator.Validate) *CategoryAdminHandler {
	return &CategoryAdminHandler{render: rnd, categoryRepo: categoryRepo, validator: v}
}

type categoryForm struct {
	Name        string `json:"name" validate:"required,min=2,max=255"`
	Slug        string `json:"slug"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

func (h *CategoryAdminHandler) List(w http.ResponseWriter, r *http.Request) {
	p := helpers.ParsePagination(r)
	categories, total, err := h.categoryRepo.List(r.Context(), p)
	if err != nil {
		internalError(h.render, w, "AdminListCategories", err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"categories": categories,
		"total":      total,
		"page":       p.Page,
		"limit":      p.Limit,
		"totalPages": helpers.TotalPages(total, p.Limit),
	})
}

func (h *CategoryAdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	var form categoryForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "invalid request body"})
		return
	}
	if err := h.validator.Struct(form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "Name is required"})
		return
	}

	if form.Slug == "" {
		form.Slug = slug.Make(form.Name)
	}

	category := &models.Category{
		Name:        form.Name,
		Slug:        form.Slug,
		Image:       form.Image,
		Description: form.Description,
	}
	if err := h.categoryRepo.Create(r.Context(), category); err != nil {
		internalError(h.render, w, "AdminCreateCategory", err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, category)
}

func (h *CategoryAdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	category, err := h.categoryRepo.GetByID(r.Context(), id)
	if err != nil {
		internalError(h.render, w, "AdminUpdateCategory", err)
		return
	}
	if category == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]interface{}{"message": "Category not found"})
		return
	}

	var form categoryForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "invalid request body"})
		return
	}
	if err := h.validator.Struct(form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "Name is required"})
		return
	}

	category.Name = form.Name
	category.Image = form.Image
	category.Description = form.Description
	if form.Slug != "" {
		category.Slug = form.Slug
	}
	if err := h.categoryRepo.Update(r.Context(), category); err != nil {
		internalError(h.render, w, "AdminUpdateCategory", err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, category)
}

func (h *CategoryAdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.categoryRepo.Delete(r.Context(), id); err != nil {
		internalError(h.render, w, "AdminDeleteCategory", err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
