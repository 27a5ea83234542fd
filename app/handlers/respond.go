package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/hqvu/furnistore/app/services"
	"github.com/unrolled/render"
)

// respondServiceError maps service sentinels onto the API's error
// taxonomy: validation problems are 400 with their message, missing
// things are 404, lost races are 409 so the client can retry, and
// anything else is an opaque 500.
func respondServiceError(rnd *render.Render, w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidPromotion),
		errors.Is(err, services.ErrCartEmpty),
		errors.Is(err, services.ErrInsufficientStock):
		_ = rnd.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": err.Error()})
	case errors.Is(err, services.ErrCartNotFound),
		errors.Is(err, services.ErrCartItemNotFound),
		errors.Is(err, services.ErrProductNotFound):
		_ = rnd.JSON(w, http.StatusNotFound, map[string]interface{}{"message": err.Error()})
	case errors.Is(err, services.ErrCheckoutConflict),
		errors.Is(err, services.ErrPromotionExhausted):
		_ = rnd.JSON(w, http.StatusConflict, map[string]interface{}{"message": err.Error()})
	default:
		log.Printf("%s: %v", op, err)
		_ = rnd.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Internal server error"})
	}
}
