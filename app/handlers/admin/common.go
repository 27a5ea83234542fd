package admin

import (
	"log"
	"net/http"

	"github.com/unrolled/render"
)

func internalError(rnd *render.Render, w http.ResponseWriter, op string, err error) {
	log.Printf("%s: %v", op, err)
	_ = rnd.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Internal Server Error"})
}
