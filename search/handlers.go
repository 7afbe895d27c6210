package search

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"ustabul/utils"
)

// GET /api/search?q=...&type=job|worker
func SearchHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	q := r.URL.Query().Get("q")
	entityType := r.URL.Query().Get("type")
	if entityType != "" && entityType != "job" && entityType != "worker" {
		utils.RespondWithError(w, http.StatusBadRequest, "Geçersiz arama tipi")
		return
	}

	results, err := Query(ctx, q, entityType, 50)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Arama sırasında hata oluştu")
		return
	}

	utils.SuccessCount(w, http.StatusOK, len(results), results)
}
