package locations

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"ustabul/utils"
)

// GET /api/locations/cities
func GetCities(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.Success(w, http.StatusOK, "", Cities())
}

// GET /api/locations/districts/:city
func GetDistricts(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	districts := Districts(ps.ByName("city"))
	if districts == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Şehir bulunamadı")
		return
	}
	utils.Success(w, http.StatusOK, "", districts)
}
