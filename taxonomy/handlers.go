package taxonomy

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"ustabul/utils"
)

// GET /api/skills/categories
func GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.Success(w, http.StatusOK, "", Tree())
}

// GET /api/skills/job-categories
func GetJobCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.Success(w, http.StatusOK, "", JobCategories())
}

// GET /api/skills/subcategories/:main
func GetSubCategories(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	main := ps.ByName("main")
	if _, ok := findMain(main); !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Ana kategori bulunamadı")
		return
	}

	subs := []utils.M{}
	for _, name := range SubCategories(main) {
		node, _ := Lookup(main, name)
		subs = append(subs, utils.M{
			"name":    name,
			"details": DetailsFor(main, name),
			"leaf":    node.Kind == KindLeaf,
		})
	}
	utils.Success(w, http.StatusOK, "", subs)
}
