package workers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ustabul/db"
	"ustabul/models"
	"ustabul/utils"
)

// GET /api/workers/search?city=&district=&category=&availability=&search=
func SearchWorkers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	q := r.URL.Query()
	filter := bson.M{"isAvailable": true}

	if city := strings.TrimSpace(q.Get("city")); city != "" {
		filter["location.city"] = city
	}
	if district := strings.TrimSpace(q.Get("district")); district != "" {
		filter["location.district"] = district
	}
	if category := strings.TrimSpace(q.Get("category")); category != "" {
		filter["skills.subCategory"] = category
	}
	if availability := strings.TrimSpace(q.Get("availability")); availability != "" {
		filter["availability"] = availability
	}
	if search := strings.TrimSpace(q.Get("search")); search != "" {
		filter["$or"] = bson.A{
			utils.RegexFilter("bio", search),
			utils.RegexFilter("skills.subCategory", search),
		}
	}

	skip, limit := utils.ParsePagination(r, 10, 100)
	opts := options.Find().
		SetSkip(skip).
		SetLimit(limit).
		SetSort(bson.D{{Key: "rating.average", Value: -1}, {Key: "completedJobs", Value: -1}}).
		SetProjection(bson.M{"preferences": 0})

	profiles, err := utils.FindAndDecode[models.WorkerProfile](ctx, db.WorkerProfileCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Ustalar alınırken hata oluştu")
		return
	}

	total, _ := db.WorkerProfileCollection.CountDocuments(ctx, filter)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"count":   total,
		"data":    profiles,
	})
}
