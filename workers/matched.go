package workers

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ustabul/db"
	"ustabul/models"
	"ustabul/utils"
)

// MatchedJobsFilter builds the query matching active jobs to a worker's
// selected skills. Plain set membership on the sub-category level; no
// scoring or ranking.
func MatchedJobsFilter(skills []models.SelectedSkill) bson.M {
	subCategories := []string{}
	seen := map[string]struct{}{}
	for _, skill := range skills {
		if _, ok := seen[skill.SubCategory]; ok {
			continue
		}
		seen[skill.SubCategory] = struct{}{}
		subCategories = append(subCategories, skill.SubCategory)
	}

	return bson.M{
		"status": models.JobStatusActive,
		"$or": bson.A{
			bson.M{"category": bson.M{"$in": subCategories}},
			bson.M{"skills.subCategory": bson.M{"$in": subCategories}},
		},
	}
}

// GET /api/workers/matched-jobs
func GetMatchedJobs(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)

	var profile models.WorkerProfile
	err := db.WorkerProfileCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Önce profil oluşturmalısınız")
		} else {
			utils.RespondWithError(w, http.StatusInternalServerError, "Profil alınırken hata oluştu")
		}
		return
	}

	if len(profile.Skills) == 0 {
		utils.SuccessCount(w, http.StatusOK, 0, []models.Job{})
		return
	}

	skip, limit := utils.ParsePagination(r, 20, 100)
	opts := options.Find().
		SetSkip(skip).
		SetLimit(limit).
		SetSort(bson.M{"createdAt": -1})

	jobs, err := utils.FindAndDecode[models.Job](ctx, db.JobCollection, MatchedJobsFilter(profile.Skills), opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Eşleşen işler alınırken hata oluştu")
		return
	}

	utils.SuccessCount(w, http.StatusOK, len(jobs), jobs)
}
