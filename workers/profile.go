package workers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ustabul/db"
	"ustabul/locations"
	"ustabul/models"
	"ustabul/mq"
	"ustabul/taxonomy"
	"ustabul/utils"
)

type profileInput struct {
	ProfileImage string                   `json:"profileImage"`
	Bio          string                   `json:"bio"`
	Skills       []models.SelectedSkill   `json:"skills"`
	Experience   string                   `json:"experience"`
	HourlyRate   float64                  `json:"hourlyRate"`
	Availability string                   `json:"availability"`
	Location     models.Location          `json:"location"`
	Portfolio    []models.PortfolioItem   `json:"portfolio"`
	Certificates []models.Certificate     `json:"certificates"`
	IsAvailable  *bool                    `json:"isAvailable"`
	Preferences  models.WorkerPreferences `json:"preferences"`
}

// PUT /api/workers/profile (POST is an alias; the collection is replaced
// wholesale on every save, there is no incremental skill API)
func UpsertProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	userID := utils.GetUserIDFromRequest(r)

	var input profileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}

	if len(input.Bio) > 500 {
		utils.RespondWithError(w, http.StatusBadRequest, "Tanıtım yazısı en fazla 500 karakter olabilir")
		return
	}
	if input.Experience != "" && !utils.Contains(models.ExperienceLevels, input.Experience) {
		utils.RespondWithError(w, http.StatusBadRequest, "Geçersiz deneyim seviyesi")
		return
	}
	if input.Availability != "" && !utils.Contains(models.AvailabilityStates, input.Availability) {
		utils.RespondWithError(w, http.StatusBadRequest, "Geçersiz uygunluk durumu")
		return
	}

	skills, err := taxonomy.NormalizeSkills(input.Skills)
	if err != nil {
		utils.Fail(w, err)
		return
	}

	update := bson.M{
		"profileImage": input.ProfileImage,
		"bio":          input.Bio,
		"skills":       skills,
		"experience":   input.Experience,
		"hourlyRate":   input.HourlyRate,
		"availability": input.Availability,
		"location":     locations.Normalize(input.Location),
		"portfolio":    input.Portfolio,
		"certificates": input.Certificates,
		"preferences":  input.Preferences,
		"updatedAt":    time.Now(),
	}
	if input.IsAvailable != nil {
		update["isAvailable"] = *input.IsAvailable
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var profile models.WorkerProfile
	err = db.WorkerProfileCollection.FindOneAndUpdate(ctx,
		bson.M{"userid": userID},
		bson.M{
			"$set":         update,
			"$setOnInsert": bson.M{"createdAt": time.Now()},
		},
		opts,
	).Decode(&profile)
	if err != nil {
		log.Printf("Profile upsert error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Profil kaydedilirken hata oluştu")
		return
	}

	markProfileCompleted(ctx, userID, len(skills) > 0)

	go mq.Emit(ctx, "worker-updated", models.Index{
		EntityType: "worker", EntityId: userID, Method: "PUT",
	})

	utils.Success(w, http.StatusOK, "Profil başarıyla kaydedildi", profile)
}

func markProfileCompleted(ctx context.Context, userID string, completed bool) {
	_, err := db.UserCollection.UpdateOne(ctx,
		bson.M{"userid": userID},
		bson.M{"$set": bson.M{"profileCompleted": completed, "updatedAt": time.Now()}},
	)
	if err != nil {
		log.Printf("Failed to update profileCompleted: %v", err)
	}
}

// GET /api/workers/profile
func GetProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	userID := utils.GetUserIDFromRequest(r)

	var profile models.WorkerProfile
	err := db.WorkerProfileCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Profil bulunamadı")
		} else {
			log.Printf("DB error: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Profil alınırken hata oluştu")
		}
		return
	}

	utils.Success(w, http.StatusOK, "", profile)
}

// GET /api/workers/worker/:id
func GetPublicProfile(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	workerID := ps.ByName("id")

	var profile models.WorkerProfile
	err := db.WorkerProfileCollection.FindOne(ctx, bson.M{"userid": workerID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Usta bulunamadı")
		} else {
			utils.RespondWithError(w, http.StatusInternalServerError, "Profil alınırken hata oluştu")
		}
		return
	}

	var user models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"userid": workerID}).Decode(&user); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Usta bulunamadı")
		return
	}

	// public view: no contact details, no preferences
	utils.Success(w, http.StatusOK, "", utils.M{
		"userid":        profile.UserID,
		"fullName":      user.FullName,
		"profileImage":  profile.ProfileImage,
		"bio":           profile.Bio,
		"skills":        profile.Skills,
		"experience":    profile.Experience,
		"availability":  profile.Availability,
		"location":      utils.M{"city": profile.Location.City, "district": profile.Location.District},
		"portfolio":     profile.Portfolio,
		"certificates":  profile.Certificates,
		"rating":        profile.Rating,
		"completedJobs": profile.CompletedJobs,
		"isAvailable":   profile.IsAvailable,
	})
}
