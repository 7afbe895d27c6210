package employers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ustabul/db"
	"ustabul/locations"
	"ustabul/models"
	"ustabul/utils"
)

type profileInput struct {
	CompanyDetails models.CompanyDetails `json:"companyDetails"`
	Location       models.Location       `json:"location"`
	Industry       string                `json:"industry"`
	CompanySize    string                `json:"companySize"`
	Website        string                `json:"website"`
}

// PUT /api/employers/profile (POST is an alias)
func UpsertProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	userID := utils.GetUserIDFromRequest(r)

	var input profileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}

	if strings.TrimSpace(input.CompanyDetails.Name) == "" ||
		strings.TrimSpace(input.CompanyDetails.TaxNumber) == "" ||
		strings.TrimSpace(input.CompanyDetails.TaxOffice) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Şirket adı, vergi numarası ve vergi dairesi gereklidir")
		return
	}
	if input.Location.City == "" || input.Location.District == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Şehir ve ilçe bilgisi gereklidir")
		return
	}
	if input.CompanySize != "" && !utils.Contains(models.CompanySizes, input.CompanySize) {
		utils.RespondWithError(w, http.StatusBadRequest, "Geçersiz şirket büyüklüğü")
		return
	}

	loc := locations.Normalize(input.Location)
	if loc.District == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "İlçe seçilen şehre ait değil")
		return
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var profile models.EmployerProfile
	err := db.EmployerProfileCollection.FindOneAndUpdate(ctx,
		bson.M{"userid": userID},
		bson.M{
			"$set": bson.M{
				"companyDetails": input.CompanyDetails,
				"location":       loc,
				"industry":       input.Industry,
				"companySize":    input.CompanySize,
				"website":        input.Website,
				"updatedAt":      time.Now(),
			},
			"$setOnInsert": bson.M{"createdAt": time.Now()},
		},
		opts,
	).Decode(&profile)
	if err != nil {
		log.Printf("Profile upsert error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Profil kaydedilirken hata oluştu")
		return
	}

	_, err = db.UserCollection.UpdateOne(ctx,
		bson.M{"userid": userID},
		bson.M{"$set": bson.M{"profileCompleted": true, "updatedAt": time.Now()}},
	)
	if err != nil {
		log.Printf("Failed to update profileCompleted: %v", err)
	}

	utils.Success(w, http.StatusOK, "Profil başarıyla kaydedildi", profile)
}

// GET /api/employers/profile
func GetProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	userID := utils.GetUserIDFromRequest(r)

	var profile models.EmployerProfile
	err := db.EmployerProfileCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Profil bulunamadı. Lütfen önce profil oluşturun.")
		} else {
			utils.RespondWithError(w, http.StatusInternalServerError, "Profil alınırken hata oluştu")
		}
		return
	}

	utils.Success(w, http.StatusOK, "", profile)
}

// GET /api/employers/employer/:id
func GetPublicProfile(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	employerID := ps.ByName("id")

	var profile models.EmployerProfile
	err := db.EmployerProfileCollection.FindOne(ctx, bson.M{"userid": employerID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "İşveren bulunamadı")
		} else {
			utils.RespondWithError(w, http.StatusInternalServerError, "Profil alınırken hata oluştu")
		}
		return
	}

	var user models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"userid": employerID}).Decode(&user); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "İşveren bulunamadı")
		return
	}

	// tax details stay private
	utils.Success(w, http.StatusOK, "", utils.M{
		"userid":      profile.UserID,
		"fullName":    user.FullName,
		"companyName": profile.CompanyDetails.Name,
		"location":    utils.M{"city": profile.Location.City, "district": profile.Location.District},
		"industry":    profile.Industry,
		"companySize": profile.CompanySize,
		"website":     profile.Website,
		"verified":    profile.Verified,
		"rating":      profile.Rating,
		"jobsPosted":  profile.JobsPosted,
	})
}

// GET /api/employers/dashboard
func GetDashboard(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)

	var profile models.EmployerProfile
	if err := db.EmployerProfileCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Önce profil oluşturmalısınız")
		} else {
			utils.RespondWithError(w, http.StatusInternalServerError, "Dashboard verileri alınırken hata oluştu")
		}
		return
	}

	jobs, err := utils.FindAndDecode[models.Job](ctx, db.JobCollection, bson.M{"employerId": userID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Dashboard verileri alınırken hata oluştu")
		return
	}

	applications, err := utils.FindAndDecode[models.Application](ctx, db.ApplicationCollection, bson.M{"employerId": userID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Dashboard verileri alınırken hata oluştu")
		return
	}

	stats := utils.M{
		"totalJobs":            len(jobs),
		"activeJobs":           countJobs(jobs, models.JobStatusActive),
		"draftJobs":            countJobs(jobs, models.JobStatusDraft),
		"inProgressJobs":       countJobs(jobs, models.JobStatusInProgress),
		"completedJobs":        countJobs(jobs, models.JobStatusCompleted),
		"totalApplications":    len(applications),
		"pendingApplications":  countApplications(applications, models.ApplicationPending),
		"acceptedApplications": countApplications(applications, models.ApplicationAccepted),
	}

	utils.Success(w, http.StatusOK, "", stats)
}

func countJobs(jobs []models.Job, status string) int {
	n := 0
	for _, j := range jobs {
		if j.Status == status {
			n++
		}
	}
	return n
}

func countApplications(apps []models.Application, status string) int {
	n := 0
	for _, a := range apps {
		if a.Status == status {
			n++
		}
	}
	return n
}
