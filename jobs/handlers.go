package jobs

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
	"ustabul/models"
	"ustabul/mq"
	"ustabul/utils"
)

// POST /api/jobs
func CreateJob(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	userID := utils.GetUserIDFromRequest(r)

	var job models.Job
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}

	job, err := ValidateJob(job)
	if err != nil {
		utils.Fail(w, err)
		return
	}

	job = ApplyDefaults(job)
	job.JobID = "j" + utils.GenerateRandomString(15)
	job.EmployerID = userID
	job.CreatedAt = time.Now()

	if _, err := db.JobCollection.InsertOne(ctx, job); err != nil {
		log.Printf("Job insert error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "İlan oluşturulurken hata oluştu")
		return
	}

	_, err = db.EmployerProfileCollection.UpdateOne(ctx,
		bson.M{"userid": userID},
		bson.M{"$inc": bson.M{"jobsPosted": 1}},
	)
	if err != nil {
		log.Printf("Failed to increment jobsPosted: %v", err)
	}

	utils.Success(w, http.StatusCreated, "İlan oluşturuldu", job)
}

// GET /api/jobs
func GetJobs(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	q := r.URL.Query()

	filter := bson.M{"status": models.JobStatusActive}
	if status := q.Get("status"); status != "" && utils.Contains(models.JobStatuses, status) {
		filter["status"] = status
	}
	if city := q.Get("city"); city != "" {
		filter["address.city"] = city
	}
	if district := q.Get("district"); district != "" {
		filter["address.district"] = district
	}
	if category := q.Get("category"); category != "" {
		filter["category"] = category
	}
	if skill := q.Get("skill"); skill != "" {
		filter["skills.subCategory"] = skill
	}
	if urgency := q.Get("urgency"); urgency != "" {
		filter["urgency"] = urgency
	}
	if search := q.Get("search"); search != "" {
		filter["$or"] = []bson.M{
			utils.RegexFilter("title", search),
			utils.RegexFilter("description", search),
		}
	}

	skip, limit := utils.ParsePagination(r, 20, 100)

	opts := options.Find().
		SetSort(bson.D{{Key: "urgency", Value: -1}, {Key: "publishedAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	jobList, err := utils.FindAndDecode[models.Job](ctx, db.JobCollection, filter, opts)
	if err != nil {
		log.Printf("Job query error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "İlanlar alınırken hata oluştu")
		return
	}

	total, err := db.JobCollection.CountDocuments(ctx, filter)
	if err != nil {
		total = int64(len(jobList))
	}

	utils.SuccessCount(w, http.StatusOK, int(total), jobList)
}

// GET /api/jobs/:id
func GetJob(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	jobID := ps.ByName("id")

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var job models.Job
	err := db.JobCollection.FindOneAndUpdate(ctx,
		bson.M{"jobid": jobID},
		bson.M{"$inc": bson.M{"viewsCount": 1}},
		opts,
	).Decode(&job)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "İlan bulunamadı")
		} else {
			utils.RespondWithError(w, http.StatusInternalServerError, "İlan alınırken hata oluştu")
		}
		return
	}

	utils.Success(w, http.StatusOK, "", job)
}

// PUT /api/jobs/:id
func UpdateJob(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	userID := utils.GetUserIDFromRequest(r)
	jobID := ps.ByName("id")

	var job models.Job
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}

	job, err := ValidateJob(job)
	if err != nil {
		utils.Fail(w, err)
		return
	}

	update := bson.M{"$set": bson.M{
		"title":        job.Title,
		"description":  job.Description,
		"category":     job.Category,
		"skills":       job.Skills,
		"budget":       job.Budget,
		"duration":     job.Duration,
		"locationType": job.LocationType,
		"address":      job.Address,
		"startDate":    job.StartDate,
		"urgency":      job.Urgency,
		"requirements": job.Requirements,
		"updatedAt":    time.Now(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Job
	err = db.JobCollection.FindOneAndUpdate(ctx,
		bson.M{"jobid": jobID, "employerId": userID},
		update, opts,
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "İlan bulunamadı")
		} else {
			utils.RespondWithError(w, http.StatusInternalServerError, "İlan güncellenirken hata oluştu")
		}
		return
	}

	if updated.Status == models.JobStatusActive {
		go mq.Emit(ctx, "job-updated", models.Index{EntityType: "job", EntityId: updated.JobID, Method: "PUT"})
	}

	utils.Success(w, http.StatusOK, "İlan güncellendi", updated)
}

// DELETE /api/jobs/:id
func DeleteJob(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	userID := utils.GetUserIDFromRequest(r)
	jobID := ps.ByName("id")

	res, err := db.JobCollection.DeleteOne(ctx, bson.M{"jobid": jobID, "employerId": userID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "İlan silinirken hata oluştu")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "İlan bulunamadı")
		return
	}

	go mq.Emit(ctx, "job-deleted", models.Index{EntityType: "job", EntityId: jobID, Method: "DELETE"})

	utils.Success(w, http.StatusOK, "İlan silindi", nil)
}

// PATCH /api/jobs/:id/publish
func PublishJob(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	userID := utils.GetUserIDFromRequest(r)
	jobID := ps.ByName("id")

	now := time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var job models.Job
	err := db.JobCollection.FindOneAndUpdate(ctx,
		bson.M{"jobid": jobID, "employerId": userID, "status": models.JobStatusDraft},
		bson.M{"$set": bson.M{
			"status":      models.JobStatusActive,
			"publishedAt": now,
			"updatedAt":   now,
		}},
		opts,
	).Decode(&job)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Yayınlanacak taslak ilan bulunamadı")
		} else {
			utils.RespondWithError(w, http.StatusInternalServerError, "İlan yayınlanırken hata oluştu")
		}
		return
	}

	go mq.Emit(ctx, "job-created", models.Index{EntityType: "job", EntityId: job.JobID, Method: "POST"})

	utils.Success(w, http.StatusOK, "İlan yayınlandı", job)
}

// PATCH /api/jobs/:id/close
func CloseJob(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	userID := utils.GetUserIDFromRequest(r)
	jobID := ps.ByName("id")

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var job models.Job
	err := db.JobCollection.FindOneAndUpdate(ctx,
		bson.M{"jobid": jobID, "employerId": userID},
		bson.M{"$set": bson.M{"status": models.JobStatusClosed, "updatedAt": time.Now()}},
		opts,
	).Decode(&job)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "İlan bulunamadı")
		} else {
			utils.RespondWithError(w, http.StatusInternalServerError, "İlan kapatılırken hata oluştu")
		}
		return
	}

	go mq.Emit(ctx, "job-deleted", models.Index{EntityType: "job", EntityId: jobID, Method: "DELETE"})

	utils.Success(w, http.StatusOK, "İlan kapatıldı", job)
}

// PATCH /api/jobs/:id/status
func UpdateJobStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	userID := utils.GetUserIDFromRequest(r)
	jobID := ps.ByName("id")

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}
	if !utils.Contains(models.JobStatuses, body.Status) {
		utils.RespondWithError(w, http.StatusBadRequest, "Geçersiz ilan durumu")
		return
	}

	set := bson.M{"status": body.Status, "updatedAt": time.Now()}
	if body.Status == models.JobStatusCompleted {
		set["completionDate"] = time.Now()
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var job models.Job
	err := db.JobCollection.FindOneAndUpdate(ctx,
		bson.M{"jobid": jobID, "employerId": userID},
		bson.M{"$set": set},
		opts,
	).Decode(&job)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "İlan bulunamadı")
		} else {
			utils.RespondWithError(w, http.StatusInternalServerError, "İlan güncellenirken hata oluştu")
		}
		return
	}

	utils.Success(w, http.StatusOK, "İlan durumu güncellendi", job)
}

// GET /api/employers/my-jobs
func GetMyJobs(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)

	filter := bson.M{"employerId": userID}
	if status := r.URL.Query().Get("status"); status != "" && utils.Contains(models.JobStatuses, status) {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	jobList, err := utils.FindAndDecode[models.Job](ctx, db.JobCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "İlanlar alınırken hata oluştu")
		return
	}

	utils.SuccessCount(w, http.StatusOK, len(jobList), jobList)
}
