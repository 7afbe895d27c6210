package applications

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

	"ustabul/apperr"
	"ustabul/db"
	"ustabul/models"
	"ustabul/utils"
)

type applicationInput struct {
	JobID            string         `json:"jobid"`
	CoverLetter      string         `json:"coverLetter"`
	ProposedBudget   *models.Budget `json:"proposedBudget"`
	ProposedDuration string         `json:"proposedDuration"`
	StartDate        *time.Time     `json:"startDate"`
}

// POST /api/applications
func CreateApplication(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	workerID := utils.GetUserIDFromRequest(r)

	var input applicationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}
	if input.JobID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "İlan bilgisi gereklidir")
		return
	}

	var job models.Job
	if err := db.JobCollection.FindOne(ctx, bson.M{"jobid": input.JobID}).Decode(&job); err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "İlan bulunamadı")
		} else {
			utils.RespondWithError(w, http.StatusInternalServerError, "Başvuru oluşturulurken hata oluştu")
		}
		return
	}
	if job.Status != models.JobStatusActive {
		utils.RespondWithError(w, http.StatusConflict, "Bu ilan başvuruya kapalı")
		return
	}
	if job.EmployerID == workerID {
		utils.RespondWithError(w, http.StatusForbidden, "Kendi ilanınıza başvuru yapamazsınız")
		return
	}

	app := models.Application{
		ApplicationID:    "a" + utils.GenerateRandomString(15),
		JobID:            job.JobID,
		WorkerID:         workerID,
		EmployerID:       job.EmployerID,
		CoverLetter:      input.CoverLetter,
		ProposedBudget:   input.ProposedBudget,
		ProposedDuration: input.ProposedDuration,
		StartDate:        input.StartDate,
		Status:           models.ApplicationPending,
		SubmittedAt:      time.Now(),
	}

	if _, err := db.ApplicationCollection.InsertOne(ctx, app); err != nil {
		utils.Fail(w, classifyInsertError(err))
		return
	}

	_, err := db.JobCollection.UpdateOne(ctx,
		bson.M{"jobid": job.JobID},
		bson.M{"$inc": bson.M{"applicationsCount": 1}},
	)
	if err != nil {
		log.Printf("Failed to increment applicationsCount: %v", err)
	}

	utils.Success(w, http.StatusCreated, "Başvurunuz alındı", app)
}

// classifyInsertError maps an application insert failure to its API error.
// An insert bounced by the (jobid, workerId) unique index means the worker
// already applied to this job.
func classifyInsertError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return apperr.New(apperr.Conflict, "Bu ilana zaten başvuru yaptınız")
	}
	return apperr.Wrap(apperr.Internal, "Başvuru oluşturulurken hata oluştu", err)
}

// screenableStatuses are the states an employer may still move an
// application between while screening applicants.
var screenableStatuses = []string{
	models.ApplicationPending, models.ApplicationReviewed, models.ApplicationShortlisted,
}

// BuildScreeningUpdate validates an employer's screening transition
// (pending → reviewed/shortlisted) and returns the update document.
func BuildScreeningUpdate(status string, now time.Time) (bson.M, error) {
	if status != models.ApplicationReviewed && status != models.ApplicationShortlisted {
		return nil, apperr.New(apperr.Validation, "Geçersiz başvuru durumu")
	}
	return bson.M{"$set": bson.M{
		"status":     status,
		"reviewedAt": now,
		"updatedAt":  now,
	}}, nil
}

// PATCH /api/applications/:id/status
func UpdateApplicationStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	employerID := utils.GetUserIDFromRequest(r)

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}

	update, err := BuildScreeningUpdate(body.Status, time.Now())
	if err != nil {
		utils.Fail(w, err)
		return
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var app models.Application
	err = db.ApplicationCollection.FindOneAndUpdate(ctx,
		bson.M{
			"applicationid": ps.ByName("id"),
			"employerId":    employerID,
			"status":        bson.M{"$in": screenableStatuses},
		},
		update,
		opts,
	).Decode(&app)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Güncellenebilecek başvuru bulunamadı")
		} else {
			utils.RespondWithError(w, http.StatusInternalServerError, "Başvuru güncellenirken hata oluştu")
		}
		return
	}

	utils.Success(w, http.StatusOK, "Başvuru durumu güncellendi", app)
}

// GET /api/applications/:id
func GetApplication(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)

	var app models.Application
	err := db.ApplicationCollection.FindOne(ctx, bson.M{"applicationid": ps.ByName("id")}).Decode(&app)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Başvuru bulunamadı")
		} else {
			utils.RespondWithError(w, http.StatusInternalServerError, "Başvuru alınırken hata oluştu")
		}
		return
	}

	if app.WorkerID != userID && app.EmployerID != userID {
		utils.RespondWithError(w, http.StatusForbidden, "Bu başvuruyu görüntüleme yetkiniz yok")
		return
	}

	utils.Success(w, http.StatusOK, "", app)
}

// PATCH /api/applications/:id/withdraw
func WithdrawApplication(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	workerID := utils.GetUserIDFromRequest(r)

	now := time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var app models.Application
	err := db.ApplicationCollection.FindOneAndUpdate(ctx,
		bson.M{
			"applicationid": ps.ByName("id"),
			"workerId":      workerID,
			"status":        models.ApplicationPending,
		},
		bson.M{"$set": bson.M{"status": models.ApplicationWithdrawn, "updatedAt": now}},
		opts,
	).Decode(&app)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Geri çekilebilecek başvuru bulunamadı")
		} else {
			utils.RespondWithError(w, http.StatusInternalServerError, "Başvuru güncellenirken hata oluştu")
		}
		return
	}

	_, err = db.JobCollection.UpdateOne(ctx,
		bson.M{"jobid": app.JobID},
		bson.M{"$inc": bson.M{"applicationsCount": -1}},
	)
	if err != nil {
		log.Printf("Failed to decrement applicationsCount: %v", err)
	}

	utils.Success(w, http.StatusOK, "Başvuru geri çekildi", app)
}

// PATCH /api/applications/:id/reject
func RejectApplication(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	employerID := utils.GetUserIDFromRequest(r)

	var body struct {
		Notes string `json:"notes"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	now := time.Now()
	set := bson.M{
		"status":      models.ApplicationRejected,
		"respondedAt": now,
		"updatedAt":   now,
	}
	if body.Notes != "" {
		set["employerNotes"] = body.Notes
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var app models.Application
	err := db.ApplicationCollection.FindOneAndUpdate(ctx,
		bson.M{
			"applicationid": ps.ByName("id"),
			"employerId":    employerID,
			"status":        bson.M{"$in": screenableStatuses},
		},
		bson.M{"$set": set},
		opts,
	).Decode(&app)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Reddedilebilecek başvuru bulunamadı")
		} else {
			utils.RespondWithError(w, http.StatusInternalServerError, "Başvuru güncellenirken hata oluştu")
		}
		return
	}

	utils.Success(w, http.StatusOK, "Başvuru reddedildi", app)
}

// PATCH /api/applications/:id/accept
//
// Accepting runs inside one mongo transaction: the application flips to
// accepted, the job to in_progress with the worker recorded, and every
// other pending application for the job is rejected in bulk. A failure
// anywhere rolls back the whole cascade.
func AcceptApplication(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	employerID := utils.GetUserIDFromRequest(r)

	var app models.Application
	err := db.ApplicationCollection.FindOne(ctx, bson.M{"applicationid": ps.ByName("id")}).Decode(&app)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Başvuru bulunamadı")
		} else {
			utils.RespondWithError(w, http.StatusInternalServerError, "Başvuru alınırken hata oluştu")
		}
		return
	}
	if app.EmployerID != employerID {
		utils.RespondWithError(w, http.StatusForbidden, "Bu başvuruyu kabul etme yetkiniz yok")
		return
	}

	var job models.Job
	if err := db.JobCollection.FindOne(ctx, bson.M{"jobid": app.JobID}).Decode(&job); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "İlan bulunamadı")
		return
	}

	plan, err := BuildAcceptPlan(app, job, time.Now())
	if err != nil {
		utils.Fail(w, err)
		return
	}

	session, err := db.Client.StartSession()
	if err != nil {
		log.Printf("Failed to start session: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Başvuru kabul edilirken hata oluştu")
		return
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, runAcceptPlan(sc, plan)
	})
	if err != nil {
		log.Printf("Accept transaction failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Başvuru kabul edilirken hata oluştu")
		return
	}

	utils.Success(w, http.StatusOK, "Başvuru kabul edildi", utils.M{
		"applicationid": app.ApplicationID,
		"jobid":         job.JobID,
		"workerId":      app.WorkerID,
	})
}

func runAcceptPlan(ctx context.Context, plan []AcceptUpdate) error {
	for _, u := range plan {
		coll := db.ApplicationCollection
		if u.Collection == "jobs" {
			coll = db.JobCollection
		}
		var err error
		if u.Many {
			_, err = coll.UpdateMany(ctx, u.Filter, u.Update)
		} else {
			_, err = coll.UpdateOne(ctx, u.Filter, u.Update)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// GET /api/jobs/:id/applications
func GetJobApplications(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	employerID := utils.GetUserIDFromRequest(r)
	jobID := ps.ByName("id")

	var job models.Job
	if err := db.JobCollection.FindOne(ctx, bson.M{"jobid": jobID}).Decode(&job); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "İlan bulunamadı")
		return
	}
	if job.EmployerID != employerID {
		utils.RespondWithError(w, http.StatusForbidden, "Bu ilanın başvurularını görüntüleme yetkiniz yok")
		return
	}

	filter := bson.M{"jobid": jobID}
	if status := r.URL.Query().Get("status"); status != "" && utils.Contains(models.ApplicationStatuses, status) {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}})

	apps, err := utils.FindAndDecode[models.Application](ctx, db.ApplicationCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Başvurular alınırken hata oluştu")
		return
	}

	utils.SuccessCount(w, http.StatusOK, len(apps), apps)
}

// GET /api/workers/my-applications
func GetMyApplications(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	workerID := utils.GetUserIDFromRequest(r)

	filter := bson.M{"workerId": workerID}
	if status := r.URL.Query().Get("status"); status != "" && utils.Contains(models.ApplicationStatuses, status) {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}})

	apps, err := utils.FindAndDecode[models.Application](ctx, db.ApplicationCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Başvurular alınırken hata oluştu")
		return
	}

	utils.SuccessCount(w, http.StatusOK, len(apps), apps)
}
