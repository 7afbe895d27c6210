package reviews

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
	"ustabul/models"
	"ustabul/utils"
)

type reviewInput struct {
	JobID    string               `json:"jobid"`
	Rating   int                  `json:"rating"`
	Aspects  models.ReviewAspects `json:"aspects"`
	Comment  string               `json:"comment"`
	IsPublic *bool                `json:"isPublic"`
}

// POST /api/reviews
func CreateReview(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	reviewerID := utils.GetUserIDFromRequest(r)

	var input reviewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}
	if input.JobID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "İlan bilgisi gereklidir")
		return
	}
	if input.Rating < 1 || input.Rating > 5 {
		utils.RespondWithError(w, http.StatusBadRequest, "Puan 1 ile 5 arasında olmalıdır")
		return
	}

	var job models.Job
	if err := db.JobCollection.FindOne(ctx, bson.M{"jobid": input.JobID}).Decode(&job); err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "İlan bulunamadı")
		} else {
			utils.RespondWithError(w, http.StatusInternalServerError, "Değerlendirme oluşturulurken hata oluştu")
		}
		return
	}

	reviewerType, err := ValidateReviewer(job, reviewerID)
	if err != nil {
		utils.Fail(w, err)
		return
	}

	isPublic := true
	if input.IsPublic != nil {
		isPublic = *input.IsPublic
	}

	review := models.Review{
		ReviewID:     utils.GetUUID(),
		JobID:        job.JobID,
		ReviewerID:   reviewerID,
		RevieweeID:   RevieweeFor(job, reviewerType),
		ReviewerType: reviewerType,
		Rating:       input.Rating,
		Aspects:      input.Aspects,
		Comment:      input.Comment,
		IsPublic:     isPublic,
		CreatedAt:    time.Now(),
	}

	if _, err := db.ReviewsCollection.InsertOne(ctx, review); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.RespondWithError(w, http.StatusConflict, "Bu iş için zaten değerlendirme yaptınız")
			return
		}
		log.Printf("Review insert error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Değerlendirme oluşturulurken hata oluştu")
		return
	}

	if err := applyRating(ctx, review.RevieweeID, reviewerType, review.Rating); err != nil {
		log.Printf("Failed to update rating for %s: %v", review.RevieweeID, err)
	}

	utils.Success(w, http.StatusCreated, "Değerlendirmeniz kaydedildi", review)
}

// applyRating folds the new score into the reviewee profile's aggregate.
// The reviewee's role is the opposite of the reviewer's.
func applyRating(ctx context.Context, revieweeID, reviewerType string, score int) error {
	coll := db.WorkerProfileCollection
	if reviewerType == models.UserTypeWorker {
		coll = db.EmployerProfileCollection
	}

	var doc struct {
		Rating models.Rating `bson:"rating"`
	}
	if err := coll.FindOne(ctx, bson.M{"userid": revieweeID}).Decode(&doc); err != nil {
		return err
	}

	updated := UpdatedRating(doc.Rating, score)
	_, err := coll.UpdateOne(ctx,
		bson.M{"userid": revieweeID},
		bson.M{"$set": bson.M{"rating": updated}},
	)
	return err
}

// GET /api/reviews/user/:userId
func GetUserReviews(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{"revieweeId": ps.ByName("userId"), "isPublic": true}

	skip, limit := utils.ParsePagination(r, 20, 100)
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	reviewList, err := utils.FindAndDecode[models.Review](ctx, db.ReviewsCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Değerlendirmeler alınırken hata oluştu")
		return
	}

	total, err := db.ReviewsCollection.CountDocuments(ctx, filter)
	if err != nil {
		total = int64(len(reviewList))
	}

	utils.SuccessCount(w, http.StatusOK, int(total), reviewList)
}

// POST /api/reviews/:id/response
func RespondToReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	userID := utils.GetUserIDFromRequest(r)

	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || strings.TrimSpace(body.Text) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Yanıt metni gereklidir")
		return
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var review models.Review
	err := db.ReviewsCollection.FindOneAndUpdate(ctx,
		bson.M{"reviewid": ps.ByName("id"), "revieweeId": userID, "response": nil},
		bson.M{"$set": bson.M{"response": models.ReviewResponse{
			Text:      body.Text,
			CreatedAt: time.Now(),
		}}},
		opts,
	).Decode(&review)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Yanıtlanabilecek değerlendirme bulunamadı")
		} else {
			utils.RespondWithError(w, http.StatusInternalServerError, "Yanıt kaydedilirken hata oluştu")
		}
		return
	}

	utils.Success(w, http.StatusOK, "Yanıtınız kaydedildi", review)
}

// POST /api/reviews/:id/report
func ReportReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	var body struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || strings.TrimSpace(body.Reason) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Şikayet nedeni gereklidir")
		return
	}

	res, err := db.ReviewsCollection.UpdateOne(ctx,
		bson.M{"reviewid": ps.ByName("id")},
		bson.M{"$set": bson.M{"reported": true, "reportReason": body.Reason}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Şikayet kaydedilirken hata oluştu")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Değerlendirme bulunamadı")
		return
	}

	utils.Success(w, http.StatusOK, "Şikayetiniz alındı", nil)
}
