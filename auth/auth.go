package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"ustabul/apperr"
	"ustabul/db"
	"ustabul/globals"
	"ustabul/middleware"
	"ustabul/models"
	"ustabul/rdx"
	"ustabul/utils"
)

const tokenTTL = 30 * 24 * time.Hour

func generateToken(user models.User) (string, error) {
	claims := &middleware.Claims{
		Email:    user.Email,
		UserID:   user.UserID,
		UserType: user.UserType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}

type registerInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	UserType string `json:"userType"`
}

// POST /api/auth/register
func Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var input registerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}

	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Email == "" || !strings.Contains(input.Email, "@") {
		utils.RespondWithError(w, http.StatusBadRequest, "Geçerli bir email adresi giriniz")
		return
	}
	if len(input.Password) < 6 {
		utils.RespondWithError(w, http.StatusBadRequest, "Şifre en az 6 karakter olmalıdır")
		return
	}
	if strings.TrimSpace(input.FullName) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Ad Soyad gereklidir")
		return
	}
	if strings.TrimSpace(input.Phone) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Telefon numarası gereklidir")
		return
	}
	if input.UserType != models.UserTypeWorker && input.UserType != models.UserTypeEmployer {
		utils.RespondWithError(w, http.StatusBadRequest, "Geçerli bir kullanıcı tipi seçiniz")
		return
	}

	var existing models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"email": input.Email}).Decode(&existing)
	if err == nil {
		utils.RespondWithError(w, http.StatusConflict, "Bu email adresi zaten kullanılıyor")
		return
	} else if err != mongo.ErrNoDocuments {
		log.Printf("DB error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Kayıt sırasında hata oluştu")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Kayıt sırasında hata oluştu")
		return
	}

	user := models.User{
		UserID:    "u" + utils.GenerateRandomString(10),
		Email:     input.Email,
		Password:  string(hashedPassword),
		FullName:  strings.TrimSpace(input.FullName),
		Phone:     strings.TrimSpace(input.Phone),
		UserType:  input.UserType,
		IsActive:  true,
		CreatedAt: time.Now(),
	}

	if _, err := db.UserCollection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.RespondWithError(w, http.StatusConflict, "Bu email adresi zaten kullanılıyor")
			return
		}
		log.Printf("Insert error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Kayıt sırasında hata oluştu")
		return
	}

	// Profile shell so the setup pages have something to update
	createProfileShell(ctx, user)

	tokenString, err := generateToken(user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Token oluşturulamadı")
		return
	}
	cacheToken(user.UserID, tokenString)

	utils.Success(w, http.StatusCreated, "Kayıt başarılı", utils.M{
		"user":  publicUser(user),
		"token": tokenString,
	})
}

func createProfileShell(ctx context.Context, user models.User) {
	now := time.Now()
	switch user.UserType {
	case models.UserTypeWorker:
		profile := models.WorkerProfile{
			UserID:      user.UserID,
			Skills:      []models.SelectedSkill{},
			IsAvailable: true,
			CreatedAt:   now,
		}
		if _, err := db.WorkerProfileCollection.InsertOne(ctx, profile); err != nil {
			log.Printf("Failed to create worker profile shell: %v", err)
		}
	case models.UserTypeEmployer:
		profile := models.EmployerProfile{UserID: user.UserID, CreatedAt: now}
		if _, err := db.EmployerProfileCollection.InsertOne(ctx, profile); err != nil {
			log.Printf("Failed to create employer profile shell: %v", err)
		}
	}
}

// POST /api/auth/login
func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	var user models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"email": input.Email}).Decode(&user); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Geçersiz email veya şifre")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Geçersiz email veya şifre")
		return
	}

	if !user.IsActive {
		utils.RespondWithError(w, http.StatusUnauthorized, "Hesabınız deaktif durumda")
		return
	}

	tokenString, err := generateToken(user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Token oluşturulamadı")
		return
	}
	cacheToken(user.UserID, tokenString)

	now := time.Now()
	_, err = db.UserCollection.UpdateOne(ctx,
		bson.M{"userid": user.UserID},
		bson.M{"$set": bson.M{"lastLogin": now}},
	)
	if err != nil {
		log.Printf("Failed to record last login: %v", err)
	}

	utils.Success(w, http.StatusOK, "Giriş başarılı", utils.M{
		"user":  publicUser(user),
		"token": tokenString,
	})
}

// GET /api/auth/me
func GetMe(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	userID := utils.GetUserIDFromRequest(r)

	var user models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&user); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Kullanıcı bulunamadı")
		return
	}

	var profile interface{}
	switch user.UserType {
	case models.UserTypeWorker:
		var p models.WorkerProfile
		if err := db.WorkerProfileCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&p); err == nil {
			profile = p
		}
	case models.UserTypeEmployer:
		var p models.EmployerProfile
		if err := db.EmployerProfileCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&p); err == nil {
			profile = p
		}
	}

	utils.Success(w, http.StatusOK, "", utils.M{
		"user":    publicUser(user),
		"profile": profile,
	})
}

// profileUpdateFields builds the $set document for an account update.
// Both fields are optional but at least one must be present.
func profileUpdateFields(fullName, phone string, now time.Time) (bson.M, error) {
	fullName = strings.TrimSpace(fullName)
	phone = strings.TrimSpace(phone)
	if fullName == "" && phone == "" {
		return nil, apperr.New(apperr.Validation, "Güncellenecek alan bulunamadı")
	}

	set := bson.M{"updatedAt": now}
	if fullName != "" {
		set["fullName"] = fullName
	}
	if phone != "" {
		set["phone"] = phone
	}
	return bson.M{"$set": set}, nil
}

// PUT /api/auth/update-profile
func UpdateProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	userID := utils.GetUserIDFromRequest(r)

	var input struct {
		FullName string `json:"fullName"`
		Phone    string `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}

	update, err := profileUpdateFields(input.FullName, input.Phone, time.Now())
	if err != nil {
		utils.Fail(w, err)
		return
	}

	var user models.User
	err = db.UserCollection.FindOneAndUpdate(ctx,
		bson.M{"userid": userID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Kullanıcı bulunamadı")
			return
		}
		log.Printf("Update error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Profil güncellenirken hata oluştu")
		return
	}

	utils.Success(w, http.StatusOK, "Profil bilgileri güncellendi", utils.M{
		"user": publicUser(user),
	})
}

// POST /api/auth/logout
func Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	if _, err := rdx.RdxHdel("tokens", userID); err != nil {
		log.Printf("Error removing token from Redis: %v", err)
	}

	utils.Success(w, http.StatusOK, "Çıkış yapıldı", nil)
}

// POST /api/auth/change-password
func ChangePassword(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	userID := utils.GetUserIDFromRequest(r)

	var input struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}
	if len(input.NewPassword) < 6 {
		utils.RespondWithError(w, http.StatusBadRequest, "Şifre en az 6 karakter olmalıdır")
		return
	}

	var user models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&user); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Kullanıcı bulunamadı")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.CurrentPassword)); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Mevcut şifre hatalı")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Şifre değiştirilemedi")
		return
	}

	_, err = db.UserCollection.UpdateOne(ctx,
		bson.M{"userid": userID},
		bson.M{"$set": bson.M{"password": string(hashed), "updatedAt": time.Now()}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Şifre değiştirilemedi")
		return
	}

	utils.Success(w, http.StatusOK, "Şifre değiştirildi", nil)
}

func cacheToken(userID, token string) {
	if err := rdx.RdxHset("tokens", userID, token); err != nil {
		log.Printf("Failed to cache token: %v", err)
	}
}

func publicUser(user models.User) models.PublicUser {
	return models.PublicUser{
		UserID:   user.UserID,
		Email:    user.Email,
		FullName: user.FullName,
		UserType: user.UserType,
	}
}
