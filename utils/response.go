package utils

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"ustabul/apperr"
)

type M map[string]interface{}

// Sends a JSON response
func RespondWithJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// Success writes the standard {success, message, data} envelope.
func Success(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	resp := M{"success": true}
	if message != "" {
		resp["message"] = message
	}
	if data != nil {
		resp["data"] = data
	}
	RespondWithJSON(w, statusCode, resp)
}

// SuccessCount is Success with a count field for list responses.
func SuccessCount(w http.ResponseWriter, statusCode int, count int, data interface{}) {
	RespondWithJSON(w, statusCode, M{
		"success": true,
		"count":   count,
		"data":    data,
	})
}

func RespondWithError(w http.ResponseWriter, code int, msg string) {
	RespondWithJSON(w, code, M{"success": false, "message": msg})
}

// Fail maps an error to the envelope. apperr errors keep their kind and
// localized message; anything else becomes a generic 500.
func Fail(w http.ResponseWriter, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		resp := M{
			"success": false,
			"message": ae.Message,
			"error":   ae.Kind.String(),
		}
		RespondWithJSON(w, ae.Kind.Status(), resp)
		return
	}
	log.Printf("internal error: %v", err)
	RespondWithJSON(w, http.StatusInternalServerError, M{
		"success": false,
		"message": "Sunucu hatası",
		"error":   apperr.Internal.String(),
	})
}
