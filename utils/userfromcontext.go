package utils

import (
	"net/http"

	"ustabul/globals"
)

func GetUserIDFromRequest(r *http.Request) string {
	ctx := r.Context()
	requestingUserID, ok := ctx.Value(globals.UserIDKey).(string)
	if !ok || requestingUserID == "" {
		return ""
	}
	return requestingUserID
}

func GetUserTypeFromRequest(r *http.Request) string {
	userType, ok := r.Context().Value(globals.UserTypeKey).(string)
	if !ok {
		return ""
	}
	return userType
}
