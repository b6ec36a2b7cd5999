package handler

import (
	"net/http"

	"github.com/pzhuhenong/teriteri-backend/internal/apperr"
)

// response is the envelope every endpoint returns.
type response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func ok(message string, data any) (int, response) {
	return http.StatusOK, response{
		Code:    http.StatusOK,
		Message: message,
		Data:    data,
	}
}

// statusFor maps error classifications to HTTP statuses. Expected rejections
// (bad input, conflicts, bad credentials, bans) are 403 like the rest of the
// platform API; only dependency failures are 5xx.
func statusFor(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindValidation,
		apperr.KindConflict,
		apperr.KindAuthentication,
		apperr.KindAuthorization:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func fail(err error) (int, response) {
	status := statusFor(err)
	return status, response{
		Code:    status,
		Message: apperr.MessageOf(err),
	}
}
