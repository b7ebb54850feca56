package server

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	apperrors "github.com/jrsteele09/go-session-server/internal/errors"
	"github.com/rs/zerolog"
)

const (
	renewedTokenMessage = "New token has been created"
	retryAfterSeconds   = "5"
	maxRequestBodyBytes = 1 << 20
)

// ErrorResponse is the outward body of every failed request. It never carries
// the internal cause.
type ErrorResponse struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
	Detail string `json:"detail"`
}

type TokenResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
}

// RenewedResponse wraps a protected response when the access token was renewed
// during the request.
type RenewedResponse struct {
	TokenResponse TokenResponse `json:"token_response"`
	BodyResponse  any           `json:"body_response"`
}

// ShapeResponse returns body unchanged unless newAccessToken is set, in which
// case the body is wrapped together with the new token.
func ShapeResponse(body any, newAccessToken string) any {
	if newAccessToken == "" {
		return body
	}
	return RenewedResponse{
		TokenResponse: TokenResponse{
			Message:     renewedTokenMessage,
			AccessToken: newAccessToken,
		},
		BodyResponse: body,
	}
}

// ErrorStatus maps err onto an HTTP status and its outward body.
func ErrorStatus(err error) (int, ErrorResponse) {
	switch {
	case errors.Is(err, apperrors.ErrUnavailable):
		return http.StatusServiceUnavailable, ErrorResponse{Status: "Service Unavailable", Detail: "Try again later"}
	case errors.Is(err, apperrors.ErrInvalidToken):
		return http.StatusUnauthorized, ErrorResponse{Status: "Access denied", Detail: "Invalid token"}
	case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, apperrors.ErrBadCredential):
		return http.StatusUnauthorized, ErrorResponse{Status: "Access denied", Detail: "Unauthorized"}
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden, ErrorResponse{Status: "Access denied", Detail: "Forbidden"}
	case errors.Is(err, apperrors.ErrInvalidRequest):
		return http.StatusBadRequest, ErrorResponse{Status: "Incorrect request", Detail: "Invalid request"}
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, ErrorResponse{Status: "Incorrect request", Detail: "does not exist"}
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, ErrorResponse{Status: "error", Detail: "Already exists"}
	default:
		return http.StatusInternalServerError, ErrorResponse{Status: "error", Detail: "Internal server error"}
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := ErrorStatus(err)

	logger := zerolog.Ctx(r.Context())
	event := logger.Debug()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Err(err).Int("status", status).Msg("request failed")

	if status == http.StatusServiceUnavailable {
		w.Header().Set("Retry-After", retryAfterSeconds)
	}
	writeJSON(w, status, body)
}

// decodeRequest fills v from a JSON body, or from form and query values when
// the request is not JSON. fields maps form keys to destinations.
func decodeRequest(r *http.Request, v any, fields map[string]*string) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		return decodeJSON(r, v)
	}

	if err := r.ParseForm(); err != nil {
		return apperrors.Wrapf(apperrors.ErrInvalidRequest, "parse form: %s", err.Error())
	}
	for key, dst := range fields {
		*dst = r.FormValue(key)
	}
	return nil
}

// decodeJSON reads a JSON body into v.
func decodeJSON(r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxRequestBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperrors.Wrapf(apperrors.ErrInvalidRequest, "decode body: %s", err.Error())
	}
	return nil
}
