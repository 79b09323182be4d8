package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/upservice/user-profile-service/internal/userprofile/app/service"
	pkghttp "github.com/upservice/user-profile-service/pkg/http"
)

type messageResponse struct {
	Message string `json:"message"`
}

type fieldErrorsResponse struct {
	Errors map[string]string `json:"errors"`
}

// handleServiceError claims the proper status code for wrapped service
// errors and passes everything else through as an internal failure.
func handleServiceError(w pkghttp.ResponseWriter, email string, err error) error {
	var fieldErr service.FieldError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, service.ErrUserProfileNotFound):
		w.SetStatusCode(http.StatusNotFound).
			SetJSONBody(messageResponse{Message: fmt.Sprintf("User with email %s does not exist", email)})
	case errors.As(err, &fieldErr):
		httpCode := http.StatusBadRequest
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			httpCode = http.StatusConflict
		}
		w.SetStatusCode(httpCode).
			SetJSONBody(fieldErrorsResponse{Errors: map[string]string{fieldErr.Field: fieldErr.Err.Error()}})
	case errors.Is(err, service.ErrNoFieldsUpdated),
		errors.Is(err, service.ErrIncorrectPassword),
		errors.Is(err, service.ErrPasswordsDoNotMatch):
		w.SetStatusCode(http.StatusBadRequest).
			SetJSONBody(messageResponse{Message: err.Error()})
	}
	return err
}
