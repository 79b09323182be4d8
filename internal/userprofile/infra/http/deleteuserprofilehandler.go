package http

import (
	"net/http"

	"github.com/upservice/user-profile-service/internal/userprofile/app/service"
	pkghttp "github.com/upservice/user-profile-service/pkg/http"
)

type deleteUserProfileHandler struct {
	service service.UserProfile
}

func NewDeleteUserProfileHandler(service service.UserProfile) pkghttp.Handler {
	return deleteUserProfileHandler{service: service}
}

func (h deleteUserProfileHandler) Method() string {
	return http.MethodDelete
}

func (h deleteUserProfileHandler) Path() string {
	return "/users/{email}"
}

func (h deleteUserProfileHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	email, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[string]("email"), nil)
	if err != nil {
		return err
	}

	err = h.service.Delete(r.Context(), email)
	if err != nil {
		return handleServiceError(w, email, err)
	}

	w.SetStatusCode(http.StatusNoContent)
	return nil
}
