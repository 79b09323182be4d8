package http

import (
	"net/http"

	"github.com/upservice/user-profile-service/internal/userprofile/app/service"
	pkghttp "github.com/upservice/user-profile-service/pkg/http"
)

type updateUserProfileHandler struct {
	service service.UserProfile
}

func NewUpdateUserProfileHandler(service service.UserProfile) pkghttp.Handler {
	return updateUserProfileHandler{service: service}
}

func (h updateUserProfileHandler) Method() string {
	return http.MethodPut
}

func (h updateUserProfileHandler) Path() string {
	return "/users/{email}"
}

func (h updateUserProfileHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	email, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[string]("email"), nil)
	body, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[updateUserProfileRequest](), err)
	if err != nil {
		return err
	}

	err = h.service.Update(r.Context(), email, service.UpdateUserProfileData{
		Email:     body.Email,
		Password:  body.Password,
		FirstName: body.FirstName,
		LastName:  body.LastName,
	})
	if err != nil {
		return handleServiceError(w, email, err)
	}

	w.SetStatusCode(http.StatusNoContent)
	return nil
}

// updateUserProfileRequest carries a partial patch, absent fields stay unchanged.
type updateUserProfileRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
