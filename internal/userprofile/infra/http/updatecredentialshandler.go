package http

import (
	"net/http"

	"github.com/upservice/user-profile-service/internal/userprofile/app/service"
	pkghttp "github.com/upservice/user-profile-service/pkg/http"
)

type updateCredentialsHandler struct {
	service service.UserProfile
}

func NewUpdateCredentialsHandler(service service.UserProfile) pkghttp.Handler {
	return updateCredentialsHandler{service: service}
}

func (h updateCredentialsHandler) Method() string {
	return http.MethodPut
}

func (h updateCredentialsHandler) Path() string {
	return "/users/{email}/credentials"
}

func (h updateCredentialsHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	email, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[string]("email"), nil)
	body, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[updateCredentialsRequest](), err)
	if err != nil {
		return err
	}

	err = h.service.UpdateCredentials(r.Context(), service.UpdateCredentialsData{
		Email:              email,
		Password:           body.Password,
		NewEmail:           body.NewEmail,
		NewPassword:        body.NewPassword,
		ConfirmNewPassword: body.ConfirmNewPassword,
	})
	if err != nil {
		return handleServiceError(w, email, err)
	}

	w.SetStatusCode(http.StatusNoContent)
	return nil
}

type updateCredentialsRequest struct {
	Password           string `json:"password"`
	NewEmail           string `json:"newEmail"`
	NewPassword        string `json:"newPassword"`
	ConfirmNewPassword string `json:"confirmNewPassword"`
}
