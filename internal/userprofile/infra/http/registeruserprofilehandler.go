package http

import (
	"fmt"
	"net/http"

	"github.com/upservice/user-profile-service/internal/userprofile/app/service"
	pkghttp "github.com/upservice/user-profile-service/pkg/http"
)

type registerUserProfileHandler struct {
	service service.UserProfile
}

func NewRegisterUserProfileHandler(service service.UserProfile) pkghttp.Handler {
	return registerUserProfileHandler{service: service}
}

func (h registerUserProfileHandler) Method() string {
	return http.MethodPost
}

func (h registerUserProfileHandler) Path() string {
	return "/users"
}

func (h registerUserProfileHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	body, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[registerUserProfileRequest](), nil)
	if err != nil {
		return err
	}

	profileID, err := h.service.Create(r.Context(), service.CreateUserProfileData{
		Email:     body.Email,
		Password:  body.Password,
		FirstName: body.FirstName,
		LastName:  body.LastName,
	})
	if err != nil {
		return handleServiceError(w, body.Email, err)
	}

	w.SetStatusCode(http.StatusCreated).SetJSONBody(registerUserProfileResponse{
		ID:      profileID.String(),
		Message: fmt.Sprintf("User with email %s registered successfully", body.Email),
	})
	return nil
}

type registerUserProfileRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type registerUserProfileResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
