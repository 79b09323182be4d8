package http

import (
	"net/http"

	"github.com/upservice/user-profile-service/internal/userprofile/app/service"
	pkghttp "github.com/upservice/user-profile-service/pkg/http"
)

type getUserProfileHandler struct {
	service service.UserProfile
}

func NewGetUserProfileHandler(service service.UserProfile) pkghttp.Handler {
	return getUserProfileHandler{service: service}
}

func (h getUserProfileHandler) Method() string {
	return http.MethodGet
}

func (h getUserProfileHandler) Path() string {
	return "/users/{email}"
}

func (h getUserProfileHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	email, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[string]("email"), nil)
	if err != nil {
		return err
	}

	profile, err := h.service.GetByEmail(r.Context(), email)
	if err != nil {
		return handleServiceError(w, email, err)
	}

	w.SetJSONBody(toUserProfileResponse(profile))
	return nil
}

type userProfileResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

func toUserProfileResponse(profile service.UserProfileData) userProfileResponse {
	return userProfileResponse{
		ID:        profile.ID.String(),
		Email:     profile.Email,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
	}
}
