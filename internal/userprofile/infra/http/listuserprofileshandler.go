package http

import (
	"net/http"

	"github.com/upservice/user-profile-service/internal/userprofile/app/service"
	pkghttp "github.com/upservice/user-profile-service/pkg/http"
)

type listUserProfilesHandler struct {
	service service.UserProfile
}

func NewListUserProfilesHandler(service service.UserProfile) pkghttp.Handler {
	return listUserProfilesHandler{service: service}
}

func (h listUserProfilesHandler) Method() string {
	return http.MethodGet
}

func (h listUserProfilesHandler) Path() string {
	return "/users"
}

func (h listUserProfilesHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	profiles, err := h.service.List(r.Context())
	if err != nil {
		return err
	}

	result := make([]userProfileResponse, 0, len(profiles))
	for _, profile := range profiles {
		result = append(result, toUserProfileResponse(profile))
	}

	w.SetJSONBody(result)
	return nil
}
