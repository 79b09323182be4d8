package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/upservice/user-profile-service/internal/userprofile/app/service"
	servicemock "github.com/upservice/user-profile-service/internal/userprofile/app/service/mock"
	"github.com/upservice/user-profile-service/internal/userprofile/domain"
	infrahttp "github.com/upservice/user-profile-service/internal/userprofile/infra/http"
	pkghttp "github.com/upservice/user-profile-service/pkg/http"
)

func serveRequest(handler pkghttp.Handler, r *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	pkghttp.NewHTTPHandler(handler).ServeHTTP(recorder, r)
	return recorder
}

func TestRegisterUserProfileHandler_Responds(t *testing.T) {
	profileID := domain.UserProfileID{UUID: uuid.New()}

	tests := []struct {
		name       string
		body       string
		service    func(ctrl *gomock.Controller) *servicemock.UserProfile
		expectCode int
		expectBody func(t *testing.T, body map[string]any)
	}{
		{
			name: "created",
			body: `{"email":"john.doe@example.com","password":"password123","firstName":"John","lastName":"Doe"}`,
			service: func(ctrl *gomock.Controller) *servicemock.UserProfile {
				mock := servicemock.NewUserProfile(ctrl)
				mock.EXPECT().Create(gomock.Any(), service.CreateUserProfileData{
					Email:     "john.doe@example.com",
					Password:  "password123",
					FirstName: "John",
					LastName:  "Doe",
				}).Return(profileID, nil)
				return mock
			},
			expectCode: http.StatusCreated,
			expectBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, profileID.String(), body["id"])
				assert.Contains(t, body["message"], "john.doe@example.com")
			},
		},
		{
			name: "bad_request_with_field_errors",
			body: `{"email":"not-an-email","password":"password123"}`,
			service: func(ctrl *gomock.Controller) *servicemock.UserProfile {
				mock := servicemock.NewUserProfile(ctrl)
				mock.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(domain.UserProfileID{}, service.FieldError{Field: "email", Err: service.ErrEmailInvalid})
				return mock
			},
			expectCode: http.StatusBadRequest,
			expectBody: func(t *testing.T, body map[string]any) {
				fieldErrors, ok := body["errors"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, service.ErrEmailInvalid.Error(), fieldErrors["email"])
			},
		},
		{
			name: "conflict_when_email_taken",
			body: `{"email":"john.doe@example.com","password":"password123"}`,
			service: func(ctrl *gomock.Controller) *servicemock.UserProfile {
				mock := servicemock.NewUserProfile(ctrl)
				mock.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(domain.UserProfileID{}, service.FieldError{Field: "email", Err: service.ErrEmailAlreadyExists})
				return mock
			},
			expectCode: http.StatusConflict,
		},
		{
			name: "bad_request_on_malformed_json",
			body: `{"email":`,
			service: func(ctrl *gomock.Controller) *servicemock.UserProfile {
				return servicemock.NewUserProfile(ctrl)
			},
			expectCode: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			handler := infrahttp.NewRegisterUserProfileHandler(tc.service(ctrl))
			req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(tc.body))

			recorder := serveRequest(handler, req)
			assert.Equal(t, tc.expectCode, recorder.Code)
			if tc.expectBody != nil {
				var body map[string]any
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
				tc.expectBody(t, body)
			}
		})
	}
}

func TestGetUserProfileHandler_Responds(t *testing.T) {
	profileID := domain.UserProfileID{UUID: uuid.New()}

	t.Run("ok_without_password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		serviceMock := servicemock.NewUserProfile(ctrl)
		serviceMock.EXPECT().GetByEmail(gomock.Any(), "john.doe@example.com").
			Return(service.UserProfileData{
				ID:        profileID,
				Email:     "john.doe@example.com",
				FirstName: "John",
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/users/john.doe@example.com", nil)
		req = mux.SetURLVars(req, map[string]string{"email": "john.doe@example.com"})

		recorder := serveRequest(infrahttp.NewGetUserProfileHandler(serviceMock), req)
		require.Equal(t, http.StatusOK, recorder.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "john.doe@example.com", body["email"])
		assert.Equal(t, "John", body["firstName"])
		assert.NotContains(t, body, "password")
		assert.NotContains(t, body, "passwordHash")
	})

	t.Run("not_found_with_email_in_message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		serviceMock := servicemock.NewUserProfile(ctrl)
		serviceMock.EXPECT().GetByEmail(gomock.Any(), "missing@example.com").
			Return(service.UserProfileData{}, service.ErrUserProfileNotFound)

		req := httptest.NewRequest(http.MethodGet, "/users/missing@example.com", nil)
		req = mux.SetURLVars(req, map[string]string{"email": "missing@example.com"})

		recorder := serveRequest(infrahttp.NewGetUserProfileHandler(serviceMock), req)
		require.Equal(t, http.StatusNotFound, recorder.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "User with email missing@example.com does not exist", body["message"])
	})
}

func TestListUserProfilesHandler_Responds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serviceMock := servicemock.NewUserProfile(ctrl)
	serviceMock.EXPECT().List(gomock.Any()).Return([]service.UserProfileData{
		{ID: domain.UserProfileID{UUID: uuid.New()}, Email: "a@example.com"},
		{ID: domain.UserProfileID{UUID: uuid.New()}, Email: "b@example.com"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	recorder := serveRequest(infrahttp.NewListUserProfilesHandler(serviceMock), req)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "a@example.com", body[0]["email"])
}

func TestUpdateUserProfileHandler_Responds(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		expectCode int
	}{
		{name: "no_content_on_success", expectCode: http.StatusNoContent},
		{name: "bad_request_when_nothing_updated", serviceErr: service.ErrNoFieldsUpdated, expectCode: http.StatusBadRequest},
		{name: "not_found_when_profile_missing", serviceErr: service.ErrUserProfileNotFound, expectCode: http.StatusNotFound},
		{
			name:       "conflict_when_new_email_taken",
			serviceErr: service.FieldError{Field: "email", Err: service.ErrEmailAlreadyExists},
			expectCode: http.StatusConflict,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			serviceMock := servicemock.NewUserProfile(ctrl)
			serviceMock.EXPECT().
				Update(gomock.Any(), "john.doe@example.com", service.UpdateUserProfileData{FirstName: "Jane"}).
				Return(tc.serviceErr)

			req := httptest.NewRequest(http.MethodPut, "/users/john.doe@example.com", strings.NewReader(`{"firstName":"Jane"}`))
			req = mux.SetURLVars(req, map[string]string{"email": "john.doe@example.com"})

			recorder := serveRequest(infrahttp.NewUpdateUserProfileHandler(serviceMock), req)
			assert.Equal(t, tc.expectCode, recorder.Code)
		})
	}
}

func TestUpdateCredentialsHandler_Responds(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		expectCode int
	}{
		{name: "no_content_on_success", expectCode: http.StatusNoContent},
		{name: "bad_request_on_incorrect_password", serviceErr: service.ErrIncorrectPassword, expectCode: http.StatusBadRequest},
		{name: "bad_request_on_confirmation_mismatch", serviceErr: service.ErrPasswordsDoNotMatch, expectCode: http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			serviceMock := servicemock.NewUserProfile(ctrl)
			serviceMock.EXPECT().
				UpdateCredentials(gomock.Any(), service.UpdateCredentialsData{
					Email:              "john.doe@example.com",
					Password:           "oldPassword1",
					NewPassword:        "newPass1",
					ConfirmNewPassword: "newPass1",
				}).
				Return(tc.serviceErr)

			body := `{"password":"oldPassword1","newPassword":"newPass1","confirmNewPassword":"newPass1"}`
			req := httptest.NewRequest(http.MethodPut, "/users/john.doe@example.com/credentials", strings.NewReader(body))
			req = mux.SetURLVars(req, map[string]string{"email": "john.doe@example.com"})

			recorder := serveRequest(infrahttp.NewUpdateCredentialsHandler(serviceMock), req)
			assert.Equal(t, tc.expectCode, recorder.Code)
		})
	}
}

func TestDeleteUserProfileHandler_Responds(t *testing.T) {
	t.Run("no_content_on_success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		serviceMock := servicemock.NewUserProfile(ctrl)
		serviceMock.EXPECT().Delete(gomock.Any(), "john.doe@example.com").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/users/john.doe@example.com", nil)
		req = mux.SetURLVars(req, map[string]string{"email": "john.doe@example.com"})

		recorder := serveRequest(infrahttp.NewDeleteUserProfileHandler(serviceMock), req)
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	t.Run("not_found_when_profile_missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		serviceMock := servicemock.NewUserProfile(ctrl)
		serviceMock.EXPECT().Delete(gomock.Any(), "missing@example.com").Return(service.ErrUserProfileNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/users/missing@example.com", nil)
		req = mux.SetURLVars(req, map[string]string{"email": "missing@example.com"})

		recorder := serveRequest(infrahttp.NewDeleteUserProfileHandler(serviceMock), req)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
