package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/upservice/user-profile-service/internal/userprofile/app/encoding"
	encodingmock "github.com/upservice/user-profile-service/internal/userprofile/app/encoding/mock"
	"github.com/upservice/user-profile-service/internal/userprofile/app/service"
	"github.com/upservice/user-profile-service/internal/userprofile/domain"
	domainmock "github.com/upservice/user-profile-service/internal/userprofile/domain/mock"
	pkgpersistencestub "github.com/upservice/user-profile-service/pkg/persistence/stub"
)

func newTestService(
	profileRepo domain.UserProfileRepository,
	passwordHasher encoding.PasswordHasher,
) service.UserProfile {
	return service.NewUserProfileService(
		profileRepo,
		passwordHasher,
		service.NewValidator(service.PasswordPolicyStandard, service.PasswordPolicyLegacy),
		pkgpersistencestub.NewTransaction(),
	)
}

func TestUserProfileService_Create_Returns(t *testing.T) {
	profileID := domain.UserProfileID{UUID: uuid.New()}

	tests := []struct {
		name           string
		data           service.CreateUserProfileData
		profileRepo    func(ctrl *gomock.Controller) *domainmock.UserProfileRepository
		passwordHasher func(ctrl *gomock.Controller) *encodingmock.PasswordHasher
		expect         func(t *testing.T, err error)
	}{
		{
			name: "success",
			data: service.CreateUserProfileData{
				Email:     "john.doe@example.com",
				Password:  "password123",
				FirstName: "John",
				LastName:  "Doe",
			},
			profileRepo: func(ctrl *gomock.Controller) *domainmock.UserProfileRepository {
				mock := domainmock.NewUserProfileRepository(ctrl)
				mock.EXPECT().ExistsByEmail(gomock.Any(), "john.doe@example.com").Return(false, nil)
				mock.EXPECT().NextID().Return(profileID)
				mock.EXPECT().Store(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, profile *domain.UserProfile) {
						assert.Equal(t, profileID, profile.ID)
						assert.Equal(t, "john.doe@example.com", profile.Email)
						assert.Equal(t, "passwordHash", profile.PasswordHash)
						require.Len(t, profile.Changes, 1)
						assert.IsType(t, domain.EventUserProfileRegistered{}, profile.Changes[0])
					}).
					Return(nil)
				return mock
			},
			passwordHasher: func(ctrl *gomock.Controller) *encodingmock.PasswordHasher {
				mock := encodingmock.NewPasswordHasher(ctrl)
				mock.EXPECT().Hash("password123").Return("passwordHash", nil)
				return mock
			},
			expect: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "error_when_email_empty",
			data: service.CreateUserProfileData{Password: "password123"},
			expect: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrEmailRequired)
			},
		},
		{
			name: "error_when_email_malformed",
			data: service.CreateUserProfileData{Email: "not-an-email", Password: "password123"},
			expect: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrEmailInvalid)

				var fieldErr service.FieldError
				require.ErrorAs(t, err, &fieldErr)
				assert.Equal(t, "email", fieldErr.Field)
			},
		},
		{
			name: "error_when_password_empty",
			data: service.CreateUserProfileData{Email: "john.doe@example.com"},
			expect: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrPasswordRequired)
			},
		},
		{
			name: "error_when_password_too_short",
			data: service.CreateUserProfileData{Email: "john.doe@example.com", Password: "short"},
			expect: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrPasswordLength)
			},
		},
		{
			name: "error_when_first_name_has_digits",
			data: service.CreateUserProfileData{
				Email:     "john.doe@example.com",
				Password:  "password123",
				FirstName: "John42",
			},
			expect: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrNameInvalid)

				var fieldErr service.FieldError
				require.ErrorAs(t, err, &fieldErr)
				assert.Equal(t, "firstName", fieldErr.Field)
			},
		},
		{
			name: "error_when_email_taken",
			data: service.CreateUserProfileData{Email: "john.doe@example.com", Password: "password123"},
			profileRepo: func(ctrl *gomock.Controller) *domainmock.UserProfileRepository {
				mock := domainmock.NewUserProfileRepository(ctrl)
				mock.EXPECT().ExistsByEmail(gomock.Any(), "john.doe@example.com").Return(true, nil)
				return mock
			},
			expect: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrEmailAlreadyExists)
			},
		},
		{
			name: "error_when_concurrent_insert_hits_unique_index",
			data: service.CreateUserProfileData{Email: "john.doe@example.com", Password: "password123"},
			profileRepo: func(ctrl *gomock.Controller) *domainmock.UserProfileRepository {
				mock := domainmock.NewUserProfileRepository(ctrl)
				mock.EXPECT().ExistsByEmail(gomock.Any(), "john.doe@example.com").Return(false, nil)
				mock.EXPECT().NextID().Return(profileID)
				mock.EXPECT().Store(gomock.Any(), gomock.Any()).Return(domain.ErrEmailAlreadyExists)
				return mock
			},
			passwordHasher: func(ctrl *gomock.Controller) *encodingmock.PasswordHasher {
				mock := encodingmock.NewPasswordHasher(ctrl)
				mock.EXPECT().Hash("password123").Return("passwordHash", nil)
				return mock
			},
			expect: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrEmailAlreadyExists)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			profileRepo := domainmock.NewUserProfileRepository(ctrl)
			if tc.profileRepo != nil {
				profileRepo = tc.profileRepo(ctrl)
			}
			passwordHasher := encodingmock.NewPasswordHasher(ctrl)
			if tc.passwordHasher != nil {
				passwordHasher = tc.passwordHasher(ctrl)
			}

			srv := newTestService(profileRepo, passwordHasher)
			_, err := srv.Create(context.Background(), tc.data)
			tc.expect(t, err)
		})
	}
}

func TestUserProfileService_Update_Returns(t *testing.T) {
	currentProfile := func() *domain.UserProfile {
		return &domain.UserProfile{
			ID:           domain.UserProfileID{UUID: uuid.New()},
			Email:        "john.doe@example.com",
			PasswordHash: "currentHash",
			FirstName:    "John",
			LastName:     "Doe",
		}
	}

	tests := []struct {
		name           string
		patch          service.UpdateUserProfileData
		profileRepo    func(ctrl *gomock.Controller) *domainmock.UserProfileRepository
		passwordHasher func(ctrl *gomock.Controller) *encodingmock.PasswordHasher
		expect         func(t *testing.T, err error)
	}{
		{
			name:  "success_when_names_changed",
			patch: service.UpdateUserProfileData{FirstName: "Jane", LastName: "Smith"},
			profileRepo: func(ctrl *gomock.Controller) *domainmock.UserProfileRepository {
				mock := domainmock.NewUserProfileRepository(ctrl)
				mock.EXPECT().FindByEmail(gomock.Any(), "john.doe@example.com").Return(currentProfile(), nil)
				mock.EXPECT().Store(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, profile *domain.UserProfile) {
						assert.Equal(t, "Jane", profile.FirstName)
						assert.Equal(t, "Smith", profile.LastName)
						require.Len(t, profile.Changes, 1)

						evt, ok := profile.Changes[0].(domain.EventUserProfileUpdated)
						require.True(t, ok)
						assert.Equal(t, []string{"firstName", "lastName"}, evt.ChangedFields)
					}).
					Return(nil)
				return mock
			},
			expect: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:  "success_when_email_changed",
			patch: service.UpdateUserProfileData{Email: "jane.doe@example.com"},
			profileRepo: func(ctrl *gomock.Controller) *domainmock.UserProfileRepository {
				mock := domainmock.NewUserProfileRepository(ctrl)
				mock.EXPECT().FindByEmail(gomock.Any(), "john.doe@example.com").Return(currentProfile(), nil)
				mock.EXPECT().ExistsByEmail(gomock.Any(), "jane.doe@example.com").Return(false, nil)
				mock.EXPECT().Store(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, profile *domain.UserProfile) {
						assert.Equal(t, "jane.doe@example.com", profile.Email)
					}).
					Return(nil)
				return mock
			},
			expect: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:  "no_change_when_email_equals_current",
			patch: service.UpdateUserProfileData{Email: "john.doe@example.com"},
			profileRepo: func(ctrl *gomock.Controller) *domainmock.UserProfileRepository {
				mock := domainmock.NewUserProfileRepository(ctrl)
				mock.EXPECT().FindByEmail(gomock.Any(), "john.doe@example.com").Return(currentProfile(), nil)
				return mock
			},
			expect: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrNoFieldsUpdated)
			},
		},
		{
			name:  "no_change_when_password_matches_current",
			patch: service.UpdateUserProfileData{Password: "samePassword1"},
			profileRepo: func(ctrl *gomock.Controller) *domainmock.UserProfileRepository {
				mock := domainmock.NewUserProfileRepository(ctrl)
				mock.EXPECT().FindByEmail(gomock.Any(), "john.doe@example.com").Return(currentProfile(), nil)
				return mock
			},
			passwordHasher: func(ctrl *gomock.Controller) *encodingmock.PasswordHasher {
				mock := encodingmock.NewPasswordHasher(ctrl)
				mock.EXPECT().CompareHash("currentHash", "samePassword1").Return(true)
				return mock
			},
			expect: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrNoFieldsUpdated)
			},
		},
		{
			name:  "error_when_empty_patch",
			patch: service.UpdateUserProfileData{},
			profileRepo: func(ctrl *gomock.Controller) *domainmock.UserProfileRepository {
				mock := domainmock.NewUserProfileRepository(ctrl)
				mock.EXPECT().FindByEmail(gomock.Any(), "john.doe@example.com").Return(currentProfile(), nil)
				return mock
			},
			expect: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrNoFieldsUpdated)
			},
		},
		{
			name:  "error_when_profile_missing",
			patch: service.UpdateUserProfileData{FirstName: "Jane"},
			profileRepo: func(ctrl *gomock.Controller) *domainmock.UserProfileRepository {
				mock := domainmock.NewUserProfileRepository(ctrl)
				mock.EXPECT().FindByEmail(gomock.Any(), "john.doe@example.com").Return(nil, domain.ErrUserProfileNotFound)
				return mock
			},
			expect: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrUserProfileNotFound)
			},
		},
		{
			name:  "error_when_new_email_taken",
			patch: service.UpdateUserProfileData{Email: "jane.doe@example.com", FirstName: "Jane"},
			profileRepo: func(ctrl *gomock.Controller) *domainmock.UserProfileRepository {
				mock := domainmock.NewUserProfileRepository(ctrl)
				mock.EXPECT().FindByEmail(gomock.Any(), "john.doe@example.com").Return(currentProfile(), nil)
				mock.EXPECT().ExistsByEmail(gomock.Any(), "jane.doe@example.com").Return(true, nil)
				return mock
			},
			expect: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrEmailAlreadyExists)
			},
		},
		{
			name:  "aborts_before_store_when_field_invalid",
			patch: service.UpdateUserProfileData{Email: "jane.doe@example.com", FirstName: "Jane42"},
			profileRepo: func(ctrl *gomock.Controller) *domainmock.UserProfileRepository {
				mock := domainmock.NewUserProfileRepository(ctrl)
				mock.EXPECT().FindByEmail(gomock.Any(), "john.doe@example.com").Return(currentProfile(), nil)
				mock.EXPECT().ExistsByEmail(gomock.Any(), "jane.doe@example.com").Return(false, nil)
				return mock
			},
			expect: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrNameInvalid)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			passwordHasher := encodingmock.NewPasswordHasher(ctrl)
			if tc.passwordHasher != nil {
				passwordHasher = tc.passwordHasher(ctrl)
			}

			srv := newTestService(tc.profileRepo(ctrl), passwordHasher)
			err := srv.Update(context.Background(), "john.doe@example.com", tc.patch)
			tc.expect(t, err)
		})
	}
}

func TestUserProfileService_UpdateCredentials_Returns(t *testing.T) {
	currentProfile := func() *domain.UserProfile {
		return &domain.UserProfile{
			ID:           domain.UserProfileID{UUID: uuid.New()},
			Email:        "john.doe@example.com",
			PasswordHash: "currentHash",
		}
	}

	tests := []struct {
		name           string
		data           service.UpdateCredentialsData
		profileRepo    func(ctrl *gomock.Controller) *domainmock.UserProfileRepository
		passwordHasher func(ctrl *gomock.Controller) *encodingmock.PasswordHasher
		expect         func(t *testing.T, err error)
	}{
		{
			name: "success_when_password_changed",
			data: service.UpdateCredentialsData{
				Email:              "john.doe@example.com",
				Password:           "oldPassword1",
				NewPassword:        "newPass1",
				ConfirmNewPassword: "newPass1",
			},
			profileRepo: func(ctrl *gomock.Controller) *domainmock.UserProfileRepository {
				mock := domainmock.NewUserProfileRepository(ctrl)
				mock.EXPECT().FindByEmail(gomock.Any(), "john.doe@example.com").Return(currentProfile(), nil)
				mock.EXPECT().Store(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, profile *domain.UserProfile) {
						assert.Equal(t, "newHash", profile.PasswordHash)
					}).
					Return(nil)
				return mock
			},
			passwordHasher: func(ctrl *gomock.Controller) *encodingmock.PasswordHasher {
				mock := encodingmock.NewPasswordHasher(ctrl)
				mock.EXPECT().CompareHash("currentHash", "oldPassword1").Return(true)
				mock.EXPECT().Hash("newPass1").Return("newHash", nil)
				return mock
			},
			expect: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "error_when_current_password_incorrect",
			data: service.UpdateCredentialsData{
				Email:    "john.doe@example.com",
				Password: "wrongPassword",
			},
			profileRepo: func(ctrl *gomock.Controller) *domainmock.UserProfileRepository {
				mock := domainmock.NewUserProfileRepository(ctrl)
				mock.EXPECT().FindByEmail(gomock.Any(), "john.doe@example.com").Return(currentProfile(), nil)
				return mock
			},
			passwordHasher: func(ctrl *gomock.Controller) *encodingmock.PasswordHasher {
				mock := encodingmock.NewPasswordHasher(ctrl)
				mock.EXPECT().CompareHash("currentHash", "wrongPassword").Return(false)
				return mock
			},
			expect: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrIncorrectPassword)
			},
		},
		{
			name: "error_when_confirmation_mismatch",
			data: service.UpdateCredentialsData{
				Email:              "john.doe@example.com",
				Password:           "oldPassword1",
				NewPassword:        "newPass1",
				ConfirmNewPassword: "different1",
			},
			profileRepo: func(ctrl *gomock.Controller) *domainmock.UserProfileRepository {
				mock := domainmock.NewUserProfileRepository(ctrl)
				mock.EXPECT().FindByEmail(gomock.Any(), "john.doe@example.com").Return(currentProfile(), nil)
				return mock
			},
			passwordHasher: func(ctrl *gomock.Controller) *encodingmock.PasswordHasher {
				mock := encodingmock.NewPasswordHasher(ctrl)
				mock.EXPECT().CompareHash("currentHash", "oldPassword1").Return(true)
				return mock
			},
			expect: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrPasswordsDoNotMatch)
			},
		},
		{
			name: "error_when_new_password_outside_legacy_bounds",
			data: service.UpdateCredentialsData{
				Email:              "john.doe@example.com",
				Password:           "oldPassword1",
				NewPassword:        "aVeryLongPassword",
				ConfirmNewPassword: "aVeryLongPassword",
			},
			profileRepo: func(ctrl *gomock.Controller) *domainmock.UserProfileRepository {
				mock := domainmock.NewUserProfileRepository(ctrl)
				mock.EXPECT().FindByEmail(gomock.Any(), "john.doe@example.com").Return(currentProfile(), nil)
				return mock
			},
			passwordHasher: func(ctrl *gomock.Controller) *encodingmock.PasswordHasher {
				mock := encodingmock.NewPasswordHasher(ctrl)
				mock.EXPECT().CompareHash("currentHash", "oldPassword1").Return(true)
				return mock
			},
			expect: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrPasswordLength)
			},
		},
		{
			name: "error_when_nothing_changed",
			data: service.UpdateCredentialsData{
				Email:    "john.doe@example.com",
				Password: "oldPassword1",
				NewEmail: "john.doe@example.com",
			},
			profileRepo: func(ctrl *gomock.Controller) *domainmock.UserProfileRepository {
				mock := domainmock.NewUserProfileRepository(ctrl)
				mock.EXPECT().FindByEmail(gomock.Any(), "john.doe@example.com").Return(currentProfile(), nil)
				return mock
			},
			passwordHasher: func(ctrl *gomock.Controller) *encodingmock.PasswordHasher {
				mock := encodingmock.NewPasswordHasher(ctrl)
				mock.EXPECT().CompareHash("currentHash", "oldPassword1").Return(true)
				return mock
			},
			expect: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrNoFieldsUpdated)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			srv := newTestService(tc.profileRepo(ctrl), tc.passwordHasher(ctrl))
			err := srv.UpdateCredentials(context.Background(), tc.data)
			tc.expect(t, err)
		})
	}
}

func TestUserProfileService_Delete_Returns(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		profile := &domain.UserProfile{
			ID:    domain.UserProfileID{UUID: uuid.New()},
			Email: "john.doe@example.com",
		}

		profileRepo := domainmock.NewUserProfileRepository(ctrl)
		profileRepo.EXPECT().FindByEmail(gomock.Any(), "john.doe@example.com").Return(profile, nil)
		profileRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, deleted *domain.UserProfile) {
				require.Len(t, deleted.Changes, 1)
				assert.IsType(t, domain.EventUserProfileDeleted{}, deleted.Changes[0])
			}).
			Return(nil)

		srv := newTestService(profileRepo, encodingmock.NewPasswordHasher(ctrl))
		err := srv.Delete(context.Background(), "john.doe@example.com")
		assert.NoError(t, err)
	})

	t.Run("error_without_delete_call_when_profile_missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		profileRepo := domainmock.NewUserProfileRepository(ctrl)
		profileRepo.EXPECT().FindByEmail(gomock.Any(), "missing@example.com").Return(nil, domain.ErrUserProfileNotFound)

		srv := newTestService(profileRepo, encodingmock.NewPasswordHasher(ctrl))
		err := srv.Delete(context.Background(), "missing@example.com")
		assert.ErrorIs(t, err, service.ErrUserProfileNotFound)
	})
}

func TestUserProfileService_GetByEmail_Returns(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		profile := &domain.UserProfile{
			ID:           domain.UserProfileID{UUID: uuid.New()},
			Email:        "john.doe@example.com",
			PasswordHash: "currentHash",
			FirstName:    "John",
		}

		profileRepo := domainmock.NewUserProfileRepository(ctrl)
		profileRepo.EXPECT().FindByEmail(gomock.Any(), "john.doe@example.com").Return(profile, nil)

		srv := newTestService(profileRepo, encodingmock.NewPasswordHasher(ctrl))
		result, err := srv.GetByEmail(context.Background(), "john.doe@example.com")
		require.NoError(t, err)
		assert.Equal(t, profile.ID, result.ID)
		assert.Equal(t, "John", result.FirstName)
	})

	t.Run("error_when_profile_missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		profileRepo := domainmock.NewUserProfileRepository(ctrl)
		profileRepo.EXPECT().FindByEmail(gomock.Any(), "missing@example.com").Return(nil, domain.ErrUserProfileNotFound)

		srv := newTestService(profileRepo, encodingmock.NewPasswordHasher(ctrl))
		_, err := srv.GetByEmail(context.Background(), "missing@example.com")
		assert.ErrorIs(t, err, service.ErrUserProfileNotFound)
	})

	t.Run("error_passthrough_on_storage_failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		profileRepo := domainmock.NewUserProfileRepository(ctrl)
		profileRepo.EXPECT().FindByEmail(gomock.Any(), "john.doe@example.com").Return(nil, errors.New("unexpected"))

		srv := newTestService(profileRepo, encodingmock.NewPasswordHasher(ctrl))
		_, err := srv.GetByEmail(context.Background(), "john.doe@example.com")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, service.ErrUserProfileNotFound)
	})
}
