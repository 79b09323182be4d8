//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "UserProfile=UserProfile"
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/upservice/user-profile-service/internal/userprofile/app/encoding"
	"github.com/upservice/user-profile-service/internal/userprofile/domain"
	"github.com/upservice/user-profile-service/pkg/persistence"
)

const updateUserProfilesLockName = "update_user_profiles"

type UserProfileData struct {
	ID        domain.UserProfileID
	Email     string
	FirstName string
	LastName  string
}

type CreateUserProfileData struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// UpdateUserProfileData is a partial patch, an empty field means "leave as is".
type UpdateUserProfileData struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type UpdateCredentialsData struct {
	Email              string
	Password           string
	NewEmail           string
	NewPassword        string
	ConfirmNewPassword string
}

type UserProfile interface {
	Create(ctx context.Context, data CreateUserProfileData) (domain.UserProfileID, error)
	GetByEmail(ctx context.Context, email string) (UserProfileData, error)
	List(ctx context.Context) ([]UserProfileData, error)
	Update(ctx context.Context, email string, patch UpdateUserProfileData) error
	UpdateCredentials(ctx context.Context, data UpdateCredentialsData) error
	Delete(ctx context.Context, email string) error
}

type userProfileService struct {
	profileRepo    domain.UserProfileRepository
	passwordHasher encoding.PasswordHasher
	validator      Validator
	transaction    persistence.Transaction
}

func NewUserProfileService(
	profileRepo domain.UserProfileRepository,
	passwordHasher encoding.PasswordHasher,
	validator Validator,
	transaction persistence.Transaction,
) UserProfile {
	return &userProfileService{
		profileRepo:    profileRepo,
		passwordHasher: passwordHasher,
		validator:      validator,
		transaction:    transaction,
	}
}

func (s *userProfileService) Create(ctx context.Context, data CreateUserProfileData) (domain.UserProfileID, error) {
	if err := s.validator.ValidateEmail(data.Email); err != nil {
		return domain.UserProfileID{}, err
	}
	if err := s.validator.ValidatePassword(data.Password); err != nil {
		return domain.UserProfileID{}, err
	}
	if data.FirstName != "" {
		if err := s.validator.ValidateFirstName(data.FirstName); err != nil {
			return domain.UserProfileID{}, err
		}
	}
	if data.LastName != "" {
		if err := s.validator.ValidateLastName(data.LastName); err != nil {
			return domain.UserProfileID{}, err
		}
	}

	profileID, err := persistence.WithinTransactionWithResult(ctx, s.transaction,
		func(ctx context.Context) (domain.UserProfileID, error) {
			exists, err := s.profileRepo.ExistsByEmail(ctx, data.Email)
			if err != nil {
				return domain.UserProfileID{}, fmt.Errorf("check email uniqueness: %w", err)
			}
			if exists {
				return domain.UserProfileID{}, newFieldError("email", ErrEmailAlreadyExists)
			}

			passwordHash, err := s.passwordHasher.Hash(data.Password)
			if err != nil {
				return domain.UserProfileID{}, fmt.Errorf("hash password: %w", err)
			}

			profile := domain.NewUserProfile(
				s.profileRepo.NextID(),
				data.Email,
				passwordHash,
				data.FirstName,
				data.LastName,
			)
			if err = s.profileRepo.Store(ctx, profile); err != nil {
				return domain.UserProfileID{}, fmt.Errorf("store user profile: %w", err)
			}

			return profile.ID, nil
		}, updateUserProfilesLockName)
	if err != nil {
		return domain.UserProfileID{}, s.translateDomainError(err)
	}
	return profileID, nil
}

func (s *userProfileService) GetByEmail(ctx context.Context, email string) (UserProfileData, error) {
	profile, err := s.profileRepo.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserProfileNotFound) {
		return UserProfileData{}, ErrUserProfileNotFound
	}
	if err != nil {
		return UserProfileData{}, fmt.Errorf("find user profile: %w", err)
	}
	return toUserProfileData(profile), nil
}

func (s *userProfileService) List(ctx context.Context) ([]UserProfileData, error) {
	profiles, err := s.profileRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list user profiles: %w", err)
	}
	result := make([]UserProfileData, 0, len(profiles))
	for i := range profiles {
		result = append(result, toUserProfileData(&profiles[i]))
	}
	return result, nil
}

func (s *userProfileService) Update(ctx context.Context, email string, patch UpdateUserProfileData) error {
	err := s.transaction.WithinContext(ctx, func(ctx context.Context) error {
		profile, err := s.profileRepo.FindByEmail(s.transaction.WithLock(ctx), email)
		if errors.Is(err, domain.ErrUserProfileNotFound) {
			return ErrUserProfileNotFound
		}
		if err != nil {
			return fmt.Errorf("find user profile: %w", err)
		}

		var changedFields []string
		if patch.Email != "" && patch.Email != profile.Email {
			if err = s.validator.ValidateEmail(patch.Email); err != nil {
				return err
			}
			exists, err := s.profileRepo.ExistsByEmail(ctx, patch.Email)
			if err != nil {
				return fmt.Errorf("check email uniqueness: %w", err)
			}
			if exists {
				return newFieldError("email", ErrEmailAlreadyExists)
			}
			profile.Email = patch.Email
			changedFields = append(changedFields, "email")
		}
		if patch.Password != "" && !s.passwordHasher.CompareHash(profile.PasswordHash, patch.Password) {
			if err = s.validator.ValidatePassword(patch.Password); err != nil {
				return err
			}
			passwordHash, err := s.passwordHasher.Hash(patch.Password)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
			profile.PasswordHash = passwordHash
			changedFields = append(changedFields, "password")
		}
		if patch.FirstName != "" && patch.FirstName != profile.FirstName {
			if err = s.validator.ValidateFirstName(patch.FirstName); err != nil {
				return err
			}
			profile.FirstName = patch.FirstName
			changedFields = append(changedFields, "firstName")
		}
		if patch.LastName != "" && patch.LastName != profile.LastName {
			if err = s.validator.ValidateLastName(patch.LastName); err != nil {
				return err
			}
			profile.LastName = patch.LastName
			changedFields = append(changedFields, "lastName")
		}

		if len(changedFields) == 0 {
			return ErrNoFieldsUpdated
		}

		profile.MarkUpdated(changedFields...)
		if err = s.profileRepo.Store(ctx, profile); err != nil {
			return fmt.Errorf("store user profile: %w", err)
		}
		return nil
	}, updateUserProfilesLockName)
	return s.translateDomainError(err)
}

func (s *userProfileService) UpdateCredentials(ctx context.Context, data UpdateCredentialsData) error {
	err := s.transaction.WithinContext(ctx, func(ctx context.Context) error {
		profile, err := s.profileRepo.FindByEmail(s.transaction.WithLock(ctx), data.Email)
		if errors.Is(err, domain.ErrUserProfileNotFound) {
			return ErrUserProfileNotFound
		}
		if err != nil {
			return fmt.Errorf("find user profile: %w", err)
		}
		if !s.passwordHasher.CompareHash(profile.PasswordHash, data.Password) {
			return ErrIncorrectPassword
		}

		var changed bool
		if data.NewEmail != "" && data.NewEmail != profile.Email {
			if err = s.validator.ValidateEmail(data.NewEmail); err != nil {
				return err
			}
			exists, err := s.profileRepo.ExistsByEmail(ctx, data.NewEmail)
			if err != nil {
				return fmt.Errorf("check email uniqueness: %w", err)
			}
			if exists {
				return newFieldError("email", ErrEmailAlreadyExists)
			}
			profile.Email = data.NewEmail
			changed = true
		}
		if data.NewPassword != "" {
			if data.NewPassword != data.ConfirmNewPassword {
				return ErrPasswordsDoNotMatch
			}
			if err = s.validator.ValidateCredentialsPassword(data.NewPassword); err != nil {
				return err
			}
			passwordHash, err := s.passwordHasher.Hash(data.NewPassword)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
			profile.PasswordHash = passwordHash
			changed = true
		}

		if !changed {
			return ErrNoFieldsUpdated
		}

		profile.MarkUpdated("credentials")
		if err = s.profileRepo.Store(ctx, profile); err != nil {
			return fmt.Errorf("store user profile: %w", err)
		}
		return nil
	}, updateUserProfilesLockName)
	return s.translateDomainError(err)
}

func (s *userProfileService) Delete(ctx context.Context, email string) error {
	err := s.transaction.WithinContext(ctx, func(ctx context.Context) error {
		profile, err := s.profileRepo.FindByEmail(s.transaction.WithLock(ctx), email)
		if errors.Is(err, domain.ErrUserProfileNotFound) {
			return ErrUserProfileNotFound
		}
		if err != nil {
			return fmt.Errorf("find user profile: %w", err)
		}

		profile.MarkDeleted()
		if err = s.profileRepo.Delete(ctx, profile); err != nil {
			return fmt.Errorf("delete user profile: %w", err)
		}
		return nil
	}, updateUserProfilesLockName)
	return s.translateDomainError(err)
}

// translateDomainError maps errors surfacing from the storage layer onto the
// service sentinels, concurrent inserts hit the unique index and come back
// as domain.ErrEmailAlreadyExists.
func (s *userProfileService) translateDomainError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return newFieldError("email", ErrEmailAlreadyExists)
	case errors.Is(err, domain.ErrUserProfileNotFound):
		return ErrUserProfileNotFound
	default:
		return err
	}
}

func toUserProfileData(profile *domain.UserProfile) UserProfileData {
	return UserProfileData{
		ID:        profile.ID,
		Email:     profile.Email,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
	}
}
