package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/upservice/user-profile-service/internal/userprofile/domain"
	"github.com/upservice/user-profile-service/pkg/event"
	commonsql "github.com/upservice/user-profile-service/pkg/sql"
)

const userProfileTableName = "user_profile"

// uniqueViolationCode catches concurrent inserts that slip past the
// application-level uniqueness check and hit the unique email index.
const uniqueViolationCode = pq.ErrorCode("23505")

var userProfileColumns = []string{"id", "email", "password_hash", "first_name", "last_name", "created_at", "updated_at"}

type userProfileRepository struct {
	db         commonsql.Client
	dispatcher event.Dispatcher
}

func NewUserProfileRepository(db commonsql.Client, dispatcher event.Dispatcher) domain.UserProfileRepository {
	return &userProfileRepository{
		db:         db,
		dispatcher: dispatcher,
	}
}

func (r *userProfileRepository) NextID() domain.UserProfileID {
	return domain.UserProfileID{UUID: uuid.New()}
}

func (r *userProfileRepository) Store(ctx context.Context, profile *domain.UserProfile) error {
	now := time.Now()
	query, args, err := sq.
		Insert(userProfileTableName).
		Columns(userProfileColumns...).
		Values(profile.ID.UUID, profile.Email, profile.PasswordHash, profile.FirstName, profile.LastName, now, now).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			email = excluded.email,
			password_hash = excluded.password_hash,
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			updated_at = excluded.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build user profile upsert query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
		return domain.ErrEmailAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("store user profile: %w", err)
	}

	return r.dispatchChanges(ctx, profile)
}

func (r *userProfileRepository) FindByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	builder := sq.
		Select(userProfileColumns...).
		From(userProfileTableName).
		Where(sq.Eq{"email": email})
	if commonsql.IsLockRequested(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user profile select query: %w", err)
	}

	var row sqlxUserProfile
	err = r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user profile by email: %w", err)
	}
	return row.toDomain(), nil
}

func (r *userProfileRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query, args, err := sq.
		Select("1").
		From(userProfileTableName).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build user profile exists query: %w", err)
	}

	var stub int
	err = r.db.GetContext(ctx, &stub, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check user profile existence: %w", err)
	}
	return true, nil
}

func (r *userProfileRepository) FindAll(ctx context.Context) ([]domain.UserProfile, error) {
	query, args, err := sq.
		Select(userProfileColumns...).
		From(userProfileTableName).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user profile list query: %w", err)
	}

	var rows []sqlxUserProfile
	err = r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list user profiles: %w", err)
	}

	profiles := make([]domain.UserProfile, 0, len(rows))
	for _, row := range rows {
		profiles = append(profiles, *row.toDomain())
	}
	return profiles, nil
}

func (r *userProfileRepository) Delete(ctx context.Context, profile *domain.UserProfile) error {
	query, args, err := sq.
		Delete(userProfileTableName).
		Where(sq.Eq{"id": profile.ID.UUID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build user profile delete query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete user profile: %w", err)
	}

	return r.dispatchChanges(ctx, profile)
}

func (r *userProfileRepository) dispatchChanges(ctx context.Context, profile *domain.UserProfile) error {
	if len(profile.Changes) == 0 {
		return nil
	}
	err := r.dispatcher.Dispatch(ctx, profile.Changes...)
	if err != nil {
		return fmt.Errorf("dispatch user profile events: %w", err)
	}
	profile.Changes = nil
	return nil
}

type sqlxUserProfile struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r sqlxUserProfile) toDomain() *domain.UserProfile {
	return &domain.UserProfile{
		ID:           domain.UserProfileID{UUID: r.ID},
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
	}
}
