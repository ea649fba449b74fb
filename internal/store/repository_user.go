package store

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-ask-box/internal/logger"
	"github.com/MKhiriev/go-ask-box/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table. Received questions are removed by the ON DELETE CASCADE
// constraint of the questions table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts user and returns the stored record.
//
// Error handling:
//   - unique violation on username → [ErrUsernameAlreadyExists].
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.db.builder(), user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, r.db.mapWriteError(err)
	}

	return created, nil
}

func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findOne(ctx, sq.Eq{"id": id})
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, sq.Eq{"username": username})
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, sq.Eq{"email": email})
}

func (r *userRepository) findOne(ctx context.Context, where sq.Sqlizer) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUsersQuery(r.db.builder(), where)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		mapped := mapReadError(err, ErrUserNotFound)
		if !errors.Is(mapped, ErrUserNotFound) {
			log.Err(err).Str("func", "*userRepository.findOne").Msg("error finding user")
		}
		return models.User{}, mapped
	}

	return user, nil
}

// ListUsers returns every user, newest first.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUsersQuery(r.db.builder(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error listing users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, id string, patch models.UserPatch) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(r.db.builder(), id, patch)
	if err != nil {
		return models.User{}, err
	}

	updated, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if mapped := mapReadError(err, ErrUserNotFound); errors.Is(mapped, ErrUserNotFound) {
			return models.User{}, mapped
		}
		log.Err(err).Str("func", "*userRepository.UpdateUser").Str("id", id).Msg("error updating user")
		return models.User{}, r.db.mapWriteError(err)
	}

	return updated, nil
}

func (r *userRepository) DeleteUser(ctx context.Context, id string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteUserQuery(r.db.builder(), id)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	deleted, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		mapped := mapReadError(err, ErrUserNotFound)
		if !errors.Is(mapped, ErrUserNotFound) {
			log.Err(err).Str("func", "*userRepository.DeleteUser").Str("id", id).Msg("error deleting user")
		}
		return models.User{}, mapped
	}

	return deleted, nil
}
