package store

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-ask-box/internal/logger"
	"github.com/MKhiriev/go-ask-box/models"
)

// adminRepository is the SQL implementation of [AdminRepository] over the
// "admins" table.
type adminRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAdminRepository constructs an [AdminRepository] backed by db.
func NewAdminRepository(db *DB, logger *logger.Logger) AdminRepository {
	logger.Debug().Msg("creating admin repository")
	return &adminRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAdmin inserts admin and returns the stored record.
//
// Error handling:
//   - unique violation on username → [ErrUsernameAlreadyExists].
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *adminRepository) CreateAdmin(ctx context.Context, admin models.Admin) (models.Admin, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAdminQuery(r.db.builder(), admin)
	if err != nil {
		return models.Admin{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanAdmin(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*adminRepository.CreateAdmin").Msg("error inserting admin")
		return models.Admin{}, r.db.mapWriteError(err)
	}

	return created, nil
}

func (r *adminRepository) FindAdminByID(ctx context.Context, id string) (models.Admin, error) {
	return r.findOne(ctx, sq.Eq{"id": id})
}

func (r *adminRepository) FindAdminByUsername(ctx context.Context, username string) (models.Admin, error) {
	return r.findOne(ctx, sq.Eq{"username": username})
}

func (r *adminRepository) findOne(ctx context.Context, where sq.Sqlizer) (models.Admin, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAdminsQuery(r.db.builder(), where)
	if err != nil {
		return models.Admin{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	admin, err := scanAdmin(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		mapped := mapReadError(err, ErrAdminNotFound)
		if !errors.Is(mapped, ErrAdminNotFound) {
			log.Err(err).Str("func", "*adminRepository.findOne").Msg("error finding admin")
		}
		return models.Admin{}, mapped
	}

	return admin, nil
}

// ListAdmins returns every admin, oldest first.
func (r *adminRepository) ListAdmins(ctx context.Context) ([]models.Admin, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAdminsQuery(r.db.builder(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*adminRepository.ListAdmins").Msg("error listing admins")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	admins := make([]models.Admin, 0)
	for rows.Next() {
		admin, err := scanAdmin(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		admins = append(admins, admin)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return admins, nil
}

func (r *adminRepository) CountAdmins(ctx context.Context) (int64, error) {
	query, args, err := buildCountAdminsQuery(r.db.builder())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func (r *adminRepository) UpdateAdmin(ctx context.Context, id string, patch models.AdminPatch) (models.Admin, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateAdminQuery(r.db.builder(), id, patch)
	if err != nil {
		return models.Admin{}, err
	}

	updated, err := scanAdmin(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if mapped := mapReadError(err, ErrAdminNotFound); errors.Is(mapped, ErrAdminNotFound) {
			return models.Admin{}, mapped
		}
		log.Err(err).Str("func", "*adminRepository.UpdateAdmin").Str("id", id).Msg("error updating admin")
		return models.Admin{}, r.db.mapWriteError(err)
	}

	return updated, nil
}

func (r *adminRepository) DeleteAdmin(ctx context.Context, id string) (models.Admin, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAdminQuery(r.db.builder(), id)
	if err != nil {
		return models.Admin{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	deleted, err := scanAdmin(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		mapped := mapReadError(err, ErrAdminNotFound)
		if !errors.Is(mapped, ErrAdminNotFound) {
			log.Err(err).Str("func", "*adminRepository.DeleteAdmin").Str("id", id).Msg("error deleting admin")
		}
		return models.Admin{}, mapped
	}

	return deleted, nil
}
