package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/MKhiriev/go-ask-box/internal/logger"
	"github.com/MKhiriev/go-ask-box/models"
)

// mongoAdminRepository implements [AdminRepository] on the "admins"
// collection.
type mongoAdminRepository struct {
	store  *MongoStore
	logger *logger.Logger
}

// NewMongoAdminRepository constructs an [AdminRepository] backed by s.
func NewMongoAdminRepository(s *MongoStore, logger *logger.Logger) AdminRepository {
	logger.Debug().Msg("creating mongo admin repository")
	return &mongoAdminRepository{store: s, logger: logger}
}

func (r *mongoAdminRepository) CreateAdmin(ctx context.Context, admin models.Admin) (models.Admin, error) {
	if err := insertOne(ctx, r.store.col(colAdmins), admin); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoAdminRepository.CreateAdmin").Msg("error inserting admin")
		return models.Admin{}, err
	}

	return admin, nil
}

func (r *mongoAdminRepository) FindAdminByID(ctx context.Context, id string) (models.Admin, error) {
	return findOne[models.Admin](ctx, r.store.col(colAdmins), bson.D{{Key: "_id", Value: id}}, ErrAdminNotFound)
}

func (r *mongoAdminRepository) FindAdminByUsername(ctx context.Context, username string) (models.Admin, error) {
	return findOne[models.Admin](ctx, r.store.col(colAdmins), bson.D{{Key: "username", Value: username}}, ErrAdminNotFound)
}

func (r *mongoAdminRepository) ListAdmins(ctx context.Context) ([]models.Admin, error) {
	opts := options.Find().SetSort(bson.D{{Key: "create_date", Value: 1}})
	return findMany[models.Admin](ctx, r.store.col(colAdmins), bson.D{}, opts)
}

func (r *mongoAdminRepository) CountAdmins(ctx context.Context) (int64, error) {
	count, err := r.store.col(colAdmins).CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, wrapMongoError(err, nil)
	}

	return count, nil
}

func (r *mongoAdminRepository) UpdateAdmin(ctx context.Context, id string, patch models.AdminPatch) (models.Admin, error) {
	update, err := adminPatchDocument(patch)
	if err != nil {
		return models.Admin{}, err
	}

	return updateByID[models.Admin](ctx, r.store.col(colAdmins), id, update, ErrAdminNotFound)
}

func (r *mongoAdminRepository) DeleteAdmin(ctx context.Context, id string) (models.Admin, error) {
	return deleteByID[models.Admin](ctx, r.store.col(colAdmins), id, ErrAdminNotFound)
}

func adminPatchDocument(patch models.AdminPatch) (bson.D, error) {
	set, unset := bson.D{}, bson.D{}
	if patch.Username != nil {
		set = append(set, bson.E{Key: "username", Value: *patch.Username})
	}
	if patch.PasswordHash != nil {
		set = append(set, bson.E{Key: "password", Value: *patch.PasswordHash})
	}
	if patch.Email != nil {
		if *patch.Email == "" {
			unset = append(unset, bson.E{Key: "email", Value: ""})
		} else {
			set = append(set, bson.E{Key: "email", Value: *patch.Email})
		}
	}
	if patch.Permissions != nil {
		set = append(set, bson.E{Key: "permissions", Value: *patch.Permissions})
	}
	if len(set) == 0 && len(unset) == 0 {
		return nil, ErrNothingToUpdate
	}

	updateDate := patch.UpdateDate
	if updateDate.IsZero() {
		updateDate = time.Now()
	}
	set = append(set, bson.E{Key: "update_date", Value: updateDate.UTC()})

	return setUnset(set, unset), nil
}
