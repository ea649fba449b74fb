package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/MKhiriev/go-ask-box/internal/logger"
	"github.com/MKhiriev/go-ask-box/models"
)

// mongoUserRepository implements [UserRepository] on the "users" collection.
type mongoUserRepository struct {
	store  *MongoStore
	logger *logger.Logger
}

// NewMongoUserRepository constructs a [UserRepository] backed by s.
func NewMongoUserRepository(s *MongoStore, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating mongo user repository")
	return &mongoUserRepository{store: s, logger: logger}
}

func (r *mongoUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := insertOne(ctx, r.store.col(colUsers), user); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoUserRepository.CreateUser").Msg("error inserting user")
		return models.User{}, err
	}

	return user, nil
}

func (r *mongoUserRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return findOne[models.User](ctx, r.store.col(colUsers), bson.D{{Key: "_id", Value: id}}, ErrUserNotFound)
}

func (r *mongoUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return findOne[models.User](ctx, r.store.col(colUsers), bson.D{{Key: "username", Value: username}}, ErrUserNotFound)
}

func (r *mongoUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return findOne[models.User](ctx, r.store.col(colUsers), bson.D{{Key: "email", Value: email}}, ErrUserNotFound)
}

func (r *mongoUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	return findMany[models.User](ctx, r.store.col(colUsers), bson.D{}, newestFirst())
}

func (r *mongoUserRepository) UpdateUser(ctx context.Context, id string, patch models.UserPatch) (models.User, error) {
	update, err := userPatchDocument(patch)
	if err != nil {
		return models.User{}, err
	}

	return updateByID[models.User](ctx, r.store.col(colUsers), id, update, ErrUserNotFound)
}

// DeleteUser removes the user, then the questions it received, then detaches
// it from the questions it asked.
func (r *mongoUserRepository) DeleteUser(ctx context.Context, id string) (models.User, error) {
	log := logger.FromContext(ctx)

	deleted, err := deleteByID[models.User](ctx, r.store.col(colUsers), id, ErrUserNotFound)
	if err != nil {
		return models.User{}, err
	}

	questions := r.store.col(colQuestions)
	if _, err = questions.DeleteMany(ctx, bson.D{{Key: "to_user", Value: id}}); err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.DeleteUser").Str("id", id).Msg("error deleting received questions")
		return models.User{}, fmt.Errorf("delete received questions: %w", wrapMongoError(err, nil))
	}

	_, err = questions.UpdateMany(ctx,
		bson.D{{Key: "by_user", Value: id}},
		bson.D{{Key: "$unset", Value: bson.D{{Key: "by_user", Value: ""}}}},
	)
	if err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.DeleteUser").Str("id", id).Msg("error detaching asked questions")
		return models.User{}, fmt.Errorf("detach asked questions: %w", wrapMongoError(err, nil))
	}

	return deleted, nil
}

func userPatchDocument(patch models.UserPatch) (bson.D, error) {
	if patch.IsEmpty() {
		return nil, ErrNothingToUpdate
	}

	set, unset := bson.D{}, bson.D{}
	if patch.Username != nil {
		set = append(set, bson.E{Key: "username", Value: *patch.Username})
	}
	if patch.PasswordHash != nil {
		set = append(set, bson.E{Key: "password", Value: *patch.PasswordHash})
	}
	if patch.Email != nil {
		set = append(set, bson.E{Key: "email", Value: *patch.Email})
	}
	if patch.ProfileImgURL != nil {
		set = append(set, bson.E{Key: "profile_img_url", Value: *patch.ProfileImgURL})
	}
	if patch.Settings != nil {
		set = append(set, bson.E{Key: "settings", Value: *patch.Settings})
	}
	if patch.IsEmailConfirmed != nil {
		set = append(set, bson.E{Key: "is_email_confirmed", Value: *patch.IsEmailConfirmed})
	}
	if patch.EmailConfirmationToken != nil {
		if *patch.EmailConfirmationToken == "" {
			unset = append(unset, bson.E{Key: "email_confirmation_token", Value: ""})
		} else {
			set = append(set, bson.E{Key: "email_confirmation_token", Value: *patch.EmailConfirmationToken})
		}
	}
	if patch.BanStatus != nil {
		set = append(set, bson.E{Key: "ban_status", Value: *patch.BanStatus})
	}

	return setUnset(set, unset), nil
}
