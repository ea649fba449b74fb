package store

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/MKhiriev/go-ask-box/internal/logger"
	"github.com/MKhiriev/go-ask-box/models"
)

// mongoQuestionRepository implements [QuestionRepository] on the
// "questions" collection.
type mongoQuestionRepository struct {
	store  *MongoStore
	logger *logger.Logger
}

// NewMongoQuestionRepository constructs a [QuestionRepository] backed by s.
func NewMongoQuestionRepository(s *MongoStore, logger *logger.Logger) QuestionRepository {
	logger.Debug().Msg("creating mongo question repository")
	return &mongoQuestionRepository{store: s, logger: logger}
}

// CreateQuestion inserts question after checking the receiver still exists,
// mirroring the foreign key of the SQL stores.
func (r *mongoQuestionRepository) CreateQuestion(ctx context.Context, question models.Question) (models.Question, error) {
	if _, err := findOne[models.User](ctx, r.store.col(colUsers), bson.D{{Key: "_id", Value: question.ToUser}}, ErrReferenceNotFound); err != nil {
		return models.Question{}, err
	}

	if err := insertOne(ctx, r.store.col(colQuestions), question); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoQuestionRepository.CreateQuestion").Msg("error inserting question")
		return models.Question{}, err
	}

	return question, nil
}

func (r *mongoQuestionRepository) FindQuestionByID(ctx context.Context, id string) (models.Question, error) {
	return findOne[models.Question](ctx, r.store.col(colQuestions), bson.D{{Key: "_id", Value: id}}, ErrQuestionNotFound)
}

func (r *mongoQuestionRepository) ListQuestions(ctx context.Context, filter models.QuestionFilter) ([]models.Question, error) {
	return findMany[models.Question](ctx, r.store.col(colQuestions), questionFilterDocument(filter), newestFirst())
}

func (r *mongoQuestionRepository) UpdateQuestion(ctx context.Context, id string, update models.QuestionUpdate) (models.Question, error) {
	doc, err := questionUpdateDocument(update)
	if err != nil {
		return models.Question{}, err
	}

	return updateByID[models.Question](ctx, r.store.col(colQuestions), id, doc, ErrQuestionNotFound)
}

func (r *mongoQuestionRepository) DeleteQuestion(ctx context.Context, id string) (models.Question, error) {
	return deleteByID[models.Question](ctx, r.store.col(colQuestions), id, ErrQuestionNotFound)
}

func questionFilterDocument(filter models.QuestionFilter) bson.D {
	doc := bson.D{}
	if filter.ToUser != "" {
		doc = append(doc, bson.E{Key: "to_user", Value: filter.ToUser})
	}
	if filter.ByUser != "" {
		doc = append(doc, bson.E{Key: "by_user", Value: filter.ByUser})
	}
	if filter.DisplayableOnly {
		doc = append(doc, bson.E{Key: "is_displayable", Value: true})
	}

	return doc
}

func questionUpdateDocument(update models.QuestionUpdate) (bson.D, error) {
	if update.IsEmpty() {
		return nil, ErrNothingToUpdate
	}

	set := bson.D{}
	if update.Answer != nil {
		set = append(set, bson.E{Key: "answer", Value: *update.Answer})
	}
	if update.IsDisplayable != nil {
		set = append(set, bson.E{Key: "is_displayable", Value: *update.IsDisplayable})
	}
	if update.IsCommentable != nil {
		set = append(set, bson.E{Key: "is_commentable", Value: *update.IsCommentable})
	}

	return setUnset(set, nil), nil
}
