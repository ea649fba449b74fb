package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ask-box/internal/logger"
	"github.com/MKhiriev/go-ask-box/models"
)

// questionRepository is the SQL implementation of [QuestionRepository] over
// the "questions" table.
type questionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewQuestionRepository constructs a [QuestionRepository] backed by db.
func NewQuestionRepository(db *DB, logger *logger.Logger) QuestionRepository {
	logger.Debug().Msg("creating question repository")
	return &questionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateQuestion inserts question. A receiver or asker that no longer exists
// yields [ErrReferenceNotFound].
func (r *questionRepository) CreateQuestion(ctx context.Context, question models.Question) (models.Question, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertQuestionQuery(r.db.builder(), question)
	if err != nil {
		return models.Question{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanQuestion(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*questionRepository.CreateQuestion").Str("to_user", question.ToUser).Msg("error inserting question")
		return models.Question{}, r.db.mapWriteError(err)
	}

	return created, nil
}

func (r *questionRepository) FindQuestionByID(ctx context.Context, id string) (models.Question, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectQuestionByIDQuery(r.db.builder(), id)
	if err != nil {
		return models.Question{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	question, err := scanQuestion(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		mapped := mapReadError(err, ErrQuestionNotFound)
		if !errors.Is(mapped, ErrQuestionNotFound) {
			log.Err(err).Str("func", "*questionRepository.FindQuestionByID").Str("id", id).Msg("error finding question")
		}
		return models.Question{}, mapped
	}

	return question, nil
}

func (r *questionRepository) ListQuestions(ctx context.Context, filter models.QuestionFilter) ([]models.Question, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListQuestionsQuery(r.db.builder(), filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*questionRepository.ListQuestions").Msg("error listing questions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	questions := make([]models.Question, 0)
	for rows.Next() {
		question, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		questions = append(questions, question)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return questions, nil
}

func (r *questionRepository) UpdateQuestion(ctx context.Context, id string, update models.QuestionUpdate) (models.Question, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateQuestionQuery(r.db.builder(), id, update)
	if err != nil {
		return models.Question{}, err
	}

	updated, err := scanQuestion(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		mapped := mapReadError(err, ErrQuestionNotFound)
		if !errors.Is(mapped, ErrQuestionNotFound) {
			log.Err(err).Str("func", "*questionRepository.UpdateQuestion").Str("id", id).Msg("error updating question")
		}
		return models.Question{}, mapped
	}

	return updated, nil
}

func (r *questionRepository) DeleteQuestion(ctx context.Context, id string) (models.Question, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteQuestionQuery(r.db.builder(), id)
	if err != nil {
		return models.Question{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	deleted, err := scanQuestion(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		mapped := mapReadError(err, ErrQuestionNotFound)
		if !errors.Is(mapped, ErrQuestionNotFound) {
			log.Err(err).Str("func", "*questionRepository.DeleteQuestion").Str("id", id).Msg("error deleting question")
		}
		return models.Question{}, mapped
	}

	return deleted, nil
}
