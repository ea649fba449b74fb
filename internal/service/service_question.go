package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-ask-box/internal/logger"
	"github.com/MKhiriev/go-ask-box/internal/store"
	"github.com/MKhiriev/go-ask-box/internal/utils"
	"github.com/MKhiriev/go-ask-box/internal/validators"
	"github.com/MKhiriev/go-ask-box/models"
)

// idGenerator produces record identifiers.
type idGenerator interface {
	Generate() string
}

// questionService manages the life of a question: asking, answering,
// publishing and removal.
type questionService struct {
	questionRepository store.QuestionRepository
	userRepository     store.UserRepository

	// cache holds the public listing of each profile. Cache failures are
	// logged and never fail a request.
	cache store.QuestionCache

	permissions PermissionService
	visibility  VisibilityService
	validator   validators.Validator
	ids         idGenerator

	logger *logger.Logger
}

func NewQuestionService(
	questionRepository store.QuestionRepository,
	userRepository store.UserRepository,
	cache store.QuestionCache,
	permissions PermissionService,
	visibility VisibilityService,
	logger *logger.Logger,
) QuestionService {
	return &questionService{
		questionRepository: questionRepository,
		userRepository:     userRepository,
		cache:              cache,
		permissions:        permissions,
		visibility:         visibility,
		validator:          validators.NewRequestValidator(),
		ids:                utils.NewUUIDGenerator(),
		logger:             logger,
	}
}

// Ask stores a question addressed to req.ToUser. The new question is hidden
// until the receiver publishes it. Guests always ask anonymously.
func (s *questionService) Ask(ctx context.Context, principal models.Principal, req models.AskRequest) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return validationError(err)
	}
	if !utils.IsValidID(req.ToUser) {
		return ErrInvalidID
	}

	receiver, err := s.userRepository.FindUserByID(ctx, req.ToUser)
	if errors.Is(err, store.ErrUserNotFound) {
		return ErrInvalidTarget
	}
	if err != nil {
		log.Err(err).Str("to_user", req.ToUser).Msg("receiver lookup failed")
		return mapStoreError(err)
	}

	if principal.IsUser() && principal.ID == receiver.ID {
		return ErrUnauthorized
	}
	if !receiver.CanBeAsked() {
		return ErrUnauthorized
	}

	question := models.Question{
		ID:         s.ids.Generate(),
		Text:       req.Text,
		ToUser:     receiver.ID,
		IsAnonym:   req.IsAnonym,
		CreateDate: time.Now().UTC(),
	}
	if principal.IsUser() {
		question.ByUser = principal.ID
	} else {
		question.IsAnonym = true
	}

	if _, err = s.questionRepository.CreateQuestion(ctx, question); err != nil {
		log.Err(err).Str("to_user", receiver.ID).Msg("question creation ended with error")
		return mapStoreError(err)
	}

	return nil
}

func (s *questionService) Get(ctx context.Context, principal models.Principal, id string) (models.QuestionView, error) {
	if !utils.IsValidID(id) {
		return models.QuestionView{}, ErrInvalidID
	}

	question, err := s.questionRepository.FindQuestionByID(ctx, id)
	if err != nil {
		return models.QuestionView{}, mapStoreError(err)
	}

	return s.visibility.ProjectQuestion(question, principal)
}

// ListByUsername returns the published questions of a profile, newest first.
func (s *questionService) ListByUsername(ctx context.Context, username string) ([]models.QuestionView, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, mapStoreError(err)
	}

	views, err := s.cache.GetProfileQuestions(ctx, user.ID)
	if err == nil {
		return views, nil
	}
	if !errors.Is(err, store.ErrCacheMiss) {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("profile questions cache read failed")
	}

	questions, err := s.questionRepository.ListQuestions(ctx, models.QuestionFilter{ToUser: user.ID, DisplayableOnly: true})
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("listing profile questions failed")
		return nil, mapStoreError(err)
	}

	views = redactAll(s.visibility, questions)
	if err = s.cache.SetProfileQuestions(ctx, user.ID, views); err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("profile questions cache write failed")
	}

	return views, nil
}

// ListForUser returns everything userID received and asked. Open to the user
// itself and to admins managing users.
func (s *questionService) ListForUser(ctx context.Context, principal models.Principal, userID string) (models.UserQuestions, error) {
	if !utils.IsValidID(userID) {
		return models.UserQuestions{}, ErrInvalidID
	}
	if err := s.permissions.Evaluate(ctx, principal, models.OpListUserQuestions, models.Resource{OwnerID: userID}); err != nil {
		return models.UserQuestions{}, err
	}
	if principal.IsAdmin() {
		if _, err := s.userRepository.FindUserByID(ctx, userID); err != nil {
			return models.UserQuestions{}, mapStoreError(err)
		}
	}

	received, err := s.questionRepository.ListQuestions(ctx, models.QuestionFilter{ToUser: userID})
	if err != nil {
		return models.UserQuestions{}, mapStoreError(err)
	}
	asked, err := s.questionRepository.ListQuestions(ctx, models.QuestionFilter{ByUser: userID})
	if err != nil {
		return models.UserQuestions{}, mapStoreError(err)
	}

	return models.UserQuestions{
		Received: redactAll(s.visibility, received),
		Asked:    redactAll(s.visibility, asked),
	}, nil
}

// Update lets the receiver answer and publish a question.
func (s *questionService) Update(ctx context.Context, principal models.Principal, id string, update models.QuestionUpdate) (models.QuestionView, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(id) {
		return models.QuestionView{}, ErrInvalidID
	}
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.QuestionView{}, validationError(err)
	}

	question, err := s.questionRepository.FindQuestionByID(ctx, id)
	if err != nil {
		return models.QuestionView{}, mapStoreError(err)
	}

	target := models.Resource{ReceiverID: question.ToUser, AskerID: question.ByUser}
	if err = s.permissions.Evaluate(ctx, principal, models.OpUpdateQuestion, target); err != nil {
		return models.QuestionView{}, err
	}

	updated, err := s.questionRepository.UpdateQuestion(ctx, id, update)
	if err != nil {
		log.Err(err).Str("question_id", id).Msg("question update ended with error")
		return models.QuestionView{}, mapStoreError(err)
	}

	s.invalidate(ctx, updated.ToUser)

	return s.visibility.RedactQuestion(updated), nil
}

// Delete removes a question. Open to its receiver, its asker and admins
// managing posts.
func (s *questionService) Delete(ctx context.Context, principal models.Principal, id string) (models.QuestionView, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(id) {
		return models.QuestionView{}, ErrInvalidID
	}

	question, err := s.questionRepository.FindQuestionByID(ctx, id)
	if err != nil {
		return models.QuestionView{}, mapStoreError(err)
	}

	target := models.Resource{ReceiverID: question.ToUser, AskerID: question.ByUser}
	if err = s.permissions.Evaluate(ctx, principal, models.OpDeleteQuestion, target); err != nil {
		return models.QuestionView{}, err
	}

	deleted, err := s.questionRepository.DeleteQuestion(ctx, id)
	if err != nil {
		log.Err(err).Str("question_id", id).Msg("question deletion ended with error")
		return models.QuestionView{}, mapStoreError(err)
	}

	if deleted.IsDisplayable {
		s.invalidate(ctx, deleted.ToUser)
	}

	return s.visibility.RedactQuestion(deleted), nil
}

func (s *questionService) invalidate(ctx context.Context, userID string) {
	if err := s.cache.InvalidateProfileQuestions(ctx, userID); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("user_id", userID).Msg("profile questions cache invalidation failed")
	}
}
