package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-ask-box/internal/adapter"
	"github.com/MKhiriev/go-ask-box/internal/config"
	"github.com/MKhiriev/go-ask-box/internal/logger"
	"github.com/MKhiriev/go-ask-box/internal/store"
	"github.com/MKhiriev/go-ask-box/internal/utils"
	"github.com/MKhiriev/go-ask-box/internal/validators"
	"github.com/MKhiriev/go-ask-box/models"
)

// userService manages regular accounts and e-mail confirmation.
type userService struct {
	userRepository     store.UserRepository
	questionRepository store.QuestionRepository
	cache              store.QuestionCache
	mailer             adapter.Mailer
	permissions        PermissionService
	validator          validators.Validator
	ids                idGenerator

	// passwordHashKey is the pepper mixed into every password hash.
	passwordHashKey string

	// hashKey signs the digest of the confirmation token kept in the store.
	hashKey string

	tokenSignKey       string
	tokenIssuer        string
	tokenDuration      time.Duration
	emailTokenDuration time.Duration

	logger *logger.Logger
}

func NewUserService(
	userRepository store.UserRepository,
	questionRepository store.QuestionRepository,
	cache store.QuestionCache,
	mailer adapter.Mailer,
	permissions PermissionService,
	cfg config.App,
	logger *logger.Logger,
) UserService {
	return &userService{
		userRepository:     userRepository,
		questionRepository: questionRepository,
		cache:              cache,
		mailer:             mailer,
		permissions:        permissions,
		validator:          validators.NewRequestValidator(),
		ids:                utils.NewUUIDGenerator(),
		passwordHashKey:    cfg.PasswordHashKey,
		hashKey:            cfg.HashKey,
		tokenSignKey:       cfg.TokenSignKey,
		tokenIssuer:        cfg.TokenIssuer,
		tokenDuration:      cfg.TokenDuration,
		emailTokenDuration: cfg.EmailTokenDuration,
		logger:             logger,
	}
}

// Register creates an unconfirmed account and mails a confirmation token.
// The caller gets no entity back.
func (s *userService) Register(ctx context.Context, req models.UserRegisterRequest) error {
	if err := s.validator.Validate(ctx, req); err != nil {
		return validationError(err)
	}

	_, err := s.create(ctx, models.UserCreateRequest{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	})
	return err
}

// VerifyEmail redeems a confirmation token. Only the most recently issued
// token of the account is accepted.
func (s *userService) VerifyEmail(ctx context.Context, req models.EmailVerificationRequest) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return validationError(err)
	}

	claims, err := utils.ValidateAndParseJWTToken(req.Token, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}
	if claims.Kind != models.TokenKindEmailConfirmation {
		return fmt.Errorf("%w: token kind %q", ErrInvalidCredential, claims.Kind)
	}

	user, err := s.userRepository.FindUserByID(ctx, claims.Subject)
	if err != nil {
		return mapStoreError(err)
	}
	if user.IsEmailConfirmed {
		return ErrEmailAlreadyConfirmed
	}
	if user.EmailConfirmationToken == "" ||
		!utils.EqualHashes(utils.HashString(req.Token, s.hashKey), user.EmailConfirmationToken) {
		return fmt.Errorf("%w: superseded confirmation token", ErrInvalidCredential)
	}

	confirmed, cleared := true, ""
	if _, err = s.userRepository.UpdateUser(ctx, user.ID, models.UserPatch{
		IsEmailConfirmed:       &confirmed,
		EmailConfirmationToken: &cleared,
	}); err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("email confirmation ended with error")
		return mapStoreError(err)
	}

	return nil
}

// Login checks the credentials and issues a user session token. Banned
// users are refused.
func (s *userService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, credentials); err != nil {
		return models.Token{}, validationError(err)
	}

	user, err := s.userRepository.FindUserByUsername(ctx, credentials.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.Token{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("user search by username failed")
		return models.Token{}, mapStoreError(err)
	}

	if err = utils.ComparePassword(user.PasswordHash, credentials.Password, s.passwordHashKey); err != nil {
		if errors.Is(err, utils.ErrPasswordMismatch) {
			return models.Token{}, ErrWrongCredentials
		}
		return models.Token{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if user.BanStatus.IsBanned {
		return models.Token{}, ErrUserBanned
	}

	token, err := utils.GenerateJWTToken(s.tokenIssuer, models.TokenKindUser, user.ID, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (s *userService) Me(ctx context.Context, principal models.Principal) (models.User, error) {
	if !principal.IsUser() {
		return models.User{}, ErrUnauthorized
	}

	user, err := s.userRepository.FindUserByID(ctx, principal.ID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrInvalidIdentity
	}
	if err != nil {
		return models.User{}, mapStoreError(err)
	}

	return user, nil
}

func (s *userService) List(ctx context.Context, principal models.Principal) ([]models.User, error) {
	if err := s.permissions.Evaluate(ctx, principal, models.OpListUsers, models.Resource{}); err != nil {
		return nil, err
	}

	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, mapStoreError(err)
	}

	return users, nil
}

func (s *userService) Get(ctx context.Context, principal models.Principal, id string) (models.User, error) {
	if !utils.IsValidID(id) {
		return models.User{}, ErrInvalidID
	}
	if err := s.permissions.Evaluate(ctx, principal, models.OpReadUser, models.Resource{OwnerID: id}); err != nil {
		return models.User{}, err
	}

	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, mapStoreError(err)
	}

	return user, nil
}

// Profile returns the public view of a user. Hidden and banned profiles are
// reported as not found.
func (s *userService) Profile(ctx context.Context, username string) (models.PublicProfile, error) {
	user, err := s.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		return models.PublicProfile{}, mapStoreError(err)
	}
	if !user.Settings.IsViewable || user.BanStatus.IsBanned {
		return models.PublicProfile{}, ErrNotFound
	}

	return user.Profile(), nil
}

func (s *userService) Create(ctx context.Context, principal models.Principal, req models.UserCreateRequest) (models.User, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.User{}, validationError(err)
	}
	if err := s.permissions.Evaluate(ctx, principal, models.OpCreateUser, models.Resource{}); err != nil {
		return models.User{}, err
	}

	return s.create(ctx, req)
}

// Update applies a partial update. A new e-mail address drops the
// confirmation and a fresh token is mailed to it.
func (s *userService) Update(ctx context.Context, principal models.Principal, id string, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(id) {
		return models.User{}, ErrInvalidID
	}
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.User{}, validationError(err)
	}
	if err := s.permissions.Evaluate(ctx, principal, models.OpUpdateUser, models.Resource{OwnerID: id}); err != nil {
		return models.User{}, err
	}

	current, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, mapStoreError(err)
	}

	patch := models.UserPatch{
		Username:      update.Username,
		ProfileImgURL: update.ProfileImgURL,
		Settings:      update.Settings,
	}
	if update.Password != nil {
		hash, err := utils.HashPassword(*update.Password, s.passwordHashKey)
		if err != nil {
			return models.User{}, fmt.Errorf("%w: %w", ErrInternal, err)
		}
		patch.PasswordHash = &hash
	}

	var confirmation models.Token
	emailChanged := update.Email != nil && *update.Email != current.Email
	if emailChanged {
		var digest string
		confirmation, digest, err = s.issueConfirmation(current.ID)
		if err != nil {
			return models.User{}, err
		}
		unconfirmed := false
		patch.Email = update.Email
		patch.IsEmailConfirmed = &unconfirmed
		patch.EmailConfirmationToken = &digest
	}

	user, err := s.userRepository.UpdateUser(ctx, id, patch)
	if err != nil {
		log.Err(err).Str("user_id", id).Msg("user update ended with error")
		return models.User{}, mapStoreError(err)
	}

	if emailChanged {
		s.sendConfirmation(ctx, user, confirmation)
	}

	return user, nil
}

// Delete removes the user with the questions it received. Questions it asked
// stay with their receivers, detached from the asker, so the receivers'
// cached listings are dropped too.
func (s *userService) Delete(ctx context.Context, principal models.Principal, id string) (models.User, error) {
	if !utils.IsValidID(id) {
		return models.User{}, ErrInvalidID
	}
	if err := s.permissions.Evaluate(ctx, principal, models.OpDeleteUser, models.Resource{OwnerID: id}); err != nil {
		return models.User{}, err
	}

	log := logger.FromContext(ctx)

	// collected before deletion, the store clears by_user afterwards
	stale := []string{id}
	asked, err := s.questionRepository.ListQuestions(ctx, models.QuestionFilter{ByUser: id})
	if err != nil {
		log.Warn().Err(err).Str("user_id", id).Msg("listing asked questions for cache invalidation failed")
	}
	for _, q := range asked {
		if !slices.Contains(stale, q.ToUser) {
			stale = append(stale, q.ToUser)
		}
	}

	user, err := s.userRepository.DeleteUser(ctx, id)
	if err != nil {
		return models.User{}, mapStoreError(err)
	}

	for _, userID := range stale {
		if err = s.cache.InvalidateProfileQuestions(ctx, userID); err != nil {
			log.Warn().Err(err).Str("user_id", userID).Msg("profile questions cache invalidation failed")
		}
	}

	return user, nil
}

// Ban sets or lifts the ban of a user. The banning admin is recorded.
func (s *userService) Ban(ctx context.Context, principal models.Principal, id string, req models.BanRequest) (models.User, error) {
	if !utils.IsValidID(id) {
		return models.User{}, ErrInvalidID
	}
	if err := s.permissions.Evaluate(ctx, principal, models.OpBanUser, models.Resource{OwnerID: id}); err != nil {
		return models.User{}, err
	}

	status := models.BanStatus{}
	if req.IsBanned {
		now := time.Now().UTC()
		status = models.BanStatus{IsBanned: true, BannedBy: principal.ID, BanDate: &now}
	}

	user, err := s.userRepository.UpdateUser(ctx, id, models.UserPatch{BanStatus: &status})
	if err != nil {
		return models.User{}, mapStoreError(err)
	}

	return user, nil
}

func (s *userService) create(ctx context.Context, req models.UserCreateRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := utils.HashPassword(req.Password, s.passwordHashKey)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	user := models.User{
		ID:               s.ids.Generate(),
		Username:         req.Username,
		PasswordHash:     hash,
		Email:            req.Email,
		ProfileImgURL:    req.ProfileImgURL,
		IsEmailConfirmed: req.IsEmailConfirmed,
		Settings:         models.DefaultUserSettings(),
		CreateDate:       time.Now().UTC(),
	}
	if req.Settings != nil {
		user.Settings = *req.Settings
	}

	var confirmation models.Token
	if !user.IsEmailConfirmed {
		confirmation, user.EmailConfirmationToken, err = s.issueConfirmation(user.ID)
		if err != nil {
			return models.User{}, err
		}
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, mapStoreError(err)
	}

	if !created.IsEmailConfirmed {
		s.sendConfirmation(ctx, created, confirmation)
	}

	return created, nil
}

// issueConfirmation signs a confirmation token for userID and returns it
// with the digest to be stored.
func (s *userService) issueConfirmation(userID string) (models.Token, string, error) {
	token, err := utils.GenerateJWTToken(s.tokenIssuer, models.TokenKindEmailConfirmation, userID, s.emailTokenDuration, s.tokenSignKey)
	if err != nil {
		return models.Token{}, "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, utils.HashString(token.SignedString, s.hashKey), nil
}

// sendConfirmation mails the token. Failures are only logged.
func (s *userService) sendConfirmation(ctx context.Context, user models.User, token models.Token) {
	if err := s.mailer.SendEmailConfirmation(ctx, user.Email, user.Username, token.SignedString); err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", user.ID).Msg("sending confirmation email failed")
	}
}
