// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-ask-box/internal/logger"
	"github.com/MKhiriev/go-ask-box/internal/mock"
	"github.com/MKhiriev/go-ask-box/internal/store"
	"github.com/MKhiriev/go-ask-box/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type questionFixture struct {
	svc         QuestionService
	questions   *mock.MockQuestionRepository
	users       *mock.MockUserRepository
	cache       *mock.MockQuestionCache
	permissions *mockPermissionService
}

func newQuestionFixture(t *testing.T, permissions *mockPermissionService) questionFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := questionFixture{
		questions:   mock.NewMockQuestionRepository(ctrl),
		users:       mock.NewMockUserRepository(ctrl),
		cache:       mock.NewMockQuestionCache(ctrl),
		permissions: permissions,
	}
	svc := NewQuestionService(f.questions, f.users, f.cache, permissions, NewVisibilityService(), logger.Nop()).(*questionService)
	svc.ids = fixedIDs(newID)
	f.svc = svc
	return f
}

// ─────────────────────────────────────────────
// Ask
// ─────────────────────────────────────────────

func TestAsk_UserAsksNamed(t *testing.T) {
	f := newQuestionFixture(t, allowAll())
	f.users.EXPECT().FindUserByID(gomock.Any(), receiverID).Return(askableUser(receiverID, "receiver"), nil)
	f.questions.EXPECT().CreateQuestion(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q models.Question) (models.Question, error) {
			assert.Equal(t, newID, q.ID)
			assert.Equal(t, askerID, q.ByUser)
			assert.Equal(t, receiverID, q.ToUser)
			assert.False(t, q.IsAnonym)
			assert.False(t, q.IsDisplayable)
			assert.False(t, q.IsCommentable)
			assert.Nil(t, q.Answer)
			return q, nil
		})

	err := f.svc.Ask(context.Background(), models.NewUserPrincipal(askerID), models.AskRequest{Text: "hi?", ToUser: receiverID})

	require.NoError(t, err)
}

func TestAsk_GuestIsForcedAnonymous(t *testing.T) {
	f := newQuestionFixture(t, allowAll())
	f.users.EXPECT().FindUserByID(gomock.Any(), receiverID).Return(askableUser(receiverID, "receiver"), nil)
	f.questions.EXPECT().CreateQuestion(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q models.Question) (models.Question, error) {
			assert.Empty(t, q.ByUser)
			assert.True(t, q.IsAnonym)
			return q, nil
		})

	err := f.svc.Ask(context.Background(), models.Guest(), models.AskRequest{Text: "hi?", ToUser: receiverID, IsAnonym: false})

	require.NoError(t, err)
}

func TestAsk_Failures(t *testing.T) {
	banned := askableUser(receiverID, "receiver")
	banned.BanStatus.IsBanned = true
	unconfirmed := askableUser(receiverID, "receiver")
	unconfirmed.IsEmailConfirmed = false
	notAskable := askableUser(receiverID, "receiver")
	notAskable.Settings.IsAskable = false
	notViewable := askableUser(receiverID, "receiver")
	notViewable.Settings.IsViewable = false

	tests := []struct {
		name      string
		principal models.Principal
		req       models.AskRequest
		receiver  *models.User
		lookupErr error
		wantErr   error
	}{
		{name: "empty text", principal: models.Guest(), req: models.AskRequest{Text: "  ", ToUser: receiverID}, wantErr: ErrValidationFailed},
		{name: "too long text", principal: models.Guest(), req: models.AskRequest{Text: strings.Repeat("a", 1001), ToUser: receiverID}, wantErr: ErrValidationFailed},
		{name: "malformed receiver", principal: models.Guest(), req: models.AskRequest{Text: "hi", ToUser: "42"}, wantErr: ErrInvalidID},
		{name: "unknown receiver", principal: models.Guest(), req: models.AskRequest{Text: "hi", ToUser: receiverID}, lookupErr: store.ErrUserNotFound, wantErr: ErrInvalidTarget},
		{name: "self ask", principal: models.NewUserPrincipal(receiverID), req: models.AskRequest{Text: "hi", ToUser: receiverID}, receiver: ptr(askableUser(receiverID, "receiver")), wantErr: ErrUnauthorized},
		{name: "banned receiver", principal: models.Guest(), req: models.AskRequest{Text: "hi", ToUser: receiverID}, receiver: &banned, wantErr: ErrUnauthorized},
		{name: "unconfirmed receiver", principal: models.Guest(), req: models.AskRequest{Text: "hi", ToUser: receiverID}, receiver: &unconfirmed, wantErr: ErrUnauthorized},
		{name: "not askable receiver", principal: models.Guest(), req: models.AskRequest{Text: "hi", ToUser: receiverID}, receiver: &notAskable, wantErr: ErrUnauthorized},
		{name: "hidden receiver", principal: models.Guest(), req: models.AskRequest{Text: "hi", ToUser: receiverID}, receiver: &notViewable, wantErr: ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newQuestionFixture(t, allowAll())
			if tt.receiver != nil {
				f.users.EXPECT().FindUserByID(gomock.Any(), receiverID).Return(*tt.receiver, nil)
			}
			if tt.lookupErr != nil {
				f.users.EXPECT().FindUserByID(gomock.Any(), receiverID).Return(models.User{}, tt.lookupErr)
			}

			err := f.svc.Ask(context.Background(), tt.principal, tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAsk_ReceiverRemovedConcurrently(t *testing.T) {
	f := newQuestionFixture(t, allowAll())
	f.users.EXPECT().FindUserByID(gomock.Any(), receiverID).Return(askableUser(receiverID, "receiver"), nil)
	f.questions.EXPECT().CreateQuestion(gomock.Any(), gomock.Any()).Return(models.Question{}, store.ErrReferenceNotFound)

	err := f.svc.Ask(context.Background(), models.Guest(), models.AskRequest{Text: "hi", ToUser: receiverID})

	assert.ErrorIs(t, err, ErrInvalidTarget)
}

// ─────────────────────────────────────────────
// Get
// ─────────────────────────────────────────────

func TestGetQuestion_HiddenFromStranger(t *testing.T) {
	f := newQuestionFixture(t, allowAll())
	f.questions.EXPECT().FindQuestionByID(gomock.Any(), questionID).Return(sampleQuestion(false, false), nil)

	_, err := f.svc.Get(context.Background(), models.NewUserPrincipal(strangerID), questionID)

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGetQuestion_NotFoundAndInvalidID(t *testing.T) {
	f := newQuestionFixture(t, allowAll())
	f.questions.EXPECT().FindQuestionByID(gomock.Any(), questionID).Return(models.Question{}, store.ErrQuestionNotFound)

	_, err := f.svc.Get(context.Background(), models.Guest(), questionID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.Get(context.Background(), models.Guest(), "nope")
	assert.ErrorIs(t, err, ErrInvalidID)
}

// ─────────────────────────────────────────────
// ListByUsername
// ─────────────────────────────────────────────

func TestListByUsername_CacheHit(t *testing.T) {
	f := newQuestionFixture(t, allowAll())
	cached := []models.QuestionView{{ID: questionID}}
	f.users.EXPECT().FindUserByUsername(gomock.Any(), "receiver").Return(askableUser(receiverID, "receiver"), nil)
	f.cache.EXPECT().GetProfileQuestions(gomock.Any(), receiverID).Return(cached, nil)

	views, err := f.svc.ListByUsername(context.Background(), "receiver")

	require.NoError(t, err)
	assert.Equal(t, cached, views)
}

func TestListByUsername_CacheMissLoadsAndStores(t *testing.T) {
	f := newQuestionFixture(t, allowAll())
	f.users.EXPECT().FindUserByUsername(gomock.Any(), "receiver").Return(askableUser(receiverID, "receiver"), nil)
	f.cache.EXPECT().GetProfileQuestions(gomock.Any(), receiverID).Return(nil, store.ErrCacheMiss)
	f.questions.EXPECT().
		ListQuestions(gomock.Any(), models.QuestionFilter{ToUser: receiverID, DisplayableOnly: true}).
		Return([]models.Question{sampleQuestion(true, true)}, nil)
	f.cache.EXPECT().SetProfileQuestions(gomock.Any(), receiverID, gomock.Len(1)).Return(nil)

	views, err := f.svc.ListByUsername(context.Background(), "receiver")

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Empty(t, views[0].ByUser)
}

func TestListByUsername_CacheFailuresDoNotFail(t *testing.T) {
	f := newQuestionFixture(t, allowAll())
	f.users.EXPECT().FindUserByUsername(gomock.Any(), "receiver").Return(askableUser(receiverID, "receiver"), nil)
	f.cache.EXPECT().GetProfileQuestions(gomock.Any(), receiverID).Return(nil, errors.New("redis down"))
	f.questions.EXPECT().ListQuestions(gomock.Any(), gomock.Any()).Return(nil, nil)
	f.cache.EXPECT().SetProfileQuestions(gomock.Any(), receiverID, gomock.Any()).Return(errors.New("redis down"))

	views, err := f.svc.ListByUsername(context.Background(), "receiver")

	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}

func TestListByUsername_UnknownUser(t *testing.T) {
	f := newQuestionFixture(t, allowAll())
	f.users.EXPECT().FindUserByUsername(gomock.Any(), "ghost").Return(models.User{}, store.ErrUserNotFound)

	_, err := f.svc.ListByUsername(context.Background(), "ghost")

	assert.ErrorIs(t, err, ErrNotFound)
}

// ─────────────────────────────────────────────
// ListForUser
// ─────────────────────────────────────────────

func TestListForUser_Owner(t *testing.T) {
	f := newQuestionFixture(t, allowAll())
	f.questions.EXPECT().ListQuestions(gomock.Any(), models.QuestionFilter{ToUser: receiverID}).
		Return([]models.Question{sampleQuestion(false, true)}, nil)
	f.questions.EXPECT().ListQuestions(gomock.Any(), models.QuestionFilter{ByUser: receiverID}).
		Return(nil, nil)

	got, err := f.svc.ListForUser(context.Background(), models.NewUserPrincipal(receiverID), receiverID)

	require.NoError(t, err)
	require.Len(t, got.Received, 1)
	assert.Empty(t, got.Received[0].ByUser)
	assert.NotNil(t, got.Asked)
	assert.Equal(t, []models.Operation{models.OpListUserQuestions}, f.permissions.calls)
}

func TestListForUser_AdminChecksUserExists(t *testing.T) {
	f := newQuestionFixture(t, allowAll())
	f.users.EXPECT().FindUserByID(gomock.Any(), receiverID).Return(models.User{}, store.ErrUserNotFound)

	_, err := f.svc.ListForUser(context.Background(), models.NewAdminPrincipal(adminID), receiverID)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListForUser_Denied(t *testing.T) {
	f := newQuestionFixture(t, denyAll())

	_, err := f.svc.ListForUser(context.Background(), models.NewUserPrincipal(strangerID), receiverID)

	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ─────────────────────────────────────────────
// Update
// ─────────────────────────────────────────────

func TestUpdateQuestion_ReceiverPublishes(t *testing.T) {
	f := newQuestionFixture(t, allowAll())
	update := models.QuestionUpdate{Answer: ptr("blue"), IsDisplayable: ptr(true)}
	published := sampleQuestion(true, false)
	published.Answer = update.Answer

	f.questions.EXPECT().FindQuestionByID(gomock.Any(), questionID).Return(sampleQuestion(false, false), nil)
	f.questions.EXPECT().UpdateQuestion(gomock.Any(), questionID, update).Return(published, nil)
	f.cache.EXPECT().InvalidateProfileQuestions(gomock.Any(), receiverID).Return(nil)

	view, err := f.svc.Update(context.Background(), models.NewUserPrincipal(receiverID), questionID, update)

	require.NoError(t, err)
	assert.True(t, view.IsDisplayable)
	assert.Equal(t, "blue", *view.Answer)
}

func TestUpdateQuestion_EmptyUpdate(t *testing.T) {
	f := newQuestionFixture(t, allowAll())

	_, err := f.svc.Update(context.Background(), models.NewUserPrincipal(receiverID), questionID, models.QuestionUpdate{})

	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestUpdateQuestion_Denied(t *testing.T) {
	f := newQuestionFixture(t, denyAll())
	f.questions.EXPECT().FindQuestionByID(gomock.Any(), questionID).Return(sampleQuestion(false, false), nil)

	_, err := f.svc.Update(context.Background(), models.NewUserPrincipal(askerID), questionID, models.QuestionUpdate{IsDisplayable: ptr(true)})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUpdateQuestion_CacheFailureIsIgnored(t *testing.T) {
	f := newQuestionFixture(t, allowAll())
	f.questions.EXPECT().FindQuestionByID(gomock.Any(), questionID).Return(sampleQuestion(true, false), nil)
	f.questions.EXPECT().UpdateQuestion(gomock.Any(), questionID, gomock.Any()).Return(sampleQuestion(false, false), nil)
	f.cache.EXPECT().InvalidateProfileQuestions(gomock.Any(), receiverID).Return(errors.New("redis down"))

	_, err := f.svc.Update(context.Background(), models.NewUserPrincipal(receiverID), questionID, models.QuestionUpdate{IsDisplayable: ptr(false)})

	assert.NoError(t, err)
}

// ─────────────────────────────────────────────
// Delete
// ─────────────────────────────────────────────

func TestDeleteQuestion_PassesReceiverAndAsker(t *testing.T) {
	var seen models.Resource
	perms := &mockPermissionService{
		evaluateFn: func(_ context.Context, _ models.Principal, _ models.Operation, target models.Resource) error {
			seen = target
			return nil
		},
	}
	f := newQuestionFixture(t, perms)
	f.questions.EXPECT().FindQuestionByID(gomock.Any(), questionID).Return(sampleQuestion(false, true), nil)
	f.questions.EXPECT().DeleteQuestion(gomock.Any(), questionID).Return(sampleQuestion(false, true), nil)

	view, err := f.svc.Delete(context.Background(), models.NewUserPrincipal(askerID), questionID)

	require.NoError(t, err)
	assert.Equal(t, models.Resource{ReceiverID: receiverID, AskerID: askerID}, seen)
	assert.Empty(t, view.ByUser)
	assert.Equal(t, []models.Operation{models.OpDeleteQuestion}, perms.calls)
}

func TestDeleteQuestion_DisplayableInvalidatesCache(t *testing.T) {
	f := newQuestionFixture(t, allowAll())
	f.questions.EXPECT().FindQuestionByID(gomock.Any(), questionID).Return(sampleQuestion(true, false), nil)
	f.questions.EXPECT().DeleteQuestion(gomock.Any(), questionID).Return(sampleQuestion(true, false), nil)
	f.cache.EXPECT().InvalidateProfileQuestions(gomock.Any(), receiverID).Return(nil)

	_, err := f.svc.Delete(context.Background(), models.NewAdminPrincipal(adminID), questionID)

	assert.NoError(t, err)
}

func TestDeleteQuestion_Errors(t *testing.T) {
	f := newQuestionFixture(t, denyAll())

	_, err := f.svc.Delete(context.Background(), models.NewUserPrincipal(askerID), "bad")
	assert.ErrorIs(t, err, ErrInvalidID)

	f.questions.EXPECT().FindQuestionByID(gomock.Any(), questionID).Return(models.Question{}, store.ErrQuestionNotFound)
	_, err = f.svc.Delete(context.Background(), models.NewUserPrincipal(askerID), questionID)
	assert.ErrorIs(t, err, ErrNotFound)

	f.questions.EXPECT().FindQuestionByID(gomock.Any(), questionID).Return(sampleQuestion(true, false), nil)
	_, err = f.svc.Delete(context.Background(), models.NewUserPrincipal(strangerID), questionID)
	assert.ErrorIs(t, err, ErrUnauthorized)
}
