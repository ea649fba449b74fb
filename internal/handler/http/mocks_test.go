// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"

	"github.com/MKhiriev/go-ask-box/internal/config"
	"github.com/MKhiriev/go-ask-box/models"
)

// ─────────────────────────────────────────────
// Mock PrincipalResolver
// ─────────────────────────────────────────────

type mockPrincipalResolver struct {
	resolveFn func(ctx context.Context, credential string, policy models.Policy) (models.Principal, error)
}

func (m *mockPrincipalResolver) Resolve(ctx context.Context, credential string, policy models.Policy) (models.Principal, error) {
	return m.resolveFn(ctx, credential, policy)
}

// resolveAs accepts any credential and resolves it to p.
func resolveAs(p models.Principal) *mockPrincipalResolver {
	return &mockPrincipalResolver{
		resolveFn: func(context.Context, string, models.Policy) (models.Principal, error) { return p, nil },
	}
}

// ─────────────────────────────────────────────
// Mock AdminService
// ─────────────────────────────────────────────

type mockAdminService struct {
	loginFn     func(ctx context.Context, credentials models.Credentials) (models.Token, error)
	meFn        func(ctx context.Context, principal models.Principal) (models.Admin, error)
	listFn      func(ctx context.Context, principal models.Principal) ([]models.Admin, error)
	getFn       func(ctx context.Context, principal models.Principal, id string) (models.Admin, error)
	createFn    func(ctx context.Context, principal models.Principal, req models.AdminCreateRequest) (models.Admin, error)
	updateFn    func(ctx context.Context, principal models.Principal, id string, update models.AdminUpdate) (models.Admin, error)
	deleteFn    func(ctx context.Context, principal models.Principal, id string) (models.Admin, error)
	bootstrapFn func(ctx context.Context, cfg config.Bootstrap) error
}

func (m *mockAdminService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	return m.loginFn(ctx, credentials)
}

func (m *mockAdminService) Me(ctx context.Context, principal models.Principal) (models.Admin, error) {
	return m.meFn(ctx, principal)
}

func (m *mockAdminService) List(ctx context.Context, principal models.Principal) ([]models.Admin, error) {
	return m.listFn(ctx, principal)
}

func (m *mockAdminService) Get(ctx context.Context, principal models.Principal, id string) (models.Admin, error) {
	return m.getFn(ctx, principal, id)
}

func (m *mockAdminService) Create(ctx context.Context, principal models.Principal, req models.AdminCreateRequest) (models.Admin, error) {
	return m.createFn(ctx, principal, req)
}

func (m *mockAdminService) Update(ctx context.Context, principal models.Principal, id string, update models.AdminUpdate) (models.Admin, error) {
	return m.updateFn(ctx, principal, id, update)
}

func (m *mockAdminService) Delete(ctx context.Context, principal models.Principal, id string) (models.Admin, error) {
	return m.deleteFn(ctx, principal, id)
}

func (m *mockAdminService) Bootstrap(ctx context.Context, cfg config.Bootstrap) error {
	return m.bootstrapFn(ctx, cfg)
}

// ─────────────────────────────────────────────
// Mock UserService
// ─────────────────────────────────────────────

type mockUserService struct {
	registerFn    func(ctx context.Context, req models.UserRegisterRequest) error
	verifyEmailFn func(ctx context.Context, req models.EmailVerificationRequest) error
	loginFn       func(ctx context.Context, credentials models.Credentials) (models.Token, error)
	meFn          func(ctx context.Context, principal models.Principal) (models.User, error)
	listFn        func(ctx context.Context, principal models.Principal) ([]models.User, error)
	getFn         func(ctx context.Context, principal models.Principal, id string) (models.User, error)
	profileFn     func(ctx context.Context, username string) (models.PublicProfile, error)
	createFn      func(ctx context.Context, principal models.Principal, req models.UserCreateRequest) (models.User, error)
	updateFn      func(ctx context.Context, principal models.Principal, id string, update models.UserUpdate) (models.User, error)
	deleteFn      func(ctx context.Context, principal models.Principal, id string) (models.User, error)
	banFn         func(ctx context.Context, principal models.Principal, id string, req models.BanRequest) (models.User, error)
}

func (m *mockUserService) Register(ctx context.Context, req models.UserRegisterRequest) error {
	return m.registerFn(ctx, req)
}

func (m *mockUserService) VerifyEmail(ctx context.Context, req models.EmailVerificationRequest) error {
	return m.verifyEmailFn(ctx, req)
}

func (m *mockUserService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	return m.loginFn(ctx, credentials)
}

func (m *mockUserService) Me(ctx context.Context, principal models.Principal) (models.User, error) {
	return m.meFn(ctx, principal)
}

func (m *mockUserService) List(ctx context.Context, principal models.Principal) ([]models.User, error) {
	return m.listFn(ctx, principal)
}

func (m *mockUserService) Get(ctx context.Context, principal models.Principal, id string) (models.User, error) {
	return m.getFn(ctx, principal, id)
}

func (m *mockUserService) Profile(ctx context.Context, username string) (models.PublicProfile, error) {
	return m.profileFn(ctx, username)
}

func (m *mockUserService) Create(ctx context.Context, principal models.Principal, req models.UserCreateRequest) (models.User, error) {
	return m.createFn(ctx, principal, req)
}

func (m *mockUserService) Update(ctx context.Context, principal models.Principal, id string, update models.UserUpdate) (models.User, error) {
	return m.updateFn(ctx, principal, id, update)
}

func (m *mockUserService) Delete(ctx context.Context, principal models.Principal, id string) (models.User, error) {
	return m.deleteFn(ctx, principal, id)
}

func (m *mockUserService) Ban(ctx context.Context, principal models.Principal, id string, req models.BanRequest) (models.User, error) {
	return m.banFn(ctx, principal, id, req)
}

// ─────────────────────────────────────────────
// Mock QuestionService
// ─────────────────────────────────────────────

type mockQuestionService struct {
	askFn            func(ctx context.Context, principal models.Principal, req models.AskRequest) error
	getFn            func(ctx context.Context, principal models.Principal, id string) (models.QuestionView, error)
	listByUsernameFn func(ctx context.Context, username string) ([]models.QuestionView, error)
	listForUserFn    func(ctx context.Context, principal models.Principal, userID string) (models.UserQuestions, error)
	updateFn         func(ctx context.Context, principal models.Principal, id string, update models.QuestionUpdate) (models.QuestionView, error)
	deleteFn         func(ctx context.Context, principal models.Principal, id string) (models.QuestionView, error)
}

func (m *mockQuestionService) Ask(ctx context.Context, principal models.Principal, req models.AskRequest) error {
	return m.askFn(ctx, principal, req)
}

func (m *mockQuestionService) Get(ctx context.Context, principal models.Principal, id string) (models.QuestionView, error) {
	return m.getFn(ctx, principal, id)
}

func (m *mockQuestionService) ListByUsername(ctx context.Context, username string) ([]models.QuestionView, error) {
	return m.listByUsernameFn(ctx, username)
}

func (m *mockQuestionService) ListForUser(ctx context.Context, principal models.Principal, userID string) (models.UserQuestions, error) {
	return m.listForUserFn(ctx, principal, userID)
}

func (m *mockQuestionService) Update(ctx context.Context, principal models.Principal, id string, update models.QuestionUpdate) (models.QuestionView, error) {
	return m.updateFn(ctx, principal, id, update)
}

func (m *mockQuestionService) Delete(ctx context.Context, principal models.Principal, id string) (models.QuestionView, error) {
	return m.deleteFn(ctx, principal, id)
}

// ─────────────────────────────────────────────
// Mock AppInfoService / HealthService
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetVersionInfo(_ context.Context) models.VersionInfo {
	return models.VersionInfo{Version: m.version}
}

type mockHealthService struct {
	status models.HealthStatus
}

func (m *mockHealthService) Check(_ context.Context) models.HealthStatus {
	return m.status
}
