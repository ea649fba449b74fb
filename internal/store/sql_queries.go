package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-ask-box/models"
)

const (
	tableAdmins    = "admins"
	tableUsers     = "users"
	tableQuestions = "questions"
)

var (
	adminColumns = []string{
		"id", "username", "password", "email",
		"super_admin", "manage_users", "manage_posts",
		"create_date", "update_date",
	}

	userColumns = []string{
		"id", "username", "password", "email", "profile_img_url",
		"is_email_confirmed", "email_confirmation_token",
		"is_banned", "banned_by", "ban_date",
		"is_askable", "is_viewable", "create_date",
	}

	questionColumns = []string{
		"id", "text", "answer", "to_user", "by_user",
		"is_anonym", "is_displayable", "is_commentable", "create_date",
	}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// ── admins ────────────────────────────────────────────────────────────────────

func buildInsertAdminQuery(b sq.StatementBuilderType, admin models.Admin) (string, []any, error) {
	return b.Insert(tableAdmins).
		Columns(adminColumns...).
		Values(
			admin.ID, admin.Username, admin.PasswordHash, nullString(admin.Email),
			admin.Permissions.SuperAdmin, admin.Permissions.ManageUsers, admin.Permissions.ManagePosts,
			admin.CreateDate.UTC(), admin.UpdateDate.UTC(),
		).
		Suffix(returning(adminColumns)).
		ToSql()
}

func buildSelectAdminsQuery(b sq.StatementBuilderType, where sq.Sqlizer) (string, []any, error) {
	query := b.Select(adminColumns...).From(tableAdmins)
	if where != nil {
		query = query.Where(where)
	}

	return query.OrderBy("create_date ASC").ToSql()
}

func buildCountAdminsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("COUNT(*)").From(tableAdmins).ToSql()
}

func buildUpdateAdminQuery(b sq.StatementBuilderType, id string, patch models.AdminPatch) (string, []any, error) {
	clauses := map[string]any{}
	if patch.Username != nil {
		clauses["username"] = *patch.Username
	}
	if patch.PasswordHash != nil {
		clauses["password"] = *patch.PasswordHash
	}
	if patch.Email != nil {
		clauses["email"] = nullString(*patch.Email)
	}
	if patch.Permissions != nil {
		clauses["super_admin"] = patch.Permissions.SuperAdmin
		clauses["manage_users"] = patch.Permissions.ManageUsers
		clauses["manage_posts"] = patch.Permissions.ManagePosts
	}
	if len(clauses) == 0 {
		return "", nil, ErrNothingToUpdate
	}

	updateDate := patch.UpdateDate
	if updateDate.IsZero() {
		updateDate = time.Now()
	}
	clauses["update_date"] = updateDate.UTC()

	return b.Update(tableAdmins).
		SetMap(clauses).
		Where(sq.Eq{"id": id}).
		Suffix(returning(adminColumns)).
		ToSql()
}

func buildDeleteAdminQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Delete(tableAdmins).
		Where(sq.Eq{"id": id}).
		Suffix(returning(adminColumns)).
		ToSql()
}

// ── users ─────────────────────────────────────────────────────────────────────

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(tableUsers).
		Columns(userColumns...).
		Values(
			user.ID, user.Username, user.PasswordHash, user.Email, user.ProfileImgURL,
			user.IsEmailConfirmed, nullString(user.EmailConfirmationToken),
			user.BanStatus.IsBanned, nullString(user.BanStatus.BannedBy), nullTime(user.BanStatus.BanDate),
			user.Settings.IsAskable, user.Settings.IsViewable, user.CreateDate.UTC(),
		).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildSelectUsersQuery(b sq.StatementBuilderType, where sq.Sqlizer) (string, []any, error) {
	query := b.Select(userColumns...).From(tableUsers)
	if where != nil {
		query = query.Where(where)
	}

	return query.OrderBy("create_date DESC").ToSql()
}

func buildUpdateUserQuery(b sq.StatementBuilderType, id string, patch models.UserPatch) (string, []any, error) {
	if patch.IsEmpty() {
		return "", nil, ErrNothingToUpdate
	}

	clauses := map[string]any{}
	if patch.Username != nil {
		clauses["username"] = *patch.Username
	}
	if patch.PasswordHash != nil {
		clauses["password"] = *patch.PasswordHash
	}
	if patch.Email != nil {
		clauses["email"] = *patch.Email
	}
	if patch.ProfileImgURL != nil {
		clauses["profile_img_url"] = *patch.ProfileImgURL
	}
	if patch.Settings != nil {
		clauses["is_askable"] = patch.Settings.IsAskable
		clauses["is_viewable"] = patch.Settings.IsViewable
	}
	if patch.IsEmailConfirmed != nil {
		clauses["is_email_confirmed"] = *patch.IsEmailConfirmed
	}
	if patch.EmailConfirmationToken != nil {
		clauses["email_confirmation_token"] = nullString(*patch.EmailConfirmationToken)
	}
	if patch.BanStatus != nil {
		clauses["is_banned"] = patch.BanStatus.IsBanned
		clauses["banned_by"] = nullString(patch.BanStatus.BannedBy)
		clauses["ban_date"] = nullTime(patch.BanStatus.BanDate)
	}

	return b.Update(tableUsers).
		SetMap(clauses).
		Where(sq.Eq{"id": id}).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildDeleteUserQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Delete(tableUsers).
		Where(sq.Eq{"id": id}).
		Suffix(returning(userColumns)).
		ToSql()
}

// ── questions ─────────────────────────────────────────────────────────────────

func buildInsertQuestionQuery(b sq.StatementBuilderType, q models.Question) (string, []any, error) {
	var answer any
	if q.Answer != nil {
		answer = *q.Answer
	}

	return b.Insert(tableQuestions).
		Columns(questionColumns...).
		Values(
			q.ID, q.Text, answer, q.ToUser, nullString(q.ByUser),
			q.IsAnonym, q.IsDisplayable, q.IsCommentable, q.CreateDate.UTC(),
		).
		Suffix(returning(questionColumns)).
		ToSql()
}

func buildSelectQuestionByIDQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(questionColumns...).
		From(tableQuestions).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildListQuestionsQuery(b sq.StatementBuilderType, filter models.QuestionFilter) (string, []any, error) {
	query := b.Select(questionColumns...).From(tableQuestions)
	if filter.ToUser != "" {
		query = query.Where(sq.Eq{"to_user": filter.ToUser})
	}
	if filter.ByUser != "" {
		query = query.Where(sq.Eq{"by_user": filter.ByUser})
	}
	if filter.DisplayableOnly {
		query = query.Where(sq.Eq{"is_displayable": true})
	}

	return query.OrderBy("create_date DESC").ToSql()
}

func buildUpdateQuestionQuery(b sq.StatementBuilderType, id string, update models.QuestionUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrNothingToUpdate
	}

	clauses := map[string]any{}
	if update.Answer != nil {
		clauses["answer"] = *update.Answer
	}
	if update.IsDisplayable != nil {
		clauses["is_displayable"] = *update.IsDisplayable
	}
	if update.IsCommentable != nil {
		clauses["is_commentable"] = *update.IsCommentable
	}

	return b.Update(tableQuestions).
		SetMap(clauses).
		Where(sq.Eq{"id": id}).
		Suffix(returning(questionColumns)).
		ToSql()
}

func buildDeleteQuestionQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Delete(tableQuestions).
		Where(sq.Eq{"id": id}).
		Suffix(returning(questionColumns)).
		ToSql()
}
