package store

import (
	"database/sql"

	"github.com/MKhiriev/go-ask-box/models"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAdmin(row rowScanner) (models.Admin, error) {
	var (
		admin      models.Admin
		email      sql.NullString
		createDate nullableTime
		updateDate nullableTime
	)

	err := row.Scan(
		&admin.ID, &admin.Username, &admin.PasswordHash, &email,
		&admin.Permissions.SuperAdmin, &admin.Permissions.ManageUsers, &admin.Permissions.ManagePosts,
		&createDate, &updateDate,
	)
	if err != nil {
		return models.Admin{}, err
	}

	admin.Email = email.String
	admin.CreateDate = createDate.Time
	admin.UpdateDate = updateDate.Time
	return admin, nil
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user       models.User
		token      sql.NullString
		bannedBy   sql.NullString
		banDate    nullableTime
		createDate nullableTime
	)

	err := row.Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.Email, &user.ProfileImgURL,
		&user.IsEmailConfirmed, &token,
		&user.BanStatus.IsBanned, &bannedBy, &banDate,
		&user.Settings.IsAskable, &user.Settings.IsViewable, &createDate,
	)
	if err != nil {
		return models.User{}, err
	}

	user.EmailConfirmationToken = token.String
	user.BanStatus.BannedBy = bannedBy.String
	user.BanStatus.BanDate = banDate.ptr()
	user.CreateDate = createDate.Time
	return user, nil
}

func scanQuestion(row rowScanner) (models.Question, error) {
	var (
		q          models.Question
		answer     sql.NullString
		byUser     sql.NullString
		createDate nullableTime
	)

	err := row.Scan(
		&q.ID, &q.Text, &answer, &q.ToUser, &byUser,
		&q.IsAnonym, &q.IsDisplayable, &q.IsCommentable, &createDate,
	)
	if err != nil {
		return models.Question{}, err
	}

	if answer.Valid {
		a := answer.String
		q.Answer = &a
	}
	q.ByUser = byUser.String
	q.CreateDate = createDate.Time
	return q, nil
}
