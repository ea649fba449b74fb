package models

import "time"

// BanStatus records whether and by whom a user was banned.
type BanStatus struct {
	IsBanned bool       `json:"is_banned" bson:"is_banned"`
	BannedBy string     `json:"banned_by,omitempty" bson:"banned_by,omitempty"`
	BanDate  *time.Time `json:"ban_date,omitempty" bson:"ban_date,omitempty"`
}

// UserSettings are the user-controlled visibility switches.
type UserSettings struct {
	// IsAskable allows other people to ask this user questions.
	IsAskable bool `json:"is_askable" bson:"is_askable"`
	// IsViewable exposes the public profile.
	IsViewable bool `json:"is_viewable" bson:"is_viewable"`
}

// DefaultUserSettings are applied to every new user.
func DefaultUserSettings() UserSettings {
	return UserSettings{IsAskable: true, IsViewable: true}
}

// User is a regular account that receives and asks questions.
type User struct {
	ID               string       `json:"id" bson:"_id"`
	Username         string       `json:"username" bson:"username"`
	PasswordHash     string       `json:"-" bson:"password"`
	Email            string       `json:"email" bson:"email"`
	ProfileImgURL    string       `json:"profile_img_url,omitempty" bson:"profile_img_url,omitempty"`
	IsEmailConfirmed bool         `json:"is_email_confirmed" bson:"is_email_confirmed"`
	BanStatus        BanStatus    `json:"ban_status" bson:"ban_status"`
	Settings         UserSettings `json:"settings" bson:"settings"`
	CreateDate       time.Time    `json:"create_date" bson:"create_date"`

	// EmailConfirmationToken holds the digest of the outstanding
	// confirmation token. It never leaves the store layer.
	EmailConfirmationToken string `json:"-" bson:"email_confirmation_token,omitempty"`
}

// CanBeAsked reports whether new questions may be addressed to the user.
func (u User) CanBeAsked() bool {
	return u.Settings.IsAskable && u.Settings.IsViewable && u.IsEmailConfirmed && !u.BanStatus.IsBanned
}

// PublicProfile is the view of a user shown to anyone.
type PublicProfile struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	ProfileImgURL string    `json:"profile_img_url,omitempty"`
	IsAskable     bool      `json:"is_askable"`
	CreateDate    time.Time `json:"create_date"`
}

// Profile projects u onto its public view.
func (u User) Profile() PublicProfile {
	return PublicProfile{
		ID:            u.ID,
		Username:      u.Username,
		ProfileImgURL: u.ProfileImgURL,
		IsAskable:     u.Settings.IsAskable,
		CreateDate:    u.CreateDate,
	}
}

// UserRegisterRequest is the body of self-registration.
type UserRegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// UserCreateRequest is the body of the admin create-user operation.
type UserCreateRequest struct {
	Username         string        `json:"username"`
	Password         string        `json:"password"`
	Email            string        `json:"email"`
	ProfileImgURL    string        `json:"profile_img_url,omitempty"`
	IsEmailConfirmed bool          `json:"is_email_confirmed"`
	Settings         *UserSettings `json:"settings,omitempty"`
}

// UserUpdate is a partial update of a user. Nil fields are left untouched.
type UserUpdate struct {
	Username      *string       `json:"username,omitempty"`
	Password      *string       `json:"password,omitempty"`
	Email         *string       `json:"email,omitempty"`
	ProfileImgURL *string       `json:"profile_img_url,omitempty"`
	Settings      *UserSettings `json:"settings,omitempty"`
}

// IsEmpty reports whether the update carries no field.
func (u UserUpdate) IsEmpty() bool {
	return u.Username == nil && u.Password == nil && u.Email == nil &&
		u.ProfileImgURL == nil && u.Settings == nil
}

// UserPatch is the store-level partial update of a user.
type UserPatch struct {
	Username               *string
	PasswordHash           *string
	Email                  *string
	ProfileImgURL          *string
	Settings               *UserSettings
	IsEmailConfirmed       *bool
	EmailConfirmationToken *string
	BanStatus              *BanStatus
}

// IsEmpty reports whether the patch carries no field.
func (p UserPatch) IsEmpty() bool {
	return p.Username == nil && p.PasswordHash == nil && p.Email == nil &&
		p.ProfileImgURL == nil && p.Settings == nil && p.IsEmailConfirmed == nil &&
		p.EmailConfirmationToken == nil && p.BanStatus == nil
}

// EmailVerificationRequest carries the token received by e-mail.
type EmailVerificationRequest struct {
	Token string `json:"token"`
}

// BanRequest bans or unbans a user.
type BanRequest struct {
	IsBanned bool `json:"is_banned"`
}
