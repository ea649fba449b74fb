package validators

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUsername      = "username"
	FieldPassword      = "password"
	FieldEmail         = "email"
	FieldProfileImgURL = "profile_img_url"
	FieldText          = "text"
	FieldToUser        = "to_user"
	FieldAnswer        = "answer"
	FieldToken         = "token"
	// FieldAny requires a partial update to carry at least one field.
	FieldAny = "any"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 32
	minPasswordLen = 6
	// bcrypt ignores everything past 72 bytes
	maxPasswordLen = 72
	maxTextLen     = 1000
	maxAnswerLen   = 2000
)
