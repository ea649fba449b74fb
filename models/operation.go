package models

// Operation names a permission-checked action.
type Operation string

const (
	OpListAdmins             Operation = "list_admins"
	OpCreateAdmin            Operation = "create_admin"
	OpReadAdmin              Operation = "read_admin"
	OpUpdateAdmin            Operation = "update_admin"
	OpChangeAdminPermissions Operation = "change_admin_permissions"
	OpDeleteAdmin            Operation = "delete_admin"

	OpListUsers  Operation = "list_users"
	OpCreateUser Operation = "create_user"
	OpReadUser   Operation = "read_user"
	OpUpdateUser Operation = "update_user"
	OpDeleteUser Operation = "delete_user"
	OpBanUser    Operation = "ban_user"

	OpListUserQuestions Operation = "list_user_questions"
	OpUpdateQuestion    Operation = "update_question"
	OpDeleteQuestion    Operation = "delete_question"
)

// Resource describes the target of an operation. OwnerID is the id of the
// admin or user record being acted on; ReceiverID and AskerID are set for
// questions.
type Resource struct {
	OwnerID    string
	ReceiverID string
	AskerID    string
}
