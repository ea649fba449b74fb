package models

import "time"

// Question is a question addressed to a user. ByUser is empty when the
// question was asked by a guest.
type Question struct {
	ID            string    `bson:"_id"`
	Text          string    `bson:"text"`
	Answer        *string   `bson:"answer,omitempty"`
	ToUser        string    `bson:"to_user"`
	ByUser        string    `bson:"by_user,omitempty"`
	IsAnonym      bool      `bson:"is_anonym"`
	IsDisplayable bool      `bson:"is_displayable"`
	IsCommentable bool      `bson:"is_commentable"`
	CreateDate    time.Time `bson:"create_date"`
}

// QuestionView is the only outward representation of a question. ByUser is
// omitted from the output for anonymous questions.
type QuestionView struct {
	ID            string    `json:"id"`
	Text          string    `json:"text"`
	Answer        *string   `json:"answer,omitempty"`
	ToUser        string    `json:"to_user"`
	ByUser        string    `json:"by_user,omitempty"`
	IsAnonym      bool      `json:"is_anonym"`
	IsDisplayable bool      `json:"is_displayable"`
	IsCommentable bool      `json:"is_commentable"`
	CreateDate    time.Time `json:"create_date"`
}

// UserQuestions groups the questions a user received and asked.
type UserQuestions struct {
	Received []QuestionView `json:"received"`
	Asked    []QuestionView `json:"asked"`
}

// AskRequest is the body of the ask operation.
type AskRequest struct {
	Text     string `json:"text"`
	ToUser   string `json:"to_user"`
	IsAnonym bool   `json:"is_anonym"`
}

// QuestionUpdate is a partial update by the receiver. Nil fields are left
// untouched.
type QuestionUpdate struct {
	Answer        *string `json:"answer,omitempty"`
	IsDisplayable *bool   `json:"is_displayable,omitempty"`
	IsCommentable *bool   `json:"is_commentable,omitempty"`
}

// IsEmpty reports whether the update carries no field.
func (u QuestionUpdate) IsEmpty() bool {
	return u.Answer == nil && u.IsDisplayable == nil && u.IsCommentable == nil
}

// QuestionFilter selects questions in list queries. Empty fields do not
// constrain the result.
type QuestionFilter struct {
	ToUser          string
	ByUser          string
	DisplayableOnly bool
}
