package service

import (
	"github.com/MKhiriev/go-ask-box/models"
)

type visibilityService struct{}

func NewVisibilityService() VisibilityService {
	return visibilityService{}
}

// ProjectQuestion lets anyone see a displayable question. A hidden one is
// shown only to its receiver.
func (v visibilityService) ProjectQuestion(q models.Question, viewer models.Principal) (models.QuestionView, error) {
	if !q.IsDisplayable && !(viewer.IsUser() && viewer.ID == q.ToUser) {
		return models.QuestionView{}, ErrUnauthorized
	}

	return v.RedactQuestion(q), nil
}

// RedactQuestion drops the asker of anonymous questions.
func (v visibilityService) RedactQuestion(q models.Question) models.QuestionView {
	view := models.QuestionView{
		ID:            q.ID,
		Text:          q.Text,
		Answer:        q.Answer,
		ToUser:        q.ToUser,
		IsAnonym:      q.IsAnonym,
		IsDisplayable: q.IsDisplayable,
		IsCommentable: q.IsCommentable,
		CreateDate:    q.CreateDate,
	}
	if !q.IsAnonym {
		view.ByUser = q.ByUser
	}

	return view
}

func redactAll(v VisibilityService, questions []models.Question) []models.QuestionView {
	views := make([]models.QuestionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, v.RedactQuestion(q))
	}
	return views
}
