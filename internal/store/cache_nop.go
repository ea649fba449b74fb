package store

import (
	"context"

	"github.com/MKhiriev/go-ask-box/models"
)

// nopQuestionCache is used when no cache is configured. Every lookup misses.
type nopQuestionCache struct{}

// NewNopQuestionCache returns a [QuestionCache] that stores nothing.
func NewNopQuestionCache() QuestionCache {
	return nopQuestionCache{}
}

func (nopQuestionCache) GetProfileQuestions(context.Context, string) ([]models.QuestionView, error) {
	return nil, ErrCacheMiss
}

func (nopQuestionCache) SetProfileQuestions(context.Context, string, []models.QuestionView) error {
	return nil
}

func (nopQuestionCache) InvalidateProfileQuestions(context.Context, string) error {
	return nil
}

func (nopQuestionCache) Ping(context.Context) error { return nil }

func (nopQuestionCache) Close() error { return nil }
