package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-ask-box/internal/config"
	"github.com/MKhiriev/go-ask-box/internal/logger"
	"github.com/MKhiriev/go-ask-box/models"
)

const profileQuestionsKeyPrefix = "askbox:profile_questions:"

// RedisQuestionCache stores public profile listings in Redis as JSON.
type RedisQuestionCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

// NewRedisQuestionCache connects to cfg.RedisURL and pings it.
func NewRedisQuestionCache(ctx context.Context, cfg config.Cache, log *logger.Logger) (*RedisQuestionCache, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		log.Err(err).Str("func", "NewRedisQuestionCache").Msg("error connecting redis (ping)")
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Info().Str("func", "NewRedisQuestionCache").Str("addr", opts.Addr).Msg("connected to redis successfully")

	return &RedisQuestionCache{client: client, ttl: cfg.TTL, logger: log}, nil
}

func profileQuestionsKey(userID string) string {
	return profileQuestionsKeyPrefix + userID
}

func (c *RedisQuestionCache) GetProfileQuestions(ctx context.Context, userID string) ([]models.QuestionView, error) {
	raw, err := c.client.Get(ctx, profileQuestionsKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}

	return decodeQuestionViews(raw)
}

func (c *RedisQuestionCache) SetProfileQuestions(ctx context.Context, userID string, questions []models.QuestionView) error {
	raw, err := encodeQuestionViews(questions)
	if err != nil {
		return err
	}

	if err = c.client.Set(ctx, profileQuestionsKey(userID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}

	return nil
}

func (c *RedisQuestionCache) InvalidateProfileQuestions(ctx context.Context, userID string) error {
	if err := c.client.Del(ctx, profileQuestionsKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}

	return nil
}

func (c *RedisQuestionCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisQuestionCache) Close() error {
	return c.client.Close()
}

func encodeQuestionViews(questions []models.QuestionView) ([]byte, error) {
	if questions == nil {
		questions = []models.QuestionView{}
	}

	raw, err := json.Marshal(questions)
	if err != nil {
		return nil, fmt.Errorf("encode cached questions: %w", err)
	}

	return raw, nil
}

func decodeQuestionViews(raw []byte) ([]models.QuestionView, error) {
	var questions []models.QuestionView
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, fmt.Errorf("decode cached questions: %w", err)
	}

	return questions, nil
}
