// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/MKhiriev/go-ask-box/internal/config"
	"github.com/MKhiriev/go-ask-box/internal/logger"
)

const (
	colAdmins    = "admins"
	colUsers     = "users"
	colQuestions = "questions"

	defaultMongoDatabase = "askbox"
)

// MongoStore is the MongoDB document store backing the mongo_* repositories.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
	logger *logger.Logger
}

// NewConnectMongo connects to the MongoDB deployment in cfg.DSN, pings it
// and creates the unique and lookup indexes. The database name is taken
// from the DSN path and defaults to "askbox".
func NewConnectMongo(ctx context.Context, cfg config.DB, log *logger.Logger) (*MongoStore, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting mongo")
		return nil, fmt.Errorf("mongo connect failed: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err = client.Ping(pingCtx, nil); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting mongo (ping)")
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping failed: %w", err)
	}

	s := &MongoStore{
		client: client,
		db:     client.Database(mongoDatabaseName(cfg.DSN)),
		logger: log,
	}

	if err = s.ensureIndexes(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error creating mongo indexes")
		_ = client.Disconnect(ctx)
		return nil, err
	}
	log.Info().Str("func", "NewConnectMongo").Msg("connected to mongo successfully")

	return s, nil
}

func mongoDatabaseName(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil {
		return defaultMongoDatabase
	}

	if name := strings.Trim(u.Path, "/"); name != "" {
		return name
	}

	return defaultMongoDatabase
}

// Ping implements backend.
func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// Close implements backend.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) col(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// ensureIndexes creates the uniqueness guarantees the directory relies on.
// Index names carry the column so duplicate key errors can be classified.
func (s *MongoStore) ensureIndexes(ctx context.Context) error {
	onlyStrings := func(field string) bson.D {
		return bson.D{{Key: field, Value: bson.D{{Key: "$type", Value: "string"}}}}
	}

	indexes := []struct {
		col   string
		model mongo.IndexModel
	}{
		{colAdmins, mongo.IndexModel{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("admins_username_key"),
		}},
		{colAdmins, mongo.IndexModel{
			Keys: bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("admins_email_key").
				SetPartialFilterExpression(onlyStrings("email")),
		}},
		{colUsers, mongo.IndexModel{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("users_username_key"),
		}},
		{colUsers, mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("users_email_key"),
		}},
		{colQuestions, mongo.IndexModel{
			Keys: bson.D{{Key: "to_user", Value: 1}, {Key: "create_date", Value: -1}},
		}},
		{colQuestions, mongo.IndexModel{
			Keys: bson.D{{Key: "by_user", Value: 1}, {Key: "create_date", Value: -1}},
		}},
	}

	for _, idx := range indexes {
		if _, err := s.col(idx.col).Indexes().CreateOne(ctx, idx.model); err != nil {
			return fmt.Errorf("mongo ensure index on %s: %w", idx.col, err)
		}
	}

	return nil
}
