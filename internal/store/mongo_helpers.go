package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// wrapMongoError converts driver errors into store sentinels. notFound is
// returned for mongo.ErrNoDocuments.
func wrapMongoError(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return notFound
	}
	if mongo.IsDuplicateKeyError(err) {
		switch classifyUniqueColumn(duplicateKeyDescription(err)) {
		case EmailTaken:
			return ErrEmailAlreadyExists
		case UsernameTaken:
			return ErrUsernameAlreadyExists
		}
	}

	return fmt.Errorf("unexpected DB error: %w", err)
}

// duplicateKeyDescription returns the server messages of a duplicate key
// error, which name the violated index.
func duplicateKeyDescription(err error) string {
	var messages []string

	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			messages = append(messages, e.Message)
		}
	}

	var ce mongo.CommandError
	if errors.As(err, &ce) {
		messages = append(messages, ce.Message)
	}

	if len(messages) == 0 {
		messages = append(messages, err.Error())
	}

	return strings.Join(messages, " ")
}

func findOne[T any](ctx context.Context, col *mongo.Collection, filter bson.D, notFound error) (T, error) {
	var result T
	if err := col.FindOne(ctx, filter).Decode(&result); err != nil {
		return result, wrapMongoError(err, notFound)
	}

	return result, nil
}

func findMany[T any](ctx context.Context, col *mongo.Collection, filter bson.D, opts ...options.Lister[options.FindOptions]) ([]T, error) {
	cursor, err := col.Find(ctx, filter, opts...)
	if err != nil {
		return nil, wrapMongoError(err, nil)
	}
	defer cursor.Close(ctx)

	results := make([]T, 0)
	for cursor.Next(ctx) {
		var item T
		if err := cursor.Decode(&item); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		results = append(results, item)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

func insertOne(ctx context.Context, col *mongo.Collection, doc any) error {
	_, err := col.InsertOne(ctx, doc)
	return wrapMongoError(err, nil)
}

// updateByID applies update to the document with id and returns the new
// version of it.
func updateByID[T any](ctx context.Context, col *mongo.Collection, id string, update bson.D, notFound error) (T, error) {
	var result T
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := col.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).Decode(&result)
	if err != nil {
		return result, wrapMongoError(err, notFound)
	}

	return result, nil
}

// deleteByID removes the document with id and returns it.
func deleteByID[T any](ctx context.Context, col *mongo.Collection, id string, notFound error) (T, error) {
	var result T
	if err := col.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&result); err != nil {
		return result, wrapMongoError(err, notFound)
	}

	return result, nil
}

// setUnset assembles an update document from the non-empty parts.
func setUnset(set, unset bson.D) bson.D {
	update := bson.D{}
	if len(set) > 0 {
		update = append(update, bson.E{Key: "$set", Value: set})
	}
	if len(unset) > 0 {
		update = append(update, bson.E{Key: "$unset", Value: unset})
	}

	return update
}

func newestFirst() *options.FindOptionsBuilder {
	return options.Find().SetSort(bson.D{{Key: "create_date", Value: -1}})
}
