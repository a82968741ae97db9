package repository

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sbindex/internal/model"
)

// KnowledgeRepo handles MongoDB operations for collected blog/youtube content
type KnowledgeRepo interface {
	Upsert(ctx context.Context, row *model.KnowledgeRow) (inserted bool, err error)
	Search(ctx context.Context, sourceType string, keywords []string, limit int64) ([]model.KnowledgeRow, error)
	Count(ctx context.Context) (int64, error)
}

type knowledgeRepo struct {
	collection *mongo.Collection
}

// NewKnowledgeRepo creates a new knowledge repository
func NewKnowledgeRepo(db *mongo.Database) KnowledgeRepo {
	return &knowledgeRepo{
		collection: db.Collection("knowledge"),
	}
}

// Upsert inserts a row unless its URL is already stored
func (r *knowledgeRepo) Upsert(ctx context.Context, row *model.KnowledgeRow) (bool, error) {
	row.CreatedAt = time.Now()

	update := bson.M{"$setOnInsert": bson.M{
		"sourceType": row.SourceType,
		"title":      row.Title,
		"content":    row.Content,
		"url":        row.URL,
		"createdAt":  row.CreatedAt,
	}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"url": row.URL}, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, err
	}
	if oid, ok := result.UpsertedID.(primitive.ObjectID); ok {
		row.ID = oid.Hex()
		return true, nil
	}
	return false, nil
}

// Search returns rows of one source type whose title or content mentions any
// of the keywords, most recent first.
func (r *knowledgeRepo) Search(ctx context.Context, sourceType string, keywords []string, limit int64) ([]model.KnowledgeRow, error) {
	if len(keywords) == 0 {
		return nil, nil
	}

	var clauses []bson.M
	for _, kw := range keywords {
		pattern := regexp.QuoteMeta(kw)
		clauses = append(clauses,
			bson.M{"title": bson.M{"$regex": pattern}},
			bson.M{"content": bson.M{"$regex": pattern}},
		)
	}
	filter := bson.M{"sourceType": sourceType, "$or": clauses}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []model.KnowledgeRow
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *knowledgeRepo) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
