package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sbindex/internal/model"
)

// DiagnosisRepo handles MongoDB operations for persisted diagnosis runs
type DiagnosisRepo interface {
	Create(ctx context.Context, record *model.DiagnosisRecord) (string, error)
	GetLatestByUser(ctx context.Context, userEmail string) (*model.DiagnosisRecord, error)
	ListByUser(ctx context.Context, userEmail string, limit int64) ([]*model.DiagnosisRecord, error)
}

type diagnosisRepo struct {
	collection *mongo.Collection
}

// NewDiagnosisRepo creates a new diagnosis repository
func NewDiagnosisRepo(db *mongo.Database) DiagnosisRepo {
	return &diagnosisRepo{
		collection: db.Collection("diagnoses"),
	}
}

func (r *diagnosisRepo) Create(ctx context.Context, record *model.DiagnosisRecord) (string, error) {
	record.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, record)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	record.ID = oid.Hex()
	return record.ID, nil
}

func (r *diagnosisRepo) GetLatestByUser(ctx context.Context, userEmail string) (*model.DiagnosisRecord, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var record model.DiagnosisRecord
	err := r.collection.FindOne(ctx, bson.M{"userEmail": userEmail}, opts).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *diagnosisRepo) ListByUser(ctx context.Context, userEmail string, limit int64) ([]*model.DiagnosisRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, bson.M{"userEmail": userEmail}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*model.DiagnosisRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
