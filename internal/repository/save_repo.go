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

// SurveySaveRepo handles MongoDB operations for stored survey responses
type SurveySaveRepo interface {
	Create(ctx context.Context, save *model.SurveySave) (string, error)
	ListByUser(ctx context.Context, userEmail string) ([]*model.SurveySave, error)
	GetByID(ctx context.Context, userEmail, id string) (*model.SurveySave, error)
}

type surveySaveRepo struct {
	collection *mongo.Collection
}

// NewSurveySaveRepo creates a new survey save repository
func NewSurveySaveRepo(db *mongo.Database) SurveySaveRepo {
	return &surveySaveRepo{
		collection: db.Collection("survey_saves"),
	}
}

func (r *surveySaveRepo) Create(ctx context.Context, save *model.SurveySave) (string, error) {
	save.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, save)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	save.ID = oid.Hex()
	return save.ID, nil
}

func (r *surveySaveRepo) ListByUser(ctx context.Context, userEmail string) ([]*model.SurveySave, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userEmail": userEmail}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var saves []*model.SurveySave
	if err = cursor.All(ctx, &saves); err != nil {
		return nil, err
	}
	return saves, nil
}

func (r *surveySaveRepo) GetByID(ctx context.Context, userEmail, id string) (*model.SurveySave, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var save model.SurveySave
	err = r.collection.FindOne(ctx, bson.M{"_id": oid, "userEmail": userEmail}).Decode(&save)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &save, nil
}

// EEGSaveRepo handles MongoDB operations for stored EEG captures
type EEGSaveRepo interface {
	Create(ctx context.Context, save *model.EEGSave) (string, error)
	ListByUser(ctx context.Context, userEmail string) ([]*model.EEGSave, error)
	GetByID(ctx context.Context, userEmail, id string) (*model.EEGSave, error)
}

type eegSaveRepo struct {
	collection *mongo.Collection
}

// NewEEGSaveRepo creates a new EEG save repository
func NewEEGSaveRepo(db *mongo.Database) EEGSaveRepo {
	return &eegSaveRepo{
		collection: db.Collection("eeg_saves"),
	}
}

func (r *eegSaveRepo) Create(ctx context.Context, save *model.EEGSave) (string, error) {
	save.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, save)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	save.ID = oid.Hex()
	return save.ID, nil
}

func (r *eegSaveRepo) ListByUser(ctx context.Context, userEmail string) ([]*model.EEGSave, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userEmail": userEmail}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var saves []*model.EEGSave
	if err = cursor.All(ctx, &saves); err != nil {
		return nil, err
	}
	return saves, nil
}

func (r *eegSaveRepo) GetByID(ctx context.Context, userEmail, id string) (*model.EEGSave, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var save model.EEGSave
	err = r.collection.FindOne(ctx, bson.M{"_id": oid, "userEmail": userEmail}).Decode(&save)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &save, nil
}
