package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/danandika/mhs-api/internal/app/models"
	"github.com/danandika/mhs-api/internal/pkg/apperrors"
)

// StudentRepository wraps the student record collection. Every operation is
// a single round trip: no transactions, no retry. A non-matching filter on
// FindOne, Update and Delete yields (nil, nil), not an error.
type StudentRepository struct {
	collection *mongo.Collection
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(collection *mongo.Collection) *StudentRepository {
	return &StudentRepository{
		collection: collection,
	}
}

// FindAll returns every record matching filter, fully materialized.
// An empty filter returns all records; there is no pagination.
func (r *StudentRepository) FindAll(ctx context.Context, filter bson.M) ([]*models.Student, error) {
	if filter == nil {
		filter = bson.M{}
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer cursor.Close(ctx)

	students := []*models.Student{}
	if err := cursor.All(ctx, &students); err != nil {
		return nil, fmt.Errorf("error decoding students: %w", err)
	}

	return students, nil
}

// FindOne returns the first record matching filter, with no ordering
// guarantee beyond what the store provides.
func (r *StudentRepository) FindOne(ctx context.Context, filter bson.M) (*models.Student, error) {
	student := &models.Student{}
	err := r.collection.FindOne(ctx, filter).Decode(student)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error finding student: %w", err)
	}

	return student, nil
}

// FindByID returns the record with the given identifier. A malformed
// identifier is an error, never an empty result.
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidStudentID, id)
	}

	return r.FindOne(ctx, bson.M{"_id": oid})
}

// Create inserts a new record and returns it with the generated identifier.
// A unique-index violation surfaces as ErrStudentAlreadyExists.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (*models.Student, error) {
	result, err := r.collection.InsertOne(ctx, student)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrStudentAlreadyExists
		}
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		student.ID = oid
	}

	return student, nil
}

// Update replaces only the named fields on the record with the given
// identifier and returns the updated record.
func (r *StudentRepository) Update(ctx context.Context, id string, fields bson.M) (*models.Student, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidStudentID, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	student := &models.Student{}
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": fields}, opts).Decode(student)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrStudentAlreadyExists
		}
		return nil, fmt.Errorf("error updating student: %w", err)
	}

	return student, nil
}

// Delete removes the record with the given identifier and returns it.
func (r *StudentRepository) Delete(ctx context.Context, id string) (*models.Student, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidStudentID, id)
	}

	student := &models.Student{}
	err = r.collection.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(student)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error deleting student: %w", err)
	}

	return student, nil
}
