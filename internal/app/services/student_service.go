package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/danandika/mhs-api/internal/app/models"
	"github.com/danandika/mhs-api/internal/app/models/dto"
	"github.com/danandika/mhs-api/internal/pkg/apperrors"
	"github.com/danandika/mhs-api/internal/pkg/auth"
)

// StudentStore is the data accessor contract the service depends on
type StudentStore interface {
	FindAll(ctx context.Context, filter bson.M) ([]*models.Student, error)
	FindOne(ctx context.Context, filter bson.M) (*models.Student, error)
	FindByID(ctx context.Context, id string) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) (*models.Student, error)
	Update(ctx context.Context, id string, fields bson.M) (*models.Student, error)
	Delete(ctx context.Context, id string) (*models.Student, error)
}

// StudentService defines the interface for student record operations
type StudentService interface {
	Create(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, string, error)
	List(ctx context.Context) ([]*models.Student, error)
	Get(ctx context.Context, id string) (*models.Student, error)
	Update(ctx context.Context, id string, req dto.UpdateStudentRequest) (*models.Student, error)
	Delete(ctx context.Context, id string) (*models.Student, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	store      StudentStore
	jwtService *auth.JWTService
}

// NewStudentService creates a new student service instance
func NewStudentService(store StudentStore, jwtService *auth.JWTService) StudentService {
	return &studentServiceImpl{
		store:      store,
		jwtService: jwtService,
	}
}

// Create checks the full tuple for an existing record, inserts the new one
// and issues an access token bound to its id and name. A duplicate tuple is
// reported as a conflict carrying the existing record.
func (s *studentServiceImpl) Create(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, string, error) {
	filter := bson.M{
		"name": req.Name,
		"npm":  req.NPM,
		"bid":  req.BID,
		"fak":  req.Fak,
	}

	existing, err := s.store.FindOne(ctx, filter)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", apperrors.NewConflictError("student record already exists", existing)
	}

	student := &models.Student{
		Name: req.Name,
		NPM:  req.NPM,
		BID:  req.BID,
		Fak:  req.Fak,
	}

	created, err := s.store.Create(ctx, student)
	if err != nil {
		// A concurrent create can slip past the existence check; the unique
		// index catches it and we report the same conflict shape.
		if apperrors.Is(err, apperrors.ErrStudentAlreadyExists) {
			winner, findErr := s.store.FindOne(ctx, filter)
			if findErr == nil && winner != nil {
				return nil, "", apperrors.NewConflictError("student record already exists", winner)
			}
			return nil, "", apperrors.NewConflictError("student record already exists", nil)
		}
		return nil, "", err
	}

	token, err := s.jwtService.GenerateToken(created.ID.Hex(), created.Name)
	if err != nil {
		return nil, "", err
	}

	return created, token, nil
}

// List returns all student records
func (s *studentServiceImpl) List(ctx context.Context) ([]*models.Student, error) {
	return s.store.FindAll(ctx, bson.M{})
}

// Get returns the record with the given identifier
func (s *studentServiceImpl) Get(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

// Update replaces only the fields named in the request
func (s *studentServiceImpl) Update(ctx context.Context, id string, req dto.UpdateStudentRequest) (*models.Student, error) {
	fields := bson.M{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.NPM != nil {
		fields["npm"] = *req.NPM
	}
	if req.BID != nil {
		fields["bid"] = *req.BID
	}
	if req.Fak != nil {
		fields["fak"] = *req.Fak
	}

	// Nothing to set: an empty $set is rejected by the store, so this
	// degenerates to a lookup.
	if len(fields) == 0 {
		return s.Get(ctx, id)
	}

	student, err := s.store.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

// Delete removes the record with the given identifier and returns it
func (s *studentServiceImpl) Delete(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}
