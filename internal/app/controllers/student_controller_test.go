package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/danandika/mhs-api/internal/app/controllers"
	"github.com/danandika/mhs-api/internal/app/models"
	"github.com/danandika/mhs-api/internal/app/models/dto"
	"github.com/danandika/mhs-api/internal/app/routes"
	"github.com/danandika/mhs-api/internal/middleware"
	"github.com/danandika/mhs-api/internal/pkg/apperrors"
	"github.com/danandika/mhs-api/internal/pkg/auth"
)

// fakeStudentService scripts service behavior per test
type fakeStudentService struct {
	createFn func(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, string, error)
	listFn   func(ctx context.Context) ([]*models.Student, error)
	getFn    func(ctx context.Context, id string) (*models.Student, error)
	updateFn func(ctx context.Context, id string, req dto.UpdateStudentRequest) (*models.Student, error)
	deleteFn func(ctx context.Context, id string) (*models.Student, error)
}

func (f *fakeStudentService) Create(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, string, error) {
	return f.createFn(ctx, req)
}
func (f *fakeStudentService) List(ctx context.Context) ([]*models.Student, error) {
	return f.listFn(ctx)
}
func (f *fakeStudentService) Get(ctx context.Context, id string) (*models.Student, error) {
	return f.getFn(ctx, id)
}
func (f *fakeStudentService) Update(ctx context.Context, id string, req dto.UpdateStudentRequest) (*models.Student, error) {
	return f.updateFn(ctx, id, req)
}
func (f *fakeStudentService) Delete(ctx context.Context, id string) (*models.Student, error) {
	return f.deleteFn(ctx, id)
}

// envelope mirrors the wire shape for assertions
type envelope struct {
	Status      string          `json:"status"`
	Code        int             `json:"code"`
	Method      string          `json:"method"`
	Message     string          `json:"message"`
	Data        json.RawMessage `json:"data"`
	AccessToken string          `json:"access_token"`
}

func testJWT() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "controller-test-secret",
		Expiration:  24 * time.Hour,
		TokenIssuer: "mhs-api-test",
	})
}

func newTestRouter(svc *fakeStudentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	routes.SetupRouter(router,
		controllers.NewHomeController(),
		controllers.NewStudentController(svc),
		middleware.NewAuthMiddleware(testJWT()),
	)
	return router
}

func bearer(t *testing.T) string {
	t.Helper()
	token, err := testJWT().GenerateToken(primitive.NewObjectID().Hex(), "Budi Santoso")
	require.NoError(t, err)
	return "Bearer " + token
}

func doRequest(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestCreateReturnsTokenEnvelope(t *testing.T) {
	oid := primitive.NewObjectID()
	svc := &fakeStudentService{
		createFn: func(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, string, error) {
			return &models.Student{ID: oid, Name: req.Name, NPM: req.NPM, BID: req.BID, Fak: req.Fak}, "signed.jwt.token", nil
		},
	}

	rec := doRequest(newTestRouter(svc), http.MethodPost, "/mhs/create", "",
		dto.CreateStudentRequest{Name: "Budi Santoso", NPM: "1906398765", BID: "B-12", Fak: "Ilmu Komputer"})

	require.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, http.StatusCreated, env.Code)
	assert.Equal(t, http.MethodPost, env.Method)
	assert.Equal(t, "signed.jwt.token", env.AccessToken)
}

func TestCreateDuplicateReturnsConflictWithExistingRecord(t *testing.T) {
	existing := &models.Student{ID: primitive.NewObjectID(), Name: "Budi Santoso"}
	svc := &fakeStudentService{
		createFn: func(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, string, error) {
			return nil, "", apperrors.NewConflictError("student record already exists", existing)
		},
	}

	rec := doRequest(newTestRouter(svc), http.MethodPost, "/mhs/create", "",
		dto.CreateStudentRequest{Name: "Budi Santoso"})

	require.Equal(t, http.StatusConflict, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, http.StatusConflict, env.Code)

	var data models.Student
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, existing.ID, data.ID)
}

func TestCreateRejectsMalformedBody(t *testing.T) {
	svc := &fakeStudentService{
		createFn: func(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, string, error) {
			t.Fatal("service must not be reached on a malformed body")
			return nil, "", nil
		},
	}

	router := newTestRouter(svc)
	req := httptest.NewRequest(http.MethodPost, "/mhs/create", bytes.NewBufferString("{nope"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListRequiresToken(t *testing.T) {
	svc := &fakeStudentService{
		listFn: func(ctx context.Context) ([]*models.Student, error) {
			return []*models.Student{}, nil
		},
	}
	router := newTestRouter(svc)

	rec := doRequest(router, http.MethodGet, "/mhs/results", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(router, http.MethodGet, "/mhs/results", bearer(t), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetMalformedIDIsBadRequest(t *testing.T) {
	svc := &fakeStudentService{
		getFn: func(ctx context.Context, id string) (*models.Student, error) {
			return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidStudentID, id)
		},
	}

	rec := doRequest(newTestRouter(svc), http.MethodGet, "/mhs/result/not-a-hex-id", bearer(t), nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "error", env.Status)
}

func TestGetMissingRecordIsNotFound(t *testing.T) {
	svc := &fakeStudentService{
		getFn: func(ctx context.Context, id string) (*models.Student, error) {
			return nil, apperrors.ErrStudentNotFound
		},
	}

	rec := doRequest(newTestRouter(svc), http.MethodGet, "/mhs/result/"+primitive.NewObjectID().Hex(), bearer(t), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateReturnsUpdatedRecord(t *testing.T) {
	oid := primitive.NewObjectID()
	svc := &fakeStudentService{
		updateFn: func(ctx context.Context, id string, req dto.UpdateStudentRequest) (*models.Student, error) {
			require.Equal(t, oid.Hex(), id)
			return &models.Student{ID: oid, Name: *req.Name}, nil
		},
	}

	name := "Siti Aminah"
	rec := doRequest(newTestRouter(svc), http.MethodPut, "/mhs/update/"+oid.Hex(), bearer(t),
		dto.UpdateStudentRequest{Name: &name})

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)

	var data models.Student
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "Siti Aminah", data.Name)
}

func TestDeleteReturnsDeletedRecord(t *testing.T) {
	oid := primitive.NewObjectID()
	svc := &fakeStudentService{
		deleteFn: func(ctx context.Context, id string) (*models.Student, error) {
			return &models.Student{ID: oid, Name: "Budi Santoso"}, nil
		},
	}

	rec := doRequest(newTestRouter(svc), http.MethodDelete, "/mhs/delete/"+oid.Hex(), bearer(t), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, http.MethodDelete, env.Method)
}

func TestExpiredTokenIsUnauthorized(t *testing.T) {
	expired := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "controller-test-secret",
		Expiration:  -time.Minute,
		TokenIssuer: "mhs-api-test",
	})
	token, err := expired.GenerateToken(primitive.NewObjectID().Hex(), "Budi Santoso")
	require.NoError(t, err)

	svc := &fakeStudentService{
		listFn: func(ctx context.Context) ([]*models.Student, error) { return nil, nil },
	}

	rec := doRequest(newTestRouter(svc), http.MethodGet, "/mhs/results", "Bearer "+token, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "token expired", env.Message)
}
