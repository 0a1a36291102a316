package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"workjunction-backend/internal/api/handlers"
	"workjunction-backend/internal/database/models"
	apperrors "workjunction-backend/internal/errors"
	"workjunction-backend/internal/mocks"
	"workjunction-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// WorkerHandlerTestSuite defines the test suite for WorkerHandler
type WorkerHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockWorker   *mocks.MockWorkerServiceInterface
	handler      *handlers.WorkerHandler
	router       *gin.Engine
	authedUserID uuid.UUID
}

// SetupTest sets up the test suite
func (suite *WorkerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockWorker = mocks.NewMockWorkerServiceInterface(suite.ctrl)
	suite.handler = handlers.NewWorkerHandler(suite.mockWorker)
	suite.authedUserID = uuid.New()

	suite.router = gin.New()
	suite.router.GET("/workers", suite.handler.ListWorkers)
	suite.router.GET("/workers/:id", suite.handler.GetWorker)
	suite.router.GET("/workers/:id/services", suite.handler.ListServices)

	authed := suite.router.Group("", func(c *gin.Context) {
		c.Set("user_id", suite.authedUserID.String())
		c.Next()
	})
	authed.GET("/workers/me", suite.handler.GetMyProfile)
	authed.PUT("/workers/me", suite.handler.UpdateMyProfile)
	authed.PUT("/workers/me/services/:serviceId", suite.handler.UpdateService)
	authed.DELETE("/workers/me/services/:serviceId", suite.handler.RemoveService)
	authed.POST("/workers/me/documents", suite.handler.SubmitDocument)
	authed.POST("/agent/workers/:id/review", suite.handler.ReviewWorker)
}

// TearDownTest cleans up after each test
func (suite *WorkerHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *WorkerHandlerTestSuite) TestListWorkers_PassesFilters() {
	suite.mockWorker.EXPECT().
		List(service.WorkerFilterRequest{City: "Leeds", Category: "plumbing"}, 2, 10).
		Return(&service.WorkerListResponse{
			Workers:  []service.WorkerResponse{},
			Total:    0,
			Page:     2,
			PageSize: 10,
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/workers?city=Leeds&category=plumbing&page=2&page_size=10", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *WorkerHandlerTestSuite) TestGetWorker_Success() {
	workerID := uuid.New()
	suite.mockWorker.EXPECT().
		GetByID(workerID).
		Return(&service.WorkerResponse{
			ID:                 workerID,
			City:               "Leeds",
			VerificationStatus: models.VerificationStatusVerified,
			AvailabilityStatus: models.AvailabilityStatusAvailable,
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/workers/"+workerID.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.WorkerResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), workerID, got.ID)
	assert.Equal(suite.T(), models.VerificationStatusVerified, got.VerificationStatus)
}

func (suite *WorkerHandlerTestSuite) TestGetWorker_BadID() {
	req := httptest.NewRequest(http.MethodGet, "/workers/not-a-uuid", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *WorkerHandlerTestSuite) TestGetWorker_NotFound() {
	workerID := uuid.New()
	suite.mockWorker.EXPECT().
		GetByID(workerID).
		Return(nil, apperrors.ErrWorkerNotFound)

	req := httptest.NewRequest(http.MethodGet, "/workers/"+workerID.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *WorkerHandlerTestSuite) TestGetMyProfile_Success() {
	suite.mockWorker.EXPECT().
		GetByUserID(suite.authedUserID).
		Return(&service.WorkerResponse{ID: uuid.New(), UserID: suite.authedUserID}, nil)

	req := httptest.NewRequest(http.MethodGet, "/workers/me", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *WorkerHandlerTestSuite) TestUpdateMyProfile_Success() {
	suite.mockWorker.EXPECT().
		UpdateProfile(suite.authedUserID, gomock.Any()).
		Return(&service.WorkerResponse{ID: uuid.New(), City: "Manchester"}, nil)

	body, _ := json.Marshal(gin.H{"city": "Manchester"})
	req := httptest.NewRequest(http.MethodPut, "/workers/me", bytes.NewReader(body))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *WorkerHandlerTestSuite) TestUpdateService_ForeignOwner() {
	serviceID := uuid.New()
	suite.mockWorker.EXPECT().
		UpdateService(suite.authedUserID, serviceID, gomock.Any()).
		Return(nil, apperrors.NewAuthorizationError("service belongs to another worker"))

	body, _ := json.Marshal(gin.H{"name": "Boiler repair"})
	req := httptest.NewRequest(http.MethodPut, "/workers/me/services/"+serviceID.String(), bytes.NewReader(body))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

func (suite *WorkerHandlerTestSuite) TestRemoveService_Success() {
	serviceID := uuid.New()
	suite.mockWorker.EXPECT().
		RemoveService(suite.authedUserID, serviceID).
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/workers/me/services/"+serviceID.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *WorkerHandlerTestSuite) TestSubmitDocument_Success() {
	suite.mockWorker.EXPECT().
		SubmitDocument(suite.authedUserID, gomock.Any()).
		Return(&service.DocumentResponse{
			ID:   uuid.New(),
			Type: models.DocumentTypeIdentity,
		}, nil)

	body, _ := json.Marshal(gin.H{"type": "identity", "reference": "passport-scan-001"})
	req := httptest.NewRequest(http.MethodPost, "/workers/me/documents", bytes.NewReader(body))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

func (suite *WorkerHandlerTestSuite) TestReviewWorker_Success() {
	workerID := uuid.New()
	suite.mockWorker.EXPECT().
		Review(workerID, gomock.Any()).
		Return(&service.WorkerResponse{
			ID:                 workerID,
			VerificationStatus: models.VerificationStatusVerified,
		}, nil)

	body, _ := json.Marshal(gin.H{"status": "verified", "note": "documents check out"})
	req := httptest.NewRequest(http.MethodPost, "/agent/workers/"+workerID.String()+"/review", bytes.NewReader(body))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.WorkerResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), models.VerificationStatusVerified, got.VerificationStatus)
}

func (suite *WorkerHandlerTestSuite) TestReviewWorker_NonFinalStatus() {
	workerID := uuid.New()
	suite.mockWorker.EXPECT().
		Review(workerID, gomock.Any()).
		Return(nil, apperrors.NewValidationError("status", "must be verified or rejected"))

	body, _ := json.Marshal(gin.H{"status": "pending"})
	req := httptest.NewRequest(http.MethodPost, "/agent/workers/"+workerID.String()+"/review", bytes.NewReader(body))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestWorkerHandlerTestSuite runs the test suite
func TestWorkerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WorkerHandlerTestSuite))
}
