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
	"workjunction-backend/internal/schedule"
	"workjunction-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AvailabilityHandlerTestSuite defines the test suite for AvailabilityHandler
type AvailabilityHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockAvailability *mocks.MockAvailabilityServiceInterface
	handler          *handlers.AvailabilityHandler
	router           *gin.Engine
	authedUserID     uuid.UUID
	resolvedWorkerID uuid.UUID
}

// SetupTest sets up the test suite
func (suite *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAvailability = mocks.NewMockAvailabilityServiceInterface(suite.ctrl)
	suite.handler = handlers.NewAvailabilityHandler(suite.mockAvailability)
	suite.authedUserID = uuid.New()
	suite.resolvedWorkerID = uuid.New()

	suite.router = gin.New()
	authed := suite.router.Group("", func(c *gin.Context) {
		c.Set("user_id", suite.authedUserID.String())
		c.Next()
	})
	authed.PUT("/workers/me/timetable", suite.handler.ReplaceMyTimetable)
	authed.GET("/workers/me/timetable", suite.handler.GetMyTimetable)
	authed.POST("/workers/me/non-availability", suite.handler.AddNonAvailability)
	authed.DELETE("/workers/me/non-availability/:slotId", suite.handler.RemoveNonAvailability)
	authed.PATCH("/workers/me/status", suite.handler.SetMyStatus)
	suite.router.GET("/workers/:id/availability", suite.handler.GetWorkerAvailability)
}

// TearDownTest cleans up after each test
func (suite *AvailabilityHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AvailabilityHandlerTestSuite) expectProfileLookup() {
	suite.mockAvailability.EXPECT().
		ProfileIDForUser(suite.authedUserID).
		Return(suite.resolvedWorkerID, nil)
}

func (suite *AvailabilityHandlerTestSuite) TestReplaceMyTimetable_Success() {
	suite.expectProfileLookup()

	timetable := models.NewWeeklyTimetable()
	timetable[models.Monday] = []models.TimeInterval{{Start: "09:00", End: "17:00"}}
	resp := &service.TimetableResponse{
		Timetable: timetable,
		FlatSlots: []schedule.FlatWeeklySlot{{ID: "monday-0", Day: string(models.Monday), StartTime: "09:00", EndTime: "17:00"}},
	}
	suite.mockAvailability.EXPECT().
		ReplaceTimetable(suite.resolvedWorkerID, gomock.Any()).
		Return(resp, nil)

	body, _ := json.Marshal(gin.H{"timetable": gin.H{"Monday": []gin.H{{"start": "09:00", "end": "17:00"}}}})
	req := httptest.NewRequest(http.MethodPut, "/workers/me/timetable", bytes.NewReader(body))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.TimetableResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(suite.T(), got.FlatSlots, 1)
	assert.Equal(suite.T(), "monday-0", got.FlatSlots[0].ID)
}

func (suite *AvailabilityHandlerTestSuite) TestReplaceMyTimetable_ValidationError() {
	suite.expectProfileLookup()

	suite.mockAvailability.EXPECT().
		ReplaceTimetable(suite.resolvedWorkerID, gomock.Any()).
		Return(nil, apperrors.NewValidationError("Monday[0].start", "must be a zero-padded 24-hour HH:MM time"))

	body, _ := json.Marshal(gin.H{"timetable": gin.H{"Monday": []gin.H{{"start": "9:00", "end": "17:00"}}}})
	req := httptest.NewRequest(http.MethodPut, "/workers/me/timetable", bytes.NewReader(body))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *AvailabilityHandlerTestSuite) TestReplaceMyTimetable_NoProfile() {
	suite.mockAvailability.EXPECT().
		ProfileIDForUser(suite.authedUserID).
		Return(uuid.Nil, apperrors.ErrWorkerNotFound)

	body, _ := json.Marshal(gin.H{"timetable": gin.H{}})
	req := httptest.NewRequest(http.MethodPut, "/workers/me/timetable", bytes.NewReader(body))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *AvailabilityHandlerTestSuite) TestAddNonAvailability_Conflict() {
	suite.expectProfileLookup()

	suite.mockAvailability.EXPECT().
		AddNonAvailability(suite.resolvedWorkerID, gomock.Any()).
		Return(nil, apperrors.NewConflictError("window overlaps an existing non-availability slot"))

	body, _ := json.Marshal(gin.H{
		"start_date_time": "2026-09-07T12:00:00Z",
		"end_date_time":   "2026-09-07T13:00:00Z",
	})
	req := httptest.NewRequest(http.MethodPost, "/workers/me/non-availability", bytes.NewReader(body))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *AvailabilityHandlerTestSuite) TestRemoveNonAvailability_Success() {
	suite.expectProfileLookup()

	slotID := uuid.New()
	suite.mockAvailability.EXPECT().
		RemoveNonAvailability(suite.resolvedWorkerID, slotID).
		Return(&service.NonAvailabilityListResponse{Slots: models.NonAvailabilitySlots{}}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/workers/me/non-availability/"+slotID.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *AvailabilityHandlerTestSuite) TestRemoveNonAvailability_BadSlotID() {
	suite.expectProfileLookup()

	req := httptest.NewRequest(http.MethodDelete, "/workers/me/non-availability/not-a-uuid", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *AvailabilityHandlerTestSuite) TestGetWorkerAvailability_Success() {
	workerID := uuid.New()
	suite.mockAvailability.EXPECT().
		Resolve(workerID, "2026-09-07").
		Return(&service.AvailabilityResponse{
			Date:      "2026-09-07",
			Weekday:   models.Monday,
			Status:    models.AvailabilityStatusAvailable,
			Regular:   []models.TimeInterval{{Start: "09:00", End: "17:00"}},
			Effective: []models.TimeInterval{},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/workers/"+workerID.String()+"/availability?date=2026-09-07", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.AvailabilityResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), models.Monday, got.Weekday)
	assert.Empty(suite.T(), got.Effective)
}

func (suite *AvailabilityHandlerTestSuite) TestGetWorkerAvailability_MissingDate() {
	workerID := uuid.New()
	suite.mockAvailability.EXPECT().
		Resolve(workerID, "").
		Return(nil, apperrors.NewValidationError("date", "is required"))

	req := httptest.NewRequest(http.MethodGet, "/workers/"+workerID.String()+"/availability", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *AvailabilityHandlerTestSuite) TestSetMyStatus_Success() {
	suite.expectProfileLookup()

	suite.mockAvailability.EXPECT().
		SetStatus(suite.resolvedWorkerID, gomock.Any()).
		Return(&service.StatusResponse{Status: models.AvailabilityStatusOffDuty}, nil)

	body, _ := json.Marshal(gin.H{"status": "off-duty"})
	req := httptest.NewRequest(http.MethodPatch, "/workers/me/status", bytes.NewReader(body))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.StatusResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), models.AvailabilityStatusOffDuty, got.Status)
}

// TestAvailabilityHandlerTestSuite runs the test suite
func TestAvailabilityHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}
