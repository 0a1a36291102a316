//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"workjunction-backend/internal/database/models"
	"workjunction-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// WorkerRepositoryTestSuite tests the WorkerRepository
type WorkerRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *WorkerRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *WorkerRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewWorkerRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *WorkerRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *WorkerRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *WorkerRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to create and persist a user with the worker role
func (suite *WorkerRepositoryTestSuite) createUser() *models.User {
	user := suite.factories.User.WithRole(models.UserRoleWorker)
	userRepo := NewUserRepository(suite.baseTestSuite.DB)
	err := userRepo.Create(user)
	suite.NoError(err)
	return user
}

// helper to create and persist a worker profile
func (suite *WorkerRepositoryTestSuite) createWorker() *models.WorkerProfile {
	user := suite.createUser()
	worker := suite.factories.Worker.WithUser(user.ID)
	err := suite.repo.Create(worker)
	suite.NoError(err)
	return worker
}

// TestCreate tests creating a new worker profile
func (suite *WorkerRepositoryTestSuite) TestCreate() {
	user := suite.createUser()
	worker := suite.factories.Worker.WithUser(user.ID)

	err := suite.repo.Create(worker)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, worker.ID)
	suite.NotZero(worker.CreatedAt)
}

// TestGetByID tests retrieving a worker profile by ID
func (suite *WorkerRepositoryTestSuite) TestGetByID() {
	worker := suite.createWorker()

	retrieved, err := suite.repo.GetByID(worker.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(worker.ID, retrieved.ID)
	suite.Equal(worker.UserID, retrieved.UserID)
	suite.Equal(models.AvailabilityStatusAvailable, retrieved.AvailabilityStatus)
}

// TestGetByIDNotFound tests retrieving a non-existent worker profile
func (suite *WorkerRepositoryTestSuite) TestGetByIDNotFound() {
	worker, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(worker)
}

// TestGetByUserID tests retrieving a worker profile by its owning user
func (suite *WorkerRepositoryTestSuite) TestGetByUserID() {
	worker := suite.createWorker()

	retrieved, err := suite.repo.GetByUserID(worker.UserID)

	suite.NoError(err)
	suite.Equal(worker.ID, retrieved.ID)
}

// TestReplaceTimetableRoundTrip tests that a replaced timetable reads back identically
func (suite *WorkerRepositoryTestSuite) TestReplaceTimetableRoundTrip() {
	worker := suite.createWorker()

	timetable := models.NewWeeklyTimetable()
	timetable[models.Monday] = []models.TimeInterval{
		{Start: "09:00", End: "12:00"},
		{Start: "13:00", End: "17:00"},
	}
	timetable[models.Saturday] = []models.TimeInterval{{Start: "10:00", End: "14:00"}}

	err := suite.repo.ReplaceTimetable(worker.ID, timetable)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(worker.ID)
	suite.NoError(err)
	suite.Equal(timetable[models.Monday], retrieved.Timetable[models.Monday])
	suite.Equal(timetable[models.Saturday], retrieved.Timetable[models.Saturday])
	suite.Empty(retrieved.Timetable[models.Sunday])
}

// TestReplaceTimetableNotFound tests replacing a timetable for a missing worker
func (suite *WorkerRepositoryTestSuite) TestReplaceTimetableNotFound() {
	err := suite.repo.ReplaceTimetable(uuid.New(), models.NewWeeklyTimetable())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestReplaceNonAvailability tests persisting the exception list
func (suite *WorkerRepositoryTestSuite) TestReplaceNonAvailability() {
	worker := suite.createWorker()

	start := time.Now().Add(24 * time.Hour).Truncate(time.Second).UTC()
	slots := models.NonAvailabilitySlots{
		{ID: uuid.New(), StartDateTime: start, EndDateTime: start.Add(2 * time.Hour), Reason: "dentist"},
	}

	err := suite.repo.ReplaceNonAvailability(worker.ID, slots)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(worker.ID)
	suite.NoError(err)
	suite.Len(retrieved.NonAvailability, 1)
	suite.Equal(slots[0].ID, retrieved.NonAvailability[0].ID)
	suite.Equal("dentist", retrieved.NonAvailability[0].Reason)
	suite.True(slots[0].StartDateTime.Equal(retrieved.NonAvailability[0].StartDateTime))
}

// TestUpdateAvailabilityStatus tests setting the manual status flag
func (suite *WorkerRepositoryTestSuite) TestUpdateAvailabilityStatus() {
	worker := suite.createWorker()

	err := suite.repo.UpdateAvailabilityStatus(worker.ID, models.AvailabilityStatusBusy)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(worker.ID)
	suite.NoError(err)
	suite.Equal(models.AvailabilityStatusBusy, retrieved.AvailabilityStatus)
}

// TestUpdateVerification tests moving a worker through verification
func (suite *WorkerRepositoryTestSuite) TestUpdateVerification() {
	worker := suite.createWorker()

	err := suite.repo.UpdateVerification(worker.ID, models.VerificationStatusRejected, "document unreadable")
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(worker.ID)
	suite.NoError(err)
	suite.Equal(models.VerificationStatusRejected, retrieved.VerificationStatus)
	suite.Equal("document unreadable", retrieved.VerificationNote)
}

// TestGetByVerificationStatus tests listing workers in a verification state
func (suite *WorkerRepositoryTestSuite) TestGetByVerificationStatus() {
	worker := suite.createWorker()
	suite.NoError(suite.repo.UpdateVerification(worker.ID, models.VerificationStatusInReview, ""))

	workers, total, err := suite.repo.GetByVerificationStatus(models.VerificationStatusInReview, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(workers, 1)
	suite.Equal(worker.ID, workers[0].ID)
}

// TestGetAllWithFilter tests the filtered listing
func (suite *WorkerRepositoryTestSuite) TestGetAllWithFilter() {
	worker := suite.createWorker()

	workers, total, err := suite.repo.GetAll(WorkerFilter{City: worker.City}, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(workers, 1)

	workers, total, err = suite.repo.GetAll(WorkerFilter{City: "Nowhere"}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(0), total)
	suite.Empty(workers)
}

// TestWorkerRepositoryTestSuite runs the test suite
func TestWorkerRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(WorkerRepositoryTestSuite))
}
