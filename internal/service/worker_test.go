package service_test

import (
	"testing"

	"workjunction-backend/internal/database/models"
	apperrors "workjunction-backend/internal/errors"
	"workjunction-backend/internal/mocks"
	"workjunction-backend/internal/repository"
	"workjunction-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// WorkerServiceTestSuite defines the test suite for WorkerService
type WorkerServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	workerRepo  *mocks.MockWorkerRepositoryInterface
	serviceRepo *mocks.MockWorkerServiceRepositoryInterface
	docRepo     *mocks.MockDocumentRepositoryInterface
	svc         *service.WorkerService
}

// SetupTest sets up the test suite
func (suite *WorkerServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.workerRepo = mocks.NewMockWorkerRepositoryInterface(suite.ctrl)
	suite.serviceRepo = mocks.NewMockWorkerServiceRepositoryInterface(suite.ctrl)
	suite.docRepo = mocks.NewMockDocumentRepositoryInterface(suite.ctrl)
	suite.svc = service.NewWorkerService(suite.workerRepo, suite.serviceRepo, suite.docRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *WorkerServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *WorkerServiceTestSuite) TestListOnlyShowsVerifiedWorkers() {
	suite.workerRepo.EXPECT().
		GetAll(repository.WorkerFilter{
			City:               "Haifa",
			VerificationStatus: models.VerificationStatusVerified,
		}, 20, 0).
		Return([]models.WorkerProfile{
			{BaseModel: models.BaseModel{ID: uuid.New()}, City: "Haifa"},
		}, int64(1), nil)

	resp, err := suite.svc.List(service.WorkerFilterRequest{City: "Haifa"}, 1, 20)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), resp.Total)
	assert.Len(suite.T(), resp.Workers, 1)
	assert.Equal(suite.T(), "Haifa", resp.Workers[0].City)
}

func (suite *WorkerServiceTestSuite) TestUpdateProfileAppliesPartialChanges() {
	userID := uuid.New()
	worker := &models.WorkerProfile{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		UserID:     userID,
		Bio:        "old bio",
		HourlyRate: 40,
		City:       "Haifa",
	}
	bio := "experienced plumber"
	rate := 55.0

	suite.workerRepo.EXPECT().GetByUserID(userID).Return(worker, nil)
	suite.workerRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(updated *models.WorkerProfile) error {
			assert.Equal(suite.T(), "experienced plumber", updated.Bio)
			assert.Equal(suite.T(), 55.0, updated.HourlyRate)
			assert.Equal(suite.T(), "Haifa", updated.City)
			return nil
		})

	resp, err := suite.svc.UpdateProfile(userID, &service.UpdateProfileRequest{Bio: &bio, HourlyRate: &rate})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "experienced plumber", resp.Bio)
}

func (suite *WorkerServiceTestSuite) TestAddService() {
	userID := uuid.New()
	workerID := uuid.New()
	worker := &models.WorkerProfile{BaseModel: models.BaseModel{ID: workerID}, UserID: userID}

	suite.workerRepo.EXPECT().GetByUserID(userID).Return(worker, nil)
	suite.serviceRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(svc *models.WorkerService) error {
			assert.Equal(suite.T(), workerID, svc.WorkerID)
			svc.ID = uuid.New()
			return nil
		})

	resp, err := suite.svc.AddService(userID, &service.CreateServiceRequest{
		Name:     "Pipe repair",
		Category: "plumbing",
	})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Pipe repair", resp.Name)
	assert.Equal(suite.T(), workerID, resp.WorkerID)
}

func (suite *WorkerServiceTestSuite) TestUpdateServiceRejectsForeignOwner() {
	userID := uuid.New()
	serviceID := uuid.New()
	worker := &models.WorkerProfile{BaseModel: models.BaseModel{ID: uuid.New()}, UserID: userID}

	suite.workerRepo.EXPECT().GetByUserID(userID).Return(worker, nil)
	suite.serviceRepo.EXPECT().GetByID(serviceID).Return(&models.WorkerService{
		BaseModel: models.BaseModel{ID: serviceID},
		WorkerID:  uuid.New(),
	}, nil)

	name := "Renamed"
	resp, err := suite.svc.UpdateService(userID, serviceID, &service.UpdateServiceRequest{Name: &name})
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

func (suite *WorkerServiceTestSuite) TestSubmitDocumentMovesProfileIntoReview() {
	userID := uuid.New()
	workerID := uuid.New()
	worker := &models.WorkerProfile{
		BaseModel:          models.BaseModel{ID: workerID},
		UserID:             userID,
		VerificationStatus: models.VerificationStatusPending,
	}

	suite.workerRepo.EXPECT().GetByUserID(userID).Return(worker, nil)
	suite.docRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(doc *models.VerificationDocument) error {
			assert.Equal(suite.T(), workerID, doc.WorkerID)
			doc.ID = uuid.New()
			return nil
		})
	suite.workerRepo.EXPECT().UpdateVerification(workerID, models.VerificationStatusInReview, "").Return(nil)

	resp, err := suite.svc.SubmitDocument(userID, &service.SubmitDocumentRequest{
		Type:      models.DocumentTypeIdentity,
		Reference: "doc-store/identity/123",
	})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.DocumentTypeIdentity, resp.Type)
}

func (suite *WorkerServiceTestSuite) TestSubmitDocumentKeepsVerifiedProfileVerified() {
	userID := uuid.New()
	workerID := uuid.New()
	worker := &models.WorkerProfile{
		BaseModel:          models.BaseModel{ID: workerID},
		UserID:             userID,
		VerificationStatus: models.VerificationStatusVerified,
	}

	// No UpdateVerification expectation: a verified profile stays verified
	suite.workerRepo.EXPECT().GetByUserID(userID).Return(worker, nil)
	suite.docRepo.EXPECT().Create(gomock.Any()).Return(nil)

	_, err := suite.svc.SubmitDocument(userID, &service.SubmitDocumentRequest{
		Type:      models.DocumentTypeAddress,
		Reference: "doc-store/address/456",
	})
	assert.NoError(suite.T(), err)
}

func (suite *WorkerServiceTestSuite) TestSubmitDocumentRejectsUnknownType() {
	resp, err := suite.svc.SubmitDocument(uuid.New(), &service.SubmitDocumentRequest{
		Type:      models.DocumentType("selfie"),
		Reference: "doc-store/selfie/1",
	})
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *WorkerServiceTestSuite) TestReviewAcceptsOnlyFinalStatuses() {
	testCases := []struct {
		name   string
		status models.VerificationStatus
		valid  bool
	}{
		{"Verified", models.VerificationStatusVerified, true},
		{"Rejected", models.VerificationStatusRejected, true},
		{"Pending", models.VerificationStatusPending, false},
		{"In review", models.VerificationStatusInReview, false},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			workerID := uuid.New()
			if tc.valid {
				suite.workerRepo.EXPECT().UpdateVerification(workerID, tc.status, "checked").Return(nil)
				suite.workerRepo.EXPECT().GetWithRelations(workerID).Return(&models.WorkerProfile{
					BaseModel:          models.BaseModel{ID: workerID},
					VerificationStatus: tc.status,
				}, nil)
			}

			resp, err := suite.svc.Review(workerID, &service.ReviewWorkerRequest{Status: tc.status, Note: "checked"})
			if tc.valid {
				assert.NoError(suite.T(), err)
				assert.Equal(suite.T(), tc.status, resp.VerificationStatus)
			} else {
				assert.Error(suite.T(), err)
				assert.True(suite.T(), apperrors.IsValidation(err))
			}
		})
	}
}

func (suite *WorkerServiceTestSuite) TestReviewWorkerNotFound() {
	workerID := uuid.New()

	suite.workerRepo.EXPECT().
		UpdateVerification(workerID, models.VerificationStatusVerified, "").
		Return(gorm.ErrRecordNotFound)

	resp, err := suite.svc.Review(workerID, &service.ReviewWorkerRequest{Status: models.VerificationStatusVerified})
	assert.ErrorIs(suite.T(), err, apperrors.ErrWorkerNotFound)
	assert.Nil(suite.T(), resp)
}

func (suite *WorkerServiceTestSuite) TestListInReview() {
	suite.workerRepo.EXPECT().
		GetByVerificationStatus(models.VerificationStatusInReview, 20, 0).
		Return([]models.WorkerProfile{
			{BaseModel: models.BaseModel{ID: uuid.New()}, VerificationStatus: models.VerificationStatusInReview},
		}, int64(1), nil)

	resp, err := suite.svc.ListInReview(1, 20)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp.Workers, 1)
	assert.Equal(suite.T(), models.VerificationStatusInReview, resp.Workers[0].VerificationStatus)
}

// TestWorkerServiceTestSuite runs the test suite
func TestWorkerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WorkerServiceTestSuite))
}
