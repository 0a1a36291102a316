package service_test

import (
	"context"
	"testing"
	"time"

	"workjunction-backend/internal/auth"
	"workjunction-backend/internal/database/models"
	apperrors "workjunction-backend/internal/errors"
	"workjunction-backend/internal/mocks"
	"workjunction-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// fakeOTPStore replaces the redis-backed store in tests
type fakeOTPStore struct {
	code     string
	issued   int
	verified []string
}

func (f *fakeOTPStore) Issue(ctx context.Context, email, purpose string) (string, error) {
	f.issued++
	return f.code, nil
}

func (f *fakeOTPStore) Verify(ctx context.Context, email, purpose, code string) error {
	if code != f.code {
		return apperrors.ErrInvalidOTP
	}
	f.verified = append(f.verified, email)
	return nil
}

// fakeMailer records outgoing codes instead of sending them
type fakeMailer struct {
	sent []string
}

func (f *fakeMailer) SendOTP(ctx context.Context, to, code string) error {
	f.sent = append(f.sent, to)
	return nil
}

// UserServiceTestSuite defines the test suite for UserService
type UserServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	userRepo   *mocks.MockUserRepositoryInterface
	workerRepo *mocks.MockWorkerRepositoryInterface
	otpStore   *fakeOTPStore
	mailer     *fakeMailer
	svc        *service.UserService
}

// SetupTest sets up the test suite
func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.userRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.workerRepo = mocks.NewMockWorkerRepositoryInterface(suite.ctrl)
	suite.otpStore = &fakeOTPStore{code: "482913"}
	suite.mailer = &fakeMailer{}
	authService, err := auth.NewAuthService("test-secret-key", 24*time.Hour)
	suite.Require().NoError(err)
	suite.svc = service.NewUserService(
		suite.userRepo, suite.workerRepo, suite.otpStore, suite.mailer,
		authService, validator.New(), "agent-invite",
	)
}

// TearDownTest cleans up after each test
func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func hashedPassword(suite *UserServiceTestSuite, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(suite.T(), err)
	return string(hash)
}

func (suite *UserServiceTestSuite) TestRegisterCustomer() {
	suite.userRepo.EXPECT().GetByEmail("jo@example.com").Return(nil, gorm.ErrRecordNotFound)
	suite.userRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(user *models.User) error {
			assert.Equal(suite.T(), models.UserRoleCustomer, user.Role)
			assert.True(suite.T(), user.IsActive)
			assert.NotEqual(suite.T(), "s3cretpass", user.PasswordHash)
			user.ID = uuid.New()
			return nil
		})

	resp, err := suite.svc.Register(context.Background(), &service.RegisterRequest{
		Email:    "jo@example.com",
		Password: "s3cretpass",
		FullName: "Jo Customer",
		Role:     models.UserRoleCustomer,
	})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "jo@example.com", resp.Email)
	assert.False(suite.T(), resp.EmailVerified)
	assert.Equal(suite.T(), 1, suite.otpStore.issued)
	assert.Equal(suite.T(), []string{"jo@example.com"}, suite.mailer.sent)
}

func (suite *UserServiceTestSuite) TestRegisterWorkerCreatesProfile() {
	suite.userRepo.EXPECT().GetByEmail("pat@example.com").Return(nil, gorm.ErrRecordNotFound)
	suite.userRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(user *models.User) error {
			user.ID = uuid.New()
			return nil
		})
	suite.workerRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(worker *models.WorkerProfile) error {
			assert.Equal(suite.T(), models.VerificationStatusPending, worker.VerificationStatus)
			assert.Equal(suite.T(), models.AvailabilityStatusAvailable, worker.AvailabilityStatus)
			assert.Len(suite.T(), worker.Timetable, 7)
			assert.Empty(suite.T(), worker.NonAvailability)
			return nil
		})

	resp, err := suite.svc.Register(context.Background(), &service.RegisterRequest{
		Email:    "pat@example.com",
		Password: "s3cretpass",
		FullName: "Pat Plumber",
		Role:     models.UserRoleWorker,
	})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.UserRoleWorker, resp.Role)
}

func (suite *UserServiceTestSuite) TestRegisterRejectsDuplicateEmail() {
	suite.userRepo.EXPECT().GetByEmail("jo@example.com").Return(&models.User{}, nil)

	resp, err := suite.svc.Register(context.Background(), &service.RegisterRequest{
		Email:    "jo@example.com",
		Password: "s3cretpass",
		FullName: "Jo Customer",
		Role:     models.UserRoleCustomer,
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserExists)
	assert.Nil(suite.T(), resp)
}

func (suite *UserServiceTestSuite) TestRegisterAgentRequiresInviteCode() {
	resp, err := suite.svc.Register(context.Background(), &service.RegisterRequest{
		Email:      "ava@example.com",
		Password:   "s3cretpass",
		FullName:   "Ava Agent",
		Role:       models.UserRoleAgent,
		InviteCode: "wrong-code",
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidInviteCode)
	assert.Nil(suite.T(), resp)

	suite.userRepo.EXPECT().GetByEmail("ava@example.com").Return(nil, gorm.ErrRecordNotFound)
	suite.userRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(user *models.User) error {
			user.ID = uuid.New()
			return nil
		})

	resp, err = suite.svc.Register(context.Background(), &service.RegisterRequest{
		Email:      "ava@example.com",
		Password:   "s3cretpass",
		FullName:   "Ava Agent",
		Role:       models.UserRoleAgent,
		InviteCode: "agent-invite",
	})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.UserRoleAgent, resp.Role)
}

func (suite *UserServiceTestSuite) TestRegisterRejectsUnknownRole() {
	resp, err := suite.svc.Register(context.Background(), &service.RegisterRequest{
		Email:    "jo@example.com",
		Password: "s3cretpass",
		FullName: "Jo",
		Role:     models.UserRole("admin"),
	})
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *UserServiceTestSuite) TestLogin() {
	user := &models.User{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		Email:         "jo@example.com",
		PasswordHash:  hashedPassword(suite, "s3cretpass"),
		Role:          models.UserRoleCustomer,
		EmailVerified: true,
		IsActive:      true,
	}

	suite.userRepo.EXPECT().GetByEmail("jo@example.com").Return(user, nil)

	resp, err := suite.svc.Login(context.Background(), &service.LoginRequest{
		Email:    "jo@example.com",
		Password: "s3cretpass",
	})
	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), resp.AccessToken)
	assert.Equal(suite.T(), "Bearer", resp.TokenType)
	assert.Equal(suite.T(), int64((24 * time.Hour).Seconds()), resp.ExpiresIn)
	assert.Equal(suite.T(), user.ID, resp.User.ID)
}

func (suite *UserServiceTestSuite) TestLoginRejectsWrongPassword() {
	user := &models.User{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		Email:         "jo@example.com",
		PasswordHash:  hashedPassword(suite, "s3cretpass"),
		EmailVerified: true,
		IsActive:      true,
	}

	suite.userRepo.EXPECT().GetByEmail("jo@example.com").Return(user, nil)

	resp, err := suite.svc.Login(context.Background(), &service.LoginRequest{
		Email:    "jo@example.com",
		Password: "not-the-password",
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
	assert.Nil(suite.T(), resp)
}

func (suite *UserServiceTestSuite) TestLoginRejectsUnknownEmail() {
	suite.userRepo.EXPECT().GetByEmail("nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.svc.Login(context.Background(), &service.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
	assert.Nil(suite.T(), resp)
}

func (suite *UserServiceTestSuite) TestLoginRejectsUnverifiedEmail() {
	user := &models.User{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Email:        "jo@example.com",
		PasswordHash: hashedPassword(suite, "s3cretpass"),
		IsActive:     true,
	}

	suite.userRepo.EXPECT().GetByEmail("jo@example.com").Return(user, nil)

	resp, err := suite.svc.Login(context.Background(), &service.LoginRequest{
		Email:    "jo@example.com",
		Password: "s3cretpass",
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrEmailNotVerified)
	assert.Nil(suite.T(), resp)
}

func (suite *UserServiceTestSuite) TestLoginRejectsDisabledAccount() {
	user := &models.User{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		Email:         "jo@example.com",
		PasswordHash:  hashedPassword(suite, "s3cretpass"),
		EmailVerified: true,
	}

	suite.userRepo.EXPECT().GetByEmail("jo@example.com").Return(user, nil)

	resp, err := suite.svc.Login(context.Background(), &service.LoginRequest{
		Email:    "jo@example.com",
		Password: "s3cretpass",
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrAccountDisabled)
	assert.Nil(suite.T(), resp)
}

func (suite *UserServiceTestSuite) TestVerifyEmail() {
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "jo@example.com"}

	suite.userRepo.EXPECT().GetByEmail("jo@example.com").Return(user, nil)
	suite.userRepo.EXPECT().SetEmailVerified(user.ID).Return(nil)

	err := suite.svc.VerifyEmail(context.Background(), &service.VerifyEmailRequest{
		Email: "jo@example.com",
		Code:  "482913",
	})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"jo@example.com"}, suite.otpStore.verified)
}

func (suite *UserServiceTestSuite) TestVerifyEmailRejectsWrongCode() {
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "jo@example.com"}

	// SetEmailVerified must not be called on a failed code
	suite.userRepo.EXPECT().GetByEmail("jo@example.com").Return(user, nil)

	err := suite.svc.VerifyEmail(context.Background(), &service.VerifyEmailRequest{
		Email: "jo@example.com",
		Code:  "000000",
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidOTP)
}

func (suite *UserServiceTestSuite) TestResendOTP() {
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "jo@example.com"}

	suite.userRepo.EXPECT().GetByEmail("jo@example.com").Return(user, nil)

	err := suite.svc.ResendOTP(context.Background(), &service.ResendOTPRequest{Email: "jo@example.com"})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, suite.otpStore.issued)
	assert.Equal(suite.T(), []string{"jo@example.com"}, suite.mailer.sent)
}

func (suite *UserServiceTestSuite) TestResendOTPRejectsVerifiedAccount() {
	user := &models.User{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		Email:         "jo@example.com",
		EmailVerified: true,
	}

	suite.userRepo.EXPECT().GetByEmail("jo@example.com").Return(user, nil)

	err := suite.svc.ResendOTP(context.Background(), &service.ResendOTPRequest{Email: "jo@example.com"})
	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Zero(suite.T(), suite.otpStore.issued)
}

// TestUserServiceTestSuite runs the test suite
func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
