//go:build integration
// +build integration

package repository

import (
	"testing"

	"workjunction-backend/internal/database/models"
	"workjunction-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new user
func (suite *UserRepositoryTestSuite) TestCreate() {
	user := suite.factories.User.Create()

	err := suite.repo.Create(user)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, user.ID)
}

// TestCreateDuplicateEmail tests that two users cannot share an email
func (suite *UserRepositoryTestSuite) TestCreateDuplicateEmail() {
	user := suite.factories.User.WithEmail("dup@test.com")
	suite.NoError(suite.repo.Create(user))

	other := suite.factories.User.WithEmail("dup@test.com")
	err := suite.repo.Create(other)

	suite.Error(err)
}

// TestGetByEmail tests retrieving a user by email
func (suite *UserRepositoryTestSuite) TestGetByEmail() {
	user := suite.factories.User.WithEmail("findme@test.com")
	suite.NoError(suite.repo.Create(user))

	retrieved, err := suite.repo.GetByEmail("findme@test.com")

	suite.NoError(err)
	suite.Equal(user.ID, retrieved.ID)
}

// TestGetByEmailNotFound tests retrieving a non-existent user by email
func (suite *UserRepositoryTestSuite) TestGetByEmailNotFound() {
	user, err := suite.repo.GetByEmail("ghost@test.com")

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(user)
}

// TestSetEmailVerified tests flipping the email verification flag
func (suite *UserRepositoryTestSuite) TestSetEmailVerified() {
	user := suite.factories.User.Create()
	user.EmailVerified = false
	suite.NoError(suite.repo.Create(user))

	err := suite.repo.SetEmailVerified(user.ID)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.True(retrieved.EmailVerified)
}

// TestSetEmailVerifiedNotFound tests verifying a missing user
func (suite *UserRepositoryTestSuite) TestSetEmailVerifiedNotFound() {
	err := suite.repo.SetEmailVerified(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestGetWithWorkerProfile tests preloading the worker profile
func (suite *UserRepositoryTestSuite) TestGetWithWorkerProfile() {
	user := suite.factories.User.WithRole(models.UserRoleWorker)
	suite.NoError(suite.repo.Create(user))

	worker := suite.factories.Worker.WithUser(user.ID)
	suite.NoError(NewWorkerRepository(suite.baseTestSuite.DB).Create(worker))

	retrieved, err := suite.repo.GetWithWorkerProfile(user.ID)

	suite.NoError(err)
	suite.NotNil(retrieved.WorkerProfile)
	suite.Equal(worker.ID, retrieved.WorkerProfile.ID)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
