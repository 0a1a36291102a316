package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"workjunction-backend/internal/auth"
	"workjunction-backend/internal/database/models"
	apperrors "workjunction-backend/internal/errors"
	"workjunction-backend/internal/repository"
)

// verifyEmailPurpose tags OTP codes used for email verification
const verifyEmailPurpose = "verify_email"

// UserService handles registration, login and email verification
type UserService struct {
	userRepo        repository.UserRepositoryInterface
	workerRepo      repository.WorkerRepositoryInterface
	otpStore        OTPStoreInterface
	mailer          MailerInterface
	authService     *auth.AuthService
	validator       *validator.Validate
	agentInviteCode string
}

// NewUserService creates a new user service
func NewUserService(
	userRepo repository.UserRepositoryInterface,
	workerRepo repository.WorkerRepositoryInterface,
	otpStore OTPStoreInterface,
	mailer MailerInterface,
	authService *auth.AuthService,
	validator *validator.Validate,
	agentInviteCode string,
) *UserService {
	return &UserService{
		userRepo:        userRepo,
		workerRepo:      workerRepo,
		otpStore:        otpStore,
		mailer:          mailer,
		authService:     authService,
		validator:       validator,
		agentInviteCode: agentInviteCode,
	}
}

// RegisterRequest represents the request to register an account
type RegisterRequest struct {
	Email       string          `json:"email" validate:"required,email,max=255"`
	Password    string          `json:"password" validate:"required,min=8,max=72"`
	FullName    string          `json:"full_name" validate:"required,max=200"`
	PhoneNumber string          `json:"phone_number" validate:"max=20"`
	Role        models.UserRole `json:"role" validate:"required"`
	InviteCode  string          `json:"invite_code,omitempty"`
}

// LoginRequest represents the request to log in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// VerifyEmailRequest represents the request to verify an email address
type VerifyEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required"`
}

// ResendOTPRequest represents the request to resend a verification code
type ResendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID            uuid.UUID       `json:"id"`
	Email         string          `json:"email"`
	FullName      string          `json:"full_name"`
	PhoneNumber   string          `json:"phone_number,omitempty"`
	Role          models.UserRole `json:"role"`
	EmailVerified bool            `json:"email_verified"`
	CreatedAt     string          `json:"created_at"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int64        `json:"expires_in"`
	User        UserResponse `json:"user"`
}

// Register creates a new account and sends a verification code
func (s *UserService) Register(ctx context.Context, req *RegisterRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !req.Role.IsValid() {
		return nil, apperrors.NewValidationError("role", "must be one of customer, worker, agent")
	}

	// Agents register with an invite code
	if req.Role == models.UserRoleAgent && req.InviteCode != s.agentInviteCode {
		return nil, apperrors.ErrInvalidInviteCode
	}

	if _, err := s.userRepo.GetByEmail(req.Email); err == nil {
		return nil, apperrors.ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		PhoneNumber:  req.PhoneNumber,
		Role:         req.Role,
		IsActive:     true,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Workers get an empty profile so scheduling operations have a row to target
	if req.Role == models.UserRoleWorker {
		worker := &models.WorkerProfile{
			UserID:             user.ID,
			VerificationStatus: models.VerificationStatusPending,
			AvailabilityStatus: models.AvailabilityStatusAvailable,
			Timetable:          models.NewWeeklyTimetable(),
			NonAvailability:    models.NonAvailabilitySlots{},
		}
		if err := s.workerRepo.Create(worker); err != nil {
			return nil, fmt.Errorf("failed to create worker profile: %w", err)
		}
	}

	code, err := s.otpStore.Issue(ctx, user.Email, verifyEmailPurpose)
	if err != nil {
		return nil, err
	}
	if err := s.mailer.SendOTP(ctx, user.Email, code); err != nil {
		return nil, err
	}

	return s.toResponse(user), nil
}

// Login authenticates a user and issues an access token
func (s *UserService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}
	if !user.EmailVerified {
		return nil, apperrors.ErrEmailNotVerified
	}

	token, err := s.authService.GenerateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.authService.Expiration().Seconds()),
		User:        *s.toResponse(user),
	}, nil
}

// VerifyEmail checks a one-time code and marks the email verified
func (s *UserService) VerifyEmail(ctx context.Context, req *VerifyEmailRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if err := s.otpStore.Verify(ctx, req.Email, verifyEmailPurpose, req.Code); err != nil {
		return err
	}

	if err := s.userRepo.SetEmailVerified(user.ID); err != nil {
		return fmt.Errorf("failed to mark email verified: %w", err)
	}
	return nil
}

// ResendOTP issues a fresh verification code for an unverified account
func (s *UserService) ResendOTP(ctx context.Context, req *ResendOTPRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.EmailVerified {
		return apperrors.NewValidationError("email", "already verified")
	}

	code, err := s.otpStore.Issue(ctx, user.Email, verifyEmailPurpose)
	if err != nil {
		return err
	}
	return s.mailer.SendOTP(ctx, user.Email, code)
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(id uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return s.toResponse(user), nil
}

// toResponse converts a user model to response
func (s *UserService) toResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:            user.ID,
		Email:         user.Email,
		FullName:      user.FullName,
		PhoneNumber:   user.PhoneNumber,
		Role:          user.Role,
		EmailVerified: user.EmailVerified,
		CreatedAt:     user.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
