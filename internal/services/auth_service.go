package services

import (
	"context"
	"fmt"
	"time"

	"resumebuilder_backend/internal/auth"
	"resumebuilder_backend/internal/email"
	"resumebuilder_backend/internal/logger"
	"resumebuilder_backend/internal/models"
	"resumebuilder_backend/internal/repositories"
	"resumebuilder_backend/internal/services/dto"
	"resumebuilder_backend/pkg/apperrors"
)

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	VerifyEmail(ctx context.Context, token string) error
	ResendVerification(ctx context.Context, req *dto.ResendVerificationRequest) error
	GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error)
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	emailProvider email.Provider
	jwtSecret     []byte
	jwtTTL        time.Duration
}

func NewAuthService(
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
	jwtSecret []byte,
	jwtTTL time.Duration,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		emailProvider: emailProvider,
		jwtSecret:     jwtSecret,
		jwtTTL:        jwtTTL,
	}
}

// Register creates an unverified account and sends the verification mail.
// The mail is sent synchronously; if it fails the request fails, though the
// account row already exists and the client can recover via resend.
func (s *AuthServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	token, expires, err := auth.NewVerificationToken()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:                req.Name,
		Email:               req.Email,
		PasswordHash:        hash,
		ProfileImageURL:     req.ProfileImageURL,
		EmailVerified:       false,
		VerificationToken:   &token,
		VerificationExpires: &expires,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.emailProvider.SendVerification(user.Email, user.Name, token); err != nil {
		logger.CtxWithError(ctx, "failed to send verification email", err, "user_id", user.ID)
		return nil, apperrors.Wrap(err, apperrors.CodeExternalServiceError, "auth",
			"Failed to send verification email", 502)
	}

	logger.CtxInfo(ctx, "user registered", "user_id", user.ID)

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// Login checks credentials and issues an access token. Unknown email and
// wrong password return the same error so the response does not reveal
// which accounts exist.
func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, err := auth.IssueToken(user.ID, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user logged in", "user_id", user.ID)

	return &dto.LoginResponse{
		Token: accessToken,
		User:  dto.NewUserResponse(user),
	}, nil
}

// VerifyEmail consumes a verification token. A token that was already used,
// never existed, or expired all fail the same way, except that a matching
// but expired token gets its own message so the client offers a resend.
func (s *AuthServiceImpl) VerifyEmail(ctx context.Context, token string) error {
	if token == "" {
		return apperrors.ErrInvalidVerificationToken
	}

	user, err := s.userRepo.FindByVerificationToken(token)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidVerificationToken
		}
		return apperrors.InternalError(err)
	}

	if user.VerificationExpires == nil || time.Now().After(*user.VerificationExpires) {
		return apperrors.ErrVerificationTokenExpired
	}

	if err := s.userRepo.VerifyUser(user.ID); err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "email verified", "user_id", user.ID)
	return nil
}

// ResendVerification issues a fresh token for an unverified account,
// invalidating any previous one. Verified accounts are rejected; an unknown
// email surfaces the repository sentinel unmapped, so the boundary answers
// with the generic error shape.
func (s *AuthServiceImpl) ResendVerification(ctx context.Context, req *dto.ResendVerificationRequest) error {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return err
	}

	if user.EmailVerified {
		return apperrors.New(apperrors.CodeInvalidOperation, "auth", "Email is already verified", 400)
	}

	token, expires, err := auth.NewVerificationToken()
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.SetVerificationToken(user.ID, token, expires); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.emailProvider.SendVerification(user.Email, user.Name, token); err != nil {
		logger.CtxWithError(ctx, "failed to resend verification email", err, "user_id", user.ID)
		return apperrors.Wrap(err, apperrors.CodeExternalServiceError, "auth",
			"Failed to send verification email", 502)
	}

	logger.CtxInfo(ctx, "verification email resent", "user_id", user.ID)
	return nil
}

// GetProfile returns the account view for an authenticated user.
func (s *AuthServiceImpl) GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, fmt.Errorf("user %s not found", userID)
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}
