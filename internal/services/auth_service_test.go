package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumebuilder_backend/internal/repositories"
	"resumebuilder_backend/internal/services"
	"resumebuilder_backend/internal/services/dto"
	"resumebuilder_backend/pkg/apperrors"
)

var testJWTSecret = []byte("test-secret")

func newAuthService(repo *fakeUserRepo, mail *fakeEmailProvider) services.AuthService {
	return services.NewAuthService(repo, mail, testJWTSecret, 24*time.Hour)
}

func registerReq(email string) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Name:     "Jamie",
		Email:    email,
		Password: "secret12",
	}
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	mail := &fakeEmailProvider{}
	svc := newAuthService(repo, mail)

	resp, err := svc.Register(context.Background(), registerReq("jamie@example.com"))
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "jamie@example.com", resp.Email)
	assert.False(t, resp.EmailVerified)
	assert.Equal(t, "Basic", resp.SubscriptionPlan)

	// Exactly one verification mail, carrying the stored token.
	require.Len(t, mail.verifications, 1)
	stored, err := repo.FindByEmail("jamie@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored.VerificationToken)
	assert.Equal(t, *stored.VerificationToken, mail.verifications[0].token)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "secret12", stored.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	mail := &fakeEmailProvider{}
	svc := newAuthService(repo, mail)

	_, err := svc.Register(context.Background(), registerReq("dup@example.com"))
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerReq("dup@example.com"))
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.HTTPCode)
	assert.Equal(t, "Resource exists", appErr.Message)

	// The first registration and its mail are untouched.
	assert.Len(t, mail.verifications, 1)
}

func TestRegister_EmailSendFailure(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	mail := &fakeEmailProvider{failNext: true}
	svc := newAuthService(repo, mail)

	_, err := svc.Register(context.Background(), registerReq("jamie@example.com"))
	require.Error(t, err)

	// The account row survives the failed send; resend can recover it.
	stored, findErr := repo.FindByEmail("jamie@example.com")
	require.NoError(t, findErr)
	assert.False(t, stored.EmailVerified)
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	mail := &fakeEmailProvider{}
	svc := newAuthService(repo, mail)

	_, err := svc.Register(context.Background(), registerReq("jamie@example.com"))
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jamie@example.com",
		Password: "secret12",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "jamie@example.com", resp.User.Email)
}

func TestLogin_UnverifiedAccountStillLogsIn(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := newAuthService(repo, &fakeEmailProvider{})

	_, err := svc.Register(context.Background(), registerReq("jamie@example.com"))
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jamie@example.com",
		Password: "secret12",
	})
	require.NoError(t, err)
	assert.False(t, resp.User.EmailVerified)
}

func TestLogin_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := newAuthService(repo, &fakeEmailProvider{})

	_, err := svc.Register(context.Background(), registerReq("jamie@example.com"))
	require.NoError(t, err)

	_, errUnknown := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret12",
	})
	_, errWrongPass := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jamie@example.com",
		Password: "wrong",
	})

	require.Error(t, errUnknown)
	require.Error(t, errWrongPass)
	// Identical errors: the response must not reveal which accounts exist.
	assert.Equal(t, errUnknown, errWrongPass)
	assert.Equal(t, apperrors.ErrInvalidCredentials, errUnknown)
}

func TestVerifyEmail_Success(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	mail := &fakeEmailProvider{}
	svc := newAuthService(repo, mail)

	_, err := svc.Register(context.Background(), registerReq("jamie@example.com"))
	require.NoError(t, err)
	token := mail.verifications[0].token

	require.NoError(t, svc.VerifyEmail(context.Background(), token))

	stored, err := repo.FindByEmail("jamie@example.com")
	require.NoError(t, err)
	assert.True(t, stored.EmailVerified)
	assert.Nil(t, stored.VerificationToken)
	assert.Nil(t, stored.VerificationExpires)
}

func TestVerifyEmail_ReplayFailsLikeInvalid(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	mail := &fakeEmailProvider{}
	svc := newAuthService(repo, mail)

	_, err := svc.Register(context.Background(), registerReq("jamie@example.com"))
	require.NoError(t, err)
	token := mail.verifications[0].token

	require.NoError(t, svc.VerifyEmail(context.Background(), token))

	errReplay := svc.VerifyEmail(context.Background(), token)
	errGarbage := svc.VerifyEmail(context.Background(), "deadbeefdeadbeefdeadbeefdeadbeef")

	require.Error(t, errReplay)
	require.Error(t, errGarbage)
	// A consumed token and a token that never existed look identical.
	assert.Equal(t, errGarbage, errReplay)
}

func TestVerifyEmail_EmptyToken(t *testing.T) {
	t.Parallel()

	svc := newAuthService(newFakeUserRepo(), &fakeEmailProvider{})

	err := svc.VerifyEmail(context.Background(), "")
	assert.Equal(t, apperrors.ErrInvalidVerificationToken, err)
}

func TestVerifyEmail_ExpiredToken(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	mail := &fakeEmailProvider{}
	svc := newAuthService(repo, mail)

	_, err := svc.Register(context.Background(), registerReq("jamie@example.com"))
	require.NoError(t, err)
	token := mail.verifications[0].token

	stored, err := repo.FindByEmail("jamie@example.com")
	require.NoError(t, err)
	expired := time.Now().Add(-time.Minute)
	require.NoError(t, repo.SetVerificationToken(stored.ID, token, expired))

	verifyErr := svc.VerifyEmail(context.Background(), token)
	assert.Equal(t, apperrors.ErrVerificationTokenExpired, verifyErr)

	stored, err = repo.FindByEmail("jamie@example.com")
	require.NoError(t, err)
	assert.False(t, stored.EmailVerified)
}

func TestResendVerification_RotatesToken(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	mail := &fakeEmailProvider{}
	svc := newAuthService(repo, mail)

	_, err := svc.Register(context.Background(), registerReq("jamie@example.com"))
	require.NoError(t, err)
	oldToken := mail.verifications[0].token

	err = svc.ResendVerification(context.Background(), &dto.ResendVerificationRequest{
		Email: "jamie@example.com",
	})
	require.NoError(t, err)
	require.Len(t, mail.verifications, 2)
	newToken := mail.verifications[1].token

	assert.NotEqual(t, oldToken, newToken)

	// Old token is dead, new one works.
	require.Error(t, svc.VerifyEmail(context.Background(), oldToken))
	require.NoError(t, svc.VerifyEmail(context.Background(), newToken))
}

func TestResendVerification_UnknownEmail(t *testing.T) {
	t.Parallel()

	svc := newAuthService(newFakeUserRepo(), &fakeEmailProvider{})

	err := svc.ResendVerification(context.Background(), &dto.ResendVerificationRequest{
		Email: "ghost@example.com",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)

	// The sentinel is not an AppError, so the boundary answers with the
	// generic 500 shape rather than a 404.
	_, ok := apperrors.AsAppError(err)
	assert.False(t, ok)
}

func TestResendVerification_AlreadyVerified(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	mail := &fakeEmailProvider{}
	svc := newAuthService(repo, mail)

	_, err := svc.Register(context.Background(), registerReq("jamie@example.com"))
	require.NoError(t, err)
	require.NoError(t, svc.VerifyEmail(context.Background(), mail.verifications[0].token))

	err = svc.ResendVerification(context.Background(), &dto.ResendVerificationRequest{
		Email: "jamie@example.com",
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestGetProfile(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	mail := &fakeEmailProvider{}
	svc := newAuthService(repo, mail)

	resp, err := svc.Register(context.Background(), registerReq("jamie@example.com"))
	require.NoError(t, err)

	profile, err := svc.GetProfile(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, profile.ID)
	assert.Equal(t, "jamie@example.com", profile.Email)

	// Unknown ID comes back as a plain error, not an AppError.
	_, err = svc.GetProfile(context.Background(), "no-such-id")
	require.Error(t, err)
	_, isApp := apperrors.AsAppError(err)
	assert.False(t, isApp)
}
