package services

import (
	"testing"

	"shophub_backend/internal/models"
	"shophub_backend/internal/repositories"
	"shophub_backend/internal/services/dto"
	"shophub_backend/internal/verification"
	"shophub_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	svc   AuthService
	email *mockEmailProvider
	codes verification.CodeStore
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	setupTestConfig(t)

	provider := newMockEmailProvider()
	codes := verification.NewMemoryCodeStore()
	tokens := verification.NewMemoryTokenStore()

	return &authFixture{
		svc:   NewAuthService(repositories.NewUserRepository(), provider, codes, tokens),
		email: provider,
		codes: codes,
	}
}

func registerRequest(emailAddr string) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		FullName: "Test User",
		Email:    emailAddr,
		Mobile:   "+77001234567",
		Password: "super_password123",
	}
}

func TestVerificationFlow(t *testing.T) {
	db := setupTestDB(t)
	f := newAuthFixture(t)

	require.NoError(t, f.svc.SendVerification(db, "new@test.com"))
	code := f.email.sentCodes["new@test.com"]
	require.Len(t, code, verification.CodeLength)

	// Wrong guess does not consume the code.
	require.Error(t, f.svc.VerifyCode(db, "new@test.com", "000000"))
	require.NoError(t, f.svc.VerifyCode(db, "new@test.com", code))

	// The code was consumed by the successful check.
	require.Error(t, f.svc.VerifyCode(db, "new@test.com", code))
}

func TestSendVerification_ReissueReplacesCode(t *testing.T) {
	db := setupTestDB(t)
	f := newAuthFixture(t)

	require.NoError(t, f.svc.SendVerification(db, "new@test.com"))
	first := f.email.sentCodes["new@test.com"]

	require.NoError(t, f.svc.SendVerification(db, "new@test.com"))
	second := f.email.sentCodes["new@test.com"]

	if first == second {
		t.Skip("collision between random codes")
	}
	require.Error(t, f.svc.VerifyCode(db, "new@test.com", first))
	require.NoError(t, f.svc.VerifyCode(db, "new@test.com", second))
}

func TestSendVerification_EmailFailureSurfaces(t *testing.T) {
	db := setupTestDB(t)
	f := newAuthFixture(t)

	f.email.failNext = true
	err := f.svc.SendVerification(db, "new@test.com")
	assert.ErrorIs(t, err, apperrors.ErrEmailSendFailed)
}

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	f := newAuthFixture(t)

	user, err := f.svc.Register(db, registerRequest("new@test.com"))
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "new@test.com", user.Email)

	res, err := f.svc.Login(db, &dto.LoginRequest{Email: "new@test.com", Password: "super_password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, user.ID, res.User.ID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	f := newAuthFixture(t)

	_, err := f.svc.Register(db, registerRequest("dup@test.com"))
	require.NoError(t, err)

	_, err = f.svc.Register(db, registerRequest("dup@test.com"))
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegister_WeakPassword(t *testing.T) {
	db := setupTestDB(t)
	f := newAuthFixture(t)

	req := registerRequest("weak@test.com")
	req.Password = "short"
	_, err := f.svc.Register(db, req)
	require.Error(t, err)
}

func TestLogin_BadCredentials(t *testing.T) {
	db := setupTestDB(t)
	f := newAuthFixture(t)

	_, err := f.svc.Register(db, registerRequest("user@test.com"))
	require.NoError(t, err)

	// Wrong password and unknown email produce the same error.
	_, err = f.svc.Login(db, &dto.LoginRequest{Email: "user@test.com", Password: "wrong_password"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = f.svc.Login(db, &dto.LoginRequest{Email: "nobody@test.com", Password: "whatever123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_DeactivatedAccount(t *testing.T) {
	db := setupTestDB(t)
	f := newAuthFixture(t)

	user, err := f.svc.Register(db, registerRequest("user@test.com"))
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).
		Update("is_active", false).Error)

	_, err = f.svc.Login(db, &dto.LoginRequest{Email: "user@test.com", Password: "super_password123"})
	assert.ErrorIs(t, err, apperrors.ErrAccountDeactivated)
}

func TestCheckEmail(t *testing.T) {
	db := setupTestDB(t)
	f := newAuthFixture(t)

	exists, err := f.svc.CheckEmail(db, "user@test.com")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = f.svc.Register(db, registerRequest("user@test.com"))
	require.NoError(t, err)

	exists, err = f.svc.CheckEmail(db, "user@test.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestForgotAndResetPassword(t *testing.T) {
	db := setupTestDB(t)
	f := newAuthFixture(t)

	_, err := f.svc.Register(db, registerRequest("user@test.com"))
	require.NoError(t, err)

	require.NoError(t, f.svc.ForgotPassword(db, "user@test.com"))
	token := f.email.sentTokens["user@test.com"]
	require.NotEmpty(t, token)

	require.NoError(t, f.svc.ResetPassword(db, token, "brand_new_password"))

	// Old password is dead, new one works.
	_, err = f.svc.Login(db, &dto.LoginRequest{Email: "user@test.com", Password: "super_password123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = f.svc.Login(db, &dto.LoginRequest{Email: "user@test.com", Password: "brand_new_password"})
	assert.NoError(t, err)

	// The token was consumed.
	require.Error(t, f.svc.ResetPassword(db, token, "yet_another_password"))
}

func TestForgotPassword_UnknownEmailSilent(t *testing.T) {
	db := setupTestDB(t)
	f := newAuthFixture(t)

	// No account: report success, send nothing.
	require.NoError(t, f.svc.ForgotPassword(db, "ghost@test.com"))
	assert.Empty(t, f.email.sentTokens["ghost@test.com"])
}

func TestResetPassword_InvalidToken(t *testing.T) {
	db := setupTestDB(t)
	f := newAuthFixture(t)

	err := f.svc.ResetPassword(db, "bogus-token", "brand_new_password")
	require.Error(t, err)
}

func TestChangePassword(t *testing.T) {
	db := setupTestDB(t)
	f := newAuthFixture(t)

	user, err := f.svc.Register(db, registerRequest("user@test.com"))
	require.NoError(t, err)

	require.Error(t, f.svc.ChangePassword(db, user.ID, "wrong_current", "brand_new_password"))
	require.NoError(t, f.svc.ChangePassword(db, user.ID, "super_password123", "brand_new_password"))

	_, err = f.svc.Login(db, &dto.LoginRequest{Email: "user@test.com", Password: "brand_new_password"})
	assert.NoError(t, err)
}
