package services

import (
	"shophub_backend/internal/auth"
	"shophub_backend/internal/email"
	"shophub_backend/internal/logger"
	"shophub_backend/internal/models"
	"shophub_backend/internal/repositories"
	"shophub_backend/internal/services/dto"
	"shophub_backend/internal/verification"
	"shophub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	SendVerification(db *gorm.DB, email string) error
	VerifyCode(db *gorm.DB, email, code string) error
	CheckEmail(db *gorm.DB, email string) (bool, error)
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	ForgotPassword(db *gorm.DB, email string) error
	ResetPassword(db *gorm.DB, token, newPassword string) error
	ChangePassword(db *gorm.DB, userID, currentPassword, newPassword string) error
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	emailProvider email.Provider
	codes         verification.CodeStore
	resetTokens   verification.TokenStore
}

func NewAuthService(
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
	codes verification.CodeStore,
	resetTokens verification.TokenStore,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		emailProvider: emailProvider,
		codes:         codes,
		resetTokens:   resetTokens,
	}
}

// SendVerification issues a fresh code for the email and mails it. A reissue
// silently discards any code still outstanding for the same address.
func (s *AuthServiceImpl) SendVerification(db *gorm.DB, emailAddr string) error {
	code, err := s.codes.Issue(emailAddr)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.emailProvider.SendVerificationCode(emailAddr, code); err != nil {
		logger.Error("failed to send verification email", "email", emailAddr, "error", err)
		return apperrors.ErrEmailSendFailed
	}

	return nil
}

func (s *AuthServiceImpl) VerifyCode(db *gorm.DB, emailAddr, code string) error {
	if !s.codes.Check(emailAddr, code) {
		return apperrors.ErrInvalidOperation("auth", "Invalid or expired verification code")
	}
	return nil
}

func (s *AuthServiceImpl) CheckEmail(db *gorm.DB, emailAddr string) (bool, error) {
	exists, err := s.userRepo.EmailExists(db, emailAddr)
	if err != nil {
		return false, apperrors.InternalError(err)
	}
	return exists, nil
}

// Register creates the user. The client flow calls this only after the
// verification code was accepted, so the account starts verified.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		FullName:     req.FullName,
		Email:        req.Email,
		Mobile:       req.Mobile,
		PasswordHash: hashedPassword,
		Role:         models.UserRoleCustomer,
		IsActive:     true,
		IsVerified:   true,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return dto.NewUserResponse(user), nil
}

func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			// Same error as a wrong password, so probing for accounts
			// through the login endpoint learns nothing.
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDeactivated
	}

	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	}, nil
}

// ForgotPassword issues a reset token and mails the link. An unknown email is
// reported as success so the endpoint does not reveal which addresses have
// accounts.
func (s *AuthServiceImpl) ForgotPassword(db *gorm.DB, emailAddr string) error {
	if _, err := s.userRepo.FindByEmail(db, emailAddr); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil
		}
		return apperrors.InternalError(err)
	}

	token, err := s.resetTokens.Issue(emailAddr)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.emailProvider.SendPasswordReset(emailAddr, token); err != nil {
		logger.Error("failed to send password reset email", "email", emailAddr, "error", err)
		return apperrors.ErrEmailSendFailed
	}

	return nil
}

func (s *AuthServiceImpl) ResetPassword(db *gorm.DB, token, newPassword string) error {
	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.NewBadRequestError(err.Error())
	}

	emailAddr, ok := s.resetTokens.Consume(token)
	if !ok {
		return apperrors.ErrInvalidOperation("auth", "Invalid or expired reset token")
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePasswordByEmail(db, emailAddr, hashedPassword); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err, "user", "User not found")
		}
		return apperrors.InternalError(err)
	}

	return nil
}

func (s *AuthServiceImpl) ChangePassword(db *gorm.DB, userID, currentPassword, newPassword string) error {
	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.NewBadRequestError(err.Error())
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err, "user", "User not found")
		}
		return apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return apperrors.ErrInvalidOperation("auth", "Current password is incorrect")
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	return s.userRepo.UpdateFields(db, userID, map[string]interface{}{
		"password_hash": hashedPassword,
	})
}
