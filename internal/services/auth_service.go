package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/sq23rd/roster-backend/internal/auth"
	"github.com/sq23rd/roster-backend/internal/email"
	"github.com/sq23rd/roster-backend/internal/logger"
	"github.com/sq23rd/roster-backend/internal/models"
	"github.com/sq23rd/roster-backend/internal/repositories"
	"github.com/sq23rd/roster-backend/internal/services/dto"
	"github.com/sq23rd/roster-backend/pkg/apperrors"
)

type AuthService interface {
	// Register creates the account and returns the confirmation message
	// shown to the user.
	Register(req *dto.RegisterRequest) (string, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	RequestPasswordReset(personalEmail string) error
	ResetPassword(token, newPassword string) error
}

// AuthConfig is the policy surface of the registration and reset flows.
type AuthConfig struct {
	LoginDomain      string
	AllowAdminSignup bool
	ResetTokenTTL    time.Duration
	FrontendURL      string
	PasswordPolicy   auth.PasswordPolicy
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	hasher   *auth.Hasher
	tokens   *auth.TokenService
	mail     email.Provider
	cfg      AuthConfig
}

func NewAuthService(
	userRepo repositories.UserRepository,
	hasher *auth.Hasher,
	tokens *auth.TokenService,
	mail email.Provider,
	cfg AuthConfig,
) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		mail:     mail,
		cfg:      cfg,
	}
}

func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (string, error) {
	personalEmail := strings.TrimSpace(req.Email)

	localPart, _, ok := strings.Cut(personalEmail, "@")
	if !ok || localPart == "" {
		return "", apperrors.NewBadRequestError("Invalid email format.")
	}

	if err := s.cfg.PasswordPolicy.Validate(req.Password); err != nil {
		return "", apperrors.NewBadRequestError(err.Error())
	}

	role, err := s.signupRole(req.Role)
	if err != nil {
		return "", err
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return "", apperrors.InternalError(err)
	}

	name := req.Name
	if name == "" {
		name = "New User"
	}

	user := &models.User{
		PersonalEmail: personalEmail,
		LoginEmail:    fmt.Sprintf("%s@%s", localPart, s.cfg.LoginDomain),
		PasswordHash:  passwordHash,
		Name:          name,
		Role:          role,
		Status:        models.UserStatusPending,
	}

	// The store enforces uniqueness and settles the first-owner race; any
	// pre-check here would only be an optimization.
	ownerClaimed, err := s.userRepo.Create(user)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserExists) {
			return "", apperrors.ErrEmailAlreadyExists
		}
		return "", apperrors.InternalError(err)
	}

	msg := fmt.Sprintf("Registration successful! Your login email will be %s. ", user.LoginEmail)
	switch {
	case ownerClaimed:
		msg += "You have been assigned as the owner of this system."
	case user.Role == models.UserRoleAdmin:
		msg += "Your administrator account is pending approval."
	default:
		msg += "Your account is pending admin approval."
	}
	return msg, nil
}

// signupRole resolves the role a self-registered account starts with. Every
// role except admin-by-policy is granted later by an owner or admin, never
// claimed at signup.
func (s *AuthServiceImpl) signupRole(requested string) (models.UserRole, error) {
	if requested == "" {
		return models.UserRoleUser, nil
	}

	role := models.UserRole(requested)
	if !models.ValidRole(role) {
		return "", apperrors.ErrInvalidUserRole
	}

	if role == models.UserRoleAdmin && s.cfg.AllowAdminSignup {
		return models.UserRoleAdmin, nil
	}
	return models.UserRoleUser, nil
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByLoginEmail(strings.TrimSpace(req.Email))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			// Same outcome as a wrong password.
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	switch user.Status {
	case models.UserStatusApproved:
		// continue
	case models.UserStatusDenied:
		return nil, apperrors.ErrAccountDenied
	default:
		return nil, apperrors.ErrAccountPending
	}

	if !s.hasher.Verify(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Message: "Login successful.",
		Token:   token,
		User:    dto.NewUserView(user),
	}, nil
}

func (s *AuthServiceImpl) RequestPasswordReset(personalEmail string) error {
	user, err := s.userRepo.FindByPersonalEmail(strings.TrimSpace(personalEmail))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	plain, hash, err := auth.NewResetToken()
	if err != nil {
		return apperrors.InternalError(err)
	}

	// Overwrites any earlier pending reset: at most one outstanding token
	// per account.
	expiry := time.Now().Add(s.cfg.ResetTokenTTL)
	if err := s.userRepo.SetResetToken(user.ID, hash, expiry); err != nil {
		return apperrors.InternalError(err)
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.cfg.FrontendURL, plain)
	if err := s.mail.SendPasswordReset(user.PersonalEmail, resetLink); err != nil {
		logger.Error("password reset email delivery failed", "error", err.Error())
		return apperrors.ErrMailDelivery(err)
	}
	return nil
}

func (s *AuthServiceImpl) ResetPassword(token, newPassword string) error {
	if err := s.cfg.PasswordPolicy.Validate(newPassword); err != nil {
		return apperrors.NewBadRequestError(err.Error())
	}

	passwordHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	err = s.userRepo.ConsumeResetToken(auth.HashResetToken(token), passwordHash, time.Now())
	if err != nil {
		if apperrors.Is(err, repositories.ErrNoPendingReset) {
			// Wrong, consumed and expired tokens all land here.
			return apperrors.ErrInvalidResetToken
		}
		return apperrors.InternalError(err)
	}
	return nil
}
