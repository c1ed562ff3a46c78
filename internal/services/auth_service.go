package services

import (
	"context"
	"errors"
	"time"

	dbm "github.com/zldymlg/soccom-lineup/internal/models/db_models"
	"github.com/zldymlg/soccom-lineup/internal/models/response_models"
	"github.com/zldymlg/soccom-lineup/internal/repositories"
	mem "github.com/zldymlg/soccom-lineup/pkg/memcache"
	"github.com/zldymlg/soccom-lineup/pkg/utils"
	"go.uber.org/zap"
)

const resetCodeTTL = 15 * time.Minute

type IAuthService interface {
	Login(ctx context.Context, email, password string) (*response_models.SessionResponse, error)
	Logout(email string)
	ForgotPassword(ctx context.Context, email string) error
	VerifyResetCode(token string) error
	ResetPassword(ctx context.Context, token, newPassword, confirmPassword string) error
}

type authService struct {
	accountRepo    repositories.AccountRepository
	credentialRepo repositories.CredentialRepository
	sessions       mem.SessionStore
	resetTokens    mem.ResetTokenStore
	mail           IMailService
	logger         *zap.Logger
}

func NewAuthService(
	accountRepo repositories.AccountRepository,
	credentialRepo repositories.CredentialRepository,
	sessions mem.SessionStore,
	resetTokens mem.ResetTokenStore,
	mail IMailService,
	logger *zap.Logger,
) IAuthService {
	return &authService{
		accountRepo:    accountRepo,
		credentialRepo: credentialRepo,
		sessions:       sessions,
		resetTokens:    resetTokens,
		mail:           mail,
		logger:         logger,
	}
}

// Login checks the password hash, then resolves the member profile from
// whichever casing of the accounts table answers. A missing credential
// row and a bad password are reported identically.
func (s *authService) Login(ctx context.Context, email, password string) (*response_models.SessionResponse, error) {
	hash, err := s.credentialRepo.FindHashByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, utils.ErrAccountNotFound) {
			return nil, utils.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := utils.ComparePasswords(hash, password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	token, err := utils.CreateToken(account.Email, account.Name, account.Role, account.ProfileURL)
	if err != nil {
		s.logger.Error("sign session token", zap.Error(err))
		return nil, err
	}

	s.sessions.Put(mem.Session{
		Email:      account.Email,
		Name:       account.Name,
		Role:       account.Role,
		ProfileURL: account.ProfileURL,
	})

	return &response_models.SessionResponse{
		Token:      token,
		Email:      account.Email,
		Name:       account.Name,
		Role:       account.Role,
		ProfileURL: account.ProfileURL,
	}, nil
}

func (s *authService) Logout(email string) {
	s.sessions.Clear(email)
}

// ForgotPassword mails a reset code to the account's address. An
// unknown email is still an error here: the admin provisions accounts,
// so there is no enumeration concern inside the choir.
func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	code, err := utils.GenerateOtpCode(6)
	if err != nil {
		return err
	}
	s.resetTokens.Set(code, account.Email, resetCodeTTL)

	if err := s.mail.SendResetCode(account.Email, account.Name, code); err != nil {
		s.logger.Error("send reset code", zap.String("email", account.Email), zap.Error(err))
		return err
	}
	return nil
}

func (s *authService) VerifyResetCode(token string) error {
	if _, ok := s.resetTokens.Peek(token); !ok {
		return utils.ErrInvalidResetToken
	}
	return nil
}

// ResetPassword consumes the code so it cannot be replayed, even when
// the subsequent hash update fails.
func (s *authService) ResetPassword(ctx context.Context, token, newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		return utils.ErrPasswordMismatch
	}

	email := s.resetTokens.Consume(token)
	if email == "" {
		return utils.ErrInvalidResetToken
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.credentialRepo.UpdatePassword(ctx, email, hash); err != nil {
		return err
	}

	s.sessions.Clear(email)
	return nil
}

// IsPrivileged reports whether a role may use the admin surfaces.
// soccom members administrate alongside admins.
func IsPrivileged(role string) bool {
	return role == dbm.RoleAdmin || role == dbm.RoleSoccom
}
