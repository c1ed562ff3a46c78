package services

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/zldymlg/soccom-lineup/internal/infra"
	dbm "github.com/zldymlg/soccom-lineup/internal/models/db_models"
	"github.com/zldymlg/soccom-lineup/internal/models/request_models"
	"github.com/zldymlg/soccom-lineup/internal/repositories"
	"github.com/zldymlg/soccom-lineup/pkg/utils"
	"go.uber.org/zap"
)

// ProfileUpload is an incoming profile picture. Nil means the caller
// did not attach one.
type ProfileUpload struct {
	FileName    string
	ContentType string
	Content     io.Reader
}

type IAccountService interface {
	ListAccounts(ctx context.Context) ([]dbm.Account, error)
	CreateAccount(ctx context.Context, request request_models.CreateAccountRequest, picture *ProfileUpload) (*dbm.Account, error)
	UpdateAccount(ctx context.Context, id int64, email string, request request_models.UpdateAccountRequest, picture *ProfileUpload) (*dbm.Account, error)
	DeleteAccount(ctx context.Context, id int64) error
}

type accountService struct {
	accountRepo    repositories.AccountRepository
	credentialRepo repositories.CredentialRepository
	blobs          infra.BlobStore
	buckets        infra.Buckets
	logger         *zap.Logger
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	credentialRepo repositories.CredentialRepository,
	blobs infra.BlobStore,
	buckets infra.Buckets,
	logger *zap.Logger,
) IAccountService {
	return &accountService{
		accountRepo:    accountRepo,
		credentialRepo: credentialRepo,
		blobs:          blobs,
		buckets:        buckets,
		logger:         logger,
	}
}

func (s *accountService) ListAccounts(ctx context.Context) ([]dbm.Account, error) {
	return s.accountRepo.List(ctx)
}

// CreateAccount provisions the member row and the login credential in
// one flow. The profile picture is mandatory on create; the row is not
// written until the upload succeeded, so a failed upload leaves no
// half-provisioned member.
func (s *accountService) CreateAccount(ctx context.Context, request request_models.CreateAccountRequest, picture *ProfileUpload) (*dbm.Account, error) {
	if picture == nil {
		return nil, utils.ErrProfileRequired
	}

	email := strings.ToLower(strings.TrimSpace(request.Email))
	if existing, err := s.accountRepo.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	profileURL, err := s.uploadProfilePicture(ctx, picture)
	if err != nil {
		return nil, err
	}

	account := &dbm.Account{
		Name:       strings.TrimSpace(request.Name),
		Role:       strings.ToLower(strings.TrimSpace(request.Position)),
		Email:      email,
		ProfileURL: profileURL,
		Phone:      strings.TrimSpace(request.Phone),
		Department: strings.TrimSpace(request.Department),
	}
	if err := s.accountRepo.Insert(ctx, account); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, err
	}
	// Upsert tolerates a credential row left over from a previously
	// deleted account with the same email.
	if err := s.credentialRepo.Upsert(ctx, email, hash); err != nil {
		s.logger.Error("provision credentials", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	return account, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, id int64, email string, request request_models.UpdateAccountRequest, picture *ProfileUpload) (*dbm.Account, error) {
	existing, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	profileURL := existing.ProfileURL
	if picture != nil {
		profileURL, err = s.uploadProfilePicture(ctx, picture)
		if err != nil {
			return nil, err
		}
	}
	if profileURL == "" {
		return nil, utils.ErrProfileRequired
	}

	account := &dbm.Account{
		ID:         id,
		Name:       strings.TrimSpace(request.Name),
		Role:       strings.ToLower(strings.TrimSpace(request.Position)),
		Email:      strings.ToLower(strings.TrimSpace(request.Email)),
		ProfileURL: profileURL,
		Phone:      strings.TrimSpace(request.Phone),
		Department: strings.TrimSpace(request.Department),
	}
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, id int64) error {
	return s.accountRepo.Delete(ctx, id)
}

func (s *accountService) uploadProfilePicture(ctx context.Context, picture *ProfileUpload) (string, error) {
	key, err := utils.ProfilePictureKey(picture.FileName, time.Now())
	if err != nil {
		return "", err
	}
	if err := s.blobs.Upload(ctx, s.buckets.Profiles, key, picture.Content, picture.ContentType); err != nil {
		s.logger.Error("upload profile picture", zap.String("key", key), zap.Error(err))
		return "", utils.ErrStorageError
	}
	return s.blobs.PublicURL(s.buckets.Profiles, key), nil
}
