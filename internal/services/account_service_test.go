package services

import (
	"context"
	"io"
	"strings"
	"testing"

	dbm "github.com/zldymlg/soccom-lineup/internal/models/db_models"
	"github.com/zldymlg/soccom-lineup/internal/models/request_models"
	"github.com/zldymlg/soccom-lineup/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func createRequest() request_models.CreateAccountRequest {
	return request_models.CreateAccountRequest{
		Name:     "Jose Rizal",
		Email:    "Jose@Example.com",
		Position: "Choir",
		Password: "secret123",
	}
}

func pngUpload() *ProfileUpload {
	return &ProfileUpload{
		FileName:    "me.png",
		ContentType: "image/png",
		Content:     strings.NewReader("fake png bytes"),
	}
}

func TestCreateAccountUploadsThenInserts(t *testing.T) {
	var inserted *dbm.Account
	var uploadedBucket, uploadedKey string

	accounts := &fakeAccountRepo{
		FindByEmailFn: func(ctx context.Context, email string) (*dbm.Account, error) {
			return nil, utils.ErrAccountNotFound
		},
		InsertFn: func(ctx context.Context, account *dbm.Account) error {
			inserted = account
			return nil
		},
	}
	creds := &fakeCredentialRepo{
		UpsertFn: func(ctx context.Context, email, passwordHash string) error {
			assert.Equal(t, "jose@example.com", email)
			assert.NoError(t, utils.ComparePasswords(passwordHash, "secret123"))
			return nil
		},
	}
	blobs := &fakeBlobStore{
		UploadFn: func(ctx context.Context, bucket, key string, r io.Reader, contentType string) error {
			uploadedBucket = bucket
			uploadedKey = key
			assert.Equal(t, "image/png", contentType)
			return nil
		},
	}
	svc := NewAccountService(accounts, creds, blobs, testBuckets(), zap.NewNop())

	account, err := svc.CreateAccount(context.Background(), createRequest(), pngUpload())
	require.NoError(t, err)

	assert.Equal(t, "profiles", uploadedBucket)
	assert.True(t, strings.HasPrefix(uploadedKey, "profiles/"))
	assert.True(t, strings.HasSuffix(uploadedKey, ".png"))

	require.NotNil(t, inserted)
	assert.Equal(t, "jose@example.com", inserted.Email)
	assert.Equal(t, "choir", inserted.Role)
	assert.Contains(t, inserted.ProfileURL, uploadedKey)
	assert.Equal(t, inserted, account)
}

func TestCreateAccountRequiresPicture(t *testing.T) {
	svc := NewAccountService(&fakeAccountRepo{}, &fakeCredentialRepo{}, &fakeBlobStore{}, testBuckets(), zap.NewNop())

	_, err := svc.CreateAccount(context.Background(), createRequest(), nil)
	assert.ErrorIs(t, err, utils.ErrProfileRequired)
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	accounts := &fakeAccountRepo{
		FindByEmailFn: func(ctx context.Context, email string) (*dbm.Account, error) {
			return testAccount(), nil
		},
	}
	svc := NewAccountService(accounts, &fakeCredentialRepo{}, &fakeBlobStore{}, testBuckets(), zap.NewNop())

	_, err := svc.CreateAccount(context.Background(), createRequest(), pngUpload())
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestCreateAccountUploadFailureWritesNothing(t *testing.T) {
	inserts := 0
	accounts := &fakeAccountRepo{
		FindByEmailFn: func(ctx context.Context, email string) (*dbm.Account, error) {
			return nil, utils.ErrAccountNotFound
		},
		InsertFn: func(ctx context.Context, account *dbm.Account) error {
			inserts++
			return nil
		},
	}
	blobs := &fakeBlobStore{
		UploadFn: func(ctx context.Context, bucket, key string, r io.Reader, contentType string) error {
			return io.ErrUnexpectedEOF
		},
	}
	svc := NewAccountService(accounts, &fakeCredentialRepo{}, blobs, testBuckets(), zap.NewNop())

	_, err := svc.CreateAccount(context.Background(), createRequest(), pngUpload())
	assert.ErrorIs(t, err, utils.ErrStorageError)
	assert.Zero(t, inserts)
}

func TestUpdateAccountKeepsExistingPicture(t *testing.T) {
	existing := testAccount()
	var updated *dbm.Account
	accounts := &fakeAccountRepo{
		FindByEmailFn: func(ctx context.Context, email string) (*dbm.Account, error) {
			return existing, nil
		},
		UpdateFn: func(ctx context.Context, account *dbm.Account) error {
			updated = account
			return nil
		},
	}
	svc := NewAccountService(accounts, &fakeCredentialRepo{}, &fakeBlobStore{}, testBuckets(), zap.NewNop())

	account, err := svc.UpdateAccount(context.Background(), existing.ID, existing.Email, request_models.UpdateAccountRequest{
		Name:     "Maria C.",
		Email:    existing.Email,
		Position: "Soccom",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, existing.ProfileURL, account.ProfileURL)
	assert.Equal(t, "soccom", updated.Role)
	assert.Equal(t, existing.ID, updated.ID)
}

func TestUpdateAccountReplacesPicture(t *testing.T) {
	existing := testAccount()
	accounts := &fakeAccountRepo{
		FindByEmailFn: func(ctx context.Context, email string) (*dbm.Account, error) {
			return existing, nil
		},
		UpdateFn: func(ctx context.Context, account *dbm.Account) error {
			return nil
		},
	}
	svc := NewAccountService(accounts, &fakeCredentialRepo{}, &fakeBlobStore{}, testBuckets(), zap.NewNop())

	account, err := svc.UpdateAccount(context.Background(), existing.ID, existing.Email, request_models.UpdateAccountRequest{
		Name:     existing.Name,
		Email:    existing.Email,
		Position: "choir",
	}, pngUpload())
	require.NoError(t, err)
	assert.NotEqual(t, existing.ProfileURL, account.ProfileURL)
	assert.Contains(t, account.ProfileURL, "profiles/")
}

func TestDeleteAccountRemovesFromList(t *testing.T) {
	roster := []dbm.Account{
		{ID: 1, Name: "A", Email: "a@example.com"},
		{ID: 2, Name: "B", Email: "b@example.com"},
	}
	accounts := &fakeAccountRepo{
		ListFn: func(ctx context.Context) ([]dbm.Account, error) {
			return roster, nil
		},
		DeleteFn: func(ctx context.Context, id int64) error {
			var kept []dbm.Account
			for _, a := range roster {
				if a.ID != id {
					kept = append(kept, a)
				}
			}
			roster = kept
			return nil
		},
	}
	svc := NewAccountService(accounts, &fakeCredentialRepo{}, &fakeBlobStore{}, testBuckets(), zap.NewNop())

	require.NoError(t, svc.DeleteAccount(context.Background(), 1))

	list, err := svc.ListAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(2), list[0].ID)
}
