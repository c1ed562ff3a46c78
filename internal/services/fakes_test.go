package services

import (
	"context"
	"io"
	"time"

	"github.com/zldymlg/soccom-lineup/internal/infra"
	dbm "github.com/zldymlg/soccom-lineup/internal/models/db_models"
)

// Function-field fakes: each test sets only the calls it expects.

type fakeAccountRepo struct {
	ListFn        func(ctx context.Context) ([]dbm.Account, error)
	FindByEmailFn func(ctx context.Context, email string) (*dbm.Account, error)
	InsertFn      func(ctx context.Context, account *dbm.Account) error
	UpdateFn      func(ctx context.Context, account *dbm.Account) error
	DeleteFn      func(ctx context.Context, id int64) error
}

func (f *fakeAccountRepo) List(ctx context.Context) ([]dbm.Account, error) {
	return f.ListFn(ctx)
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*dbm.Account, error) {
	return f.FindByEmailFn(ctx, email)
}

func (f *fakeAccountRepo) Insert(ctx context.Context, account *dbm.Account) error {
	return f.InsertFn(ctx, account)
}

func (f *fakeAccountRepo) Update(ctx context.Context, account *dbm.Account) error {
	return f.UpdateFn(ctx, account)
}

func (f *fakeAccountRepo) Delete(ctx context.Context, id int64) error {
	return f.DeleteFn(ctx, id)
}

type fakeCredentialRepo struct {
	FindHashByEmailFn func(ctx context.Context, email string) (string, error)
	UpsertFn          func(ctx context.Context, email, passwordHash string) error
	UpdatePasswordFn  func(ctx context.Context, email, passwordHash string) error
}

func (f *fakeCredentialRepo) FindHashByEmail(ctx context.Context, email string) (string, error) {
	return f.FindHashByEmailFn(ctx, email)
}

func (f *fakeCredentialRepo) Upsert(ctx context.Context, email, passwordHash string) error {
	return f.UpsertFn(ctx, email, passwordHash)
}

func (f *fakeCredentialRepo) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	return f.UpdatePasswordFn(ctx, email, passwordHash)
}

type fakeLineupRepo struct {
	UpcomingFn        func(ctx context.Context, since time.Time, limit int) ([]dbm.LineupApproval, error)
	FindByIDFn        func(ctx context.Context, id int64) (*dbm.LineupApproval, error)
	NextScheduledFn   func(ctx context.Context, after time.Time) (*dbm.LineupApproval, error)
	ApproveFn         func(ctx context.Context, id int64, approvedAt time.Time) error
	UpdateApprovalFn  func(ctx context.Context, id int64, name, position, status string) error
	ProfileURLByNameF func(ctx context.Context, name string) (string, error)
}

func (f *fakeLineupRepo) Upcoming(ctx context.Context, since time.Time, limit int) ([]dbm.LineupApproval, error) {
	return f.UpcomingFn(ctx, since, limit)
}

func (f *fakeLineupRepo) FindByID(ctx context.Context, id int64) (*dbm.LineupApproval, error) {
	return f.FindByIDFn(ctx, id)
}

func (f *fakeLineupRepo) NextScheduled(ctx context.Context, after time.Time) (*dbm.LineupApproval, error) {
	return f.NextScheduledFn(ctx, after)
}

func (f *fakeLineupRepo) Approve(ctx context.Context, id int64, approvedAt time.Time) error {
	return f.ApproveFn(ctx, id, approvedAt)
}

func (f *fakeLineupRepo) UpdateApproval(ctx context.Context, id int64, name, position, status string) error {
	return f.UpdateApprovalFn(ctx, id, name, position, status)
}

func (f *fakeLineupRepo) ProfileURLByName(ctx context.Context, name string) (string, error) {
	return f.ProfileURLByNameF(ctx, name)
}

type fakeSubmissionRepo struct {
	InsertFn   func(ctx context.Context, sub *dbm.LineupSubmission) (int64, error)
	FindByIDFn func(ctx context.Context, id int64) (*dbm.LineupSubmission, error)
	RecentFn   func(ctx context.Context, limit int) ([]dbm.LineupSubmission, error)
	UpdateFn   func(ctx context.Context, id int64, sub *dbm.LineupSubmission) error
}

func (f *fakeSubmissionRepo) Insert(ctx context.Context, sub *dbm.LineupSubmission) (int64, error) {
	return f.InsertFn(ctx, sub)
}

func (f *fakeSubmissionRepo) FindByID(ctx context.Context, id int64) (*dbm.LineupSubmission, error) {
	return f.FindByIDFn(ctx, id)
}

func (f *fakeSubmissionRepo) Recent(ctx context.Context, limit int) ([]dbm.LineupSubmission, error) {
	return f.RecentFn(ctx, limit)
}

func (f *fakeSubmissionRepo) Update(ctx context.Context, id int64, sub *dbm.LineupSubmission) error {
	return f.UpdateFn(ctx, id, sub)
}

type fakeAnnouncementRepo struct {
	ListFn   func(ctx context.Context) ([]dbm.Announcement, error)
	InsertFn func(ctx context.Context, a *dbm.Announcement) error
	DeleteFn func(ctx context.Context, id int64) error
}

func (f *fakeAnnouncementRepo) List(ctx context.Context) ([]dbm.Announcement, error) {
	return f.ListFn(ctx)
}

func (f *fakeAnnouncementRepo) Insert(ctx context.Context, a *dbm.Announcement) error {
	return f.InsertFn(ctx, a)
}

func (f *fakeAnnouncementRepo) Delete(ctx context.Context, id int64) error {
	return f.DeleteFn(ctx, id)
}

type fakeBlobStore struct {
	UploadFn func(ctx context.Context, bucket, key string, r io.Reader, contentType string) error
	ListFn   func(ctx context.Context, bucket, prefix string) ([]infra.BlobInfo, error)
}

func (f *fakeBlobStore) Upload(ctx context.Context, bucket, key string, r io.Reader, contentType string) error {
	if f.UploadFn == nil {
		return nil
	}
	return f.UploadFn(ctx, bucket, key, r, contentType)
}

func (f *fakeBlobStore) List(ctx context.Context, bucket, prefix string) ([]infra.BlobInfo, error) {
	return f.ListFn(ctx, bucket, prefix)
}

func (f *fakeBlobStore) PublicURL(bucket, key string) string {
	return "https://storage.example.com/" + bucket + "/" + key
}

type fakeMailService struct {
	SendResetCodeFn func(toEmail, toName, code string) error
}

func (f *fakeMailService) SendResetCode(toEmail, toName, code string) error {
	if f.SendResetCodeFn == nil {
		return nil
	}
	return f.SendResetCodeFn(toEmail, toName, code)
}

func testBuckets() infra.Buckets {
	return infra.Buckets{Files: "PDF", Profiles: "profiles"}
}
