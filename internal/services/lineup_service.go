package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/zldymlg/soccom-lineup/internal/infra"
	dbm "github.com/zldymlg/soccom-lineup/internal/models/db_models"
	"github.com/zldymlg/soccom-lineup/internal/models/request_models"
	"github.com/zldymlg/soccom-lineup/internal/models/response_models"
	"github.com/zldymlg/soccom-lineup/internal/repositories"
	"github.com/zldymlg/soccom-lineup/pkg/utils"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// the board looks back a month so recently past Masses stay visible
	boardWindow = 30 * 24 * time.Hour

	upcomingLimitAdmin     = 200
	upcomingLimitPresenter = 50
	recentSubmissions      = 50
	submissionMimeType     = "application/octet-stream"
)

// SlotFile is one attachment on a mass-part slot of a submission form.
type SlotFile struct {
	PartKey     string
	FileName    string
	ContentType string
	Content     io.Reader
}

type ILineupService interface {
	Board(ctx context.Context, actorRole string) (*response_models.LineupBoardResponse, error)
	View(ctx context.Context, id int64) (*response_models.LineupViewResponse, error)
	Submit(ctx context.Context, uploaderEmail, name, position string, request request_models.SubmitLineupRequest, slots []request_models.SlotInput, files []SlotFile) (*response_models.SubmitLineupResponse, error)
	EditSubmission(ctx context.Context, id int64, actorName, actorRole string, request request_models.EditLineupRequest) (*dbm.LineupSubmission, error)
	EditApproval(ctx context.Context, id int64, request request_models.EditApprovalRequest) error
	ApproveNext(ctx context.Context) (*dbm.LineupApproval, error)
}

type lineupService struct {
	lineupRepo     repositories.LineupRepository
	submissionRepo repositories.SubmissionRepository
	blobs          infra.BlobStore
	buckets        infra.Buckets
	logger         *zap.Logger
	now            func() time.Time
}

func NewLineupService(
	lineupRepo repositories.LineupRepository,
	submissionRepo repositories.SubmissionRepository,
	blobs infra.BlobStore,
	buckets infra.Buckets,
	logger *zap.Logger,
) ILineupService {
	return &lineupService{
		lineupRepo:     lineupRepo,
		submissionRepo: submissionRepo,
		blobs:          blobs,
		buckets:        buckets,
		logger:         logger,
		now:            time.Now,
	}
}

// Board loads the two halves of the dashboard in parallel; both reads
// hit independent tables so one slow side does not serialize the other.
// Either half failing degrades to an empty list rather than blocking
// the page.
func (s *lineupService) Board(ctx context.Context, actorRole string) (*response_models.LineupBoardResponse, error) {
	board := &response_models.LineupBoardResponse{
		Upcoming:    []dbm.LineupApproval{},
		Submissions: []dbm.LineupSubmission{},
	}

	limit := upcomingLimitPresenter
	if IsPrivileged(actorRole) {
		limit = upcomingLimitAdmin
	}
	since := s.now().Add(-boardWindow)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		upcoming, err := s.lineupRepo.Upcoming(gctx, since, limit)
		if err != nil {
			s.logger.Warn("load upcoming lineups", zap.Error(err))
			return nil
		}
		board.Upcoming = upcoming
		return nil
	})
	g.Go(func() error {
		submissions, err := s.submissionRepo.Recent(gctx, recentSubmissions)
		if err != nil {
			s.logger.Warn("load recent submissions", zap.Error(err))
			return nil
		}
		board.Submissions = submissions
		return nil
	})
	_ = g.Wait()

	// Submissions carry no profile picture of their own; borrow the
	// account's by matching names. Purely cosmetic, so misses are fine.
	for i := range board.Submissions {
		if board.Submissions[i].ProfileURL != "" {
			continue
		}
		url, err := s.lineupRepo.ProfileURLByName(ctx, board.Submissions[i].Name)
		if err == nil {
			board.Submissions[i].ProfileURL = url
		}
	}

	return board, nil
}

// View resolves an id against the schedule table first and falls back
// to the submission table, mirroring how lineups were historically
// linked by shared ids rather than foreign keys.
func (s *lineupService) View(ctx context.Context, id int64) (*response_models.LineupViewResponse, error) {
	view := &response_models.LineupViewResponse{}

	approval, err := s.lineupRepo.FindByID(ctx, id)
	if err == nil {
		view.Approval = approval
	} else if !errors.Is(err, utils.ErrLineupNotFound) {
		return nil, err
	}

	submission, err := s.submissionRepo.FindByID(ctx, id)
	if err == nil {
		view.Submission = submission
	} else if !errors.Is(err, utils.ErrLineupNotFound) {
		return nil, err
	}

	if view.Approval == nil && view.Submission == nil {
		return nil, utils.ErrLineupNotFound
	}
	return view, nil
}

type uploadResult struct {
	partKey  string
	fileName string
	url      string
	err      error
}

// Submit persists a member's song plan. Attachments upload
// concurrently and all-settled: one bad file never aborts the batch,
// the row is written with whatever succeeded and the failures are
// reported back by name.
func (s *lineupService) Submit(ctx context.Context, uploaderEmail, name, position string, request request_models.SubmitLineupRequest, slots []request_models.SlotInput, files []SlotFile) (*response_models.SubmitLineupResponse, error) {
	uploadedAt := s.now()

	results := make([]uploadResult, len(files))
	var wg sync.WaitGroup
	for i := range files {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = s.uploadSlotFile(ctx, uploaderEmail, request.MassDate, request.MassTime, files[i], uploadedAt)
		}(i)
	}
	wg.Wait()

	urlsByPart := make(map[string][]string)
	var failed []response_models.FailedUpload
	for _, r := range results {
		if r.err != nil {
			failed = append(failed, response_models.FailedUpload{
				PartKey:  r.partKey,
				FileName: r.fileName,
				Reason:   r.err.Error(),
			})
			continue
		}
		urlsByPart[r.partKey] = append(urlsByPart[r.partKey], r.url)
	}

	submission := &dbm.LineupSubmission{
		Name:     name,
		Position: position,
		MassDate: request.MassDate,
		MassTime: request.MassTime,
	}
	for _, part := range dbm.MassParts {
		slot := dbm.MassPartSlot{Part: part, FileURLs: urlsByPart[part.Key]}
		for _, in := range slots {
			if in.PartKey == part.Key {
				slot.SongTitle = in.SongTitle
				slot.Lyrics = in.Lyrics
			}
		}
		submission.Slots = append(submission.Slots, slot)
	}

	id, err := s.submissionRepo.Insert(ctx, submission)
	if err != nil {
		return nil, err
	}
	submission.ID = id

	if len(failed) > 0 {
		s.logger.Warn("submission stored with failed uploads",
			zap.Int64("id", id), zap.Int("failed", len(failed)))
	}
	return &response_models.SubmitLineupResponse{Lineup: submission, FailedUploads: failed}, nil
}

func (s *lineupService) uploadSlotFile(ctx context.Context, uploaderEmail, massDate, massTime string, f SlotFile, uploadedAt time.Time) uploadResult {
	res := uploadResult{partKey: f.PartKey, fileName: f.FileName}

	if !utils.IsAllowedUploadName(f.FileName) {
		res.err = utils.ErrInvalidFileType
		return res
	}

	key := utils.SubmissionFileKey(uploaderEmail, massDate, f.PartKey, massTime, f.FileName, uploadedAt)
	contentType := f.ContentType
	if contentType == "" {
		contentType = submissionMimeType
	}
	if err := s.blobs.Upload(ctx, s.buckets.Files, key, f.Content, contentType); err != nil {
		s.logger.Warn("upload attachment", zap.String("key", key), zap.Error(err))
		res.err = utils.ErrStorageError
		return res
	}
	res.url = s.blobs.PublicURL(s.buckets.Files, key)
	return res
}

// EditSubmission applies song and lyric changes. Members may only touch
// their own submission and are locked out inside the 24 hours before
// the Mass; admins and soccom edit freely. Submissions carry no account
// id, so ownership rides on the same name link the rest of the system
// uses.
func (s *lineupService) EditSubmission(ctx context.Context, id int64, actorName, actorRole string, request request_models.EditLineupRequest) (*dbm.LineupSubmission, error) {
	submission, err := s.submissionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !IsPrivileged(actorRole) {
		if !sameSubmitter(submission.Name, actorName) {
			return nil, utils.ErrLineupNotOwned
		}
		scheduledAt, perr := utils.ParseMassDateTime(submission.MassDate, submission.MassTime)
		if perr != nil || !utils.CanMutate(scheduledAt, s.now()) {
			return nil, utils.ErrLineupLocked
		}
	}

	submission.Name = request.Name
	if request.Position != "" {
		submission.Position = request.Position
	}
	if request.MassDate != "" {
		submission.MassDate = request.MassDate
	}
	if request.MassTime != "" {
		submission.MassTime = request.MassTime
	}
	for i := range submission.Slots {
		key := submission.Slots[i].Part.Key
		if song, ok := request.Songs[key]; ok {
			submission.Slots[i].SongTitle = song
		}
		if lyrics, ok := request.Lyrics[key]; ok {
			submission.Slots[i].Lyrics = lyrics
		}
	}

	if err := s.submissionRepo.Update(ctx, id, submission); err != nil {
		return nil, err
	}
	return submission, nil
}

func sameSubmitter(stored, actor string) bool {
	return strings.EqualFold(strings.TrimSpace(stored), strings.TrimSpace(actor))
}

func (s *lineupService) EditApproval(ctx context.Context, id int64, request request_models.EditApprovalRequest) error {
	return s.lineupRepo.UpdateApproval(ctx, id, request.Name, request.Position, request.Status)
}

// ApproveNext looks at the earliest future lineup, whatever its status:
// pending rows get approved, anything else is reported without touching
// a later row. No future lineup at all is not an error worth failing
// the call for; it returns nil.
func (s *lineupService) ApproveNext(ctx context.Context) (*dbm.LineupApproval, error) {
	next, err := s.lineupRepo.NextScheduled(ctx, s.now())
	if err != nil {
		if errors.Is(err, utils.ErrLineupNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if next.Status != dbm.StatusPending {
		return nil, utils.ErrLineupNotPending
	}

	approvedAt := s.now()
	if err := s.lineupRepo.Approve(ctx, next.ID, approvedAt); err != nil {
		return nil, err
	}
	next.Status = dbm.StatusApproved
	return next, nil
}
