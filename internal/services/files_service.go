package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/zldymlg/soccom-lineup/internal/infra"
	dbm "github.com/zldymlg/soccom-lineup/internal/models/db_models"
	"github.com/zldymlg/soccom-lineup/pkg/utils"
	"go.uber.org/zap"
)

const maxWalkDepth = 6

type IFilesService interface {
	BrowseFiles(ctx context.Context) ([]dbm.FileEntry, error)
}

type filesService struct {
	blobs   infra.BlobStore
	buckets infra.Buckets
	logger  *zap.Logger
}

func NewFilesService(blobs infra.BlobStore, buckets infra.Buckets, logger *zap.Logger) IFilesService {
	return &filesService{blobs: blobs, buckets: buckets, logger: logger}
}

// BrowseFiles walks the whole upload bucket and flattens it into one
// newest-first list. File metadata is mined from the key itself:
// uploads were only ever written as <email>/<date>/<part>_... so the
// segments are the source of truth, not any database row.
func (s *filesService) BrowseFiles(ctx context.Context) ([]dbm.FileEntry, error) {
	var entries []dbm.FileEntry
	seen := make(map[string]bool)

	if err := s.walk(ctx, "", 0, seen, &entries); err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		var ti, tj time.Time
		if entries[i].CreatedAt != nil {
			ti = *entries[i].CreatedAt
		}
		if entries[j].CreatedAt != nil {
			tj = *entries[j].CreatedAt
		}
		return ti.After(tj)
	})
	return entries, nil
}

func (s *filesService) walk(ctx context.Context, prefix string, depth int, seen map[string]bool, entries *[]dbm.FileEntry) error {
	if depth > maxWalkDepth {
		s.logger.Warn("bucket deeper than expected, stopping walk", zap.String("prefix", prefix))
		return nil
	}

	blobs, err := s.blobs.List(ctx, s.buckets.Files, prefix)
	if err != nil {
		return utils.ErrStorageError
	}

	for _, b := range blobs {
		if b.IsFolder {
			if err := s.walk(ctx, b.Key, depth+1, seen, entries); err != nil {
				return err
			}
			continue
		}

		url := s.blobs.PublicURL(s.buckets.Files, b.Key)
		if seen[url] {
			continue
		}
		seen[url] = true

		entry := entryFromKey(b.Key)
		entry.URL = url
		if !b.CreatedAt.IsZero() {
			created := b.CreatedAt
			entry.CreatedAt = &created
		}
		*entries = append(*entries, entry)
	}
	return nil
}

// entryFromKey classifies the key's path segments: a segment with "@"
// is the uploader, a segment shaped like a date is the Mass date, and
// the mass part is the file-name prefix before the first underscore.
func entryFromKey(key string) dbm.FileEntry {
	segments := strings.Split(strings.Trim(key, "/"), "/")
	fileName := segments[len(segments)-1]

	entry := dbm.FileEntry{FileName: fileName}
	for _, seg := range segments[:len(segments)-1] {
		switch {
		case strings.Contains(seg, "@"):
			entry.UploaderEmail = seg
		case looksLikeMassDate(seg):
			entry.Date = seg
		}
	}
	if idx := strings.Index(fileName, "_"); idx > 0 {
		entry.Part = fileName[:idx]
	}
	return entry
}

func looksLikeMassDate(s string) bool {
	_, err := time.Parse(utils.MassDateLayout, s)
	return err == nil
}
