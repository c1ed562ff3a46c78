package utils

import (
	"fmt"
	"path"
	"strings"
	"time"
)

// Storage keys double as the folder layout the Files browser walks:
// uploader email folder, then Mass date folder, then files. The field
// order inside the file name is relied on by that browser (part is
// everything before the first underscore) and must not change.

func sanitizeKeyPart(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '@' || r == '.' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

func fileExt(fileName string) string {
	ext := strings.TrimPrefix(path.Ext(fileName), ".")
	if ext == "" {
		return "bin"
	}
	return strings.ToLower(ext)
}

// SubmissionFileKey derives the storage key for one attached file of a
// lineup submission:
//
//	<email>/<mass date>/<part>_<mass date>_<mass time>_<upload millis>.<ext>
func SubmissionFileKey(uploaderEmail, massDate, partKey, massTime, originalName string, uploadedAt time.Time) string {
	return fmt.Sprintf("%s/%s/%s_%s_%s_%d.%s",
		sanitizeKeyPart(uploaderEmail),
		massDate,
		sanitizeKeyPart(partKey),
		massDate,
		sanitizeKeyPart(massTime),
		uploadedAt.UnixMilli(),
		fileExt(originalName),
	)
}

// AnnouncementMediaKey derives the storage key for an announcement
// attachment inside the shared bucket's announcements folder.
func AnnouncementMediaKey(originalName string, uploadedAt time.Time) (string, error) {
	rnd, err := GenerateSecureToken(5)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("announcements/announcement_%d_%s.%s",
		uploadedAt.UnixMilli(), rnd, fileExt(originalName)), nil
}

// ProfilePictureKey derives the storage key for an account profile picture.
func ProfilePictureKey(originalName string, uploadedAt time.Time) (string, error) {
	rnd, err := GenerateSecureToken(4)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("profiles/%d_%s.%s",
		uploadedAt.UnixMilli(), rnd, fileExt(originalName)), nil
}

// AllowedUploadExts are the sheet-music / lyric document types a choir
// member may attach to a submission.
var AllowedUploadExts = map[string]bool{
	"pdf":  true,
	"doc":  true,
	"docx": true,
}

func IsAllowedUploadName(fileName string) bool {
	return AllowedUploadExts[fileExt(fileName)]
}
