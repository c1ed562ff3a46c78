package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmissionFileKeyLayout(t *testing.T) {
	uploadedAt := time.Date(2025, 3, 14, 12, 30, 45, 0, time.UTC)

	key := SubmissionFileKey("maria@example.com", "2025-03-16", "gloria", "9:00 AM", "Gloria Sheet.pdf", uploadedAt)

	assert.Equal(t, "maria@example.com/2025-03-16/gloria_2025-03-16_9_00_AM_1741955445000.pdf", key)

	// the Files browser depends on these segments
	segments := strings.Split(key, "/")
	require.Len(t, segments, 3)
	assert.Contains(t, segments[0], "@")
	assert.Equal(t, "2025-03-16", segments[1])
	assert.Equal(t, "gloria", strings.SplitN(segments[2], "_", 2)[0])
}

func TestSubmissionFileKeySanitizesUnsafeRunes(t *testing.T) {
	key := SubmissionFileKey("maria clara@example.com", "2025-03-16", "agnus dei", "9:00/AM", "x.PDF", time.UnixMilli(0))

	assert.Equal(t, "maria_clara@example.com/2025-03-16/agnus_dei_2025-03-16_9_00_AM_0.pdf", key)
	assert.NotContains(t, strings.TrimPrefix(key, "maria_clara@example.com/2025-03-16/"), "/")
}

func TestFileExt(t *testing.T) {
	assert.Equal(t, "pdf", fileExt("a.PDF"))
	assert.Equal(t, "docx", fileExt("sheet.music.docx"))
	assert.Equal(t, "bin", fileExt("no-extension"))
}

func TestIsAllowedUploadName(t *testing.T) {
	assert.True(t, IsAllowedUploadName("sheet.pdf"))
	assert.True(t, IsAllowedUploadName("lyrics.DOC"))
	assert.True(t, IsAllowedUploadName("lyrics.docx"))
	assert.False(t, IsAllowedUploadName("virus.exe"))
	assert.False(t, IsAllowedUploadName("photo.png"))
	assert.False(t, IsAllowedUploadName("noext"))
}

func TestAnnouncementMediaKey(t *testing.T) {
	key, err := AnnouncementMediaKey("poster.pdf", time.UnixMilli(1741955445000))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "announcements/announcement_1741955445000_"), key)
	assert.True(t, strings.HasSuffix(key, ".pdf"))
}

func TestProfilePictureKeysAreUnique(t *testing.T) {
	now := time.Now()
	a, err := ProfilePictureKey("me.png", now)
	require.NoError(t, err)
	b, err := ProfilePictureKey("me.png", now)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
