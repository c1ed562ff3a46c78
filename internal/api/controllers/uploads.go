package controllers

import (
	"mime/multipart"

	"github.com/zldymlg/soccom-lineup/internal/services"
)

// openedFile pairs a form file's reader with its metadata and keeps the
// handle so the caller can close it after the service returns.
type openedFile struct {
	file        multipart.File
	fileName    string
	contentType string
}

func openFormFile(header *multipart.FileHeader) (*openedFile, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	return &openedFile{
		file:        f,
		fileName:    header.Filename,
		contentType: header.Header.Get("Content-Type"),
	}, nil
}

func (o *openedFile) Close() {
	_ = o.file.Close()
}

func (o *openedFile) profileUpload() *services.ProfileUpload {
	return &services.ProfileUpload{
		FileName:    o.fileName,
		ContentType: o.contentType,
		Content:     o.file,
	}
}

func (o *openedFile) mediaUpload() services.MediaUpload {
	return services.MediaUpload{
		FileName:    o.fileName,
		ContentType: o.contentType,
		Content:     o.file,
	}
}

func (o *openedFile) slotFile(partKey string) services.SlotFile {
	return services.SlotFile{
		PartKey:     partKey,
		FileName:    o.fileName,
		ContentType: o.contentType,
		Content:     o.file,
	}
}
