/*
Package ingest converts uploaded attachments into text that can be appended to
a conversation turn.

Image attachments are never decoded; they become a short placeholder naming the
file. Anything else must be valid UTF-8 text or the attachment is refused.
*/
package ingest

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"carai/internal/pkg/errs"
)

const (
	// MaxAttachmentSizeMB is the maximum allowed attachment size in megabytes.
	MaxAttachmentSizeMB = 5

	// MaxAttachmentSize is the maximum allowed attachment size in bytes.
	MaxAttachmentSize = MaxAttachmentSizeMB * 1024 * 1024
)

// ImageMIMETypes defines the MIME types treated as images and therefore
// represented by a placeholder instead of decoded content.
var ImageMIMETypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
	"image/gif":  {},
}

// ImageExtensions maps image file extensions to their expected MIME types,
// used to classify attachments whose declared MIME type is missing or generic.
var ImageExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
}

// Attachment is an uploaded file awaiting ingestion. It is ephemeral: Ingest
// consumes it into message text and nothing retains the raw bytes afterwards.
type Attachment struct {
	Filename string
	MimeType string
	Data     []byte
}

// blockedMIMEPrefixes lists declared MIME types that are neither images nor
// plausibly text. They are refused up front instead of failing UTF-8 checks
// with a confusing error.
var blockedMIMEPrefixes = []string{
	"audio/",
	"video/",
	"application/zip",
	"application/gzip",
	"application/pdf",
	"application/vnd.",
	"application/x-tar",
	"application/x-7z",
	"application/x-rar",
	"application/x-msdownload",
}

// IsImage reports whether the attachment should be treated as an image, based
// on its declared MIME type first and its file extension as a fallback.
func (a *Attachment) IsImage() bool {
	if _, ok := ImageMIMETypes[strings.ToLower(a.MimeType)]; ok {
		return true
	}

	ext := strings.ToLower(filepath.Ext(a.Filename))
	_, ok := ImageExtensions[ext]
	return ok
}

// ValidateSize checks that the attachment is non-empty and within the size limit.
func ValidateSize(size int64) *errs.CustomError {
	if size <= 0 {
		return errs.NewError(errs.ErrInvalidParams)
	}

	if size > MaxAttachmentSize {
		return errs.NewError(errs.ErrAttachmentTooLarge)
	}

	return nil
}

// Ingest converts the attachment into appendable text.
// Image attachments yield an opaque placeholder referencing the filename.
// Everything else must decode as UTF-8 text; invalid bytes are reported as
// ErrAttachmentNotText rather than silently producing empty content.
func Ingest(att *Attachment) (string, *errs.CustomError) {
	if customErr := ValidateSize(int64(len(att.Data))); customErr != nil {
		return "", customErr
	}

	if att.IsImage() {
		return fmt.Sprintf("[imagem anexada: %s]", att.Filename), nil
	}

	mimeType := strings.ToLower(att.MimeType)
	for _, prefix := range blockedMIMEPrefixes {
		if strings.HasPrefix(mimeType, prefix) {
			return "", errs.NewError(errs.ErrAttachmentTypeInvalid)
		}
	}

	if !utf8.Valid(att.Data) {
		return "", errs.NewError(errs.ErrAttachmentNotText)
	}

	return string(att.Data), nil
}
