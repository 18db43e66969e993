/*
Package req provides helper functions for HTTP request parsing and data binding.

It encapsulates JSON body binding and multipart attachment extraction, with
size limits enforced up front so handlers only see well-formed input.
*/
package req

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"carai/internal/pkg/errs"
)

const (
	// MaxFormMemory defines the maximum amount of memory (8 MB) ParseMultipartForm
	// will use to store non-file fields. Larger file fields spill to temporary files.
	MaxFormMemory int64 = 8 << 20 // 8 MB

	// MaxRequestSize defines the maximum allowed size (6 MB) for the entire
	// multipart request body, including the attachment. Enforced via http.MaxBytesReader.
	MaxRequestSize int64 = 6 << 20 // 6 MB

	// AttachmentFieldName is the multipart form field carrying the uploaded file.
	AttachmentFieldName = "file"
)

// BindJSON attempts to bind the JSON data from the HTTP request body to the destination struct dst.
func BindJSON(r *http.Request, dst any) *errs.CustomError {
	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "application/json") {
		return errs.NewError(errs.ErrUnsupportedMediaType)
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return errs.NewError(errs.ErrInvalidJSONFormat)
	}

	if decoder.More() {
		return errs.NewError(errs.ErrExtraContentInBody)
	}

	return nil
}

// SetupMultipart limits the request body size and parses the multipart form.
func SetupMultipart(w http.ResponseWriter, r *http.Request) *errs.CustomError {
	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestSize)

	err := r.ParseMultipartForm(MaxFormMemory)

	if err != nil {
		if strings.Contains(err.Error(), "request body too large") {
			return errs.NewError(errs.ErrRequestEntityTooLarge)
		}

		return errs.NewError(errs.ErrFormParseFailed)
	}

	return nil
}

// ReadAttachment extracts the uploaded file from an already-parsed multipart
// form. It returns the declared filename, the declared MIME type, and the raw
// bytes. A missing file field is reported as ErrInvalidParams.
func ReadAttachment(r *http.Request) (string, string, []byte, *errs.CustomError) {
	file, header, err := r.FormFile(AttachmentFieldName)
	if err != nil {
		return "", "", nil, errs.NewError(errs.ErrInvalidParams)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", "", nil, errs.NewError(errs.ErrFormParseFailed)
	}

	return header.Filename, header.Header.Get("Content-Type"), data, nil
}
