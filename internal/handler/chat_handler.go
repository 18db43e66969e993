/*
Package handler provides HTTP handler functions for the conversation surface:
history retrieval, message submission, and attachment upload.
*/
package handler

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"carai/internal/app/ingest"
	"carai/internal/pkg/errs"
	"carai/internal/pkg/req"
	"carai/internal/pkg/resp"
)

// MaxMessageRunes is the maximum accepted user message length, in runes.
const MaxMessageRunes = 5000

type MessageInput struct {
	Content string `json:"content"`
}

// HandleGetHistory returns the caller's display history, capped to the display
// window. Passing ?full=true returns the complete conversation instead,
// system prompt included.
func HandleGetHistory(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, customErr := requireSession(r, deps)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if r.URL.Query().Get("full") == "true" {
			resp.RespondSuccess(w, r, map[string]any{
				"messages": sess.History(),
			})
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"messages": sess.DisplayWindow(),
		})
	}
}

// HandleSendMessage submits one text-only conversation turn and returns the
// assistant's reply together with the refreshed display window.
func HandleSendMessage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, customErr := requireSession(r, deps)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		var input MessageInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		content := strings.TrimSpace(input.Content)
		if content == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrEmptyMessage))
			return
		}

		if utf8.RuneCountInString(content) > MaxMessageRunes {
			resp.RespondError(w, r, errs.NewError(errs.ErrMessageContentTooLong))
			return
		}

		reply, customErr := sess.Submit(r.Context(), content, nil)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"reply":   reply,
			"display": sess.DisplayWindow(),
		})
	}
}

// HandleUpload submits one conversation turn carrying an attachment. The
// multipart form holds the file under "file" and optional accompanying text
// under "content"; text may be empty when a file is present.
func HandleUpload(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, customErr := requireSession(r, deps)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if customErr := req.SetupMultipart(w, r); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		filename, mimeType, data, customErr := req.ReadAttachment(r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if customErr := ingest.ValidateSize(int64(len(data))); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		content := strings.TrimSpace(r.FormValue("content"))
		if utf8.RuneCountInString(content) > MaxMessageRunes {
			resp.RespondError(w, r, errs.NewError(errs.ErrMessageContentTooLong))
			return
		}

		att := &ingest.Attachment{
			Filename: filename,
			MimeType: mimeType,
			Data:     data,
		}

		reply, customErr := sess.Submit(r.Context(), content, att)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"reply":   reply,
			"display": sess.DisplayWindow(),
		})
	}
}
