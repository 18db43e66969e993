/*
Package errs provides custom error types and application-level error code constants.

These error codes identify specific business or system errors both internally
within the server and in responses sent to clients.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body JSON is malformed.
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates that the request body contained extra content after valid JSON data.
	ErrExtraContentInBody = 1004

	// ErrFormParseFailed indicates failure to parse multipart or URL-encoded form data.
	ErrFormParseFailed = 1005

	// ErrRequestEntityTooLarge indicates that the request body size exceeded the server limit.
	ErrRequestEntityTooLarge = 1006

	// ErrRateLimitExceeded indicates that the request rate has exceeded the set limit.
	ErrRateLimitExceeded = 1007
)

// 2xxx: Conversation and Attachment Errors
const (
	// ErrEmptyMessage indicates that a chat submission had neither text (after trimming) nor an attachment.
	ErrEmptyMessage = 2201

	// ErrMessageContentTooLong indicates that the user's message exceeded the maximum length limit.
	ErrMessageContentTooLong = 2202

	// ErrAttachmentNotText indicates that a text-like attachment did not contain valid UTF-8 text.
	ErrAttachmentNotText = 2203

	// ErrAttachmentTooLarge indicates that the attachment exceeded the maximum allowed size.
	ErrAttachmentTooLarge = 2204

	// ErrAttachmentTypeInvalid indicates that the attachment's declared type or extension is not allowed.
	ErrAttachmentTypeInvalid = 2205
)

// 3xxx: User, Session, and Security Errors
const (
	// ErrAlreadyLoggedIn indicates that the caller already holds a valid identity token.
	ErrAlreadyLoggedIn = 3001

	// ErrInvalidUsername indicates that the username did not match the required format.
	ErrInvalidUsername = 3101

	// ErrInvalidPassword indicates that the password length is outside the allowed range.
	ErrInvalidPassword = 3102

	// ErrUserAlreadyExists indicates a registration attempt for a username that is already taken.
	ErrUserAlreadyExists = 3103

	// ErrInvalidCredentials indicates a failed login. It deliberately covers both the
	// unknown-user and wrong-password cases so that account existence is never revealed.
	ErrInvalidCredentials = 3104

	// ErrUnauthorized indicates that the request lacks a valid identity token.
	ErrUnauthorized = 3105

	// ErrSessionNotFound indicates that the token references a conversation session that no longer exists.
	ErrSessionNotFound = 3201

	// ErrSessionBusy indicates that the session is already processing a turn.
	ErrSessionBusy = 3202
)

// 4xxx: Model Upstream Errors
const (
	// ErrModelUnavailable indicates that the model service could not be reached.
	ErrModelUnavailable = 4001

	// ErrModelTimeout indicates that the model call exceeded its deadline or was cancelled.
	ErrModelTimeout = 4002

	// ErrModelRejected indicates that the model service refused the request.
	ErrModelRejected = 4003
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified, general server internal error.
	ErrUnknown = 5000
)
