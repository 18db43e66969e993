/*
Package errs provides custom error types and application-level error code constants.

This file defines the map from error codes to the CustomError struct, used to
standardize HTTP responses and internal error handling.
*/
package errs

import "net/http"

// errorMap stores the detailed CustomError struct corresponding to every application error code.
// The key is the error code (int), and the value contains the user message and HTTP status code.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:         {Code: ErrInvalidParams, Message: "Invalid request parameters."},
	ErrUnsupportedMediaType:  {Code: ErrUnsupportedMediaType, Message: "Unsupported request format."},
	ErrInvalidJSONFormat:     {Code: ErrInvalidJSONFormat, Message: "Unsupported request format."},
	ErrExtraContentInBody:    {Code: ErrExtraContentInBody, Message: "Request contains unexpected data."},
	ErrFormParseFailed:       {Code: ErrFormParseFailed, Message: "Failed to process uploaded data."},
	ErrRequestEntityTooLarge: {Code: ErrRequestEntityTooLarge, Message: "Request size is too large."},
	ErrRateLimitExceeded:     {Code: ErrRateLimitExceeded, Message: "Too many requests. Please try again later.", Status: http.StatusTooManyRequests},

	// 2xxx: Conversation and Attachment Errors
	ErrEmptyMessage:          {Code: ErrEmptyMessage, Message: "Message is empty."},
	ErrMessageContentTooLong: {Code: ErrMessageContentTooLong, Message: "Message is too long."},
	ErrAttachmentNotText:     {Code: ErrAttachmentNotText, Message: "Attachment is not readable text."},
	ErrAttachmentTooLarge:    {Code: ErrAttachmentTooLarge, Message: "Attachment is too large."},
	ErrAttachmentTypeInvalid: {Code: ErrAttachmentTypeInvalid, Message: "Attachment type is not supported."},

	// 3xxx: User, Session, and Security Errors
	ErrAlreadyLoggedIn:    {Code: ErrAlreadyLoggedIn, Message: "You are already signed in."},
	ErrInvalidUsername:    {Code: ErrInvalidUsername, Message: "Invalid username."},
	ErrInvalidPassword:    {Code: ErrInvalidPassword, Message: "Invalid password."},
	ErrUserAlreadyExists:  {Code: ErrUserAlreadyExists, Message: "Username is already taken."},
	ErrInvalidCredentials: {Code: ErrInvalidCredentials, Message: "Incorrect username or password."},
	ErrUnauthorized:       {Code: ErrUnauthorized, Message: "Please sign in to continue.", Status: http.StatusUnauthorized},
	ErrSessionNotFound:    {Code: ErrSessionNotFound, Message: "Your session has expired. Please sign in again.", Status: http.StatusUnauthorized},
	ErrSessionBusy:        {Code: ErrSessionBusy, Message: "Still working on your previous message.", Status: http.StatusConflict},

	// 4xxx: Model Upstream Errors
	ErrModelUnavailable: {Code: ErrModelUnavailable, Message: "The assistant is unavailable right now. Please try again.", Status: http.StatusBadGateway},
	ErrModelTimeout:     {Code: ErrModelTimeout, Message: "The assistant took too long to answer. Please try again.", Status: http.StatusGatewayTimeout},
	ErrModelRejected:    {Code: ErrModelRejected, Message: "The assistant could not process this message.", Status: http.StatusBadGateway},

	// 5xxx: Internal System Errors
	ErrUnknown: {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
}
