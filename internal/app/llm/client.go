/*
Package llm provides the client abstraction for the remote chat-completions
service, plus an HTTP implementation for OpenAI-compatible endpoints.

The conversation engine only depends on the Client interface; everything about
transport, authentication, and upstream error shapes stays in this package.
*/
package llm

import (
	"context"
	"errors"
)

// Message is a role-tagged chat message on the wire. The system message is
// always first in the slice handed to Complete.
type Message struct {
	Role    string `json:"role"` // "system", "user", or "assistant"
	Content string `json:"content"`
}

// NewSystemMessage creates a system message.
func NewSystemMessage(content string) Message {
	return Message{Role: "system", Content: content}
}

// NewUserMessage creates a user message.
func NewUserMessage(content string) Message {
	return Message{Role: "user", Content: content}
}

// NewAssistantMessage creates an assistant message.
func NewAssistantMessage(content string) Message {
	return Message{Role: "assistant", Content: content}
}

// Client is the outbound model service collaborator. Complete sends the full
// ordered message list and returns the assistant's plain-text reply.
type Client interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota

	// ErrTypeUnavailable means the service could not be reached at all.
	ErrTypeUnavailable

	// ErrTypeTimeout means the call exceeded its deadline or was cancelled.
	ErrTypeTimeout

	// ErrTypeRejected means the service answered but refused the request.
	ErrTypeRejected
)

// ClientError represents a classified failure of an outbound model call.
type ClientError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// Sentinel errors for easy checking.
var (
	ErrUnavailable = &ClientError{Type: ErrTypeUnavailable, Message: "model service is unreachable"}
	ErrTimeout     = &ClientError{Type: ErrTypeTimeout, Message: "model request timed out"}
)

// Classify returns the ErrorType of a model call failure, or ErrTypeUnknown
// for errors that did not originate from this package.
func Classify(err error) ErrorType {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type
	}
	return ErrTypeUnknown
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	return Classify(err) == ErrTypeTimeout
}

// IsUnavailable checks if an error indicates the service is unreachable.
func IsUnavailable(err error) bool {
	return Classify(err) == ErrTypeUnavailable
}
