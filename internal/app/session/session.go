/*
Package session manages the lifecycle of authenticated chat sessions: one live
session per username, each owning its own conversation engine, with idle
sessions swept out after a period of inactivity.
*/
package session

import (
	"context"
	"sync"
	"time"

	"carai/internal/app/convo"
	"carai/internal/app/ingest"
	"carai/internal/pkg/errs"
)

// Session binds one authenticated user to one conversation engine. A session
// accepts one turn at a time; a second submit while a turn is in flight is
// refused instead of queued.
type Session struct {
	ID       string
	Username string

	engine *convo.Engine

	// submitting guards the single-turn-in-flight rule without blocking the
	// second caller for the duration of the model call.
	submitMu   sync.Mutex
	submitting bool

	activeMu   sync.Mutex
	lastActive time.Time
}

func newSession(id, username string, engine *convo.Engine) *Session {
	return &Session{
		ID:         id,
		Username:   username,
		engine:     engine,
		lastActive: time.Now(),
	}
}

// Submit runs one conversation turn through the session's engine. If another
// turn is already in flight the call fails with ErrSessionBusy.
func (s *Session) Submit(ctx context.Context, text string, att *ingest.Attachment) (convo.Message, *errs.CustomError) {
	s.submitMu.Lock()
	if s.submitting {
		s.submitMu.Unlock()
		return convo.Message{}, errs.NewError(errs.ErrSessionBusy)
	}
	s.submitting = true
	s.submitMu.Unlock()

	defer func() {
		s.submitMu.Lock()
		s.submitting = false
		s.submitMu.Unlock()
	}()

	s.touch()
	return s.engine.Submit(ctx, text, att)
}

// DisplayWindow returns the session's windowed display history.
func (s *Session) DisplayWindow() []convo.Message {
	s.touch()
	return s.engine.DisplayWindow()
}

// History returns the session's full conversation history.
func (s *Session) History() []convo.Message {
	return s.engine.History()
}

func (s *Session) touch() {
	s.activeMu.Lock()
	s.lastActive = time.Now()
	s.activeMu.Unlock()
}

// idleSince reports how long ago the session was last used.
func (s *Session) idleSince(now time.Time) time.Duration {
	s.activeMu.Lock()
	defer s.activeMu.Unlock()
	return now.Sub(s.lastActive)
}
