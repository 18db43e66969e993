package convo

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"carai/internal/app/format"
	"carai/internal/app/ingest"
	"carai/internal/app/llm"
	"carai/internal/pkg/errs"
	"carai/internal/pkg/logx"
)

const (
	// DisplayWindowSize is the maximum number of display entries rendered to
	// the user. The full history sent to the model is never truncated.
	DisplayWindowSize = 20

	// attachmentSeparator frames ingested attachment text inside the user turn.
	attachmentSeparator = "\n\n--- anexo: %s ---\n"
)

// Engine owns the conversation state of a single session and drives one turn
// at a time against the model service. Turns must be serialized by the caller
// (the session layer holds a submit lock); reads of the histories are safe at
// any time.
type Engine struct {
	llm           llm.Client
	formatReplies bool

	mu sync.Mutex
	// history holds every message including the system prompt; it grows
	// without bound and is resent whole on every turn.
	history []Message
	// display holds only the user-visible entries (greeting, user turns,
	// assistant replies). Rendering is capped to DisplayWindowSize.
	display     []Message
	initialized bool

	logger zerolog.Logger
}

// NewEngine constructs an Engine in the uninitialized state.
func NewEngine(client llm.Client, formatReplies bool) *Engine {
	return &Engine{
		llm:           client,
		formatReplies: formatReplies,
		logger:        logx.Logger().With().Str("component", "Engine").Logger(),
	}
}

// Initialize seeds the conversation with the system prompt and the assistant
// greeting, and makes the greeting the first display entry. Calling
// Initialize on an already-initialized engine is a no-op.
func (e *Engine) Initialize() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return
	}

	greeting := Message{Role: RoleAssistant, Content: Greeting}

	e.history = []Message{
		{Role: RoleSystem, Content: SystemPrompt},
		greeting,
	}
	e.display = []Message{greeting}
	e.initialized = true
}

// Submit runs one conversation turn.
//
// The optional attachment is ingested first; an ingestion failure aborts the
// turn before any history mutation. The user message is then appended and the
// FULL history (system prompt included) is sent to the model with the caller's
// context, so a caller-supplied timeout or cancellation fails the turn. On
// success the reply is formatted (when enabled), appended as the assistant
// message, and both new entries join the display history. On a model failure
// the user message stays appended, no assistant message is added, and the
// classified error is returned; the engine never retries.
func (e *Engine) Submit(ctx context.Context, text string, att *ingest.Attachment) (Message, *errs.CustomError) {
	content := text

	if att != nil {
		ingested, customErr := ingest.Ingest(att)
		if customErr != nil {
			return Message{}, customErr
		}

		content += fmt.Sprintf(attachmentSeparator, att.Filename) + ingested
	}

	userMsg := Message{Role: RoleUser, Content: content}

	e.mu.Lock()
	e.history = append(e.history, userMsg)
	outbound := e.wireHistory()
	e.mu.Unlock()

	reply, err := e.llm.Complete(ctx, outbound)
	if err != nil {
		e.logger.Warn().Err(err).Int("history_len", len(outbound)).Msg("Model call failed. Turn spent, no reply appended.")
		return Message{}, classifyModelError(err)
	}

	if e.formatReplies {
		reply = format.Format(reply)
	}

	assistantMsg := Message{Role: RoleAssistant, Content: reply}

	e.mu.Lock()
	e.history = append(e.history, assistantMsg)
	e.display = append(e.display, userMsg, assistantMsg)
	e.mu.Unlock()

	return assistantMsg, nil
}

// History returns a copy of the full conversation history, system prompt first.
func (e *Engine) History() []Message {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Message, len(e.history))
	copy(out, e.history)
	return out
}

// DisplayWindow returns a copy of the most recent DisplayWindowSize display
// entries. Older entries remain in the full history sent to the model; only
// rendering is windowed.
func (e *Engine) DisplayWindow() []Message {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := 0
	if len(e.display) > DisplayWindowSize {
		start = len(e.display) - DisplayWindowSize
	}

	out := make([]Message, len(e.display)-start)
	copy(out, e.display[start:])
	return out
}

// wireHistory converts the history to the wire representation. Caller holds e.mu.
func (e *Engine) wireHistory() []llm.Message {
	out := make([]llm.Message, len(e.history))
	for i, msg := range e.history {
		out[i] = llm.Message{Role: string(msg.Role), Content: msg.Content}
	}
	return out
}

// classifyModelError maps a model client failure onto the client-facing error taxonomy.
func classifyModelError(err error) *errs.CustomError {
	switch llm.Classify(err) {
	case llm.ErrTypeTimeout:
		return errs.NewError(errs.ErrModelTimeout)
	case llm.ErrTypeUnavailable:
		return errs.NewError(errs.ErrModelUnavailable)
	case llm.ErrTypeRejected:
		return errs.NewError(errs.ErrModelRejected)
	default:
		return errs.NewError(errs.ErrUnknown, err)
	}
}
