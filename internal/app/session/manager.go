package session

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"carai/internal/app/convo"
	"carai/internal/app/llm"
	"carai/internal/pkg/errs"
	"carai/internal/pkg/logx"
	"carai/internal/pkg/randx"
)

const (
	// InactivityTimeout is how long a session may stay idle before the sweep
	// removes it.
	InactivityTimeout = 30 * time.Minute

	// sweepInterval is how often idle sessions are checked.
	sweepInterval = 5 * time.Minute
)

// Manager owns all live sessions. Each username has at most one session;
// logging in again replaces the previous one.
type Manager struct {
	llm           llm.Client
	formatReplies bool

	mu         sync.RWMutex
	sessions   map[string]*Session // keyed by session ID
	byUsername map[string]string   // username -> session ID

	stopCh chan struct{}
	wg     sync.WaitGroup

	logger zerolog.Logger
}

// NewManager constructs a Manager and starts its inactivity sweep.
func NewManager(client llm.Client, formatReplies bool) *Manager {
	m := &Manager{
		llm:           client,
		formatReplies: formatReplies,
		sessions:      make(map[string]*Session),
		byUsername:    make(map[string]string),
		stopCh:        make(chan struct{}),
		logger:        logx.Logger().With().Str("component", "SessionManager").Logger(),
	}

	m.wg.Add(1)
	go m.sweepLoop()

	return m
}

// Create starts a fresh session for the username, seeding its conversation
// with the system prompt and greeting. Any existing session for the same
// username is dropped first, so a new login always starts clean.
func (m *Manager) Create(username string) *Session {
	engine := convo.NewEngine(m.llm, m.formatReplies)
	engine.Initialize()

	id, err := randx.SessionID()
	if err != nil {
		// crypto/rand failing is effectively fatal entropy trouble; fall back
		// to a UUID so logins keep working.
		m.logger.Error().Err(err).Msg("Session ID generation failed, falling back to UUID.")
		id = randx.SessionIDPrefix + randx.MessageID()
	}

	sess := newSession(id, username, engine)

	m.mu.Lock()
	if oldID, ok := m.byUsername[username]; ok {
		delete(m.sessions, oldID)
		m.logger.Info().Str("username", username).Str("session_id", oldID).Msg("Replaced existing session on new login.")
	}
	m.sessions[sess.ID] = sess
	m.byUsername[username] = sess.ID
	m.mu.Unlock()

	m.logger.Info().Str("username", username).Str("session_id", sess.ID).Msg("Session created.")

	return sess
}

// Get returns the live session with the given ID.
func (m *Manager) Get(sessionID string) (*Session, *errs.CustomError) {
	m.mu.RLock()
	sess, ok := m.sessions[sessionID]
	m.mu.RUnlock()

	if !ok {
		return nil, errs.NewError(errs.ErrSessionNotFound)
	}

	return sess, nil
}

// Delete removes the session with the given ID, if it is still live.
func (m *Manager) Delete(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[sessionID]
	if !ok {
		return
	}

	delete(m.sessions, sessionID)
	if m.byUsername[sess.Username] == sessionID {
		delete(m.byUsername, sess.Username)
	}

	m.logger.Info().Str("username", sess.Username).Str("session_id", sessionID).Msg("Session deleted.")
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Shutdown stops the inactivity sweep and drops all sessions.
func (m *Manager) Shutdown() {
	close(m.stopCh)
	m.wg.Wait()

	m.mu.Lock()
	n := len(m.sessions)
	m.sessions = make(map[string]*Session)
	m.byUsername = make(map[string]string)
	m.mu.Unlock()

	m.logger.Info().Int("dropped", n).Msg("Session manager stopped.")
}

func (m *Manager) sweepLoop() {
	defer m.wg.Done()

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.sweepIdle()
		case <-m.stopCh:
			return
		}
	}
}

func (m *Manager) sweepIdle() {
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	for id, sess := range m.sessions {
		if sess.idleSince(now) < InactivityTimeout {
			continue
		}

		delete(m.sessions, id)
		if m.byUsername[sess.Username] == id {
			delete(m.byUsername, sess.Username)
		}

		m.logger.Info().Str("username", sess.Username).Str("session_id", id).Msg("Idle session swept.")
	}
}
