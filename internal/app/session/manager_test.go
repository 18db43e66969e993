package session

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carai/internal/app/convo"
	"carai/internal/app/llm"
	"carai/internal/pkg/errs"
	"carai/internal/pkg/randx"
)

type fakeClient struct {
	reply string
}

func (f *fakeClient) Complete(_ context.Context, _ []llm.Message) (string, error) {
	return f.reply, nil
}

// blockingClient parks inside Complete until released, to simulate a slow
// model call with a turn in flight.
type blockingClient struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingClient) Complete(_ context.Context, _ []llm.Message) (string, error) {
	b.started <- struct{}{}
	<-b.release
	return "finalmente", nil
}

func newTestManager(t *testing.T, client llm.Client) *Manager {
	t.Helper()
	m := NewManager(client, false)
	t.Cleanup(m.Shutdown)
	return m
}

func TestCreate_SeedsSession(t *testing.T) {
	m := newTestManager(t, &fakeClient{reply: "ok"})

	sess := m.Create("joao_silva")

	assert.True(t, strings.HasPrefix(sess.ID, randx.SessionIDPrefix))
	assert.Equal(t, "joao_silva", sess.Username)
	assert.Equal(t, 1, m.Count())

	display := sess.DisplayWindow()
	require.Len(t, display, 1)
	assert.Equal(t, convo.Greeting, display[0].Content)
}

func TestCreate_ReplacesExistingSession(t *testing.T) {
	m := newTestManager(t, &fakeClient{reply: "ok"})

	first := m.Create("joao_silva")
	_, customErr := first.Submit(context.Background(), "primeira conversa", nil)
	require.Nil(t, customErr)

	second := m.Create("joao_silva")

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 1, m.Count())

	// The old session is gone and the new one starts from the greeting.
	_, customErr = m.Get(first.ID)
	require.NotNil(t, customErr)
	assert.Equal(t, errs.ErrSessionNotFound, customErr.Code)

	assert.Len(t, second.History(), 2)
}

func TestGet_UnknownSession(t *testing.T) {
	m := newTestManager(t, &fakeClient{reply: "ok"})

	_, customErr := m.Get("sess_nao_existe")
	require.NotNil(t, customErr)
	assert.Equal(t, errs.ErrSessionNotFound, customErr.Code)
}

func TestDelete_RemovesSession(t *testing.T) {
	m := newTestManager(t, &fakeClient{reply: "ok"})

	sess := m.Create("joao_silva")
	m.Delete(sess.ID)

	assert.Equal(t, 0, m.Count())

	_, customErr := m.Get(sess.ID)
	require.NotNil(t, customErr)

	// Deleting twice is harmless.
	m.Delete(sess.ID)
}

func TestSubmit_BusySession(t *testing.T) {
	client := &blockingClient{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	m := newTestManager(t, client)

	sess := m.Create("joao_silva")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, customErr := sess.Submit(context.Background(), "primeira", nil)
		assert.Nil(t, customErr)
	}()

	// Wait until the first turn is inside the model call.
	<-client.started

	_, customErr := sess.Submit(context.Background(), "segunda", nil)
	require.NotNil(t, customErr)
	assert.Equal(t, errs.ErrSessionBusy, customErr.Code)

	close(client.release)
	wg.Wait()

	// With the turn finished the session accepts input again, and the refused
	// turn never reached the history.
	require.Len(t, sess.History(), 4)
}

func TestSweepIdle_DropsStaleSessions(t *testing.T) {
	m := newTestManager(t, &fakeClient{reply: "ok"})

	stale := m.Create("joao_silva")
	fresh := m.Create("maria_souza")

	stale.activeMu.Lock()
	stale.lastActive = time.Now().Add(-InactivityTimeout - time.Minute)
	stale.activeMu.Unlock()

	m.sweepIdle()

	assert.Equal(t, 1, m.Count())

	_, customErr := m.Get(stale.ID)
	require.NotNil(t, customErr)

	_, customErr = m.Get(fresh.ID)
	assert.Nil(t, customErr)
}

func TestShutdown_DropsEverything(t *testing.T) {
	m := NewManager(&fakeClient{reply: "ok"}, false)

	m.Create("joao_silva")
	m.Create("maria_souza")

	m.Shutdown()

	assert.Equal(t, 0, m.Count())
}
