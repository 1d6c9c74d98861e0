package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancezuo/adversary-hangman/internal/game"
	"github.com/vancezuo/adversary-hangman/internal/randutil"
	"github.com/vancezuo/adversary-hangman/internal/words"
)

func newSession(t *testing.T, lives int) *game.Session {
	t.Helper()
	s, err := game.NewSession(words.New("cat"), game.ModeRandom, 3, lives, randutil.New(1))
	require.NoError(t, err)
	return s
}

func TestSaveGetUpdate(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(time.Minute, WithClock(quartz.NewMock(t)))
	s := newSession(t, 3)
	require.NoError(t, m.Save(ctx, s))
	assert.Equal(t, 1, m.Len())

	err := m.Update(ctx, s.ID, func(s *game.Session) error {
		_, err := s.PlayLetter('c')
		return err
	})
	require.NoError(t, err)

	snap, err := m.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "c__", snap.SolvedPart)
}

func TestUnknownID(t *testing.T) {
	m := NewMemoryStore(time.Minute)
	_, err := m.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdatePassesErrorsThrough(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(time.Minute, WithClock(quartz.NewMock(t)))
	s := newSession(t, 1)
	require.NoError(t, m.Save(ctx, s))

	boom := errors.New("boom")
	assert.ErrorIs(t, m.Update(ctx, s.ID, func(*game.Session) error { return boom }), boom)
}

func TestUpdateHonoursCancelledContext(t *testing.T) {
	m := NewMemoryStore(time.Minute)
	s := newSession(t, 1)
	require.NoError(t, m.Save(context.Background(), s))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.Update(ctx, s.ID, func(*game.Session) error { return nil }), context.Canceled)
}

func TestIdleSessionsExpire(t *testing.T) {
	ctx := context.Background()
	clock := quartz.NewMock(t)
	m := NewMemoryStore(10*time.Minute, WithClock(clock))

	idle, active := newSession(t, 3), newSession(t, 3)
	require.NoError(t, m.Save(ctx, idle))
	require.NoError(t, m.Save(ctx, active))

	clock.Advance(6 * time.Minute)
	_, err := m.Get(ctx, active.ID)
	require.NoError(t, err)

	clock.Advance(6 * time.Minute)
	_, err = m.Get(ctx, idle.ID)
	assert.ErrorIs(t, err, ErrNotFound, "expired before sweep")

	assert.Equal(t, 1, m.Sweep())
	assert.Equal(t, 1, m.Len())
	_, err = m.Get(ctx, active.ID)
	assert.NoError(t, err)
}

func TestRunSweepsOnTicker(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	clock := quartz.NewMock(t)

	m := NewMemoryStore(time.Minute, WithClock(clock))
	require.NoError(t, m.Save(ctx, newSession(t, 3)))

	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()

	// Steps match the sweep period, so the mock never skips a tick.
	require.Eventually(t, func() bool {
		clock.Advance(30 * time.Second)
		return m.Len() == 0
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}

func TestConcurrentUpdatesAreSerialised(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(time.Minute)
	s := newSession(t, 50)
	require.NoError(t, m.Save(ctx, s))

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Update(ctx, s.ID, func(s *game.Session) error {
				_, err := s.PlayLetter('z')
				return err
			})
		}()
	}
	wg.Wait()

	snap, err := m.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, snap.LivesRemaining)
}
