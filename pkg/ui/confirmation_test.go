package ui_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	catbot "github.com/zentiph/catbot"
	"github.com/zentiph/catbot/pkg/ui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

///////////////////////////////////////////////////////////////////////////////
// FAKE INTERACTION

type fakeInteraction struct {
	mu          sync.Mutex
	userID      string
	deferErr    error
	followupErr error

	// Recorded calls, in order ("defer", "followup:<text>").
	calls      []string
	ephemerals []bool
}

func (f *fakeInteraction) UserID() string {
	if f.userID == "" {
		return "user-1"
	}
	return f.userID
}

func (f *fakeInteraction) Defer(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "defer")
	return f.deferErr
}

func (f *fakeInteraction) Respond(ctx context.Context, text string, ephemeral bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "respond:"+text)
	f.ephemerals = append(f.ephemerals, ephemeral)
	return nil
}

func (f *fakeInteraction) Followup(ctx context.Context, text string, ephemeral bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "followup:"+text)
	f.ephemerals = append(f.ephemerals, ephemeral)
	return f.followupErr
}

func (f *fakeInteraction) recorded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.calls...)
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func TestConfirmSendsConfirmMessage(t *testing.T) {
	assert := assert.New(t)

	click := new(fakeInteraction)
	c := ui.NewConfirmation("Confirmed!", "Cancelled.")

	require.NoError(t, c.Confirm(context.Background(), click))

	assert.Equal([]string{"defer", "followup:Confirmed!"}, click.recorded())
	assert.Equal([]bool{true}, click.ephemerals)
	assert.True(c.Resolved())
}

func TestDenySendsDenyMessage(t *testing.T) {
	assert := assert.New(t)

	click := new(fakeInteraction)
	c := ui.NewConfirmation("Confirmed!", "Cancelled.")

	require.NoError(t, c.Deny(context.Background(), click))

	assert.Equal([]string{"defer", "followup:Cancelled."}, click.recorded())
	assert.Equal([]bool{true}, click.ephemerals)
}

func TestConfirmInvokesCallbackOnce(t *testing.T) {
	assert := assert.New(t)

	var actions []string
	c := ui.NewConfirmation("Confirmed!", "Cancelled.")
	c.OnConfirm(func(ctx context.Context) error {
		actions = append(actions, "delete")
		return nil
	})

	click := new(fakeInteraction)
	require.NoError(t, c.Confirm(context.Background(), click))

	assert.Equal([]string{"delete"}, actions)
	assert.Equal([]string{"defer", "followup:Confirmed!"}, click.recorded())

	// A second click on either button is a no-op.
	second := new(fakeInteraction)
	err := c.Deny(context.Background(), second)
	assert.ErrorIs(err, catbot.ErrExpired)
	assert.Empty(second.recorded())
	assert.Equal([]string{"delete"}, actions)
}

func TestNilCallbackClearsRegistration(t *testing.T) {
	assert := assert.New(t)

	invoked := false
	c := ui.NewConfirmation("yes", "no")
	c.OnConfirm(func(ctx context.Context) error {
		invoked = true
		return nil
	})
	c.OnConfirm(nil)

	click := new(fakeInteraction)
	require.NoError(t, c.Confirm(context.Background(), click))

	assert.False(invoked)
	assert.Equal([]string{"defer", "followup:yes"}, click.recorded())
}

func TestNoCallbacksRegistered(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	c := ui.NewConfirmation("yes", "Cancelled.", ui.WithLogger(logger))
	click := new(fakeInteraction)

	require.NoError(t, c.Deny(context.Background(), click))

	assert.Equal([]string{"defer", "followup:Cancelled."}, click.recorded())
	assert.Empty(buf.String())
}

func TestCallbackErrorIsContained(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	c := ui.NewConfirmation("Confirmed!", "Cancelled.", ui.WithLogger(logger))
	c.OnConfirm(func(ctx context.Context) error {
		return errors.New("backing store unavailable")
	})

	click := new(fakeInteraction)
	require.NoError(t, c.Confirm(context.Background(), click))

	// The follow-up is still sent and the failure is logged once.
	assert.Equal([]string{"defer", "followup:Confirmed!"}, click.recorded())
	assert.Contains(buf.String(), "backing store unavailable")
	assert.Equal(1, bytes.Count(buf.Bytes(), []byte("backing store unavailable")))
}

func TestCallbackPanicIsContained(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	c := ui.NewConfirmation("done", "not done", ui.WithLogger(logger))
	c.OnDeny(func(ctx context.Context) error {
		panic("boom")
	})

	click := new(fakeInteraction)
	require.NoError(t, c.Deny(context.Background(), click))

	assert.Equal([]string{"defer", "followup:not done"}, click.recorded())
	assert.Contains(buf.String(), "boom")
}

func TestAcknowledgeBeforeCallbackBeforeFollowup(t *testing.T) {
	assert := assert.New(t)

	click := new(fakeInteraction)
	c := ui.NewConfirmation("ok", "ko")
	c.OnConfirm(func(ctx context.Context) error {
		click.mu.Lock()
		click.calls = append(click.calls, "callback")
		click.mu.Unlock()
		return nil
	})

	require.NoError(t, c.Confirm(context.Background(), click))
	assert.Equal([]string{"defer", "callback", "followup:ok"}, click.recorded())
}

func TestDeferErrorPropagates(t *testing.T) {
	assert := assert.New(t)

	invoked := false
	retired := 0
	click := &fakeInteraction{deferErr: errors.New("transport down")}
	c := ui.NewConfirmation("ok", "ko")
	c.OnConfirm(func(ctx context.Context) error {
		invoked = true
		return nil
	})
	c.OnRetire(func() { retired++ })

	err := c.Confirm(context.Background(), click)
	assert.ErrorContains(err, "transport down")
	assert.False(invoked)

	// The widget still reaches its terminal state and retires, so
	// routes are removed and buttons disabled even though the
	// acknowledgment failed.
	assert.True(c.Resolved())
	assert.Equal(1, retired)
}

func TestFollowupErrorStillRetires(t *testing.T) {
	assert := assert.New(t)

	retired := 0
	click := &fakeInteraction{followupErr: errors.New("followup rejected")}
	c := ui.NewConfirmation("ok", "ko", ui.WithTimeout(20*time.Millisecond))
	c.OnRetire(func() { retired++ })

	err := c.Confirm(context.Background(), click)
	assert.ErrorContains(err, "followup rejected")
	assert.True(c.Resolved())
	assert.Equal(1, retired)

	// The expiry timer was stopped by the click, so the retire hook
	// does not fire a second time later.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(1, retired)
}

func TestRetireHookRunsOnce(t *testing.T) {
	assert := assert.New(t)

	retired := 0
	c := ui.NewConfirmation("ok", "ko")
	c.OnRetire(func() { retired++ })

	click := new(fakeInteraction)
	require.NoError(t, c.Confirm(context.Background(), click))
	assert.Equal(1, retired)

	// Already resolved: nothing else fires.
	assert.ErrorIs(c.Deny(context.Background(), new(fakeInteraction)), catbot.ErrExpired)
	assert.Equal(1, retired)
}

func TestRetireRunsAfterFollowup(t *testing.T) {
	assert := assert.New(t)

	click := new(fakeInteraction)
	c := ui.NewConfirmation("done", "not done")

	// An outcome flag set by the callback and read by a chained retire
	// hook: the hook must observe it after the follow-up has gone out.
	confirmed := false
	c.OnConfirm(func(ctx context.Context) error {
		confirmed = true
		return nil
	})
	c.OnRetire(func() {
		click.mu.Lock()
		click.calls = append(click.calls, "retire-adapter")
		click.mu.Unlock()
	})
	c.OnRetire(func() {
		if confirmed {
			click.mu.Lock()
			click.calls = append(click.calls, "retire-stop")
			click.mu.Unlock()
		}
	})

	require.NoError(t, c.Confirm(context.Background(), click))
	assert.Equal([]string{"defer", "followup:done", "retire-adapter", "retire-stop"}, click.recorded())
}

func TestConcurrentSiblingClicks(t *testing.T) {
	assert := assert.New(t)

	var confirms, denies atomic.Int32
	c := ui.NewConfirmation("yes", "no")
	c.OnConfirm(func(ctx context.Context) error {
		confirms.Add(1)
		return nil
	})
	c.OnDeny(func(ctx context.Context) error {
		denies.Add(1)
		return nil
	})

	yes := new(fakeInteraction)
	no := new(fakeInteraction)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(2)
	go func() {
		defer wg.Done()
		errs[0] = c.Confirm(context.Background(), yes)
	}()
	go func() {
		defer wg.Done()
		errs[1] = c.Deny(context.Background(), no)
	}()
	wg.Wait()

	// Exactly one click wins; the other is rejected before any side
	// effect, so there is one callback invocation and one follow-up
	// across both interactions.
	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(err, catbot.ErrExpired)
		}
	}
	assert.Equal(1, winners)
	assert.Equal(int32(1), confirms.Load()+denies.Load())
	assert.Len(append(yes.recorded(), no.recorded()...), 2) // one defer + one followup
}

func TestExpiryFiresWithoutClick(t *testing.T) {
	assert := assert.New(t)

	expired := make(chan struct{})
	retired := make(chan struct{})
	invoked := false

	c := ui.NewConfirmation("ok", "ko",
		ui.WithTimeout(10*time.Millisecond),
		ui.WithExpiry(func() { close(expired) }),
	)
	c.OnConfirm(func(ctx context.Context) error {
		invoked = true
		return nil
	})
	c.OnRetire(func() { close(retired) })

	select {
	case <-expired:
	case <-time.After(time.Second):
		t.Fatal("expiry did not fire")
	}
	select {
	case <-retired:
	case <-time.After(time.Second):
		t.Fatal("retire hook did not fire")
	}

	assert.True(c.Resolved())
	assert.False(invoked)

	// Click after expiry is a no-op.
	click := new(fakeInteraction)
	assert.ErrorIs(c.Confirm(context.Background(), click), catbot.ErrExpired)
	assert.Empty(click.recorded())
}

func TestClickStopsExpiry(t *testing.T) {
	assert := assert.New(t)

	expired := false
	c := ui.NewConfirmation("ok", "ko",
		ui.WithTimeout(20*time.Millisecond),
		ui.WithExpiry(func() { expired = true }),
	)

	require.NoError(t, c.Confirm(context.Background(), new(fakeInteraction)))
	time.Sleep(50 * time.Millisecond)
	assert.False(expired)
}
