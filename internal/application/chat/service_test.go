package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/bryanwahyu/authentiscan/internal/domain/chat"
)

type stubAssistant struct {
	reply string
	err   error
}

func (s stubAssistant) Reply(context.Context, string) (string, error) {
	return s.reply, s.err
}

type blockingAssistant struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingAssistant) Reply(ctx context.Context, _ string) (string, error) {
	close(b.started)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-b.release:
	}
	return "done", nil
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func newTestService(a interface {
	Reply(context.Context, string) (string, error)
}) *Service {
	return New(a, fixedClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)})
}

func TestSessionOpensWithGreeting(t *testing.T) {
	svc := newTestService(stubAssistant{})

	msgs := svc.Transcript()
	require.Len(t, msgs, 1)
	assert.Equal(t, domain.SenderAI, msgs[0].Sender)
	assert.Contains(t, msgs[0].Text, "Luci")
}

func TestSendAppendsUserAndReply(t *testing.T) {
	svc := newTestService(stubAssistant{reply: "You can scan a product photo."})

	reply, err := svc.Send(context.Background(), "  how does this work?  ")
	require.NoError(t, err)
	assert.Equal(t, domain.SenderAI, reply.Sender)
	assert.Equal(t, "You can scan a product photo.", reply.Text)

	msgs := svc.Transcript()
	require.Len(t, msgs, 3)
	assert.Equal(t, domain.SenderUser, msgs[1].Sender)
	assert.Equal(t, "how does this work?", msgs[1].Text, "input should be trimmed")
	assert.Equal(t, reply.ID, msgs[2].ID)
}

func TestSendFallbackOnFailure(t *testing.T) {
	svc := newTestService(stubAssistant{err: errors.New("upstream down")})

	reply, err := svc.Send(context.Background(), "hello")
	require.NoError(t, err, "assistant failures are absorbed into the fallback reply")
	assert.Equal(t, fallback, reply.Text)

	// the session keeps going afterwards
	msgs := svc.Transcript()
	assert.Len(t, msgs, 3)
}

func TestSendRejectsEmpty(t *testing.T) {
	svc := newTestService(stubAssistant{})
	_, err := svc.Send(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Len(t, svc.Transcript(), 1)
}

func TestSendRejectsConcurrent(t *testing.T) {
	ba := &blockingAssistant{started: make(chan struct{}), release: make(chan struct{})}
	svc := newTestService(ba)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Send(context.Background(), "first")
		done <- err
	}()

	<-ba.started
	_, err := svc.Send(context.Background(), "second")
	assert.ErrorIs(t, err, ErrBusy)

	close(ba.release)
	require.NoError(t, <-done)
}
