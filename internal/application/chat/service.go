package chat

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/bryanwahyu/authentiscan/internal/application"
	domai "github.com/bryanwahyu/authentiscan/internal/domain/ai"
	domain "github.com/bryanwahyu/authentiscan/internal/domain/chat"
)

var (
	// ErrBusy rejects a message sent while a reply is still outstanding.
	ErrBusy = errors.New("chat: reply in progress")
	// ErrEmptyMessage rejects blank input.
	ErrEmptyMessage = errors.New("chat: empty message")
)

const (
	greeting = "Hi! I'm Luci, your AI assistant. I can help you understand how this app works or answer questions about product authenticity. How can I help you today?"
	fallback = "Sorry, I seem to be having some trouble connecting. Please try again in a moment."
)

// Service is the assistant session: an in-memory transcript and a stateless
// request/response loop against the AI. Only the raw user text goes
// upstream; the transcript is display-only and never persisted.
type Service struct {
	Assistant domai.Assistant
	Clock     application.Clock
	NewID     func() string

	mu       sync.Mutex
	busy     bool
	messages []domain.Message
}

func New(assistant domai.Assistant, clock application.Clock) *Service {
	s := &Service{
		Assistant: assistant,
		Clock:     clock,
		NewID:     uuid.NewString,
	}
	s.messages = []domain.Message{{
		ID:        s.NewID(),
		Sender:    domain.SenderAI,
		Text:      greeting,
		CreatedAt: clock.Now(),
	}}
	return s
}

// Send appends the user message, asks the assistant, and appends the reply.
// A failed call appends the fixed fallback text instead; the session keeps
// going. One outstanding request at a time.
func (s *Service) Send(ctx context.Context, text string) (domain.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Message{}, ErrEmptyMessage
	}

	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return domain.Message{}, ErrBusy
	}
	s.busy = true
	s.messages = append(s.messages, domain.Message{
		ID:        s.NewID(),
		Sender:    domain.SenderUser,
		Text:      text,
		CreatedAt: s.Clock.Now(),
	})
	s.mu.Unlock()

	replyText, err := s.Assistant.Reply(ctx, text)
	if err != nil {
		log.Printf("assistant reply failed: %v", err)
		replyText = fallback
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	reply := domain.Message{
		ID:        s.NewID(),
		Sender:    domain.SenderAI,
		Text:      replyText,
		CreatedAt: s.Clock.Now(),
	}
	s.messages = append(s.messages, reply)
	s.busy = false
	return reply, nil
}

// Transcript returns a copy of the session transcript in display order.
func (s *Service) Transcript() []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Message, len(s.messages))
	copy(out, s.messages)
	return out
}
