package verification

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bryanwahyu/authentiscan/internal/application"
	domai "github.com/bryanwahyu/authentiscan/internal/domain/ai"
	"github.com/bryanwahyu/authentiscan/internal/domain/history"
	domain "github.com/bryanwahyu/authentiscan/internal/domain/verification"
)

var (
	// ErrBusy rejects a verification started while another is in flight.
	ErrBusy = errors.New("verification: analysis already in progress")
	// ErrNoImage rejects an image verification without a payload.
	ErrNoImage = errors.New("verification: image payload required")
)

// PreviewStore optionally offloads data-URI previews to object storage; the
// history item then records the returned URL instead of the raw URI.
type PreviewStore interface {
	PutPreview(ctx context.Context, key string, image domain.DataURI) (string, error)
}

// Snapshot is the externally visible orchestrator state.
type Snapshot struct {
	Status       domain.Status  `json:"status"`
	Result       *domain.Result `json:"result,omitempty"`
	Error        string         `json:"error,omitempty"`
	ImagePreview string         `json:"imagePreview,omitempty"`
}

// Service is the verification orchestrator: the state machine driving
// capture -> analysis -> result/error -> history recording. At most one
// verification is in flight; a second start is rejected with ErrBusy.
// History is mutated only on success, exactly once per completed run.
type Service struct {
	Verifier domai.Verifier
	Codes    domai.CodeVerifier
	Store    history.Store
	Previews PreviewStore // optional
	Clock    application.Clock
	Timeout  time.Duration // per AI call; 0 disables
	NewID    func() string

	mu      sync.Mutex
	status  domain.Status
	result  *domain.Result
	errMsg  string
	preview string
	items   []history.Item
}

func New(verifier domai.Verifier, codes domai.CodeVerifier, store history.Store, clock application.Clock) *Service {
	return &Service{
		Verifier: verifier,
		Codes:    codes,
		Store:    store,
		Clock:    clock,
		NewID:    uuid.NewString,
		status:   domain.StatusIdle,
	}
}

// LoadHistory reads the persisted history once at startup. The store fails
// soft on corrupt state, so an error here means the backend itself is down.
func (s *Service) LoadHistory(ctx context.Context) error {
	items, err := s.Store.Load(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

// VerifyImage runs the image verification path against the AI service.
func (s *Service) VerifyImage(ctx context.Context, preview domain.DataURI) (Snapshot, error) {
	if preview == "" {
		return Snapshot{}, ErrNoImage
	}
	if err := s.begin(string(preview)); err != nil {
		return Snapshot{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res, err := s.Verifier.VerifyImage(ctx, preview)
	if err != nil {
		return s.fail(err), nil
	}
	return s.succeed(ctx, res, domain.InputImage, string(preview)), nil
}

// VerifyCode runs the code verification path. No decoding backend exists;
// the provider simulates latency and synthesizes the verdict. The scanned or
// typed code is accepted but does not influence the outcome.
func (s *Service) VerifyCode(ctx context.Context, code string) (Snapshot, error) {
	if err := s.begin(domain.ScannedCodePlaceholder); err != nil {
		return Snapshot{}, err
	}

	res, err := s.Codes.VerifyCode(ctx, code)
	if err != nil {
		return s.fail(err), nil
	}
	return s.succeed(ctx, res, domain.InputCode, domain.ScannedCodePlaceholder), nil
}

// Reset clears input, result and error and returns to Idle. History is not
// touched.
func (s *Service) Reset() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = domain.StatusIdle
	s.result = nil
	s.errMsg = ""
	s.preview = ""
	return s.snapshotLocked()
}

// Snapshot returns the current orchestrator state.
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// History returns a copy of the in-memory history, newest first.
func (s *Service) History() []history.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]history.Item, len(s.items))
	copy(out, s.items)
	return out
}

// ClearHistory removes all history items. There is no per-item delete. The
// lock is held across the store call so memory and store never diverge.
func (s *Service) ClearHistory(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	return s.Store.Clear(ctx)
}

func (s *Service) begin(preview string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == domain.StatusAnalyzing {
		return ErrBusy
	}
	s.status = domain.StatusAnalyzing
	s.result = nil
	s.errMsg = ""
	s.preview = preview
	return nil
}

func (s *Service) fail(err error) Snapshot {
	if errors.Is(err, context.DeadlineExceeded) {
		err = errors.Join(domai.ErrServiceUnavailable, err)
	}
	log.Printf("verification failed: %v", err)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = domain.StatusError
	s.errMsg = domai.UserMessage(err)
	return s.snapshotLocked()
}

func (s *Service) succeed(ctx context.Context, res *domain.Result, kind domain.InputKind, preview string) Snapshot {
	id := s.NewID()

	if s.Previews != nil && preview != "" {
		if url, err := s.Previews.PutPreview(ctx, id, domain.DataURI(preview)); err != nil {
			log.Printf("preview offload failed, keeping inline preview: %v", err)
		} else {
			preview = url
		}
	}

	item := history.Item{
		Result:       *res,
		ID:           history.ItemID(id),
		CreatedAt:    s.Clock.Now(),
		Type:         kind,
		ImagePreview: preview,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = history.Prepend(s.items, item)
	s.status = domain.StatusSuccess
	s.result = res

	// Persisted under the lock so a concurrent clear cannot interleave
	// between the memory update and the write. Failures are never surfaced
	// to the user.
	if err := s.Store.SaveAll(ctx, s.items); err != nil {
		log.Printf("failed to save scan history: %v", err)
	}
	return s.snapshotLocked()
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.Timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.Timeout)
}

func (s *Service) snapshotLocked() Snapshot {
	return Snapshot{
		Status:       s.status,
		Result:       s.result,
		Error:        s.errMsg,
		ImagePreview: s.preview,
	}
}
