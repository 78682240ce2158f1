package verification

import (
	"context"
	"encoding/base64"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/authentiscan/internal/application"
	domai "github.com/bryanwahyu/authentiscan/internal/domain/ai"
	domhist "github.com/bryanwahyu/authentiscan/internal/domain/history"
	domain "github.com/bryanwahyu/authentiscan/internal/domain/verification"
	histinfra "github.com/bryanwahyu/authentiscan/internal/infra/history"
	"github.com/bryanwahyu/authentiscan/internal/infra/kv"
	"github.com/bryanwahyu/authentiscan/internal/infra/simulate"
)

var testPreview = domain.DataURI("data:image/png;base64," +
	base64.StdEncoding.EncodeToString([]byte{0x89, 0x50, 0x4e, 0x47}))

func genuineResult() domain.Result {
	return domain.Result{
		IsGenuine:       true,
		ConfidenceScore: 95,
		ImageAnalysis:   domain.AnalysisDetail{Title: "Image Analysis", Description: "ok", IsPositive: true},
		BarcodeAnalysis: domain.AnalysisDetail{Title: "Barcode Analysis", Description: "ok", IsPositive: true},
		TextAnalysis:    domain.AnalysisDetail{Title: "Text Analysis", Description: "ok", IsPositive: true},
	}
}

// stubVerifier answers every image with a canned verdict or error.
type stubVerifier struct {
	res *domain.Result
	err error
}

func (s stubVerifier) VerifyImage(context.Context, domain.DataURI) (*domain.Result, error) {
	if s.err != nil {
		return nil, s.err
	}
	res := *s.res
	return &res, nil
}

// blockingVerifier parks until released so tests can observe the Analyzing
// state from another goroutine.
type blockingVerifier struct {
	started chan struct{}
	release chan struct{}
	res     domain.Result
}

func (b *blockingVerifier) VerifyImage(ctx context.Context, _ domain.DataURI) (*domain.Result, error) {
	close(b.started)
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-b.release:
	}
	res := b.res
	return &res, nil
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func newTestService(verifier domai.Verifier, codes domai.CodeVerifier) (*Service, *kv.MemoryStore) {
	mem := kv.NewMemoryStore()
	svc := New(verifier, codes, histinfra.NewStore(mem), fixedClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)})
	return svc, mem
}

func TestVerifyImageSuccess(t *testing.T) {
	res := genuineResult()
	svc, mem := newTestService(stubVerifier{res: &res}, simulate.Fixed{})

	snap, err := svc.VerifyImage(context.Background(), testPreview)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusSuccess, snap.Status)
	require.NotNil(t, snap.Result)
	assert.Equal(t, res, *snap.Result)
	assert.Empty(t, snap.Error)
	assert.Equal(t, string(testPreview), snap.ImagePreview)

	items := svc.History()
	require.Len(t, items, 1)
	assert.Equal(t, domain.InputImage, items[0].Type)
	assert.Equal(t, res, items[0].Result)
	assert.NotEmpty(t, items[0].ID)
	assert.True(t, mem.Has(histinfra.StorageKey), "history should be persisted")
}

func TestVerifyImageEmptyPayload(t *testing.T) {
	svc, _ := newTestService(stubVerifier{}, simulate.Fixed{})
	_, err := svc.VerifyImage(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoImage)
	assert.Equal(t, domain.StatusIdle, svc.Snapshot().Status)
}

func TestVerifyImageFailureLeavesHistoryUntouched(t *testing.T) {
	svc, mem := newTestService(stubVerifier{err: domai.ErrNetwork}, simulate.Fixed{})

	snap, err := svc.VerifyImage(context.Background(), testPreview)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusError, snap.Status)
	assert.Nil(t, snap.Result)
	assert.Equal(t, domai.UserMessage(domai.ErrNetwork), snap.Error)
	assert.Empty(t, svc.History())
	assert.False(t, mem.Has(histinfra.StorageKey))
}

func TestVerifyImageTimeoutMapsToUnavailable(t *testing.T) {
	bv := &blockingVerifier{started: make(chan struct{}), release: make(chan struct{})}
	svc, _ := newTestService(bv, simulate.Fixed{})
	svc.Timeout = 20 * time.Millisecond

	snap, err := svc.VerifyImage(context.Background(), testPreview)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusError, snap.Status)
	assert.Equal(t, domai.UserMessage(domai.ErrServiceUnavailable), snap.Error)
}

func TestVerifyImageRejectsConcurrentStart(t *testing.T) {
	bv := &blockingVerifier{
		started: make(chan struct{}),
		release: make(chan struct{}),
		res:     genuineResult(),
	}
	svc, _ := newTestService(bv, simulate.Fixed{})

	type outcome struct {
		snap Snapshot
		err  error
	}
	done := make(chan outcome, 1)
	go func() {
		snap, err := svc.VerifyImage(context.Background(), testPreview)
		done <- outcome{snap, err}
	}()

	<-bv.started
	assert.Equal(t, domain.StatusAnalyzing, svc.Snapshot().Status)

	_, err := svc.VerifyImage(context.Background(), testPreview)
	assert.ErrorIs(t, err, ErrBusy)
	_, err = svc.VerifyCode(context.Background(), "123")
	assert.ErrorIs(t, err, ErrBusy)

	close(bv.release)
	out := <-done
	require.NoError(t, out.err)
	assert.Equal(t, domain.StatusSuccess, out.snap.Status)
	assert.Len(t, svc.History(), 1)
}

func TestVerifyCodeUsesPlaceholderPreview(t *testing.T) {
	res := genuineResult()
	svc, _ := newTestService(stubVerifier{}, simulate.Fixed{Result: res})

	snap, err := svc.VerifyCode(context.Background(), "8991002100138")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusSuccess, snap.Status)
	assert.Equal(t, domain.ScannedCodePlaceholder, snap.ImagePreview)

	items := svc.History()
	require.Len(t, items, 1)
	assert.Equal(t, domain.InputCode, items[0].Type)
	assert.Equal(t, domain.ScannedCodePlaceholder, items[0].ImagePreview)
}

func TestVerifyCodeFailure(t *testing.T) {
	svc, _ := newTestService(stubVerifier{}, simulate.Fixed{Err: context.DeadlineExceeded})

	snap, err := svc.VerifyCode(context.Background(), "123")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusError, snap.Status)
	assert.Equal(t, domai.UserMessage(domai.ErrServiceUnavailable), snap.Error)
}

func TestHistoryBounded(t *testing.T) {
	res := genuineResult()
	svc, _ := newTestService(stubVerifier{}, simulate.Fixed{Result: res})

	n := 0
	svc.NewID = func() string { n++; return strconv.Itoa(n) }

	for i := 0; i < domhist.MaxItems+5; i++ {
		_, err := svc.VerifyCode(context.Background(), "")
		require.NoError(t, err)
	}

	items := svc.History()
	require.Len(t, items, domhist.MaxItems)
	// newest first; the first five runs were evicted
	assert.Equal(t, domhist.ItemID(strconv.Itoa(domhist.MaxItems+5)), items[0].ID)
	assert.Equal(t, domhist.ItemID("6"), items[len(items)-1].ID)
}

func TestResetClearsStateNotHistory(t *testing.T) {
	svc, _ := newTestService(stubVerifier{err: domai.ErrNetwork}, simulate.Fixed{Result: genuineResult()})

	_, err := svc.VerifyCode(context.Background(), "")
	require.NoError(t, err)
	_, err = svc.VerifyImage(context.Background(), testPreview)
	require.NoError(t, err)
	require.Equal(t, domain.StatusError, svc.Snapshot().Status)

	snap := svc.Reset()
	assert.Equal(t, domain.StatusIdle, snap.Status)
	assert.Nil(t, snap.Result)
	assert.Empty(t, snap.Error)
	assert.Empty(t, snap.ImagePreview)
	assert.Len(t, svc.History(), 1)
}

func TestClearHistory(t *testing.T) {
	svc, mem := newTestService(stubVerifier{}, simulate.Fixed{Result: genuineResult()})

	_, err := svc.VerifyCode(context.Background(), "")
	require.NoError(t, err)
	require.True(t, mem.Has(histinfra.StorageKey))

	require.NoError(t, svc.ClearHistory(context.Background()))
	assert.Empty(t, svc.History())
	assert.False(t, mem.Has(histinfra.StorageKey))
}

func TestLoadHistoryAtStartup(t *testing.T) {
	mem := kv.NewMemoryStore()
	store := histinfra.NewStore(mem)
	first := New(stubVerifier{}, simulate.Fixed{Result: genuineResult()}, store, application.SystemClock{})
	_, err := first.VerifyCode(context.Background(), "")
	require.NoError(t, err)

	second := New(stubVerifier{}, simulate.Fixed{}, store, application.SystemClock{})
	require.NoError(t, second.LoadHistory(context.Background()))
	assert.Len(t, second.History(), 1)
}

// Clears racing completed runs must leave the store holding exactly what
// memory holds, never a just-cleared item.
func TestConcurrentClearKeepsStoreConsistent(t *testing.T) {
	svc, mem := newTestService(stubVerifier{}, simulate.Fixed{Result: genuineResult()})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 25; i++ {
			_, err := svc.VerifyCode(context.Background(), "")
			assert.NoError(t, err)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 25; i++ {
			assert.NoError(t, svc.ClearHistory(context.Background()))
		}
	}()
	wg.Wait()

	items := svc.History()
	persisted, err := histinfra.NewStore(mem).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, persisted, len(items))
	if len(items) > 0 {
		assert.Equal(t, items[0].ID, persisted[0].ID)
	}
}

// A second run after a failure must recover and record normally.
func TestFailureThenSuccess(t *testing.T) {
	res := genuineResult()
	svc, _ := newTestService(stubVerifier{err: errors.New("boom")}, simulate.Fixed{Result: res})

	snap, err := svc.VerifyImage(context.Background(), testPreview)
	require.NoError(t, err)
	require.Equal(t, domain.StatusError, snap.Status)

	snap, err = svc.VerifyCode(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, snap.Status)
	assert.Empty(t, snap.Error)
	assert.Len(t, svc.History(), 1)
}
