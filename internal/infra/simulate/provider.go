package simulate

import (
	"context"
	"math/rand"
	"time"

	"github.com/bryanwahyu/authentiscan/internal/domain/verification"
)

// DefaultDelay mirrors the latency of a real backend round trip.
const DefaultDelay = 3 * time.Second

// Provider synthesizes code-scan verdicts: after a fixed delay it flips a
// fair coin between genuine and counterfeit and picks uniformly from the
// matching pool. The scanned code is accepted but does not influence the
// outcome.
type Provider struct {
	delay time.Duration
	rng   *rand.Rand
}

func NewProvider(delay time.Duration) *Provider {
	if delay < 0 {
		delay = DefaultDelay
	}
	// Dedicated source to avoid contention on the global one
	src := rand.NewSource(time.Now().UnixNano())
	return &Provider{delay: delay, rng: rand.New(src)}
}

func (p *Provider) VerifyCode(ctx context.Context, _ string) (*verification.Result, error) {
	if p.delay > 0 {
		t := time.NewTimer(p.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-t.C:
		}
	}

	pool := genuinePool
	if p.rng.Float64() > 0.5 {
		pool = counterfeitPool
	}
	res := pool[p.rng.Intn(len(pool))]
	return &res, nil
}

// Fixed is the deterministic test double: it returns a preset verdict with
// no delay.
type Fixed struct {
	Result verification.Result
	Err    error
}

func (f Fixed) VerifyCode(context.Context, string) (*verification.Result, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	res := f.Result
	return &res, nil
}

// PoolSizes reports the number of canned verdicts per class.
func PoolSizes() (genuine, counterfeit int) {
	return len(genuinePool), len(counterfeitPool)
}

// InPool reports whether res equals one of the canned verdicts, and if so
// whether it came from the genuine pool.
func InPool(res verification.Result) (found, genuine bool) {
	for _, r := range genuinePool {
		if r == res {
			return true, true
		}
	}
	for _, r := range counterfeitPool {
		if r == res {
			return true, false
		}
	}
	return false, false
}
