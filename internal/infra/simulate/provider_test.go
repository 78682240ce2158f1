package simulate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderPicksFromPools(t *testing.T) {
	p := NewProvider(0)

	sawGenuine, sawCounterfeit := false, false
	for i := 0; i < 200; i++ {
		res, err := p.VerifyCode(context.Background(), "any-code")
		require.NoError(t, err)

		found, genuine := InPool(*res)
		require.True(t, found, "verdict must come from a canned pool")
		assert.Equal(t, genuine, res.IsGenuine)
		if genuine {
			sawGenuine = true
		} else {
			sawCounterfeit = true
		}
	}
	// a fair coin over 200 draws hits both sides
	assert.True(t, sawGenuine)
	assert.True(t, sawCounterfeit)
}

func TestProviderCancelled(t *testing.T) {
	p := NewProvider(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.VerifyCode(ctx, "code")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPoolsAreComplete(t *testing.T) {
	genuine, counterfeit := PoolSizes()
	assert.Equal(t, 6, genuine)
	assert.Equal(t, 6, counterfeit)
}

func TestFixedDouble(t *testing.T) {
	want := genuinePool[0]
	res, err := Fixed{Result: want}.VerifyCode(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, want, *res)

	boom := errors.New("boom")
	_, err = Fixed{Err: boom}.VerifyCode(context.Background(), "")
	assert.ErrorIs(t, err, boom)
}
