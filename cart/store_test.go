package cart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jrgn63/keyking/pkg/errs"
)

func TestStoreGetCreatesEmptyCart(t *testing.T) {
	s := NewStore(time.Hour)

	snap := s.Get("session-1")
	assert.Empty(t, snap.Items)
	assert.Equal(t, 0.0, snap.Total)
	assert.Equal(t, int64(0), snap.Revision)
}

func TestStoreSessionsAreIsolated(t *testing.T) {
	s := NewStore(time.Hour)

	_, err := s.Add("one", testProduct("x", 10, 5), AnyRevision)
	require.NoError(t, err)

	assert.Len(t, s.Get("one").Items, 1)
	assert.Empty(t, s.Get("two").Items)
}

func TestStoreRevisionIncrementsPerMutation(t *testing.T) {
	s := NewStore(time.Hour)
	p := testProduct("x", 10, 5)

	snap, err := s.Add("s", p, AnyRevision)
	require.NoError(t, err)
	assert.Equal(t, int64(1), snap.Revision)

	snap, err = s.UpdateQuantity("s", "x", 3, AnyRevision)
	require.NoError(t, err)
	assert.Equal(t, int64(2), snap.Revision)
}

func TestStoreRejectsStaleRevision(t *testing.T) {
	s := NewStore(time.Hour)
	p := testProduct("x", 10, 5)

	_, err := s.Add("s", p, AnyRevision)
	require.NoError(t, err)

	// A client still holding revision 0 must not clobber revision 1.
	_, err = s.Add("s", p, 0)
	require.ErrorIs(t, err, errs.ErrStaleCart)

	// State is unchanged by the rejected mutation.
	snap := s.Get("s")
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 1, snap.Items[0].Quantity)

	// Retrying with the current revision succeeds.
	snap, err = s.Add("s", p, snap.Revision)
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Items[0].Quantity)
}

func TestStoreClearIsIdempotent(t *testing.T) {
	s := NewStore(time.Hour)
	_, err := s.Add("s", testProduct("x", 10, 5), AnyRevision)
	require.NoError(t, err)

	s.Clear("s")
	s.Clear("s") // replayed checkout-success signal

	snap := s.Get("s")
	assert.Empty(t, snap.Items)
	assert.Equal(t, int64(0), snap.Revision)
}

func TestStoreSweepDropsIdleSessions(t *testing.T) {
	s := NewStore(30 * time.Minute)

	now := time.Now()
	s.now = func() time.Time { return now }
	_, err := s.Add("idle", testProduct("x", 10, 5), AnyRevision)
	require.NoError(t, err)

	s.now = func() time.Time { return now.Add(20 * time.Minute) }
	_, err = s.Add("active", testProduct("x", 10, 5), AnyRevision)
	require.NoError(t, err)

	s.now = func() time.Time { return now.Add(40 * time.Minute) }
	assert.Equal(t, 1, s.Sweep())

	assert.Empty(t, s.Get("idle").Items)
	assert.Len(t, s.Get("active").Items, 1)
}
