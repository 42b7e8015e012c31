package cart

import (
	"fmt"
	"sync"
	"time"

	"github.com/Jrgn63/keyking/models"
	"github.com/Jrgn63/keyking/pkg/errs"
)

// AnyRevision skips the optimistic revision check on a mutation.
const AnyRevision int64 = -1

// Snapshot is the read view of a session cart handed to callers.
type Snapshot struct {
	Items    []Item  `json:"items"`
	Total    float64 `json:"total"`
	Revision int64   `json:"revision"`
}

type session struct {
	cart       Cart
	revision   int64
	lastActive time.Time
}

// Store keeps one cart per shopper session, created empty on first touch and
// dropped on checkout success or after sitting idle past the TTL. Mutations
// may carry the revision the client last saw; a mutation against an older
// revision is rejected rather than applied over fresher state.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
	now      func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get returns the session's cart, creating an empty one if needed.
func (s *Store) Get(sessionID string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(s.touch(sessionID))
}

// Add applies ADD_ITEM with the given product snapshot.
func (s *Store) Add(sessionID string, p models.Product, expectedRev int64) (Snapshot, error) {
	return s.apply(sessionID, expectedRev, func(c *Cart) { c.AddItem(p) })
}

// UpdateQuantity applies UPDATE_QUANTITY for the product id.
func (s *Store) UpdateQuantity(sessionID, productID string, quantity int, expectedRev int64) (Snapshot, error) {
	return s.apply(sessionID, expectedRev, func(c *Cart) { c.UpdateQuantity(productID, quantity) })
}

// Remove applies REMOVE_ITEM for the product id.
func (s *Store) Remove(sessionID, productID string, expectedRev int64) (Snapshot, error) {
	return s.apply(sessionID, expectedRev, func(c *Cart) { c.RemoveItem(productID) })
}

// Clear drops the session outright. Idempotent, so a replayed
// checkout-success notification clears at most once.
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// Sweep removes sessions idle longer than the TTL and reports how many.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-s.ttl)
	n := 0
	for id, sess := range s.sessions {
		if sess.lastActive.Before(cutoff) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

func (s *Store) apply(sessionID string, expectedRev int64, mutate func(*Cart)) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.touch(sessionID)
	if expectedRev != AnyRevision && expectedRev != sess.revision {
		return s.snapshot(sess), fmt.Errorf("%w: have %d, got %d", errs.ErrStaleCart, sess.revision, expectedRev)
	}
	mutate(&sess.cart)
	sess.revision++
	return s.snapshot(sess), nil
}

func (s *Store) touch(sessionID string) *session {
	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &session{}
		s.sessions[sessionID] = sess
	}
	sess.lastActive = s.now()
	return sess
}

func (s *Store) snapshot(sess *session) Snapshot {
	return Snapshot{
		Items:    sess.cart.Items(),
		Total:    sess.cart.Total(),
		Revision: sess.revision,
	}
}
