package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/hilquiasfmelo/advanced-forms/pkg/metrics"
	gocache "github.com/patrickmn/go-cache"

	apperrors "github.com/hilquiasfmelo/advanced-forms/pkg/errors"
)

const cleanupInterval = time.Minute

// Store keeps live form sessions in memory with an idle TTL so
// abandoned screens are eventually evicted
type Store struct {
	cache *gocache.Cache
	ttl   time.Duration
}

// NewStore creates a session store with the given idle TTL
func NewStore(ttlMinutes int) *Store {
	ttl := time.Duration(ttlMinutes) * time.Minute
	cache := gocache.New(ttl, cleanupInterval)
	cache.OnEvicted(func(string, interface{}) {
		metrics.ActiveFormSessions.Dec()
	})

	return &Store{
		cache: cache,
		ttl:   ttl,
	}
}

// Create registers a fresh session under a new random identifier
func (st *Store) Create() *FormSession {
	sess := New(uuid.NewString())
	st.cache.Set(sess.ID(), sess, gocache.DefaultExpiration)
	metrics.ActiveFormSessions.Inc()
	return sess
}

// Get returns a live session and slides its expiration forward
func (st *Store) Get(id string) (*FormSession, error) {
	value, found := st.cache.Get(id)
	if !found {
		return nil, apperrors.NotFoundError("form session")
	}

	sess := value.(*FormSession)
	// Re-set to slide the idle TTL; overwriting does not fire OnEvicted
	st.cache.Set(id, sess, gocache.DefaultExpiration)
	return sess, nil
}
