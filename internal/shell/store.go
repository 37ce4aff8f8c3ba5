package shell

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/acehidan/otastaionary-ecommence/internal/catalog"
	"github.com/acehidan/otastaionary-ecommence/internal/checkout"
)

const (
	// DefaultSessionTTL is how long an idle browsing session is kept
	// before the sweeper drops it.
	DefaultSessionTTL = 30 * time.Minute

	// sweepInterval is how often the background sweep runs.
	sweepInterval = time.Minute
)

type entry struct {
	shell    *Shell
	lastSeen time.Time
}

// Store holds the per-session shells, keyed by an opaque session ID.
// Idle sessions are swept by a background goroutine.
type Store struct {
	catalog *catalog.Catalog
	cfg     checkout.Config
	ttl     time.Duration

	mu        sync.RWMutex
	shells    map[string]*entry
	stopSweep chan struct{}
	wg        sync.WaitGroup
}

func NewStore(cat *catalog.Catalog, cfg checkout.Config, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	s := &Store{
		catalog:   cat,
		cfg:       cfg,
		ttl:       ttl,
		shells:    make(map[string]*entry),
		stopSweep: make(chan struct{}),
	}

	s.wg.Add(1)
	go s.sweepLoop()

	return s
}

// Create opens a new browsing session and returns its ID.
func (s *Store) Create() (string, *Shell) {
	id := uuid.New().String()
	sh := New(s.catalog, s.cfg)

	s.mu.Lock()
	s.shells[id] = &entry{shell: sh, lastSeen: time.Now()}
	s.mu.Unlock()

	return id, sh
}

// Get looks up a session by ID, refreshing its idle timer.
func (s *Store) Get(id string) (*Shell, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.shells[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = time.Now()
	return e.shell, true
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.shells)
}

func (s *Store) sweepLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweepIdle()
		case <-s.stopSweep:
			return
		}
	}
}

// sweepIdle drops sessions idle past the TTL, cancelling any checkout
// they still have in flight.
func (s *Store) sweepIdle() {
	cutoff := time.Now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, e := range s.shells {
		if e.lastSeen.Before(cutoff) {
			e.shell.Close()
			delete(s.shells, id)
		}
	}
}

// Close stops the sweeper and tears down every remaining session.
func (s *Store) Close() error {
	close(s.stopSweep)
	s.wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, e := range s.shells {
		e.shell.Close()
		delete(s.shells, id)
	}
	return nil
}
