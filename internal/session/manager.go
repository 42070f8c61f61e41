// Package session keeps per-client state for the API gateway: the address
// a client works with and the network it selected.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ReneKroon/ttlcache/v2"
	"github.com/goodnatureofminers/utxo-broadcaster/internal/model"
	"go.uber.org/zap"
)

const (
	DefaultIdleTTL     = 30 * time.Minute
	DefaultMaxSessions = 10_000
)

var (
	ErrClosed             = errors.New("session manager is shut down")
	ErrEmptyID            = errors.New("empty session id")
	ErrNotFound           = errors.New("session not found")
	ErrUnsupportedNetwork = errors.New("unsupported network")
)

// Config bounds how many sessions are kept and for how long.
type Config struct {
	// IdleTTL evicts sessions not seen for that long.
	IdleTTL time.Duration
	// MaxSessions caps the live sessions; the least recently seen one is
	// evicted to make room.
	MaxSessions int
}

func (c Config) withDefaults() Config {
	if c.IdleTTL <= 0 {
		c.IdleTTL = DefaultIdleTTL
	}
	if c.MaxSessions <= 0 {
		c.MaxSessions = DefaultMaxSessions
	}
	return c
}

// Session is a snapshot; mutate through the Manager.
type Session struct {
	ID        string
	Address   string
	Network   model.Network
	CreatedAt time.Time
	LastSeen  time.Time
}

// Manager holds sessions in a TTL cache. Every read or write refreshes the
// idle timer of the session it touches.
type Manager struct {
	// mu serialises read-modify-write of the cached *Session values.
	mu      sync.Mutex
	cache   *ttlcache.Cache
	network model.Network
	now     func() time.Time
	logger  *zap.Logger
}

// NewManager returns a manager that assigns network to new sessions.
func NewManager(network model.Network, cfg Config, logger *zap.Logger) (*Manager, error) {
	if !network.Valid() {
		return nil, ErrUnsupportedNetwork
	}
	cfg = cfg.withDefaults()
	logger = logger.Named("sessions")

	cache := ttlcache.NewCache()
	if err := cache.SetTTL(cfg.IdleTTL); err != nil {
		_ = cache.Close()
		return nil, fmt.Errorf("session ttl: %w", err)
	}
	cache.SetCacheSizeLimit(cfg.MaxSessions)
	cache.SetExpirationReasonCallback(func(id string, reason ttlcache.EvictionReason, _ interface{}) {
		if reason == ttlcache.Expired || reason == ttlcache.EvictedSize {
			logger.Debug("session evicted", zap.String("id", id), zap.Int("reason", int(reason)))
		}
	})

	return &Manager{
		cache:   cache,
		network: network,
		now:     time.Now,
		logger:  logger,
	}, nil
}

// Get returns session id and marks it seen. It never creates a session.
func (m *Manager) Get(id string) (Session, error) {
	if id == "" {
		return Session{}, ErrEmptyID
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.lookup(id)
	if err != nil {
		return Session{}, err
	}
	s.LastSeen = m.now()
	return *s, nil
}

// Update sets the address and network of session id, creating it on first
// use. An empty network keeps the current one.
func (m *Manager) Update(id, address string, network model.Network) (Session, error) {
	if id == "" {
		return Session{}, ErrEmptyID
	}
	if network != "" && !network.Valid() {
		return Session{}, ErrUnsupportedNetwork
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	s, err := m.lookup(id)
	switch {
	case errors.Is(err, ErrNotFound):
		s = &Session{ID: id, Network: m.network, CreatedAt: now}
		if err := m.cache.Set(id, s); err != nil {
			return Session{}, cacheError(err)
		}
		m.logger.Debug("session created", zap.String("id", id))
	case err != nil:
		return Session{}, err
	}
	s.Address = address
	if network != "" {
		s.Network = network
	}
	s.LastSeen = now
	return *s, nil
}

// Evict removes session id.
func (m *Manager) Evict(id string) error {
	if err := m.cache.Remove(id); err != nil {
		return cacheError(err)
	}
	m.logger.Debug("session evicted", zap.String("id", id), zap.String("reason", "requested"))
	return nil
}

// Shutdown evicts every session and refuses new ones. It returns how many
// sessions were dropped.
func (m *Manager) Shutdown() int {
	n := m.cache.Count()
	if err := m.cache.Close(); err != nil {
		return 0
	}
	m.logger.Info("sessions shut down", zap.Int("evicted", n))
	return n
}

func (m *Manager) Len() int {
	return m.cache.Count()
}

func (m *Manager) lookup(id string) (*Session, error) {
	v, err := m.cache.Get(id)
	if err != nil {
		return nil, cacheError(err)
	}
	s, ok := v.(*Session)
	if !ok {
		return nil, fmt.Errorf("session %q holds %T", id, v)
	}
	return s, nil
}

func cacheError(err error) error {
	switch {
	case errors.Is(err, ttlcache.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, ttlcache.ErrClosed):
		return ErrClosed
	default:
		return err
	}
}
