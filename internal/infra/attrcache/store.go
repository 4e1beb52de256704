// Package attrcache provides the in-process attribute store shared by the
// identity resolution service. It replaces an older pattern where many
// components mutated one global cache object directly: here every namespace
// has exactly one claimed writer, and the tenant-isolation guard can drop a
// namespace wholesale without touching others.
package attrcache

import (
	"log/slog"
	"sync"

	"workdesk/internal/domain/service"
	"workdesk/internal/errors"
)

// Write-ownership errors.
var (
	// ErrNamespaceClaimed is returned when a namespace already has a different owner.
	ErrNamespaceClaimed = errors.New("namespace already claimed by another owner")
	// ErrNotOwner is returned when a writer is not the claimed owner of a namespace.
	ErrNotOwner = errors.New("writer does not own this namespace")
)

type store struct {
	mu     sync.RWMutex
	owners map[string]string
	data   map[string]map[string]any
	logger *slog.Logger
}

// NewStore creates an empty attribute store.
func NewStore(logger *slog.Logger) service.AttributeStore {
	return &store{
		owners: make(map[string]string),
		data:   make(map[string]map[string]any),
		logger: logger,
	}
}

// Claim registers owner as the sole writer of a namespace. Re-claiming with
// the same owner is a no-op.
func (s *store) Claim(namespace, owner string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok := s.owners[namespace]; ok && current != owner {
		return errors.Wrapf(ErrNamespaceClaimed, "namespace %q is owned by %q", namespace, current)
	}
	s.owners[namespace] = owner

	return nil
}

// Put writes a key into a namespace. The namespace must be claimed by owner.
func (s *store) Put(namespace, owner, key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.owners[namespace]
	if !ok || current != owner {
		return errors.Wrapf(ErrNotOwner, "namespace %q, writer %q", namespace, owner)
	}

	ns, ok := s.data[namespace]
	if !ok {
		ns = make(map[string]any)
		s.data[namespace] = ns
	}
	ns[key] = value

	return nil
}

// Get reads a single key from a namespace.
func (s *store) Get(namespace, key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ns, ok := s.data[namespace]
	if !ok {
		return nil, false
	}
	value, ok := ns[key]

	return value, ok
}

// Snapshot returns a copy of all attributes in a namespace. The copy is safe
// to hand to the identity adapter without holding the lock.
func (s *store) Snapshot(namespace string) map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ns, ok := s.data[namespace]
	if !ok {
		return map[string]any{}
	}

	snapshot := make(map[string]any, len(ns))
	for key, value := range ns {
		snapshot[key] = value
	}

	return snapshot
}

// Invalidate drops every attribute in a namespace, keeping the ownership
// claim so the owner can repopulate it.
func (s *store) Invalidate(namespace string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[namespace]; !ok {
		return
	}
	delete(s.data, namespace)

	if s.logger != nil {
		s.logger.Debug("attribute namespace invalidated", slog.String("namespace", namespace))
	}
}
