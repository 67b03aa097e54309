// Package store keeps a client-side copy of one REST collection in sync
// with the server across asynchronous create/update/delete calls, and
// exposes the loading/error/success observables list pages bind to.
package store

import (
	"context"
	"errors"
	"sync"
	"time"
)

var errStatusUnsupported = errors.New("status updates are not supported for this resource")

// Record is any cached item with a server-assigned identifier.
type Record interface {
	RecordID() uint
}

// API is the slice of the resource client a store needs. *client.Resource[T]
// satisfies it.
type API[T Record] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, payload any) (*T, error)
	Update(ctx context.Context, id uint, payload any) (*T, error)
	Delete(ctx context.Context, id uint) error
}

// StatusAPI is implemented by resources that support a status-only PATCH.
type StatusAPI[T Record] interface {
	UpdateStatus(ctx context.Context, id uint, status string) (*T, error)
}

// messageTTL is how long error/success messages stay visible before
// they clear themselves.
const messageTTL = 5 * time.Second

// Store is the per-resource cache plus operation state. Construct one
// per collection with New and pass it by reference; there is no global
// instance. Operations are not serialized against each other: two
// concurrent updates for the same identifier resolve last-write-wins by
// completion order, which is fine for a single operator but not for
// concurrent multi-user editing.
type Store[T Record] struct {
	api API[T]
	ttl time.Duration

	mu         sync.Mutex
	items      []T
	loading    bool
	saving     bool
	errMsg     string
	successMsg string
	msgGen     uint64
	clearTimer *time.Timer
	closed     bool
}

func New[T Record](api API[T]) *Store[T] {
	return &Store[T]{api: api, ttl: messageTTL}
}

// Items returns a copy of the cached collection in server order.
func (s *Store[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store[T]) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Saving reports whether a create/update/delete is in flight. Callers
// use it to disable submit buttons; it is advisory, nothing stops a
// second operation from being issued.
func (s *Store[T]) Saving() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saving
}

func (s *Store[T]) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

func (s *Store[T]) Success() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.successMsg
}

// Close disarms the message-clear timer. Call it when the owning view
// unmounts.
func (s *Store[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.clearTimer != nil {
		s.clearTimer.Stop()
		s.clearTimer = nil
	}
}

// setMessages must be called with the lock held. Arms the self-clear
// timer whenever either message becomes non-empty. The generation
// counter guards against a stale timer callback that already fired and
// was waiting on the lock while a newer message was set: Stop cannot
// cancel it, so the callback re-checks the generation before clearing.
func (s *Store[T]) setMessages(errMsg, successMsg string) {
	s.errMsg = errMsg
	s.successMsg = successMsg
	s.msgGen++

	if s.clearTimer != nil {
		s.clearTimer.Stop()
		s.clearTimer = nil
	}
	if s.closed || (errMsg == "" && successMsg == "") {
		return
	}
	gen := s.msgGen
	s.clearTimer = time.AfterFunc(s.ttl, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.msgGen != gen {
			return
		}
		s.errMsg = ""
		s.successMsg = ""
		s.clearTimer = nil
	})
}

// List replaces the whole cache with the server collection. On failure
// the previous cache is kept untouched.
func (s *Store[T]) List(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	items, err := s.api.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.setMessages(err.Error(), "")
		return err
	}
	s.items = items
	s.setMessages("", "")
	return nil
}

// Create appends the server's canonical record to the cache.
func (s *Store[T]) Create(ctx context.Context, payload any) error {
	s.mu.Lock()
	s.saving = true
	s.mu.Unlock()

	created, err := s.api.Create(ctx, payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.saving = false
	if err != nil {
		s.setMessages(err.Error(), "")
		return err
	}
	s.items = append(s.items, *created)
	s.setMessages("", "Created successfully")
	return nil
}

// Update replaces the cache entry matching the returned record's
// identifier, preserving its position. When no entry matches (a stale
// list), the canonical record is appended instead of being dropped.
func (s *Store[T]) Update(ctx context.Context, id uint, payload any) error {
	s.mu.Lock()
	s.saving = true
	s.mu.Unlock()

	updated, err := s.api.Update(ctx, id, payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.saving = false
	if err != nil {
		s.setMessages(err.Error(), "")
		return err
	}
	s.apply(*updated)
	s.setMessages("", "Updated successfully")
	return nil
}

// UpdateStatus issues a status-only PATCH for resources that support it
// and applies the returned record like Update does.
func (s *Store[T]) UpdateStatus(ctx context.Context, id uint, status string) error {
	statusAPI, ok := s.api.(StatusAPI[T])
	if !ok {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.setMessages(errStatusUnsupported.Error(), "")
		return errStatusUnsupported
	}

	s.mu.Lock()
	s.saving = true
	s.mu.Unlock()

	updated, err := statusAPI.UpdateStatus(ctx, id, status)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.saving = false
	if err != nil {
		s.setMessages(err.Error(), "")
		return err
	}
	s.apply(*updated)
	s.setMessages("", "Status updated")
	return nil
}

// apply merges one canonical record into the cache. Lock must be held.
func (s *Store[T]) apply(record T) {
	for i := range s.items {
		if s.items[i].RecordID() == record.RecordID() {
			s.items[i] = record
			return
		}
	}
	s.items = append(s.items, record)
}

// Delete removes every cache entry with the given identifier once the
// server confirms.
func (s *Store[T]) Delete(ctx context.Context, id uint) error {
	s.mu.Lock()
	s.saving = true
	s.mu.Unlock()

	err := s.api.Delete(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.saving = false
	if err != nil {
		s.setMessages(err.Error(), "")
		return err
	}
	kept := s.items[:0]
	for _, item := range s.items {
		if item.RecordID() != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.setMessages("", "Deleted successfully")
	return nil
}

// ConfirmDelete runs Delete only when confirm returns true; a declined
// confirmation is a no-op with no state change.
func (s *Store[T]) ConfirmDelete(ctx context.Context, id uint, confirm func() bool) error {
	if confirm == nil || !confirm() {
		return nil
	}
	return s.Delete(ctx, id)
}
