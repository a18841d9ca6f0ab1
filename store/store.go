package store

import (
	"sync"
	"time"

	"hotelops/models"
	"hotelops/storage"

	"go.uber.org/zap"
)

// Store is the single state container. All writes flow through Dispatch
// (single-writer discipline); reads take an immutable snapshot.
type Store struct {
	mu      sync.RWMutex
	state   State
	reducer *Reducer

	persist  storage.Store // nil disables persistence
	logger   *zap.Logger
	toastTTL time.Duration // zero disables auto-expiry
}

// Options configures a Store.
type Options struct {
	Persistence storage.Store
	Logger      *zap.Logger
	ToastTTL    time.Duration
}

// New builds a store seeded with the given initial state.
func New(initial State, opts Options) *Store {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		state:    initial,
		reducer:  NewReducer(initial),
		persist:  opts.Persistence,
		logger:   logger,
		toastTTL: opts.ToastTTL,
	}
}

// Reducer exposes the underlying reducer (tests adjust its clock).
func (s *Store) Reducer() *Reducer {
	return s.reducer
}

// Snapshot returns the current state. Collections are never mutated in
// place by the reducer, so the snapshot is safe to read without copying.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies an action, persists the affected collections, and
// schedules expiry for any toast the transition emitted.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	prev := s.state
	next := s.reducer.Reduce(prev, action)
	s.state = next
	s.mu.Unlock()

	s.logger.Debug("Dispatched action", zap.String("type", string(action.Type)))

	s.persistChanges(prev, next)
	s.scheduleToastExpiry(prev, next)
}

// LoadPersisted overlays previously saved state onto the seed data.
// Missing or unreadable values keep their fixture defaults.
func (s *Store) LoadPersisted() {
	if s.persist == nil {
		return
	}

	var payload LoadPersistedStatePayload

	var rooms []models.Room
	if found, err := s.persist.Load(storage.KeyRooms, &rooms); err != nil {
		s.logger.Warn("Failed to load persisted rooms", zap.Error(err))
	} else if found {
		payload.Rooms = rooms
	}

	var tickets []models.MaintenanceTicket
	if found, err := s.persist.Load(storage.KeyMaintenance, &tickets); err != nil {
		s.logger.Warn("Failed to load persisted maintenance", zap.Error(err))
	} else if found {
		payload.Maintenance = tickets
	}

	var settings models.Settings
	if found, err := s.persist.Load(storage.KeySettings, &settings); err != nil {
		s.logger.Warn("Failed to load persisted settings", zap.Error(err))
	} else if found {
		payload.Settings = &settings
	}

	var selected string
	if found, err := s.persist.Load(storage.KeySelectedProperty, &selected); err != nil {
		s.logger.Warn("Failed to load persisted property filter", zap.Error(err))
	} else if found {
		payload.SelectedProperty = &selected
	}

	if payload.Rooms == nil && payload.Maintenance == nil &&
		payload.Settings == nil && payload.SelectedProperty == nil {
		return
	}

	s.Dispatch(Action{Type: LoadPersistedState, Payload: payload})
}

// persistChanges saves every persisted collection the transition replaced.
// Saves are fire-and-forget; failures are logged and masked.
func (s *Store) persistChanges(prev, next State) {
	if s.persist == nil {
		return
	}

	save := func(key string, value any) {
		if err := s.persist.Save(key, value); err != nil {
			s.logger.Warn("Failed to persist state", zap.String("key", key), zap.Error(err))
		}
	}

	if sliceReplaced(prev.Rooms, next.Rooms) {
		save(storage.KeyRooms, next.Rooms)
	}
	if sliceReplaced(prev.Maintenance, next.Maintenance) {
		save(storage.KeyMaintenance, next.Maintenance)
	}
	if prev.Settings != next.Settings {
		save(storage.KeySettings, next.Settings)
	}
	if prev.SelectedProperty != next.SelectedProperty {
		save(storage.KeySelectedProperty, next.SelectedProperty)
	}
}

// sliceReplaced reports whether the reducer swapped in a new slice.
// Identity of the backing array is enough: branches only replace slices
// they changed.
func sliceReplaced[T any](prev, next []T) bool {
	if len(prev) != len(next) {
		return true
	}
	if len(next) == 0 {
		return false
	}
	return &prev[0] != &next[0]
}

// scheduleToastExpiry dismisses newly added toasts after the configured TTL.
func (s *Store) scheduleToastExpiry(prev, next State) {
	if s.toastTTL <= 0 {
		return
	}
	known := make(map[string]bool, len(prev.Toasts))
	for _, t := range prev.Toasts {
		known[t.ID] = true
	}
	for _, t := range next.Toasts {
		if known[t.ID] {
			continue
		}
		id := t.ID
		time.AfterFunc(s.toastTTL, func() {
			s.Dispatch(Action{Type: RemoveToast, Payload: RemoveToastPayload{ID: id}})
		})
	}
}
