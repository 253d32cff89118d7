package theme

import (
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Preferences is the durable key-value store the theme is persisted to.
type Preferences interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Options configures a Store. Prefs and Scheme may be nil, in which case
// that source is treated as holding no preference.
type Options struct {
	Prefs   Preferences
	Scheme  SchemeDetector
	Root    *Root
	Key     string
	Default Mode
	Logger  *zap.Logger
}

// Store holds the current mode for the session. It is the only writer of
// Root's mode classes and notifies subscribers after every change.
type Store struct {
	mu     sync.RWMutex
	mode   Mode
	prefs  Preferences
	scheme SchemeDetector
	root   *Root
	key    string
	def    Mode
	log    *zap.Logger

	subs   map[int]func(Mode)
	nextID int
}

func NewStore(opts Options) *Store {
	def := opts.Default
	if !def.Valid() {
		def = Light
	}
	root := opts.Root
	if root == nil {
		root = NewRoot()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		mode:   def,
		prefs:  opts.Prefs,
		scheme: opts.Scheme,
		root:   root,
		key:    opts.Key,
		def:    def,
		log:    log,
		subs:   map[int]func(Mode){},
	}
}

// ResolveInitial picks the starting mode from the stored preference, then
// the system color scheme, then the configured default, and mirrors it onto
// Root. It never fails and does not write to Preferences.
func (s *Store) ResolveInitial() Mode {
	m := s.lookup()

	s.mu.Lock()
	s.mode = m
	s.root.apply(m)
	s.mu.Unlock()

	s.log.Debug("resolved initial theme", zap.Stringer("mode", m))
	return m
}

func (s *Store) lookup() (m Mode) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Warn("theme resolution panicked, using default", zap.Any("panic", r))
			m = s.def
		}
	}()

	if s.prefs != nil {
		v, ok, err := s.stored()
		switch {
		case err != nil:
			s.log.Warn("reading stored theme", zap.String("key", s.key), zap.Error(err))
		case ok:
			if pm, perr := ParseMode(v); perr == nil {
				return pm
			}
			s.log.Warn("ignoring stored theme", zap.String("key", s.key), zap.String("value", v))
		}
	}

	if s.scheme != nil {
		dark, err := s.scheme.PrefersDark()
		if err == nil {
			if dark {
				return Dark
			}
			return Light
		}
		s.log.Debug("system color scheme unavailable", zap.Error(err))
	}

	return s.def
}

// stored reads the persisted value. A panicking backend counts as a failed read.
func (s *Store) stored() (v string, ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			v, ok, err = "", false, errors.Errorf("preference read panicked: %v", r)
		}
	}()
	return s.prefs.Get(s.key)
}

// Theme returns the current mode.
func (s *Store) Theme() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// Root returns the class set the store keeps in sync.
func (s *Store) Root() *Root { return s.root }

// SetTheme switches to m, persists it and updates Root. Subscribers are
// called after the change, outside the lock. Invalid modes are ignored.
func (s *Store) SetTheme(m Mode) {
	if !m.Valid() {
		s.log.Warn("ignoring invalid theme", zap.String("mode", string(m)))
		return
	}

	s.mu.Lock()
	s.mode = m
	s.root.apply(m)
	subs := make([]func(Mode), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	s.persist(m)
	for _, fn := range subs {
		fn(m)
	}
}

// Toggle flips the mode and returns the new one.
func (s *Store) Toggle() Mode {
	next := s.Theme().Other()
	s.SetTheme(next)
	return next
}

func (s *Store) persist(m Mode) {
	if s.prefs == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			s.log.Warn("persisting theme panicked", zap.Any("panic", r))
		}
	}()
	if err := s.prefs.Set(s.key, string(m)); err != nil {
		s.log.Warn("persisting theme", zap.String("key", s.key), zap.Error(err))
	}
}

// Subscribe registers fn to be called after every SetTheme. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn func(Mode)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}
