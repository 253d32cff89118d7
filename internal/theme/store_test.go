package theme

import (
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/iburimskiy/particle-portfolio/internal/prefs"
)

const testKey = "theme-preference"

type memPrefs struct {
	values  map[string]string
	getErr  error
	setErr  error
	panics  bool
	setCall int
}

func newMemPrefs() *memPrefs { return &memPrefs{values: map[string]string{}} }

func (m *memPrefs) Get(key string) (string, bool, error) {
	if m.panics {
		panic("storage exploded")
	}
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memPrefs) Set(key, value string) error {
	m.setCall++
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

type fixedScheme struct {
	dark bool
	err  error
}

func (f fixedScheme) PrefersDark() (bool, error) { return f.dark, f.err }

func TestResolveInitialOrder(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		scheme SchemeDetector
		def    Mode
		want   Mode
	}{
		{"stored wins", "dark", fixedScheme{dark: false}, Light, Dark},
		{"system dark", "", fixedScheme{dark: true}, Light, Dark},
		{"system light", "", fixedScheme{dark: false}, Dark, Light},
		{"system fails", "", fixedScheme{err: ErrNoScheme}, Dark, Dark},
		{"no system", "", nil, Dark, Dark},
		{"garbage stored", "purple", fixedScheme{dark: true}, Light, Dark},
		{"invalid default", "", nil, Mode("sepia"), Light},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newMemPrefs()
			if tt.stored != "" {
				p.values[testKey] = tt.stored
			}
			s := NewStore(Options{Prefs: p, Scheme: tt.scheme, Key: testKey, Default: tt.def})

			if got := s.ResolveInitial(); got != tt.want {
				t.Errorf("ResolveInitial() = %q, want %q", got, tt.want)
			}
			if got := s.Theme(); got != tt.want {
				t.Errorf("Theme() = %q, want %q", got, tt.want)
			}
			if p.setCall != 0 {
				t.Errorf("ResolveInitial wrote to preferences %d times", p.setCall)
			}
		})
	}
}

func TestResolveInitialIdempotent(t *testing.T) {
	s := NewStore(Options{Prefs: newMemPrefs(), Scheme: fixedScheme{dark: true}, Key: testKey})

	first := s.ResolveInitial()
	second := s.ResolveInitial()
	if first != second {
		t.Errorf("ResolveInitial not idempotent: %q then %q", first, second)
	}
}

func TestStorageReadFailure(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	p := newMemPrefs()
	p.getErr = errors.New("quota exceeded")

	s := NewStore(Options{Prefs: p, Key: testKey, Default: Dark, Logger: zap.New(core)})
	if got := s.ResolveInitial(); got != Dark {
		t.Errorf("ResolveInitial() = %q, want default %q", got, Dark)
	}
	if logs.FilterMessage("reading stored theme").Len() != 1 {
		t.Errorf("expected read failure to be logged, got %v", logs.All())
	}
}

func TestStoragePanic(t *testing.T) {
	p := newMemPrefs()
	p.panics = true

	s := NewStore(Options{Prefs: p, Key: testKey, Default: Light})
	if got := s.ResolveInitial(); !got.Valid() {
		t.Errorf("ResolveInitial() returned invalid mode %q", got)
	}
}

func TestStoragePanicFallsBackToScheme(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	p := newMemPrefs()
	p.panics = true

	s := NewStore(Options{Prefs: p, Scheme: fixedScheme{dark: true}, Key: testKey, Default: Light, Logger: zap.New(core)})
	if got := s.ResolveInitial(); got != Dark {
		t.Errorf("ResolveInitial() = %q, want %q from system scheme", got, Dark)
	}
	if !s.Root().Has("dark") {
		t.Errorf("root classes = %v, want dark", s.Root().Classes())
	}
	if logs.FilterMessage("reading stored theme").Len() != 1 {
		t.Errorf("expected panicking read to be logged, got %v", logs.All())
	}
}

func TestStorageWriteFailure(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	p := newMemPrefs()
	p.setErr = errors.New("disk full")

	s := NewStore(Options{Prefs: p, Key: testKey, Logger: zap.New(core)})
	s.ResolveInitial()
	s.SetTheme(Dark)

	if s.Theme() != Dark {
		t.Errorf("Theme() = %q, want %q", s.Theme(), Dark)
	}
	if !s.Root().Has("dark") {
		t.Error("root should carry dark class even when persisting fails")
	}
	if logs.FilterMessage("persisting theme").Len() != 1 {
		t.Errorf("expected write failure to be logged, got %v", logs.All())
	}
}

func TestSetThemeKeepsRootDisjoint(t *testing.T) {
	root := NewRoot()
	root.classes["fonts-loaded"] = struct{}{}
	s := NewStore(Options{Root: root, Key: testKey})
	s.ResolveInitial()

	for _, m := range []Mode{Dark, Light, Dark, Dark} {
		s.SetTheme(m)
		if !root.Has(string(m)) || root.Has(string(m.Other())) {
			t.Fatalf("after SetTheme(%q) classes = %v", m, root.Classes())
		}
		if root.Mode() != s.Theme() {
			t.Fatalf("root mode %q != store mode %q", root.Mode(), s.Theme())
		}
	}
	if !root.Has("fonts-loaded") {
		t.Error("unrelated class was removed")
	}
}

func TestSetThemeInvalidIgnored(t *testing.T) {
	p := newMemPrefs()
	s := NewStore(Options{Prefs: p, Key: testKey, Default: Dark})
	s.ResolveInitial()

	s.SetTheme(Mode("blue"))
	if s.Theme() != Dark {
		t.Errorf("Theme() = %q, want %q", s.Theme(), Dark)
	}
	if p.setCall != 0 {
		t.Error("invalid mode should not be persisted")
	}
}

func TestToggleAndSubscribe(t *testing.T) {
	p := newMemPrefs()
	s := NewStore(Options{Prefs: p, Key: testKey, Default: Light})
	s.ResolveInitial()

	var seen []Mode
	unsubscribe := s.Subscribe(func(m Mode) { seen = append(seen, m) })

	if got := s.Toggle(); got != Dark {
		t.Errorf("Toggle() = %q, want %q", got, Dark)
	}
	if p.values[testKey] != "dark" {
		t.Errorf("stored %q, want %q", p.values[testKey], "dark")
	}

	unsubscribe()
	s.Toggle()

	if len(seen) != 1 || seen[0] != Dark {
		t.Errorf("subscriber saw %v, want [dark]", seen)
	}
}

func TestRoundTripAcrossSessions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")

	for _, m := range []Mode{Dark, Light} {
		st, err := prefs.Open(path)
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		s := NewStore(Options{Prefs: st, Scheme: fixedScheme{dark: m == Light}, Key: testKey})
		s.ResolveInitial()
		s.SetTheme(m)
		st.Close()

		st2, err := prefs.Open(path)
		if err != nil {
			t.Fatalf("reopen failed: %v", err)
		}
		fresh := NewStore(Options{Prefs: st2, Scheme: fixedScheme{dark: m == Light}, Key: testKey})
		if got := fresh.ResolveInitial(); got != m {
			t.Errorf("new session resolved %q, want %q", got, m)
		}
		st2.Close()
	}
}
