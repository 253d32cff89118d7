package theme

import (
	"sort"
	"sync"
)

// Root is the class set on the scene root. Styling reads it; only Store
// writes it, so it always holds exactly one of "light" or "dark" once the
// store has resolved.
type Root struct {
	mu      sync.RWMutex
	classes map[string]struct{}
}

func NewRoot() *Root {
	return &Root{classes: map[string]struct{}{}}
}

func (r *Root) Has(class string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.classes[class]
	return ok
}

// Classes returns the current classes in sorted order.
func (r *Root) Classes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.classes))
	for c := range r.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Mode reports which mode class is present. Light when none is.
func (r *Root) Mode() Mode {
	if r.Has(string(Dark)) {
		return Dark
	}
	return Light
}

// apply removes both mode classes then adds m, keeping the set disjoint.
func (r *Root) apply(m Mode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.classes, string(Light))
	delete(r.classes, string(Dark))
	r.classes[string(m)] = struct{}{}
}
