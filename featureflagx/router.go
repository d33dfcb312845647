package featureflagx

import (
	"sync"
)

// Toggles is the read side of a Router.
type Toggles interface {
	IsEnabled(ff FeatureFlag) (bool, error)
}

// Router owns the process flag table. The zero value is not usable, use NewRouter or New.
type Router struct {
	mu sync.RWMutex
	fa map[FeatureFlag]bool
}

var _ Toggles = (*Router)(nil)

func NewRouter() *Router {
	return &Router{
		fa: map[FeatureFlag]bool{},
	}
}

// New creates a Router seeded with the given values. It fails on the first blank name.
func New(fs map[string]bool) (*Router, error) {
	r := NewRouter()
	for f, v := range fs {
		ff := FeatureFlag(f)
		if err := ff.Validate(); err != nil {
			return nil, err
		}
		r.fa[ff] = v
	}
	return r, nil
}

// SetFeature sets the flag to enabled. Setting the value it already holds leaves the table untouched.
func (r *Router) SetFeature(ff FeatureFlag, enabled bool) error {
	if err := ff.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.fa[ff]; ok && v == enabled {
		return nil
	}
	r.fa[ff] = enabled
	return nil
}

// IsEnabled returns the last value set for the flag, false if it was never set.
func (r *Router) IsEnabled(ff FeatureFlag) (bool, error) {
	if err := ff.Validate(); err != nil {
		return false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.fa[ff], nil
}

// View calls fn with the read lock held, so every read made through the given
// Toggles observes the same table. fn must not mutate the router.
func (r *Router) View(fn func(Toggles) error) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return fn(lockedView{r})
}

type lockedView struct {
	r *Router
}

func (v lockedView) IsEnabled(ff FeatureFlag) (bool, error) {
	if err := ff.Validate(); err != nil {
		return false, err
	}
	return v.r.fa[ff], nil
}
