package decisionx

import (
	"github.com/clinia/featuretoggles/featureflagx"
	"github.com/clinia/featuretoggles/utilx"
)

// Decider is a parameterless business predicate.
type Decider interface {
	Enabled() bool
}

// DecisionFunc is an adapter to use a stand-alone function as a Decider.
type DecisionFunc func() bool

func (fn DecisionFunc) Enabled() bool {
	return fn()
}

// Decision maps one flag to a named predicate. It holds no state of its own and reads the
// toggles on every call.
type Decision struct {
	name    string
	flag    featureflagx.FeatureFlag
	toggles featureflagx.Toggles
}

var _ Decider = (*Decision)(nil)

// NewDecision binds name to flag. The flag name is validated here so Enabled cannot fail later.
func NewDecision(name string, toggles featureflagx.Toggles, flag featureflagx.FeatureFlag) (*Decision, error) {
	if err := flag.Validate(); err != nil {
		return nil, err
	}
	return &Decision{
		name:    name,
		flag:    flag,
		toggles: toggles,
	}, nil
}

func (d *Decision) Name() string {
	return d.name
}

func (d *Decision) Flag() featureflagx.FeatureFlag {
	return d.flag
}

func (d *Decision) Enabled() bool {
	return utilx.Must(d.toggles.IsEnabled(d.flag))
}
